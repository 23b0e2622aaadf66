package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/vibedom/vibedom/internal/bundle"
	"github.com/vibedom/vibedom/internal/ui"
)

// cmdReview implements `review <session_id_or_workspace> [--branch]` (spec
// §4.10's `review` row): add the session's bundle (or its live repo/
// directory, if the session never reached complete) as a throwaway remote,
// fetch, and print log + diff against the host's current branch, without
// merging anything.
func cmdReview(app *App, args []string) {
	idOrName, branch, err := parseIDAndBranch(args, "review")
	if err != nil {
		ui.Fatal(err)
	}
	if idOrName == "" {
		ui.Fatal(fmt.Errorf("review: usage: review <session_id_or_workspace> [--branch name]"))
	}
	s, err := app.Registry.Resolve(idOrName, false, app.Stdin, app.Stdout)
	if err != nil {
		ui.Fatal(fmt.Errorf("review: %w", err))
	}

	source := sessionReviewSource(s.Dir, s.State.BundlePath)
	remoteName := fmt.Sprintf("vibedom-review-%d", time.Now().UnixNano())

	logOut, diffOut, err := bundle.Review(s.State.Workspace, source, remoteName, branch)
	if err != nil {
		ui.Fatal(fmt.Errorf("review: %w", err))
	}

	fmt.Fprintln(app.Stdout, "log:")
	fmt.Fprintln(app.Stdout, logOut)
	fmt.Fprintln(app.Stdout, "diff:")
	fmt.Fprintln(app.Stdout, diffOut)
}

func sessionReviewSource(sessionDir string, bundlePath *string) string {
	if bundlePath != nil && *bundlePath != "" {
		return *bundlePath
	}
	return filepath.Join(sessionDir, "repo")
}

// parseIDAndBranch parses review's `<id_or_name> [--branch name]` shape;
// merge, which also takes --merge, uses parseMergeArgs instead.
func parseIDAndBranch(args []string, cmdName string) (idOrName, branch string, err error) {
	var positional []string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--branch":
			i++
			if i >= len(args) {
				return "", "", fmt.Errorf("%s: --branch requires a value", cmdName)
			}
			branch = args[i]
		default:
			positional = append(positional, args[i])
		}
	}
	if len(positional) > 0 {
		idOrName = positional[0]
	}
	return idOrName, branch, nil
}
