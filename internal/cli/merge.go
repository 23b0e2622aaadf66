package cli

import (
	"errors"
	"fmt"

	"github.com/vibedom/vibedom/internal/bundle"
	"github.com/vibedom/vibedom/internal/ui"
)

// cmdMerge implements `merge <session_id_or_workspace> [--branch] [--merge]`
// (spec §4.10's `merge` row): refuse on a dirty host tree, otherwise fetch
// the session's bundle (or live repo/) and merge it in - squash by default,
// full history with --merge.
func cmdMerge(app *App, args []string) {
	idOrName, branch, fullHistory, err := parseMergeArgs(args)
	if err != nil {
		ui.Fatal(err)
	}
	if idOrName == "" {
		ui.Fatal(fmt.Errorf("merge: usage: merge <session_id_or_workspace> [--branch name] [--merge]"))
	}
	s, err := app.Registry.Resolve(idOrName, false, app.Stdin, app.Stdout)
	if err != nil {
		ui.Fatal(fmt.Errorf("merge: %w", err))
	}

	source := sessionReviewSource(s.Dir, s.State.BundlePath)
	err = bundle.Merge(s.State.Workspace, source, bundle.MergeOptions{Branch: branch, FullHistory: fullHistory})
	if err != nil {
		if errors.Is(err, bundle.ErrDirtyTree) {
			ui.Fatal(fmt.Errorf("merge: host workspace has uncommitted changes, commit or stash first"))
		}
		ui.Fatal(fmt.Errorf("merge: %w", err))
	}
	ui.Successf("merged session %s into %s", s.State.SessionID, s.State.Workspace)
}

func parseMergeArgs(args []string) (idOrName, branch string, fullHistory bool, err error) {
	var positional []string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--branch":
			i++
			if i >= len(args) {
				return "", "", false, fmt.Errorf("merge: --branch requires a value")
			}
			branch = args[i]
		case "--merge":
			fullHistory = true
		default:
			positional = append(positional, args[i])
		}
	}
	if len(positional) > 0 {
		idOrName = positional[0]
	}
	return idOrName, branch, fullHistory, nil
}
