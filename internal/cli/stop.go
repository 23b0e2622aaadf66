package cli

import (
	"fmt"
	"path/filepath"

	"github.com/vibedom/vibedom/internal/bundle"
	"github.com/vibedom/vibedom/internal/ui"
)

// cmdStop implements `stop [session_id_or_workspace]` (spec §4.10's `stop`
// row): resolve the running session, finalize its bundle, transition its
// state, then stop the container.
func cmdStop(app *App, args []string) {
	idOrName := firstArg(args)
	s, err := app.Registry.Resolve(idOrName, true, app.Stdin, app.Stdout)
	if err != nil {
		ui.Fatal(fmt.Errorf("stop: %w", err))
	}

	repoDir := filepath.Join(s.Dir, "repo")
	st := s.State
	bundlePath, bundleErr := bundle.Finalize(repoDir, s.Dir)
	if bundleErr != nil {
		if err := st.MarkAbandoned(s.Dir); err != nil {
			ui.Warnf("stop: failed to record abandoned status: %v", err)
		}
	} else {
		if err := st.MarkComplete(s.Dir, bundlePath); err != nil {
			ui.Warnf("stop: failed to record complete status: %v", err)
		}
	}

	adapter, err := app.requireRuntime()
	if err != nil {
		ui.Fatal(err)
	}
	if err := adapter.Stop(st.ContainerName); err != nil {
		ui.Fatal(fmt.Errorf("stop: %w", err))
	}

	if bundleErr != nil {
		ui.Fatal(fmt.Errorf("stop: session %s abandoned, repo/ left in place as a fallback: %w", st.SessionID, bundleErr))
	}
	ui.Successf("session %s complete, bundle at %s", st.SessionID, bundlePath)
}

// firstArg returns args[0], or "" when args is empty, used by every command
// whose only positional is an optional session_id_or_workspace.
func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
