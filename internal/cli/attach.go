package cli

import (
	"fmt"

	"github.com/vibedom/vibedom/internal/ui"
)

// cmdAttach implements `attach [session_id_or_workspace]` (spec §4.10's
// `attach` row): resolve a running session and exec an interactive shell
// into its container, working directory /work/repo.
func cmdAttach(app *App, args []string) {
	idOrName := firstArg(args)
	s, err := app.Registry.Resolve(idOrName, true, app.Stdin, app.Stdout)
	if err != nil {
		ui.Fatal(fmt.Errorf("attach: %w", err))
	}
	adapter, err := app.requireRuntime()
	if err != nil {
		ui.Fatal(err)
	}
	cmd := []string{"bash", "-c", "cd /work/repo && exec bash"}
	if err := adapter.ExecInteractive(s.State.ContainerName, cmd); err != nil {
		ui.Fatal(fmt.Errorf("attach: %w", err))
	}
}
