package cli

import (
	"fmt"

	"github.com/vibedom/vibedom/internal/ui"
)

// proxyProcessName is the in-container binary name signaled by
// reload-whitelist. Spec §4.8.3 names `mitmdump` because the reference
// proxy there is a mitmproxy addon script; this proxy is the compiled
// vibedom-proxy binary instead, so the signaled process name changes but
// the SIGHUP-reload contract it implements does not (internal/egress/reload.go).
const proxyProcessName = "vibedom-proxy"

// cmdReloadWhitelist implements `reload-whitelist <session_id_or_workspace>`
// (spec §4.10's `reload-whitelist` row): send SIGHUP to the session's proxy
// process via the runtime adapter's exec.
func cmdReloadWhitelist(app *App, args []string) {
	idOrName := firstArg(args)
	if idOrName == "" {
		ui.Fatal(fmt.Errorf("reload-whitelist: usage: reload-whitelist <session_id_or_workspace>"))
	}
	s, err := app.Registry.Resolve(idOrName, true, app.Stdin, app.Stdout)
	if err != nil {
		ui.Fatal(fmt.Errorf("reload-whitelist: %w", err))
	}
	adapter, err := app.requireRuntime()
	if err != nil {
		ui.Fatal(err)
	}
	_, stderr, code, err := adapter.Exec(s.State.ContainerName, []string{"pkill", "-HUP", proxyProcessName})
	if err != nil {
		ui.Fatal(fmt.Errorf("reload-whitelist: %w", err))
	}
	if code != 0 {
		ui.Fatal(fmt.Errorf("reload-whitelist: pkill exited %d: %s", code, stderr))
	}
	ui.Successf("whitelist reload signaled for session %s", s.State.SessionID)
}
