package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vibedom/vibedom/internal/preflight"
	"github.com/vibedom/vibedom/internal/runtime"
	"github.com/vibedom/vibedom/internal/session"
	"github.com/vibedom/vibedom/internal/ui"
)

// cmdRun implements `run <workspace> --preflight-report path
// [--runtime docker|apple]` (spec §4.10's `run` row). Failure at any step
// after the pre-flight gate transitions the session record to abandoned
// rather than leaving it stuck at running.
func cmdRun(app *App, args []string) {
	workspace, flags, err := parseRunArgs(args)
	if err != nil {
		ui.Fatal(err)
	}

	report, err := preflight.Load(flags.preflightReport)
	if err != nil {
		ui.Fatal(fmt.Errorf("run: pre-flight report: %w", err))
	}
	if !report.Approved {
		ui.Fatal(fmt.Errorf("run: pre-flight scan was not approved, refusing to start a session"))
	}

	adapter, rtName, err := resolveRuntimeForRun(app, flags.runtime)
	if err != nil {
		ui.Fatal(err)
	}

	st, err := session.Create(workspace, rtName)
	if err != nil {
		ui.Fatal(err)
	}
	dirName, err := st.DirName()
	if err != nil {
		ui.Fatal(err)
	}
	sessionDir := sessionDirForWorkspace(app.LogsBase, dirName)
	configDir := filepath.Join(sessionDir, "config")
	if err := os.MkdirAll(filepath.Join(sessionDir, "repo"), 0o755); err != nil {
		ui.Fatal(fmt.Errorf("run: create session repo dir: %w", err))
	}
	if err := st.Save(sessionDir); err != nil {
		ui.Fatal(fmt.Errorf("run: save initial session state: %w", err))
	}

	manager := app.Manager
	if manager == nil || adapter != app.Runtime {
		manager = newManagerFor(adapter, app.Settings.Container.Image)
	}
	if err := manager.Start(workspace, app.ConfigBase, configDir, sessionDir, st.ContainerName); err != nil {
		if abErr := st.MarkAbandoned(sessionDir); abErr != nil {
			ui.Warnf("run: failed to record abandoned status: %v", abErr)
		}
		ui.Fatal(fmt.Errorf("run: %w", err))
	}

	ui.Successf("session %s started (%s)", st.SessionID, st.ContainerName)
	fmt.Fprintln(app.Stdout, sessionDir)
}

type runFlags struct {
	runtime         string
	preflightReport string
}

func parseRunArgs(args []string) (workspace string, flags runFlags, err error) {
	var positional []string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--runtime":
			i++
			if i >= len(args) {
				return "", flags, fmt.Errorf("run: --runtime requires a value")
			}
			flags.runtime = args[i]
		case "--preflight-report":
			i++
			if i >= len(args) {
				return "", flags, fmt.Errorf("run: --preflight-report requires a value")
			}
			flags.preflightReport = args[i]
		default:
			positional = append(positional, args[i])
		}
	}
	if len(positional) != 1 {
		return "", flags, fmt.Errorf("run: usage: run <workspace> --preflight-report path [--runtime docker|apple]")
	}
	if flags.preflightReport == "" {
		return "", flags, fmt.Errorf("run: --preflight-report is required")
	}
	return positional[0], flags, nil
}

// resolveRuntimeForRun honors an explicit --runtime override, falling back
// to the detected adapter (spec §4.4's detection policy).
func resolveRuntimeForRun(app *App, want string) (runtime.Adapter, session.Runtime, error) {
	if want == "" {
		adapter, err := app.requireRuntime()
		if err != nil {
			return nil, "", err
		}
		return adapter, runtimeNameToSession(adapter.Name()), nil
	}
	switch want {
	case "docker":
		return runtime.NewDocker(), session.RuntimeDocker, nil
	case "apple":
		return runtime.NewApple(), session.RuntimeApple, nil
	default:
		return nil, "", fmt.Errorf("run: unknown --runtime %q (want docker or apple)", want)
	}
}

func runtimeNameToSession(name string) session.Runtime {
	if name == "apple" {
		return session.RuntimeApple
	}
	return session.RuntimeDocker
}
