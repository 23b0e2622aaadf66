// Package cli implements the command surface (spec §4.10, C10): one file
// per command, dispatched from a hand-rolled table. Grounded in the
// teacher's tools/si/root_commands.go + main.go shape, simplified because
// nine commands need no lazy-loading (the teacher's ~30 provider bridges
// do, to keep a cold CLI invocation fast).
package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/vibedom/vibedom/internal/config"
	"github.com/vibedom/vibedom/internal/runtime"
	"github.com/vibedom/vibedom/internal/session"
	"github.com/vibedom/vibedom/internal/vm"
)

// App carries the shared state every command needs: resolved settings, the
// session registry, and the detected container runtime.
type App struct {
	Settings   config.Settings
	LogsBase   string
	ConfigBase string
	Runtime    runtime.Adapter
	Registry   *session.Registry
	Manager    *vm.Manager

	Stdin          io.Reader
	Stdout, Stderr io.Writer
}

// containerHome is the agent's home directory inside every session
// container (spec §4.5 step 3).
const containerHome = "/root"

// settingsPath returns the location of settings.toml under configBase.
func settingsPath(configBase string) string {
	return filepath.Join(configBase, config.FileName)
}

// NewApp resolves settings.toml, detects the container runtime, and wires
// up the session registry. Runtime detection failure is deferred: `list`
// and `review` need no runtime at all, so only commands that use r.Runtime
// fail when it's nil.
func NewApp(stdin io.Reader, stdout, stderr io.Writer) (*App, error) {
	defaults := config.Defaults()
	configBase, err := config.ExpandHome(defaults.Paths.ConfigBase)
	if err != nil {
		return nil, fmt.Errorf("cli: resolve config base: %w", err)
	}
	settings, err := config.Load(settingsPath(configBase))
	if err != nil {
		return nil, fmt.Errorf("cli: load settings: %w", err)
	}
	logsBase, err := config.ExpandHome(settings.Paths.LogsBase)
	if err != nil {
		return nil, fmt.Errorf("cli: resolve logs base: %w", err)
	}
	configBase, err = config.ExpandHome(settings.Paths.ConfigBase)
	if err != nil {
		return nil, fmt.Errorf("cli: resolve config base: %w", err)
	}

	var adapter runtime.Adapter
	rt, rtErr := runtime.Detect()
	if rtErr == nil {
		adapter = rt
	}

	app := &App{
		Settings:   settings,
		LogsBase:   logsBase,
		ConfigBase: configBase,
		Runtime:    adapter,
		Registry:   session.New(logsBase, adapterChecker{adapter}),
		Stdin:      stdin,
		Stdout:     stdout,
		Stderr:     stderr,
	}
	if adapter != nil {
		app.Manager = vm.NewManager(adapter, settings.Container.Image, containerHome)
	}
	return app, nil
}

// adapterChecker adapts a possibly-nil runtime.Adapter to
// session.ContainerChecker, so a Registry can be constructed even before a
// runtime is detected (e.g. in `list`, which never calls IsContainerRunning
// on anything but a "running"-status session).
type adapterChecker struct {
	adapter runtime.Adapter
}

func (c adapterChecker) IsRunning(name string) (bool, error) {
	if c.adapter == nil {
		return false, fmt.Errorf("cli: no container runtime detected")
	}
	return c.adapter.IsRunning(name)
}

// requireRuntime fails the command early with a clear message when no
// runtime was detected (spec §4.4: NoRuntime).
func (a *App) requireRuntime() (runtime.Adapter, error) {
	if a.Runtime == nil {
		return nil, fmt.Errorf("cli: no container runtime found (looked for \"container\" and \"docker\" on PATH)")
	}
	return a.Runtime, nil
}

// requireManager is requireRuntime's counterpart for commands that drive a
// full vm.Manager. No command calls it at present: `run` reads app.Manager
// directly and builds its own manager for a --runtime override.
func (a *App) requireManager() (*vm.Manager, error) {
	if a.Manager == nil {
		return nil, fmt.Errorf("cli: no container runtime found (looked for \"container\" and \"docker\" on PATH)")
	}
	return a.Manager, nil
}

// sessionDirForWorkspace builds the absolute path a session's files live
// under, given the session's own directory name.
func sessionDirForWorkspace(logsBase, dirName string) string {
	return filepath.Join(logsBase, dirName)
}

// newManagerFor builds a one-off vm.Manager for a runtime adapter that
// wasn't the one NewApp auto-detected (an explicit `run --runtime` override).
func newManagerFor(adapter runtime.Adapter, image string) *vm.Manager {
	return vm.NewManager(adapter, image, containerHome)
}
