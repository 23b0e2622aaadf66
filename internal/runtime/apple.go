package runtime

import "strings"

// appleAdapter implements Adapter over Apple's "container" CLI
// (spec §4.4 table).
type appleAdapter struct {
	run cliRunner
}

// NewApple returns the Apple container CLI adapter.
func NewApple() Adapter {
	return &appleAdapter{run: cliRunner{bin: "container"}}
}

func (a *appleAdapter) Name() string { return "apple" }

func (a *appleAdapter) Run(spec RunSpec) error {
	args := []string{"run", "--detach", "--name", spec.Name}
	for _, m := range spec.Mounts {
		args = append(args, "-v", mountFlag(m))
	}
	for _, e := range spec.Env {
		args = append(args, "-e", e)
	}
	args = append(args, spec.Image)
	args = append(args, spec.Command...)
	return a.run.runQuiet(args...)
}

func (a *appleAdapter) Exec(containerName string, cmd []string) (string, string, int, error) {
	args := append([]string{"exec", containerName}, cmd...)
	return a.run.runCaptured(args...)
}

func (a *appleAdapter) ExecInteractive(containerName string, cmd []string) error {
	args := append([]string{"exec", "-it", containerName}, cmd...)
	return a.run.runInteractive(args...)
}

// Stop implements the Apple runtime's two-step "stop then delete" sequence
// as one logical remove (spec §4.4), best-effort: a container that is
// already stopped is still deleted.
func (a *appleAdapter) Stop(containerName string) error {
	_ = a.run.runQuiet("stop", containerName)
	return a.run.runQuiet("delete", "--force", containerName)
}

func (a *appleAdapter) List() ([]string, error) {
	stdout, _, _, err := a.run.runCaptured("list", "--all", "--format", "{{.Names}}")
	if err != nil {
		return nil, err
	}
	// "container list" has no name filter, so keep only vibedom containers here.
	var names []string
	for _, n := range splitNonEmptyLines(stdout) {
		if strings.HasPrefix(n, "vibedom-") {
			names = append(names, n)
		}
	}
	return names, nil
}

func (a *appleAdapter) IsRunning(name string) (bool, error) {
	// "container list" without --all mirrors "docker ps" (running only),
	// unlike List() above which mirrors "docker ps -a" for cleanup.
	stdout, _, _, err := a.run.runCaptured("list", "--format", "{{.Names}}")
	if err != nil {
		return false, err
	}
	for _, n := range splitNonEmptyLines(stdout) {
		if n == name {
			return true, nil
		}
	}
	return false, nil
}
