// Package runtime implements the dual container-runtime abstraction
// (spec §4.4, C4): a single Adapter interface with a Docker CLI and an
// Apple container CLI implementation behind it.
package runtime

import (
	"fmt"
	"os/exec"
)

// Mount describes a bind mount into the container.
type Mount struct {
	Src      string
	Dst      string
	ReadOnly bool
}

// RunSpec describes a detached container launch, already translated away
// from any one runtime's flag spelling by the caller (internal/vm).
type RunSpec struct {
	Name    string
	Image   string
	Mounts  []Mount
	Env     []string
	Command []string
}

// Adapter is the generic container operation set every supported runtime
// must provide: run, exec, stop, list (spec §4.4).
type Adapter interface {
	// Name identifies the runtime for logging ("docker" or "apple").
	Name() string

	// Run launches a detached container per spec. It does not wait for
	// readiness; callers poll separately (spec §4.5 step 6).
	Run(spec RunSpec) error

	// Exec runs cmd inside the named container and returns its captured
	// stdout, stderr, and exit code. It never returns an error purely
	// because the command inside the container exited non-zero; that is
	// reported via exitCode.
	Exec(containerName string, cmd []string) (stdout string, stderr string, exitCode int, err error)

	// ExecInteractive runs cmd inside the named container attached to the
	// calling process's stdio (used by `attach`).
	ExecInteractive(containerName string, cmd []string) error

	// Stop idempotently removes the named container. Apple's two-step
	// stop-then-delete sequence is one logical remove from the caller's
	// perspective.
	Stop(containerName string) error

	// List returns the names of all containers (running or not) whose
	// name starts with "vibedom-".
	List() ([]string, error)

	// IsRunning satisfies session.ContainerChecker.
	IsRunning(name string) (bool, error)
}

// Detect implements spec §4.4's detection policy: prefer the Apple
// runtime if its binary is on PATH, fall back to Docker, else ErrNoRuntime.
func Detect() (Adapter, error) {
	if _, err := exec.LookPath("container"); err == nil {
		return NewApple(), nil
	}
	if _, err := exec.LookPath("docker"); err == nil {
		return NewDocker(), nil
	}
	return nil, ErrNoRuntime
}

func mountFlag(m Mount) string {
	spec := fmt.Sprintf("%s:%s", m.Src, m.Dst)
	if m.ReadOnly {
		spec += ":ro"
	}
	return spec
}
