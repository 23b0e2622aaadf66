package vm

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/vibedom/vibedom/internal/runtime"
	"github.com/vibedom/vibedom/internal/vm/assets"
)

// ErrNotReady is returned by Start when the readiness probe times out
// (spec §4.5 step 6, spec §7: NotReady).
var ErrNotReady = errors.New("vm: container did not signal readiness in time")

// readinessProbeAttempts and readinessProbeInterval implement spec §4.5's
// "poll up to 10 times at 1-second intervals".
const (
	readinessProbeAttempts = 10
	readinessProbeInterval = time.Second
	readyFile              = "/tmp/.vm-ready"
	bootstrapFileName      = "bootstrap.sh"
)

// artifactNames are the files copied from the installed config into the
// session's mounted config directory before launch (spec §4.5 step 2). The
// proxy here is a compiled Go binary baked into the container image at
// build time (spec §1 non-goal: image build is out of scope), so the
// "proxy addon script" and "scrubber module" named by spec §4.5 step 2
// collapse to their data dependencies: the domain whitelist and the DLP
// pattern library. Both are read fresh by the in-container vibedom-proxy
// binary; nothing here is executable.
var artifactNames = []string{"trusted_domains.txt", "patterns.toml"}

// Manager drives a single session container through start/exec/stop
// (spec §4.5, C5).
type Manager struct {
	Adapter       runtime.Adapter
	ContainerHome string // agent home inside the container, e.g. "/root"
	Image         string
}

// NewManager returns a Manager for the given adapter, container image, and
// in-container home directory.
func NewManager(adapter runtime.Adapter, image, containerHome string) *Manager {
	return &Manager{Adapter: adapter, ContainerHome: containerHome, Image: image}
}

// Start implements spec §4.5's start(workspace, config_dir, session_dir,
// runtime): idempotent teardown, artifact copy, mount/env composition,
// launch, and readiness probe.
func (m *Manager) Start(workspace, installedConfigDir, configDir, sessionDir, containerName string) error {
	if err := m.Adapter.Stop(containerName); err != nil {
		// Best-effort: a container that never existed yields a non-zero
		// exit from the underlying CLI, which is not itself a failure here.
		_ = err
	}
	if err := copyArtifacts(installedConfigDir, configDir); err != nil {
		return fmt.Errorf("vm: copy runtime artifacts: %w", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, bootstrapFileName), []byte(assets.BootstrapScript), 0o755); err != nil {
		return fmt.Errorf("vm: write bootstrap script: %w", err)
	}
	mounts := ComposeMounts(MountPlan{
		Workspace:  workspace,
		ConfigDir:  configDir,
		SessionDir: sessionDir,
	}, m.ContainerHome)
	spec := runtime.RunSpec{
		Name:   containerName,
		Image:  m.Image,
		Mounts: mounts,
		Env:    ComposeEnv(),
	}
	if err := m.Adapter.Run(spec); err != nil {
		return fmt.Errorf("vm: launch container: %w", err)
	}
	if err := m.runBootstrap(containerName); err != nil {
		return fmt.Errorf("vm: run bootstrap: %w", err)
	}
	return m.waitReady(containerName)
}

// runBootstrap execs the bundle pipeline's container-side script (spec
// §4.6), mirroring image_preflight.go's "exec.Command(\"bash\", scriptPath)"
// shape but via the runtime adapter's exec rather than a host subprocess,
// since the script must run inside the container against /mnt/workspace.
func (m *Manager) runBootstrap(containerName string) error {
	scriptPath := "/mnt/config/" + bootstrapFileName
	_, stderr, code, err := m.Adapter.Exec(containerName, []string{"sh", scriptPath})
	if err != nil {
		return err
	}
	if code != 0 {
		return fmt.Errorf("bootstrap script exited %d: %s", code, stderr)
	}
	return nil
}

func (m *Manager) waitReady(containerName string) error {
	for attempt := 0; attempt < readinessProbeAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(readinessProbeInterval)
		}
		_, _, code, err := m.Adapter.Exec(containerName, []string{"test", "-f", readyFile})
		if err == nil && code == 0 {
			return nil
		}
	}
	return ErrNotReady
}

// Stop tears down the session container (spec §4.5's stop()).
func (m *Manager) Stop(containerName string) error {
	return m.Adapter.Stop(containerName)
}

// Exec runs cmd inside the session container (spec §4.5's
// exec(cmd) -> (stdout, stderr, exit_code)).
func (m *Manager) Exec(containerName string, cmd []string) (string, string, int, error) {
	return m.Adapter.Exec(containerName, cmd)
}

func copyArtifacts(srcDir, dstDir string) error {
	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return err
	}
	for _, name := range artifactNames {
		src := filepath.Join(srcDir, name)
		if !fileExists(src) {
			continue
		}
		if err := copyFile(src, filepath.Join(dstDir, name)); err != nil {
			return fmt.Errorf("copy %s: %w", name, err)
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	tmp, err := os.CreateTemp(filepath.Dir(dst), ".artifact-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	if _, err := io.Copy(tmp, in); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return os.Rename(tmpPath, dst)
}
