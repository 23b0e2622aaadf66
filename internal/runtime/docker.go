package runtime

import (
	"strings"
)

// dockerAdapter implements Adapter over the docker CLI (spec §4.4 table).
type dockerAdapter struct {
	run cliRunner
}

// NewDocker returns the docker CLI adapter.
func NewDocker() Adapter {
	return &dockerAdapter{run: cliRunner{bin: "docker", envFn: dockerEnv}}
}

func dockerEnv() []string {
	var env []string
	if host, ok := autoDockerHost(); ok && host != "" {
		env = append(env, "DOCKER_HOST="+host)
	}
	return env
}

func (d *dockerAdapter) Name() string { return "docker" }

func (d *dockerAdapter) Run(spec RunSpec) error {
	args := []string{"run", "-d", "--name", spec.Name}
	for _, m := range spec.Mounts {
		args = append(args, "-v", mountFlag(m))
	}
	for _, e := range spec.Env {
		args = append(args, "-e", e)
	}
	args = append(args, spec.Image)
	args = append(args, spec.Command...)
	return d.run.runQuiet(args...)
}

func (d *dockerAdapter) Exec(containerName string, cmd []string) (string, string, int, error) {
	args := append([]string{"exec", containerName}, cmd...)
	return d.run.runCaptured(args...)
}

func (d *dockerAdapter) ExecInteractive(containerName string, cmd []string) error {
	args := append([]string{"exec", "-it", containerName}, cmd...)
	return d.run.runInteractive(args...)
}

func (d *dockerAdapter) Stop(containerName string) error {
	return d.run.runQuiet("rm", "-f", containerName)
}

func (d *dockerAdapter) List() ([]string, error) {
	stdout, _, _, err := d.run.runCaptured("ps", "-a", "--filter", "name=vibedom-", "--format", "{{.Names}}")
	if err != nil {
		return nil, err
	}
	// docker's name filter matches anywhere in the name, not only as a prefix.
	var names []string
	for _, n := range splitNonEmptyLines(stdout) {
		if strings.HasPrefix(n, "vibedom-") {
			names = append(names, n)
		}
	}
	return names, nil
}

func (d *dockerAdapter) IsRunning(name string) (bool, error) {
	stdout, _, _, err := d.run.runCaptured("ps", "--filter", "name="+name, "--format", "{{.Names}}")
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

func splitNonEmptyLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
