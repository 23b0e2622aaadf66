package runtime

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// cliRunner shells out to a single CLI binary ("docker" or "container"),
// grounded on docker_cli.go's execDockerCLI/execDockerCLIWithOutput shape:
// the adapter never talks to a daemon API, it spawns a subprocess and reads
// its output (spec: "the core issues commands against one of two supported
// CLIs and reads their output").
type cliRunner struct {
	bin   string
	envFn func() []string
}

func (r cliRunner) command(args ...string) *exec.Cmd {
	cmd := exec.Command(r.bin, args...)
	env := os.Environ()
	if r.envFn != nil {
		env = append(env, r.envFn()...)
	}
	cmd.Env = env
	return cmd
}

// runCaptured runs args and returns combined-but-separated stdout/stderr and
// the process exit code, without treating a non-zero exit as a Go error.
func (r cliRunner) runCaptured(args ...string) (stdout string, stderr string, exitCode int, err error) {
	cmd := r.command(args...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	runErr := cmd.Run()
	stdout = outBuf.String()
	stderr = errBuf.String()
	if runErr == nil {
		return stdout, stderr, 0, nil
	}
	if exitErr, ok := runErr.(*exec.ExitError); ok {
		return stdout, stderr, exitErr.ExitCode(), nil
	}
	return stdout, stderr, -1, runErr
}

// runInteractive attaches the subprocess to the calling process's stdio,
// grounded on docker_cli.go's execDockerCLI.
func (r cliRunner) runInteractive(args ...string) error {
	cmd := r.command(args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	return cmd.Run()
}

// runQuiet runs args and discards output, returning only a Go error for a
// non-zero exit (used for teardown/remove calls that are best-effort).
func (r cliRunner) runQuiet(args ...string) error {
	_, stderr, code, err := r.runCaptured(args...)
	if err != nil {
		return err
	}
	if code != 0 {
		return &exitError{bin: r.bin, args: args, code: code, stderr: stderr}
	}
	return nil
}

type exitError struct {
	bin    string
	args   []string
	code   int
	stderr string
}

func (e *exitError) Error() string {
	msg := fmt.Sprintf("%s %s: exit %d", e.bin, strings.Join(e.args, " "), e.code)
	if e.stderr != "" {
		msg += ": " + strings.TrimSpace(e.stderr)
	}
	return msg
}
