// Package bundle implements the host side of the git bundle pipeline
// (spec §4.6, C6): producing and verifying repo.bundle from a session's
// /work/repo clone, without ever touching the host's own .git.
package bundle

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrBundleFailed is returned when `git bundle create` or `git bundle
// verify` fails (spec §7: BundleFailed). The caller transitions the
// session to abandoned but leaves repo/ in place as a fallback.
var ErrBundleFailed = errors.New("bundle: git bundle create/verify failed")

// ErrDirtyTree is returned by Merge when the host tree has uncommitted
// changes (spec §7: DirtyTree).
var ErrDirtyTree = errors.New("bundle: host working tree has uncommitted changes")

// BundleFileName is the fixed name of the bundle artifact inside a session
// directory.
const BundleFileName = "repo.bundle"

// Finalize produces and verifies a bundle of every ref in repoDir,
// writing it to sessionDir/repo.bundle. Grounded on git_identity.go's
// execGitConfig: run git as a subprocess, capture stderr into a buffer, wrap
// a non-zero exit with that stderr text rather than the bare exec error.
func Finalize(repoDir, sessionDir string) (string, error) {
	bundlePath := filepath.Join(sessionDir, BundleFileName)
	if err := runGit(repoDir, "bundle", "create", bundlePath, "--all"); err != nil {
		return "", fmt.Errorf("%w: create: %v", ErrBundleFailed, err)
	}
	if err := runGit(repoDir, "bundle", "verify", bundlePath); err != nil {
		return "", fmt.Errorf("%w: verify: %v", ErrBundleFailed, err)
	}
	return bundlePath, nil
}

// CurrentBranch reads the clone's checked-out branch, defaulting to "main"
// when detached (spec §4.6).
func CurrentBranch(repoDir string) (string, error) {
	out, err := runGitOutput(repoDir, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	branch := firstLine(out)
	if branch == "" || branch == "HEAD" {
		return "main", nil
	}
	return branch, nil
}

// IsClean reports whether workspaceDir's git tree has no staged or
// unstaged changes, used by Merge's DirtyTree guard.
func IsClean(workspaceDir string) (bool, error) {
	out, err := runGitOutput(workspaceDir, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return firstLine(out) == "", nil
}

func runGit(dir string, args ...string) error {
	cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%w: %s", err, msg)
		}
		return err
	}
	return nil
}

func runGitOutput(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%w: %s", err, msg)
		}
		return "", err
	}
	return stdout.String(), nil
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return strings.TrimSpace(s[:idx])
	}
	return strings.TrimSpace(s)
}
