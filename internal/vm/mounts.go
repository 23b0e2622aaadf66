// Package vm implements the VM lifecycle manager (spec §4.5, C5): mount
// composition, environment composition, launch via the runtime adapter, and
// the post-launch readiness probe.
package vm

import (
	"os"
	"path/filepath"

	"github.com/vibedom/vibedom/internal/runtime"
)

// claudeHomeMounts returns individual :ro mounts for the pieces of a host
// ~/.claude tree the agent needs, skipping anything absent. It deliberately
// never mounts the whole ~/.claude directory - spec §4.5 step 3 calls that
// out because the container's agent binary lives there too, and bind
// mounting over it would shadow it.
//
// Grounded on agents/shared/docker/si_mounts.go's hostSiDirSource/isDir
// existence-guard pattern, generalized from "one directory, mount or skip"
// to "several files and one directory, each mounted or skipped
// independently".
func claudeHomeMounts(containerHome string) []runtime.Mount {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return nil
	}
	claudeDir := filepath.Join(home, ".claude")
	var mounts []runtime.Mount
	for _, name := range []string{"api_key", "settings.json"} {
		src := filepath.Join(claudeDir, name)
		if fileExists(src) {
			mounts = append(mounts, runtime.Mount{
				Src: src, Dst: filepath.Join(containerHome, ".claude", name), ReadOnly: true,
			})
		}
	}
	skillsDir := filepath.Join(claudeDir, "skills")
	if dirExists(skillsDir) {
		mounts = append(mounts, runtime.Mount{
			Src: skillsDir, Dst: filepath.Join(containerHome, ".claude", "skills"), ReadOnly: true,
		})
	}
	return mounts
}

func fileExists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}

func dirExists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}

// MountPlan is the fixed set of mounts spec §4.5 step 3 requires, plus
// whatever of the host's ~/.claude exists.
type MountPlan struct {
	Workspace  string
	ConfigDir  string
	SessionDir string
	Home       string
}

// ComposeMounts builds the mount list for a session container (spec §4.5
// step 3). containerHome is the agent's home directory inside the
// container (e.g. "/root").
func ComposeMounts(p MountPlan, containerHome string) []runtime.Mount {
	mounts := []runtime.Mount{
		{Src: p.Workspace, Dst: "/mnt/workspace", ReadOnly: true},
		{Src: p.ConfigDir, Dst: "/mnt/config", ReadOnly: true},
		{Src: filepath.Join(p.SessionDir, "repo"), Dst: "/work/repo"},
		{Src: p.SessionDir, Dst: "/mnt/session"},
	}
	mounts = append(mounts, claudeHomeMounts(containerHome)...)
	return mounts
}
