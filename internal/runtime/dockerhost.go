package runtime

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// autoDockerHost finds a usable docker socket when DOCKER_HOST isn't set and
// the default /var/run/docker.sock is absent - the common case on macOS
// running Colima instead of Docker Desktop. It returns an extra
// "DOCKER_HOST=..." env var for the docker subprocess, carrying the same
// "don't touch the user's context" and "Colima is darwin-only" policy as
// the teacher's AutoDockerHost, trimmed to a single profile guess instead of
// scanning every directory under ~/.colima and parsing ~/.docker/config.json.
func autoDockerHost() (string, bool) {
	if os.Getenv("DOCKER_HOST") != "" {
		return "", false
	}
	if strings.TrimSpace(os.Getenv("DOCKER_CONTEXT")) != "" {
		return "", false
	}
	if socketExists("/var/run/docker.sock") {
		return "", false
	}
	return detectColimaHost()
}

// detectColimaHost looks for a running Colima instance's socket under
// ~/.colima/<profile>/docker.sock, where profile is COLIMA_PROFILE or
// COLIMA_INSTANCE if set, else "default" (Colima's own default name).
func detectColimaHost() (string, bool) {
	if runtime.GOOS != "darwin" {
		return "", false
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", false
	}
	colimaHome := strings.TrimSpace(os.Getenv("COLIMA_HOME"))
	if colimaHome == "" {
		colimaHome = filepath.Join(home, ".colima")
	}
	profile := strings.TrimSpace(os.Getenv("COLIMA_PROFILE"))
	if profile == "" {
		profile = strings.TrimSpace(os.Getenv("COLIMA_INSTANCE"))
	}
	if profile == "" {
		profile = "default"
	}
	candidate := filepath.Join(colimaHome, profile, "docker.sock")
	if socketExists(candidate) {
		return "unix://" + candidate, true
	}
	return "", false
}

func socketExists(p string) bool {
	info, err := os.Stat(p)
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeSocket != 0
}
