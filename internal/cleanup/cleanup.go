// Package cleanup implements the housekeeping predicates spec §4.9 (C9)
// names: age/status filters over a session list and the actual directory
// removal, kept as small single-purpose functions the caller composes, the
// way paas_safety_guardrails.go's guard functions are composed by their
// callers rather than folded into one big routine.
package cleanup

import (
	"os"
	"time"

	"github.com/vibedom/vibedom/internal/runtime"
	"github.com/vibedom/vibedom/internal/session"
)

// FilterByAge keeps sessions whose started_at is older than days ago.
// Future-dated sessions (clock skew) are excluded by construction: they
// fail the "before cutoff" test just like anything newer than it.
func FilterByAge(sessions []session.Session, days int, now time.Time) []session.Session {
	cutoff := now.AddDate(0, 0, -days)
	out := make([]session.Session, 0, len(sessions))
	for _, s := range sessions {
		started, err := time.Parse(time.RFC3339Nano, s.State.StartedAt)
		if err != nil {
			continue
		}
		if started.Before(cutoff) {
			out = append(out, s)
		}
	}
	return out
}

// FilterNotRunning keeps sessions whose persisted status is not "running".
// This relies on session.Registry's documented shortcut: state.json is
// authoritative for this purpose, no runtime call is made here.
func FilterNotRunning(sessions []session.Session) []session.Session {
	out := make([]session.Session, 0, len(sessions))
	for _, s := range sessions {
		if s.State.Status != session.StatusRunning {
			out = append(out, s)
		}
	}
	return out
}

// OrphanContainers returns every vibedom container the adapter knows about
// that doesn't belong to any session directory under logs_base - left
// behind by a session directory removed by hand, or by a `run` that died
// before state.json was ever written. known is every session currently on
// disk (not just prune/housekeeping's delete candidates): a running
// session's container must never be treated as an orphan.
func OrphanContainers(adapter runtime.Adapter, known []session.Session) ([]string, error) {
	all, err := adapter.List()
	if err != nil {
		return nil, err
	}
	tracked := make(map[string]bool, len(known))
	for _, s := range known {
		tracked[s.State.ContainerName] = true
	}
	var orphans []string
	for _, name := range all {
		if !tracked[name] {
			orphans = append(orphans, name)
		}
	}
	return orphans, nil
}

// Delete removes a session directory recursively, swallowing errors (spec
// §4.9: "swallowing errors" - housekeeping is best-effort by design, never
// a reason to abort a batch prune over one locked or already-gone directory).
func Delete(sessionDir string) {
	_ = os.RemoveAll(sessionDir)
}
