package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// ErrNoSessions is returned by Resolve when the candidate pool is empty.
var ErrNoSessions = errors.New("session: no sessions available")

// ErrCancelled is returned by Resolve when the user cancels an interactive
// disambiguation prompt.
var ErrCancelled = errors.New("session: selection cancelled")

// Session pairs a loaded State with the directory it was loaded from.
type Session struct {
	Dir   string
	State State
}

// ContainerChecker reports whether a named container is currently running.
// The runtime adapter implements this; kept as an interface here so the
// registry package has no dependency on internal/runtime.
type ContainerChecker interface {
	IsRunning(name string) (bool, error)
}

// Registry discovers and resolves sessions under a single logs_base
// directory (spec §4.3).
type Registry struct {
	LogsBase string
	Runtime  ContainerChecker
}

// New returns a Registry rooted at logsBase.
func New(logsBase string, checker ContainerChecker) *Registry {
	return &Registry{LogsBase: logsBase, Runtime: checker}
}

// All lists every session under LogsBase, sorted by started_at descending.
// Directories with a missing or corrupt state.json are silently skipped.
func (r *Registry) All() ([]Session, error) {
	entries, err := os.ReadDir(r.LogsBase)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("session: read logs base: %w", err)
	}
	var sessions []Session
	for _, e := range entries {
		if !e.IsDir() || !strings.HasPrefix(e.Name(), "session-") {
			continue
		}
		dir := filepath.Join(r.LogsBase, e.Name())
		st, err := Load(dir)
		if err != nil {
			continue
		}
		sessions = append(sessions, Session{Dir: dir, State: st})
	}
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].State.StartedAt > sessions[j].State.StartedAt
	})
	return sessions, nil
}

// Running returns All() filtered to status=="running".
func (r *Registry) Running() ([]Session, error) {
	all, err := r.All()
	if err != nil {
		return nil, err
	}
	return filterStatus(all, StatusRunning), nil
}

func filterStatus(sessions []Session, status Status) []Session {
	out := make([]Session, 0, len(sessions))
	for _, s := range sessions {
		if s.State.Status == status {
			out = append(out, s)
		}
	}
	return out
}

// Find returns the first session (newest-first) whose session_id equals
// idOrName, or whose workspace basename equals idOrName. Because All() is
// newest-first, a match by workspace name returns the most recent session
// for that workspace.
func (r *Registry) Find(idOrName string) (Session, bool, error) {
	all, err := r.All()
	if err != nil {
		return Session{}, false, err
	}
	for _, s := range all {
		if s.State.SessionID == idOrName || filepath.Base(s.State.Workspace) == idOrName {
			return s, true, nil
		}
	}
	return Session{}, false, nil
}

// Resolve implements spec §4.3's resolution policy: an explicit id/name is
// looked up directly; otherwise the candidate pool (running-only or all) is
// used, prompting interactively when there is more than one candidate.
func (r *Registry) Resolve(idOrName string, runningOnly bool, prompt io.Reader, out io.Writer) (Session, error) {
	if strings.TrimSpace(idOrName) != "" {
		s, ok, err := r.Find(idOrName)
		if err != nil {
			return Session{}, err
		}
		if !ok {
			return Session{}, fmt.Errorf("%w: %q", ErrNotFound, idOrName)
		}
		return s, nil
	}
	var candidates []Session
	var err error
	if runningOnly {
		candidates, err = r.Running()
	} else {
		candidates, err = r.All()
	}
	if err != nil {
		return Session{}, err
	}
	switch len(candidates) {
	case 0:
		return Session{}, ErrNoSessions
	case 1:
		return candidates[0], nil
	default:
		return promptForSession(candidates, prompt, out)
	}
}

func promptForSession(candidates []Session, prompt io.Reader, out io.Writer) (Session, error) {
	if prompt == nil || out == nil {
		return Session{}, fmt.Errorf("session: %d candidates found, cannot disambiguate non-interactively", len(candidates))
	}
	fmt.Fprintln(out, "multiple sessions found:")
	for i, s := range candidates {
		fmt.Fprintf(out, "  %d) %s  (%s, %s)\n", i+1, s.State.SessionID, s.State.Status, filepath.Base(s.State.Workspace))
	}
	reader := bufio.NewReader(prompt)
	for {
		fmt.Fprint(out, "select a session (number, or q to cancel): ")
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return Session{}, ErrCancelled
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "q") {
			return Session{}, ErrCancelled
		}
		idx, err := strconv.Atoi(line)
		if err != nil || idx < 1 || idx > len(candidates) {
			fmt.Fprintln(out, "please enter a number from the list, or q to cancel")
			continue
		}
		return candidates[idx-1], nil
	}
}

// IsContainerRunning implements the deliberate policy of spec §4.3:
// state.json is authoritative. If the record is not "running" we never ask
// the runtime at all - the safe failure mode for cleanup is to under-delete.
func (r *Registry) IsContainerRunning(s Session) (bool, error) {
	if s.State.Status != StatusRunning {
		return false, nil
	}
	if r.Runtime == nil {
		return false, errors.New("session: no runtime checker configured")
	}
	return r.Runtime.IsRunning(s.State.ContainerName)
}
