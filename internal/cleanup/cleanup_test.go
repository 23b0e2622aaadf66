package cleanup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vibedom/vibedom/internal/runtime"
	"github.com/vibedom/vibedom/internal/session"
)

type fakeListAdapter struct {
	names []string
	err   error
}

func (f *fakeListAdapter) Name() string                  { return "fake" }
func (f *fakeListAdapter) Run(runtime.RunSpec) error     { return nil }
func (f *fakeListAdapter) Stop(string) error             { return nil }
func (f *fakeListAdapter) IsRunning(string) (bool, error) { return false, nil }
func (f *fakeListAdapter) Exec(string, []string) (string, string, int, error) {
	return "", "", 0, nil
}
func (f *fakeListAdapter) ExecInteractive(string, []string) error { return nil }
func (f *fakeListAdapter) List() ([]string, error)                { return f.names, f.err }

func sessionAt(t *testing.T, status session.Status, age time.Duration, now time.Time) session.Session {
	t.Helper()
	return session.Session{
		Dir: t.TempDir(),
		State: session.State{
			SessionID: "test-session",
			Status:    status,
			StartedAt: now.Add(-age).Format(time.RFC3339Nano),
		},
	}
}

func TestFilterByAgeKeepsOnlyOlderThanCutoff(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	old := sessionAt(t, session.StatusComplete, 10*24*time.Hour, now)
	recent := sessionAt(t, session.StatusComplete, 2*24*time.Hour, now)

	got := FilterByAge([]session.Session{old, recent}, 7, now)
	if len(got) != 1 || got[0].State.SessionID != old.State.SessionID {
		t.Fatalf("expected only the 10-day-old session to survive, got %+v", got)
	}
}

func TestFilterByAgeExcludesFutureDatedSessions(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	future := sessionAt(t, session.StatusComplete, -24*time.Hour, now) // negative age => future
	got := FilterByAge([]session.Session{future}, 7, now)
	if len(got) != 0 {
		t.Fatalf("expected future-dated session excluded by clock-skew guard, got %+v", got)
	}
}

func TestFilterByAgeSkipsUnparseableTimestamps(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	bad := session.Session{Dir: t.TempDir(), State: session.State{SessionID: "bad", StartedAt: "not-a-timestamp"}}
	got := FilterByAge([]session.Session{bad}, 7, now)
	if len(got) != 0 {
		t.Fatalf("expected unparseable timestamp to be skipped, got %+v", got)
	}
}

func TestFilterNotRunningExcludesRunningSessions(t *testing.T) {
	now := time.Now()
	running := sessionAt(t, session.StatusRunning, time.Hour, now)
	complete := sessionAt(t, session.StatusComplete, time.Hour, now)
	abandoned := sessionAt(t, session.StatusAbandoned, time.Hour, now)

	got := FilterNotRunning([]session.Session{running, complete, abandoned})
	if len(got) != 2 {
		t.Fatalf("expected running session excluded, got %+v", got)
	}
	for _, s := range got {
		if s.State.Status == session.StatusRunning {
			t.Fatal("running session leaked through FilterNotRunning")
		}
	}
}

func TestDeleteRemovesDirectoryRecursively(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(nested, "file.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	Delete(dir)
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Fatalf("expected directory removed, stat err = %v", err)
	}
}

func TestOrphanContainersExcludesTrackedNames(t *testing.T) {
	adapter := &fakeListAdapter{names: []string{"vibedom-alpha", "vibedom-beta", "vibedom-gone"}}
	known := []session.Session{
		{State: session.State{ContainerName: "vibedom-alpha"}},
		{State: session.State{ContainerName: "vibedom-beta"}},
	}
	got, err := OrphanContainers(adapter, known)
	if err != nil {
		t.Fatalf("OrphanContainers: %v", err)
	}
	if len(got) != 1 || got[0] != "vibedom-gone" {
		t.Fatalf("expected only the untracked container, got %+v", got)
	}
}

func TestOrphanContainersPropagatesListError(t *testing.T) {
	adapter := &fakeListAdapter{err: os.ErrClosed}
	if _, err := OrphanContainers(adapter, nil); err == nil {
		t.Fatal("expected List error to propagate")
	}
}

func TestDeleteSwallowsErrorsForMissingDirectory(t *testing.T) {
	// os.RemoveAll on a nonexistent path is a no-op success; Delete must not
	// panic or otherwise surface that as a caller-visible failure.
	Delete(filepath.Join(t.TempDir(), "does-not-exist"))
}
