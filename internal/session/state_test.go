package session

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateAndInvariants(t *testing.T) {
	dir := t.TempDir()
	st, err := Create(dir, RuntimeDocker)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if st.Status != StatusRunning {
		t.Fatalf("expected running, got %s", st.Status)
	}
	if err := st.Invariant(); err != nil {
		t.Fatalf("invariant: %v", err)
	}
	if !ValidID(st.SessionID) {
		t.Fatalf("session id %q does not match spec format", st.SessionID)
	}
	if st.ContainerName != "vibedom-"+filepath.Base(dir) {
		t.Fatalf("unexpected container name %q", st.ContainerName)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ws := t.TempDir()
	st, err := Create(ws, RuntimeApple)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	sessionDir := t.TempDir()
	if err := st.Save(sessionDir); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(sessionDir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded != st {
		t.Fatalf("round trip mismatch:\n got  %+v\n want %+v", loaded, st)
	}
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(t.TempDir())
	if err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadCorrupt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, StateFileName)
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(dir)
	if !strings.Contains(err.Error(), "corrupt") {
		t.Fatalf("expected corrupt error, got %v", err)
	}
}

func TestMarkCompleteAndAbandoned(t *testing.T) {
	ws := t.TempDir()
	st, err := Create(ws, RuntimeDocker)
	if err != nil {
		t.Fatal(err)
	}
	sessionDir := t.TempDir()
	if err := st.Save(sessionDir); err != nil {
		t.Fatal(err)
	}

	completed := st
	if err := completed.MarkComplete(sessionDir, filepath.Join(sessionDir, "repo.bundle")); err != nil {
		t.Fatalf("MarkComplete: %v", err)
	}
	if err := completed.Invariant(); err != nil {
		t.Fatalf("invariant after complete: %v", err)
	}
	if completed.EndedAt == nil || completed.BundlePath == nil {
		t.Fatalf("expected ended_at and bundle_path set")
	}

	abandoned := st
	if err := abandoned.MarkAbandoned(sessionDir); err != nil {
		t.Fatalf("MarkAbandoned: %v", err)
	}
	if err := abandoned.Invariant(); err != nil {
		t.Fatalf("invariant after abandon: %v", err)
	}
	if abandoned.BundlePath != nil {
		t.Fatalf("expected nil bundle_path on abandoned session")
	}
}

func TestDirNameSortable(t *testing.T) {
	ws := t.TempDir()
	st, err := Create(ws, RuntimeDocker)
	if err != nil {
		t.Fatal(err)
	}
	name, err := st.DirName()
	if err != nil {
		t.Fatalf("DirName: %v", err)
	}
	if !strings.HasPrefix(name, "session-") {
		t.Fatalf("unexpected dir name %q", name)
	}
}
