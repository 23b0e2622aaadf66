package bundle

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMergeRefusesDirtyTree(t *testing.T) {
	host := t.TempDir()
	initRepo(t, host)
	if err := os.WriteFile(filepath.Join(host, "README.md"), []byte("hi"), 0o644); err != nil {
		t.Fatal(err)
	}
	runOrFatal(t, host, "add", "-A")
	runOrFatal(t, host, "commit", "-m", "initial")
	// Dirty it.
	if err := os.WriteFile(filepath.Join(host, "README.md"), []byte("dirty"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := Merge(host, host, MergeOptions{})
	if err != ErrDirtyTree {
		t.Fatalf("expected ErrDirtyTree, got %v", err)
	}
}

func TestMergeSquashBringsInChanges(t *testing.T) {
	host := t.TempDir()
	initRepo(t, host)
	if err := os.WriteFile(filepath.Join(host, "README.md"), []byte("hi"), 0o644); err != nil {
		t.Fatal(err)
	}
	runOrFatal(t, host, "add", "-A")
	runOrFatal(t, host, "commit", "-m", "initial")
	hostBranch := currentBranchOrFatal(t, host)

	// Session repo: clone of host with one extra commit.
	session := t.TempDir()
	runOrFatal(t, ".", "clone", host, session)
	initRepo(t, session) // reset identity in the clone for commit authorship
	runOrFatal(t, session, "checkout", hostBranch)
	if err := os.WriteFile(filepath.Join(session, "extra.txt"), []byte("foo\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	runOrFatal(t, session, "add", "-A")
	runOrFatal(t, session, "commit", "-m", "add extra.txt")

	if err := Merge(host, session, MergeOptions{Branch: hostBranch}); err != nil {
		t.Fatalf("Merge: %v", err)
	}

	if _, err := os.Stat(filepath.Join(host, "extra.txt")); err != nil {
		t.Fatalf("expected extra.txt to be present in host tree after merge: %v", err)
	}
	clean, err := IsClean(host)
	if err != nil {
		t.Fatalf("IsClean: %v", err)
	}
	if !clean {
		t.Fatal("expected a clean host tree after squash commit")
	}
}

func currentBranchOrFatal(t *testing.T, dir string) string {
	t.Helper()
	b, err := CurrentBranch(dir)
	if err != nil {
		t.Fatal(err)
	}
	return b
}
