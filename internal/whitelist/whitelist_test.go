package whitelist

import (
	"os"
	"path/filepath"
	"testing"
)

func writeWhitelist(t *testing.T, lines ...string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "whitelist.txt")
	content := ""
	for _, l := range lines {
		content += l + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestAllowedExactAndSubdomain(t *testing.T) {
	path := writeWhitelist(t, "example.com", "# comment", "", "  api.internal.example.org  ")
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cases := map[string]bool{
		"example.com":                 true,
		"www.example.com":             true,
		"a.b.example.com":             true,
		"notexample.com":              false,
		"example.com.evil.com":        false,
		"api.internal.example.org":    true,
		"deep.api.internal.example.org": true,
		"internal.example.org":        false,
	}
	for host, want := range cases {
		if got := s.Allowed(host); got != want {
			t.Errorf("Allowed(%q) = %v, want %v", host, got, want)
		}
	}
}

func TestAllowedIsCaseInsensitive(t *testing.T) {
	path := writeWhitelist(t, "Example.COM")
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !s.Allowed("WWW.EXAMPLE.com") {
		t.Fatal("expected case-insensitive match")
	}
}

func TestMissingFileBlocksEverything(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.txt")
	s, err := Load(path)
	if err != ErrMissing {
		t.Fatalf("expected ErrMissing, got %v", err)
	}
	if s.Allowed("example.com") {
		t.Fatal("expected an empty set to block everything")
	}
}

func TestReloadSwapsInNewContents(t *testing.T) {
	path := writeWhitelist(t, "example.com")
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !s.Allowed("example.com") {
		t.Fatal("expected example.com to be allowed before reload")
	}
	if err := os.WriteFile(path, []byte("other.com\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := s.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if s.Allowed("example.com") {
		t.Fatal("expected example.com to be blocked after reload")
	}
	if !s.Allowed("other.com") {
		t.Fatal("expected other.com to be allowed after reload")
	}
}

func TestEmptyWhitelistFileBlocksEverything(t *testing.T) {
	path := writeWhitelist(t)
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Allowed("example.com") {
		t.Fatal("expected an empty whitelist file to block everything")
	}
}
