package preflight

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadParsesApprovedReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	content := `{"findings":[{"rule_id":"aws-access-key","path":"src/config.py","line":12}],"approved":true}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	r, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !r.Approved {
		t.Fatal("expected Approved=true")
	}
	if len(r.Findings) != 1 || r.Findings[0].RuleID != "aws-access-key" {
		t.Fatalf("unexpected findings: %+v", r.Findings)
	}
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("expected an error for a missing report file")
	}
}

func TestLoadNoFindingsStillRespectsApprovedFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	if err := os.WriteFile(path, []byte(`{"findings":[],"approved":false}`), 0o644); err != nil {
		t.Fatal(err)
	}
	r, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if r.Approved {
		t.Fatal("expected Approved=false to be preserved even with no findings")
	}
}
