package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "settings.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if settings != Defaults() {
		t.Fatalf("expected defaults, got %+v", settings)
	}
}

func TestLoadParsesAllThreeTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	content := `
schema_version = 1

[paths]
logs_base = "/custom/sessions"
config_base = "/custom/config"

[container]
image = "example.com/vibedom-sandbox:v2"

[housekeeping]
default_days = 14
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	settings, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if settings.Paths.LogsBase != "/custom/sessions" || settings.Paths.ConfigBase != "/custom/config" {
		t.Fatalf("unexpected paths: %+v", settings.Paths)
	}
	if settings.Container.Image != "example.com/vibedom-sandbox:v2" {
		t.Fatalf("unexpected image: %s", settings.Container.Image)
	}
	if settings.Housekeeping.DefaultDays != 14 {
		t.Fatalf("unexpected default_days: %d", settings.Housekeeping.DefaultDays)
	}
}

func TestLoadIgnoresUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	content := `
schema_version = 1
totally_unknown_key = "whatever"

[container]
image = "a/b:c"

[some_future_table]
x = 1
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	settings, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if settings.Container.Image != "a/b:c" {
		t.Fatalf("unexpected image: %s", settings.Container.Image)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	got, err := ExpandHome("~/.vibedom/sessions")
	if err != nil {
		t.Fatalf("ExpandHome: %v", err)
	}
	want := filepath.Join(home, ".vibedom", "sessions")
	if got != want {
		t.Fatalf("ExpandHome = %q, want %q", got, want)
	}
}

func TestExpandHomeLeavesAbsolutePathAlone(t *testing.T) {
	got, err := ExpandHome("/already/absolute")
	if err != nil {
		t.Fatalf("ExpandHome: %v", err)
	}
	if got != "/already/absolute" {
		t.Fatalf("ExpandHome = %q", got)
	}
}
