package cli

import "testing"

func TestParseHousekeepingArgsDefaultsDays(t *testing.T) {
	days, force, dryRun, err := parseHousekeepingArgs(nil, 7)
	if err != nil {
		t.Fatalf("parseHousekeepingArgs: %v", err)
	}
	if days != 7 || force || dryRun {
		t.Fatalf("got days=%d force=%v dryRun=%v", days, force, dryRun)
	}
}

func TestParseHousekeepingArgsOverridesDays(t *testing.T) {
	days, force, dryRun, err := parseHousekeepingArgs([]string{"--days", "14", "--force", "--dry-run"}, 7)
	if err != nil {
		t.Fatalf("parseHousekeepingArgs: %v", err)
	}
	if days != 14 || !force || !dryRun {
		t.Fatalf("got days=%d force=%v dryRun=%v", days, force, dryRun)
	}
}

func TestParseHousekeepingArgsRejectsNonNumericDays(t *testing.T) {
	_, _, _, err := parseHousekeepingArgs([]string{"--days", "soon"}, 7)
	if err == nil {
		t.Fatal("expected an error for a non-numeric --days value")
	}
}
