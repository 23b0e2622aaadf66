package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/vibedom/vibedom/internal/cleanup"
	"github.com/vibedom/vibedom/internal/ui"
)

// cmdHousekeeping implements `housekeeping [--days N] [--force] [--dry-run]`
// (spec §4.10's `housekeeping` row): delete non-running sessions older than
// N days, defaulting to settings.toml's housekeeping.default_days.
func cmdHousekeeping(app *App, args []string) {
	days, force, dryRun, err := parseHousekeepingArgs(args, app.Settings.Housekeeping.DefaultDays)
	if err != nil {
		ui.Fatal(err)
	}
	all, err := app.Registry.All()
	if err != nil {
		ui.Fatal(err)
	}
	notRunning := cleanup.FilterNotRunning(all)
	candidates := cleanup.FilterByAge(notRunning, days, time.Now().UTC())
	runCleanup(app, all, candidates, force, dryRun, "housekeeping")
}

func parseHousekeepingArgs(args []string, defaultDays int) (days int, force, dryRun bool, err error) {
	days = defaultDays
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--days":
			i++
			if i >= len(args) {
				return 0, false, false, fmt.Errorf("housekeeping: --days requires a value")
			}
			n, convErr := strconv.Atoi(args[i])
			if convErr != nil {
				return 0, false, false, fmt.Errorf("housekeeping: invalid --days value %q", args[i])
			}
			days = n
		case "--force":
			force = true
		case "--dry-run":
			dryRun = true
		}
	}
	return days, force, dryRun, nil
}
