package cli

import (
	"fmt"

	"github.com/vibedom/vibedom/internal/cleanup"
	"github.com/vibedom/vibedom/internal/session"
	"github.com/vibedom/vibedom/internal/ui"
)

// cmdPrune implements `prune [--force] [--dry-run]` (spec §4.10's `prune`
// row): delete every session whose status isn't running.
func cmdPrune(app *App, args []string) {
	force, dryRun := parseCleanupFlags(args)
	all, err := app.Registry.All()
	if err != nil {
		ui.Fatal(err)
	}
	candidates := cleanup.FilterNotRunning(all)
	runCleanup(app, all, candidates, force, dryRun, "prune")
}

func parseCleanupFlags(args []string) (force, dryRun bool) {
	for _, a := range args {
		switch a {
		case "--force":
			force = true
		case "--dry-run":
			dryRun = true
		}
	}
	return force, dryRun
}

// runCleanup is shared by prune and housekeeping: list what would be
// deleted, confirm unless --force, then delete (or, on --dry-run, only
// list). It also reconciles orphan containers - ones the runtime still
// knows about but no session directory under all claims - since those are
// exactly the state.json-authoritative model's blind spot (spec §4.9).
func runCleanup(app *App, all, candidates []session.Session, force, dryRun bool, cmdName string) {
	orphans := orphanContainerNames(app, all, cmdName)

	if len(candidates) == 0 && len(orphans) == 0 {
		ui.Dimf("%s: nothing to delete", cmdName)
		return
	}
	for _, s := range candidates {
		fmt.Fprintf(app.Stdout, "  %s  (%s, %s)\n", s.State.SessionID, s.State.Status, s.Dir)
	}
	for _, name := range orphans {
		fmt.Fprintf(app.Stdout, "  %s  (orphan container, no session directory)\n", name)
	}
	if dryRun {
		ui.Dimf("%s: %d session(s) and %d orphan container(s) would be deleted (dry run)", cmdName, len(candidates), len(orphans))
		return
	}
	if !force {
		confirmed, ok := ui.Confirm(fmt.Sprintf("delete %d session(s) and %d orphan container(s)?", len(candidates), len(orphans)), false, app.Stdin, app.Stdout)
		if !ok || !confirmed {
			ui.Dimf("%s: cancelled", cmdName)
			return
		}
	}
	for _, s := range candidates {
		cleanup.Delete(s.Dir)
	}
	for _, name := range orphans {
		if err := app.Runtime.Stop(name); err != nil {
			ui.Warnf("%s: failed to remove orphan container %s: %v", cmdName, name, err)
		}
	}
	ui.Successf("%s: deleted %d session(s), %d orphan container(s)", cmdName, len(candidates), len(orphans))
}

// orphanContainerNames reports cleanup.OrphanContainers, but treats a
// missing or unreachable runtime as "nothing to reconcile" rather than a
// fatal error: prune/housekeeping must still work when no container
// runtime is installed, since their primary job is pruning session
// directories.
func orphanContainerNames(app *App, all []session.Session, cmdName string) []string {
	if app.Runtime == nil {
		return nil
	}
	orphans, err := cleanup.OrphanContainers(app.Runtime, all)
	if err != nil {
		ui.Warnf("%s: failed to list containers for orphan reconcile: %v", cmdName, err)
		return nil
	}
	return orphans
}
