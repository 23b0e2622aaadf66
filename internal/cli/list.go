package cli

import (
	"path/filepath"
	"time"

	"github.com/vibedom/vibedom/internal/ui"
)

// cmdList implements `list` (spec §4.10's `list` row): print every known
// session's id, workspace, status, and age.
func cmdList(app *App, args []string) {
	sessions, err := app.Registry.All()
	if err != nil {
		ui.Fatal(err)
	}
	if len(sessions) == 0 {
		ui.Dimf("no sessions found")
		return
	}
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		rows = append(rows, []string{
			s.State.SessionID,
			filepath.Base(s.State.Workspace),
			ui.StyleStatus(string(s.State.Status)),
			s.State.Age().Round(time.Second).String(),
		})
	}
	ui.PrintTable([]string{"SESSION", "WORKSPACE", "STATUS", "AGE"}, rows)
}
