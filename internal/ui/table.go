package ui

import (
	"fmt"
	"regexp"
	"strings"
)

var ansiStripRe = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// displayWidth measures a cell's visible width, skipping ANSI escapes so a
// colorized status cell (e.g. StyleStatus's output) still lines up with its
// plain neighbors - the same problem the teacher's padRightANSI solves for
// `si`'s own tables, trimmed here since vibedom's cell content is always
// ASCII (session ids, workspace names, timestamps).
func displayWidth(s string) int {
	return len([]rune(ansiStripRe.ReplaceAllString(s, "")))
}

func padRightANSI(s string, width int) string {
	if visible := displayWidth(s); visible < width {
		return s + strings.Repeat(" ", width-visible)
	}
	return s
}

// PrintTable renders a gutter-separated, column-aligned table the way the
// teacher's printAlignedTable does, used by the `list` command.
func PrintTable(headers []string, rows [][]string) {
	if len(headers) == 0 {
		return
	}
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = displayWidth(h)
	}
	for _, row := range rows {
		for i := range headers {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			if w := displayWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	printRow := func(row []string) {
		cells := make([]string, len(headers))
		for i := range headers {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			cells[i] = padRightANSI(cell, widths[i])
		}
		fmt.Println(strings.TrimRight(strings.Join(cells, "  "), " "))
	}
	printRow(headers)
	for _, row := range rows {
		printRow(row)
	}
}
