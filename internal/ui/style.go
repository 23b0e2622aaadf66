// Package ui implements the host CLI's output styling: ANSI colorization
// gated by terminal detection and env vars, plus the warnf/infof/successf/
// fatal helpers every vibedom command uses for stderr/stdout messages.
// Adapted from the teacher's util.go styling layer, renamed from the
// teacher's SI_* env vars and trimmed to what this CLI's 9 commands need
// (no help colorizer, no percent-based limit styling).
package ui

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

var ansiEnabled = initAnsiEnabled()

func initAnsiEnabled() bool {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" || strings.TrimSpace(os.Getenv("VIBEDOM_NO_COLOR")) != "" {
		return false
	}
	if strings.EqualFold(strings.TrimSpace(os.Getenv("TERM")), "dumb") {
		return false
	}
	if force := strings.TrimSpace(os.Getenv("VIBEDOM_COLOR")); force != "" {
		return force == "1" || strings.EqualFold(force, "true")
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func ansi(codes ...string) string {
	return "\x1b[" + strings.Join(codes, ";") + "m"
}

func colorize(s string, codes ...string) string {
	if !ansiEnabled || s == "" {
		return s
	}
	return ansi(codes...) + s + ansi("0")
}

func styleInfo(s string) string    { return colorize(s, "36") }
func styleSuccess(s string) string { return colorize(s, "32") }
func styleWarn(s string) string    { return colorize(s, "33") }
func styleError(s string) string   { return colorize(s, "31") }
func styleDim(s string) string     { return colorize(s, "90") }

// StyleStatus colors a session status the way the teacher's styleStatus
// groups arbitrary status strings into success/warn/error buckets.
func StyleStatus(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "running":
		return styleSuccess(status)
	case "complete":
		return styleInfo(status)
	case "abandoned":
		return styleError(status)
	default:
		return status
	}
}

func Warnf(format string, args ...interface{}) {
	fmt.Fprintln(os.Stderr, styleWarn("warning:")+" "+fmt.Sprintf(format, args...))
}

func Infof(format string, args ...interface{}) {
	fmt.Println(styleInfo(fmt.Sprintf(format, args...)))
}

func Successf(format string, args ...interface{}) {
	fmt.Println(styleSuccess(fmt.Sprintf(format, args...)))
}

// Fatal prints err in the error style and exits 1, matching the teacher's
// fatal(err) used at the top of every command's error path.
func Fatal(err error) {
	fmt.Fprintln(os.Stderr, styleError(err.Error()))
	os.Exit(1)
}

// Dimf prints a secondary/informational line, used for the "no sessions
// found" style messages that aren't warnings or errors.
func Dimf(format string, args ...interface{}) {
	fmt.Println(styleDim(fmt.Sprintf(format, args...)))
}
