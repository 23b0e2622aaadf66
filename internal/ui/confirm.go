package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Confirm prompts for a y/n confirmation, matching the teacher's
// confirmYN shape. Returns (confirmed, ok); ok is false when the input
// reaches EOF before any answer is read. No terminal check is made.
func Confirm(prompt string, defaultYes bool, in io.Reader, out io.Writer) (bool, bool) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		prompt = "Confirm"
	}
	def := "N"
	if defaultYes {
		def = "Y"
	}
	reader := bufio.NewReader(in)
	for {
		fmt.Fprintf(out, "%s [y/%s]: ", prompt, def)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return false, false
		}
		line = strings.TrimSpace(strings.ToLower(line))
		if line == "" {
			return defaultYes, true
		}
		switch line {
		case "y", "yes":
			return true, true
		case "n", "no":
			return false, true
		default:
			fmt.Fprintln(out, styleDim("please answer y or n"))
		}
	}
}

// ConfirmStdin is Confirm bound to os.Stdin/os.Stdout, matching confirmYN's
// defaults in the teacher. Commands call Confirm with the App's streams.
func ConfirmStdin(prompt string, defaultYes bool) (bool, bool) {
	return Confirm(prompt, defaultYes, os.Stdin, os.Stdout)
}
