// Command vibedom is the host-side controller for running an untrusted
// coding agent inside an isolated container, mediating its file and
// network access (spec §1).
package main

import (
	"fmt"
	"os"

	"github.com/vibedom/vibedom/internal/cli"
	"github.com/vibedom/vibedom/internal/ui"
)

func usage() {
	fmt.Print(`vibedom <command> [args...]

Commands:
  run <workspace> --preflight-report path [--runtime docker|apple]
  stop [session_id_or_workspace]
  list
  attach [session_id_or_workspace]
  review <session_id_or_workspace> [--branch name]
  merge <session_id_or_workspace> [--branch name] [--merge]
  reload-whitelist <session_id_or_workspace>
  prune [--force] [--dry-run]
  housekeeping [--days N] [--force] [--dry-run]
`)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	cmd := os.Args[1]
	args := os.Args[2:]

	if cmd == "help" || cmd == "-h" || cmd == "--help" {
		usage()
		return
	}

	app, err := cli.NewApp(os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		ui.Fatal(err)
	}
	if !cli.Dispatch(app, cmd, args) {
		ui.Warnf("unknown command %q", cmd)
		usage()
		os.Exit(1)
	}
}
