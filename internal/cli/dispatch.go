package cli

// command is a single entry in the dispatch table: a command name mapped
// to the function that implements it. Grounded in the teacher's
// rootCommandHandler shape (root_commands.go), trimmed of the lazy-load
// machinery that exists there only to keep ~30 provider bridges out of a
// cold CLI invocation's import graph - nine commands need no such lazing.
type command func(app *App, args []string)

// commands is the full table for spec §4.10's command surface.
var commands = map[string]command{
	"run":              cmdRun,
	"stop":             cmdStop,
	"list":             cmdList,
	"attach":           cmdAttach,
	"review":           cmdReview,
	"merge":            cmdMerge,
	"reload-whitelist": cmdReloadWhitelist,
	"prune":            cmdPrune,
	"housekeeping":     cmdHousekeeping,
}

// Dispatch looks up cmd in the command table and runs it with args. It
// reports whether cmd was recognized; an unrecognized command is the
// caller's cue to print usage and exit 1 (spec §6.5).
func Dispatch(app *App, cmd string, args []string) bool {
	handler, ok := commands[cmd]
	if !ok {
		return false
	}
	handler(app, args)
	return true
}
