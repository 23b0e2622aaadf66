package runtime

import "errors"

// ErrNoRuntime is returned by Detect when neither the Apple container CLI
// nor docker is on PATH (spec §7: NoRuntime).
var ErrNoRuntime = errors.New("runtime: no container runtime found on PATH (looked for \"container\" and \"docker\")")
