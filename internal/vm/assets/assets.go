// Package assets embeds the container-side script artifacts the VM
// lifecycle manager copies into a session container (spec §4.6).
package assets

import _ "embed"

// BootstrapScript is run once inside the container before readiness is
// signaled: clone-or-init the workspace into /work/repo, seed a fixed git
// identity, touch /tmp/.vm-ready.
//
//go:embed bootstrap.sh
var BootstrapScript string
