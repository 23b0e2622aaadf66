package egress

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/vibedom/vibedom/internal/whitelist"
)

// WatchReload registers the SIGHUP handler spec §4.8.3 describes: on
// receipt, re-read the whitelist file and swap it in atomically. The
// pattern library is deliberately not touched here - it is a release-time
// artifact, not a reload target.
func WatchReload(list *whitelist.Set) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGHUP)
	go func() {
		for range sig {
			if err := list.Reload(); err != nil {
				fmt.Fprintf(os.Stderr, "egress: whitelist reload failed: %v\n", err)
			}
		}
	}()
}
