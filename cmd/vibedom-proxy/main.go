// Command vibedom-proxy is the in-container egress filter (spec §4.8, C8):
// an explicit-mode HTTP(S) MITM proxy listening on 127.0.0.1:8080, wiring
// internal/whitelist, internal/patterns, internal/scrub, and internal/egress
// together the way bootstrap.sh wires the rest of the session together.
package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/elazarl/goproxy"

	"github.com/vibedom/vibedom/internal/egress"
	"github.com/vibedom/vibedom/internal/patterns"
	"github.com/vibedom/vibedom/internal/whitelist"
)

const (
	listenAddr   = "127.0.0.1:8080"
	configMount  = "/mnt/config"
	sessionMount = "/mnt/session"
)

func main() {
	whitelistPath := filepath.Join(configMount, "trusted_domains.txt")
	patternsPath := filepath.Join(configMount, "patterns.toml")
	auditPath := filepath.Join(sessionMount, "network.jsonl")

	list, err := whitelist.Load(whitelistPath)
	if err != nil {
		// ErrMissing yields an empty (block-everything) set; the proxy
		// still starts, per spec §7's WhitelistMissing: "local recovery".
		fmt.Fprintf(os.Stderr, "vibedom-proxy: %v\n", err)
	}

	lib, err := patterns.Load(patternsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vibedom-proxy: loading pattern library: %v\n", err)
		os.Exit(1)
	}
	if lib.AllFailed {
		fmt.Fprintln(os.Stderr, "vibedom-proxy: every configured pattern failed to compile, only built-in PII rules are active")
	}
	for _, w := range lib.Warnings {
		fmt.Fprintln(os.Stderr, "vibedom-proxy: "+w.String())
	}

	audit := egress.NewAuditLog(auditPath)
	addon := egress.New(list, lib, audit)

	proxy := goproxy.NewProxyHttpServer()
	addon.Register(proxy)

	egress.WatchReload(list)

	fmt.Fprintf(os.Stderr, "vibedom-proxy: listening on %s\n", listenAddr)
	if err := http.ListenAndServe(listenAddr, proxy); err != nil {
		fmt.Fprintf(os.Stderr, "vibedom-proxy: %v\n", err)
		os.Exit(1)
	}
}
