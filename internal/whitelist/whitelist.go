// Package whitelist implements the domain whitelist loader and
// subdomain-suffix matcher used by the egress filter (spec §4.7, C7).
package whitelist

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"
)

// ErrMissing is logged (not returned as a fatal startup error) when the
// whitelist file is absent; the in-memory set stays empty, which blocks
// every request (spec §7: WhitelistMissing).
var ErrMissing = fmt.Errorf("whitelist: file not present")

// Set is a domain whitelist with subdomain-suffix matching, safe for the
// SIGHUP hot-reload's single reference swap (spec §4.8.3): callers always
// go through Allowed/Reload, never touch the underlying map directly.
type Set struct {
	mu      sync.RWMutex
	domains map[string]struct{}
	path    string
}

// Load reads path, stripping whitespace and dropping blank lines and
// comment lines (leading "#"), lowercasing every entry. A missing file
// yields an empty, non-nil Set and ErrMissing rather than failing the
// caller outright - the proxy's "continue processing, be loud" policy.
func Load(path string) (*Set, error) {
	s := &Set{domains: map[string]struct{}{}, path: path}
	if err := s.reload(); err != nil {
		return s, err
	}
	return s, nil
}

// Reload re-reads the whitelist file from its original path and swaps in
// the new set atomically (spec §4.8.3's SIGHUP handler).
func (s *Set) Reload() error {
	return s.reload()
}

func (s *Set) reload() error {
	domains, err := parseFile(s.path)
	if err != nil {
		s.mu.Lock()
		s.domains = map[string]struct{}{}
		s.mu.Unlock()
		if os.IsNotExist(err) {
			return ErrMissing
		}
		return fmt.Errorf("whitelist: read %s: %w", s.path, err)
	}
	s.mu.Lock()
	s.domains = domains
	s.mu.Unlock()
	return nil
}

func parseFile(path string) (map[string]struct{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	domains := map[string]struct{}{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		domains[strings.ToLower(line)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return domains, nil
}

// Allowed implements spec §4.7's subdomain matching: for a query
// "a.b.c.d", consider each suffix "a.b.c.d", "b.c.d", "c.d", "d"; allow if
// any is in the set. An empty set blocks everything.
func (s *Set) Allowed(host string) bool {
	host = strings.ToLower(strings.TrimSpace(host))
	if host == "" {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.domains) == 0 {
		return false
	}
	labels := strings.Split(host, ".")
	for i := range labels {
		suffix := strings.Join(labels[i:], ".")
		if _, ok := s.domains[suffix]; ok {
			return true
		}
	}
	return false
}
