// Package scrub implements the DLP scrubbing algorithm (spec §4.8.2): find
// regex matches from a pattern library, resolve overlaps, replace
// right-to-left, and report findings in human (left-to-right) order.
package scrub

import (
	"sort"

	"github.com/vibedom/vibedom/internal/patterns"
)

// chunkSize and overlap implement spec §9's decided chunk boundary
// arithmetic: inputs over chunkSize switch to chunked mode, chunks start
// every chunkSize bytes and each chunk reads chunkSize+overlap bytes so
// that a match straddling a boundary is fully visible in at least one
// chunk.
const (
	chunkSize = 512_000
	overlap   = 2_048
)

// Finding is one scrubbed match, in the shape spec §3.4 requires for the
// audit log.
type Finding struct {
	PatternID   string
	Category    patterns.Category
	MatchedText string
	Start       int
	End         int
	Placeholder string
}

type match struct {
	start, end int
	rule       *patterns.Rule
	text       string
}

// Scrub runs every rule in lib against s and returns the redacted string
// plus the findings, in left-to-right order (spec §4.8.2).
func Scrub(s string, lib *patterns.Library) (string, []Finding) {
	if lib == nil || len(lib.Rules) == 0 {
		return s, nil
	}
	if len(s) > chunkSize {
		return scrubChunked(s, lib)
	}
	matches := collectMatches(s, lib, 0)
	return applyMatches(s, matches)
}

// collectMatches runs every rule's FindAllStringSubmatchIndex (spec
// §4.8.2 step 2: full-scan iteration, preferring a capture group's span
// over the full match span when the rule has one) and offsets positions by
// base, for use by chunked callers.
func collectMatches(s string, lib *patterns.Library, base int) []match {
	var matches []match
	for i := range lib.Rules {
		rule := &lib.Rules[i]
		for _, idx := range rule.Regex.FindAllStringSubmatchIndex(s, -1) {
			start, end := idx[0], idx[1]
			if len(idx) >= 4 && idx[2] >= 0 && idx[3] >= 0 {
				start, end = idx[2], idx[3]
			}
			matches = append(matches, match{
				start: base + start,
				end:   base + end,
				rule:  rule,
				text:  s[start:end],
			})
		}
	}
	return matches
}

// resolveOverlaps implements spec §4.8.2 step 3 verbatim: sort matches by
// start descending, then greedily accept a match only if its end does not
// exceed the minimum accepted start seen so far.
func resolveOverlaps(matches []match) []match {
	sort.Slice(matches, func(i, j int) bool { return matches[i].start > matches[j].start })
	var accepted []match
	minStart := int(^uint(0) >> 1) // max int: nothing accepted yet
	for _, m := range matches {
		if m.end <= minStart {
			accepted = append(accepted, m)
			minStart = m.start
		}
	}
	return accepted
}

// applyMatches resolves overlaps, replaces right-to-left (step 4), and
// returns findings reversed to left-to-right order (step 5). accepted is
// sorted start-descending by resolveOverlaps, which is already the
// right-to-left replacement order.
func applyMatches(s string, matches []match) (string, []Finding) {
	accepted := resolveOverlaps(matches)
	out := []byte(s)
	findings := make([]Finding, 0, len(accepted))
	for _, m := range accepted {
		out = append(out[:m.start], append([]byte(m.rule.Placeholder), out[m.end:]...)...)
		findings = append(findings, Finding{
			PatternID:   m.rule.ID,
			Category:    m.rule.Category,
			MatchedText: m.text,
			Start:       m.start,
			End:         m.end,
			Placeholder: m.rule.Placeholder,
		})
	}
	// findings is currently in right-to-left (start-descending) order from
	// the replacement loop; reverse it to left-to-right for humans.
	for i, j := 0, len(findings)-1; i < j; i, j = i+1, j-1 {
		findings[i], findings[j] = findings[j], findings[i]
	}
	return string(out), findings
}
