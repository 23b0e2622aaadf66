package scrub

import "github.com/vibedom/vibedom/internal/patterns"

// dedupKey identifies a finding for chunk-boundary deduplication (spec
// §9 decision: dedup on (pattern_id, absolute_start, absolute_end)).
type dedupKey struct {
	patternID  string
	start, end int
}

// scrubChunked implements spec §4.8.2 step 1 for inputs over chunkSize:
// process overlapping chunks, each chunkSize+overlap bytes starting every
// chunkSize bytes, dedup findings across chunk boundaries, then apply the
// same overlap-resolution/replace/reverse steps as the non-chunked path.
func scrubChunked(s string, lib *patterns.Library) (string, []Finding) {
	var all []match
	seen := map[dedupKey]bool{}
	for base := 0; base < len(s); base += chunkSize {
		end := base + chunkSize + overlap
		if end > len(s) {
			end = len(s)
		}
		chunk := s[base:end]
		for _, m := range collectMatches(chunk, lib, base) {
			key := dedupKey{patternID: m.rule.ID, start: m.start, end: m.end}
			if seen[key] {
				continue
			}
			seen[key] = true
			all = append(all, m)
		}
	}
	return applyMatches(s, all)
}
