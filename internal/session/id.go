package session

import (
	"fmt"
	"math/rand"
	"regexp"
)

// idPattern matches spec §6.4: workspace segment(s) followed by exactly two
// lowercase dictionary words.
var idPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+-[a-z]+-[a-z-]+$`)

// GenerateID builds a "<workspace>-<adjective>-<noun>" session id. There is
// no collision detection at this layer: the session registry disambiguates
// same-named sessions by directory timestamp (spec §9).
func GenerateID(workspaceName string) string {
	adj := adjectives[rand.Intn(len(adjectives))]
	noun := nouns[rand.Intn(len(nouns))]
	return fmt.Sprintf("%s-%s-%s", workspaceName, adj, noun)
}

// ValidID reports whether id matches the session id format in spec §6.4.
func ValidID(id string) bool {
	return idPattern.MatchString(id)
}
