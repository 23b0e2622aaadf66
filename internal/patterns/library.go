// Package patterns implements the DLP pattern library (spec §3.3, §4.7,
// C7): TOML-declared secret rules plus a fixed built-in PII set, each
// compiled with Go's standard regexp engine.
package patterns

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Category distinguishes a rule's audit-log classification (spec §3.4).
type Category string

const (
	CategorySecret Category = "SECRET"
	CategoryPII    Category = "PII"
)

// Rule is one compiled pattern, either loaded from TOML or a built-in PII
// rule.
type Rule struct {
	ID          string
	Description string
	Category    Category
	Regex       *regexp.Regexp
	Placeholder string
}

// CompileWarning records a rule that failed to compile (spec §7:
// PatternCompileWarn) - logged, not fatal, and the rule is dropped from the
// returned Library.
type CompileWarning struct {
	RuleID string
	Err    error
}

func (w CompileWarning) String() string {
	return fmt.Sprintf("pattern %q failed to compile: %v", w.RuleID, w.Err)
}

// Library is the full set of compiled rules the scrubber runs against
// input: TOML-declared secret rules plus the built-in PII rules.
type Library struct {
	Rules    []Rule
	Warnings []CompileWarning
	// AllFailed is set when every TOML rule failed to compile, matching
	// spec §4.7's "if all patterns fail, emit an additional 'no secrets
	// will be scrubbed' warning" (PII rules are exempt: a PII compile
	// failure is a programmer error, not a data condition).
	AllFailed bool
}

type tomlFile struct {
	Rules []tomlRule `toml:"rules"`
}

type tomlRule struct {
	ID          string `toml:"id"`
	Description string `toml:"description"`
	Regex       string `toml:"regex"`
}

// placeholderFor derives "[REDACTED_<UPPER_SNAKE_ID>]" from a kebab-case
// rule id (spec §3.4, spec "Placeholder for rule foo-bar -> [REDACTED_FOO_BAR]").
func placeholderFor(id string) string {
	upper := strings.ToUpper(strings.ReplaceAll(id, "-", "_"))
	return "[REDACTED_" + upper + "]"
}

// Load parses a TOML pattern library file and appends the built-in PII
// rules, compiling everything with the standard regexp engine (spec §4.7:
// "compile with the target language's default engine" - some shipped
// PCRE-only patterns are expected to fail here, by design).
func Load(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("patterns: read %s: %w", path, err)
	}
	var file tomlFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("patterns: parse %s: %w", path, err)
	}

	lib := &Library{}
	compiledAny := false
	for _, r := range file.Rules {
		re, err := regexp.Compile(r.Regex)
		if err != nil {
			lib.Warnings = append(lib.Warnings, CompileWarning{RuleID: r.ID, Err: err})
			continue
		}
		compiledAny = true
		lib.Rules = append(lib.Rules, Rule{
			ID:          r.ID,
			Description: r.Description,
			Category:    CategorySecret,
			Regex:       re,
			Placeholder: placeholderFor(r.ID),
		})
	}
	if len(file.Rules) > 0 && !compiledAny {
		lib.AllFailed = true
	}

	lib.Rules = append(lib.Rules, builtinPII()...)
	return lib, nil
}
