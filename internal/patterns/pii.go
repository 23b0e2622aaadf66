package patterns

import "regexp"

// builtinPII returns the fixed PII rule set (spec §3.3: "email,
// credit-card, SSN, US phone, private IPv4"). These are assumed to compile
// on every supported target; a failure here is a programmer error, so
// builtinPII panics rather than returning a CompileWarning (spec §4.7).
func builtinPII() []Rule {
	specs := []struct {
		id          string
		description string
		pattern     string
	}{
		{"email", "email address", `[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`},
		{"credit-card", "credit card number", `\b(?:\d[ -]?){13,16}\b`},
		{"ssn", "US social security number", `\b\d{3}-\d{2}-\d{4}\b`},
		{"us-phone", "US phone number", `\b(?:\+1[-. ]?)?\(?\d{3}\)?[-. ]?\d{3}[-. ]?\d{4}\b`},
		{"private-ipv4", "private IPv4 address", `\b(?:10(?:\.\d{1,3}){3}|172\.(?:1[6-9]|2\d|3[01])(?:\.\d{1,3}){2}|192\.168(?:\.\d{1,3}){2})\b`},
	}
	rules := make([]Rule, 0, len(specs))
	for _, s := range specs {
		rules = append(rules, Rule{
			ID:          s.id,
			Description: s.description,
			Category:    CategoryPII,
			Regex:       regexp.MustCompile(s.pattern),
			Placeholder: placeholderFor(s.id),
		})
	}
	return rules
}
