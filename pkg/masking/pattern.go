package masking

import (
	"log/slog"
	"regexp"
)

// CompiledPattern is one regex-based PII pattern.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
}

// builtinPatterns cover the customer identifiers that can show up in free
// text: spoken phone numbers, email addresses, and full VINs. Patterns are
// intentionally greedy; over-masking a log line is cheaper than leaking.
var builtinPatterns = []struct {
	name        string
	pattern     string
	replacement string
}{
	{
		name:        "phone_number",
		pattern:     `\+?\d[\d\s().-]{7,14}\d`,
		replacement: "***PHONE***",
	},
	{
		name:        "email",
		pattern:     `[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`,
		replacement: "***EMAIL***",
	},
	{
		name:        "vin",
		pattern:     `\b[A-HJ-NPR-Z0-9]{17}\b`,
		replacement: "***VIN***",
	},
}

// compileBuiltinPatterns compiles the pattern table. An invalid pattern is
// logged and skipped rather than failing startup.
func compileBuiltinPatterns() []*CompiledPattern {
	compiled := make([]*CompiledPattern, 0, len(builtinPatterns))
	for _, p := range builtinPatterns {
		re, err := regexp.Compile(p.pattern)
		if err != nil {
			slog.Error("Skipping invalid masking pattern", "pattern", p.name, "error", err)
			continue
		}
		compiled = append(compiled, &CompiledPattern{
			Name:        p.name,
			Regex:       re,
			Replacement: p.replacement,
		})
	}
	return compiled
}
