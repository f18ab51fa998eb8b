// Package masking redacts customer identifiers before they reach logs.
// Case records and call transcripts keep the real values; only log output
// goes through the masker.
package masking

import "strings"

// Service applies the compiled PII patterns to free text. Created once at
// startup; thread-safe and stateless aside from the compiled patterns.
type Service struct {
	patterns []*CompiledPattern
}

// NewService compiles the builtin patterns.
func NewService() *Service {
	return &Service{patterns: compileBuiltinPatterns()}
}

// MaskText replaces every pattern match in text with its placeholder.
func (s *Service) MaskText(text string) string {
	if text == "" {
		return text
	}
	for _, p := range s.patterns {
		text = p.Regex.ReplaceAllString(text, p.Replacement)
	}
	return text
}

// Phone masks a known phone number for logging, keeping the last four
// digits so operators can still correlate with provider dashboards.
func Phone(number string) string {
	digits := 0
	for _, r := range number {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if digits <= 4 {
		return strings.Repeat("*", len(number))
	}
	keepFrom := digits - 4
	var b strings.Builder
	seen := 0
	for _, r := range number {
		if r >= '0' && r <= '9' {
			if seen < keepFrom {
				b.WriteRune('*')
			} else {
				b.WriteRune(r)
			}
			seen++
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
