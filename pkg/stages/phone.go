package stages

import (
	"fmt"
	"strings"
	"unicode"
)

// NormalizePhone coerces a dialable number into E.164. Numbers already
// carrying a plus prefix pass through; a leading zero is replaced by the
// default country code, bare ten-digit numbers get it prepended, and anything
// else is assumed to already include a country code.
func NormalizePhone(raw, defaultCountryCode string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) || r == '+' {
			return r
		}
		return -1
	}, raw)

	if cleaned == "" || cleaned == "+" {
		return "", fmt.Errorf("no digits in phone number %q", raw)
	}
	if strings.HasPrefix(cleaned, "+") {
		return cleaned, nil
	}
	switch {
	case strings.HasPrefix(cleaned, "0"):
		return defaultCountryCode + cleaned[1:], nil
	case len(cleaned) == 10:
		return defaultCountryCode + cleaned, nil
	default:
		return "+" + cleaned, nil
	}
}
