package validation

import (
	"regexp"
	"strings"
)

// Conservative shape check: one @, no whitespace, a dot somewhere in the
// domain part. False negatives are preferred over addresses that break
// downstream mail delivery.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const maxEmailLength = 254

// SanitizeText trims surrounding whitespace and truncates to maxLength
// characters. Truncation counts runes, not bytes, so multi-byte text is
// never cut mid-character, and the result is re-trimmed because the cut can
// land on a space. Missing/empty input yields an empty string, never an
// error.
func SanitizeText(value string, maxLength int) string {
	trimmed := strings.TrimSpace(value)
	if maxLength >= 0 {
		if runes := []rune(trimmed); len(runes) > maxLength {
			trimmed = strings.TrimSpace(string(runes[:maxLength]))
		}
	}
	return trimmed
}

// SanitizeHTML escapes the five HTML-significant characters for text that
// ends up inside notification email bodies.
func SanitizeHTML(value string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#039;",
	)
	return r.Replace(value)
}

// IsValidEmail reports whether value looks like a deliverable address.
// Not full RFC validation on purpose.
func IsValidEmail(value string) bool {
	if len(value) > maxEmailLength {
		return false
	}
	return emailRegex.MatchString(value)
}
