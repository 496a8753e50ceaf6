package usecase

import (
	"regexp"
	"strings"
)

// Package-level compiled regex patterns for performance
var (
	nonDigitRegex       = regexp.MustCompile(`\D`)
	multipleSpacesRegex = regexp.MustCompile(`\s+`)
)

// normalizeName produces a comparison key from a business or place name.
// Exact comparison only: no stemming, no edit distance. Common names are
// corroborated by address or phone in the matcher instead.
func normalizeName(s string) string {
	s = multipleSpacesRegex.ReplaceAllString(s, " ")
	return strings.ToLower(strings.TrimSpace(s))
}

// normalizeAddressPrefix produces a comparison key from an address string,
// keeping only the portion before the first comma. Mapping-provider
// addresses carry city/state/country suffixes ("100 Main St, Springfield,
// IL, USA") that directory records usually omit; comparing street portions
// tolerates both formats.
func normalizeAddressPrefix(s string) string {
	if idx := strings.Index(s, ","); idx >= 0 {
		s = s[:idx]
	}
	s = multipleSpacesRegex.ReplaceAllString(s, " ")
	return strings.ToLower(strings.TrimSpace(s))
}

// normalizePhone strips every non-digit character. Absent input normalizes
// to the empty string, which the matcher treats as "no phone".
func normalizePhone(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}
