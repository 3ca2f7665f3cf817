package identifier

import "strings"

// Normalize canonicalizes a raw identifier cell value for lookup and cache
// keying. Surrounding whitespace is trimmed and a single trailing ".0" float
// artifact is stripped when the remainder is purely numeric. Leading zeros are
// preserved; values with non-numeric content pass through trimmed so the
// registry can reject them itself.
func Normalize(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ""
	}
	if rest, ok := strings.CutSuffix(value, ".0"); ok && allDigits(rest) {
		value = rest
	}
	return value
}

// IsBlank reports whether the cell value carries no identifier at all.
func IsBlank(raw string) bool {
	return strings.TrimSpace(raw) == ""
}

func allDigits(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
