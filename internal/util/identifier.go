package util

import "regexp"

var (
	alphaIdentifier        = regexp.MustCompile(`^[a-zA-Z-]+$`)
	alphanumericIdentifier = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)
)

// IsIdentifier reports whether s may name a command, flag or global flag. With onlyAlpha
// set identifiers consist of letters and dashes, otherwise digits are allowed as well.
func IsIdentifier(s string, onlyAlpha bool) bool {
	if onlyAlpha {
		return alphaIdentifier.MatchString(s)
	}

	return alphanumericIdentifier.MatchString(s)
}
