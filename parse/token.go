package parse

import "strings"

// Assignment separates a name from its value in name=value tokens
const Assignment = "="

// Token is an argument split at its first '='
type Token struct {
	Name     string
	Value    string
	HasValue bool
}

// SplitToken splits arg at its first '='. Values may contain further '=' characters.
func SplitToken(arg string) Token {
	name, value, found := strings.Cut(arg, Assignment)

	return Token{Name: name, Value: value, HasValue: found}
}

// Dangling reports a token written as name= with nothing after the '='
func (t Token) Dangling() bool {
	return t.HasValue && t.Value == ""
}
