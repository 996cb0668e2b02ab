package types

import (
	"fmt"
	"strings"
)

// OptionType constrains the values a command, flag or global flag accepts
type OptionType int

const (
	Unset   OptionType = iota // Unset denotes that no type was declared
	Void                      // Void denotes an option which does not accept a value
	String                    // String accepts any scalar, numbers and booleans keep their raw text
	Number                    // Number accepts a numeric literal
	Boolean                   // Boolean accepts the literals true and false
	Array                     // Array accepts a sequence, strings are split on ','
	Object                    // Object accepts a brace-delimited JSON object
	JSON                      // JSON is an alias of Object
	KVP                       // KVP accepts a key-value-pair set (!key:value|key2:value2)
	Date                      // Date accepts any date format understood by dateparse
)

var optionTypeNames = map[OptionType]string{
	Unset:   "unset",
	Void:    "void",
	String:  "string",
	Number:  "number",
	Boolean: "boolean",
	Array:   "array",
	Object:  "object",
	JSON:    "json",
	KVP:     "kvp",
	Date:    "date",
}

// String returns the string representation of an OptionType
func (o OptionType) String() string {
	if name, ok := optionTypeNames[o]; ok {
		return name
	}

	return "unknown"
}

// ParseOptionType returns the OptionType named s
func ParseOptionType(s string) (OptionType, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for t, name := range optionTypeNames {
		if t != Unset && name == needle {
			return t, nil
		}
	}

	return Unset, fmt.Errorf("unknown option type %q", s)
}

// JoinTypes renders a list of option types for messages, e.g. "string|number"
func JoinTypes(ts []OptionType) string {
	names := make([]string, 0, len(ts))
	for _, t := range ts {
		names = append(names, t.String())
	}

	return strings.Join(names, "|")
}

// HasType reports whether t is contained in ts
func HasType(ts []OptionType, t OptionType) bool {
	for _, c := range ts {
		if c == t {
			return true
		}
	}

	return false
}
