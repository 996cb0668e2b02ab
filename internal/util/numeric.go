package util

import (
	"strconv"
	"strings"
)

type Number struct {
	Int        int64
	Float      float64
	IsInt      bool
	IsFloat    bool
	IsNegative bool
}

// Value returns the number as a float64 whichever way it was parsed
func (n Number) Value() float64 {
	if n.IsInt {
		return float64(n.Int)
	}
	return n.Float
}

// ParseNumeric parses decimal integers and floats as well as 0x, 0o and 0b prefixed
// integers. Surrounding white space is ignored. Textual forms such as "inf" or "NaN",
// digit separators and leading-zero octals are not numbers.
func ParseNumeric(s string) (n Number, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsRune(s, '_') {
		return n, false
	}

	// Try parsing as int
	if i, err := strconv.ParseInt(s, intBase(s), 64); err == nil {
		n.Int = i
		n.IsInt = true
		n.IsNegative = i < 0
		return n, true
	}

	if !isDecimalFloat(s) {
		return n, false
	}

	// Try float if not int
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		n.Float = f
		n.IsFloat = true
		n.IsNegative = f < 0
		return n, true
	}

	return n, false
}

func intBase(s string) int {
	unsigned := strings.TrimLeft(s, "+-")
	if len(unsigned) > 2 && unsigned[0] == '0' {
		switch unsigned[1] {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			return 0
		}
	}

	return 10
}

// isDecimalFloat rejects inputs strconv accepts but which are not plain decimal literals
func isDecimalFloat(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == '.' || r == 'e' || r == 'E' || r == '+' || r == '-':
		default:
			return false
		}
	}

	return true
}
