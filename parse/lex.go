package parse

import (
	"io"
	"strings"

	"github.com/google/shlex"
)

// Split breaks s into arguments the way a POSIX shell would: quotes group words, a
// backslash escapes the next character and '#' starts a comment. A dangling quote or
// escape is an error.
func Split(s string) ([]string, error) {
	lexer := shlex.NewLexer(strings.NewReader(s))

	args := make([]string, 0, strings.Count(s, " ")+1)
	for {
		word, err := lexer.Next()
		if err == io.EOF {
			return args, nil
		}
		if err != nil {
			return nil, err
		}
		args = append(args, word)
	}
}
