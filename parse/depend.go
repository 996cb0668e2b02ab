package parse

import (
	"fmt"
	"strings"
)

// Alternation separates the members of an OR-group such as "--user|--token"
const Alternation = "|"

// Group is a set of names of which at least one must be present
type Group []string

// String renders the group the way it was declared
func (g Group) String() string {
	return strings.Join(g, Alternation)
}

// Satisfied reports whether present accepts any member of the group
func (g Group) Satisfied(present func(name string) bool) bool {
	for _, name := range g {
		if present(name) {
			return true
		}
	}

	return false
}

// Groups parses dependency or requirement expressions. Every expression is a single
// name or an OR-group of names joined by '|'.
func Groups(exprs []string) ([]Group, error) {
	groups := make([]Group, 0, len(exprs))
	for _, expr := range exprs {
		members := strings.Split(expr, Alternation)
		group := make(Group, 0, len(members))
		for _, m := range members {
			m = strings.TrimSpace(m)
			if m == "" {
				return nil, fmt.Errorf("empty name in %q", expr)
			}
			group = append(group, m)
		}
		groups = append(groups, group)
	}

	return groups, nil
}
