package goinput

import (
	"slices"
	"strings"

	"github.com/napalu/goinput/errs"
	"github.com/napalu/goinput/parse"
	"github.com/napalu/goinput/types"
)

// coerce checks value against the declared typing of the option named token. Untyped
// options accept any value; void options accept no value at all.
func coerce(token string, t types.OptionType, multi []types.OptionType, void bool, value types.Value) (types.Value, error) {
	if void {
		if !value.IsNull() {
			return value, errs.ErrUnexpectedValue.WithArgs(token)
		}
		return value, nil
	}

	declared := multi
	if t != types.Unset {
		declared = []types.OptionType{t}
	}
	if len(declared) == 0 {
		return value, nil
	}

	coerced, _, ok := types.CoerceAny(value, declared)
	if !ok {
		given := value.Kind().String()
		if value.IsNull() {
			given = types.Void.String()
		}
		return value, errs.ErrTypeMismatch.WithArgs(token, types.JoinTypes(declared), given)
	}

	return coerced, nil
}

// flagPresence reports whether a flag is present by token or by the alias of a present
// flag
func flagPresence(cmd *Command, parsed *ParsedArgs) func(name string) bool {
	return func(name string) bool {
		if parsed.Flag.Has(name) {
			return true
		}
		for _, token := range parsed.Flag.Keys() {
			if f, ok := cmd.flags.Get(token); ok && f.Alias == name {
				return true
			}
		}
		return false
	}
}

// checkRequired fails with the first required group none of whose members is present
func checkRequired(cmd *Command, parsed *ParsedArgs) error {
	if len(cmd.Required) == 0 {
		return nil
	}

	groups, err := parse.Groups(cmd.Required)
	if err != nil {
		return errs.ErrInvalidSpecification.WithArgs(cmd.Name, err.Error())
	}
	if cmd.flags == nil {
		return errs.ErrCommandRequiresFlag.WithArgs(cmd.Name, groups[0].String())
	}

	present := flagPresence(cmd, parsed)
	for _, group := range groups {
		if !group.Satisfied(present) {
			return errs.ErrCommandRequiresFlag.WithArgs(cmd.Name, group.String())
		}
	}

	return nil
}

// validateFlag runs the existence, void, conflict, dependency and type checks of the flag
// given as token and returns its declaration with the coerced value
func (p *Parser) validateFlag(cmd *Command, token string, value types.Value, parsed *ParsedArgs) (*Flag, types.Value, error) {
	f, ok := cmd.flags.Get(token)
	if !ok {
		candidates := cmd.flags.Keys()
		return nil, value, p.withSuggestion(errs.ErrUnknownFlag.WithArgs(token, cmd.Name), token, candidates)
	}

	if f.Void && !value.IsNull() {
		return f, value, errs.ErrUnexpectedValue.WithArgs(token)
	}

	present := flagPresence(cmd, parsed)
	for _, other := range f.Conflicts {
		if present(other) {
			return f, value, errs.ErrFlagConflict.WithArgs(token, conflictingToken(cmd, parsed, other))
		}
	}

	groups, err := parse.Groups(f.DependsOn)
	if err != nil {
		return f, value, errs.ErrInvalidSpecification.WithArgs(token, err.Error())
	}
	for _, group := range groups {
		if !group.Satisfied(present) {
			return f, value, errs.ErrUnsatisfiedDependency.WithArgs(token, group.String())
		}
	}

	coerced, err := coerce(token, f.Type, f.MultiType, f.Void, value)
	if err != nil {
		return f, value, err
	}

	return f, coerced, nil
}

// conflictingToken returns how name was spelled on the command line
func conflictingToken(cmd *Command, parsed *ParsedArgs, name string) string {
	if parsed.Flag.Has(name) {
		return name
	}
	for _, token := range parsed.Flag.Keys() {
		if f, ok := cmd.flags.Get(token); ok && f.Alias == name {
			return token
		}
	}

	return name
}

// validateGlobal runs the scope, void, conflict and type checks of a global flag
func validateGlobal(command, token string, g *GlobalFlag, value types.Value, parsed *ParsedArgs) (types.Value, error) {
	if len(g.OnlyFor) > 0 && !slices.Contains(g.OnlyFor, command) {
		return value, errs.ErrGlobalFlagScope.WithArgs(token, strings.Join(g.OnlyFor, ", "))
	}

	if g.Void && !value.IsNull() {
		return value, errs.ErrUnexpectedValue.WithArgs(token)
	}

	for _, other := range g.Conflicts {
		if parsed.Flag.Has(other) || parsed.Global.Has(other) {
			return value, errs.ErrFlagConflict.WithArgs(token, other)
		}
	}

	return coerce(token, g.Type, g.MultiType, g.Void, value)
}
