package goinput

import "github.com/napalu/goinput/types"

// ParsedArgs is the outcome of Parse: the command token with its option, the flag tokens
// with their values and the global flag tokens with their values, each in argv order.
// Validation rewrites flag values to their coerced form and projects them under their
// alias in Aliased; the global section is emptied once processed.
type ParsedArgs struct {
	Command *types.Map
	Flag    *types.Map
	Global  *types.Map
	Aliased *types.Map
}

func newParsedArgs() *ParsedArgs {
	return &ParsedArgs{
		Command: types.NewMap(),
		Flag:    types.NewMap(),
		Global:  types.NewMap(),
		Aliased: types.NewMap(),
	}
}

// CommandName returns the command token, or an empty string when none was parsed
func (pa *ParsedArgs) CommandName() string {
	keys := pa.Command.Keys()
	if len(keys) == 0 {
		return ""
	}

	return keys[0]
}

// CommandOption returns the option given as command=value
func (pa *ParsedArgs) CommandOption() types.Value {
	v, ok := pa.Command.Get(pa.CommandName())
	if !ok {
		return types.Undefined()
	}

	return v
}

// HasFlag reports whether token was given
func (pa *ParsedArgs) HasFlag(token string) bool {
	return pa.Flag.Has(token)
}
