package goinput

import "github.com/napalu/goinput/types"

// NewFlag creates a Flag configured by configs
func NewFlag(configs ...ConfigureFlagFunc) *Flag {
	flag := &Flag{}

	for _, config := range configs {
		config(flag)
	}

	return flag
}

// Set configures an existing Flag
func (f *Flag) Set(configs ...ConfigureFlagFunc) {
	for _, config := range configs {
		config(f)
	}
}

// WithAlias sets the name under which the flag's value is reported
func WithAlias(alias string) ConfigureFlagFunc {
	return func(flag *Flag) {
		flag.Alias = alias
	}
}

// WithShortFlag sets the short form, matched as -short
func WithShortFlag(shortFlag string) ConfigureFlagFunc {
	return func(flag *Flag) {
		flag.Short = shortFlag
	}
}

// WithLongFlag sets the long form, matched as --long
func WithLongFlag(longFlag string) ConfigureFlagFunc {
	return func(flag *Flag) {
		flag.Long = longFlag
	}
}

// WithDescription the description will be used in usage output presented to the user
func WithDescription(description string) ConfigureFlagFunc {
	return func(flag *Flag) {
		flag.Description = description
	}
}

// WithUsage sets the usage text of the flag
func WithUsage(usage string) ConfigureFlagFunc {
	return func(flag *Flag) {
		flag.Usage = usage
	}
}

// WithType sets the type of value the flag accepts
func WithType(t types.OptionType) ConfigureFlagFunc {
	return func(flag *Flag) {
		flag.Type = t
	}
}

// WithMultiType sets the types the flag accepts, tried in order
func WithMultiType(ts ...types.OptionType) ConfigureFlagFunc {
	return func(flag *Flag) {
		flag.MultiType = append([]types.OptionType{}, ts...)
	}
}

// SetVoid declares that the flag takes no value
func SetVoid(void bool) ConfigureFlagFunc {
	return func(flag *Flag) {
		flag.Void = void
	}
}

// WithConflicts lists flags, by token or alias, which must not be given together with this one
func WithConflicts(names ...string) ConfigureFlagFunc {
	return func(flag *Flag) {
		flag.Conflicts = append(flag.Conflicts, names...)
	}
}

// WithDependentFlags lists flags, by token or alias, which must be given together with this one.
// An entry may be an OR-group such as "--user|--token".
func WithDependentFlags(names ...string) ConfigureFlagFunc {
	return func(flag *Flag) {
		flag.DependsOn = append(flag.DependsOn, names...)
	}
}

// WithCallback sets the callback run when the flag is given
func WithCallback(callback *Callback) ConfigureFlagFunc {
	return func(flag *Flag) {
		flag.Callback = callback
	}
}

// WithPrecedence sets the execution order of the flag's callback. Lower runs first.
func WithPrecedence(precedence int) ConfigureFlagFunc {
	return func(flag *Flag) {
		flag.Precedence = precedence
	}
}

// ForCommands registers the flag against the given commands
func ForCommands(commands ...string) ConfigureFlagFunc {
	return func(flag *Flag) {
		flag.IsFlagOf = append(flag.IsFlagOf, commands...)
	}
}
