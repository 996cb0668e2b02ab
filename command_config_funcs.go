package goinput

import "github.com/napalu/goinput/types"

// NewCommand creates and returns a new Command object. This function takes variadic `ConfigureCommandFunc` functions to customize the created command.
func NewCommand(configs ...ConfigureCommandFunc) *Command {
	cmd := &Command{}

	for _, config := range configs {
		config(cmd)
	}

	return cmd
}

// Set is a helper config function that allows setting multiple configuration functions on a command.
func (c *Command) Set(configs ...ConfigureCommandFunc) {
	for _, config := range configs {
		config(c)
	}
}

// WithName sets the name for the command. The name is used when AddCommand is given no identifier.
func WithName(name string) ConfigureCommandFunc {
	return func(command *Command) {
		command.Name = name
	}
}

// WithCommandCallback sets the callback run once every flag callback of the command completed.
func WithCommandCallback(callback *Callback) ConfigureCommandFunc {
	return func(command *Command) {
		command.Callback = callback
	}
}

// WithCommandDescription sets the description for the command. This description helps users to understand what the command does.
func WithCommandDescription(description string) ConfigureCommandFunc {
	return func(command *Command) {
		command.Description = description
	}
}

// WithCommandUsage sets the usage text of the command.
func WithCommandUsage(usage string) ConfigureCommandFunc {
	return func(command *Command) {
		command.Usage = usage
	}
}

// WithCommandType sets the type of the value given as command=value.
func WithCommandType(t types.OptionType) ConfigureCommandFunc {
	return func(command *Command) {
		command.Type = t
	}
}

// WithCommandMultiType sets the types accepted for the value given as command=value.
func WithCommandMultiType(ts ...types.OptionType) ConfigureCommandFunc {
	return func(command *Command) {
		command.MultiType = append([]types.OptionType{}, ts...)
	}
}

// WithRequiredFlags lists the flag aliases, or OR-groups such as "user|token", which must be given with the command.
func WithRequiredFlags(aliases ...string) ConfigureCommandFunc {
	return func(command *Command) {
		command.Required = append([]string{}, aliases...)
	}
}

// Flags returns the distinct flags of the command in registration order
func (c *Command) Flags() []*Flag {
	return flagsOf(c)
}

// HasFlags reports whether flags were registered against the command
func (c *Command) HasFlags() bool {
	return c.flags.Count() > 0
}

// Flag returns the flag matched by token
func (c *Command) Flag(token string) (*Flag, bool) {
	if c.flags == nil {
		return nil, false
	}

	return c.flags.Get(token)
}
