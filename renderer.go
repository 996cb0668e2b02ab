package goinput

import (
	"fmt"
	"io"
	"strings"

	"github.com/napalu/goinput/types"
)

type DefaultRenderer struct {
	parser *Parser
}

func NewRenderer(parser *Parser) *DefaultRenderer {
	return &DefaultRenderer{parser: parser}
}

// FlagUsage generates a usage string for a given flag.
// The usage string includes the flag tokens, the alias, the description and the accepted types,
// or void when the flag takes no value.
func (r *DefaultRenderer) FlagUsage(f *Flag) string {
	usage := strings.Join(f.Tokens, ", ") + " (" + f.Alias + ")"
	usage += " \"" + f.Description + "\""

	return usage + " " + typing(f.Type, f.MultiType, f.Void)
}

// GlobalUsage generates a usage string for a given global flag, including the commands
// it is restricted to
func (r *DefaultRenderer) GlobalUsage(g *GlobalFlag) string {
	usage := g.Name + " \"" + g.Description + "\" " + typing(g.Type, g.MultiType, g.Void)
	if len(g.OnlyFor) > 0 {
		usage += " only for: " + strings.Join(g.OnlyFor, ", ")
	}

	return usage
}

// CommandUsage generates a usage string for a given command.
// The usage string includes the command name, description, and required flags.
func (r *DefaultRenderer) CommandUsage(c *Command) string {
	usage := c.Name
	if c.Type != types.Unset || len(c.MultiType) > 0 {
		usage += "=" + typing(c.Type, c.MultiType, false)
	}
	usage += " \"" + c.Description + "\""
	if len(c.Required) > 0 {
		usage += " requires: " + strings.Join(c.Required, ", ")
	}

	return usage
}

// PrintHelp writes the CLI description, the global flags and every command with its flags
func (r *DefaultRenderer) PrintHelp(w io.Writer) {
	info := r.parser.info
	name := info.Name
	if name == "" {
		name = r.parser.processName
	}

	header := name
	if info.Version != "" {
		header += " " + info.Version
	}
	fmt.Fprintln(w, header)
	if info.Description != "" {
		fmt.Fprintln(w, info.Description)
	}
	if info.Usage != "" {
		fmt.Fprintf(w, "\nusage: %s\n", info.Usage)
	}

	if r.parser.globals.Count() > 0 {
		fmt.Fprintln(w, "\nglobal flags:")
		for it := r.parser.globals.Front(); it != nil; it = it.Next() {
			fmt.Fprintf(w, "  %s\n", r.GlobalUsage(it.Value()))
		}
	}

	if r.parser.commands.Count() > 0 {
		fmt.Fprintln(w, "\ncommands:")
		for it := r.parser.commands.Front(); it != nil; it = it.Next() {
			fmt.Fprintf(w, "  %s\n", r.CommandUsage(it.Value()))
			for _, f := range flagsOf(it.Value()) {
				fmt.Fprintf(w, "    %s\n", r.FlagUsage(f))
			}
		}
	}

	for _, line := range []struct{ label, value string }{
		{"website", info.Website},
		{"repository", info.Repository},
	} {
		if line.value != "" {
			fmt.Fprintf(w, "\n%s: %s", line.label, line.value)
		}
	}
	if info.Website != "" || info.Repository != "" {
		fmt.Fprintln(w)
	}
}

func typing(t types.OptionType, multi []types.OptionType, void bool) string {
	switch {
	case void:
		return "[" + types.Void.String() + "]"
	case t != types.Unset:
		return "[" + t.String() + "]"
	case len(multi) > 0:
		return "[" + types.JoinTypes(multi) + "]"
	}

	return "[any]"
}
