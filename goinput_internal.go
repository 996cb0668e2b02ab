package goinput

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/napalu/goinput/errs"
	"github.com/napalu/goinput/internal/util"
	"github.com/napalu/goinput/parse"
	"github.com/napalu/goinput/types"
)

const maxSuggestions = 3

func (p *Parser) checkIdentifier(id string) error {
	if p.reserved[id] {
		return errs.ErrReservedIdentifier.WithArgs(id)
	}
	if !util.IsIdentifier(id, p.settings.OnlyAlpha) {
		rule := "letters and dashes"
		if !p.settings.OnlyAlpha {
			rule = "letters, digits and dashes"
		}
		return errs.ErrInvalidSpecification.WithArgs(id, "identifiers consist of "+rule)
	}

	return nil
}

func (p *Parser) validateCommand(id string, cmd *Command) error {
	if reason := validateTyping(cmd.Type, cmd.MultiType, false); reason != "" {
		return errs.ErrInvalidSpecification.WithArgs(id, reason)
	}
	if (cmd.Type != types.Unset || len(cmd.MultiType) > 0) && !p.settings.CommandAcceptsOptions {
		return errs.ErrInvalidSpecification.WithArgs(id, "a command type requires command options to be enabled")
	}
	if cmd.Required != nil {
		if len(cmd.Required) == 0 {
			return errs.ErrInvalidSpecification.WithArgs(id, "required flag list is empty")
		}
		if _, err := parse.Groups(cmd.Required); err != nil {
			return errs.ErrInvalidSpecification.WithArgs(id, err.Error())
		}
	}
	if reason := validateCallback(cmd.Callback, false); reason != "" {
		return errs.ErrInvalidSpecification.WithArgs(id, reason)
	}

	return nil
}

func validateTyping(t types.OptionType, multi []types.OptionType, void bool) string {
	switch {
	case t != types.Unset && len(multi) > 0:
		return "type and multi_type are mutually exclusive"
	case void && (t != types.Unset || len(multi) > 0):
		return "a void option cannot declare a type"
	case multi != nil && len(multi) == 0:
		return "multi_type is empty"
	case slices.Contains(multi, types.Unset):
		return "multi_type contains an unset type"
	}

	return ""
}

func (c *Command) clone() *Command {
	cp := *c
	cp.MultiType = slices.Clone(c.MultiType)
	cp.Required = slices.Clone(c.Required)
	cp.flags = nil

	return &cp
}

func (f *Flag) clone() *Flag {
	cp := *f
	cp.MultiType = slices.Clone(f.MultiType)
	cp.Conflicts = slices.Clone(f.Conflicts)
	cp.DependsOn = slices.Clone(f.DependsOn)
	cp.IsFlagOf = slices.Clone(f.IsFlagOf)
	cp.Tokens = nil

	return &cp
}

func (f *Flag) defaultTokens() []string {
	var tokens []string
	if f.Short != "" {
		tokens = append(tokens, "-"+f.Short)
	}
	if f.Long != "" {
		tokens = append(tokens, "--"+f.Long)
	}

	return tokens
}

// deriveAlias names the flag after its long form, or after its first token
func (p *Parser) deriveAlias(f *Flag, token string) string {
	source := f.Long
	if source == "" {
		source = strings.TrimLeft(token, "-")
	}

	return p.aliasConvert(source)
}

// flagsOf returns the distinct flags of cmd in registration order
func flagsOf(cmd *Command) []*Flag {
	if cmd.flags == nil {
		return nil
	}

	var out []*Flag
	for it := cmd.flags.Front(); it != nil; it = it.Next() {
		if !slices.Contains(out, it.Value()) {
			out = append(out, it.Value())
		}
	}

	return out
}

func (p *Parser) parseGlobals(state parse.State, parsed *ParsedArgs) error {
	for range p.globals.Count() {
		if state.Done() {
			break
		}

		arg := state.Peek()
		tok := parse.SplitToken(arg)
		if p.commands.Has(tok.Name) || p.reserved[tok.Name] {
			break
		}
		if !p.globals.Has(tok.Name) {
			return p.withSuggestion(errs.ErrUnknownGlobalFlag.WithArgs(tok.Name), tok.Name, p.globals.Keys())
		}
		if tok.Dangling() {
			return errs.ErrMalformedArgument.WithArgs(arg, "'=' requires a value")
		}
		if parsed.Global.Has(tok.Name) {
			return errs.ErrDuplicateFlag.WithArgs(tok.Name)
		}

		value, err := p.inferValue(tok)
		if err != nil {
			return err
		}
		parsed.Global.Set(tok.Name, value)
		state.Advance()
	}

	if next := parse.SplitToken(state.Peek()); !state.Done() && parsed.Global.Has(next.Name) {
		return errs.ErrDuplicateFlag.WithArgs(next.Name)
	}

	return nil
}

// parseCommand records the command token. It returns true when parsing stops at a help
// or version request.
func (p *Parser) parseCommand(arg string, parsed *ParsedArgs) (bool, error) {
	switch arg {
	case HelpCommand, HelpShort, HelpLong:
		parsed.Command.Set(HelpCommand, types.Null())
		return true, nil
	case VersionCommand, VersionShort, VersionLong:
		parsed.Command.Set(VersionCommand, types.Null())
		return true, nil
	}

	tok := parse.SplitToken(arg)
	if tok.HasValue && !p.settings.CommandAcceptsOptions {
		return false, errs.ErrUnsupportedOption.WithArgs(tok.Name)
	}
	if tok.Dangling() {
		return false, errs.ErrMalformedArgument.WithArgs(arg, "'=' requires a value")
	}
	if !util.IsIdentifier(tok.Name, p.settings.OnlyAlpha) {
		return false, errs.ErrMalformedArgument.WithArgs(arg, "not a command identifier")
	}

	value, err := p.inferValue(tok)
	if err != nil {
		return false, err
	}
	parsed.Command.Set(tok.Name, value)

	return false, nil
}

func (p *Parser) parseFlag(arg string, parsed *ParsedArgs) error {
	tok := parse.SplitToken(arg)
	if tok.Name == "" {
		return errs.ErrMalformedArgument.WithArgs(arg, "missing flag name")
	}
	if tok.Dangling() {
		return errs.ErrMalformedArgument.WithArgs(arg, "'=' requires a value")
	}
	if parsed.Flag.Has(tok.Name) {
		return errs.ErrDuplicateFlag.WithArgs(tok.Name)
	}

	value, err := p.inferValue(tok)
	if err != nil {
		return err
	}
	parsed.Flag.Set(tok.Name, value)

	return nil
}

// inferValue returns null for a bare token, the key-value-pair set for a value using that
// syntax and the inferred value otherwise
func (p *Parser) inferValue(tok parse.Token) (types.Value, error) {
	if !tok.HasValue {
		return types.Null(), nil
	}

	if p.settings.KeyValuePairs && parse.IsKeyValuePairs(tok.Value) {
		v, err := parse.KeyValuePairs(tok.Value, p.settings.ParseJSON)
		if err != nil {
			return types.Undefined(), errs.ErrMalformedOption.WithArgs(tok.Name).Wrap(err)
		}
		return v, nil
	}

	return parse.Infer(tok.Value, p.settings.ParseJSON), nil
}

// withSuggestion wraps err with the candidates closest to input, if any
func (p *Parser) withSuggestion(err *errs.Error, input string, candidates []string) error {
	suggestions := util.Suggest(input, candidates, maxSuggestions)
	if len(suggestions) == 0 {
		return err
	}

	quoted := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		quoted = append(quoted, fmt.Sprintf("%q", s))
	}

	return err.Wrap(errs.ErrDidYouMean.WithArgs(strings.Join(quoted, ", ")))
}

func pruneExecPathFromArgs(args *[]string) {
	if len(*args) > 0 && len(os.Args) > 0 {
		osBase := os.Args[0]
		if strings.EqualFold(osBase, (*args)[0]) {
			*args = (*args)[1:]
		}
	}
}
