// Package goinput declares command-line interfaces made of commands, flags and global
// flags, parses argument vectors against the declaration, validates every flag and
// dispatches callbacks in precedence order, optionally offloading flag work to workers.
package goinput

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/napalu/goinput/errs"
	"github.com/napalu/goinput/internal/log"
	"github.com/napalu/goinput/internal/util"
	"github.com/napalu/goinput/parse"
	"github.com/napalu/goinput/thread"
	"github.com/napalu/goinput/types"
	"github.com/napalu/goinput/types/orderedmap"
	"github.com/napalu/goinput/types/queue"
)

// NewParser convenience initialization method. Use NewParserWith to
// configure the Parser using option functions.
func NewParser() *Parser {
	p := &Parser{
		commands:     orderedmap.NewOrderedMap[string, *Command](),
		globals:      orderedmap.NewOrderedMap[string, *GlobalFlag](),
		reserved:     defaultReserved(),
		settings:     DefaultSettings(),
		resolver:     thread.NewModules(),
		signals:      thread.NewSignals(),
		logger:       log.New(os.Stderr),
		aliasConvert: DefaultAliasConverter,
		queue:        queue.NewPrecedence[string, *queued](),
		session:      NewSession(),
		stdout:       os.Stdout,
		stderr:       os.Stderr,
		exit:         os.Exit,
	}
	if len(os.Args) > 0 {
		p.processName = filepath.Base(os.Args[0])
	}
	p.renderer = NewRenderer(p)

	return p
}

func defaultReserved() map[string]bool {
	return map[string]bool{
		HelpCommand:    true,
		HelpShort:      true,
		HelpLong:       true,
		VersionCommand: true,
		VersionShort:   true,
		VersionLong:    true,
		NoCommand:      true,
	}
}

// AddCommand registers cmd under every id. When no id is given cmd.Name is used. Either
// every id is registered or none is.
func (p *Parser) AddCommand(cmd *Command, ids ...string) error {
	if cmd == nil {
		return errs.ErrInvalidSpecification.WithArgs("command", "command is nil")
	}
	if len(ids) == 0 {
		ids = []string{cmd.Name}
	}

	seen := map[string]bool{}
	for _, id := range ids {
		if err := p.checkIdentifier(id); err != nil {
			return err
		}
		if seen[id] || p.commands.Has(id) {
			return errs.ErrDuplicateDefinition.WithArgs("command", id)
		}
		seen[id] = true
		if err := p.validateCommand(id, cmd); err != nil {
			return err
		}
	}

	for _, id := range ids {
		c := cmd.clone()
		c.Name = id
		c.Description = withDefault(c.Description, DefaultDescription)
		c.Usage = withDefault(c.Usage, DefaultUsage)
		p.commands.Set(id, c)
		p.logger.Debug("registered command", "command", id)
	}

	return nil
}

// AddFlag registers flag against every command listed in flag.IsFlagOf. tokens are the
// argv spellings of the flag; when none are given they derive from flag.Short and
// flag.Long. Either every command receives the flag or none does.
func (p *Parser) AddFlag(flag *Flag, tokens ...string) error {
	if flag == nil {
		return errs.ErrInvalidSpecification.WithArgs("flag", "flag is nil")
	}

	f := flag.clone()
	if len(tokens) == 0 {
		tokens = f.defaultTokens()
	}
	if len(tokens) == 0 {
		return errs.ErrInvalidSpecification.WithArgs(f.Alias, "flag has neither tokens nor a short or long form")
	}
	name := tokens[0]

	for i, token := range tokens {
		if err := p.checkIdentifier(token); err != nil {
			return err
		}
		if slices.Contains(tokens[:i], token) {
			return errs.ErrDuplicateDefinition.WithArgs("flag", token)
		}
	}
	for _, form := range []string{f.Short, f.Long} {
		if form == "" {
			continue
		}
		if err := p.checkIdentifier(form); err != nil {
			return err
		}
	}

	if f.Alias == "" {
		f.Alias = p.deriveAlias(f, name)
	}
	if p.reserved[f.Alias] {
		return errs.ErrReservedIdentifier.WithArgs(f.Alias)
	}
	if !util.IsIdentifier(f.Alias, true) {
		return errs.ErrInvalidSpecification.WithArgs(name, fmt.Sprintf("alias %q must be alphabetic", f.Alias))
	}

	if reason := validateTyping(f.Type, f.MultiType, f.Void); reason != "" {
		return errs.ErrInvalidSpecification.WithArgs(name, reason)
	}
	if f.Precedence < 0 {
		return errs.ErrInvalidSpecification.WithArgs(name, "precedence must not be negative")
	}
	if f.Precedence > 0 && f.Callback == nil {
		return errs.ErrInvalidSpecification.WithArgs(name, "precedence requires a callback")
	}
	if reason := validateCallback(f.Callback, true); reason != "" {
		return errs.ErrInvalidSpecification.WithArgs(name, reason)
	}
	if _, err := parse.Groups(f.DependsOn); err != nil {
		return errs.ErrInvalidSpecification.WithArgs(name, err.Error())
	}
	if slices.Contains(f.Conflicts, "") {
		return errs.ErrInvalidSpecification.WithArgs(name, "empty name in conflicts")
	}
	if len(f.IsFlagOf) == 0 {
		return errs.ErrInvalidSpecification.WithArgs(name, "flag does not belong to any command")
	}

	owners := make([]*Command, 0, len(f.IsFlagOf))
	for _, id := range f.IsFlagOf {
		cmd, ok := p.commands.Get(id)
		if !ok {
			return errs.ErrInvalidSpecification.WithArgs(name, fmt.Sprintf("command %q does not exist", id))
		}
		for _, token := range tokens {
			if cmd.flags != nil && cmd.flags.Has(token) {
				return errs.ErrDuplicateDefinition.WithArgs("flag", token)
			}
		}
		owners = append(owners, cmd)
	}

	f.Tokens = tokens
	f.Description = withDefault(f.Description, DefaultDescription)
	f.Usage = withDefault(f.Usage, DefaultUsage)
	for _, cmd := range owners {
		if cmd.flags == nil {
			cmd.flags = orderedmap.NewOrderedMap[string, *Flag]()
		}
		for _, token := range tokens {
			cmd.flags.Set(token, f)
		}
		p.logger.Debug("registered flag", "command", cmd.Name, "tokens", tokens, "alias", f.Alias)
	}

	return nil
}

// AddGlobal registers a global flag matched by the token id
func (p *Parser) AddGlobal(id string, global *GlobalFlag) error {
	if global == nil {
		return errs.ErrInvalidSpecification.WithArgs(id, "global flag is nil")
	}
	if err := p.checkIdentifier(id); err != nil {
		return err
	}
	if p.globals.Has(id) {
		return errs.ErrDuplicateDefinition.WithArgs("global flag", id)
	}
	if reason := validateTyping(global.Type, global.MultiType, global.Void); reason != "" {
		return errs.ErrInvalidSpecification.WithArgs(id, reason)
	}
	if reason := validateCallback(global.Callback, false); reason != "" {
		return errs.ErrInvalidSpecification.WithArgs(id, reason)
	}
	for _, command := range global.OnlyFor {
		if !util.IsIdentifier(command, p.settings.OnlyAlpha) {
			return errs.ErrInvalidSpecification.WithArgs(id, fmt.Sprintf("only_for names an invalid command %q", command))
		}
	}

	g := *global
	g.Name = id
	g.Description = withDefault(g.Description, DefaultDescription)
	g.Usage = withDefault(g.Usage, DefaultUsage)
	g.OnlyFor = slices.Clone(global.OnlyFor)
	g.Conflicts = slices.Clone(global.Conflicts)
	g.MultiType = slices.Clone(global.MultiType)
	p.globals.Set(id, &g)
	p.logger.Debug("registered global flag", "global", id)

	return nil
}

// Reset clears every command, flag and global flag, the precedence queue, the signal
// listeners and the session. Settings are kept.
func (p *Parser) Reset() {
	p.commands.Clear()
	p.globals.Clear()
	p.queue.Clear()
	p.signals.Reset()
	p.session = NewSession()
}

// GetCommand returns the command registered as id
func (p *Parser) GetCommand(id string) (*Command, bool) {
	return p.commands.Get(id)
}

// GetGlobal returns the global flag registered as id
func (p *Parser) GetGlobal(id string) (*GlobalFlag, bool) {
	return p.globals.Get(id)
}

// Commands returns the registered command identifiers in registration order
func (p *Parser) Commands() []string {
	return p.commands.Keys()
}

// Globals returns the registered global flag identifiers in registration order
func (p *Parser) Globals() []string {
	return p.globals.Keys()
}

// Settings returns the run options
func (p *Parser) Settings() Settings {
	return p.settings
}

// Info returns the description of the CLI
func (p *Parser) Info() Info {
	return p.info
}

// Signals returns the emitter raising QueueEmpty, ThreadDone and ThreadError
func (p *Parser) Signals() *thread.Signals {
	return p.signals
}

// Session returns the state of the current invocation
func (p *Parser) Session() *Session {
	return p.session
}

// Export publishes fn as symbol of module so thread callbacks can resolve it. It fails
// when a custom resolver was configured with WithThreadResolver.
func (p *Parser) Export(module, symbol string, fn interface{}) error {
	modules, ok := p.resolver.(*thread.Modules)
	if !ok {
		return fmt.Errorf("thread resolver %T does not accept exports", p.resolver)
	}

	return modules.Export(module, symbol, fn)
}

// IsReserved reports whether id is reserved
func (p *Parser) IsReserved(id string) bool {
	return p.reserved[id]
}

// Parse splits args into the command, its flags and the global flags preceding it. args
// are the process arguments; a leading executable path is dropped.
func (p *Parser) Parse(args []string) (*ParsedArgs, error) {
	pruneExecPathFromArgs(&args)
	parsed := newParsedArgs()

	if len(args) == 0 {
		if p.settings.RunWithoutCommand != nil {
			parsed.Command.Set(NoCommand, types.Null())
		} else {
			parsed.Command.Set(HelpCommand, types.Null())
		}
		return parsed, nil
	}

	state := parse.NewState(args)
	if p.globals.Count() > 0 && !p.reserved[args[0]] {
		if err := p.parseGlobals(state, parsed); err != nil {
			return nil, err
		}
		if state.Done() {
			return nil, errs.ErrMissingCommand
		}
	}

	state.Advance()
	stop, err := p.parseCommand(state.CurrentArg(), parsed)
	if err != nil {
		return nil, err
	}
	if stop {
		return parsed, nil
	}

	for state.Advance() {
		if err := p.parseFlag(state.CurrentArg(), parsed); err != nil {
			return nil, err
		}
	}

	p.logger.Debug("parsed arguments",
		"command", parsed.CommandName(),
		"flags", parsed.Flag.Keys(),
		"globals", parsed.Global.Keys())

	return parsed, nil
}

// ParseString splits s the way a POSIX shell would and parses the result
func (p *Parser) ParseString(s string) (*ParsedArgs, error) {
	args, err := parse.Split(s)
	if err != nil {
		return nil, errs.ErrMalformedArgument.WithArgs(s, err.Error())
	}

	return p.Parse(args)
}

func withDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}

	return s
}
