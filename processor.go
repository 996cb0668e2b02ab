package goinput

import (
	"context"
	"fmt"

	"github.com/napalu/goinput/errs"
	"github.com/napalu/goinput/thread"
	"github.com/napalu/goinput/types"
)

// Execute processes a parsed invocation: help and version requests are printed, global
// flags are validated and their callbacks run, then the command's flags are validated,
// their callbacks dispatched and finally the command callback invoked.
func (p *Parser) Execute(ctx context.Context, parsed *ParsedArgs) error {
	switch parsed.CommandName() {
	case HelpCommand:
		p.renderer.PrintHelp(p.stdout)
		return nil
	case VersionCommand:
		p.PrintVersion()
		return nil
	case NoCommand:
		return p.runWithoutCommand(ctx)
	}

	if err := p.processGlobals(ctx, parsed); err != nil {
		return err
	}

	return p.processCommand(ctx, parsed)
}

// PrintVersion writes the name and version of the CLI to stdout
func (p *Parser) PrintVersion() {
	version := p.info.Version
	if version == "" {
		version = "unknown"
	}
	name := p.info.Name
	if name == "" {
		name = p.processName
	}

	fmt.Fprintf(p.stdout, "%s %s\n", name, version)
}

func (p *Parser) runWithoutCommand(ctx context.Context) error {
	cb := p.settings.RunWithoutCommand
	if cb == nil {
		p.renderer.PrintHelp(p.stdout)
		return nil
	}

	_, err := invoke(ctx, *cb, &Call{
		Command: NoCommand,
		Name:    NoCommand,
		Value:   types.Null(),
		Flags:   types.NewMap(),
		Session: p.session,
	})
	if err != nil {
		return errs.ErrCallback.WithArgs(NoCommand).Wrap(withStack(err))
	}

	return nil
}

// processGlobals validates every global flag in argv order and runs its callback. The
// global section is emptied afterwards.
func (p *Parser) processGlobals(ctx context.Context, parsed *ParsedArgs) error {
	command := parsed.CommandName()
	logger := p.loggerFor(ctx)

	for _, token := range parsed.Global.Keys() {
		g, ok := p.globals.Get(token)
		if !ok {
			return p.withSuggestion(errs.ErrUnknownGlobalFlag.WithArgs(token), token, p.globals.Keys())
		}
		value, _ := parsed.Global.Get(token)

		coerced, err := validateGlobal(command, token, g, value, parsed)
		if err != nil {
			return err
		}
		parsed.Global.Set(token, coerced)

		if g.Callback == nil {
			continue
		}
		logger.Debug("running global callback", "global", token, "mode", g.Callback.Mode.String())
		if _, err := invoke(ctx, *g.Callback, &Call{
			Command: command,
			Name:    token,
			Alias:   token,
			Value:   coerced,
			Session: p.session,
		}); err != nil {
			return errs.ErrCallback.WithArgs(token).Wrap(withStack(err))
		}
	}

	parsed.Global = types.NewMap()

	return nil
}

// processCommand validates the command's flags, dispatches their callbacks and runs the
// command callback once nothing is outstanding
func (p *Parser) processCommand(ctx context.Context, parsed *ParsedArgs) error {
	name := parsed.CommandName()
	cmd, ok := p.commands.Get(name)
	if !ok {
		return p.withSuggestion(errs.ErrUnknownCommand.WithArgs(name), name, p.commands.Keys())
	}

	option, err := p.commandOption(cmd, parsed.CommandOption())
	if err != nil {
		return err
	}

	if err := checkRequired(cmd, parsed); err != nil {
		return err
	}

	threaded := false
	if parsed.Flag.Len() > 0 {
		if cmd.flags.Count() == 0 {
			return errs.ErrCommandHasNoFlags.WithArgs(name)
		}

		defer p.queue.Clear()
		for _, token := range parsed.Flag.Keys() {
			value, _ := parsed.Flag.Get(token)
			f, coerced, err := p.validateFlag(cmd, token, value, parsed)
			if err != nil {
				return err
			}
			parsed.Flag.Set(token, coerced)
			parsed.Aliased.Set(f.Alias, coerced)
			p.enqueue(ctx, f, token, coerced)
		}

		emptied := make(chan struct{}, 1)
		off := p.signals.Once(thread.QueueEmpty, func(thread.Event) {
			emptied <- struct{}{}
		})
		defer off()

		if threaded, err = p.dispatch(ctx, name, parsed); err != nil {
			return err
		}
		if threaded {
			select {
			case <-emptied:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}

	return p.runCommand(ctx, cmd, option, parsed, threaded)
}

// commandOption coerces the option given as command=value. A null option, or options
// being disabled, yields undefined.
func (p *Parser) commandOption(cmd *Command, option types.Value) (types.Value, error) {
	if !p.settings.CommandAcceptsOptions || option.IsUndefined() || option.IsNull() {
		return types.Undefined(), nil
	}

	return coerce(cmd.Name, cmd.Type, cmd.MultiType, false, option)
}

func (p *Parser) runCommand(ctx context.Context, cmd *Command, option types.Value, parsed *ParsedArgs, threaded bool) error {
	flags := parsed.Aliased.Clone()
	if !option.IsUndefined() {
		flags.Set(cmd.Name, option)
	}

	if cmd.Callback == nil {
		return nil
	}

	p.loggerFor(ctx).Debug("running command callback", "command", cmd.Name, "flags", flags.Keys(), "threaded", threaded)
	if _, err := invoke(ctx, *cmd.Callback, &Call{
		Command: cmd.Name,
		Name:    cmd.Name,
		Alias:   cmd.Name,
		Value:   option,
		Flags:   flags,
		Session: p.session,
	}); err != nil {
		return errs.ErrCallback.WithArgs(cmd.Name).Wrap(withStack(err))
	}

	return nil
}
