package goinput

import (
	"context"
	"fmt"

	pkgerrors "github.com/pkg/errors"

	"github.com/napalu/goinput/internal/log"
)

// Run parses args and runs logic against the result, Execute when logic is nil. Every
// run gets a fresh session whose id tags the log records of the invocation.
//
// With HandleUncaughtError set (the default) any error or panic is printed to stderr
// prefixed by processName and the process exits with code 1; Run then only returns if
// the configured exit function returns. Otherwise errors are returned to the caller.
func (p *Parser) Run(ctx context.Context, args []string, logic Logic, processName string) (err error) {
	if processName != "" {
		p.processName = processName
	}
	if logic == nil {
		logic = p.Execute
	}

	ctx = p.begin(ctx)
	defer p.teardown()

	if p.settings.HandleUncaughtError {
		defer func() {
			if r := recover(); r != nil {
				err = pkgerrors.Errorf("panic: %v", r)
			}
			if err != nil {
				p.fail(ctx, err)
			}
		}()
	}

	parsed, err := p.Parse(args)
	if err != nil {
		return err
	}

	return logic(ctx, parsed)
}

// begin starts a new session and attaches a logger tagged with its id to ctx
func (p *Parser) begin(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	p.session = NewSession()
	p.queue.Clear()
	logger := p.logger.With("invocation", p.session.ID(), "process", p.processName)
	logger.Debug("run started")

	return log.WithLogger(ctx, logger)
}

func (p *Parser) teardown() {
	p.queue.Clear()
	p.logger.Debug("run finished", "invocation", p.session.ID())
}

func (p *Parser) fail(ctx context.Context, err error) {
	fmt.Fprintf(p.stderr, "%s: %v\n", p.processName, err)
	p.loggerFor(ctx).Debug("run failed", "detail", fmt.Sprintf("%+v", err))
	p.exit(1)
}
