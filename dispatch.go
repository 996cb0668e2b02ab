package goinput

import (
	"context"
	"errors"
	"log/slog"

	pkgerrors "github.com/pkg/errors"

	"github.com/napalu/goinput/errs"
	"github.com/napalu/goinput/internal/log"
	"github.com/napalu/goinput/thread"
	"github.com/napalu/goinput/types"
	"github.com/napalu/goinput/types/queue"
)

// Keys of the object a threaded flag callback receives once its worker reported back
const (
	ThreadDataKey = "data"
	ThreadIDKey   = "thread_id"
)

// enqueue captures the callback of a validated flag under its precedence
func (p *Parser) enqueue(ctx context.Context, f *Flag, token string, value types.Value) {
	if f.Callback == nil {
		return
	}

	p.queue.Push(f.Precedence, token, &queued{
		flag:     f,
		token:    token,
		alias:    f.Alias,
		value:    value,
		callback: *f.Callback,
	})
	p.loggerFor(ctx).Log(ctx, log.LevelTrace, "queued callback", "flag", token, "precedence", f.Precedence, "mode", f.Callback.Mode.String())
}

type dispatcher struct {
	ctx         context.Context
	p           *Parser
	logger      *slog.Logger
	command     string
	parsed      *ParsedArgs
	pool        *thread.Pool
	threads     map[string]*queued
	overwritten map[string]bool
}

// dispatch drains the precedence queue. Threaded entries are handed to workers before
// the first inline callback runs, worker results are folded in between inline callbacks
// as they arrive and dispatch returns once no worker is outstanding. It reports whether
// workers were used.
func (p *Parser) dispatch(ctx context.Context, command string, parsed *ParsedArgs) (bool, error) {
	d := &dispatcher{
		ctx:         ctx,
		p:           p,
		logger:      p.loggerFor(ctx),
		command:     command,
		parsed:      parsed,
		threads:     map[string]*queued{},
		overwritten: map[string]bool{},
	}

	inline := queue.New[*queued]()
	var jobs []thread.Job
	for _, entry := range p.queue.Drain() {
		q := entry.Value
		if q.callback.Thread != nil {
			d.threads[q.token] = q
			jobs = append(jobs, thread.Job{Flag: q.token, Descriptor: *q.callback.Thread, Input: q.value})
			continue
		}
		inline.Enqueue(q)
	}

	if len(jobs) > 0 {
		d.pool = thread.NewPool(p.resolver, p.signals, d.logger)
		d.pool.Spawn(ctx, jobs)
	}

	for inline.Len() > 0 {
		q, _ := inline.Dequeue()
		if err := d.run(q); err != nil {
			return d.pool != nil, err
		}
		if err := d.poll(false); err != nil {
			return true, err
		}
	}

	if d.pool == nil {
		return false, nil
	}
	if err := d.poll(true); err != nil {
		return true, err
	}
	if err := d.pool.Wait(); err != nil {
		d.logger.Debug("worker group finished with error", "error", err)
	}

	return true, nil
}

// poll folds worker messages into the dispatch. Without block it only handles messages
// which already arrived.
func (d *dispatcher) poll(block bool) error {
	for d.pool != nil && d.pool.Outstanding() > 0 {
		var msg thread.Message
		if block {
			select {
			case msg = <-d.pool.Messages():
			case <-d.ctx.Done():
				return d.ctx.Err()
			}
		} else {
			select {
			case msg = <-d.pool.Messages():
			default:
				return nil
			}
		}

		if err := d.complete(msg); err != nil {
			return err
		}
	}

	return nil
}

// complete re-enters a worker result into inline dispatch as {data, thread_id}
func (d *dispatcher) complete(msg thread.Message) error {
	q, ok := d.threads[msg.Flag]
	if !ok {
		return errs.ErrThreadFailed.WithArgs(msg.ThreadID, msg.Flag).Wrap(errors.New("unknown thread message"))
	}
	if msg.Err != nil {
		d.pool.Fail(msg)
		return errs.ErrThreadFailed.WithArgs(msg.ThreadID, msg.Flag).Wrap(msg.Err)
	}

	q.threadID = msg.ThreadID
	q.value = types.ObjectOf(types.MapOf(
		types.Pair(ThreadDataKey, msg.Data),
		types.Pair(ThreadIDKey, types.NumberOf(float64(msg.ThreadID))),
	))
	q.callback.Thread = nil

	if q.callback.Fn == nil && q.callback.Promise == nil {
		d.overwrite(q, msg.Data)
	} else if err := d.run(q); err != nil {
		return err
	}
	d.pool.Complete(msg)

	return nil
}

func (d *dispatcher) run(q *queued) error {
	d.logger.Debug("running callback", "flag", q.token, "alias", q.alias, "mode", q.callback.Mode.String(), "threadID", q.threadID)

	result, err := invoke(d.ctx, q.callback, &Call{
		Command:  d.command,
		Name:     q.token,
		Alias:    q.alias,
		Value:    q.value,
		ThreadID: q.threadID,
		Session:  d.p.session,
	})
	if err != nil {
		return errs.ErrCallback.WithArgs(q.token).Wrap(withStack(err))
	}
	d.overwrite(q, result)

	return nil
}

// overwrite stores the first non-undefined callback result of a flag under its alias
func (d *dispatcher) overwrite(q *queued, result types.Value) {
	if result.IsUndefined() || d.overwritten[q.token] {
		return
	}

	d.overwritten[q.token] = true
	d.parsed.Aliased.Set(q.alias, result)
}

func withStack(err error) error {
	var tracer interface{ StackTrace() pkgerrors.StackTrace }
	if errors.As(err, &tracer) {
		return err
	}

	return pkgerrors.WithStack(err)
}

func (p *Parser) loggerFor(ctx context.Context) *slog.Logger {
	if logger, ok := log.Lookup(ctx); ok {
		return logger
	}

	return p.logger
}
