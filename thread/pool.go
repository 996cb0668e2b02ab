package thread

import (
	"context"
	"log/slog"

	pkgerrors "github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/napalu/goinput/internal/log"
	"github.com/napalu/goinput/types"
)

// Job is a unit of work handed to a worker
type Job struct {
	ID         int
	Flag       string
	Descriptor Descriptor
	Input      types.Value
}

// Message is posted by a worker once its job settled
type Message struct {
	ThreadID int
	Flag     string
	Data     types.Value
	Err      error
}

// Pool runs jobs on workers and tracks how many are outstanding. The counter is only
// touched by the goroutine draining Messages.
type Pool struct {
	resolver    Resolver
	signals     *Signals
	logger      *slog.Logger
	messages    chan Message
	group       *errgroup.Group
	outstanding int
	nextID      int
}

// NewPool creates a pool resolving symbols with resolver and reporting on signals
func NewPool(resolver Resolver, signals *Signals, logger *slog.Logger) *Pool {
	if logger == nil {
		logger = log.Discard()
	}
	if signals == nil {
		signals = NewSignals()
	}

	return &Pool{
		resolver: resolver,
		signals:  signals,
		logger:   logger,
	}
}

// Spawn starts one worker per job and returns the jobs with their thread ids assigned.
// Every worker receives its own copy of the job input.
func (p *Pool) Spawn(ctx context.Context, jobs []Job) []Job {
	p.messages = make(chan Message, len(jobs))
	p.outstanding = len(jobs)

	group, gctx := errgroup.WithContext(ctx)
	p.group = group

	spawned := make([]Job, 0, len(jobs))
	for _, job := range jobs {
		p.nextID++
		job.ID = p.nextID
		job.Input = job.Input.Clone()
		spawned = append(spawned, job)
	}

	for _, job := range spawned {
		p.logger.Debug("spawning thread", "threadID", job.ID, "flag", job.Flag, "symbol", job.Descriptor.String())
		group.Go(func() error {
			return p.work(gctx, job)
		})
	}

	return spawned
}

func (p *Pool) work(ctx context.Context, job Job) (err error) {
	msg := Message{ThreadID: job.ID, Flag: job.Flag}
	defer func() {
		if r := recover(); r != nil {
			err = pkgerrors.Errorf("thread %d panicked: %v", job.ID, r)
		}
		msg.Err = err
		p.messages <- msg
	}()

	symbol, err := p.resolver.Resolve(job.Descriptor)
	if err != nil {
		return err
	}
	fn, err := Callable(symbol)
	if err != nil {
		return pkgerrors.Wrapf(err, "resolving %s", job.Descriptor)
	}

	msg.Data, err = fn(ctx, job.Input)
	if err != nil {
		return pkgerrors.WithStack(err)
	}

	return nil
}

// Messages delivers one message per spawned job
func (p *Pool) Messages() <-chan Message {
	return p.messages
}

// Outstanding returns the number of jobs which have not been completed
func (p *Pool) Outstanding() int {
	return p.outstanding
}

// Complete records a successful message and raises QueueEmpty when it was the last
// outstanding one. It returns true once nothing is outstanding.
func (p *Pool) Complete(msg Message) bool {
	if p.outstanding > 0 {
		p.outstanding--
	}
	p.logger.Debug("thread completed", "threadID", msg.ThreadID, "flag", msg.Flag, "outstanding", p.outstanding)
	p.signals.Emit(Event{Signal: ThreadDone, ThreadID: msg.ThreadID, Flag: msg.Flag})

	if p.outstanding == 0 {
		p.signals.Emit(Event{Signal: QueueEmpty})
		return true
	}

	return false
}

// Fail reports a failed message through ThreadError
func (p *Pool) Fail(msg Message) {
	p.logger.Error("thread failed", "threadID", msg.ThreadID, "flag", msg.Flag, "error", msg.Err)
	p.signals.Emit(Event{Signal: ThreadError, ThreadID: msg.ThreadID, Flag: msg.Flag, Err: msg.Err})
}

// Wait blocks until every worker returned and reports the first worker error
func (p *Pool) Wait() error {
	if p.group == nil {
		return nil
	}

	return p.group.Wait()
}
