// Package thread offloads flag callbacks to workers. A worker resolves an exported
// symbol from a module, runs it with a private copy of the flag's value and posts the
// result back through a channel. The pool counts outstanding work and raises QueueEmpty
// once every worker has reported.
package thread

import (
	"context"
	"errors"
	"fmt"

	"github.com/napalu/goinput/types"
)

// Descriptor names the symbol a worker executes and the module exporting it
type Descriptor struct {
	Symbol string
	Module string
}

var ErrIncompleteDescriptor = errors.New("thread descriptor requires both a module and a symbol")

// Validate checks that both parts of the descriptor are set
func (d Descriptor) Validate() error {
	if d.Symbol == "" || d.Module == "" {
		return ErrIncompleteDescriptor
	}

	return nil
}

func (d Descriptor) String() string {
	return d.Module + "#" + d.Symbol
}

// Func is a synchronous worker symbol
type Func func(ctx context.Context, input types.Value) (types.Value, error)

// AsyncFunc is a worker symbol handing back a pending result which the worker awaits
type AsyncFunc func(ctx context.Context, input types.Value) <-chan Result

// Result is the settled outcome of an AsyncFunc
type Result struct {
	Value types.Value
	Err   error
}

// Callable converts a resolved symbol into a Func. Plugin variables resolve to pointers
// and are dereferenced.
func Callable(symbol interface{}) (Func, error) {
	switch fn := symbol.(type) {
	case Func:
		return fn, nil
	case func(context.Context, types.Value) (types.Value, error):
		return fn, nil
	case AsyncFunc:
		return awaiting(fn), nil
	case func(context.Context, types.Value) <-chan Result:
		return awaiting(fn), nil
	case *Func:
		if fn != nil && *fn != nil {
			return *fn, nil
		}
	case *AsyncFunc:
		if fn != nil && *fn != nil {
			return awaiting(*fn), nil
		}
	}

	return nil, fmt.Errorf("symbol of type %T is not callable by a worker", symbol)
}

func awaiting(fn AsyncFunc) Func {
	return func(ctx context.Context, input types.Value) (types.Value, error) {
		select {
		case res, ok := <-fn(ctx, input):
			if !ok {
				return types.Undefined(), nil
			}
			return res.Value, res.Err
		case <-ctx.Done():
			return types.Undefined(), ctx.Err()
		}
	}
}
