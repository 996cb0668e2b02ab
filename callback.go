package goinput

import (
	"context"
	"fmt"

	pkgerrors "github.com/pkg/errors"

	"github.com/napalu/goinput/thread"
	"github.com/napalu/goinput/types"
)

// Sync creates a callback which is called inline
func Sync(fn CallbackFunc) *Callback {
	return &Callback{Mode: ModeSync, Fn: fn}
}

// Async creates a callback which runs on its own goroutine and is awaited before the
// next callback starts
func Async(fn CallbackFunc) *Callback {
	return &Callback{Mode: ModeAsync, Fn: fn}
}

// Promised creates a callback returning a Future which is awaited
func Promised(fn PromiseFunc) *Callback {
	return &Callback{Mode: ModePromise, Promise: fn}
}

// Threaded creates a flag callback whose work runs on a worker executing symbol exported
// by module. fn is then called inline with the object {data, thread_id}; when fn is nil
// the worker's data becomes the flag's value.
func Threaded(module, symbol string, fn CallbackFunc) *Callback {
	return &Callback{
		Mode:   ModeSync,
		Fn:     fn,
		Thread: &thread.Descriptor{Module: module, Symbol: symbol},
	}
}

// Bind sets the calling context and the extra arguments handed to the callback
func (c *Callback) Bind(this interface{}, rest ...interface{}) *Callback {
	c.This = this
	c.Rest = rest
	return c
}

// Go runs fn on a goroutine and returns its Future. A panic settles the Future with an error.
func Go(fn func() (types.Value, error)) Future {
	ch := make(chan Outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- Outcome{Err: pkgerrors.Errorf("callback panicked: %v", r)}
			}
		}()
		v, err := fn()
		ch <- Outcome{Value: v, Err: err}
	}()

	return ch
}

// Resolved returns a settled Future holding v
func Resolved(v types.Value) Future {
	ch := make(chan Outcome, 1)
	ch <- Outcome{Value: v}
	close(ch)

	return ch
}

// Rejected returns a settled Future holding err
func Rejected(err error) Future {
	ch := make(chan Outcome, 1)
	ch <- Outcome{Err: err}
	close(ch)

	return ch
}

// await blocks until f settles or ctx is done. A closed or nil Future settles undefined.
func await(ctx context.Context, f Future) (types.Value, error) {
	if f == nil {
		return types.Undefined(), nil
	}

	select {
	case out, ok := <-f:
		if !ok {
			return types.Undefined(), nil
		}
		return out.Value, out.Err
	case <-ctx.Done():
		return types.Undefined(), ctx.Err()
	}
}

// validateCallback returns the reason why cb cannot be registered, or an empty string
func validateCallback(cb *Callback, allowThread bool) string {
	if cb == nil {
		return ""
	}

	if cb.Thread != nil {
		if !allowThread {
			return "thread callbacks are only supported on flags"
		}
		if err := cb.Thread.Validate(); err != nil {
			return err.Error()
		}
	}

	switch cb.Mode {
	case ModeSync, ModeAsync:
		if cb.Fn == nil && cb.Thread == nil {
			return fmt.Sprintf("%s callback is not callable", cb.Mode)
		}
		if cb.Promise != nil {
			return fmt.Sprintf("%s callback cannot carry a promise function", cb.Mode)
		}
	case ModePromise:
		if cb.Promise == nil {
			return "promise callback is not callable"
		}
		if cb.Fn != nil {
			return "promise callback cannot carry a plain function"
		}
	default:
		return fmt.Sprintf("unknown callback mode %d", cb.Mode)
	}

	return ""
}

// invoke runs cb according to its mode. Panics are turned into errors carrying a stack.
func invoke(ctx context.Context, cb Callback, call *Call) (result types.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = types.Undefined(), pkgerrors.Errorf("callback panicked: %v", r)
		}
	}()

	call.Context = ctx
	call.This = cb.This
	call.Rest = cb.Rest

	switch cb.Mode {
	case ModeAsync:
		if cb.Fn == nil {
			return types.Undefined(), nil
		}
		return await(ctx, Go(func() (types.Value, error) { return cb.Fn(call) }))
	case ModePromise:
		return await(ctx, cb.Promise(call))
	default:
		if cb.Fn == nil {
			return types.Undefined(), nil
		}
		return cb.Fn(call)
	}
}
