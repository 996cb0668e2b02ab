package goinput

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/napalu/goinput/thread"
	"github.com/napalu/goinput/types"
)

func TestAwait(t *testing.T) {
	ctx := context.Background()

	v, err := await(ctx, Resolved(types.StringOf("done")))
	require.NoError(t, err)
	assert.True(t, types.StringOf("done").Equal(v))

	boom := errors.New("boom")
	_, err = await(ctx, Rejected(boom))
	assert.ErrorIs(t, err, boom)

	v, err = await(ctx, nil)
	require.NoError(t, err)
	assert.True(t, v.IsUndefined())

	closed := make(chan Outcome)
	close(closed)
	v, err = await(ctx, closed)
	require.NoError(t, err)
	assert.True(t, v.IsUndefined())

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = await(cancelled, make(chan Outcome))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGo(t *testing.T) {
	v, err := await(context.Background(), Go(func() (types.Value, error) {
		time.Sleep(time.Millisecond)
		return types.NumberOf(1), nil
	}))
	require.NoError(t, err)
	assert.True(t, types.NumberOf(1).Equal(v))

	_, err = await(context.Background(), Go(func() (types.Value, error) {
		panic("kaboom")
	}))
	assert.ErrorContains(t, err, "callback panicked: kaboom")
}

func TestValidateCallback(t *testing.T) {
	tests := []struct {
		name        string
		cb          *Callback
		allowThread bool
		valid       bool
	}{
		{"nil", nil, false, true},
		{"sync", Sync(noop), false, true},
		{"async", Async(noop), false, true},
		{"promise", Promised(func(*Call) Future { return Resolved(types.Null()) }), false, true},
		{"sync without function", &Callback{Mode: ModeSync}, false, false},
		{"promise without function", &Callback{Mode: ModePromise}, false, false},
		{"promise with plain function", &Callback{Mode: ModePromise, Fn: noop, Promise: func(*Call) Future { return nil }}, false, false},
		{"sync with promise function", &Callback{Mode: ModeSync, Fn: noop, Promise: func(*Call) Future { return nil }}, false, false},
		{"unknown mode", &Callback{Mode: Mode(7), Fn: noop}, false, false},
		{"thread on flag", Threaded("workers", "Run", nil), true, true},
		{"thread elsewhere", Threaded("workers", "Run", nil), false, false},
		{"thread without symbol", Threaded("workers", "", nil), true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reason := validateCallback(tt.cb, tt.allowThread)
			if tt.valid {
				assert.Empty(t, reason)
				return
			}
			assert.NotEmpty(t, reason)
		})
	}
}

func TestInvoke(t *testing.T) {
	call := &Call{Value: types.StringOf("in")}

	v, err := invoke(context.Background(), Callback{Mode: ModeSync}, call)
	require.NoError(t, err)
	assert.True(t, v.IsUndefined())

	v, err = invoke(context.Background(), *Sync(func(c *Call) (types.Value, error) {
		assert.NotNil(t, c.Context)
		return types.StringOf(c.Value.String() + "-out"), nil
	}), call)
	require.NoError(t, err)
	assert.True(t, types.StringOf("in-out").Equal(v))

	_, err = invoke(context.Background(), *Promised(func(*Call) Future { panic("kaboom") }), call)
	assert.ErrorContains(t, err, "callback panicked: kaboom")

	d := thread.Descriptor{Module: "m", Symbol: "s"}
	assert.Equal(t, "m#s", d.String())
}
