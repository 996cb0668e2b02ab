package goinput

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/napalu/goinput/errs"
	"github.com/napalu/goinput/types"
)

func exitRecorder(code *int) ConfigureParserFunc {
	return WithExitFunc(func(c int) { *code = c })
}

func TestParser_Run(t *testing.T) {
	t.Run("errors are printed and exit with 1", func(t *testing.T) {
		code := -1
		p, stdout, stderr := newTestParser(t, exitRecorder(&code), WithCommand(NewCommand(), "deploy"))

		err := p.Run(context.Background(), []string{"deploy", "--env"}, nil, "tool")
		assert.ErrorIs(t, err, errs.ErrCommandHasNoFlags)
		assert.Equal(t, 1, code)
		assert.True(t, strings.HasPrefix(stderr.String(), "tool: "), stderr.String())
		assert.Contains(t, stderr.String(), `command "deploy" does not have flags`)
		assert.Empty(t, stdout.String())
	})

	t.Run("errors are returned when not handled", func(t *testing.T) {
		code := -1
		p, _, stderr := newTestParser(t, exitRecorder(&code), WithHandleUncaughtError(false), WithCommand(NewCommand(), "deploy"))

		err := p.Run(context.Background(), []string{"deploy", "--env"}, nil, "tool")
		assert.ErrorIs(t, err, errs.ErrCommandHasNoFlags)
		assert.Equal(t, -1, code)
		assert.Empty(t, stderr.String())
	})

	t.Run("parse errors are handled too", func(t *testing.T) {
		code := -1
		p, _, stderr := newTestParser(t, exitRecorder(&code), WithCommand(NewCommand(), "deploy"))

		err := p.Run(context.Background(), []string{"deploy", "--env", "--env"}, nil, "tool")
		assert.ErrorIs(t, err, errs.ErrDuplicateFlag)
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr.String(), "tool: ")
	})

	t.Run("panics in logic are handled", func(t *testing.T) {
		code := -1
		p, _, stderr := newTestParser(t, exitRecorder(&code), WithCommand(NewCommand(), "deploy"))

		err := p.Run(context.Background(), []string{"deploy"}, func(context.Context, *ParsedArgs) error {
			panic("boom")
		}, "tool")
		require.Error(t, err)
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr.String(), "tool: panic: boom")
	})

	t.Run("custom logic receives the parsed arguments", func(t *testing.T) {
		p, _, _ := newTestParser(t,
			WithCommand(NewCommand(), "deploy"),
			WithFlag(NewFlag(WithLongFlag("env"), ForCommands("deploy"))))

		var got *ParsedArgs
		require.NoError(t, p.Run(context.Background(), []string{"deploy", "--env=prod"}, func(_ context.Context, parsed *ParsedArgs) error {
			got = parsed
			return nil
		}, "tool"))

		require.NotNil(t, got)
		assert.Equal(t, "deploy", got.CommandName())
		assert.True(t, got.HasFlag("--env"))
	})

	t.Run("logic errors are handled", func(t *testing.T) {
		code := -1
		boom := errors.New("boom")
		p, _, stderr := newTestParser(t, exitRecorder(&code), WithCommand(NewCommand(), "deploy"))

		err := p.Run(context.Background(), []string{"deploy"}, func(context.Context, *ParsedArgs) error {
			return boom
		}, "tool")
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, "tool: boom\n", stderr.String())
	})

	t.Run("every run gets a fresh session", func(t *testing.T) {
		var ids []string
		p, _, _ := newTestParser(t, WithCommand(NewCommand(WithCommandCallback(Sync(func(c *Call) (types.Value, error) {
			ids = append(ids, c.Session.ID())
			assert.False(t, c.Session.Has("seen"))
			c.Session.Set("seen", true)
			return types.Undefined(), nil
		}))), "deploy"))

		require.NoError(t, p.Run(context.Background(), []string{"deploy"}, nil, "tool"))
		require.NoError(t, p.Run(context.Background(), []string{"deploy"}, nil, "tool"))

		require.Len(t, ids, 2)
		assert.NotEqual(t, ids[0], ids[1])
		assert.Equal(t, ids[1], p.Session().ID())
	})

	t.Run("the queue is empty after a failed run", func(t *testing.T) {
		p, _, _ := newTestParser(t,
			WithHandleUncaughtError(false),
			WithCommand(NewCommand(), "deploy"),
			WithFlag(NewFlag(WithLongFlag("a"), WithCallback(Sync(noop)), ForCommands("deploy"))),
			WithFlag(NewFlag(WithLongFlag("b"), WithCallback(Sync(func(*Call) (types.Value, error) {
				return types.Undefined(), errors.New("boom")
			})), ForCommands("deploy"))),
			WithFlag(NewFlag(WithLongFlag("c"), WithPrecedence(2), WithCallback(Sync(noop)), ForCommands("deploy"))))

		assert.ErrorIs(t, p.Run(context.Background(), []string{"deploy", "--a", "--b", "--c"}, nil, "tool"), errs.ErrCallback)
		assert.Equal(t, 0, p.queue.Len())
	})
}

func TestParser_RunHelpAndVersion(t *testing.T) {
	info := Info{
		Name:        "tool",
		Description: "ships things",
		Usage:       "tool <command> [flags]",
		Version:     "1.2.0",
		Website:     "https://example.com",
	}

	newParser := func(t *testing.T, configs ...ConfigureParserFunc) (*Parser, func() string) {
		p, stdout, _ := newTestParser(t, append([]ConfigureParserFunc{
			WithInfo(info),
			WithGlobal("--verbose", NewGlobal(SetGlobalVoid(true), WithGlobalDescription("more output"))),
			WithCommand(NewCommand(WithCommandDescription("deploy the app"), WithRequiredFlags("env")), "deploy"),
			WithFlag(NewFlag(WithLongFlag("env"), WithShortFlag("e"), WithType(types.String), WithDescription("target"), ForCommands("deploy"))),
		}, configs...)...)
		return p, stdout.String
	}

	for _, args := range [][]string{{"help"}, {"-h"}, {"--help"}} {
		t.Run("help "+strings.Join(args, " "), func(t *testing.T) {
			p, stdout := newParser(t)
			require.NoError(t, p.Run(context.Background(), args, nil, "tool"))

			out := stdout()
			assert.True(t, strings.HasPrefix(out, "tool 1.2.0\nships things\n"), out)
			assert.Contains(t, out, "usage: tool <command> [flags]")
			assert.Contains(t, out, "global flags:\n  --verbose \"more output\" [void]\n")
			assert.Contains(t, out, "commands:\n  deploy \"deploy the app\" requires: env\n")
			assert.Contains(t, out, "    -e, --env (env) \"target\" [string]\n")
			assert.Contains(t, out, "website: https://example.com\n")
		})
	}

	for _, args := range [][]string{{"version"}, {"-v"}, {"--version"}} {
		t.Run("version "+strings.Join(args, " "), func(t *testing.T) {
			p, stdout := newParser(t)
			require.NoError(t, p.Run(context.Background(), args, nil, "tool"))
			assert.Equal(t, "tool 1.2.0\n", stdout())
		})
	}

	t.Run("empty argv prints help", func(t *testing.T) {
		p, stdout := newParser(t)
		require.NoError(t, p.Run(context.Background(), nil, nil, "tool"))
		assert.Contains(t, stdout(), "commands:")
	})

	t.Run("empty argv runs the no-command callback", func(t *testing.T) {
		ran := false
		p, stdout := newParser(t, WithRunWithoutCommand(Sync(func(c *Call) (types.Value, error) {
			ran = true
			assert.Equal(t, NoCommand, c.Command)
			return types.Undefined(), nil
		})))
		require.NoError(t, p.Run(context.Background(), nil, nil, "tool"))
		assert.True(t, ran)
		assert.Empty(t, stdout())
	})

	t.Run("version falls back to unknown", func(t *testing.T) {
		p, stdout, _ := newTestParser(t)
		require.NoError(t, p.Run(context.Background(), []string{"--version"}, nil, "tool"))
		assert.Equal(t, "tool unknown\n", stdout.String())
	})
}
