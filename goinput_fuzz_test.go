package goinput

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/napalu/goinput/errs"
	"github.com/napalu/goinput/internal/log"
	"github.com/napalu/goinput/parse"
	"github.com/napalu/goinput/types"
)

func FuzzParse(f *testing.F) {
	// Seed corpus with edge cases
	f.Add("deploy --env=prod")
	f.Add("--verbose deploy -e=staging --force")
	f.Add("deploy --env=")
	f.Add("deploy=3 --tags=!a:1|b:2")
	f.Add("deploy --tags=!a")
	f.Add("deploy --meta={\"a\":1}")
	f.Add("deploy --env --env")
	f.Add("-- value")
	f.Add("漢字 --こんにちは")
	f.Add("help")
	f.Add("0")
	f.Add("=")
	f.Fuzz(func(t *testing.T, rawArgs string) {
		args, err := parse.Split(rawArgs)
		if err != nil || len(args) == 0 {
			return
		}

		var out bytes.Buffer
		p, err := NewParserWith(
			WithLogger(log.Discard()),
			WithStdout(&out),
			WithStderr(&out),
			WithExitFunc(func(int) {}),
			WithCommandAcceptsOptions(true),
			WithGlobal("--verbose", NewGlobal(SetGlobalVoid(true))),
			WithCommand(NewCommand(), "deploy"),
			WithFlag(NewFlag(WithLongFlag("env"), WithShortFlag("e"), WithType(types.String), ForCommands("deploy"))),
			WithFlag(NewFlag(WithLongFlag("force"), SetVoid(true), ForCommands("deploy"))),
			WithFlag(NewFlag(WithLongFlag("tags"), WithType(types.KVP), ForCommands("deploy"))),
			WithFlag(NewFlag(WithLongFlag("meta"), ForCommands("deploy"))))
		if err != nil {
			t.Fatal(err)
		}

		parsed, err := p.Parse(args)
		if err != nil {
			// every parse failure is classified
			assert.True(t, errs.IsCategory(err, errs.CategoryParse), "unclassified error %v", err)
			assert.Nil(t, parsed)
			return
		}

		// parsed flags are kept under the token they were given with
		for _, token := range parsed.Flag.Keys() {
			assert.NotEmpty(t, token)
		}

		if err := p.Execute(context.Background(), parsed); err != nil {
			assert.NotEqual(t, 0, len(err.Error()))
		}
		assert.NotContains(t, out.String(), "%!")
	})
}
