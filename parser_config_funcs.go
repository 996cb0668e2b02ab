package goinput

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/napalu/goinput/errs"
	"github.com/napalu/goinput/internal/log"
	"github.com/napalu/goinput/thread"
)

// NewParserWith allows initialization of Parser using option functions. The caller should always test for error on
// return because Parser will be nil when an error occurs during initialization.
//
// Configuration example:
//
//	parser, err := NewParserWith(
//		WithInfo(Info{Name: "deployer", Version: "v1.2.0"}),
//		WithCommand(NewCommand(
//			WithCommandDescription("deploy the application"),
//			WithRequiredFlags("env")), "deploy"),
//		WithFlag(NewFlag(
//			WithLongFlag("env"),
//			WithShortFlag("e"),
//			WithType(types.String),
//			ForCommands("deploy"))))
func NewParserWith(configs ...ConfigureParserFunc) (*Parser, error) {
	parser := NewParser()

	var err error
	for _, config := range configs {
		config(parser, &err)
		if err != nil {
			return nil, err
		}
	}

	return parser, err
}

// WithCommand is a wrapper for AddCommand
func WithCommand(cmd *Command, ids ...string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.AddCommand(cmd, ids...)
	}
}

// WithFlag is a wrapper for AddFlag
func WithFlag(flag *Flag, tokens ...string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.AddFlag(flag, tokens...)
	}
}

// WithGlobal is a wrapper for AddGlobal
func WithGlobal(id string, global *GlobalFlag) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.AddGlobal(id, global)
	}
}

// WithCommandAcceptsOptions allows the command=value syntax
func WithCommandAcceptsOptions(value bool) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.settings.CommandAcceptsOptions = value
	}
}

// WithKeyValuePairs toggles the !key:value|key2:value2 flag value syntax
func WithKeyValuePairs(value bool) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.settings.KeyValuePairs = value
	}
}

// WithParseJSON toggles inference of brace-delimited JSON objects
func WithParseJSON(value bool) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.settings.ParseJSON = value
	}
}

// WithOnlyAlpha restricts identifiers to letters and dashes when set, and allows digits
// otherwise
func WithOnlyAlpha(value bool) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.settings.OnlyAlpha = value
	}
}

// WithHandleUncaughtError toggles printing errors and exiting with code 1 from Run
func WithHandleUncaughtError(value bool) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.settings.HandleUncaughtError = value
	}
}

// WithRunWithoutCommand sets the callback run when argv is empty
func WithRunWithoutCommand(cb *Callback) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		if reason := validateCallback(cb, false); reason != "" {
			*err = errs.ErrInvalidSpecification.WithArgs(NoCommand, reason)
			return
		}
		parser.settings.RunWithoutCommand = cb
	}
}

// WithReserved adds words which cannot be used as command, flag or global flag names
func WithReserved(words ...string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		for _, word := range words {
			if parser.reserved[word] {
				*err = errs.ErrInvalidSpecification.WithArgs(word, "already reserved")
				return
			}
			parser.reserved[word] = true
		}
	}
}

// WithInfo describes the CLI. A version, when set, must be a semantic version.
func WithInfo(info Info) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		if info.Version != "" {
			version := info.Version
			if !strings.HasPrefix(version, "v") {
				version = "v" + version
			}
			if !semver.IsValid(version) {
				*err = errs.ErrInvalidSpecification.WithArgs("version", fmt.Sprintf("%q is not a semantic version", info.Version))
				return
			}
		}
		parser.info = info
	}
}

// WithLogger replaces the logger of the parser
func WithLogger(logger *slog.Logger) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		if logger != nil {
			parser.logger = logger
		}
	}
}

// WithLogLevel rebuilds the default logger with the named level (trace, debug, info, warn
// or error) writing to the configured stderr
func WithLogLevel(level string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		lvl, e := log.ParseLevel(level)
		if e != nil {
			*err = e
			return
		}
		parser.logger = log.New(parser.stderr, log.WithLevel(lvl))
	}
}

// WithStdout sets the writer used for help and version output
func WithStdout(w io.Writer) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.stdout = w
	}
}

// WithStderr sets the writer errors are printed to
func WithStderr(w io.Writer) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.stderr = w
	}
}

// WithExitFunc replaces os.Exit
func WithExitFunc(exit func(code int)) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.exit = exit
	}
}

// WithThreadResolver sets how thread descriptors are resolved, e.g. thread.Plugins{}
func WithThreadResolver(resolver thread.Resolver) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.resolver = resolver
	}
}

// WithExport publishes fn as symbol of module in the default in-process module table
func WithExport(module, symbol string, fn interface{}) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.Export(module, symbol, fn)
	}
}

// WithRenderer sets the help renderer
func WithRenderer(renderer Renderer) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.renderer = renderer
	}
}

// WithAliasConverter sets how aliases are derived from long flag names
func WithAliasConverter(converter NameConversionFunc) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.aliasConvert = converter
	}
}
