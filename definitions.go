package goinput

import (
	"context"
	"io"
	"log/slog"

	"github.com/iancoleman/strcase"
	"github.com/napalu/goinput/thread"
	"github.com/napalu/goinput/types"
	"github.com/napalu/goinput/types/orderedmap"
	"github.com/napalu/goinput/types/queue"
)

// Reserved identifiers
const (
	HelpCommand    = "help"
	HelpShort      = "-h"
	HelpLong       = "--help"
	VersionCommand = "version"
	VersionShort   = "-v"
	VersionLong    = "--version"
	// NoCommand is the sentinel command run when argv is empty and WithRunWithoutCommand is set
	NoCommand = "no_command"
)

// Default description and usage of declarations which do not set one
const (
	DefaultDescription = "no description provided"
	DefaultUsage       = "no usage provided"
)

// Mode selects how a callback is executed
type Mode int

const (
	ModeSync    Mode = iota // ModeSync calls the callback inline
	ModeAsync               // ModeAsync runs the callback on its own goroutine and awaits it
	ModePromise             // ModePromise awaits the Future returned by the callback
)

func (m Mode) String() string {
	switch m {
	case ModeSync:
		return "sync"
	case ModeAsync:
		return "async"
	case ModePromise:
		return "promise"
	}

	return "unknown"
}

// Outcome is the settled result of a Future
type Outcome struct {
	Value types.Value
	Err   error
}

// Future is a pending Outcome handed back by a promise callback
type Future <-chan Outcome

// CallbackFunc is the signature of sync and async callbacks. A non-undefined result of
// a flag callback replaces the value of the flag.
type CallbackFunc func(call *Call) (types.Value, error)

// PromiseFunc is the signature of promise callbacks
type PromiseFunc func(call *Call) Future

// Callback describes what runs when a command, flag or global flag is used and how.
// Thread is only valid on flags: the worker runs the exported symbol first and Fn is
// then invoked inline with {data, thread_id}.
type Callback struct {
	Mode    Mode
	Fn      CallbackFunc
	Promise PromiseFunc
	Thread  *thread.Descriptor
	This    interface{}
	Rest    []interface{}
}

// Call is handed to every callback
type Call struct {
	Context context.Context
	// Command is the active command
	Command string
	// Name is the token of the flag or global flag, or the command name
	Name  string
	Alias string
	// Value is the coerced value. Command callbacks receive the final flag mapping in Flags.
	Value    types.Value
	Flags    *types.Map
	ThreadID int
	This     interface{}
	Rest     []interface{}
	Session  *Session
}

// Command is a top-level verb owning zero or more flags
type Command struct {
	Name        string
	Description string
	Usage       string
	Type        types.OptionType
	MultiType   []types.OptionType
	Callback    *Callback
	// Required lists flag aliases, or OR-groups such as "user|token", which must be present
	Required []string
	flags    *orderedmap.OrderedMap[string, *Flag]
}

// Flag is an option owned by a command
type Flag struct {
	Alias       string
	Short       string
	Long        string
	Description string
	Usage       string
	Type        types.OptionType
	MultiType   []types.OptionType
	Void        bool
	Conflicts   []string
	DependsOn   []string
	Callback    *Callback
	Precedence  int
	// IsFlagOf lists the commands the flag is registered against
	IsFlagOf []string
	// Tokens are the argv spellings matching the flag, assigned at registration
	Tokens []string
}

// GlobalFlag is an option preceding the command token
type GlobalFlag struct {
	Name        string
	Description string
	Usage       string
	Type        types.OptionType
	MultiType   []types.OptionType
	Void        bool
	Conflicts   []string
	// OnlyFor restricts the commands which may follow the global flag
	OnlyFor  []string
	Callback *Callback
}

// Settings are the run options of a Parser
type Settings struct {
	CommandAcceptsOptions bool
	KeyValuePairs         bool
	ParseJSON             bool
	OnlyAlpha             bool
	HandleUncaughtError   bool
	RunWithoutCommand     *Callback
}

// DefaultSettings returns the settings a new Parser starts with
func DefaultSettings() Settings {
	return Settings{
		CommandAcceptsOptions: false,
		KeyValuePairs:         true,
		ParseJSON:             true,
		OnlyAlpha:             true,
		HandleUncaughtError:   true,
	}
}

// Info describes the CLI for help and version output
type Info struct {
	Name        string
	Description string
	Usage       string
	Version     string
	Website     string
	Repository  string
}

// Logic is run by Run once argv was parsed. Parser.Execute is the default.
type Logic func(ctx context.Context, parsed *ParsedArgs) error

// Renderer renders help output
type Renderer interface {
	CommandUsage(c *Command) string
	FlagUsage(f *Flag) string
	GlobalUsage(g *GlobalFlag) string
	PrintHelp(w io.Writer)
}

// NameConversionFunc converts a token to an alias
type NameConversionFunc func(string) string

// DefaultAliasConverter derives an alias from a long flag token
var DefaultAliasConverter NameConversionFunc = ToKebabCase

// ToKebabCase converts a string to kebab-case
var ToKebabCase = strcase.ToKebab

// ToLowerCamel converts a string to lowerCamelCase
var ToLowerCamel = strcase.ToLowerCamel

// ConfigureParserFunc is used when defining Parser options
type ConfigureParserFunc func(parser *Parser, err *error)

// ConfigureCommandFunc is used when defining Command options
type ConfigureCommandFunc func(command *Command)

// ConfigureFlagFunc is used when defining Flag options
type ConfigureFlagFunc func(flag *Flag)

// ConfigureGlobalFunc is used when defining GlobalFlag options
type ConfigureGlobalFunc func(global *GlobalFlag)

// Parser opaque struct used in all Flag/Command manipulation
type Parser struct {
	commands     *orderedmap.OrderedMap[string, *Command]
	globals      *orderedmap.OrderedMap[string, *GlobalFlag]
	reserved     map[string]bool
	settings     Settings
	info         Info
	renderer     Renderer
	resolver     thread.Resolver
	signals      *thread.Signals
	logger       *slog.Logger
	aliasConvert NameConversionFunc
	queue        *queue.Precedence[string, *queued]
	session      *Session
	stdout       io.Writer
	stderr       io.Writer
	exit         func(code int)
	processName  string
}

// queued is a captured flag callback waiting in the precedence queue
type queued struct {
	flag     *Flag
	token    string
	alias    string
	value    types.Value
	callback Callback
	threadID int
}
