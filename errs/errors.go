package errs

import (
	"errors"
	"fmt"
	"io"
)

// Category groups error conditions by the phase that raises them
type Category int

const (
	CategorySpecification Category = iota + 1 // raised while declaring commands, flags and globals
	CategoryParse                             // raised while splitting argv into a parsed argument set
	CategoryValidation                        // raised while checking parsed flags against their declarations
	CategoryCallback                          // raised by flag, global, command or thread callbacks
)

// String returns the string representation of a Category
func (c Category) String() string {
	switch c {
	case CategorySpecification:
		return "specification"
	case CategoryParse:
		return "parse"
	case CategoryValidation:
		return "validation"
	case CategoryCallback:
		return "callback"
	}
	return "unknown"
}

// Specification errors
var (
	ErrReservedIdentifier   = New(CategorySpecification, ErrReservedIdentifierKey, "%q is a reserved identifier")
	ErrDuplicateDefinition  = New(CategorySpecification, ErrDuplicateDefinitionKey, "%s %q is already defined")
	ErrInvalidSpecification = New(CategorySpecification, ErrInvalidSpecificationKey, "invalid specification for %q: %s")
)

// Parse errors
var (
	ErrDuplicateFlag     = New(CategoryParse, ErrDuplicateFlagKey, "flag %q given more than once")
	ErrMalformedArgument = New(CategoryParse, ErrMalformedArgumentKey, "malformed argument %q: %s")
	ErrUnsupportedOption = New(CategoryParse, ErrUnsupportedOptionKey, "command %q does not accept options")
	ErrMalformedOption   = New(CategoryParse, ErrMalformedOptionKey, "malformed key-value option for %q")
	ErrUnknownCommand    = New(CategoryParse, ErrUnknownCommandKey, "command %q not found")
	ErrUnknownFlag       = New(CategoryParse, ErrUnknownFlagKey, "flag %q not found in command %q")
	ErrUnknownGlobalFlag = New(CategoryParse, ErrUnknownGlobalFlagKey, "global flag %q not found")
	ErrMissingCommand    = New(CategoryParse, ErrMissingCommandKey, "global flags cannot run without a command following them")
	ErrDidYouMean        = New(CategoryParse, ErrDidYouMeanKey, "did you mean %s?")
)

// Validation errors
var (
	ErrUnexpectedValue       = New(CategoryValidation, ErrUnexpectedValueKey, "flag %q does not require a value")
	ErrFlagConflict          = New(CategoryValidation, ErrFlagConflictKey, "flags %q and %q cannot be used together")
	ErrUnsatisfiedDependency = New(CategoryValidation, ErrUnsatisfiedDependencyKey, "flag %q depends on %q")
	ErrTypeMismatch          = New(CategoryValidation, ErrTypeMismatchKey, "%q must be of type %s, given %s")
	ErrGlobalFlagScope       = New(CategoryValidation, ErrGlobalFlagScopeKey, "global flag %q is only for %s")
	ErrCommandHasNoFlags     = New(CategoryValidation, ErrCommandHasNoFlagsKey, "command %q does not have flags")
	ErrCommandRequiresFlag   = New(CategoryValidation, ErrCommandRequiresFlagKey, "command %q requires flag %q")
)

// Callback errors
var (
	ErrCallback             = New(CategoryCallback, ErrCallbackKey, "callback of %q failed")
	ErrThreadSymbolNotFound = New(CategoryCallback, ErrThreadSymbolNotFoundKey, "module %q has no exported symbol %q")
	ErrThreadImport         = New(CategoryCallback, ErrThreadImportKey, "import of thread module %q failed")
	ErrThreadFailed         = New(CategoryCallback, ErrThreadFailedKey, "thread %d of flag %q failed")
)

// Error is a keyed error with optional formatting arguments
// and error wrapping support.
//
// Example usage:
//
//	err := ErrUnknownFlag.WithArgs("--env", "deploy")
//	err = err.Wrap(cause)
//	errors.Is(err, ErrUnknownFlag) // true
type Error struct {
	// the sentinel this error was derived from
	root     *Error
	key      string
	format   string
	category Category
	args     []interface{}
	wrapped  error
}

// New creates a sentinel error
func New(category Category, key, format string) *Error {
	e := &Error{
		key:      key,
		format:   format,
		category: category,
	}
	e.root = e

	return e
}

// Error returns the message, formatted with args if provided
func (e *Error) Error() string {
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", e.message(), e.wrapped)
	}

	return e.message()
}

func (e *Error) message() string {
	if len(e.args) > 0 {
		return fmt.Sprintf(e.format, e.args...)
	}

	return e.format
}

// Format prints the wrapped chain with %+v so stack traces of wrapped causes are kept
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') && e.wrapped != nil {
			_, _ = fmt.Fprintf(s, "%s: %+v", e.message(), e.wrapped)
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}

// WithArgs returns a copy of the error with format arguments
func (e *Error) WithArgs(args ...interface{}) *Error {
	c := *e
	c.args = args

	return &c
}

// Wrap returns a copy of the error wrapping err
func (e *Error) Wrap(err error) *Error {
	c := *e
	c.wrapped = err

	return &c
}

// Key returns the key identifying the condition
func (e *Error) Key() string {
	return e.key
}

// Args returns the formatting arguments
func (e *Error) Args() []interface{} {
	return e.args
}

// Category returns the category of the condition
func (e *Error) Category() Category {
	return e.category
}

// Unwrap returns the wrapped error, if any
func (e *Error) Unwrap() error {
	return e.wrapped
}

// Is reports whether target is the sentinel e was derived from
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.root == t.root
}

// CategoryOf returns the category of the outermost *Error in err's chain
func CategoryOf(err error) (Category, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.category, true
	}

	return 0, false
}

// IsCategory reports whether the outermost *Error in err's chain belongs to c
func IsCategory(err error, c Category) bool {
	got, ok := CategoryOf(err)

	return ok && got == c
}
