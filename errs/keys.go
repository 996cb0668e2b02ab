// Package errs provides the error taxonomy of the goinput library.
// This file contains the keys identifying every error condition.
package errs

// Prefix for all goinput keys
const (
	prefixKey = "goinput"
)

// Error prefixes
const (
	ErrorPrefixKey = prefixKey + ".error"
)

// Specification errors
const (
	ErrReservedIdentifierKey   = ErrorPrefixKey + ".reserved_identifier"
	ErrDuplicateDefinitionKey  = ErrorPrefixKey + ".duplicate_definition"
	ErrInvalidSpecificationKey = ErrorPrefixKey + ".invalid_specification"
)

// Parse errors
const (
	ErrDuplicateFlagKey     = ErrorPrefixKey + ".duplicate_flag"
	ErrMalformedArgumentKey = ErrorPrefixKey + ".malformed_argument"
	ErrUnsupportedOptionKey = ErrorPrefixKey + ".unsupported_option"
	ErrMalformedOptionKey   = ErrorPrefixKey + ".malformed_option"
	ErrUnknownCommandKey    = ErrorPrefixKey + ".unknown_command"
	ErrUnknownFlagKey       = ErrorPrefixKey + ".unknown_flag"
	ErrUnknownGlobalFlagKey = ErrorPrefixKey + ".unknown_global_flag"
	ErrMissingCommandKey    = ErrorPrefixKey + ".missing_command"
	ErrDidYouMeanKey        = ErrorPrefixKey + ".did_you_mean"
)

// Validation errors
const (
	ErrUnexpectedValueKey       = ErrorPrefixKey + ".unexpected_value"
	ErrFlagConflictKey          = ErrorPrefixKey + ".flag_conflict"
	ErrUnsatisfiedDependencyKey = ErrorPrefixKey + ".unsatisfied_dependency"
	ErrTypeMismatchKey          = ErrorPrefixKey + ".type_mismatch"
	ErrGlobalFlagScopeKey       = ErrorPrefixKey + ".global_flag_scope"
	ErrCommandHasNoFlagsKey     = ErrorPrefixKey + ".command_has_no_flags"
	ErrCommandRequiresFlagKey   = ErrorPrefixKey + ".command_requires_flag"
)

// Callback errors
const (
	ErrCallbackKey             = ErrorPrefixKey + ".callback"
	ErrThreadSymbolNotFoundKey = ErrorPrefixKey + ".thread_symbol_not_found"
	ErrThreadImportKey         = ErrorPrefixKey + ".thread_import"
	ErrThreadFailedKey         = ErrorPrefixKey + ".thread_failed"
)
