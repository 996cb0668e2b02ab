package goinput

import "github.com/napalu/goinput/types"

// NewGlobal creates a GlobalFlag configured by configs
func NewGlobal(configs ...ConfigureGlobalFunc) *GlobalFlag {
	global := &GlobalFlag{}

	for _, config := range configs {
		config(global)
	}

	return global
}

// WithGlobalDescription sets the description of the global flag
func WithGlobalDescription(description string) ConfigureGlobalFunc {
	return func(global *GlobalFlag) {
		global.Description = description
	}
}

// WithGlobalUsage sets the usage text of the global flag
func WithGlobalUsage(usage string) ConfigureGlobalFunc {
	return func(global *GlobalFlag) {
		global.Usage = usage
	}
}

// WithGlobalType sets the type of value the global flag accepts
func WithGlobalType(t types.OptionType) ConfigureGlobalFunc {
	return func(global *GlobalFlag) {
		global.Type = t
	}
}

// WithGlobalMultiType sets the types the global flag accepts, tried in order
func WithGlobalMultiType(ts ...types.OptionType) ConfigureGlobalFunc {
	return func(global *GlobalFlag) {
		global.MultiType = append([]types.OptionType{}, ts...)
	}
}

// SetGlobalVoid declares that the global flag takes no value
func SetGlobalVoid(void bool) ConfigureGlobalFunc {
	return func(global *GlobalFlag) {
		global.Void = void
	}
}

// WithGlobalConflicts lists flags and global flags which must not be given together with this one
func WithGlobalConflicts(names ...string) ConfigureGlobalFunc {
	return func(global *GlobalFlag) {
		global.Conflicts = append(global.Conflicts, names...)
	}
}

// WithOnlyFor restricts the commands which may follow the global flag
func WithOnlyFor(commands ...string) ConfigureGlobalFunc {
	return func(global *GlobalFlag) {
		global.OnlyFor = append(global.OnlyFor, commands...)
	}
}

// WithGlobalCallback sets the callback run when the global flag is given. Its result is ignored.
func WithGlobalCallback(callback *Callback) ConfigureGlobalFunc {
	return func(global *GlobalFlag) {
		global.Callback = callback
	}
}
