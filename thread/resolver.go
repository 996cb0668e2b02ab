package thread

import (
	"plugin"
	"sync"

	"github.com/napalu/goinput/errs"
)

// Resolver loads the symbol named by a descriptor. Implementations return errors
// matching errs.ErrThreadImport when the module cannot be loaded and
// errs.ErrThreadSymbolNotFound when it does not export the symbol.
type Resolver interface {
	Resolve(d Descriptor) (interface{}, error)
}

// Modules is an in-process module table: worker symbols are exported under a module
// path at start-up and resolved by descriptor when a worker starts.
type Modules struct {
	mu      sync.RWMutex
	modules map[string]map[string]interface{}
}

// NewModules creates an empty module table
func NewModules() *Modules {
	return &Modules{modules: map[string]map[string]interface{}{}}
}

// Export publishes fn as symbol of module. fn must be a Func, an AsyncFunc or a func
// literal of either shape.
func (m *Modules) Export(module, symbol string, fn interface{}) error {
	d := Descriptor{Module: module, Symbol: symbol}
	if err := d.Validate(); err != nil {
		return err
	}
	if _, err := Callable(fn); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	symbols, ok := m.modules[module]
	if !ok {
		symbols = map[string]interface{}{}
		m.modules[module] = symbols
	}
	symbols[symbol] = fn

	return nil
}

// Resolve implements Resolver
func (m *Modules) Resolve(d Descriptor) (interface{}, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	symbols, ok := m.modules[d.Module]
	if !ok {
		return nil, errs.ErrThreadImport.WithArgs(d.Module)
	}
	fn, ok := symbols[d.Symbol]
	if !ok {
		return nil, errs.ErrThreadSymbolNotFound.WithArgs(d.Module, d.Symbol)
	}

	return fn, nil
}

// Plugins resolves descriptors whose module is the path of a Go plugin (.so)
type Plugins struct{}

// Resolve implements Resolver
func (Plugins) Resolve(d Descriptor) (interface{}, error) {
	p, err := plugin.Open(d.Module)
	if err != nil {
		return nil, errs.ErrThreadImport.WithArgs(d.Module).Wrap(err)
	}
	sym, err := p.Lookup(d.Symbol)
	if err != nil {
		return nil, errs.ErrThreadSymbolNotFound.WithArgs(d.Module, d.Symbol).Wrap(err)
	}

	return sym, nil
}
