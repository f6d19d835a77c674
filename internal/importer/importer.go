// Package importer maps metadata stream names, such as "DC", to the routines that turn those streams into item
// metadata. Importers are registered explicitly when the application starts.
package importer

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/sidereusnuntius/fedoraconnector/internal/domain"
)

var (
	ErrDuplicate = errors.New("importer already registered")
	ErrInvalid   = errors.New("invalid importer")
)

// Importer extracts element texts from a metadata document. The returned texts carry only the element and its
// value; the caller fills in the item and datastream.
type Importer interface {
	Import(ctx context.Context, doc []byte) ([]domain.ElementText, error)
}

// Func adapts a function to the Importer interface.
type Func func(ctx context.Context, doc []byte) ([]domain.ElementText, error)

func (f Func) Import(ctx context.Context, doc []byte) ([]domain.ElementText, error) {
	return f(ctx, doc)
}

type Registry struct {
	mu        sync.RWMutex
	importers map[string]Importer
}

func NewRegistry() *Registry {
	return &Registry{
		importers: map[string]Importer{},
	}
}

// Default returns a registry holding the Dublin Core and MODS importers.
func Default() *Registry {
	r := NewRegistry()
	r.MustRegister(DublinCore, DC{})
	r.MustRegister(ModsName, MODS{})
	return r
}

func (r *Registry) Register(name string, importer Importer) error {
	if name == "" || importer == nil {
		return fmt.Errorf("%w: %q", ErrInvalid, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.importers[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, name)
	}
	r.importers[name] = importer
	return nil
}

func (r *Registry) MustRegister(name string, importer Importer) {
	if err := r.Register(name, importer); err != nil {
		panic(err)
	}
}

func (r *Registry) Lookup(name string) (Importer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.importers[name]
	return i, ok
}

func (r *Registry) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Names returns the registered metadata stream names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.importers))
	for name := range r.importers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
