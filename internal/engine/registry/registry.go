// Package registry owns every known layout and resolves names to layouts.
package registry

import (
	"fmt"
	"slices"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/xrash/smetrics"
	"go.trai.ch/cmini/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// DefaultFindCacheSize is the number of fuzzy queries remembered.
	DefaultFindCacheSize = 256

	boostThreshold = 0.7
	prefixSize     = 4
)

// Registry holds layouts in insertion order. Layouts it returns are shared and
// must not be modified; renames and reassignments swap in a fresh copy.
type Registry struct {
	mu      sync.RWMutex
	order   []string
	layouts map[string]*domain.Layout
	finds   *lru.Cache[string, string]
}

// New creates an empty Registry that memoizes up to findCacheSize fuzzy queries.
func New(findCacheSize int) (*Registry, error) {
	if findCacheSize <= 0 {
		findCacheSize = DefaultFindCacheSize
	}
	finds, err := lru.New[string, string](findCacheSize)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create find cache")
	}
	return &Registry{
		layouts: make(map[string]*domain.Layout),
		finds:   finds,
	}, nil
}

// Load replaces the registry contents with layouts, keeping their order.
func (r *Registry) Load(layouts []*domain.Layout) error {
	order := make([]string, 0, len(layouts))
	byName := make(map[string]*domain.Layout, len(layouts))
	for _, l := range layouts {
		if _, dup := byName[l.Name]; dup {
			return zerr.With(zerr.Wrap(domain.ErrCorrupt, "layout is defined twice"), "layout", l.Name)
		}
		order = append(order, l.Name)
		byName[l.Name] = l
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.order = order
	r.layouts = byName
	r.finds.Purge()
	return nil
}

// Add registers a new layout.
func (r *Registry) Add(l *domain.Layout) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.layouts[l.Name]; ok {
		return exists(l.Name)
	}
	r.order = append(r.order, l.Name)
	r.layouts[l.Name] = l
	r.finds.Purge()
	return nil
}

// Remove deletes a layout. Only its owner or a privileged caller may do so.
func (r *Registry) Remove(name string, caller uint64, privileged bool) (*domain.Layout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.layouts[name]
	if !ok {
		return nil, notFound(name)
	}
	if l.Owner != caller && !privileged {
		return nil, NotOwner(name, fmt.Sprintf("remove %s --sudo", name))
	}

	r.order = slices.DeleteFunc(r.order, func(n string) bool { return n == name })
	delete(r.layouts, name)
	r.finds.Purge()
	return l, nil
}

// Rename moves a layout to a new name in place. Keys are untouched, so the
// checksum is preserved.
func (r *Registry) Rename(oldName, newName string, caller uint64, privileged bool) (*domain.Layout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.layouts[oldName]
	if !ok {
		return nil, notFound(oldName)
	}
	if l.Owner != caller && !privileged {
		return nil, NotOwner(oldName, fmt.Sprintf("rename %s %s --sudo", oldName, newName))
	}
	if _, taken := r.layouts[newName]; taken {
		return nil, exists(newName)
	}

	renamed := l.Clone()
	renamed.Name = newName

	idx := slices.Index(r.order, oldName)
	r.order[idx] = newName
	delete(r.layouts, oldName)
	r.layouts[newName] = renamed
	r.finds.Purge()
	return renamed, nil
}

// Assign hands a layout over to a new owner.
func (r *Registry) Assign(name string, owner uint64) (*domain.Layout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.layouts[name]
	if !ok {
		return nil, notFound(name)
	}
	assigned := l.Clone()
	assigned.Owner = owner
	r.layouts[name] = assigned
	return assigned, nil
}

// Get returns the layout registered under exactly name.
func (r *Registry) Get(name string) (*domain.Layout, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.layouts[name]
	return l, ok
}

// Contains reports whether name is registered.
func (r *Registry) Contains(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Find returns the layout whose name is most similar to query. Ties go to the
// layout registered first. It reports false when no name scores above zero,
// which includes an empty registry.
func (r *Registry) Find(query string) (*domain.Layout, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if name, ok := r.finds.Get(query); ok {
		if l, ok := r.layouts[name]; ok {
			return l, true
		}
	}

	best := ""
	bestScore := 0.0
	for _, name := range r.order {
		score := smetrics.JaroWinkler(name, query, boostThreshold, prefixSize)
		if score > bestScore {
			best, bestScore = name, score
		}
	}
	if best == "" {
		return nil, false
	}
	r.finds.Add(query, best)
	return r.layouts[best], true
}

// Snapshot returns every layout in registry order.
func (r *Registry) Snapshot() []*domain.Layout {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Layout, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.layouts[name])
	}
	return out
}

// Len returns the number of registered layouts.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

func notFound(name string) error {
	return zerr.With(zerr.Wrap(domain.ErrLayoutNotFound, fmt.Sprintf("`%s` does not exist", name)), "layout", name)
}

func exists(name string) error {
	return zerr.With(zerr.Wrap(domain.ErrLayoutExists, fmt.Sprintf("`%s` already exists", name)), "layout", name)
}

// NotOwner builds the ownership error for name, naming the privileged
// command that would override it.
func NotOwner(name, override string) error {
	msg := fmt.Sprintf("you don't own `%s`\nHelp: a privileged user may override this with `%s`", name, override)
	return zerr.With(zerr.Wrap(domain.ErrNotOwner, msg), "layout", name)
}
