/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package clientscope

import (
	"sync"

	"github.com/suparena/clientscope/catalog"
	"github.com/suparena/clientscope/components"
)

// globalDefaults holds the process-wide fallback bindings. It is populated
// during registry initialization (from catalog declarations and the
// RegisterDefault family) and read-only once the registry freezes.
type globalDefaults struct {
	mu        sync.RWMutex
	single    map[catalog.Kind]any
	factories map[catalog.Kind]catalog.Factory
	multi     map[catalog.Kind][]components.Instance
}

// newGlobalDefaults seeds the defaults from the catalog's declarations.
func newGlobalDefaults(cat *catalog.Catalog) *globalDefaults {
	g := &globalDefaults{
		single:    make(map[catalog.Kind]any),
		factories: make(map[catalog.Kind]catalog.Factory),
		multi:     make(map[catalog.Kind][]components.Instance),
	}

	for _, kind := range cat.Kinds() {
		if v, ok := cat.Default(kind); ok {
			g.single[kind] = v
		}
		if fn, ok := cat.DefaultFactory(kind); ok {
			g.factories[kind] = fn
		}
		if entries := cat.DefaultEntries(kind); len(entries) > 0 {
			g.multi[kind] = entries
		}
	}
	return g
}

func (g *globalDefaults) setSingle(kind catalog.Kind, v any) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.single[kind] = v
	delete(g.factories, kind)
}

func (g *globalDefaults) setFactory(kind catalog.Kind, fn catalog.Factory) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.factories[kind] = fn
	delete(g.single, kind)
}

// add appends a multi-valued default, replacing in place when id was already
// registered.
func (g *globalDefaults) add(kind catalog.Kind, id string, v any) {
	g.mu.Lock()
	defer g.mu.Unlock()

	entries := g.multi[kind]
	for i, in := range entries {
		if in.ID == id {
			entries[i] = components.Instance{ID: id, Value: v}
			return
		}
	}
	g.multi[kind] = append(entries, components.Instance{ID: id, Value: v})
}

func (g *globalDefaults) get(kind catalog.Kind) (any, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.single[kind]
	return v, ok
}

func (g *globalDefaults) factory(kind catalog.Kind) (catalog.Factory, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	fn, ok := g.factories[kind]
	return fn, ok
}

// entries returns a copy of the default entries for kind in registration order.
func (g *globalDefaults) entries(kind catalog.Kind) []components.Instance {
	g.mu.RLock()
	defer g.mu.RUnlock()

	entries := g.multi[kind]
	if len(entries) == 0 {
		return nil
	}
	out := make([]components.Instance, len(entries))
	copy(out, entries)
	return out
}
