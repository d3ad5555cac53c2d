/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package clientscope

import (
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/suparena/clientscope/catalog"
	"github.com/suparena/clientscope/components"
	"github.com/suparena/clientscope/errors"
)

// Registry is the composition root of the library: it owns the process-wide
// default bindings plus one isolated scope per client name, and resolves the
// effective component set for any (name, kind) pair.
//
// Defaults may only be registered during initialization; the registry freezes
// on its first resolution (or an explicit Freeze call) and rejects later
// default registrations with a RegistryFrozenError. Per-scope configuration
// remains open for the registry's lifetime.
type Registry struct {
	cat      *catalog.Catalog
	defaults *globalDefaults

	mu     sync.RWMutex
	scopes map[string]*namedScope

	frozen atomic.Bool
}

// New creates a registry for the given catalog, seeding the global defaults
// from the catalog's declarations.
func New(cat *catalog.Catalog) *Registry {
	return &Registry{
		cat:      cat,
		defaults: newGlobalDefaults(cat),
		scopes:   make(map[string]*namedScope),
	}
}

// RegisterDefault sets the process-wide default instance for a single-valued
// kind. Must be called before the registry serves its first resolution.
func (r *Registry) RegisterDefault(kind catalog.Kind, v any) error {
	if err := r.checkDefault(kind, catalog.SingleValued, "RegisterDefault"); err != nil {
		return err
	}
	r.defaults.setSingle(kind, v)
	slog.Debug("registered default component", "kind", kind)
	return nil
}

// RegisterDefaultFactory sets a lazily-invoked process-wide default for a
// single-valued kind. The factory runs at most once per scope, on the scope's
// first resolution of the kind.
func (r *Registry) RegisterDefaultFactory(kind catalog.Kind, fn catalog.Factory) error {
	if err := r.checkDefault(kind, catalog.SingleValued, "RegisterDefaultFactory"); err != nil {
		return err
	}
	r.defaults.setFactory(kind, fn)
	slog.Debug("registered default component factory", "kind", kind)
	return nil
}

// AddDefault appends a process-wide default entry for a multi-valued kind.
// Re-registering an existing id replaces that entry in place.
func (r *Registry) AddDefault(kind catalog.Kind, id string, v any) error {
	if err := r.checkDefault(kind, catalog.MultiValued, "AddDefault"); err != nil {
		return err
	}
	r.defaults.add(kind, id, v)
	slog.Debug("registered default component entry", "kind", kind, "id", id)
	return nil
}

// Configure binds an instance for a single-valued kind in the named scope,
// creating the scope on first reference. Configuring after a resolution is
// allowed; it drops the scope's memoized value for that kind so the next
// resolution observes the new binding.
func (r *Registry) Configure(name string, kind catalog.Kind, v any) error {
	sc := r.scope(name)
	if err := sc.store.SetSingle(kind, v); err != nil {
		return err
	}
	sc.invalidate(kind)
	slog.Debug("configured scope component", "scope", name, "kind", kind)
	return nil
}

// ConfigureFactory binds a lazily-invoked producer for a single-valued kind
// in the named scope.
func (r *Registry) ConfigureFactory(name string, kind catalog.Kind, fn catalog.Factory) error {
	sc := r.scope(name)
	if err := sc.store.SetSingleFactory(kind, fn); err != nil {
		return err
	}
	sc.invalidate(kind)
	slog.Debug("configured scope component factory", "scope", name, "kind", kind)
	return nil
}

// ConfigureMultiple binds an instance for a multi-valued kind in the named
// scope under a registration identifier. A scope-local id that matches a
// global default shadows that default in place; a new id adds an entry.
func (r *Registry) ConfigureMultiple(name string, kind catalog.Kind, id string, v any) error {
	sc := r.scope(name)
	if err := sc.store.AddMultiple(kind, id, v); err != nil {
		return err
	}
	sc.invalidate(kind)
	slog.Debug("configured scope component entry", "scope", name, "kind", kind, "id", id)
	return nil
}

// ResolveSingle returns the effective instance of a single-valued kind for
// the named scope: the scope-local binding if set, else the global default,
// else absent (ok=false). Absence is a valid outcome, not an error. The
// result is memoized per scope, and any factory involved is invoked at most
// once per (scope, kind).
func (r *Registry) ResolveSingle(name string, kind catalog.Kind) (any, bool, error) {
	card, err := r.cat.Cardinality(kind)
	if err != nil {
		return nil, false, err
	}
	if card != catalog.SingleValued {
		return nil, false, errors.NewCardinalityMismatchError(string(kind), card.String(), "ResolveSingle")
	}

	r.frozen.Store(true)
	sc := r.scope(name)
	e := sc.singleEntryFor(kind)
	e.once.Do(func() {
		e.value, e.ok = r.buildSingle(sc, kind)
	})
	return e.value, e.ok, nil
}

// ResolveMultiple returns the effective instances of a multi-valued kind for
// the named scope: global defaults in registration order, with scope-local
// entries replacing same-id defaults in place and new ids appended in
// registration order. An empty result is valid.
func (r *Registry) ResolveMultiple(name string, kind catalog.Kind) ([]components.Instance, error) {
	card, err := r.cat.Cardinality(kind)
	if err != nil {
		return nil, err
	}
	if card != catalog.MultiValued {
		return nil, errors.NewCardinalityMismatchError(string(kind), card.String(), "ResolveMultiple")
	}

	r.frozen.Store(true)
	sc := r.scope(name)
	e := sc.multiEntryFor(kind)
	e.once.Do(func() {
		e.list = mergeInstances(r.defaults.entries(kind), sc.store.GetAll(kind))
	})

	out := make([]components.Instance, len(e.list))
	copy(out, e.list)
	return out, nil
}

// Freeze marks initialization as complete, rejecting further default
// registrations. Resolution freezes the registry implicitly; Freeze exists
// for callers that want a hard bootstrap boundary. It is idempotent.
func (r *Registry) Freeze() {
	r.frozen.Store(true)
}

// Frozen reports whether default registration is closed.
func (r *Registry) Frozen() bool {
	return r.frozen.Load()
}

// Scopes returns the names of all scopes created so far, sorted.
func (r *Registry) Scopes() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.scopes))
	for name := range r.scopes {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}

// scope returns the named scope, creating it on first reference.
func (r *Registry) scope(name string) *namedScope {
	r.mu.RLock()
	sc, ok := r.scopes[name]
	r.mu.RUnlock()
	if ok {
		return sc
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if sc, ok := r.scopes[name]; ok {
		return sc
	}
	sc = newNamedScope(name, r.cat)
	r.scopes[name] = sc
	slog.Debug("created named scope", "scope", name)
	return sc
}

// buildSingle computes a single-valued resolution in precedence order:
// scope-local instance, scope-local factory, default instance, default
// factory, absent. Runs inside the memo entry's Once.
func (r *Registry) buildSingle(sc *namedScope, kind catalog.Kind) (any, bool) {
	if v, ok := sc.store.Get(kind); ok {
		return v, true
	}
	if fn, ok := sc.store.GetFactory(kind); ok {
		slog.Debug("constructing scope component", "scope", sc.name, "kind", kind)
		return fn(), true
	}
	if v, ok := r.defaults.get(kind); ok {
		return v, true
	}
	if fn, ok := r.defaults.factory(kind); ok {
		slog.Debug("constructing default component", "scope", sc.name, "kind", kind)
		return fn(), true
	}
	return nil, false
}

// checkDefault validates a default registration: the registry must not be
// frozen and the kind's cardinality must match the API used.
func (r *Registry) checkDefault(kind catalog.Kind, want catalog.Cardinality, op string) error {
	if r.frozen.Load() {
		return errors.NewRegistryFrozenError(string(kind))
	}
	card, err := r.cat.Cardinality(kind)
	if err != nil {
		return err
	}
	if card != want {
		return errors.NewCardinalityMismatchError(string(kind), card.String(), op)
	}
	return nil
}

// mergeInstances merges default and scope-local multi-valued entries:
// defaults keep their positions, same-id scope entries shadow in place, new
// scope entries append in registration order.
func mergeInstances(defaults, local []components.Instance) []components.Instance {
	merged := make([]components.Instance, 0, len(defaults)+len(local))
	position := make(map[string]int, len(defaults))

	for _, in := range defaults {
		position[in.ID] = len(merged)
		merged = append(merged, in)
	}
	for _, in := range local {
		if pos, ok := position[in.ID]; ok {
			merged[pos] = in
			continue
		}
		merged = append(merged, in)
	}
	return merged
}
