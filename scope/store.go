/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package scope

import (
	"sync"

	"github.com/suparena/clientscope/catalog"
	"github.com/suparena/clientscope/components"
	"github.com/suparena/clientscope/errors"
)

// Store holds one named scope's locally-registered component bindings. It
// performs no fallback to global defaults; merging is the resolver's job.
type Store struct {
	mu        sync.RWMutex
	cat       *catalog.Catalog
	single    map[catalog.Kind]any
	factories map[catalog.Kind]catalog.Factory
	multi     map[catalog.Kind][]components.Instance
}

// NewStore creates an empty store whose cardinality checks run against cat.
func NewStore(cat *catalog.Catalog) *Store {
	return &Store{
		cat:       cat,
		single:    make(map[catalog.Kind]any),
		factories: make(map[catalog.Kind]catalog.Factory),
		multi:     make(map[catalog.Kind][]components.Instance),
	}
}

// SetSingle binds an instance for a single-valued kind, replacing any prior
// single binding (instance or factory) for that kind in this scope.
func (s *Store) SetSingle(kind catalog.Kind, v any) error {
	if err := s.check(kind, catalog.SingleValued, "SetSingle"); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.single[kind] = v
	delete(s.factories, kind)
	return nil
}

// SetSingleFactory binds a lazily-invoked producer for a single-valued kind,
// replacing any prior single binding for that kind in this scope.
func (s *Store) SetSingleFactory(kind catalog.Kind, fn catalog.Factory) error {
	if err := s.check(kind, catalog.SingleValued, "SetSingleFactory"); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.factories[kind] = fn
	delete(s.single, kind)
	return nil
}

// AddMultiple binds an instance for a multi-valued kind under a registration
// identifier. Re-registering an existing id replaces that entry in place;
// a new id appends.
func (s *Store) AddMultiple(kind catalog.Kind, id string, v any) error {
	if err := s.check(kind, catalog.MultiValued, "AddMultiple"); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.multi[kind]
	for i, in := range entries {
		if in.ID == id {
			entries[i] = components.Instance{ID: id, Value: v}
			return nil
		}
	}
	s.multi[kind] = append(entries, components.Instance{ID: id, Value: v})
	return nil
}

// Get returns the scope-local single instance binding for kind, if any.
func (s *Store) Get(kind catalog.Kind) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.single[kind]
	return v, ok
}

// GetFactory returns the scope-local single factory binding for kind, if any.
func (s *Store) GetFactory(kind catalog.Kind) (catalog.Factory, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fn, ok := s.factories[kind]
	return fn, ok
}

// GetAll returns a copy of the scope-local multi-valued entries for kind, in
// registration order.
func (s *Store) GetAll(kind catalog.Kind) []components.Instance {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.multi[kind]
	if len(entries) == 0 {
		return nil
	}
	out := make([]components.Instance, len(entries))
	copy(out, entries)
	return out
}

// check verifies kind is declared with the wanted cardinality.
func (s *Store) check(kind catalog.Kind, want catalog.Cardinality, op string) error {
	card, err := s.cat.Cardinality(kind)
	if err != nil {
		return err
	}
	if card != want {
		return errors.NewCardinalityMismatchError(string(kind), card.String(), op)
	}
	return nil
}
