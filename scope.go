/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package clientscope

import (
	"sync"

	"github.com/suparena/clientscope/catalog"
	"github.com/suparena/clientscope/components"
	"github.com/suparena/clientscope/scope"
)

// singleEntry memoizes one (scope, kind) single-valued resolution. The Once
// guard serializes concurrent first resolutions so a factory runs at most
// once per scope.
type singleEntry struct {
	once  sync.Once
	value any
	ok    bool
}

// multiEntry memoizes one (scope, kind) merged multi-valued resolution.
type multiEntry struct {
	once sync.Once
	list []components.Instance
}

// namedScope is the unit of isolation for one client name. It owns the
// scope-local binding store plus the memoization caches for resolved values.
// Scopes are created on first reference and live for the registry's lifetime.
type namedScope struct {
	name  string
	store *scope.Store

	mu     sync.Mutex
	single map[catalog.Kind]*singleEntry
	multi  map[catalog.Kind]*multiEntry
}

func newNamedScope(name string, cat *catalog.Catalog) *namedScope {
	return &namedScope{
		name:   name,
		store:  scope.NewStore(cat),
		single: make(map[catalog.Kind]*singleEntry),
		multi:  make(map[catalog.Kind]*multiEntry),
	}
}

// singleEntryFor returns the memo entry for kind, creating it if needed. The
// critical section only covers the map access; the factory itself runs inside
// the entry's Once, so resolving a different kind from within a factory does
// not deadlock.
func (s *namedScope) singleEntryFor(kind catalog.Kind) *singleEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.single[kind]
	if !ok {
		e = &singleEntry{}
		s.single[kind] = e
	}
	return e
}

func (s *namedScope) multiEntryFor(kind catalog.Kind) *multiEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.multi[kind]
	if !ok {
		e = &multiEntry{}
		s.multi[kind] = e
	}
	return e
}

// invalidate drops the memoized resolution for kind so the next lookup
// observes the scope's current bindings. Values already handed out are not
// recalled.
func (s *namedScope) invalidate(kind catalog.Kind) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.single, kind)
	delete(s.multi, kind)
}
