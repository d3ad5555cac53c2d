/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package catalog

import (
	"fmt"
	"sort"
	"sync"

	"github.com/suparena/clientscope/components"
	"github.com/suparena/clientscope/errors"
)

// declaration holds everything a Declare call recorded for one kind.
type declaration struct {
	cardinality Cardinality
	def         any
	hasDef      bool
	factory     Factory
	entries     []components.Instance
}

// Catalog is the static table of every supported component kind: its
// cardinality and, optionally, its process-wide default instance(s) or
// default factory. It is populated during bootstrap and read concurrently by
// all resolutions afterwards.
type Catalog struct {
	mu    sync.RWMutex
	kinds map[Kind]*declaration
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		kinds: make(map[Kind]*declaration),
	}
}

// DeclareOption attaches a default to a kind declaration.
type DeclareOption func(*declaration)

// WithDefault sets the process-wide default instance for a single-valued kind.
func WithDefault(v any) DeclareOption {
	return func(d *declaration) {
		d.def = v
		d.hasDef = true
	}
}

// WithDefaultFactory sets a lazily-invoked process-wide default for a
// single-valued kind. The factory runs at most once per scope, on the scope's
// first resolution of the kind.
func WithDefaultFactory(fn Factory) DeclareOption {
	return func(d *declaration) {
		d.factory = fn
	}
}

// WithEntry appends a process-wide default entry for a multi-valued kind.
// Repeat the option to declare several defaults; declaration order is the
// order resolution returns them in.
func WithEntry(id string, v any) DeclareOption {
	return func(d *declaration) {
		d.entries = append(d.entries, components.Instance{ID: id, Value: v})
	}
}

// Declare registers a kind with its cardinality and optional defaults.
// Declaring the same kind twice fails with a DuplicateKindError. Defaults
// whose shape does not match the declared cardinality are rejected.
func (c *Catalog) Declare(kind Kind, cardinality Cardinality, opts ...DeclareOption) error {
	if kind == "" {
		return fmt.Errorf("catalog: empty kind name")
	}

	d := &declaration{cardinality: cardinality}
	for _, opt := range opts {
		opt(d)
	}

	if cardinality == SingleValued && len(d.entries) > 0 {
		return errors.NewCardinalityMismatchError(string(kind), cardinality.String(), "WithEntry")
	}
	if cardinality == MultiValued && (d.hasDef || d.factory != nil) {
		return errors.NewCardinalityMismatchError(string(kind), cardinality.String(), "WithDefault")
	}
	if d.hasDef && d.factory != nil {
		return fmt.Errorf("catalog: kind %q declares both a default instance and a default factory", kind)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.kinds[kind]; exists {
		return errors.NewDuplicateKindError(string(kind))
	}
	c.kinds[kind] = d
	return nil
}

// MustDeclare declares a kind and panics on error. Useful for bootstrap
// tables built in init functions.
func (c *Catalog) MustDeclare(kind Kind, cardinality Cardinality, opts ...DeclareOption) {
	if err := c.Declare(kind, cardinality, opts...); err != nil {
		panic(err)
	}
}

// Cardinality returns the declared cardinality of kind.
func (c *Catalog) Cardinality(kind Kind) (Cardinality, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	d, exists := c.kinds[kind]
	if !exists {
		return SingleValued, errors.NewUnknownKindError(string(kind))
	}
	return d.cardinality, nil
}

// Default returns the declared default instance for a single-valued kind.
func (c *Catalog) Default(kind Kind) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	d, exists := c.kinds[kind]
	if !exists || !d.hasDef {
		return nil, false
	}
	return d.def, true
}

// DefaultFactory returns the declared default factory for a single-valued kind.
func (c *Catalog) DefaultFactory(kind Kind) (Factory, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	d, exists := c.kinds[kind]
	if !exists || d.factory == nil {
		return nil, false
	}
	return d.factory, true
}

// DefaultEntries returns a copy of the declared default entries for a
// multi-valued kind, in declaration order.
func (c *Catalog) DefaultEntries(kind Kind) []components.Instance {
	c.mu.RLock()
	defer c.mu.RUnlock()

	d, exists := c.kinds[kind]
	if !exists || len(d.entries) == 0 {
		return nil
	}
	out := make([]components.Instance, len(d.entries))
	copy(out, d.entries)
	return out
}

// Kinds returns all declared kinds in lexicographic order.
func (c *Catalog) Kinds() []Kind {
	c.mu.RLock()
	kinds := make([]Kind, 0, len(c.kinds))
	for k := range c.kinds {
		kinds = append(kinds, k)
	}
	c.mu.RUnlock()

	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
