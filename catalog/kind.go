/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package catalog

// Kind identifies a category of pluggable collaborator a named client may
// customize, for example "decoder" or "interceptor". Kinds carry no behavior
// of their own; their cardinality and defaults live in the Catalog they are
// declared in.
type Kind string

// String returns the kind's name.
func (k Kind) String() string {
	return string(k)
}

// Cardinality describes how per-scope overrides of a kind combine with the
// process-wide defaults.
type Cardinality int

const (
	// SingleValued kinds hold at most one instance per scope; a scope-local
	// binding replaces the global default.
	SingleValued Cardinality = iota

	// MultiValued kinds hold an ordered set of instances keyed by a
	// registration identifier; scope-local bindings add to the global
	// defaults, shadowing only entries registered under the same identifier.
	MultiValued
)

// String returns the cardinality name as used in error messages.
func (c Cardinality) String() string {
	switch c {
	case SingleValued:
		return "SingleValued"
	case MultiValued:
		return "MultiValued"
	default:
		return "Cardinality(?)"
	}
}

// Factory produces a component instance on demand. Factories are invoked at
// most once per (scope, kind) and their result is cached for the scope's
// lifetime.
//
// A factory that needs other components of the same scope may close over the
// registry and resolve them from inside the factory; resolution is reentrant
// for other kinds. A factory that resolves its own kind deadlocks, exactly as
// a self-referential binding would anywhere else.
type Factory func() any
