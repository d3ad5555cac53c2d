/*
Package clientscope provides a named-scope component configuration registry:
many independently-declared clients each receive their own customized set of
collaborator components, falling back transparently to process-wide defaults
for anything they do not override.

The registry supports two binding shapes. Single-valued kinds are
override-replaces: a scope-local binding hides the global default. Multi-valued
kinds are override-adds: scope-local entries merge with the defaults,
deduplicated by registration identifier, with same-id entries shadowing the
default in place. Customizing one named scope never leaks into another.

Basic Usage:

	// Bootstrap: declare kinds and defaults, then build the registry
	reg := clientscope.New(catalog.Builtin())
	_ = reg.RegisterDefault(catalog.KindDecoder, jsonDecoder)
	_ = reg.AddDefault(catalog.KindInterceptor, "base", baseInterceptor)

	// Wiring: per-client overrides, created on first reference
	_ = reg.Configure("billing", catalog.KindDecoder, xmlDecoder)
	_ = reg.ConfigureMultiple("billing", catalog.KindInterceptor, "auth", authInterceptor)

	// Consumption: typed accessors over the opaque resolution API
	dec, ok, err := clientscope.Single[Decoder](reg, "billing", catalog.KindDecoder)
	ints, err := clientscope.All[Interceptor](reg, "billing", catalog.KindInterceptor)

Key Features:
  - Per-client isolation with transparent fallback to global defaults
  - Ordered, id-deduplicated merging for accumulating component kinds
  - Lazy, memoized construction: factories run at most once per (scope, kind)
  - Init/freeze lifecycle: defaults are rejected once resolution has begun
  - Absence is a first-class outcome, never an error
  - YAML per-client configuration via the properties subpackage

The registry is a library-level component: no wire format, no persisted
state. Its entire external surface is the in-process API in this package.
*/
package clientscope
