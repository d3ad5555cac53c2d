/*
Package scope holds the per-client binding store used by the ClientScope
registry.

A Store keeps exactly one named scope's overrides, keyed by component kind
(and, for multi-valued kinds, by a registration identifier). It knows nothing
about global defaults: its accessors return scope-local state only, and the
registry's resolver layers the fallback and merge semantics on top.

	st := scope.NewStore(cat)
	_ = st.SetSingle("decoder", customDecoder)
	_ = st.AddMultiple("interceptor", "auth", authInterceptor)

	v, ok := st.Get("decoder")      // scope-local only, no default fallback
	all := st.GetAll("interceptor") // registration order, copy
*/
package scope
