/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package catalog

// The standard component kinds a named API client can customize.
const (
	KindDecoder           Kind = "decoder"
	KindEncoder           Kind = "encoder"
	KindLogger            Kind = "logger"
	KindContract          Kind = "contract"
	KindRetryPolicy       Kind = "retry-policy"
	KindErrorDecoder      Kind = "error-decoder"
	KindRequestOptions    Kind = "request-options"
	KindQueryEncoder      Kind = "query-encoder"
	KindLogLevel          Kind = "log-level"
	KindInterceptor       Kind = "interceptor"
	KindCapability        Kind = "capability"
	KindPropagationPolicy Kind = "propagation-policy"
)

// Builtin returns a catalog pre-declaring the standard kinds with their
// cardinalities. Interceptors, capabilities and propagation policies
// accumulate across defaults and scopes; everything else is override-replaces.
// No defaults are attached; callers register those on the registry during
// bootstrap.
func Builtin() *Catalog {
	c := New()

	c.MustDeclare(KindDecoder, SingleValued)
	c.MustDeclare(KindEncoder, SingleValued)
	c.MustDeclare(KindLogger, SingleValued)
	c.MustDeclare(KindContract, SingleValued)
	c.MustDeclare(KindRetryPolicy, SingleValued)
	c.MustDeclare(KindErrorDecoder, SingleValued)
	c.MustDeclare(KindRequestOptions, SingleValued)
	c.MustDeclare(KindQueryEncoder, SingleValued)
	c.MustDeclare(KindLogLevel, SingleValued)
	c.MustDeclare(KindInterceptor, MultiValued)
	c.MustDeclare(KindCapability, MultiValued)
	c.MustDeclare(KindPropagationPolicy, MultiValued)

	return c
}
