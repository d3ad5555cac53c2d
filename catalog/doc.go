/*
Package catalog declares the component kinds the ClientScope registry knows
about.

Every kind is tagged with a cardinality that decides how per-client overrides
combine with process-wide defaults: SingleValued kinds are override-replaces,
MultiValued kinds are override-adds (deduplicated by registration identifier).

Declaration happens once at bootstrap:

	cat := catalog.New()
	if err := cat.Declare("decoder", catalog.SingleValued,
	    catalog.WithDefault(jsonDecoder)); err != nil {
	    return err
	}
	cat.MustDeclare("interceptor", catalog.MultiValued,
	    catalog.WithEntry("tracing", tracingInterceptor))

Builtin() provides the standard kind set (decoder, encoder, logger, contract,
retry-policy, error-decoder, request-options, query-encoder, log-level,
interceptor, capability, propagation-policy) without defaults attached.

The catalog is read concurrently by all resolutions and must not be mutated
once the surrounding registry starts resolving.
*/
package catalog
