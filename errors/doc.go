/*
Package errors provides semantic error types for the ClientScope library.

The package defines the registry's misconfiguration scenarios with specific
types that can be checked using the standard errors.Is() function or the
provided helper functions.

Common Errors:

	var (
	    ErrUnknownKind         = errors.New("unknown component kind")
	    ErrDuplicateKind       = errors.New("component kind already declared")
	    ErrCardinalityMismatch = errors.New("component kind cardinality mismatch")
	    ErrRegistryFrozen      = errors.New("registry is frozen")
	)

Usage:

	err := cat.Declare("decoder", catalog.SingleValued)
	if errors.IsDuplicateKind(err) {
	    // the bootstrap collaborator declared the kind twice
	}

All four error kinds indicate misconfiguration that must be fixed by the
caller. They are raised synchronously at the point of the offending call and
are never retried or suppressed. An absent binding is deliberately not an
error: single-valued resolution reports absence through its ok result, and
multi-valued resolution returns an empty collection.
*/
package errors
