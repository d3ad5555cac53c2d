/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package clientscope

import (
	"fmt"

	"github.com/suparena/clientscope/catalog"
)

// Single resolves a single-valued kind and type-asserts the result to T.
// ok=false means the binding is absent for that scope, which is a normal
// outcome the caller handles with its own fallback. A resolved value of the
// wrong dynamic type is an error.
func Single[T any](r *Registry, name string, kind catalog.Kind) (T, bool, error) {
	var zero T

	v, ok, err := r.ResolveSingle(name, kind)
	if err != nil || !ok {
		return zero, ok, err
	}

	typed, isT := v.(T)
	if !isT {
		return zero, false, fmt.Errorf("component %q for scope %q is %T, not %T", kind, name, v, zero)
	}
	return typed, true, nil
}

// All resolves a multi-valued kind and type-asserts every entry to T,
// preserving resolution order. Any entry of the wrong dynamic type is an
// error.
func All[T any](r *Registry, name string, kind catalog.Kind) ([]T, error) {
	instances, err := r.ResolveMultiple(name, kind)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(instances))
	for _, in := range instances {
		typed, isT := in.Value.(T)
		if !isT {
			var zero T
			return nil, fmt.Errorf("component %q entry %q for scope %q is %T, not %T", kind, in.ID, name, in.Value, zero)
		}
		out = append(out, typed)
	}
	return out, nil
}
