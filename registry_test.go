/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package clientscope

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/suparena/clientscope/catalog"
	"github.com/suparena/clientscope/errors"
)

func newTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat := catalog.New()
	cat.MustDeclare("decoder", catalog.SingleValued)
	cat.MustDeclare("logger", catalog.SingleValued)
	cat.MustDeclare("interceptor", catalog.MultiValued)
	return cat
}

func TestScopeIsolation(t *testing.T) {
	reg := New(newTestCatalog(t))

	if err := reg.RegisterDefault("decoder", "default"); err != nil {
		t.Fatalf("Failed to register default: %v", err)
	}
	if err := reg.Configure("alpha", "decoder", "custom"); err != nil {
		t.Fatalf("Failed to configure: %v", err)
	}

	// The scope that was configured sees its override.
	v, ok, err := reg.ResolveSingle("alpha", "decoder")
	if err != nil || !ok || v != "custom" {
		t.Errorf("alpha: expected custom decoder, got %v (ok=%v, err=%v)", v, ok, err)
	}

	// Any other scope still sees the global default.
	v, ok, err = reg.ResolveSingle("beta", "decoder")
	if err != nil || !ok || v != "default" {
		t.Errorf("beta: expected default decoder, got %v (ok=%v, err=%v)", v, ok, err)
	}
}

func TestOverridePrecedence(t *testing.T) {
	reg := New(newTestCatalog(t))

	if err := reg.RegisterDefault("decoder", "default"); err != nil {
		t.Fatalf("Failed to register default: %v", err)
	}

	v, ok, err := reg.ResolveSingle("alpha", "decoder")
	if err != nil || !ok || v != "default" {
		t.Fatalf("Before configure: expected default, got %v (ok=%v, err=%v)", v, ok, err)
	}

	// Late configuration is observed by the very next resolution.
	if err := reg.Configure("alpha", "decoder", "custom"); err != nil {
		t.Fatalf("Failed to configure: %v", err)
	}
	v, ok, err = reg.ResolveSingle("alpha", "decoder")
	if err != nil || !ok || v != "custom" {
		t.Errorf("After configure: expected custom, got %v (ok=%v, err=%v)", v, ok, err)
	}
}

func TestAbsentIsNotAnError(t *testing.T) {
	reg := New(newTestCatalog(t))

	v, ok, err := reg.ResolveSingle("alpha", "decoder")
	if err != nil {
		t.Fatalf("Absence should not be an error, got %v", err)
	}
	if ok || v != nil {
		t.Errorf("Expected absent, got %v (ok=%v)", v, ok)
	}

	all, err := reg.ResolveMultiple("alpha", "interceptor")
	if err != nil {
		t.Fatalf("Empty collection should not be an error, got %v", err)
	}
	if len(all) != 0 {
		t.Errorf("Expected empty collection, got %v", all)
	}
}

func TestMultiValuedMerge(t *testing.T) {
	t.Run("UnionOfDefaultsAndScope", func(t *testing.T) {
		reg := New(newTestCatalog(t))

		if err := reg.AddDefault("interceptor", "base", "x"); err != nil {
			t.Fatalf("Failed to add default: %v", err)
		}
		if err := reg.ConfigureMultiple("alpha", "interceptor", "auth", "y"); err != nil {
			t.Fatalf("Failed to configure: %v", err)
		}

		all, err := reg.ResolveMultiple("alpha", "interceptor")
		if err != nil {
			t.Fatalf("Failed to resolve: %v", err)
		}
		if len(all) != 2 {
			t.Fatalf("Expected 2 instances, got %d", len(all))
		}
		if all[0].ID != "base" || all[0].Value != "x" {
			t.Errorf("Expected default first, got %v", all[0])
		}
		if all[1].ID != "auth" || all[1].Value != "y" {
			t.Errorf("Expected scope addition second, got %v", all[1])
		}
	})

	t.Run("SameIdShadowsInPlace", func(t *testing.T) {
		reg := New(newTestCatalog(t))

		if err := reg.AddDefault("interceptor", "base", "x"); err != nil {
			t.Fatalf("Failed to add default: %v", err)
		}
		if err := reg.AddDefault("interceptor", "tracing", "t"); err != nil {
			t.Fatalf("Failed to add default: %v", err)
		}
		if err := reg.ConfigureMultiple("alpha", "interceptor", "base", "z"); err != nil {
			t.Fatalf("Failed to configure: %v", err)
		}

		all, err := reg.ResolveMultiple("alpha", "interceptor")
		if err != nil {
			t.Fatalf("Failed to resolve: %v", err)
		}
		if len(all) != 2 {
			t.Fatalf("Expected 2 instances (shadow, not append), got %d", len(all))
		}
		if all[0].ID != "base" || all[0].Value != "z" {
			t.Errorf("Expected shadowed entry at the default's position, got %v", all[0])
		}
		if all[1].ID != "tracing" || all[1].Value != "t" {
			t.Errorf("Expected untouched default second, got %v", all[1])
		}
	})

	t.Run("ScopeAdditionsInvisibleElsewhere", func(t *testing.T) {
		reg := New(newTestCatalog(t))

		if err := reg.AddDefault("interceptor", "base", "x"); err != nil {
			t.Fatalf("Failed to add default: %v", err)
		}
		if err := reg.ConfigureMultiple("alpha", "interceptor", "auth", "y"); err != nil {
			t.Fatalf("Failed to configure: %v", err)
		}

		all, err := reg.ResolveMultiple("beta", "interceptor")
		if err != nil {
			t.Fatalf("Failed to resolve: %v", err)
		}
		if len(all) != 1 || all[0].ID != "base" {
			t.Errorf("beta should only see the default, got %v", all)
		}
	})
}

func TestFactoryMemoization(t *testing.T) {
	t.Run("DefaultFactoryOncePerScope", func(t *testing.T) {
		reg := New(newTestCatalog(t))

		var calls atomic.Int32
		err := reg.RegisterDefaultFactory("logger", func() any {
			calls.Add(1)
			return "built"
		})
		if err != nil {
			t.Fatalf("Failed to register factory: %v", err)
		}

		for i := 0; i < 3; i++ {
			v, ok, err := reg.ResolveSingle("alpha", "logger")
			if err != nil || !ok || v != "built" {
				t.Fatalf("Resolution %d: got %v (ok=%v, err=%v)", i, v, ok, err)
			}
		}
		if calls.Load() != 1 {
			t.Errorf("Expected 1 factory invocation for alpha, got %d", calls.Load())
		}

		// A different scope constructs its own instance.
		if _, _, err := reg.ResolveSingle("beta", "logger"); err != nil {
			t.Fatalf("Failed to resolve for beta: %v", err)
		}
		if calls.Load() != 2 {
			t.Errorf("Expected one invocation per scope, got %d", calls.Load())
		}
	})

	t.Run("ConcurrentFirstResolutionConstructsOnce", func(t *testing.T) {
		reg := New(newTestCatalog(t))

		var calls atomic.Int32
		err := reg.RegisterDefaultFactory("logger", func() any {
			return int(calls.Add(1))
		})
		if err != nil {
			t.Fatalf("Failed to register factory: %v", err)
		}

		const workers = 16
		results := make([]any, workers)
		var wg sync.WaitGroup
		wg.Add(workers)
		for i := 0; i < workers; i++ {
			go func(i int) {
				defer wg.Done()
				v, _, _ := reg.ResolveSingle("alpha", "logger")
				results[i] = v
			}(i)
		}
		wg.Wait()

		if calls.Load() != 1 {
			t.Errorf("Expected exactly 1 construction, got %d", calls.Load())
		}
		for i, v := range results {
			if v != 1 {
				t.Errorf("Worker %d observed %v, want 1", i, v)
			}
		}
	})

	t.Run("ScopeFactoryWinsOverDefault", func(t *testing.T) {
		reg := New(newTestCatalog(t))

		if err := reg.RegisterDefault("logger", "default"); err != nil {
			t.Fatalf("Failed to register default: %v", err)
		}
		if err := reg.ConfigureFactory("alpha", "logger", func() any { return "scoped" }); err != nil {
			t.Fatalf("Failed to configure factory: %v", err)
		}

		v, ok, err := reg.ResolveSingle("alpha", "logger")
		if err != nil || !ok || v != "scoped" {
			t.Errorf("Expected scoped factory result, got %v (ok=%v, err=%v)", v, ok, err)
		}
	})
}

func TestCardinalityEnforcement(t *testing.T) {
	reg := New(newTestCatalog(t))

	if _, err := reg.ResolveMultiple("alpha", "decoder"); !errors.IsCardinalityMismatch(err) {
		t.Errorf("ResolveMultiple on a single-valued kind: expected CardinalityMismatchError, got %v", err)
	}
	if _, _, err := reg.ResolveSingle("alpha", "interceptor"); !errors.IsCardinalityMismatch(err) {
		t.Errorf("ResolveSingle on a multi-valued kind: expected CardinalityMismatchError, got %v", err)
	}
	if err := reg.RegisterDefault("interceptor", "x"); !errors.IsCardinalityMismatch(err) {
		t.Errorf("RegisterDefault on a multi-valued kind: expected CardinalityMismatchError, got %v", err)
	}
	if err := reg.AddDefault("decoder", "id", "x"); !errors.IsCardinalityMismatch(err) {
		t.Errorf("AddDefault on a single-valued kind: expected CardinalityMismatchError, got %v", err)
	}
}

func TestUnknownKind(t *testing.T) {
	reg := New(newTestCatalog(t))

	if _, _, err := reg.ResolveSingle("alpha", "never-declared"); !errors.IsUnknownKind(err) {
		t.Errorf("Expected UnknownKindError, got %v", err)
	}
	if _, err := reg.ResolveMultiple("alpha", "never-declared"); !errors.IsUnknownKind(err) {
		t.Errorf("Expected UnknownKindError, got %v", err)
	}
	if err := reg.Configure("alpha", "never-declared", "x"); !errors.IsUnknownKind(err) {
		t.Errorf("Expected UnknownKindError, got %v", err)
	}
	if err := reg.RegisterDefault("never-declared", "x"); !errors.IsUnknownKind(err) {
		t.Errorf("Expected UnknownKindError, got %v", err)
	}
}

func TestFrozenRegistry(t *testing.T) {
	t.Run("FirstResolutionFreezes", func(t *testing.T) {
		reg := New(newTestCatalog(t))

		if reg.Frozen() {
			t.Fatal("Registry should start unfrozen")
		}
		if _, _, err := reg.ResolveSingle("alpha", "decoder"); err != nil {
			t.Fatalf("Failed to resolve: %v", err)
		}
		if !reg.Frozen() {
			t.Error("Registry should freeze on first resolution")
		}

		err := reg.RegisterDefault("decoder", "too-late")
		if !errors.IsRegistryFrozen(err) {
			t.Errorf("Expected RegistryFrozenError, got %v", err)
		}
		err = reg.AddDefault("interceptor", "late", "x")
		if !errors.IsRegistryFrozen(err) {
			t.Errorf("Expected RegistryFrozenError, got %v", err)
		}
	})

	t.Run("ExplicitFreeze", func(t *testing.T) {
		reg := New(newTestCatalog(t))
		reg.Freeze()

		err := reg.RegisterDefault("decoder", "too-late")
		if !errors.IsRegistryFrozen(err) {
			t.Errorf("Expected RegistryFrozenError, got %v", err)
		}
	})

	t.Run("ScopeConfigurationStaysOpen", func(t *testing.T) {
		reg := New(newTestCatalog(t))
		reg.Freeze()

		if err := reg.Configure("alpha", "decoder", "custom"); err != nil {
			t.Errorf("Per-scope configuration should survive the freeze, got %v", err)
		}
		if err := reg.ConfigureMultiple("alpha", "interceptor", "auth", "y"); err != nil {
			t.Errorf("Per-scope configuration should survive the freeze, got %v", err)
		}
	})
}

func TestLateConfigureInvalidatesMemo(t *testing.T) {
	reg := New(newTestCatalog(t))

	if err := reg.AddDefault("interceptor", "base", "x"); err != nil {
		t.Fatalf("Failed to add default: %v", err)
	}

	all, err := reg.ResolveMultiple("alpha", "interceptor")
	if err != nil || len(all) != 1 {
		t.Fatalf("First resolution: got %v (err=%v)", all, err)
	}

	if err := reg.ConfigureMultiple("alpha", "interceptor", "auth", "y"); err != nil {
		t.Fatalf("Failed to configure: %v", err)
	}

	all, err = reg.ResolveMultiple("alpha", "interceptor")
	if err != nil {
		t.Fatalf("Second resolution failed: %v", err)
	}
	if len(all) != 2 || all[1].ID != "auth" {
		t.Errorf("Expected the late addition to be visible, got %v", all)
	}
}

func TestCatalogDefaultsSeedRegistry(t *testing.T) {
	cat := catalog.New()
	cat.MustDeclare("decoder", catalog.SingleValued, catalog.WithDefault("json"))
	cat.MustDeclare("interceptor", catalog.MultiValued, catalog.WithEntry("base", "x"))

	reg := New(cat)

	v, ok, err := reg.ResolveSingle("alpha", "decoder")
	if err != nil || !ok || v != "json" {
		t.Errorf("Expected catalog default, got %v (ok=%v, err=%v)", v, ok, err)
	}

	all, err := reg.ResolveMultiple("alpha", "interceptor")
	if err != nil || len(all) != 1 || all[0].ID != "base" {
		t.Errorf("Expected catalog default entry, got %v (err=%v)", all, err)
	}
}

func TestScopes(t *testing.T) {
	reg := New(newTestCatalog(t))

	if err := reg.Configure("zeta", "decoder", "z"); err != nil {
		t.Fatalf("Failed to configure: %v", err)
	}
	if _, _, err := reg.ResolveSingle("alpha", "decoder"); err != nil {
		t.Fatalf("Failed to resolve: %v", err)
	}

	names := reg.Scopes()
	if len(names) != 2 || names[0] != "alpha" || names[1] != "zeta" {
		t.Errorf("Expected sorted scope names [alpha zeta], got %v", names)
	}
}

func TestResolveMultipleReturnsCopy(t *testing.T) {
	reg := New(newTestCatalog(t))

	if err := reg.AddDefault("interceptor", "base", "x"); err != nil {
		t.Fatalf("Failed to add default: %v", err)
	}

	all, err := reg.ResolveMultiple("alpha", "interceptor")
	if err != nil {
		t.Fatalf("Failed to resolve: %v", err)
	}
	all[0].Value = "mutated"

	again, err := reg.ResolveMultiple("alpha", "interceptor")
	if err != nil {
		t.Fatalf("Failed to resolve again: %v", err)
	}
	if again[0].Value != "x" {
		t.Error("ResolveMultiple should hand out a copy of the memoized slice")
	}
}
