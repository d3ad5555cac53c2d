/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package properties

import (
	"fmt"
	"sort"

	"github.com/suparena/clientscope"
	"github.com/suparena/clientscope/catalog"
	"github.com/suparena/clientscope/components"
)

// Apply writes the loaded configuration into a registry: the "default"
// section becomes global defaults, each named client section becomes
// per-scope overrides. The registry must still accept defaults, so Apply
// belongs to the initialization phase; a frozen registry surfaces the
// RegistryFrozenError unchanged.
func (p *Properties) Apply(reg *clientscope.Registry) error {
	if p.Default != nil {
		if err := applyConfig(p.Default, reg.RegisterDefault); err != nil {
			return fmt.Errorf("applying default configuration: %w", err)
		}
	}

	names := make([]string, 0, len(p.Clients))
	for name := range p.Clients {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		cfg := p.Clients[name]
		if cfg == nil {
			continue
		}
		set := func(kind catalog.Kind, v any) error {
			return reg.Configure(name, kind, v)
		}
		if err := applyConfig(cfg, set); err != nil {
			return fmt.Errorf("applying configuration for client %q: %w", name, err)
		}
	}
	return nil
}

// applyConfig maps one config section onto component kinds through the given
// binder (global default or per-scope, depending on the section).
func applyConfig(cfg *Config, set func(catalog.Kind, any) error) error {
	if cfg.LogLevel != "" {
		lvl, err := components.ParseLogLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		if err := set(catalog.KindLogLevel, lvl); err != nil {
			return err
		}
	}
	if cfg.hasOptions() {
		if err := set(catalog.KindRequestOptions, cfg.options()); err != nil {
			return err
		}
	}
	if cfg.RetryAttempts > 0 {
		if err := set(catalog.KindRetryPolicy, cfg.retryPolicy()); err != nil {
			return err
		}
	}
	return nil
}
