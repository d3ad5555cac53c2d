/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package properties

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/suparena/clientscope/components"
)

// Config holds the plain per-client values a configuration file can set.
// Timeouts and backoff are milliseconds; zero means "not set".
type Config struct {
	LogLevel             string `yaml:"log-level"`
	ConnectTimeoutMillis int    `yaml:"connect-timeout"`
	ReadTimeoutMillis    int    `yaml:"read-timeout"`
	FollowRedirects      *bool  `yaml:"follow-redirects"`
	RetryAttempts        int    `yaml:"retry-attempts"`
	RetryBackoffMillis   int    `yaml:"retry-backoff"`
}

// Properties is the root of a client configuration file: one optional
// "default" section applied as global defaults, plus named client sections
// applied as per-scope overrides.
type Properties struct {
	Default *Config            `yaml:"default"`
	Clients map[string]*Config `yaml:"clients"`
}

// Load reads and parses a client configuration file.
func Load(path string) (*Properties, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading client configuration %q: %w", path, err)
	}

	props, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing client configuration %q: %w", path, err)
	}
	return props, nil
}

// Parse decodes a client configuration document. Unknown fields and invalid
// values are load errors, not deferred to Apply.
func Parse(data []byte) (*Properties, error) {
	var props Properties

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&props); err != nil && err != io.EOF {
		return nil, err
	}

	if props.Default != nil {
		if err := props.Default.validate(); err != nil {
			return nil, fmt.Errorf("default section: %w", err)
		}
	}
	for name, cfg := range props.Clients {
		if cfg == nil {
			continue
		}
		if err := cfg.validate(); err != nil {
			return nil, fmt.Errorf("client %q: %w", name, err)
		}
	}
	return &props, nil
}

func (c *Config) validate() error {
	if c.LogLevel != "" {
		if _, err := components.ParseLogLevel(c.LogLevel); err != nil {
			return err
		}
	}
	if c.ConnectTimeoutMillis < 0 {
		return fmt.Errorf("connect-timeout must not be negative, got %d", c.ConnectTimeoutMillis)
	}
	if c.ReadTimeoutMillis < 0 {
		return fmt.Errorf("read-timeout must not be negative, got %d", c.ReadTimeoutMillis)
	}
	if c.RetryAttempts < 0 {
		return fmt.Errorf("retry-attempts must not be negative, got %d", c.RetryAttempts)
	}
	if c.RetryBackoffMillis < 0 {
		return fmt.Errorf("retry-backoff must not be negative, got %d", c.RetryBackoffMillis)
	}
	return nil
}

// hasOptions reports whether any transport option was set.
func (c *Config) hasOptions() bool {
	return c.ConnectTimeoutMillis > 0 || c.ReadTimeoutMillis > 0 || c.FollowRedirects != nil
}

// options builds the transport options, filling unset values from the
// library defaults.
func (c *Config) options() components.Options {
	opts := components.DefaultOptions()
	if c.ConnectTimeoutMillis > 0 {
		opts.ConnectTimeout = time.Duration(c.ConnectTimeoutMillis) * time.Millisecond
	}
	if c.ReadTimeoutMillis > 0 {
		opts.ReadTimeout = time.Duration(c.ReadTimeoutMillis) * time.Millisecond
	}
	if c.FollowRedirects != nil {
		opts.FollowRedirects = *c.FollowRedirects
	}
	return opts
}

func (c *Config) retryPolicy() components.RetryPolicy {
	return components.RetryPolicy{
		MaxAttempts: c.RetryAttempts,
		Backoff:     time.Duration(c.RetryBackoffMillis) * time.Millisecond,
	}
}
