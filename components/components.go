/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package components

import (
	"fmt"
	"strings"
	"time"
)

// Instance is one entry of a multi-valued resolution result. ID is the
// registration identifier the entry was added under; Value is the component
// itself. The caller type-asserts Value to the expected component type.
type Instance struct {
	ID    string
	Value any
}

// Options carries per-client transport tuning values.
type Options struct {
	ConnectTimeout  time.Duration
	ReadTimeout     time.Duration
	FollowRedirects bool
}

// DefaultOptions returns the transport options used when a client configures
// none of its own.
func DefaultOptions() Options {
	return Options{
		ConnectTimeout:  10 * time.Second,
		ReadTimeout:     60 * time.Second,
		FollowRedirects: true,
	}
}

// RetryPolicy describes how many times a client retries a failed call and how
// long it backs off between attempts. A zero MaxAttempts means no retries.
type RetryPolicy struct {
	MaxAttempts int
	Backoff     time.Duration
}

// LogLevel is the per-client logging verbosity threshold. It is a plain value
// kind: resolution carries it as-is with no factory indirection.
type LogLevel int

const (
	// LogNone logs nothing
	LogNone LogLevel = iota

	// LogBasic logs request method and URL plus response status
	LogBasic

	// LogHeaders logs basic information plus request and response headers
	LogHeaders

	// LogFull logs headers, bodies and metadata for both directions
	LogFull
)

// String returns the lowercase name of the level.
func (l LogLevel) String() string {
	switch l {
	case LogNone:
		return "none"
	case LogBasic:
		return "basic"
	case LogHeaders:
		return "headers"
	case LogFull:
		return "full"
	default:
		return fmt.Sprintf("LogLevel(%d)", int(l))
	}
}

// ParseLogLevel converts a level name (case-insensitive) to a LogLevel.
func ParseLogLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return LogNone, nil
	case "basic":
		return LogBasic, nil
	case "headers":
		return LogHeaders, nil
	case "full":
		return LogFull, nil
	default:
		return LogNone, fmt.Errorf("unknown log level %q", s)
	}
}
