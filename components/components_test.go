/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package components

import (
	"testing"
	"time"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    LogLevel
		wantErr bool
	}{
		{"none", LogNone, false},
		{"basic", LogBasic, false},
		{"headers", LogHeaders, false},
		{"full", LogFull, false},
		{"HEADERS", LogHeaders, false},
		{"  basic ", LogBasic, false},
		{"verbose", LogNone, true},
		{"", LogNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLogLevel(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseLogLevel(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLogLevel(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLogLevelString(t *testing.T) {
	if LogHeaders.String() != "headers" {
		t.Errorf("Expected %q, got %q", "headers", LogHeaders.String())
	}
	if LogLevel(42).String() != "LogLevel(42)" {
		t.Errorf("Unexpected string for out-of-range level: %q", LogLevel(42).String())
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if opts.ConnectTimeout != 10*time.Second {
		t.Errorf("Expected 10s connect timeout, got %v", opts.ConnectTimeout)
	}
	if opts.ReadTimeout != 60*time.Second {
		t.Errorf("Expected 60s read timeout, got %v", opts.ReadTimeout)
	}
	if !opts.FollowRedirects {
		t.Error("Expected redirects to be followed by default")
	}
}
