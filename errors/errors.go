/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrUnknownKind is returned when a component kind was never declared
	ErrUnknownKind = errors.New("unknown component kind")

	// ErrDuplicateKind is returned when the same component kind is declared twice
	ErrDuplicateKind = errors.New("component kind already declared")

	// ErrCardinalityMismatch is returned when the single-valued API is used on a
	// multi-valued kind or vice versa
	ErrCardinalityMismatch = errors.New("component kind cardinality mismatch")

	// ErrRegistryFrozen is returned when a default is registered after the
	// registry has served its first resolution
	ErrRegistryFrozen = errors.New("registry is frozen")
)

// UnknownKindError represents a lookup or registration against an undeclared kind
type UnknownKindError struct {
	Kind string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("component kind %q was never declared", e.Kind)
}

func (e *UnknownKindError) Is(target error) bool {
	return target == ErrUnknownKind
}

// DuplicateKindError represents a second declaration of an already-declared kind
type DuplicateKindError struct {
	Kind string
}

func (e *DuplicateKindError) Error() string {
	return fmt.Sprintf("component kind %q already declared", e.Kind)
}

func (e *DuplicateKindError) Is(target error) bool {
	return target == ErrDuplicateKind
}

// CardinalityMismatchError represents a caller using the wrong-cardinality API
// for a kind. Op names the offending operation and Declared the kind's actual
// cardinality.
type CardinalityMismatchError struct {
	Kind     string
	Declared string
	Op       string
}

func (e *CardinalityMismatchError) Error() string {
	return fmt.Sprintf("%s called for component kind %q declared %s", e.Op, e.Kind, e.Declared)
}

func (e *CardinalityMismatchError) Is(target error) bool {
	return target == ErrCardinalityMismatch
}

// RegistryFrozenError represents a default registration after resolutions began
type RegistryFrozenError struct {
	Kind string
}

func (e *RegistryFrozenError) Error() string {
	return fmt.Sprintf("default for component kind %q registered after the registry served its first resolution", e.Kind)
}

func (e *RegistryFrozenError) Is(target error) bool {
	return target == ErrRegistryFrozen
}

// Helper functions for creating errors

// NewUnknownKindError creates a new UnknownKindError
func NewUnknownKindError(kind string) error {
	return &UnknownKindError{Kind: kind}
}

// NewDuplicateKindError creates a new DuplicateKindError
func NewDuplicateKindError(kind string) error {
	return &DuplicateKindError{Kind: kind}
}

// NewCardinalityMismatchError creates a new CardinalityMismatchError
func NewCardinalityMismatchError(kind, declared, op string) error {
	return &CardinalityMismatchError{Kind: kind, Declared: declared, Op: op}
}

// NewRegistryFrozenError creates a new RegistryFrozenError
func NewRegistryFrozenError(kind string) error {
	return &RegistryFrozenError{Kind: kind}
}

// IsUnknownKind checks if an error is an unknown kind error
func IsUnknownKind(err error) bool {
	return errors.Is(err, ErrUnknownKind)
}

// IsDuplicateKind checks if an error is a duplicate kind error
func IsDuplicateKind(err error) bool {
	return errors.Is(err, ErrDuplicateKind)
}

// IsCardinalityMismatch checks if an error is a cardinality mismatch error
func IsCardinalityMismatch(err error) bool {
	return errors.Is(err, ErrCardinalityMismatch)
}

// IsRegistryFrozen checks if an error is a frozen registry error
func IsRegistryFrozen(err error) bool {
	return errors.Is(err, ErrRegistryFrozen)
}
