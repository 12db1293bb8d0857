package domain

import (
	"errors"
	"fmt"
)

// ErrTypeMismatch is returned when a selector, direction or reference has a kind
// the operation cannot use.
var ErrTypeMismatch = errors.New("type mismatch")

// ErrMalformedIdentifier is returned when a name does not match "<prefix><integer>".
var ErrMalformedIdentifier = errors.New("malformed identifier")

// ErrOutOfRange is returned when a parsed index is negative.
var ErrOutOfRange = errors.New("index out of range")

// ErrNotFound is returned when the entity does not exist or was deleted.
var ErrNotFound = errors.New("not found")

// ErrDuplicateInitial is returned when adding a second initial state.
var ErrDuplicateInitial = errors.New("machine already has an initial state")

// ErrInvalidSymbol is returned when a symbol is not part of the alphabet.
var ErrInvalidSymbol = errors.New("symbol not in alphabet")

// Entity names the kind of registry object an error refers to.
type Entity string

const (
	EntityState      Entity = "state"
	EntityTransition Entity = "transition"
)

// LookupError describes a failed selector resolution.
type LookupError struct {
	Entity   Entity
	Selector string // Human-readable form of the selector
	Err      error  // One of the sentinel errors above
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Entity, e.Selector, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// SymbolError reports a symbol rejected by the alphabet check.
type SymbolError struct {
	Field  string // "read", "write" or "blank"
	Symbol string
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("%s symbol %q: %v", e.Field, e.Symbol, ErrInvalidSymbol)
}

func (e *SymbolError) Unwrap() error {
	return ErrInvalidSymbol
}
