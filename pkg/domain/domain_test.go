package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/turing/pkg/domain"
)

func TestParseDirection(t *testing.T) {
	tests := map[string]domain.Direction{
		"L": domain.Left, "left": domain.Left,
		"R": domain.Right, "r": domain.Right,
		"S": domain.Stay, "STAY": domain.Stay,
	}
	for in, want := range tests {
		got, err := domain.ParseDirection(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
		assert.True(t, got.Valid())
	}

	_, err := domain.ParseDirection("X")
	assert.ErrorIs(t, err, domain.ErrTypeMismatch)
	assert.False(t, domain.Direction(0).Valid())
	assert.Equal(t, "Direction(7)", domain.Direction(7).String())
}

func TestLookupError(t *testing.T) {
	err := fmt.Errorf("source: %w", &domain.LookupError{
		Entity:   domain.EntityState,
		Selector: `"q9"`,
		Err:      domain.ErrNotFound,
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualError(t, err, `source: state "q9": not found`)

	var lookupErr *domain.LookupError
	require.True(t, errors.As(err, &lookupErr))
	assert.Equal(t, domain.EntityState, lookupErr.Entity)
}

func TestSymbolError(t *testing.T) {
	err := &domain.SymbolError{Field: "read", Symbol: "z"}
	assert.ErrorIs(t, err, domain.ErrInvalidSymbol)
	assert.EqualError(t, err, `read symbol "z": symbol not in alphabet`)
}

func TestRegistryHooks_MergeAndFire(t *testing.T) {
	var calls []string
	a := domain.RegistryHooks{
		OnStateAdded: func(e *domain.RegistryEvent) { calls = append(calls, "a:"+e.Name) },
	}
	b := domain.RegistryHooks{
		OnStateAdded:     func(e *domain.RegistryEvent) { calls = append(calls, "b:"+e.Name) },
		OnInitialChanged: func(e *domain.RegistryEvent) { calls = append(calls, "b-init:"+e.Name) },
		OnCleared:        func(e *domain.RegistryEvent) { calls = append(calls, "b-clear:"+string(e.Entity)) },
	}

	merged := a.Merge(b)
	merged.Fire(&domain.RegistryEvent{Type: domain.EventStateAdded, Name: "q0"})
	merged.Fire(&domain.RegistryEvent{Type: domain.EventInitialChanged, Name: "q0"})
	merged.Fire(&domain.RegistryEvent{Type: domain.EventTransitionAdded, Name: "t0"})
	merged.Fire(&domain.RegistryEvent{Type: domain.EventCleared, Entity: domain.EntityState})

	assert.Equal(t, []string{"a:q0", "b:q0", "b-init:q0", "b-clear:state"}, calls)

	// Zero hooks are a no-op.
	domain.RegistryHooks{}.Fire(&domain.RegistryEvent{Type: domain.EventStateDeleted})
}
