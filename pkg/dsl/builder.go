package dsl

import (
	"fmt"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/machine"
)

// Builder manages the machine construction.
type Builder struct {
	alphabet []string
	order    []string
	states   map[string]*StateBuilder
}

// New creates a new builder over the characters of alphabet.
func New(alphabet string) *Builder {
	return &Builder{
		alphabet: machine.Symbols(alphabet),
		states:   make(map[string]*StateBuilder),
	}
}

// State declares a state under a local alias.
// If the alias already exists, it returns the existing builder.
func (b *Builder) State(alias string) *StateBuilder {
	if sb, ok := b.states[alias]; ok {
		return sb
	}
	sb := &StateBuilder{alias: alias, index: len(b.order)}
	b.states[alias] = sb
	b.order = append(b.order, alias)
	return sb
}

// Select returns the selector of alias in a machine produced by Build.
// States are created in declaration order, so alias i is the i-th arena slot.
func (b *Builder) Select(alias string) (machine.Selector, error) {
	sb, ok := b.states[alias]
	if !ok {
		return machine.Selector{}, fmt.Errorf("alias %q: %w", alias, domain.ErrNotFound)
	}
	return machine.ByIndex(sb.index), nil
}

// Build creates a fresh machine holding every declared state and transition.
func (b *Builder) Build(opts ...machine.Option) (*machine.Machine, error) {
	m, err := machine.New(b.alphabet, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create machine: %w", err)
	}

	for _, alias := range b.order {
		sb := b.states[alias]
		if _, err := m.AddState(sb.final, sb.initial); err != nil {
			return nil, fmt.Errorf("state %q: %w", alias, err)
		}
	}

	for _, alias := range b.order {
		sb := b.states[alias]
		for _, e := range sb.edges {
			dst, err := b.Select(e.target)
			if err != nil {
				return nil, fmt.Errorf("state %q: %w", alias, err)
			}
			if _, err := m.AddTransition(machine.ByIndex(sb.index), dst, e.read, e.write, e.move); err != nil {
				return nil, fmt.Errorf("state %q: %w", alias, err)
			}
		}
	}

	return m, nil
}
