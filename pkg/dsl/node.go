package dsl

import "github.com/aretw0/turing/pkg/domain"

type edge struct {
	read, write string
	move        domain.Direction
	target      string
}

// StateBuilder provides a fluent API for configuring a state.
type StateBuilder struct {
	alias   string
	index   int
	final   bool
	initial bool
	edges   []edge
}

// Final marks the state as accepting.
func (s *StateBuilder) Final() *StateBuilder {
	s.final = true
	return s
}

// Initial marks the state as the initial one. Marking two states fails at Build.
func (s *StateBuilder) Initial() *StateBuilder {
	s.initial = true
	return s
}

// On adds a transition: reading read, write write, move, then go to target.
// An empty symbol stands for blank.
func (s *StateBuilder) On(read, write string, move domain.Direction, target string) *StateBuilder {
	s.edges = append(s.edges, edge{read: read, write: write, move: move, target: target})
	return s
}

// Loop adds a transition back to the same state.
func (s *StateBuilder) Loop(read, write string, move domain.Direction) *StateBuilder {
	return s.On(read, write, move, s.alias)
}
