/*
Package turing lets a program build and edit the definition of a single-tape Turing machine.

It is a definition editor, not a simulator: states and transitions are created,
soft-deleted and looked up through a registry that hands out stable names, and
the tape is an independent, unbounded, bidirectional sequence of symbols.

# Concept

The registry (package machine) is the single entry point for mutation. It names
states q0, q1, ... and transitions t0, t1, ..., recycles the names of deleted
entities in the order they were freed, and guarantees at most one initial state.
Deleted entities are kept as tombstones so positional lookups stay stable.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/turing"
		"github.com/aretw0/turing/pkg/domain"
		"github.com/aretw0/turing/pkg/machine"
	)

	func main() {
		m, err := turing.New("abc")
		if err != nil {
			log.Fatal(err)
		}

		q0, _ := m.AddState(false, false)
		q1, _ := m.AddState(true, true)

		t0, err := m.AddTransition(machine.Ref(q0), machine.Ref(q1), "a", "b", domain.Right)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(t0) // t0: q0(a | b | R) --> >(q1)
	}

# Errors

Every failure wraps one of the sentinel errors in package domain, so callers
branch with errors.Is:

	if errors.Is(err, domain.ErrNotFound) {
		// ...
	}
*/
package turing
