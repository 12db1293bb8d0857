/*
Package machine is the registry that owns the definition of a single-tape Turing machine.

A Machine is the only writer of state and transition flags. It assigns names
(q0, q1, ... for states and t0, t1, ... for transitions), recycles the names of
soft-deleted entities in FIFO order, and enforces that at most one state is the
initial state.

# Storage

States and transitions live in append-only arenas. Deletion only flips a
tombstone flag, so positional indexes stay stable for the lifetime of the
machine. A state keeps handles into the transition arena for its outgoing
transitions instead of owning a second copy.

# Selectors

Every operation that targets an existing entity takes a Selector, which is one of:

  - ByName("q3"): the entity currently carrying that name.
  - ByIndex(3): the entity at that position in the arena.
  - Ref(s): the entity itself, as returned by a previous call.

Failures wrap the sentinel errors of package domain in a *domain.LookupError:

	_, err := m.GetState(machine.ByName("qX"))
	errors.Is(err, domain.ErrMalformedIdentifier) // true
*/
package machine
