package domain

import "time"

// EventType defines the category of a registry event.
type EventType string

const (
	EventStateAdded        EventType = "state_added"
	EventStateDeleted      EventType = "state_deleted"
	EventTransitionAdded   EventType = "transition_added"
	EventTransitionDeleted EventType = "transition_deleted"
	EventInitialChanged    EventType = "initial_changed"
	EventCleared           EventType = "cleared"
)

// RegistryEvent describes a mutation that was applied to a machine.
type RegistryEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Entity    Entity    `json:"entity"`
	Name      string    `json:"name"`

	// Previous is set on EventInitialChanged when a head was demoted.
	Previous string `json:"previous,omitempty"`

	// Active counts the live entities of this kind after the mutation.
	Active int `json:"active"`
}

// RegistryHooks defines callbacks for registry observability.
// Hooks fire only after a mutation succeeds.
type RegistryHooks struct {
	OnStateAdded        func(*RegistryEvent)
	OnStateDeleted      func(*RegistryEvent)
	OnTransitionAdded   func(*RegistryEvent)
	OnTransitionDeleted func(*RegistryEvent)
	OnInitialChanged    func(*RegistryEvent)

	// OnCleared fires once per entity kind when the machine is cleared.
	OnCleared func(*RegistryEvent)
}

// Fire dispatches e to the matching callback, if any.
func (h RegistryHooks) Fire(e *RegistryEvent) {
	var fn func(*RegistryEvent)
	switch e.Type {
	case EventStateAdded:
		fn = h.OnStateAdded
	case EventStateDeleted:
		fn = h.OnStateDeleted
	case EventTransitionAdded:
		fn = h.OnTransitionAdded
	case EventTransitionDeleted:
		fn = h.OnTransitionDeleted
	case EventInitialChanged:
		fn = h.OnInitialChanged
	case EventCleared:
		fn = h.OnCleared
	}
	if fn != nil {
		fn(e)
	}
}

// Merge returns hooks that call h first and then other.
func (h RegistryHooks) Merge(other RegistryHooks) RegistryHooks {
	chain := func(a, b func(*RegistryEvent)) func(*RegistryEvent) {
		if a == nil {
			return b
		}
		if b == nil {
			return a
		}
		return func(e *RegistryEvent) {
			a(e)
			b(e)
		}
	}
	return RegistryHooks{
		OnStateAdded:        chain(h.OnStateAdded, other.OnStateAdded),
		OnStateDeleted:      chain(h.OnStateDeleted, other.OnStateDeleted),
		OnTransitionAdded:   chain(h.OnTransitionAdded, other.OnTransitionAdded),
		OnTransitionDeleted: chain(h.OnTransitionDeleted, other.OnTransitionDeleted),
		OnInitialChanged:    chain(h.OnInitialChanged, other.OnInitialChanged),
		OnCleared:           chain(h.OnCleared, other.OnCleared),
	}
}
