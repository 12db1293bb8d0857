package machine

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/aretw0/turing/pkg/domain"
)

const (
	statePrefix      = "q"
	transitionPrefix = "t"
)

// Machine owns the states and transitions of one Turing machine definition.
// It is not safe for concurrent use.
type Machine struct {
	alphabet map[string]struct{}
	blank    string

	states      *arena[*State]
	transitions *arena[*Transition]

	head       *State
	hasInitial bool

	logger *slog.Logger
	hooks  domain.RegistryHooks
}

// New creates an empty machine over alphabet. The blank symbol (DefaultBlank
// unless WithBlank is given) is added to the alphabet. Empty symbols are
// rejected with domain.ErrInvalidSymbol.
func New(alphabet []string, opts ...Option) (*Machine, error) {
	m := &Machine{blank: DefaultBlank}
	for _, opt := range opts {
		opt(m)
	}

	if m.blank == "" {
		return nil, &domain.SymbolError{Field: "blank", Symbol: m.blank}
	}
	m.alphabet = make(map[string]struct{}, len(alphabet)+1)
	for _, sym := range alphabet {
		if sym == "" {
			return nil, &domain.SymbolError{Field: "alphabet", Symbol: sym}
		}
		m.alphabet[sym] = struct{}{}
	}
	m.alphabet[m.blank] = struct{}{}

	if m.logger == nil {
		m.logger = defaultLogger()
	}
	m.reset()
	return m, nil
}

// Symbols splits s into single-character symbols, e.g. "abc" -> [a b c].
func Symbols(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

func (m *Machine) reset() {
	m.states = newArena[*State](domain.EntityState, statePrefix)
	m.transitions = newArena[*Transition](domain.EntityTransition, transitionPrefix)
	m.head = nil
	m.hasInitial = false
}

// Clear drops every state and transition and forgets recycled names.
// The alphabet and blank symbol are kept. References handed out before
// Clear are detached from the machine and no longer resolve.
//
// Hooks see an EventInitialChanged demoting the old head, if there was one,
// followed by one EventCleared per entity kind.
func (m *Machine) Clear() {
	previous := ""
	if m.hasInitial {
		previous = m.head.Name()
	}
	m.reset()
	m.logger.Debug("machine_cleared", "previous_initial", previous)

	if previous != "" {
		m.emit(domain.EventInitialChanged, domain.EntityState, "", previous)
	}
	m.emit(domain.EventCleared, domain.EntityState, "", "")
	m.emit(domain.EventCleared, domain.EntityTransition, "", "")
}

// Alphabet returns the sorted symbols, blank included.
func (m *Machine) Alphabet() []string {
	out := make([]string, 0, len(m.alphabet))
	for sym := range m.alphabet {
		out = append(out, sym)
	}
	slices.Sort(out)
	return out
}

// Blank returns the blank symbol.
func (m *Machine) Blank() string {
	return m.blank
}

// HasSymbol reports whether sym belongs to the alphabet.
func (m *Machine) HasSymbol(sym string) bool {
	_, ok := m.alphabet[sym]
	return ok
}

// --- States ---

// AddState creates a state named after the oldest freed suffix (deletion
// order, not the smallest), or q<number of states ever created> when none
// is free. Asking for a second initial state fails with
// domain.ErrDuplicateInitial and changes nothing.
func (m *Machine) AddState(final, initial bool) (*State, error) {
	if initial && m.hasInitial {
		err := fmt.Errorf("add state: %w (current %s)", domain.ErrDuplicateInitial, m.head.Name())
		m.logger.Debug("state_rejected", "op", "add", "error", err)
		return nil, err
	}

	suffix := m.states.nextID()
	s := &State{
		name:        m.states.name(suffix),
		suffix:      suffix,
		final:       final,
		initial:     initial,
		transitions: m.transitions,
	}
	m.states.push(s)

	if initial {
		m.head = s
		m.hasInitial = true
	}

	m.logger.Debug("state_added", "state", s.name, "final", final, "initial", initial)
	m.emit(domain.EventStateAdded, domain.EntityState, s.name, "")
	if initial {
		m.emit(domain.EventInitialChanged, domain.EntityState, s.name, "")
	}
	return s, nil
}

// GetState returns the live state selected by sel.
func (m *Machine) GetState(sel Selector) (*State, error) {
	slot, err := m.states.resolve(sel)
	if err != nil {
		return nil, err
	}
	return m.states.items[slot], nil
}

// DeleteState soft-deletes the state selected by sel and frees its name for
// reuse. Deleting the initial state leaves the machine without one.
// Transitions touching the state are kept.
func (m *Machine) DeleteState(sel Selector) (*State, error) {
	slot, err := m.states.resolve(sel)
	if err != nil {
		m.logger.Debug("state_rejected", "op", "delete", "error", err)
		return nil, err
	}

	s := m.states.remove(slot)
	if s == m.head {
		s.initial = false
		m.head = nil
		m.hasInitial = false
		m.emit(domain.EventInitialChanged, domain.EntityState, "", s.name)
	}

	m.logger.Debug("state_deleted", "state", s.name)
	m.emit(domain.EventStateDeleted, domain.EntityState, s.name, "")
	return s, nil
}

// States returns the live states in creation order.
func (m *Machine) States() []*State {
	return m.states.active()
}

// StateNames returns the names of live states in creation order.
func (m *Machine) StateNames() []string {
	return m.states.names()
}

// --- Initial state ---

// InitialState returns the current initial state, or nil.
func (m *Machine) InitialState() *State {
	return m.head
}

// SetInitialState makes the selected state the initial one, demoting the
// previous initial state if there was one.
func (m *Machine) SetInitialState(sel Selector) error {
	slot, err := m.states.resolve(sel)
	if err != nil {
		m.logger.Debug("initial_rejected", "error", err)
		return err
	}

	target := m.states.items[slot]
	prev := m.head
	if prev != nil {
		prev.initial = false
	}
	target.initial = true
	m.head = target
	m.hasInitial = true

	m.logger.Debug("initial_changed", "state", target.name, "previous", prev.Name())
	m.emit(domain.EventInitialChanged, domain.EntityState, target.name, prev.Name())
	return nil
}

// --- Transitions ---

// AddTransition creates a transition from src to dst. An empty read or write
// symbol stands for the blank symbol. Every argument is validated before the
// machine is touched.
func (m *Machine) AddTransition(src, dst Selector, read, write string, move domain.Direction) (*Transition, error) {
	t, err := m.newTransition(src, dst, read, write, move)
	if err != nil {
		m.logger.Debug("transition_rejected", "op", "add", "error", err)
		return nil, err
	}

	m.transitions.push(t)
	t.source.outgoing = append(t.source.outgoing, len(m.transitions.items)-1)

	m.logger.Debug("transition_added", "transition", t.name,
		"from", t.source.name, "to", t.destination.name,
		"read", t.read, "write", t.write, "move", t.move.String())
	m.emit(domain.EventTransitionAdded, domain.EntityTransition, t.name, "")
	return t, nil
}

func (m *Machine) newTransition(src, dst Selector, read, write string, move domain.Direction) (*Transition, error) {
	if read == "" {
		read = m.blank
	} else if !m.HasSymbol(read) {
		return nil, &domain.SymbolError{Field: "read", Symbol: read}
	}
	if write == "" {
		write = m.blank
	} else if !m.HasSymbol(write) {
		return nil, &domain.SymbolError{Field: "write", Symbol: write}
	}

	source, err := m.GetState(src)
	if err != nil {
		return nil, fmt.Errorf("source: %w", err)
	}
	destination, err := m.GetState(dst)
	if err != nil {
		return nil, fmt.Errorf("destination: %w", err)
	}

	if !move.Valid() {
		return nil, fmt.Errorf("move %v: %w", move, domain.ErrTypeMismatch)
	}

	suffix := m.transitions.nextID()
	return &Transition{
		name:        m.transitions.name(suffix),
		suffix:      suffix,
		read:        read,
		write:       write,
		move:        move,
		source:      source,
		destination: destination,
	}, nil
}

// GetTransition returns the live transition selected by sel.
func (m *Machine) GetTransition(sel Selector) (*Transition, error) {
	slot, err := m.transitions.resolve(sel)
	if err != nil {
		return nil, err
	}
	return m.transitions.items[slot], nil
}

// DeleteTransition soft-deletes the selected transition and frees its name.
func (m *Machine) DeleteTransition(sel Selector) (*Transition, error) {
	slot, err := m.transitions.resolve(sel)
	if err != nil {
		m.logger.Debug("transition_rejected", "op", "delete", "error", err)
		return nil, err
	}

	t := m.transitions.remove(slot)
	m.logger.Debug("transition_deleted", "transition", t.name)
	m.emit(domain.EventTransitionDeleted, domain.EntityTransition, t.name, "")
	return t, nil
}

// Transitions returns the live transitions in creation order.
func (m *Machine) Transitions() []*Transition {
	return m.transitions.active()
}

// TransitionNames returns the names of live transitions in creation order.
func (m *Machine) TransitionNames() []string {
	return m.transitions.names()
}

func (m *Machine) emit(typ domain.EventType, entity domain.Entity, name, previous string) {
	active := len(m.states.byName)
	if entity == domain.EntityTransition {
		active = len(m.transitions.byName)
	}
	m.hooks.Fire(&domain.RegistryEvent{
		Timestamp: time.Now(),
		Type:      typ,
		Entity:    entity,
		Name:      name,
		Previous:  previous,
		Active:    active,
	})
}
