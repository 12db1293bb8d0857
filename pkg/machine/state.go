package machine

// State is a named node of the machine. Values are owned by a Machine and
// remain live views: flags flipped through the registry are visible on every
// reference previously handed out.
type State struct {
	name    string
	suffix  int
	final   bool
	initial bool
	deleted bool

	// outgoing holds slots of the owner's transition arena.
	outgoing    []int
	transitions *arena[*Transition]
}

// Name returns the registry-assigned name (q<N>).
func (s *State) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

func (s *State) IsFinal() bool   { return s.final }
func (s *State) IsInitial() bool { return s.initial }
func (s *State) IsActive() bool  { return !s.deleted }

// Transitions returns the live outgoing transitions in creation order.
func (s *State) Transitions() []*Transition {
	out := make([]*Transition, 0, len(s.outgoing))
	for _, slot := range s.outgoing {
		if t := s.transitions.items[slot]; t.IsActive() {
			out = append(out, t)
		}
	}
	return out
}

// String renders the state as "q0", "(q0)" when final and with a leading ">"
// when initial. A deleted state renders as the empty string.
func (s *State) String() string {
	if s == nil || s.deleted {
		return ""
	}
	return s.label()
}

func (s *State) label() string {
	name := s.name
	if s.final {
		name = "(" + name + ")"
	}
	if s.initial {
		name = ">" + name
	}
	return name
}

func (s *State) id() int     { return s.suffix }
func (s *State) deactivate() { s.deleted = true }
