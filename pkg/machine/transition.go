package machine

import (
	"fmt"

	"github.com/aretw0/turing/pkg/domain"
)

// Transition is a directed edge between two states. It is immutable after
// creation except for its active flag.
type Transition struct {
	name        string
	suffix      int
	read        string
	write       string
	move        domain.Direction
	source      *State
	destination *State
	deleted     bool
}

// Name returns the registry-assigned name (t<N>).
func (t *Transition) Name() string {
	if t == nil {
		return ""
	}
	return t.name
}

func (t *Transition) Read() string           { return t.read }
func (t *Transition) Write() string          { return t.write }
func (t *Transition) Move() domain.Direction { return t.move }
func (t *Transition) Source() *State         { return t.source }
func (t *Transition) Destination() *State    { return t.destination }

// IsActive reports whether the transition has not been deleted.
func (t *Transition) IsActive() bool { return !t.deleted }

// String renders "<name>: <source>(<read> | <write> | <move>) --> <destination>".
func (t *Transition) String() string {
	return fmt.Sprintf("%s: %s(%s | %s | %s) --> %s",
		t.name, t.source.label(), t.read, t.write, t.move, t.destination.label())
}

func (t *Transition) id() int     { return t.suffix }
func (t *Transition) deactivate() { t.deleted = true }
