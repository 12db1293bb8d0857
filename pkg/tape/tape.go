package tape

import (
	"fmt"

	"github.com/aretw0/turing/pkg/domain"
)

// Tape is a bidirectional infinite sequence of symbols with a movable pointer.
// Not safe for concurrent use.
type Tape struct {
	positive half
	negative half
	pointer  int
}

// New creates an empty tape whose unwritten cells read as blank.
func New(blank string) *Tape {
	return &Tape{
		positive: half{blank: blank},
		negative: half{blank: blank},
	}
}

// Blank returns the fill symbol.
func (t *Tape) Blank() string {
	return t.positive.blank
}

// Pointer returns the current head position. It may be negative.
func (t *Tape) Pointer() int {
	return t.pointer
}

// At returns the symbol at index i without materialising cells.
func (t *Tape) At(i int) string {
	if i >= 0 {
		return t.positive.get(i)
	}
	return t.negative.get(-i - 1)
}

// Set writes v at index i, growing the matching half as needed.
func (t *Tape) Set(i int, v string) {
	if i >= 0 {
		t.positive.set(i, v)
		return
	}
	t.negative.set(-i-1, v)
}

// Peek returns the symbol under the pointer.
func (t *Tape) Peek() string {
	return t.At(t.pointer)
}

// Move shifts the pointer one cell. When the new position lies past the
// materialised bound of its half, that half grows by one blank cell.
// Stay is a no-op.
func (t *Tape) Move(d domain.Direction) error {
	switch d {
	case domain.Left:
		t.pointer--
		if t.pointer < 0 {
			t.negative.growTo(-t.pointer)
		}
	case domain.Right:
		t.pointer++
		if t.pointer >= 0 {
			t.positive.growTo(t.pointer + 1)
		}
	case domain.Stay:
	default:
		return fmt.Errorf("move %v: %w", d, domain.ErrTypeMismatch)
	}
	return nil
}

// Bounds returns the lowest and highest materialised indexes, inclusive.
// An untouched tape reports (0, -1).
func (t *Tape) Bounds() (lo, hi int) {
	return -t.negative.len(), t.positive.len() - 1
}
