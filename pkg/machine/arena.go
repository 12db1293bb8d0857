package machine

import (
	"errors"
	"regexp"
	"strconv"

	"github.com/aretw0/turing/pkg/domain"
)

var suffixPattern = regexp.MustCompile(`^-?[0-9]+$`)

// entry is implemented by *State and *Transition.
type entry interface {
	comparable
	Name() string
	IsActive() bool
	id() int
	deactivate()
}

// arena is the append-only store behind one entity kind.
// Slots are never removed; deleted entries stay as tombstones.
type arena[T entry] struct {
	kind   domain.Entity
	prefix string
	items  []T
	byName map[string]int // live name -> slot
	free   []int          // recycled suffixes, FIFO
}

func newArena[T entry](kind domain.Entity, prefix string) *arena[T] {
	return &arena[T]{
		kind:   kind,
		prefix: prefix,
		byName: make(map[string]int),
	}
}

func (a *arena[T]) name(suffix int) string {
	return a.prefix + strconv.Itoa(suffix)
}

// nextID returns the suffix the next entry will get without consuming it.
func (a *arena[T]) nextID() int {
	if len(a.free) > 0 {
		return a.free[0]
	}
	return len(a.items)
}

// push appends v, consuming the suffix reported by nextID.
func (a *arena[T]) push(v T) {
	if len(a.free) > 0 && a.free[0] == v.id() {
		a.free = a.free[1:]
	}
	a.byName[v.Name()] = len(a.items)
	a.items = append(a.items, v)
}

func (a *arena[T]) remove(slot int) T {
	v := a.items[slot]
	v.deactivate()
	delete(a.byName, v.Name())
	a.free = append(a.free, v.id())
	return v
}

func (a *arena[T]) active() []T {
	out := make([]T, 0, len(a.byName))
	for _, v := range a.items {
		if v.IsActive() {
			out = append(out, v)
		}
	}
	return out
}

func (a *arena[T]) names() []string {
	out := make([]string, 0, len(a.byName))
	for _, v := range a.items {
		if v.IsActive() {
			out = append(out, v.Name())
		}
	}
	return out
}

// resolve maps a selector to the slot of a live entry.
func (a *arena[T]) resolve(sel Selector) (int, error) {
	slot, err := a.lookup(sel)
	if err != nil {
		return -1, &domain.LookupError{Entity: a.kind, Selector: sel.String(), Err: err}
	}
	return slot, nil
}

func (a *arena[T]) lookup(sel Selector) (int, error) {
	switch sel.kind {
	case kindName:
		n, err := a.parseName(sel.name)
		if err != nil {
			return -1, err
		}
		if n >= len(a.items) {
			return -1, domain.ErrNotFound
		}
		slot, ok := a.byName[a.name(n)]
		if !ok {
			return -1, domain.ErrNotFound
		}
		return slot, nil

	case kindIndex:
		if sel.index < 0 {
			return -1, domain.ErrOutOfRange
		}
		if sel.index >= len(a.items) || !a.items[sel.index].IsActive() {
			return -1, domain.ErrNotFound
		}
		return sel.index, nil

	case kindRef:
		v, ok := sel.ref.(T)
		if !ok {
			return -1, domain.ErrTypeMismatch
		}
		for slot, item := range a.items {
			if item == v {
				if !item.IsActive() {
					return -1, domain.ErrNotFound
				}
				return slot, nil
			}
		}
		return -1, domain.ErrNotFound

	default:
		return -1, domain.ErrTypeMismatch
	}
}

// parseName extracts the numeric suffix of "<prefix><integer>".
func (a *arena[T]) parseName(name string) (int, error) {
	if len(name) <= len(a.prefix) || name[:len(a.prefix)] != a.prefix {
		return -1, domain.ErrMalformedIdentifier
	}
	digits := name[len(a.prefix):]
	if !suffixPattern.MatchString(digits) {
		return -1, domain.ErrMalformedIdentifier
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		// Only overflow gets here; the pattern already guarantees digits.
		if !errors.Is(err, strconv.ErrRange) {
			return -1, domain.ErrMalformedIdentifier
		}
		if digits[0] == '-' {
			return -1, domain.ErrOutOfRange
		}
		return -1, domain.ErrNotFound
	}
	if n < 0 {
		return -1, domain.ErrOutOfRange
	}
	return n, nil
}
