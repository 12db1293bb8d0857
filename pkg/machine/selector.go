package machine

import (
	"fmt"
	"strconv"

	"github.com/aretw0/turing/pkg/domain"
)

type selectorKind int

const (
	kindNone selectorKind = iota
	kindName
	kindIndex
	kindRef
)

// Selector identifies a state or transition by name, arena index or reference.
// The zero value selects nothing and resolves to domain.ErrTypeMismatch.
type Selector struct {
	kind  selectorKind
	name  string
	index int
	ref   any
}

// ByName selects the entity carrying name, e.g. "q0" or "t2".
func ByName(name string) Selector {
	return Selector{kind: kindName, name: name}
}

// ByIndex selects the entity at position i of the arena, deleted entries included.
func ByIndex(i int) Selector {
	return Selector{kind: kindIndex, index: i}
}

// Ref selects an entity by reference. State operations expect a *State and
// transition operations a *Transition; anything else is a type mismatch.
func Ref(v any) Selector {
	return Selector{kind: kindRef, ref: v}
}

// Parse turns user input into a selector: integers become ByIndex, anything
// else ByName.
func Parse(text string) Selector {
	if i, err := strconv.Atoi(text); err == nil {
		return ByIndex(i)
	}
	return ByName(text)
}

// SelectorOf converts a dynamically typed value into a Selector.
func SelectorOf(v any) (Selector, error) {
	switch v := v.(type) {
	case Selector:
		return v, nil
	case string:
		return ByName(v), nil
	case int:
		return ByIndex(v), nil
	case *State, *Transition:
		return Ref(v), nil
	default:
		return Selector{}, fmt.Errorf("selector of type %T: %w", v, domain.ErrTypeMismatch)
	}
}

func (s Selector) String() string {
	switch s.kind {
	case kindName:
		return strconv.Quote(s.name)
	case kindIndex:
		return "#" + strconv.Itoa(s.index)
	case kindRef:
		switch r := s.ref.(type) {
		case *State:
			return "ref(" + r.Name() + ")"
		case *Transition:
			return "ref(" + r.Name() + ")"
		}
		return fmt.Sprintf("ref(%T)", s.ref)
	default:
		return "<none>"
	}
}
