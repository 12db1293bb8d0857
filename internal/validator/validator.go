package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/turing/pkg/machine"
)

// Error lists every problem found in a definition.
type Error struct {
	Problems []string
}

func (e *Error) Error() string {
	return fmt.Sprintf("found %d problems:\n- %s", len(e.Problems), strings.Join(e.Problems, "\n- "))
}

// Validate checks a definition for problems the registry allows but a
// runnable machine would not: no initial state, transitions touching deleted
// states, states unreachable from the initial state and two transitions of
// one state reading the same symbol.
func Validate(m *machine.Machine) error {
	var problems []string

	head := m.InitialState()
	if head == nil {
		problems = append(problems, "machine has no initial state")
	}

	for _, t := range m.Transitions() {
		if !t.Source().IsActive() {
			problems = append(problems, fmt.Sprintf("transition %s leaves deleted state %s", t.Name(), t.Source().Name()))
		}
		if !t.Destination().IsActive() {
			problems = append(problems, fmt.Sprintf("transition %s enters deleted state %s", t.Name(), t.Destination().Name()))
		}
	}

	if head != nil {
		visited := map[*machine.State]bool{}
		queue := []*machine.State{head}
		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]
			if visited[current] {
				continue
			}
			visited[current] = true

			for _, t := range current.Transitions() {
				if next := t.Destination(); next.IsActive() && !visited[next] {
					queue = append(queue, next)
				}
			}
		}

		for _, s := range m.States() {
			if !visited[s] {
				problems = append(problems, fmt.Sprintf("state %s is unreachable from %s", s.Name(), head.Name()))
			}
		}
	}

	for _, s := range m.States() {
		seen := map[string]string{}
		for _, t := range s.Transitions() {
			if first, ok := seen[t.Read()]; ok {
				problems = append(problems, fmt.Sprintf("state %s reads %q in both %s and %s", s.Name(), t.Read(), first, t.Name()))
				continue
			}
			seen[t.Read()] = t.Name()
		}
	}

	if len(problems) > 0 {
		return &Error{Problems: problems}
	}
	return nil
}
