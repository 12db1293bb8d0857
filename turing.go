package turing

import (
	"github.com/aretw0/turing/pkg/machine"
	"github.com/aretw0/turing/pkg/tape"
)

// Version is the library version reported by the CLI.
// Release builds override it with -ldflags "-X github.com/aretw0/turing.Version=...".
var Version = "v0.1.0-dev"

// New creates an empty machine whose alphabet is made of the characters of
// alphabet, e.g. New("01"). The blank symbol is added automatically.
func New(alphabet string, opts ...machine.Option) (*machine.Machine, error) {
	return machine.New(machine.Symbols(alphabet), opts...)
}

// NewTape creates an empty tape over blank.
func NewTape(blank string) *tape.Tape {
	return tape.New(blank)
}
