// Package tape implements the unbounded, bidirectional tape of a Turing machine.
//
// The tape is stored as two independently growable halves. Index i >= 0 lives
// in the non-negative half at offset i; index i < 0 lives in the negative half
// at offset -i-1. Cells that were never materialised read as the blank symbol.
//
//	t := tape.New("~")
//	t.Set(-1, "a")
//	_ = t.Move(domain.Left)
//	t.Peek() // "a"
package tape
