package domain

import "fmt"

// Direction is the head movement attached to a transition.
type Direction int

const (
	Left Direction = iota + 1
	Right
	Stay
)

// String returns the single-letter form used by the transition rendering contract.
func (d Direction) String() string {
	switch d {
	case Left:
		return "L"
	case Right:
		return "R"
	case Stay:
		return "S"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Valid reports whether d is one of Left, Right or Stay.
func (d Direction) Valid() bool {
	return d == Left || d == Right || d == Stay
}

// ParseDirection accepts "L", "R" or "S" (and their long lowercase forms).
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "L", "l", "left", "LEFT":
		return Left, nil
	case "R", "r", "right", "RIGHT":
		return Right, nil
	case "S", "s", "stay", "STAY":
		return Stay, nil
	}
	return 0, fmt.Errorf("direction %q: %w", s, ErrTypeMismatch)
}
