package game

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds  = errors.New("position out of bounds")
	ErrIllegalMove  = errors.New("illegal move")
	ErrInvalidColor = errors.New("invalid color")
)

// MoveError describes a rejected placement.
type MoveError struct {
	Pos   Pos
	Color Color
	Err   error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("%s at %s: %v", e.Color, e.Pos, e.Err)
}

// errors.Is(err, ErrIllegalMove) and friends
func (e *MoveError) Unwrap() error { return e.Err }
