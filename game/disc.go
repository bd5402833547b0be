package game

import "fmt"

// Color identifies a player. The zero value is not a valid color.
type Color int8

const (
	Black Color = iota + 1
	White
)

// Opponent returns the other color.
func (c Color) Opponent() Color {
	if c == Black {
		return White
	}
	return Black
}

func (c Color) Valid() bool {
	return c == Black || c == White
}

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return fmt.Sprintf("Color(%d)", int8(c))
	}
}

// ParseColor accepts "black"/"b" and "white"/"w".
func ParseColor(s string) (Color, error) {
	switch s {
	case "black", "b", "B":
		return Black, nil
	case "white", "w", "W":
		return White, nil
	}
	return 0, fmt.Errorf("unknown color %q", s)
}

// Disc is a token on the board. It only exists inside a Board's grid.
type Disc struct {
	color Color
}

func newDisc(c Color) *Disc {
	return &Disc{color: c}
}

func (d *Disc) Color() Color {
	return d.color
}

// Flip turns the disc over to the opposite color.
func (d *Disc) Flip() {
	d.color = d.color.Opponent()
}
