package game

import "fmt"

// Size is the number of rows and columns of the board.
const Size = 8

// Pos is a (row, col) cell address. Only positions inside [0,Size)x[0,Size)
// are legal; anything else is rejected by the board.
type Pos struct {
	Row int
	Col int
}

func (p Pos) Add(d Direction) Pos {
	return Pos{Row: p.Row + d.DRow, Col: p.Col + d.DCol}
}

// InBounds reports whether p lies on the board.
func (p Pos) InBounds() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

func (p Pos) String() string {
	return fmt.Sprintf("[%d,%d]", p.Row, p.Col)
}

// Direction is a unit step in one of the eight compass directions.
type Direction struct {
	DRow int
	DCol int
}

// Directions holds every ray direction, shared by legality checks and placement.
var Directions = [8]Direction{
	{0, 1}, {1, 1}, {1, 0},
	{1, -1}, {0, -1}, {-1, -1},
	{-1, 0}, {-1, 1},
}

type StateHash uint64
