package game

import (
	"fmt"
	"hash/fnv"
)

// Square is the content of one cell: either empty or holding a disc of some color.
type Square struct {
	occupied bool
	color    Color
}

func (s Square) IsEmpty() bool {
	return !s.occupied
}

// Color returns the color of the disc on the square, ok is false for an empty square.
func (s Square) Color() (color Color, ok bool) {
	return s.color, s.occupied
}

// Board is the 8x8 grid. It owns every Disc placed on it.
type Board struct {
	grid [Size][Size]*Disc
}

// NewBoard returns a board in the standard opening position.
func NewBoard() *Board {
	b := &Board{}
	b.grid[3][3] = newDisc(White)
	b.grid[3][4] = newDisc(Black)
	b.grid[4][3] = newDisc(Black)
	b.grid[4][4] = newDisc(White)
	return b
}

// Clone returns a deep copy, so agents can look ahead without touching the live board.
func (b *Board) Clone() *Board {
	c := &Board{}
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if d := b.grid[row][col]; d != nil {
				c.grid[row][col] = newDisc(d.color)
			}
		}
	}
	return c
}

// Get returns the square at p, failing with ErrOutOfBounds off the board.
func (b *Board) Get(p Pos) (Square, error) {
	if !p.InBounds() {
		return Square{}, fmt.Errorf("get %s: %w", p, ErrOutOfBounds)
	}
	d := b.grid[p.Row][p.Col]
	if d == nil {
		return Square{}, nil
	}
	return Square{occupied: true, color: d.color}, nil
}

func (b *Board) disc(p Pos) *Disc {
	if !p.InBounds() {
		return nil
	}
	return b.grid[p.Row][p.Col]
}

func (b *Board) IsOccupied(p Pos) bool {
	return b.disc(p) != nil
}

// BelongsTo reports whether p holds a disc of color c.
func (b *Board) BelongsTo(p Pos, c Color) bool {
	d := b.disc(p)
	return d != nil && d.color == c
}

func (b *Board) IsLegalPosition(p Pos) bool {
	return p.InBounds()
}

// IsLegalMove reports whether c may place on p: the cell must be empty and at
// least one direction must capture a disc.
func (b *Board) IsLegalMove(p Pos, c Color) bool {
	if !p.InBounds() || b.IsOccupied(p) {
		return false
	}
	for _, dir := range Directions {
		if ray, ok := b.CaptureRay(p, c, dir); ok && len(ray) > 0 {
			return true
		}
	}
	return false
}

// LegalMoves lists every legal placement for c in row-major order.
func (b *Board) LegalMoves(c Color) []Pos {
	var moves []Pos
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			p := Pos{Row: row, Col: col}
			if b.IsLegalMove(p, c) {
				moves = append(moves, p)
			}
		}
	}
	return moves
}

// HasAnyMove is LegalMoves(c) != empty, stopping at the first hit.
func (b *Board) HasAnyMove(c Color) bool {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b.IsLegalMove(Pos{Row: row, Col: col}, c) {
				return true
			}
		}
	}
	return false
}

// IsGameOver is true when neither color can move. Empty cells may remain.
func (b *Board) IsGameOver() bool {
	return !b.HasAnyMove(Black) && !b.HasAnyMove(White)
}

// CaptureRay walks from p in direction dir collecting opposite-color discs.
// The ray only counts (ok) when it ends on a disc of color c; running off the
// board or into an empty cell voids it. A same-color disc right next to p
// yields ok with an empty ray.
func (b *Board) CaptureRay(p Pos, c Color, dir Direction) (ray []Pos, ok bool) {
	if !p.InBounds() {
		return nil, false
	}
	cur := p.Add(dir)
	for {
		d := b.disc(cur)
		if d == nil { // off the board or empty
			return nil, false
		}
		if d.color == c {
			return ray, true
		}
		ray = append(ray, cur)
		cur = cur.Add(dir)
	}
}

// Captures is the number of discs c would flip by placing on p, summed over
// all eight rays with void rays counting as zero.
func (b *Board) Captures(p Pos, c Color) int {
	total := 0
	for _, dir := range Directions {
		if ray, ok := b.CaptureRay(p, c, dir); ok {
			total += len(ray)
		}
	}
	return total
}

// Place puts a disc of color c on p and flips every captured disc. The board
// is untouched when the move is rejected. It returns the number of flipped discs.
func (b *Board) Place(p Pos, c Color) (int, error) {
	if !c.Valid() {
		return 0, &MoveError{Pos: p, Color: c, Err: ErrInvalidColor}
	}
	if !b.IsLegalMove(p, c) {
		return 0, &MoveError{Pos: p, Color: c, Err: ErrIllegalMove}
	}

	b.grid[p.Row][p.Col] = newDisc(c)
	flipped := 0
	for _, dir := range Directions {
		ray, ok := b.CaptureRay(p, c, dir)
		if !ok {
			continue
		}
		for _, q := range ray {
			b.grid[q.Row][q.Col].Flip()
		}
		flipped += len(ray)
	}
	return flipped, nil
}

// Count returns the number of discs of color c on the board.
func (b *Board) Count(c Color) int {
	n := 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if d := b.grid[row][col]; d != nil && d.color == c {
				n++
			}
		}
	}
	return n
}

// Empty returns the number of empty cells.
func (b *Board) Empty() int {
	return Size*Size - b.Count(Black) - b.Count(White)
}

// Winner returns the color with more discs; ok is false on a draw.
func (b *Board) Winner() (winner Color, ok bool) {
	black, white := b.Count(Black), b.Count(White)
	switch {
	case black > white:
		return Black, true
	case white > black:
		return White, true
	}
	return 0, false
}

// Hash fingerprints the grid contents.
func (b *Board) Hash() StateHash {
	hasher := fnv.New64a()
	var cells [Size * Size]byte
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if d := b.grid[row][col]; d != nil {
				cells[row*Size+col] = byte(d.color)
			}
		}
	}
	hasher.Write(cells[:])
	return StateHash(hasher.Sum64())
}
