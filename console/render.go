package console

import (
	"strconv"
	"strings"

	"reversi/game"
)

// Render draws the board with row and column indices, '-' for empty cells,
// followed by the disc count.
func (s *Session) Render(b *game.Board) {
	var sb strings.Builder
	sb.WriteString(" ")
	for col := 0; col < game.Size; col++ {
		sb.WriteString(" " + strconv.Itoa(col))
	}
	sb.WriteString("\n")

	for row := 0; row < game.Size; row++ {
		sb.WriteString(strconv.Itoa(row))
		for col := 0; col < game.Size; col++ {
			sb.WriteString(" ")
			sq, err := b.Get(game.Pos{Row: row, Col: col})
			if err != nil {
				panic(err) // unreachable, row and col are in range
			}
			sb.WriteString(s.cell(sq))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(s.tally(b))
	sb.WriteString("\n")
	s.Printf("%s", sb.String())
}

func (s *Session) cell(sq game.Square) string {
	color, ok := sq.Color()
	if !ok {
		return s.output.String("-").Faint().String()
	}
	if color == game.Black {
		return s.output.String("B").Foreground(s.output.Color("9")).Bold().String()
	}
	return s.output.String("W").Foreground(s.output.Color("15")).Bold().String()
}

func (s *Session) tally(b *game.Board) string {
	return "black " + strconv.Itoa(b.Count(game.Black)) + " - white " + strconv.Itoa(b.Count(game.White))
}
