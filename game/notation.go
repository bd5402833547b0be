package game

import (
	"fmt"
	"strings"
)

// FromRows builds a board from Size strings of Size runes each: 'B' black,
// 'W' white, '.' or '-' empty.
func FromRows(rows ...string) (*Board, error) {
	if len(rows) != Size {
		return nil, fmt.Errorf("expected %d rows, got %d", Size, len(rows))
	}
	b := &Board{}
	for row, line := range rows {
		if len(line) != Size {
			return nil, fmt.Errorf("row %d: expected %d cells, got %d", row, Size, len(line))
		}
		for col, r := range line {
			switch r {
			case 'B', 'b':
				b.grid[row][col] = newDisc(Black)
			case 'W', 'w':
				b.grid[row][col] = newDisc(White)
			case '.', '-':
			default:
				return nil, fmt.Errorf("row %d col %d: unexpected %q", row, col, r)
			}
		}
	}
	return b, nil
}

// Rows is the inverse of FromRows, using '.' for empty cells.
func (b *Board) Rows() []string {
	rows := make([]string, Size)
	for row := 0; row < Size; row++ {
		var sb strings.Builder
		for col := 0; col < Size; col++ {
			switch d := b.grid[row][col]; {
			case d == nil:
				sb.WriteByte('.')
			case d.color == Black:
				sb.WriteByte('B')
			default:
				sb.WriteByte('W')
			}
		}
		rows[row] = sb.String()
	}
	return rows
}
