package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustRows(t *testing.T, rows ...string) *Board {
	t.Helper()
	b, err := FromRows(rows...)
	require.NoError(t, err)
	return b
}

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	require.Equal(t, []string{
		"........",
		"........",
		"........",
		"...WB...",
		"...BW...",
		"........",
		"........",
		"........",
	}, b.Rows(), "Only the four center cells should be occupied")
	require.Equal(t, 2, b.Count(Black))
	require.Equal(t, 2, b.Count(White))
	require.Equal(t, 60, b.Empty())
}

func TestGet(t *testing.T) {
	b := NewBoard()

	t.Run("occupied square reports its color", func(t *testing.T) {
		sq, err := b.Get(Pos{3, 3})
		require.NoError(t, err)
		require.False(t, sq.IsEmpty())
		color, ok := sq.Color()
		require.True(t, ok)
		require.Equal(t, White, color)
	})

	t.Run("empty square", func(t *testing.T) {
		sq, err := b.Get(Pos{0, 0})
		require.NoError(t, err)
		require.True(t, sq.IsEmpty())
		_, ok := sq.Color()
		require.False(t, ok)
	})

	t.Run("out of bounds fails", func(t *testing.T) {
		for _, p := range []Pos{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {8, 8}} {
			_, err := b.Get(p)
			require.ErrorIs(t, err, ErrOutOfBounds, "position %v", p)
		}
	})
}

func TestOccupancyQueries(t *testing.T) {
	b := NewBoard()

	require.True(t, b.IsOccupied(Pos{3, 4}))
	require.False(t, b.IsOccupied(Pos{2, 2}))
	require.False(t, b.IsOccupied(Pos{-1, 3}), "Out of bounds is never occupied")

	require.True(t, b.BelongsTo(Pos{3, 4}, Black))
	require.False(t, b.BelongsTo(Pos{3, 4}, White))
	require.False(t, b.BelongsTo(Pos{2, 2}, Black))
	require.False(t, b.BelongsTo(Pos{9, 9}, Black))

	require.True(t, b.IsLegalPosition(Pos{0, 7}))
	require.False(t, b.IsLegalPosition(Pos{0, 8}))
	require.False(t, b.IsLegalPosition(Pos{-1, 0}))
}

func TestLegalMoves(t *testing.T) {
	t.Run("opening moves for black in row-major order", func(t *testing.T) {
		b := NewBoard()
		require.Equal(t, []Pos{{2, 3}, {3, 2}, {4, 5}, {5, 4}}, b.LegalMoves(Black))
	})

	t.Run("opening moves for white in row-major order", func(t *testing.T) {
		b := NewBoard()
		require.Equal(t, []Pos{{2, 4}, {3, 5}, {4, 2}, {5, 3}}, b.LegalMoves(White))
	})

	t.Run("diagonal without anchor is illegal", func(t *testing.T) {
		b := NewBoard()
		require.False(t, b.IsLegalMove(Pos{2, 2}, Black))
	})

	t.Run("occupied and out of bounds cells are never legal", func(t *testing.T) {
		b := NewBoard()
		for _, c := range []Color{Black, White} {
			for row := -1; row <= Size; row++ {
				for col := -1; col <= Size; col++ {
					p := Pos{row, col}
					if !p.InBounds() || b.IsOccupied(p) {
						require.False(t, b.IsLegalMove(p, c), "position %v color %v", p, c)
					}
				}
			}
		}
	})

	t.Run("a color with no anchor has no move", func(t *testing.T) {
		b := mustRows(t,
			"........",
			"........",
			"........",
			"...WW...",
			"...WW...",
			"........",
			"........",
			"........",
		)
		require.Empty(t, b.LegalMoves(Black))
		require.False(t, b.HasAnyMove(Black))
		require.False(t, b.HasAnyMove(White))
	})
}

func TestCaptureRay(t *testing.T) {
	east := Direction{0, 1}

	t.Run("ray anchored by own disc", func(t *testing.T) {
		b := mustRows(t,
			".WWB....",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
		)
		ray, ok := b.CaptureRay(Pos{0, 0}, Black, east)
		require.True(t, ok)
		require.Equal(t, []Pos{{0, 1}, {0, 2}}, ray)
	})

	t.Run("ray reaching an empty cell is void", func(t *testing.T) {
		b := mustRows(t,
			".WW.B...",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
		)
		ray, ok := b.CaptureRay(Pos{0, 0}, Black, east)
		require.False(t, ok)
		require.Nil(t, ray)
	})

	t.Run("ray running off the board is void", func(t *testing.T) {
		b := mustRows(t,
			".WWWWWWW",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
		)
		_, ok := b.CaptureRay(Pos{0, 0}, Black, east)
		require.False(t, ok)
	})

	t.Run("adjacent own disc gives a valid empty ray", func(t *testing.T) {
		b := mustRows(t,
			".B......",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
		)
		ray, ok := b.CaptureRay(Pos{0, 0}, Black, east)
		require.True(t, ok)
		require.Empty(t, ray)
		require.False(t, b.IsLegalMove(Pos{0, 0}, Black), "An empty ray does not make a move legal")
	})

	t.Run("opening capture for black at [2,3]", func(t *testing.T) {
		b := NewBoard()
		ray, ok := b.CaptureRay(Pos{2, 3}, Black, Direction{1, 0})
		require.True(t, ok)
		require.Equal(t, []Pos{{3, 3}}, ray)
		require.Equal(t, 1, b.Captures(Pos{2, 3}, Black))
	})
}

func TestPlace(t *testing.T) {
	t.Run("opening move flips one disc", func(t *testing.T) {
		b := NewBoard()

		flipped, err := b.Place(Pos{2, 3}, Black)

		require.NoError(t, err)
		require.Equal(t, 1, flipped)
		require.Equal(t, []string{
			"........",
			"........",
			"...B....",
			"...BB...",
			"...BW...",
			"........",
			"........",
			"........",
		}, b.Rows())
	})

	t.Run("illegal move leaves the board unchanged", func(t *testing.T) {
		b := NewBoard()
		before := b.Rows()
		hash := b.Hash()

		flipped, err := b.Place(Pos{2, 2}, Black)

		require.ErrorIs(t, err, ErrIllegalMove)
		var moveErr *MoveError
		require.ErrorAs(t, err, &moveErr)
		require.Equal(t, Pos{2, 2}, moveErr.Pos)
		require.Equal(t, Black, moveErr.Color)
		require.Zero(t, flipped)
		require.Equal(t, before, b.Rows())
		require.Equal(t, hash, b.Hash())
	})

	t.Run("occupied and out of bounds placements are rejected", func(t *testing.T) {
		b := NewBoard()
		_, err := b.Place(Pos{3, 3}, Black)
		require.ErrorIs(t, err, ErrIllegalMove)
		_, err = b.Place(Pos{8, 3}, Black)
		require.ErrorIs(t, err, ErrIllegalMove)
		require.Equal(t, NewBoard().Rows(), b.Rows())
	})

	t.Run("invalid color is rejected", func(t *testing.T) {
		b := NewBoard()
		_, err := b.Place(Pos{2, 3}, Color(0))
		require.ErrorIs(t, err, ErrInvalidColor)
		require.Equal(t, NewBoard().Rows(), b.Rows())
	})

	t.Run("all eight directions flip", func(t *testing.T) {
		b := mustRows(t,
			"........",
			".B.B.B..",
			"..WWW...",
			".BW.WB..",
			"..WWW...",
			".B.B.B..",
			"........",
			".......W",
		)

		flipped, err := b.Place(Pos{3, 3}, Black)

		require.NoError(t, err)
		require.Equal(t, 8, flipped)
		require.Equal(t, []string{
			"........",
			".B.B.B..",
			"..BBB...",
			".BBBBB..",
			"..BBB...",
			".B.B.B..",
			"........",
			".......W",
		}, b.Rows())
	})

	t.Run("void rays are not flipped", func(t *testing.T) {
		b := mustRows(t,
			".WWB....",
			"W.......",
			"W.......",
			"........",
			"........",
			"........",
			"........",
			"........",
		)

		flipped, err := b.Place(Pos{0, 0}, Black)

		require.NoError(t, err)
		require.Equal(t, 2, flipped)
		require.Equal(t, []string{
			"BBBB....",
			"W.......",
			"W.......",
			"........",
			"........",
			"........",
			"........",
			"........",
		}, b.Rows())
	})
}

func TestPlaceFlipsExactlyTheCaptureRays(t *testing.T) {
	b := NewBoard()
	color := Black

	for !b.IsGameOver() {
		require.Equal(t, !b.HasAnyMove(Black) && !b.HasAnyMove(White), b.IsGameOver())

		moves := b.LegalMoves(color)
		require.Equal(t, len(moves) > 0, b.HasAnyMove(color))
		if len(moves) == 0 {
			color = color.Opponent()
			continue
		}
		// Play the last legal move so the walk differs from the greedy agent's.
		move := moves[len(moves)-1]

		captured := map[Pos]bool{}
		for _, dir := range Directions {
			if ray, ok := b.CaptureRay(move, color, dir); ok {
				for _, p := range ray {
					require.False(t, captured[p], "Rays must be disjoint")
					captured[p] = true
				}
			}
		}
		before := b.Clone()

		flipped, err := b.Place(move, color)
		require.NoError(t, err)
		require.Equal(t, len(captured), flipped)

		for row := 0; row < Size; row++ {
			for col := 0; col < Size; col++ {
				p := Pos{row, col}
				got, _ := b.Get(p)
				want, _ := before.Get(p)
				switch {
				case p == move, captured[p]:
					require.True(t, b.BelongsTo(p, color), "position %v", p)
				default:
					require.Equal(t, want, got, "position %v should be unchanged", p)
				}
			}
		}
		color = color.Opponent()
	}

	require.False(t, b.HasAnyMove(Black))
	require.False(t, b.HasAnyMove(White))
}

func TestIsGameOver(t *testing.T) {
	t.Run("opening position is not over", func(t *testing.T) {
		require.False(t, NewBoard().IsGameOver())
	})

	t.Run("over with empty cells when nobody can capture", func(t *testing.T) {
		b := mustRows(t,
			".BBBBBBB",
			"BBBBBBBB",
			"BBBBBBBB",
			"BBBBBBBB",
			"BBBBBBBB",
			"BBBBBBBB",
			"BBBBBBBB",
			"BBBBBBBB",
		)
		require.True(t, b.IsGameOver())
		require.Equal(t, 1, b.Empty())
		winner, ok := b.Winner()
		require.True(t, ok)
		require.Equal(t, Black, winner)
	})

	t.Run("one side stuck is not over", func(t *testing.T) {
		b := mustRows(t,
			"BW......",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
		)
		require.True(t, b.HasAnyMove(Black))
		require.False(t, b.HasAnyMove(White))
		require.False(t, b.IsGameOver())
	})
}

func TestWinner(t *testing.T) {
	_, ok := NewBoard().Winner()
	require.False(t, ok, "Equal counts is a draw")

	b := NewBoard()
	_, err := b.Place(Pos{2, 3}, Black)
	require.NoError(t, err)
	winner, ok := b.Winner()
	require.True(t, ok)
	require.Equal(t, Black, winner)
}

func TestClone(t *testing.T) {
	b := NewBoard()
	c := b.Clone()

	_, err := c.Place(Pos{2, 3}, Black)
	require.NoError(t, err)

	require.Equal(t, NewBoard().Rows(), b.Rows(), "Original must not see moves on the clone")
	require.NotEqual(t, b.Hash(), c.Hash())
}
