package agent

import (
	"reversi/game"

	"golang.org/x/exp/rand"
)

type random struct {
	rng *rand.Rand
}

// NewRandom returns an agent that picks uniformly among the legal moves. The
// same seed replays the same choices. Not safe for concurrent use.
func NewRandom(seed uint64) Agent {
	return &random{rng: rand.New(rand.NewSource(seed))}
}

func (r *random) FindMove(board *game.Board, color game.Color) (game.Pos, error) {
	moves := board.LegalMoves(color)
	if len(moves) == 0 {
		return game.Pos{}, ErrNoMove
	}
	return moves[r.rng.Intn(len(moves))], nil
}
