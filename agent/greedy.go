package agent

import "reversi/game"

type greedy struct{}

// NewGreedy returns the agent that always takes the move capturing the most
// discs, with no look-ahead. Ties go to the first move in row-major order.
func NewGreedy() Agent {
	return greedy{}
}

func (greedy) FindMove(board *game.Board, color game.Color) (game.Pos, error) {
	moves := board.LegalMoves(color)
	if len(moves) == 0 {
		return game.Pos{}, ErrNoMove
	}

	best := moves[0]
	bestCount := -1
	for _, move := range moves {
		// Only a strictly greater count replaces the earlier candidate
		if count := board.Captures(move, color); count > bestCount {
			bestCount = count
			best = move
		}
	}
	return best, nil
}
