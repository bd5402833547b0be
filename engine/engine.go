package engine

import (
	"errors"

	"reversi/experiments/metrics"
	"reversi/game"
)

var ErrGameOver = errors.New("game is over - no moves allowed")

type Option func(e *Engine)

// WithStartingColor sets who moves first. Black starts by default.
func WithStartingColor(c game.Color) Option {
	return func(e *Engine) {
		if c.Valid() {
			e.turn = c
		}
	}
}

// WithBoard starts the game from a prepared position instead of the opening.
func WithBoard(b *game.Board) Option {
	return func(e *Engine) {
		if b != nil {
			e.board = b
		}
	}
}

func WithMetrics() Option {
	return func(e *Engine) {
		e.metrics = metrics.NewCollector()
	}
}

// Update describes one turn: either a placement or a pass.
type Update struct {
	Color  game.Color
	Pos    game.Pos
	Flips  int
	Passed bool
	Hash   game.StateHash
}
