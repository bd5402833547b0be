package engine

import (
	"errors"
	"fmt"
	"time"

	"reversi/agent"
	"reversi/experiments/metrics"
	"reversi/game"

	"github.com/rs/zerolog/log"
)

// Engine drives one game: it owns the board, knows whose turn it is and asks
// each color's agent for moves.
type Engine struct {
	board   *game.Board
	turn    game.Color
	agents  map[game.Color]agent.Agent
	over    bool
	passes  []Update
	metrics metrics.Collector
}

// New sets up a game between black and white. Either agent may be nil when
// that color's moves are supplied through Play.
func New(black, white agent.Agent, options ...Option) *Engine {
	e := &Engine{
		board: game.NewBoard(),
		turn:  game.Black,
		agents: map[game.Color]agent.Agent{
			game.Black: black,
			game.White: white,
		},
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	e.metrics.Start(e.turn)
	e.advance()
	return e
}

// Turn returns the color to move.
func (e *Engine) Turn() game.Color {
	return e.turn
}

// Board returns a snapshot of the current position.
func (e *Engine) Board() *game.Board {
	return e.board.Clone()
}

func (e *Engine) IsOver() bool {
	return e.over
}

// Passes drains the passes recorded since the last call.
func (e *Engine) Passes() []Update {
	passes := e.passes
	e.passes = nil
	return passes
}

// Play places a disc for the color to move at pos. An illegal pos is
// rejected before the board is touched so the caller can ask again.
func (e *Engine) Play(pos game.Pos) (Update, error) {
	if e.over {
		return Update{}, ErrGameOver
	}
	return e.play(pos, 0)
}

func (e *Engine) play(pos game.Pos, think time.Duration) (Update, error) {
	color := e.turn
	if !e.board.IsLegalMove(pos, color) {
		return Update{}, &game.MoveError{Pos: pos, Color: color, Err: game.ErrIllegalMove}
	}
	flips, err := e.board.Place(pos, color)
	if err != nil {
		return Update{}, err
	}
	e.metrics.AddMove(color, pos, flips, think)
	log.Debug().Msgf("%s played %s flipping %d", color, pos, flips)

	e.turn = color.Opponent()
	e.advance()

	return Update{
		Color: color,
		Pos:   pos,
		Flips: flips,
		Hash:  e.board.Hash(),
	}, nil
}

// advance skips a color with no legal move and ends the game once neither
// color can move.
func (e *Engine) advance() {
	if e.over || e.board.HasAnyMove(e.turn) {
		return
	}
	if !e.board.HasAnyMove(e.turn.Opponent()) {
		e.over = true
		log.Debug().Msg("neither player can move")
		return
	}
	log.Info().Msgf("%s has no move", e.turn)
	e.metrics.AddPass(e.turn)
	e.passes = append(e.passes, Update{Color: e.turn, Passed: true, Hash: e.board.Hash()})
	e.turn = e.turn.Opponent()
}

// Step plays one turn for the color to move using its agent. Agents that
// implement agent.Rejecter are asked again after an illegal proposal.
func (e *Engine) Step() (Update, error) {
	if e.over {
		return Update{}, ErrGameOver
	}
	a := e.agents[e.turn]
	if a == nil {
		return Update{}, fmt.Errorf("no agent for %s", e.turn)
	}

	for {
		start := time.Now()
		pos, err := a.FindMove(e.board.Clone(), e.turn)
		if err != nil {
			return Update{}, fmt.Errorf("%s agent: %w", e.turn, err)
		}

		u, err := e.play(pos, time.Since(start))
		if err == nil {
			return u, nil
		}
		r, ok := a.(agent.Rejecter)
		if !ok || !errors.Is(err, game.ErrIllegalMove) {
			return Update{}, err
		}
		r.Rejected(pos, err)
	}
}

// Run executes the entire game loop until neither player can move.
func (e *Engine) Run() (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	log.Info().Msgf("%s is starting", e.turn)

	for !e.over {
		if _, err := e.Step(); err != nil {
			return "", metrics.GameMetric{}, nil, err
		}
	}

	winner := ""
	if w, ok := e.board.Winner(); ok {
		winner = w.String()
	}
	gameMetric, moveMetrics := e.metrics.Complete(e.board)
	log.Info().Msgf("game over: black %d, white %d, winner: %q",
		e.board.Count(game.Black), e.board.Count(game.White), winner)

	return winner, gameMetric, moveMetrics, nil
}
