package metrics

import (
	"time"

	"reversi/game"
)

type MoveMetric struct {
	Step     int
	Player   string // color name
	Pos      game.Pos
	Flips    int
	Passed   bool
	Duration time.Duration // time the agent took to decide
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // "" on a draw
	BlackDiscs     int
	WhiteDiscs     int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Passes         int
}

type Collector interface {
	Start(starting game.Color)
	AddMove(color game.Color, pos game.Pos, flips int, duration time.Duration)
	AddPass(color game.Color)
	Complete(board *game.Board) (GameMetric, []MoveMetric)
}

type collector struct {
	starting  game.Color
	startTime time.Time
	moves     []MoveMetric
	passes    int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(starting game.Color) {
	m.starting = starting
	m.startTime = time.Now()
	m.moves = nil
	m.passes = 0
}

func (m *collector) AddMove(color game.Color, pos game.Pos, flips int, duration time.Duration) {
	m.moves = append(m.moves, MoveMetric{
		Step:     len(m.moves) + 1,
		Player:   color.String(),
		Pos:      pos,
		Flips:    flips,
		Duration: duration,
	})
}

func (m *collector) AddPass(color game.Color) {
	m.passes++
	m.moves = append(m.moves, MoveMetric{
		Step:   len(m.moves) + 1,
		Player: color.String(),
		Passed: true,
	})
}

func (m *collector) Complete(board *game.Board) (GameMetric, []MoveMetric) {
	end := time.Now()
	gm := GameMetric{
		StartingPlayer: m.starting.String(),
		BlackDiscs:     board.Count(game.Black),
		WhiteDiscs:     board.Count(game.White),
		StartTime:      m.startTime,
		EndTime:        end,
		Duration:       end.Sub(m.startTime),
		TotalMoves:     len(m.moves) - m.passes,
		Passes:         m.passes,
	}
	if winner, ok := board.Winner(); ok {
		gm.Winner = winner.String()
	}
	return gm, m.moves
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(starting game.Color)                        {}
func (m *dummyCollector) AddMove(game.Color, game.Pos, int, time.Duration) {}
func (m *dummyCollector) AddPass(color game.Color)                         {}
func (m *dummyCollector) Complete(board *game.Board) (GameMetric, []MoveMetric) {
	return GameMetric{}, nil
}
