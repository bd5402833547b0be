package agent

import (
	"errors"
	"fmt"

	"reversi/game"
)

var ErrNoMove = errors.New("no legal move")

type Agent interface {
	// FindMove picks a placement for color on board. The board must not be modified.
	FindMove(board *game.Board, color game.Color) (game.Pos, error)
}

// Rejecter is implemented by agents that can be asked again after proposing an
// illegal move, such as a human at a prompt.
type Rejecter interface {
	Rejected(pos game.Pos, err error)
}

// ByName builds an automated agent from its CLI name.
func ByName(name string, seed uint64) (Agent, error) {
	switch name {
	case "greedy":
		return NewGreedy(), nil
	case "random":
		return NewRandom(seed), nil
	}
	return nil, fmt.Errorf("unknown agent %q", name)
}
