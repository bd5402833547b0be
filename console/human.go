package console

import (
	"fmt"

	"reversi/agent"
	"reversi/game"
)

var _ agent.Rejecter = (*Human)(nil)

// Human reads moves for one color from a Session.
type Human struct {
	session *Session
}

func NewHuman(s *Session) *Human {
	return &Human{session: s}
}

// FindMove prompts until the input parses. Legality is left to the engine,
// which calls Rejected so the player is asked again.
func (h *Human) FindMove(board *game.Board, color game.Color) (game.Pos, error) {
	for {
		line, err := h.session.Prompt(fmt.Sprintf("%s, where do you want to move? ", color))
		if err != nil {
			return game.Pos{}, err
		}
		pos, err := ParseMove(line)
		if err != nil {
			h.session.Printf("%v\n", err)
			continue
		}
		return pos, nil
	}
}

func (h *Human) Rejected(pos game.Pos, err error) {
	h.session.Printf("Invalid move!\n")
}
