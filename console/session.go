package console

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"reversi/engine"
	"reversi/game"

	"github.com/muesli/termenv"
)

var ErrBadInput = errors.New("expected a move like [2,3] or 2 3")

// Session is one interactive game's terminal: where input is read from and
// where the board is drawn. Each game gets its own.
type Session struct {
	in     *bufio.Reader
	out    io.Writer
	output *termenv.Output
}

func NewSession(in io.Reader, out io.Writer, opts ...termenv.OutputOption) *Session {
	return &Session{
		in:     bufio.NewReader(in),
		out:    out,
		output: termenv.NewOutput(out, opts...),
	}
}

func (s *Session) Printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

// Prompt writes question and reads one line of input. io.EOF is returned once
// the input is exhausted.
func (s *Session) Prompt(question string) (string, error) {
	fmt.Fprint(s.out, question)
	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ParseMove reads a position written as a JSON pair "[2, 3]" or as two
// numbers separated by a comma or spaces.
func ParseMove(line string) (game.Pos, error) {
	line = strings.TrimSpace(line)
	var pair []int
	if strings.HasPrefix(line, "[") {
		if err := json.Unmarshal([]byte(line), &pair); err != nil {
			return game.Pos{}, fmt.Errorf("%w: %v", ErrBadInput, err)
		}
	} else {
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
		for _, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return game.Pos{}, fmt.Errorf("%w: %q is not a number", ErrBadInput, f)
			}
			pair = append(pair, n)
		}
	}
	if len(pair) != 2 {
		return game.Pos{}, ErrBadInput
	}
	return game.Pos{Row: pair[0], Col: pair[1]}, nil
}

// Play drives e to the end, drawing the board before every turn. Human
// agents bound to this session read their moves from it.
func (s *Session) Play(e *engine.Engine) error {
	s.reportPasses(e)
	for !e.IsOver() {
		s.Render(e.Board())
		color := e.Turn()
		u, err := e.Step()
		if err != nil {
			return err
		}
		s.Printf("%s plays %s\n", color, u.Pos)
		s.reportPasses(e)
	}

	board := e.Board()
	s.Render(board)
	s.Printf("The game is over! ")
	if winner, ok := board.Winner(); ok {
		s.Printf("%s wins.\n", winner)
	} else {
		s.Printf("It's a draw.\n")
	}
	return nil
}

func (s *Session) reportPasses(e *engine.Engine) {
	for _, p := range e.Passes() {
		s.Printf("%s has no move!\n", p.Color)
	}
}
