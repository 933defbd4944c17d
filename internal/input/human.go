// Package input provides the move sources a game loop can draw from.
package input

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lgbarn/zonechess-go/internal/chess"
	"github.com/lgbarn/zonechess-go/internal/engine"
	"github.com/lgbarn/zonechess-go/internal/errors"
)

// HumanSource reads one move per line, such as "e2 e4", prompting on out
// before each read.
type HumanSource struct {
	in  *bufio.Reader
	out io.Writer
}

// NewHumanSource creates a source reading from r and prompting on w.
func NewHumanSource(r io.Reader, w io.Writer) *HumanSource {
	return &HumanSource{in: bufio.NewReader(r), out: w}
}

// NextMove prompts player and parses the next line. Malformed text yields
// an error wrapping ErrInvalidMoveInput; the end of input is reported as
// io.EOF.
func (h *HumanSource) NextMove(_ *engine.GameState, player *chess.Player) (from, to chess.Square, err error) {
	if h.out != nil {
		fmt.Fprintf(h.out, "%s, make your move (e.g. e2 e4): ", player)
	}

	line, err := h.in.ReadString('\n')
	if err != nil {
		// A final line without a newline is still a move.
		if !errors.Is(err, io.EOF) || line == "" {
			return from, to, errors.Wrap(err, "reading move")
		}
	}
	return chess.ParseMove(line)
}
