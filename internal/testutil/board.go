package testutil

import (
	"io"
	"testing"

	"github.com/lgbarn/zonechess-go/internal/chess"
	"github.com/lgbarn/zonechess-go/internal/engine"
)

// MustSquare parses algebraic square text such as "e4".
// It calls t.Fatal if the text is not a board square.
func MustSquare(t *testing.T, text string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(text)
	if err != nil {
		t.Fatalf("bad square %q: %v", text, err)
	}
	return sq
}

// MustBoard builds a board from a FEN piece placement.
// It calls t.Fatal if the FEN is rejected.
func MustBoard(t *testing.T, fen string) *chess.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("failed to build board from %q: %v", fen, err)
	}
	return board
}

// MustState builds a two-player game state from a FEN piece placement.
func MustState(t *testing.T, fen string) *engine.GameState {
	t.Helper()
	return engine.NewGameState(MustBoard(t, fen), "White", "Black")
}

// Script replays move lines as if typed by a player. Once the lines run
// out it reports io.EOF.
type Script struct {
	Lines []string
	Asked []chess.Colour
	next  int
}

// NewScript returns a Script over the given lines.
func NewScript(lines ...string) *Script {
	return &Script{Lines: lines}
}

// NextMove parses the next scripted line.
func (s *Script) NextMove(_ *engine.GameState, player *chess.Player) (from, to chess.Square, err error) {
	s.Asked = append(s.Asked, player.Colour)
	if s.next >= len(s.Lines) {
		return from, to, io.EOF
	}
	line := s.Lines[s.next]
	s.next++
	return chess.ParseMove(line)
}

// Remaining reports how many lines have not been consumed.
func (s *Script) Remaining() int {
	return len(s.Lines) - s.next
}
