package input

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/lgbarn/zonechess-go/internal/chess"
	"github.com/lgbarn/zonechess-go/internal/engine"
	"github.com/lgbarn/zonechess-go/internal/errors"
)

// ComputerSource plays a uniformly random move among those the rule engine
// accepts. The same seed replays the same game.
type ComputerSource struct {
	rng *rand.Rand
	out io.Writer
}

// NewComputerSource creates a seeded source. When out is not nil each
// chosen move is announced on it.
func NewComputerSource(seed uint64, out io.Writer) *ComputerSource {
	return &ComputerSource{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		out: out,
	}
}

// NextMove picks a move for player. It fails with ErrNoMoves when no piece
// of player has a legal destination.
func (c *ComputerSource) NextMove(state *engine.GameState, player *chess.Player) (from, to chess.Square, err error) {
	moves := CandidateMoves(state, player)
	if len(moves) == 0 {
		return from, to, fmt.Errorf("%s: %w", player, errors.ErrNoMoves)
	}

	m := moves[c.rng.IntN(len(moves))]
	if c.out != nil {
		fmt.Fprintf(c.out, "%s plays %s\n", player, &m)
	}
	return m.From, m.To, nil
}

// CandidateMoves lists every move of player that passes validation, in
// piece order then row-major destination order.
func CandidateMoves(state *engine.GameState, player *chess.Player) []chess.Move {
	var moves []chess.Move
	for _, piece := range player.Pieces {
		for row := 0; row < chess.BoardSize; row++ {
			for col := 0; col < chess.BoardSize; col++ {
				to := chess.Sq(row, col)
				if state.ValidateMove(piece.Pos, to, player) {
					moves = append(moves, *chess.NewMove(piece.Pos, to, piece.Kind, piece.Colour))
				}
			}
		}
	}
	return moves
}
