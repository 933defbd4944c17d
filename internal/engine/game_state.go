package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lgbarn/zonechess-go/internal/chess"
	"github.com/lgbarn/zonechess-go/internal/errors"
)

// GameState is everything the rule engine works on for one session: the
// board and the two players whose piece collections mirror it.
type GameState struct {
	ID      uuid.UUID
	Board   *chess.Board
	players [2]*chess.Player
}

// NewGameState creates a session around board and assigns each player the
// pieces of their colour.
func NewGameState(board *chess.Board, whiteName, blackName string) *GameState {
	s := &GameState{ID: uuid.New(), Board: board}
	for _, p := range []*chess.Player{
		chess.NewPlayer(whiteName, chess.White),
		chess.NewPlayer(blackName, chess.Black),
	} {
		p.AssignPieces(board)
		s.players[p.Colour] = p
	}
	return s
}

// Player returns the player of the given colour.
func (s *GameState) Player(colour chess.Colour) *chess.Player {
	return s.players[colour]
}

// Opponent returns the other player.
func (s *GameState) Opponent(p *chess.Player) *chess.Player {
	return s.players[p.Colour.Opposite()]
}

// CheckMove explains why moving from one square to another is not allowed
// for mover, or returns nil if it is. The state is not modified.
func (s *GameState) CheckMove(from, to chess.Square, mover *chess.Player) error {
	piece := s.Board.Get(from)
	if !mover.Owns(piece) {
		return fmt.Errorf("no %s piece on %s: %w", mover.Colour, from, errors.ErrIllegalMove)
	}
	if mover.Owns(s.Board.Get(to)) {
		return fmt.Errorf("%s holds a %s piece: %w", to, mover.Colour, errors.ErrIllegalMove)
	}
	if _, ok := LegalDestination(piece, to, s.Board); !ok {
		return fmt.Errorf("%s cannot reach %s: %w", piece, to, errors.ErrIllegalMove)
	}
	return nil
}

// ValidateMove reports whether mover may move the piece on from to to.
func (s *GameState) ValidateMove(from, to chess.Square, mover *chess.Player) bool {
	return s.CheckMove(from, to, mover) == nil
}

// ApplyMove moves the piece on from to to without checking legality.
// A captured piece leaves the board and its owner's collection together.
func (s *GameState) ApplyMove(from, to chess.Square) (*chess.Piece, error) {
	if s.Board.IsEmpty(from) {
		return nil, fmt.Errorf("apply %s-%s: origin is empty: %w", from, to, errors.ErrInvariantViolation)
	}
	if !to.Valid() {
		return nil, fmt.Errorf("apply %s-%s: destination off the board: %w", from, to, errors.ErrInvariantViolation)
	}

	captured := s.Board.Move(from, to)
	if captured != nil {
		if !s.players[captured.Colour].Remove(captured) {
			return captured, fmt.Errorf("captured %s not held by its player: %w", captured, errors.ErrInvariantViolation)
		}
	}
	return captured, nil
}
