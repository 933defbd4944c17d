package chess

import (
	"fmt"

	"github.com/lgbarn/zonechess-go/internal/errors"
)

// Board is an 8x8 grid holding at most one piece per square.
// The board owns every piece reachable from it.
type Board struct {
	squares [BoardSize][BoardSize]*Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// backRank lists the piece kinds of a back rank from file a to file h.
var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewStandardBoard creates a board in the standard chess starting position.
func NewStandardBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition clears the board and sets up the standard starting
// position: Black on rows 0-1, White on rows 6-7.
func (b *Board) SetupInitialPosition() {
	b.squares = [BoardSize][BoardSize]*Piece{}

	for col := 0; col < BoardSize; col++ {
		b.squares[0][col] = NewPiece(backRank[col], Black, Sq(0, col))
		b.squares[1][col] = NewPiece(Pawn, Black, Sq(1, col))
		b.squares[6][col] = NewPiece(Pawn, White, Sq(6, col))
		b.squares[7][col] = NewPiece(backRank[col], White, Sq(7, col))
	}
}

// Get returns the piece on the square, or nil if it is empty or off the board.
func (b *Board) Get(sq Square) *Piece {
	if !sq.Valid() {
		return nil
	}
	return b.squares[sq.Row][sq.Col]
}

// IsEmpty reports whether the square holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b.Get(sq) == nil
}

// Place puts a piece on the board at its own position.
func (b *Board) Place(p *Piece) error {
	if !p.Pos.Valid() {
		return fmt.Errorf("place %s: square off the board: %w", p.Kind, errors.ErrInvariantViolation)
	}
	if occupant := b.squares[p.Pos.Row][p.Pos.Col]; occupant != nil {
		return fmt.Errorf("place %s: square already holds %s: %w", p, occupant.Kind, errors.ErrInvariantViolation)
	}
	b.squares[p.Pos.Row][p.Pos.Col] = p
	return nil
}

// Move relocates the piece on from to to and returns the piece that was
// standing on to, if any. No legality check is made. Moving from an empty
// square does nothing and returns nil.
func (b *Board) Move(from, to Square) *Piece {
	piece := b.Get(from)
	if piece == nil || !to.Valid() {
		return nil
	}

	captured := b.squares[to.Row][to.Col]
	b.squares[from.Row][from.Col] = nil
	b.squares[to.Row][to.Col] = piece
	piece.Pos = to

	return captured
}

// Pieces returns the pieces of the given colour in row-major order.
func (b *Board) Pieces(colour Colour) []*Piece {
	var pieces []*Piece
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if p := b.squares[row][col]; p != nil && p.Colour == colour {
				pieces = append(pieces, p)
			}
		}
	}
	return pieces
}

// Verify checks the board invariants: every piece records the square it
// stands on, and each colour has exactly one king.
func (b *Board) Verify() error {
	kings := map[Colour]int{}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := b.squares[row][col]
			if p == nil {
				continue
			}
			if p.Pos != Sq(row, col) {
				return fmt.Errorf("%s found on %s: %w", p, Sq(row, col), errors.ErrInvariantViolation)
			}
			if p.Kind == King {
				kings[p.Colour]++
			}
		}
	}

	for _, colour := range []Colour{White, Black} {
		if kings[colour] != 1 {
			return fmt.Errorf("%s has %d kings: %w", colour, kings[colour], errors.ErrInvariantViolation)
		}
	}
	return nil
}
