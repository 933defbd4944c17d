package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/zonechess-go/internal/chess"
	"github.com/lgbarn/zonechess-go/internal/errors"
)

// InitialFEN is the piece placement of the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// ConvertFENCharToKind converts a FEN character to a piece kind.
func ConvertFENCharToKind(c rune) chess.Kind {
	switch unicode.ToLower(c) {
	case 'k':
		return chess.King
	case 'q':
		return chess.Queen
	case 'r':
		return chess.Rook
	case 'n':
		return chess.Knight
	case 'b':
		return chess.Bishop
	case 'p':
		return chess.Pawn
	default:
		return chess.NoKind
	}
}

// NewBoardFromFEN creates a board from the piece placement field of a FEN
// string. Any further fields (side to move, castling, clocks) are ignored;
// the engine has no use for them. The first FEN rank maps to row 0.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()
	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Input:    positions,
			Expected: "8 ranks",
			Got:      fmt.Sprintf("%d", len(ranks)),
		}
	}

	for row, rank := range ranks {
		col := 0
		for _, c := range rank {
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}

			kind := ConvertFENCharToKind(c)
			if kind == chess.NoKind {
				return fmt.Errorf("invalid piece character %q: %w", c, errors.ErrInvalidFEN)
			}
			if col >= chess.BoardSize {
				return fmt.Errorf("rank %d overflows: %w", chess.BoardSize-row, errors.ErrInvalidFEN)
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			if err := board.Place(chess.NewPiece(kind, colour, chess.Sq(row, col))); err != nil {
				return err
			}
			col++
		}
		if col != chess.BoardSize {
			return fmt.Errorf("rank %d covers %d files: %w", chess.BoardSize-row, col, errors.ErrInvalidFEN)
		}
	}
	return nil
}
