// Package render prints read-only views of a board between turns.
package render

import (
	"fmt"
	"io"
	"strings"

	lib "github.com/corentings/chess/v2"

	"github.com/lgbarn/zonechess-go/internal/chess"
	"github.com/lgbarn/zonechess-go/internal/config"
	"github.com/lgbarn/zonechess-go/internal/errors"
)

// Cell is one square of a snapshot. Kind is chess.NoKind for an empty square.
type Cell struct {
	Kind   chess.Kind
	Colour chess.Colour
}

// Grid is a copy of the board contents indexed by row then column.
type Grid [chess.BoardSize][chess.BoardSize]Cell

// Snapshot copies the board so that renderers never touch live pieces.
func Snapshot(b *chess.Board) Grid {
	var g Grid
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if p := b.Get(chess.Sq(row, col)); p != nil {
				g[row][col] = Cell{Kind: p.Kind, Colour: p.Colour}
			}
		}
	}
	return g
}

// Func adapts a plain function to the renderer contract used by the game loop.
type Func func(w io.Writer, b *chess.Board) error

// Render calls f.
func (f Func) Render(w io.Writer, b *chess.Board) error {
	return f(w, b)
}

// New returns the renderer for a configured format.
func New(format config.Format) (Func, error) {
	switch format {
	case config.TextFormat:
		return Text, nil
	case config.DiagramFormat:
		return Diagram, nil
	case config.FENFormat:
		return FEN, nil
	}
	return nil, fmt.Errorf("board format %q: %w", format, errors.ErrInvalidConfig)
}

const filesHeader = "   a b c d e f g h"

// Text prints a bordered grid with rank numbers on both sides and Unicode
// chess symbols in the cells.
func Text(w io.Writer, b *chess.Board) error {
	g := Snapshot(b)

	var sb strings.Builder
	sb.WriteString(filesHeader + "\n")
	for row := 0; row < chess.BoardSize; row++ {
		rank := chess.BoardSize - row
		fmt.Fprintf(&sb, "%d |", rank)
		for col := 0; col < chess.BoardSize; col++ {
			cell := g[row][col]
			if cell.Kind == chess.NoKind {
				sb.WriteString(" |")
				continue
			}
			p := chess.Piece{Kind: cell.Kind, Colour: cell.Colour}
			sb.WriteRune(p.Glyph())
			sb.WriteByte('|')
		}
		fmt.Fprintf(&sb, " %d\n", rank)
	}
	sb.WriteString(filesHeader + "\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// Diagram prints the board using the chess library's diagram layout.
func Diagram(w io.Writer, b *chess.Board) error {
	_, err := io.WriteString(w, toLibraryBoard(Snapshot(b)).Draw())
	return err
}

// FEN prints the FEN piece placement of the board on one line.
func FEN(w io.Writer, b *chess.Board) error {
	_, err := fmt.Fprintln(w, PlacementFEN(b))
	return err
}

// PlacementFEN returns the FEN piece placement field for the board.
func PlacementFEN(b *chess.Board) string {
	return toLibraryBoard(Snapshot(b)).String()
}

var libraryPieces = map[Cell]lib.Piece{
	{chess.King, chess.White}:   lib.WhiteKing,
	{chess.Queen, chess.White}:  lib.WhiteQueen,
	{chess.Rook, chess.White}:   lib.WhiteRook,
	{chess.Bishop, chess.White}: lib.WhiteBishop,
	{chess.Knight, chess.White}: lib.WhiteKnight,
	{chess.Pawn, chess.White}:   lib.WhitePawn,
	{chess.King, chess.Black}:   lib.BlackKing,
	{chess.Queen, chess.Black}:  lib.BlackQueen,
	{chess.Rook, chess.Black}:   lib.BlackRook,
	{chess.Bishop, chess.Black}: lib.BlackBishop,
	{chess.Knight, chess.Black}: lib.BlackKnight,
	{chess.Pawn, chess.Black}:   lib.BlackPawn,
}

// toLibraryBoard converts a snapshot to the chess library's board, whose
// rank index runs from rank 1 upward.
func toLibraryBoard(g Grid) *lib.Board {
	m := make(map[lib.Square]lib.Piece)
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			cell := g[row][col]
			if cell.Kind == chess.NoKind {
				continue
			}
			rank := lib.Rank(chess.BoardSize - 1 - row)
			sq := lib.Square(col + chess.BoardSize*int(rank))
			m[sq] = libraryPieces[cell]
		}
	}
	return lib.NewBoard(m)
}
