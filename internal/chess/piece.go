package chess

import "fmt"

// Piece is a single chess man. Its Pos always equals the board square that
// holds it; Board.Move keeps the two in step.
type Piece struct {
	Kind   Kind
	Colour Colour
	Pos    Square
}

// NewPiece creates a piece of the given kind and colour standing on pos.
func NewPiece(kind Kind, colour Colour, pos Square) *Piece {
	return &Piece{Kind: kind, Colour: colour, Pos: pos}
}

// PawnStartRow returns the row on which pawns of the colour begin.
func PawnStartRow(colour Colour) int {
	if colour == White {
		return BoardSize - 2
	}
	return 1
}

// Forward returns the row delta of one step toward the opponent.
// White advances toward row 0, Black toward row 7.
func Forward(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

var (
	whiteGlyphs = []rune{' ', '♙', '♘', '♗', '♖', '♕', '♔'}
	blackGlyphs = []rune{' ', '♟', '♞', '♝', '♜', '♛', '♚'}
)

// Glyph returns the Unicode chess symbol for the piece.
func (p *Piece) Glyph() rune {
	glyphs := blackGlyphs
	if p.Colour == White {
		glyphs = whiteGlyphs
	}
	if int(p.Kind) < 0 || int(p.Kind) >= len(glyphs) {
		return '?'
	}
	return glyphs[p.Kind]
}

// String returns a short description such as "White Rook on a1".
func (p *Piece) String() string {
	return fmt.Sprintf("%s %s on %s", p.Colour, p.Kind, p.Pos)
}
