package chess

// Player is one side of the game. Pieces is the subset of the board's pieces
// of the player's colour; it shrinks only when a piece is captured.
type Player struct {
	Name   string
	Colour Colour
	Pieces []*Piece
}

// NewPlayer creates a player with no pieces.
func NewPlayer(name string, colour Colour) *Player {
	return &Player{Name: name, Colour: colour}
}

// AssignPieces gives the player every piece of its colour on the board.
func (p *Player) AssignPieces(b *Board) {
	p.Pieces = b.Pieces(p.Colour)
}

// Owns reports whether the piece belongs to the player.
func (p *Player) Owns(piece *Piece) bool {
	return piece != nil && piece.Colour == p.Colour
}

// Remove drops a captured piece from the player's collection.
// It reports whether the piece was found.
func (p *Player) Remove(piece *Piece) bool {
	for i, owned := range p.Pieces {
		if owned == piece {
			p.Pieces = append(p.Pieces[:i], p.Pieces[i+1:]...)
			return true
		}
	}
	return false
}

// String returns the player's name, or its colour when unnamed.
func (p *Player) String() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Colour.String()
}
