package chess

// CheckStatus indicates whether a move gives check or checkmate.
type CheckStatus int

const (
	NoCheck CheckStatus = iota
	Check
	Checkmate
)

// Move represents a single applied move and the links to its neighbours in
// a game record.
type Move struct {
	// Source and destination squares.
	From Square
	To   Square

	// The piece being moved.
	Piece  Kind
	Colour Colour

	// The piece captured (NoKind if no capture).
	Captured Kind

	// Whether this move gives check or checkmate.
	CheckStatus CheckStatus

	// Links to previous and next moves in the game.
	Prev *Move
	Next *Move
}

// NewMove creates a move record for piece travelling from one square to
// another.
func NewMove(from, to Square, piece Kind, colour Colour) *Move {
	return &Move{From: from, To: to, Piece: piece, Colour: colour}
}

// IsCapture returns true if this move took a piece.
func (m *Move) IsCapture() bool {
	return m.Captured != NoKind
}

// String returns the move in coordinate form, e.g. "e2 e4", with "+" or
// "#" appended for check and checkmate.
func (m *Move) String() string {
	s := m.From.String() + " " + m.To.String()
	switch m.CheckStatus {
	case Check:
		s += "+"
	case Checkmate:
		s += "#"
	}
	return s
}
