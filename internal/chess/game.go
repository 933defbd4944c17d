package chess

// Result values for a game record.
const (
	ResultWhiteWins = "1-0"
	ResultBlackWins = "0-1"
	ResultUnknown   = "*"
)

// Game records one session: who played, where it started and every move
// applied so far.
type Game struct {
	White  string
	Black  string
	Result string

	// StartFEN is the starting piece placement when the game did not begin
	// from the standard layout.
	StartFEN string

	// The move list of the game.
	Moves *Move
}

// NewGame creates an empty record with an undecided result.
func NewGame(white, black string) *Game {
	return &Game{White: white, Black: black, Result: ResultUnknown}
}

// PlyCount returns the number of half-moves in the game.
func (g *Game) PlyCount() int {
	count := 0
	for move := g.Moves; move != nil; move = move.Next {
		count++
	}
	return count
}

// LastMove returns the last move in the game, or nil if no moves.
func (g *Game) LastMove() *Move {
	if g.Moves == nil {
		return nil
	}
	move := g.Moves
	for move.Next != nil {
		move = move.Next
	}
	return move
}

// AppendMove adds a move to the end of the game.
func (g *Game) AppendMove(m *Move) {
	if g.Moves == nil {
		g.Moves = m
		return
	}
	last := g.LastMove()
	last.Next = m
	m.Prev = last
}

// SetWinner records the result for a win by colour.
func (g *Game) SetWinner(c Colour) {
	if c == White {
		g.Result = ResultWhiteWins
	} else {
		g.Result = ResultBlackWins
	}
}
