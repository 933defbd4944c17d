package engine

import "github.com/lgbarn/zonechess-go/internal/chess"

// Path is the ordered run of squares an attacking move covers: the origin
// followed by every square strictly between origin and destination. A move
// that cannot be blocked (knight, king, pawn) has a path of the origin alone.
type Path []chess.Square

// Contains reports whether sq lies on the path.
func (p Path) Contains(sq chess.Square) bool {
	for _, s := range p {
		if s == sq {
			return true
		}
	}
	return false
}

// walkPath steps from one square toward another along a straight or
// diagonal line. It returns the walked path and false if any square
// strictly between the two is occupied.
func walkPath(board *chess.Board, from, to chess.Square) (Path, bool) {
	dRow := to.Row - from.Row
	dCol := to.Col - from.Col

	distance := abs(dRow)
	if distance == 0 {
		distance = abs(dCol)
	}
	stepRow, stepCol := sign(dRow), sign(dCol)

	path := make(Path, 0, distance)
	sq := from
	for i := 0; i < distance; i++ {
		path = append(path, sq)
		if i > 0 && !board.IsEmpty(sq) {
			return nil, false
		}
		sq = sq.Add(stepRow, stepCol)
	}
	return path, true
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
