package engine

import "github.com/lgbarn/zonechess-go/internal/chess"

// LegalDestination reports whether the piece may move to the square on the
// given board, ignoring ownership of the destination and whether the move
// leaves the mover's king attacked. On success it returns the attack path of
// the move. The result depends only on the piece and board contents.
func LegalDestination(piece *chess.Piece, to chess.Square, board *chess.Board) (Path, bool) {
	if piece == nil || !to.Valid() || to == piece.Pos {
		return nil, false
	}

	d := Offset{DRow: to.Row - piece.Pos.Row, DCol: to.Col - piece.Pos.Col}

	switch piece.Kind {
	case chess.Knight:
		if !containsOffset(knightOffsets, Offset{abs(d.DRow), abs(d.DCol)}) {
			return nil, false
		}
		return Path{piece.Pos}, true

	case chess.King:
		if !containsOffset(KingOffsets, d) {
			return nil, false
		}
		return Path{piece.Pos}, true

	case chess.Rook:
		if !isStraight(d) {
			return nil, false
		}
		return walkPath(board, piece.Pos, to)

	case chess.Bishop:
		if !isDiagonal(d) {
			return nil, false
		}
		return walkPath(board, piece.Pos, to)

	case chess.Queen:
		if !isStraight(d) && !isDiagonal(d) {
			return nil, false
		}
		return walkPath(board, piece.Pos, to)

	case chess.Pawn:
		return pawnDestination(piece, d, to, board)
	}

	return nil, false
}

// pawnDestination applies the pawn's kill, first-move and single-step
// offsets. An occupied destination admits only a diagonal capture.
// The double step does not look at the square it passes over.
func pawnDestination(piece *chess.Piece, d Offset, to chess.Square, board *chess.Board) (Path, bool) {
	rule := pawnRules[piece.Colour]

	switch {
	case !board.IsEmpty(to):
		if !containsOffset(rule.kill, d) {
			return nil, false
		}
	case piece.Pos.Row == chess.PawnStartRow(piece.Colour):
		if !containsOffset(rule.first, d) {
			return nil, false
		}
	default:
		if d != rule.single {
			return nil, false
		}
	}
	return Path{piece.Pos}, true
}

// isStraight reports a purely horizontal or vertical displacement.
func isStraight(d Offset) bool {
	return (d.DRow == 0) != (d.DCol == 0)
}

// isDiagonal reports a displacement along a diagonal.
func isDiagonal(d Offset) bool {
	return d.DRow != 0 && abs(d.DRow) == abs(d.DCol)
}
