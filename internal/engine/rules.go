// Package engine implements the chess rule engine: movement legality, move
// validation and application, and check and checkmate analysis.
package engine

import "github.com/lgbarn/zonechess-go/internal/chess"

// Offset is a (row, column) displacement.
type Offset struct {
	DRow, DCol int
}

// knightOffsets are compared against the absolute displacement.
var knightOffsets = []Offset{{1, 2}, {2, 1}}

// KingOffsets are the eight single steps a king may take.
var KingOffsets = []Offset{
	{1, 0}, {0, 1}, {1, 1}, {-1, 0},
	{0, -1}, {-1, -1}, {1, -1}, {-1, 1},
}

// pawnRule holds the three disjoint offset sets governing a pawn:
// diagonal captures, moves from the start row, and ordinary single steps.
type pawnRule struct {
	kill   []Offset
	first  []Offset
	single Offset
}

func newPawnRule(colour chess.Colour) pawnRule {
	f := chess.Forward(colour)
	return pawnRule{
		kill:   []Offset{{f, 1}, {f, -1}},
		first:  []Offset{{2 * f, 0}, {f, 0}},
		single: Offset{f, 0},
	}
}

var pawnRules = map[chess.Colour]pawnRule{
	chess.White: newPawnRule(chess.White),
	chess.Black: newPawnRule(chess.Black),
}

func containsOffset(set []Offset, o Offset) bool {
	for _, s := range set {
		if s == o {
			return true
		}
	}
	return false
}
