package engine

import (
	"fmt"

	"github.com/lgbarn/zonechess-go/internal/chess"
	"github.com/lgbarn/zonechess-go/internal/errors"
)

// DangerZone is the set of attack paths by which one player's pieces
// threaten a square, one path per attacking piece.
type DangerZone []Path

// Status is the check state of a king after a move.
type Status int

const (
	NotInCheck Status = iota
	InCheckProtectable
	InCheckUnprotectable
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case NotInCheck:
		return "not in check"
	case InCheckProtectable:
		return "check"
	case InCheckUnprotectable:
		return "checkmate"
	}
	return "unknown"
}

// FindKing returns the king not belonging to the excluded colour.
// A missing king means the board is corrupt.
func FindKing(board *chess.Board, excluding chess.Colour) (*chess.Piece, error) {
	colour := excluding.Opposite()
	for _, p := range board.Pieces(colour) {
		if p.Kind == chess.King {
			return p, nil
		}
	}
	return nil, fmt.Errorf("no %s king on the board: %w", colour, errors.ErrInvariantViolation)
}

// ThreatsTo collects the attack path of every piece of attacker that could
// move onto sq. It returns nil when the square is not attacked.
func ThreatsTo(board *chess.Board, sq chess.Square, attacker *chess.Player) DangerZone {
	var zone DangerZone
	for _, piece := range attacker.Pieces {
		if path, ok := LegalDestination(piece, sq, board); ok {
			zone = append(zone, path)
		}
	}
	return zone
}

// IsProtected reports whether defender has a piece that can move onto a
// square lying on every path of the zone, blocking or capturing all
// attackers with one move. An empty zone needs no protection.
func IsProtected(board *chess.Board, zone DangerZone, defender *chess.Player) bool {
	if len(zone) == 0 {
		return true
	}

	reference, others := zone[len(zone)-1], zone[:len(zone)-1]
	for _, sq := range reference {
		if !onEveryPath(others, sq) {
			continue
		}
		for _, piece := range defender.Pieces {
			if _, ok := LegalDestination(piece, sq, board); ok {
				return true
			}
		}
	}
	return false
}

func onEveryPath(zone DangerZone, sq chess.Square) bool {
	for _, path := range zone {
		if !path.Contains(sq) {
			return false
		}
	}
	return true
}

// KingDestinations returns the on-board squares one king step away that are
// not held by a piece of the king's colour.
func KingDestinations(board *chess.Board, king *chess.Piece) []chess.Square {
	var dests []chess.Square
	for _, o := range KingOffsets {
		sq := king.Pos.Add(o.DRow, o.DCol)
		if !sq.Valid() {
			continue
		}
		if occupant := board.Get(sq); occupant != nil && occupant.Colour == king.Colour {
			continue
		}
		dests = append(dests, sq)
	}
	return dests
}

// IsCheckmate reports whether every square the king could step to is itself
// attacked by attacker. The king's current square is not examined, and a
// king with no destinations at all counts as mated.
func IsCheckmate(board *chess.Board, king *chess.Piece, attacker *chess.Player) bool {
	for _, sq := range KingDestinations(board, king) {
		if len(ThreatsTo(board, sq, attacker)) == 0 {
			return false
		}
	}
	return true
}

// Evaluate returns the check status of the opponent's king after mover has
// moved.
func Evaluate(state *GameState, mover *chess.Player) (Status, error) {
	king, err := FindKing(state.Board, mover.Colour)
	if err != nil {
		return NotInCheck, err
	}

	zone := ThreatsTo(state.Board, king.Pos, mover)
	if len(zone) == 0 {
		return NotInCheck, nil
	}
	if IsProtected(state.Board, zone, state.Opponent(mover)) {
		return InCheckProtectable, nil
	}
	if IsCheckmate(state.Board, king, mover) {
		return InCheckUnprotectable, nil
	}
	return InCheckProtectable, nil
}
