package game

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lgbarn/zonechess-go/internal/chess"
)

// OutcomeKind is the terminal signal reported after a ply.
type OutcomeKind int

const (
	Ongoing OutcomeKind = iota
	Check
	Checkmate
)

// String returns the outcome name.
func (k OutcomeKind) String() string {
	switch k {
	case Ongoing:
		return "ongoing"
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	}
	return "unknown"
}

// Outcome reports the state of a game after a ply or at the end of Run.
type Outcome struct {
	Kind   OutcomeKind
	Colour chess.Colour  // Side in check or mated (Check and Checkmate only)
	Winner *chess.Player // Set for Checkmate
	Plies  int
	GameID uuid.UUID
}

// String summarises the outcome for log lines.
func (o Outcome) String() string {
	switch o.Kind {
	case Check:
		return fmt.Sprintf("check(%s) after %d plies", o.Colour, o.Plies)
	case Checkmate:
		return fmt.Sprintf("checkmate(%s) after %d plies", o.Winner, o.Plies)
	}
	return fmt.Sprintf("ongoing after %d plies", o.Plies)
}
