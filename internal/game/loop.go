// Package game runs a two-player session: it alternates turns, acquires
// moves from each side's source, applies them through the rule engine and
// reports check and checkmate.
package game

import (
	"fmt"
	"io"

	"github.com/lgbarn/zonechess-go/internal/chess"
	"github.com/lgbarn/zonechess-go/internal/config"
	"github.com/lgbarn/zonechess-go/internal/engine"
	"github.com/lgbarn/zonechess-go/internal/errors"
)

// MoveSource supplies a side's next move. Implementations may block.
type MoveSource interface {
	NextMove(state *engine.GameState, player *chess.Player) (from, to chess.Square, err error)
}

// Renderer prints a read-only view of the board.
type Renderer interface {
	Render(w io.Writer, b *chess.Board) error
}

// Terminal messages written to the output stream.
const (
	msgInvalidInput = "Invalid input"
	msgInvalidMove  = "Invalid move"
	msgCheck        = "CHECK!"
	msgCheckmate    = "CHECKMATE!"
)

// Loop owns one game session from the first ply to checkmate.
type Loop struct {
	cfg      *config.Config
	state    *engine.GameState
	sources  [2]MoveSource
	renderer Renderer
	record   *chess.Game
	plies    int
}

// NewLoop creates a loop over state. Moves for each colour come from the
// matching source.
func NewLoop(cfg *config.Config, state *engine.GameState, white, black MoveSource, r Renderer) *Loop {
	l := &Loop{cfg: cfg, state: state, renderer: r}
	l.record = chess.NewGame(state.Player(chess.White).String(), state.Player(chess.Black).String())
	l.record.StartFEN = cfg.StartFEN
	l.sources[chess.White] = white
	l.sources[chess.Black] = black
	return l
}

// Plies returns the number of moves applied so far.
func (l *Loop) Plies() int {
	return l.plies
}

// Board returns the board being played on.
func (l *Loop) Board() *chess.Board {
	return l.state.Board
}

// Record returns the moves played so far and, once decided, the result.
func (l *Loop) Record() *chess.Game {
	return l.record
}

// Run plays turns, White first, until a side is checkmated or MaxPlies is
// reached. A corrupted board or an exhausted move source ends the game with
// an error.
func (l *Loop) Run() (Outcome, error) {
	if err := l.state.Board.Verify(); err != nil {
		return l.outcome(), err
	}

	white, black := l.state.Player(chess.White), l.state.Player(chess.Black)
	l.cfg.Logf(1, "[%s] %s (White) vs %s (Black)", l.state.ID, white, black)

	mover := white
	for {
		if l.cfg.MaxPlies > 0 && l.plies >= l.cfg.MaxPlies {
			out := l.outcome()
			l.cfg.Logf(1, "[%s] stopped: %s", l.state.ID, out)
			return out, nil
		}

		out, err := l.Turn(mover)
		if err != nil {
			l.cfg.Logf(1, "[%s] aborted: %v", l.state.ID, err)
			return out, err
		}
		if out.Kind == Checkmate {
			if err := l.render(); err != nil {
				return out, err
			}
			fmt.Fprintf(l.cfg.OutputFile, "Congratulations %s! You have won the game.\n", out.Winner)
			l.cfg.Logf(1, "[%s] %s", l.state.ID, out)
			return out, nil
		}
		mover = l.state.Opponent(mover)
	}
}

// Turn plays one ply for mover: show the board, obtain a legal move, apply
// it and evaluate the opponent's king.
func (l *Loop) Turn(mover *chess.Player) (Outcome, error) {
	if err := l.render(); err != nil {
		return l.outcome(), err
	}

	from, to, err := l.acquire(mover)
	if err != nil {
		return l.outcome(), err
	}

	ply := l.plies + 1
	piece := l.state.Board.Get(from)
	captured, err := l.state.ApplyMove(from, to)
	if err != nil {
		return l.outcome(), l.moveError(err, mover, ply, from, to)
	}
	move := chess.NewMove(from, to, piece.Kind, piece.Colour)
	if captured != nil {
		move.Captured = captured.Kind
	}
	l.record.AppendMove(move)
	l.plies = ply
	if captured != nil {
		l.cfg.Logf(2, "[%s] ply %d: %s %s-%s takes %s", l.state.ID, l.plies, mover, from, to, captured)
	} else {
		l.cfg.Logf(2, "[%s] ply %d: %s %s-%s", l.state.ID, l.plies, mover, from, to)
	}

	status, err := engine.Evaluate(l.state, mover)
	if err != nil {
		return l.outcome(), l.moveError(err, mover, ply, from, to)
	}

	out := l.outcome()
	switch status {
	case engine.InCheckProtectable:
		move.CheckStatus = chess.Check
		out.Kind = Check
		out.Colour = mover.Colour.Opposite()
		fmt.Fprintln(l.cfg.OutputFile, msgCheck)
	case engine.InCheckUnprotectable:
		move.CheckStatus = chess.Checkmate
		l.record.SetWinner(mover.Colour)
		out.Kind = Checkmate
		out.Colour = mover.Colour.Opposite()
		out.Winner = mover
		fmt.Fprintln(l.cfg.OutputFile, msgCheckmate)
	}
	return out, nil
}

// acquire asks mover's source until it yields a move the rule engine
// accepts. MaxAttempts bounds the number of rejected answers.
func (l *Loop) acquire(mover *chess.Player) (from, to chess.Square, err error) {
	src := l.sources[mover.Colour]
	if src == nil {
		err = fmt.Errorf("no move source for %s: %w", mover.Colour, errors.ErrInvalidConfig)
		return from, to, l.moveError(err, mover, l.plies+1)
	}

	for attempt := 1; ; attempt++ {
		from, to, err = src.NextMove(l.state, mover)
		switch {
		case errors.Is(err, errors.ErrInvalidMoveInput):
			fmt.Fprintln(l.cfg.OutputFile, msgInvalidInput)
			l.cfg.Logf(2, "[%s] %s: %v", l.state.ID, mover, err)
		case err != nil:
			return from, to, l.moveError(err, mover, l.plies+1)
		default:
			rejected := l.state.CheckMove(from, to, mover)
			if rejected == nil {
				return from, to, nil
			}
			fmt.Fprintln(l.cfg.OutputFile, msgInvalidMove)
			l.cfg.Logf(2, "[%s] %s: %v", l.state.ID, mover, rejected)
		}

		if l.cfg.MaxAttempts > 0 && attempt >= l.cfg.MaxAttempts {
			return from, to, l.moveError(errors.ErrTooManyAttempts, mover, l.plies+1)
		}
	}
}

func (l *Loop) render() error {
	if l.renderer == nil {
		return nil
	}
	return l.renderer.Render(l.cfg.OutputFile, l.state.Board)
}

func (l *Loop) outcome() Outcome {
	return Outcome{Kind: Ongoing, Plies: l.plies, GameID: l.state.ID}
}

// moveError attaches turn context to err. squares, when given, are the
// origin and destination of the move being played.
func (l *Loop) moveError(err error, mover *chess.Player, ply int, squares ...chess.Square) error {
	me := &errors.MoveError{Err: err, Player: mover.String(), PlyNum: ply}
	if len(squares) == 2 {
		me.From, me.To = squares[0].String(), squares[1].String()
	}
	return me
}
