// Package errors provides sentinel errors and error types for the zonechess engine.
// It defines the failure conditions of a game session and structured error types
// that preserve context while allowing inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidMoveInput indicates move text that is not two squares a1..h8.
	ErrInvalidMoveInput = errors.New("invalid move input")

	// ErrIllegalMove indicates a well-formed move that violates ownership or movement rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvariantViolation indicates a corrupted board, such as a missing king
	// or a piece whose position disagrees with its square.
	ErrInvariantViolation = errors.New("board invariant violated")

	// ErrInvalidFEN indicates a malformed FEN piece placement.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrTooManyAttempts indicates a move source exhausted its retry budget.
	ErrTooManyAttempts = errors.New("too many invalid move attempts")

	// ErrNoMoves indicates an automated move source found nothing to play.
	ErrNoMoves = errors.New("no moves available")
)

// MoveError wraps errors with turn context: which side was moving, the ply
// number and the squares involved. It supports errors.Is() and errors.As()
// through Unwrap.
type MoveError struct {
	Err    error  // The underlying error
	Player string // Name or colour of the moving side
	PlyNum int    // 1-based ply number (0 if not applicable)
	From   string // Origin square text (if known)
	To     string // Destination square text (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Player != "" {
		parts = append(parts, e.Player)
	}
	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}
	if e.From != "" && e.To != "" {
		parts = append(parts, fmt.Sprintf("move %s-%s", e.From, e.To))
	}

	context := strings.Join(parts, ", ")
	switch {
	case e.Err != nil && context != "":
		return fmt.Sprintf("%s: %v", context, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case context != "":
		return context
	}
	return "move error"
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a failure to read move or board text.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The offending text
	Column   int    // 1-based position in Input (0 if unknown)
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Input != "" {
		loc := fmt.Sprintf("%q", e.Input)
		if e.Column > 0 {
			loc += fmt.Sprintf(" at column %d", e.Column)
		}
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target.
// It forwards to the standard library so callers importing this package
// under the name errors keep the usual helpers.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
