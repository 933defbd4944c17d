// Package config provides configuration for a zonechess session.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/zonechess-go/internal/errors"
)

// PlayerKind selects where a side's moves come from.
type PlayerKind string

const (
	Human    PlayerKind = "human"
	Computer PlayerKind = "computer"
)

// Format selects how the board is printed between turns.
type Format string

const (
	TextFormat    Format = "text"    // Bordered grid with Unicode pieces
	DiagramFormat Format = "diagram" // Compact diagram with file letters
	FENFormat     Format = "fen"     // FEN piece placement
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=game start and result, 2=running commentary

	// Players
	WhiteName   string
	BlackName   string
	WhitePlayer PlayerKind
	BlackPlayer PlayerKind

	// Move acquisition
	MaxAttempts int // Attempts per turn before giving up (0 = unbounded)
	MaxPlies    int // Stop an unfinished game after this many plies (0 = no limit)
	Seed        uint64

	// Board
	StartFEN string // Custom starting placement (empty = standard layout)
	Format   Format

	// Write the game record as JSON when the game ends
	JSONRecord bool

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:   1,
		WhiteName:   "White",
		BlackName:   "Black",
		WhitePlayer: Human,
		BlackPlayer: Human,
		Format:      TextFormat,
		OutputFile:  os.Stdout,
		LogFile:     os.Stderr,
	}
}

// KindForName infers the player kind from a name the way the prompt does:
// "computer" in any case selects the automated player.
func KindForName(name string) PlayerKind {
	if strings.EqualFold(strings.TrimSpace(name), string(Computer)) {
		return Computer
	}
	return Human
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	for _, kind := range []PlayerKind{c.WhitePlayer, c.BlackPlayer} {
		if kind != Human && kind != Computer {
			return fmt.Errorf("unknown player kind %q: %w", kind, errors.ErrInvalidConfig)
		}
	}
	switch c.Format {
	case TextFormat, DiagramFormat, FENFormat:
	default:
		return fmt.Errorf("unknown board format %q: %w", c.Format, errors.ErrInvalidConfig)
	}
	if c.MaxAttempts < 0 {
		return fmt.Errorf("max attempts (%d) < 0: %w", c.MaxAttempts, errors.ErrInvalidConfig)
	}
	if c.MaxPlies < 0 {
		return fmt.Errorf("max plies (%d) < 0: %w", c.MaxPlies, errors.ErrInvalidConfig)
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity (%d) < 0: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.OutputFile == nil || c.LogFile == nil {
		return fmt.Errorf("output and log writers are required: %w", errors.ErrInvalidConfig)
	}
	return nil
}

// Logf writes a diagnostic line to the log when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbosity < level || c.LogFile == nil {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
