// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/zonechess-go/internal/config"
)

var (
	// Players
	whiteName   = flag.String("white", "", "Name of the White player (prompted when both names are empty)")
	blackName   = flag.String("black", "", "Name of the Black player (prompted when both names are empty)")
	whitePlayer = flag.String("white-player", "", "White move source: human, computer (default: from name)")
	blackPlayer = flag.String("black-player", "", "Black move source: human, computer (default: from name)")

	// Board
	startFEN    = flag.String("fen", "", "Start from this FEN piece placement instead of the standard layout")
	boardFormat = flag.String("format", "text", "Board format: text, diagram, fen")
	jsonRecord  = flag.Bool("J", false, "Print the game record as JSON when the game ends")

	// Limits
	maxAttempts = flag.Int("attempts", 0, "Rejected moves allowed per turn before giving up (0 = no limit)")
	maxPly      = flag.Int("maxply", 0, "Stop the game after N plies (0 = no limit)")
	seed        = flag.Uint64("seed", 0, "Seed for computer players (0 = time based)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to this file (default: stderr)")
	verbosity = flag.Int("v", 1, "Verbosity: 0 silent, 1 start and result, 2 every ply")
	quiet     = flag.Bool("q", false, "Quiet mode (same as -v 0)")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies flag values into cfg.
func applyFlags(cfg *config.Config) {
	applyPlayerFlags(cfg)

	cfg.StartFEN = strings.TrimSpace(*startFEN)
	cfg.Format = config.Format(strings.ToLower(*boardFormat))
	cfg.JSONRecord = *jsonRecord
	cfg.MaxAttempts = *maxAttempts
	cfg.MaxPlies = *maxPly
	cfg.Seed = *seed

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
}

// applyPlayerFlags sets names and move sources. An unset source follows
// the name, so a player called "computer" is automated.
func applyPlayerFlags(cfg *config.Config) {
	if *whiteName != "" {
		cfg.WhiteName = *whiteName
	}
	if *blackName != "" {
		cfg.BlackName = *blackName
	}
	cfg.WhitePlayer = playerKind(*whitePlayer, cfg.WhiteName)
	cfg.BlackPlayer = playerKind(*blackPlayer, cfg.BlackName)
}

func playerKind(flagValue, name string) config.PlayerKind {
	if flagValue == "" {
		return config.KindForName(name)
	}
	return config.PlayerKind(strings.ToLower(flagValue))
}

// namesFromFlags reports whether either player name was given on the
// command line.
func namesFromFlags() bool {
	return *whiteName != "" || *blackName != ""
}
