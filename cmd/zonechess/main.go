// zonechess is a two-player chess game for the terminal.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/lgbarn/zonechess-go/internal/chess"
	"github.com/lgbarn/zonechess-go/internal/config"
	"github.com/lgbarn/zonechess-go/internal/engine"
	"github.com/lgbarn/zonechess-go/internal/errors"
	"github.com/lgbarn/zonechess-go/internal/game"
	"github.com/lgbarn/zonechess-go/internal/input"
	"github.com/lgbarn/zonechess-go/internal/output"
	"github.com/lgbarn/zonechess-go/internal/render"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("zonechess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	setupLogFile(cfg)
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	in := bufio.NewReader(os.Stdin)
	fmt.Fprintln(cfg.OutputFile, "Welcome to zonechess!")
	if !namesFromFlags() {
		if err := askNames(cfg, in, *whitePlayer == "", *blackPlayer == ""); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if _, err := run(cfg, in); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run builds a session from cfg and plays it. Human moves are read from in.
func run(cfg *config.Config, in io.Reader) (game.Outcome, error) {
	loop, err := newLoop(cfg, in)
	if err != nil {
		return game.Outcome{}, err
	}

	out, err := loop.Run()
	if cfg.JSONRecord {
		if jerr := output.OutputGameJSON(cfg.OutputFile, loop.Record(), out.GameID.String(), loop.Board()); jerr != nil && err == nil {
			err = jerr
		}
	}
	return out, err
}

func newLoop(cfg *config.Config, in io.Reader) (*game.Loop, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	board := chess.NewStandardBoard()
	if cfg.StartFEN != "" {
		var err error
		if board, err = engine.NewBoardFromFEN(cfg.StartFEN); err != nil {
			return nil, errors.Wrap(err, "start position")
		}
	}

	r, err := render.New(cfg.Format)
	if err != nil {
		return nil, err
	}

	state := engine.NewGameState(board, cfg.WhiteName, cfg.BlackName)
	human := input.NewHumanSource(in, cfg.OutputFile)
	white := newSource(cfg, cfg.WhitePlayer, human, cfg.Seed)
	black := newSource(cfg, cfg.BlackPlayer, human, cfg.Seed+1)
	return game.NewLoop(cfg, state, white, black, r), nil
}

func newSource(cfg *config.Config, kind config.PlayerKind, human game.MoveSource, seed uint64) game.MoveSource {
	if kind == config.Computer {
		return input.NewComputerSource(seed, cfg.OutputFile)
	}
	return human
}

// askNames prompts for both player names. A blank answer keeps the
// default name; inferKind lets a name of "computer" pick the move source.
func askNames(cfg *config.Config, in *bufio.Reader, inferWhite, inferBlack bool) error {
	slots := []struct {
		prompt string
		name   *string
		kind   *config.PlayerKind
		infer  bool
	}{
		{"Enter name of Player 1 (white): ", &cfg.WhiteName, &cfg.WhitePlayer, inferWhite},
		{"Enter name of Player 2 (black): ", &cfg.BlackName, &cfg.BlackPlayer, inferBlack},
	}

	for _, s := range slots {
		fmt.Fprint(cfg.OutputFile, s.prompt)
		line, err := in.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return errors.Wrap(err, "reading player name")
		}
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		*s.name = name
		if s.infer {
			*s.kind = config.KindForName(name)
		}
	}
	return nil
}

// setupLogFile redirects diagnostics when -l is given.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: zonechess [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play chess in the terminal. Moves are typed as two squares, e.g. e2 e4.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nBoard formats (-format):\n")
	fmt.Fprintf(os.Stderr, "  text     Bordered grid with rank and file labels (default)\n")
	fmt.Fprintf(os.Stderr, "  diagram  Compact diagram\n")
	fmt.Fprintf(os.Stderr, "  fen      FEN piece placement\n")
}
