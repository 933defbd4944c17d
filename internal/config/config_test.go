package config

import (
	"bytes"
	"errors"
	"testing"

	pkgerrors "github.com/lgbarn/zonechess-go/internal/errors"
)

// TestConfig_Defaults verifies NewConfig has sensible defaults
func TestConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d, want 1", cfg.Verbosity)
	}
	if cfg.WhitePlayer != Human || cfg.BlackPlayer != Human {
		t.Errorf("players = %v, %v, want human, human", cfg.WhitePlayer, cfg.BlackPlayer)
	}
	if cfg.Format != TextFormat {
		t.Errorf("Format = %v, want %v", cfg.Format, TextFormat)
	}
	if cfg.MaxAttempts != 0 {
		t.Errorf("MaxAttempts = %d, want 0 (unbounded)", cfg.MaxAttempts)
	}
	if cfg.StartFEN != "" {
		t.Errorf("StartFEN = %q, want empty", cfg.StartFEN)
	}
	if cfg.OutputFile == nil || cfg.LogFile == nil {
		t.Error("output and log writers should default to stdout and stderr")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v, want nil", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"computer players", func(c *Config) { c.WhitePlayer, c.BlackPlayer = Computer, Computer }, false},
		{"fen format", func(c *Config) { c.Format = FENFormat }, false},
		{"unknown player kind", func(c *Config) { c.BlackPlayer = "robot" }, true},
		{"unknown format", func(c *Config) { c.Format = "ascii-art" }, true},
		{"negative attempts", func(c *Config) { c.MaxAttempts = -1 }, true},
		{"negative plies", func(c *Config) { c.MaxPlies = -5 }, true},
		{"negative verbosity", func(c *Config) { c.Verbosity = -1 }, true},
		{"nil output", func(c *Config) { c.OutputFile = nil }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, pkgerrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestKindForName(t *testing.T) {
	tests := []struct {
		name string
		want PlayerKind
	}{
		{"computer", Computer},
		{"Computer", Computer},
		{" COMPUTER ", Computer},
		{"ned", Human},
		{"computers", Human},
		{"", Human},
	}
	for _, tt := range tests {
		if got := KindForName(tt.name); got != tt.want {
			t.Errorf("KindForName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestConfigBuilder(t *testing.T) {
	var out, log bytes.Buffer
	cfg := NewConfigBuilder().
		WithPlayers("ned", "computer").
		WithStartFEN("7k/8/8/8/8/8/8/K7").
		WithFormat(DiagramFormat).
		WithJSONRecord(true).
		WithMaxAttempts(3).
		WithMaxPlies(40).
		WithSeed(7).
		WithVerbosity(2).
		WithOutputFile(&out).
		WithLogFile(&log).
		Build()

	if cfg.WhiteName != "ned" || cfg.BlackName != "computer" {
		t.Errorf("names = %q, %q", cfg.WhiteName, cfg.BlackName)
	}
	if cfg.WhitePlayer != Human || cfg.BlackPlayer != Computer {
		t.Errorf("kinds = %v, %v, want human, computer", cfg.WhitePlayer, cfg.BlackPlayer)
	}
	if cfg.StartFEN != "7k/8/8/8/8/8/8/K7" || cfg.Format != DiagramFormat || !cfg.JSONRecord {
		t.Errorf("board settings = %q, %v, %v", cfg.StartFEN, cfg.Format, cfg.JSONRecord)
	}
	if cfg.MaxAttempts != 3 || cfg.MaxPlies != 40 || cfg.Seed != 7 || cfg.Verbosity != 2 {
		t.Errorf("limits = %d, %d, %d, %d", cfg.MaxAttempts, cfg.MaxPlies, cfg.Seed, cfg.Verbosity)
	}
	if cfg.OutputFile != &out || cfg.LogFile != &log {
		t.Error("writers not set by builder")
	}

	cfg = NewConfigBuilder().WithPlayers("a", "b").WithPlayerKinds(Computer, Computer).Build()
	if cfg.WhitePlayer != Computer || cfg.BlackPlayer != Computer {
		t.Errorf("WithPlayerKinds did not override kinds: %v, %v", cfg.WhitePlayer, cfg.BlackPlayer)
	}
}

func TestConfig_Logf(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfigBuilder().WithLogFile(&buf).WithVerbosity(1).Build()

	cfg.Logf(1, "game %s started", "abc")
	cfg.Logf(2, "hidden commentary")

	if got, want := buf.String(), "game abc started\n"; got != want {
		t.Errorf("log = %q, want %q", got, want)
	}
}
