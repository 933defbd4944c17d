package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithPlayers sets both player names. A name of "computer" also selects
// the automated player for that side.
func (b *ConfigBuilder) WithPlayers(white, black string) *ConfigBuilder {
	b.cfg.WhiteName = white
	b.cfg.BlackName = black
	b.cfg.WhitePlayer = KindForName(white)
	b.cfg.BlackPlayer = KindForName(black)
	return b
}

// WithPlayerKinds overrides where each side's moves come from.
func (b *ConfigBuilder) WithPlayerKinds(white, black PlayerKind) *ConfigBuilder {
	b.cfg.WhitePlayer = white
	b.cfg.BlackPlayer = black
	return b
}

// WithStartFEN starts the game from a custom piece placement.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithFormat sets the board format.
func (b *ConfigBuilder) WithFormat(format Format) *ConfigBuilder {
	b.cfg.Format = format
	return b
}

// WithJSONRecord enables the JSON game record.
func (b *ConfigBuilder) WithJSONRecord(enabled bool) *ConfigBuilder {
	b.cfg.JSONRecord = enabled
	return b
}

// WithMaxAttempts bounds the re-prompt loop per turn.
func (b *ConfigBuilder) WithMaxAttempts(n int) *ConfigBuilder {
	b.cfg.MaxAttempts = n
	return b
}

// WithMaxPlies stops the game after n plies.
func (b *ConfigBuilder) WithMaxPlies(n int) *ConfigBuilder {
	b.cfg.MaxPlies = n
	return b
}

// WithSeed seeds the computer player.
func (b *ConfigBuilder) WithSeed(seed uint64) *ConfigBuilder {
	b.cfg.Seed = seed
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithOutputFile sets the output writer.
func (b *ConfigBuilder) WithOutputFile(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the log writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}
