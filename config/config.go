// Package config loads the settings of the war runner from the environment
// and optional dotenv files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pterm/pterm"

	"github.com/luca-patrignani/war/domain/card"
)

var ErrInvalidConfig = errors.New("invalid config")

// DefaultFile is read when Load gets no file names.
const DefaultFile = ".env"

type Config struct {
	Games    int    `env:"WAR_GAMES" envDefault:"1"`
	Seed     uint64 `env:"WAR_SEED"`
	LogLevel string `env:"WAR_LOG_LEVEL" envDefault:"info"`
	Player1  string `env:"WAR_PLAYER1" envDefault:"Player 1"`
	Player2  string `env:"WAR_PLAYER2" envDefault:"Player 2"`
	// Stack is a comma separated card list dealt instead of a shuffled deck.
	Stack string `env:"WAR_STACK"`
}

// Load reads the given dotenv files, or DefaultFile when none is given, and
// parses the environment into a Config. Missing files are skipped. Variables
// already set in the environment win over the files.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{DefaultFile}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (c Config) Validate() error {
	if c.Games < 1 {
		return fmt.Errorf("%w: games must be at least 1, got %d", ErrInvalidConfig, c.Games)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if strings.TrimSpace(c.Player1) == "" || strings.TrimSpace(c.Player2) == "" {
		return fmt.Errorf("%w: player names must not be empty", ErrInvalidConfig)
	}
	if _, err := c.StackCards(); err != nil {
		return err
	}
	return nil
}

func (c Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
}

// PtermLevel maps LogLevel to the level of the pterm logger. Unknown
// levels map to info.
func (c Config) PtermLevel() pterm.LogLevel {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return pterm.LogLevelDebug
	case "warn":
		return pterm.LogLevelWarn
	case "error":
		return pterm.LogLevelError
	}
	return pterm.LogLevelInfo
}

// StackCards parses Stack. It returns nil when Stack is blank.
func (c Config) StackCards() ([]card.Card, error) {
	if strings.TrimSpace(c.Stack) == "" {
		return nil, nil
	}
	cards, err := card.ParseList(c.Stack)
	if err != nil {
		return nil, fmt.Errorf("%w: stack: %w", ErrInvalidConfig, err)
	}
	return cards, nil
}
