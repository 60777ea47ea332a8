// Package config loads game settings from an optional .env file, the
// environment and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const envFileVar = "BATTLESHIP_ENV_FILE"

var logLevels = []string{"debug", "info", "warn", "error"}

type Config struct {
	Seed     int64    `env:"BATTLESHIP_SEED" envDefault:"0"`
	Fleet    []string `env:"BATTLESHIP_FLEET" envSeparator:"," envDefault:"Battleship:5,Destroyer:4,Destroyer:4"`
	GUI      bool     `env:"BATTLESHIP_GUI" envDefault:"false"`
	Autoplay bool     `env:"BATTLESHIP_AUTOPLAY" envDefault:"false"`
	LogLevel string   `env:"BATTLESHIP_LOG_LEVEL" envDefault:"warn"`
	LogFile  string   `env:"BATTLESHIP_LOG_FILE"`
}

// LoadEnvFile loads path into the environment without overriding variables
// that are already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// ParseConfig parses the .env file, the environment and then args into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	envFile := os.Getenv(envFileVar)
	if envFile == "" {
		envFile = ".env"
	}
	if err := LoadEnvFile(envFile); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fleet := strings.Join(cfg.Fleet, ",")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for ship placement (0 picks a random seed)")
	fs.StringVar(&fleet, "fleet", fleet, "Comma separated fleet, e.g. Battleship:5,Destroyer:4")
	fs.BoolVar(&cfg.GUI, "gui", cfg.GUI, "Play in the terminal GUI")
	fs.BoolVar(&cfg.Autoplay, "autoplay", cfg.Autoplay, "Let the bot play the game")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Write logs to this file instead of stderr")
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.Fleet = strings.Split(fleet, ",")

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	known := false
	for _, l := range logLevels {
		if strings.EqualFold(c.LogLevel, l) {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown log level %q, expected one of %s", c.LogLevel, strings.Join(logLevels, ", "))
	}
	if c.GUI && c.Autoplay {
		return errors.New("gui and autoplay cannot be combined")
	}
	return nil
}
