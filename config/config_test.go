package config

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("battleship", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Seed != 0 {
		t.Fatalf("expected seed 0, got %d", cfg.Seed)
	}
	if got := strings.Join(cfg.Fleet, ","); got != "Battleship:5,Destroyer:4,Destroyer:4" {
		t.Fatalf("unexpected default fleet %q", got)
	}
	if cfg.GUI || cfg.Autoplay {
		t.Fatal("expected console mode by default")
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("expected warn, got %q", cfg.LogLevel)
	}
}

func TestParseConfigEnvAndFlags(t *testing.T) {
	t.Setenv("BATTLESHIP_SEED", "42")
	t.Setenv("BATTLESHIP_FLEET", "Sub:3,Sub:3")
	t.Setenv("BATTLESHIP_LOG_LEVEL", "debug")

	fs := flag.NewFlagSet("battleship", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-seed", "7", "-autoplay"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Seed != 7 {
		t.Fatalf("expected flag seed 7, got %d", cfg.Seed)
	}
	if got := strings.Join(cfg.Fleet, ","); got != "Sub:3,Sub:3" {
		t.Fatalf("expected env fleet, got %q", got)
	}
	if !cfg.Autoplay {
		t.Fatal("expected autoplay from flag")
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected debug, got %q", cfg.LogLevel)
	}
}

func TestParseConfigEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.env")
	if err := os.WriteFile(path, []byte("BATTLESHIP_TEST_FROM_FILE=99\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("BATTLESHIP_TEST_FROM_FILE", "")
	os.Unsetenv("BATTLESHIP_TEST_FROM_FILE")

	if err := LoadEnvFile(path); err != nil {
		t.Fatalf("load env file: %v", err)
	}
	if got := os.Getenv("BATTLESHIP_TEST_FROM_FILE"); got != "99" {
		t.Fatalf("expected 99 from env file, got %q", got)
	}
	if err := LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("expected missing env file to be ignored, got %v", err)
	}
}

func TestParseConfigRejectsInvalid(t *testing.T) {
	t.Setenv("BATTLESHIP_SEED", "not-a-number")
	fs := flag.NewFlagSet("battleship", flag.ContinueOnError)
	if _, err := ParseConfig(fs, nil); err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	if err := (Config{LogLevel: "loud"}).Validate(); err == nil {
		t.Fatal("expected unknown log level error")
	}
	if err := (Config{LogLevel: "info", GUI: true, Autoplay: true}).Validate(); err == nil {
		t.Fatal("expected gui+autoplay error")
	}
	if err := (Config{LogLevel: "INFO"}).Validate(); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
}
