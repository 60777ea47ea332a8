package app

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/wojtekolesinski/battleship-cli/config"
	"github.com/wojtekolesinski/battleship-cli/console"
	"github.com/wojtekolesinski/battleship-cli/game"
	"github.com/wojtekolesinski/battleship-cli/models"
)

type App struct {
	cfg     config.Config
	fleet   []models.ShipClass
	seed    int64
	rng     *rand.Rand
	in      io.Reader
	out     io.Writer
	logger  *log.Logger
	logFile *os.File
}

// New builds an App reading commands from in and writing the game to out.
// Logs go to logOut unless the config names a log file.
func New(cfg config.Config, in io.Reader, out, logOut io.Writer) (*App, error) {
	fleet, err := models.ParseFleet(cfg.Fleet)
	if err != nil {
		return nil, fmt.Errorf("app.New: %w", err)
	}

	a := &App{cfg: cfg, fleet: fleet, in: in, out: out}
	if cfg.LogFile != "" {
		f, err := openLogFile(cfg.LogFile)
		if err != nil {
			return nil, fmt.Errorf("app.New: open log file: %w", err)
		}
		a.logFile = f
		logOut = f
	} else if cfg.GUI {
		logOut = io.Discard
	}
	a.logger = newLogger(logOut, cfg.LogLevel)

	a.seed = cfg.Seed
	if a.seed == 0 {
		if a.seed, err = newSeed(); err != nil {
			a.Close()
			return nil, fmt.Errorf("app.New: %w", err)
		}
	}
	a.rng = rand.New(rand.NewSource(a.seed))
	a.logger.Info("app [New]", "seed", a.seed, "fleet", models.FormatFleet(fleet))
	return a, nil
}

func (a *App) Close() error {
	if a.logFile == nil {
		return nil
	}
	err := a.logFile.Close()
	a.logFile = nil
	return err
}

func (a *App) Run(ctx context.Context) error {
	switch {
	case a.cfg.GUI:
		return a.runGUI(ctx)
	case a.cfg.Autoplay:
		return a.runAutoplay()
	default:
		return a.runConsole()
	}
}

func (a *App) runConsole() error {
	reader := console.NewReader(a.in)
	writer := console.NewWriter(a.out)
	printIntro(writer, a.fleet)

	for {
		g, err := a.newGame(reader, writer)
		if err != nil {
			return err
		}
		if err := g.Play(); err != nil {
			return fmt.Errorf("app.runConsole: %w", err)
		}
		a.logSummary(g)

		again, err := promptPlayer(reader, writer, "Play again?")
		if errors.Is(err, io.EOF) {
			return writer.Err()
		}
		if err != nil {
			return fmt.Errorf("app.runConsole: %w", err)
		}
		if !again {
			return writer.Err()
		}
	}
}

func (a *App) runAutoplay() error {
	writer := console.NewWriter(a.out)
	b := newBot(a.fleet, writer)
	g, err := a.newGame(b, b)
	if err != nil {
		return err
	}
	b.view = g
	if err := g.Play(); err != nil {
		return fmt.Errorf("app.runAutoplay: %w", err)
	}
	a.logSummary(g)
	return writer.Err()
}

func (a *App) newGame(in game.Reader, out game.Writer) (*game.Game, error) {
	id := uuid.NewString()[:8]
	ships := make([]*game.Ship, len(a.fleet))
	for i, c := range a.fleet {
		ships[i] = game.NewShip(c.Name, c.Length)
	}

	g := game.New(ships, in, out,
		game.WithRand(a.rng),
		game.WithLogger(a.logger.With("game", id)),
	)
	if err := g.Setup(); err != nil {
		return nil, fmt.Errorf("app.newGame: %w", err)
	}
	a.logger.Debug("app [newGame]", "game", id)
	return g, nil
}

func (a *App) logSummary(g *game.Game) {
	st := g.Stats()
	a.logger.Info("app [logSummary]",
		"shots", st.Shots,
		"hits", st.Hits,
		"sunk", st.ShipsSunk,
		"accuracy", fmt.Sprintf("%.2f%%", st.Accuracy()),
	)
}

var openLogFile = func(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

var newSeed = func() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
