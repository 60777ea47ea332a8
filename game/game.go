package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// RevealCommand shows where the remaining ship cells are.
const RevealCommand = "SHOW"

const (
	Prompt         = "Enter coordinates (row, col), e.g. A5 = "
	MsgHit         = "Hit"
	MsgSunk        = "Sunk"
	MsgMiss        = "Miss"
	MsgBadInput    = "Incorrect input, try again!"
	summaryMessage = "Well done! You completed the game in %d shots"
)

type State int

const (
	StateSetup State = iota
	StatePlaying
	StateWon
)

func (s State) String() string {
	switch s {
	case StateSetup:
		return "setup"
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Outcome is the result of a single command.
type Outcome int

const (
	OutcomeRejected Outcome = iota
	OutcomeRevealed
	OutcomeRepeat
	OutcomeMiss
	OutcomeHit
	OutcomeSunk
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRejected:
		return "rejected"
	case OutcomeRevealed:
		return "revealed"
	case OutcomeRepeat:
		return "repeat"
	case OutcomeMiss:
		return "miss"
	case OutcomeHit:
		return "hit"
	case OutcomeSunk:
		return "sunk"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Stats summarises the shots taken so far.
type Stats struct {
	Shots      int
	Hits       int
	ShipsSunk  int
	ShipsTotal int
}

// Accuracy returns hits as a percentage of shots.
func (s Stats) Accuracy() float64 {
	if s.Shots == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Shots) * 100
}

type Option func(*Game)

// WithRand sets the random source used to place ships. Without it, New seeds
// a source from crypto/rand, so placements differ between games.
func WithRand(rng Rand) Option {
	return func(g *Game) { g.rng = rng }
}

func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// Game is a single-player round. It is not safe for concurrent use and
// cannot be restarted; build a new Game for every round.
type Game struct {
	state    State
	grid     Grid
	ships    []*Ship
	occupied map[Coord]*Ship
	shots    int
	hits     int

	rng    Rand
	in     Reader
	out    Writer
	logger *log.Logger
}

func New(ships []*Ship, in Reader, out Writer, opts ...Option) *Game {
	g := &Game{
		state:  StateSetup,
		ships:  ships,
		in:     in,
		out:    out,
		rng:    rand.New(rand.NewSource(randomSeed())),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Setup builds the empty board and places every ship.
func (g *Game) Setup() error {
	if g.state != StateSetup {
		return ErrAlreadySetUp
	}
	g.grid = NewGrid(BoardSize)
	if err := Place(g.rng, g.ships, BoardSize); err != nil {
		return fmt.Errorf("game.Setup: %w", err)
	}

	g.occupied = make(map[Coord]*Ship)
	for _, s := range g.ships {
		for _, c := range s.Cells() {
			g.occupied[c] = s
		}
		g.logger.Debug("game [Setup]", "ship", s.Name(), "cells", formatCoords(s.Cells()))
	}
	g.state = StatePlaying
	return nil
}

// Play runs the turn loop until every ship is sunk, then writes the summary.
// Input errors, including io.EOF, end the loop and are returned.
func (g *Game) Play() error {
	switch g.state {
	case StateSetup:
		return ErrNotSetUp
	case StateWon:
		return ErrGameOver
	}

	g.render(NormalView(g.grid))
	for g.state == StatePlaying {
		if g.won() {
			g.state = StateWon
			break
		}
		g.out.Print(Prompt)
		line, err := g.in.ReadLine()
		if err != nil {
			return fmt.Errorf("game.Play: read command: %w", err)
		}
		outcome, err := g.Turn(line)
		if err != nil {
			return fmt.Errorf("game.Play: %w", err)
		}
		if outcome.accepted() {
			g.render(NormalView(g.grid))
		}
	}

	g.logger.Info("game [Play]", "shots", g.shots, "accuracy", fmt.Sprintf("%.2f%%", g.Stats().Accuracy()))
	g.out.Println(fmt.Sprintf(summaryMessage, g.shots))
	return nil
}

// Turn applies one command and writes its feedback. It does not render the
// board; Play does that after accepted shots.
func (g *Game) Turn(command string) (Outcome, error) {
	switch g.state {
	case StateSetup:
		return OutcomeRejected, ErrNotSetUp
	case StateWon:
		return OutcomeRejected, ErrGameOver
	}

	command = strings.ToUpper(strings.TrimSpace(command))
	if command == RevealCommand {
		g.logger.Debug("game [Turn]", "command", command)
		g.out.Newline()
		g.render(RevealView(g.grid, g.Remaining()))
		return OutcomeRevealed, nil
	}

	c, ok := ParseToken(command)
	if !ok {
		g.logger.Debug("game [Turn]", "command", command, "outcome", OutcomeRejected)
		g.out.Println(MsgBadInput)
		return OutcomeRejected, nil
	}

	// Repeat guesses are absorbed without feedback and do not count as shots.
	if g.grid.At(c) != Unshot {
		g.logger.Debug("game [Turn]", "coord", c, "outcome", OutcomeRepeat)
		return OutcomeRepeat, nil
	}

	g.shots++
	outcome, err := g.resolve(c)
	if err != nil {
		return outcome, err
	}
	g.logger.Debug("game [Turn]", "coord", c, "outcome", outcome, "shots", g.shots)
	return outcome, nil
}

func (g *Game) resolve(c Coord) (Outcome, error) {
	ship, ok := g.occupied[c]
	if !ok {
		g.grid.set(c, Miss)
		g.out.Println(MsgMiss)
		return OutcomeMiss, nil
	}
	if !ship.RegisterHit(c) {
		return OutcomeRejected, fmt.Errorf("%w: %s is indexed to %s but the ship does not claim it", ErrOccupancy, c, ship.Name())
	}
	delete(g.occupied, c)
	g.hits++
	g.grid.set(c, Hit)

	if ship.IsSunk() {
		g.out.Println(MsgSunk)
		if g.won() {
			g.state = StateWon
		}
		return OutcomeSunk, nil
	}
	g.out.Println(MsgHit)
	return OutcomeHit, nil
}

func (g *Game) won() bool {
	return len(g.Remaining()) == 0
}

func (g *Game) render(view [][]string) {
	for _, row := range view {
		for _, cell := range row {
			g.out.Print(cell)
		}
		g.out.Newline()
	}
}

func (g *Game) State() State { return g.state }

// Shots returns the number of accepted shots.
func (g *Game) Shots() int { return g.shots }

// Cell returns the symbol at c. Cells off the board read as empty.
func (g *Game) Cell(c Coord) string {
	if !c.InBounds(BoardSize) {
		return ""
	}
	if g.grid == nil {
		return Unshot
	}
	return g.grid.At(c)
}

// Size returns the playable board dimension.
func (g *Game) Size() int { return BoardSize }

func (g *Game) Ships() []*Ship { return g.ships }

// Remaining returns every unhit ship cell across the fleet.
func (g *Game) Remaining() []Coord {
	var out []Coord
	for _, s := range g.ships {
		out = append(out, s.Remaining()...)
	}
	return out
}

func (g *Game) Stats() Stats {
	st := Stats{Shots: g.shots, Hits: g.hits, ShipsTotal: len(g.ships)}
	for _, s := range g.ships {
		if s.IsSunk() {
			st.ShipsSunk++
		}
	}
	return st
}

func (o Outcome) accepted() bool {
	return o == OutcomeMiss || o == OutcomeHit || o == OutcomeSunk
}

func formatCoords(cells []Coord) string {
	tokens := make([]string, len(cells))
	for i, c := range cells {
		tokens[i] = c.String()
	}
	return strings.Join(tokens, ",")
}

func randomSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}
