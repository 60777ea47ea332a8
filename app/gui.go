package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	gui "github.com/grupawp/warships-gui/v2"
	"github.com/mitchellh/go-wordwrap"
	"github.com/wojtekolesinski/battleship-cli/game"
)

const guiShutdownGrace = time.Second

// ui drives a game through the terminal GUI. Clicking a board cell is the
// input line; status lines land in the info text.
type ui struct {
	ctx       context.Context
	gui       *gui.GUI
	board     *gui.Board
	infoText  *gui.Text
	exitText  *gui.Text
	statsInfo *gui.Text
	game      *game.Game
}

func newUi(ctx context.Context) *ui {
	g := gui.NewGUI(true)
	board := gui.NewBoard(2, 6, nil)
	exitText := gui.NewText(2, 2, "Press Ctrl+C to exit", nil)
	infoText := gui.NewText(2, 4, "Pick a cell to fire", nil)
	statsInfo := gui.NewText(50, 8, "0.00%", &gui.TextConfig{FgColor: gui.White, BgColor: gui.Black})

	g.Draw(board)
	g.Draw(exitText)
	g.Draw(infoText)
	g.Draw(statsInfo)
	g.Draw(gui.NewText(48, 7, "Accuracy:", nil))

	return &ui{
		ctx:       ctx,
		gui:       g,
		board:     board,
		infoText:  infoText,
		exitText:  exitText,
		statsInfo: statsInfo,
	}
}

func (u *ui) renderFleet(names []string) {
	text := "Fleet: " + strings.Join(names, ", ")
	for i, f := range splitLines(wordwrap.WrapString(text, 40)) {
		u.gui.Draw(gui.NewText(48, 12+i, f, nil))
	}
}

// ReadLine redraws the board and blocks until a cell is clicked.
func (u *ui) ReadLine() (string, error) {
	u.refresh()
	coord := u.board.Listen(u.ctx)
	if err := u.ctx.Err(); err != nil {
		return "", err
	}
	return coord, nil
}

// The board is drawn from cell states, so text fragments are dropped.
func (u *ui) Print(string) {}
func (u *ui) Newline()     {}

func (u *ui) Println(text string) {
	u.setInfoText(text)
}

func (u *ui) setInfoText(text string) {
	u.infoText.SetText(text)
}

func (u *ui) refresh() {
	var states [10][10]gui.State
	for row := 1; row <= u.game.Size(); row++ {
		for col := 1; col <= u.game.Size(); col++ {
			switch u.game.Cell(game.Coord{Row: row, Col: col}) {
			case game.Hit:
				states[row-1][col-1] = gui.Hit
			case game.Miss:
				states[row-1][col-1] = gui.Miss
			default:
				states[row-1][col-1] = gui.Empty
			}
		}
	}
	u.board.SetStates(states)
	u.updateAccuracy(u.game.Stats().Accuracy())
}

func (u *ui) renderGameResult(st game.Stats) {
	u.refresh()
	u.infoText.SetBgColor(gui.Green)
	u.infoText.SetFgColor(gui.White)
	u.setInfoText(fmt.Sprintf("You win in %d shots", st.Shots))
}

func (u *ui) updateAccuracy(accuracy float64) {
	u.statsInfo.SetText(fmt.Sprintf("%.2f%%", accuracy))
}

func (a *App) runGUI(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	u := newUi(ctx)
	g, err := a.newGame(u, u)
	if err != nil {
		return err
	}
	u.game = g

	names := make([]string, len(a.fleet))
	for i, c := range a.fleet {
		names[i] = c.String()
	}
	u.renderFleet(names)

	errc := make(chan error, 1)
	go func() {
		err := g.Play()
		if err == nil {
			u.renderGameResult(g.Stats())
			a.logSummary(g)
		}
		errc <- err
	}()

	u.gui.Start(ctx, nil)
	cancel()

	select {
	case err = <-errc:
	case <-time.After(guiShutdownGrace):
		a.logger.Debug("app [runGUI]", "msg", "game loop still waiting for input")
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("app.runGUI: %w", err)
	}
	return nil
}
