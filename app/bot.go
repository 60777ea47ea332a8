package app

import (
	"errors"

	"github.com/wojtekolesinski/battleship-cli/game"
	"github.com/wojtekolesinski/battleship-cli/models"
)

var errNoTarget = errors.New("bot: no unshot cell left")

type boardView interface {
	Size() int
	Cell(game.Coord) string
}

var directions = []game.Coord{
	{Row: 0, Col: 1},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: -1, Col: 0},
}

// bot plays in place of a human: it reads the board to pick shots and
// listens to the engine's feedback to follow up on hits. It satisfies both
// game.Reader and game.Writer and forwards all output to out.
type bot struct {
	view    boardView
	out     game.Writer
	lengths []int
	targets []game.Coord
	last    game.Coord
}

func newBot(fleet []models.ShipClass, out game.Writer) *bot {
	lengths := make([]int, len(fleet))
	for i, c := range fleet {
		lengths[i] = c.Length
	}
	return &bot{out: out, lengths: lengths}
}

func (b *bot) ReadLine() (string, error) {
	c, ok := b.recommend()
	if !ok {
		return "", errNoTarget
	}
	b.last = c
	b.out.Println(c.String())
	return c.String(), nil
}

func (b *bot) Print(text string) { b.out.Print(text) }
func (b *bot) Newline()          { b.out.Newline() }

func (b *bot) Println(text string) {
	switch text {
	case game.MsgHit:
		b.hit(b.last)
	case game.MsgSunk:
		b.sunk()
	}
	b.out.Println(text)
}

func (b *bot) recommend() (game.Coord, bool) {
	for len(b.targets) > 0 {
		rec := b.targets[0]
		b.targets = b.targets[1:]
		if b.view.Cell(rec) == game.Unshot {
			return rec, true
		}
	}

	probs := b.generateProbs()
	var best game.Coord
	top := 0
	for c, p := range probs {
		if p > top || (p == top && p > 0 && less(c, best)) {
			top = p
			best = c
		}
	}
	if top > 0 {
		return best, true
	}

	size := b.view.Size()
	for row := 1; row <= size; row++ {
		for col := 1; col <= size; col++ {
			c := game.Coord{Row: row, Col: col}
			if b.view.Cell(c) == game.Unshot {
				return c, true
			}
		}
	}
	return game.Coord{}, false
}

func (b *bot) hit(c game.Coord) {
	size := b.view.Size()
	for _, d := range directions {
		n := game.Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
		if n.InBounds(size) && b.view.Cell(n) == game.Unshot {
			b.targets = append(b.targets, n)
		}
	}
}

func (b *bot) sunk() {
	b.targets = nil
}

// generateProbs counts, for every unshot cell, how many straight placements
// of each fleet length would cover it.
func (b *bot) generateProbs() map[game.Coord]int {
	size := b.view.Size()
	probs := make(map[game.Coord]int)
	for _, length := range b.lengths {
		for row := 1; row <= size; row++ {
			for col := 1; col <= size; col++ {
				start := game.Coord{Row: row, Col: col}
				for _, d := range directions[:2] {
					if !b.fits(start, d, length) {
						continue
					}
					for i := 0; i < length; i++ {
						probs[game.Coord{Row: row + d.Row*i, Col: col + d.Col*i}]++
					}
				}
			}
		}
	}
	return probs
}

func (b *bot) fits(start, d game.Coord, length int) bool {
	size := b.view.Size()
	for i := 0; i < length; i++ {
		c := game.Coord{Row: start.Row + d.Row*i, Col: start.Col + d.Col*i}
		if !c.InBounds(size) || b.view.Cell(c) != game.Unshot {
			return false
		}
	}
	return true
}

func less(a, b game.Coord) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}
