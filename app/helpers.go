package app

import (
	"fmt"
	"strings"

	"github.com/mitchellh/go-wordwrap"
	"github.com/wojtekolesinski/battleship-cli/game"
	"github.com/wojtekolesinski/battleship-cli/models"
)

const introWidth = 60

func printIntro(w game.Writer, fleet []models.ShipClass) {
	names := make([]string, len(fleet))
	for i, c := range fleet {
		names[i] = fmt.Sprintf("%s (%d)", c.Name, c.Length)
	}
	text := fmt.Sprintf(
		"Sink the hidden fleet on the %dx%d board: %s. "+
			"Call a shot with a row letter A-J and a column number 1-10, e.g. A5. "+
			"Type %s to peek at the ships still afloat.",
		game.BoardSize, game.BoardSize, strings.Join(names, ", "), game.RevealCommand,
	)
	for _, line := range splitLines(wordwrap.WrapString(text, introWidth)) {
		w.Println(line)
	}
	w.Newline()
}

// promptPlayer asks a yes/no question until it gets "y" or "n".
func promptPlayer(r game.Reader, w game.Writer, prompt string) (bool, error) {
	for {
		w.Print(fmt.Sprintf("%s (y/n): ", prompt))
		res, err := r.ReadLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(res)) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
	}
}

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}
