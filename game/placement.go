package game

import "fmt"

// MaxPlacementAttempts caps the generate-and-test loop for a single ship.
const MaxPlacementAttempts = 10000

// Rand is the random source used for placement. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Place assigns every ship a random horizontal or vertical run of cells on a
// size x size board, in slice order, so that no two ships overlap. Ships
// placed earlier constrain ships placed later.
func Place(rng Rand, ships []*Ship, size int) error {
	for _, s := range ships {
		if s.length < 1 {
			return fmt.Errorf("%w: %s has length %d", ErrInvalidShip, s.name, s.length)
		}
		if s.length > size {
			return fmt.Errorf("%w: %s has length %d on a %dx%d board", ErrShipTooLong, s.name, s.length, size, size)
		}
		s.place(nil)
	}

	for _, s := range ships {
		placed := false
		for attempt := 0; attempt < MaxPlacementAttempts; attempt++ {
			cells := randomRun(rng, s.length, size)
			if collides(cells, ships, s) {
				continue
			}
			s.place(cells)
			placed = true
			break
		}
		if !placed {
			return fmt.Errorf("%w: %s after %d attempts", ErrPlacementExhausted, s.name, MaxPlacementAttempts)
		}
	}
	return nil
}

// randomRun draws an orientation, then the anchor row, then the anchor column.
func randomRun(rng Rand, length, size int) []Coord {
	horizontal := rng.Intn(2) == 0

	var row, col int
	if horizontal {
		row = 1 + rng.Intn(size)
		col = 1 + rng.Intn(size-length+1)
	} else {
		row = 1 + rng.Intn(size-length+1)
		col = 1 + rng.Intn(size)
	}

	cells := make([]Coord, length)
	for i := range cells {
		if horizontal {
			cells[i] = Coord{Row: row, Col: col + i}
		} else {
			cells[i] = Coord{Row: row + i, Col: col}
		}
	}
	return cells
}

func collides(cells []Coord, ships []*Ship, self *Ship) bool {
	for _, other := range ships {
		if other == self {
			continue
		}
		for _, c := range cells {
			if other.index(c) >= 0 {
				return true
			}
		}
	}
	return false
}
