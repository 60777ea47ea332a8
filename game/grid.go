package game

import "strconv"

// Cell symbols.
const (
	Unshot = "."
	Hit    = "X"
	Miss   = "-"

	corner = "  "
	hidden = " "
)

// Grid is a (size+1) x (size+1) matrix of cell symbols. Row 0 and column 0
// hold the axis labels.
type Grid [][]string

// NewGrid builds a labelled grid with every playable cell unshot.
func NewGrid(size int) Grid {
	grid := make(Grid, size+1)
	for row := range grid {
		grid[row] = make([]string, size+1)
		for col := range grid[row] {
			switch {
			case row == 0 && col == 0:
				grid[row][col] = corner
			case row == 0:
				grid[row][col] = strconv.Itoa(col)
			case col == 0:
				grid[row][col] = Encode(row, 0)[:1] + " "
			default:
				grid[row][col] = Unshot
			}
		}
	}
	return grid
}

// Size returns the playable dimension.
func (g Grid) Size() int {
	return len(g) - 1
}

func (g Grid) At(c Coord) string {
	return g[c.Row][c.Col]
}

func (g Grid) set(c Coord, symbol string) {
	g[c.Row][c.Col] = symbol
}

// NormalView returns the rows of the grid as the player sees them: labels
// and shot outcomes only.
func NormalView(g Grid) [][]string {
	view := make([][]string, len(g))
	for row := range g {
		view[row] = make([]string, len(g[row]))
		copy(view[row], g[row])
	}
	return view
}

// RevealView returns a same-sized view where every occupied cell is marked
// with the hit symbol, headers are kept and everything else is blank.
func RevealView(g Grid, occupied []Coord) [][]string {
	ships := make(map[Coord]struct{}, len(occupied))
	for _, c := range occupied {
		ships[c] = struct{}{}
	}

	view := make([][]string, len(g))
	for row := range g {
		view[row] = make([]string, len(g[row]))
		for col := range g[row] {
			c := Coord{Row: row, Col: col}
			if _, ok := ships[c]; ok {
				view[row][col] = Hit
			} else if row == 0 || col == 0 {
				view[row][col] = g[row][col]
			} else {
				view[row][col] = hidden
			}
		}
	}
	return view
}
