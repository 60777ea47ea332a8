package game

// Ship is a fixed-length vessel occupying a straight run of cells once
// placed. Each cell is hit at most once; the ship is sunk when none remain.
type Ship struct {
	name      string
	length    int
	cells     []Coord
	hit       []bool
	remaining int
}

func NewShip(name string, length int) *Ship {
	return &Ship{name: name, length: length}
}

func (s *Ship) Name() string { return s.name }
func (s *Ship) Length() int  { return s.length }

// Cells returns every cell the ship was placed on, in placement order.
func (s *Ship) Cells() []Coord {
	out := make([]Coord, len(s.cells))
	copy(out, s.cells)
	return out
}

// Remaining returns the cells that have not been hit yet, in placement order.
func (s *Ship) Remaining() []Coord {
	out := make([]Coord, 0, s.remaining)
	for i, c := range s.cells {
		if !s.hit[i] {
			out = append(out, c)
		}
	}
	return out
}

// Occupies reports whether c is one of the ship's unhit cells.
func (s *Ship) Occupies(c Coord) bool {
	i := s.index(c)
	return i >= 0 && !s.hit[i]
}

// RegisterHit marks c as hit. It returns false, changing nothing, when c is
// not one of the ship's unhit cells.
func (s *Ship) RegisterHit(c Coord) bool {
	i := s.index(c)
	if i < 0 || s.hit[i] {
		return false
	}
	s.hit[i] = true
	s.remaining--
	return true
}

func (s *Ship) IsSunk() bool {
	return s.remaining == 0
}

func (s *Ship) place(cells []Coord) {
	s.cells = cells
	s.hit = make([]bool, len(cells))
	s.remaining = len(cells)
}

func (s *Ship) index(c Coord) int {
	for i, own := range s.cells {
		if own == c {
			return i
		}
	}
	return -1
}
