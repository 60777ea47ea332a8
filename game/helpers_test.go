package game

import (
	"io"
	"strings"
)

// scriptedRand replays fixed values; it panics when the script runs out so
// tests notice an unexpected extra draw.
type scriptedRand struct {
	values []int
	next   int
}

func (r *scriptedRand) Intn(n int) int {
	if r.next >= len(r.values) {
		panic("scripted rand exhausted")
	}
	v := r.values[r.next]
	r.next++
	if v >= n {
		panic("scripted value out of range")
	}
	return v
}

type zeroRand struct{}

func (zeroRand) Intn(int) int { return 0 }

type lineReader struct {
	lines []string
}

func (r *lineReader) ReadLine() (string, error) {
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

type recorder struct {
	strings.Builder
}

func (r *recorder) Print(text string)   { r.WriteString(text) }
func (r *recorder) Println(text string) { r.WriteString(text + "\n") }
func (r *recorder) Newline()            { r.WriteString("\n") }

// scriptedFleet places a Destroyer on B1-B2 and a Cruiser on D5-F5.
func scriptedFleet() ([]*Ship, *scriptedRand) {
	ships := []*Ship{NewShip("Destroyer", 2), NewShip("Cruiser", 3)}
	rng := &scriptedRand{values: []int{
		0, 1, 0, // horizontal, row B, col 1
		1, 3, 4, // vertical, row D, col 5
	}}
	return ships, rng
}
