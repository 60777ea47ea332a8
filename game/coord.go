package game

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Alphabet maps row indices to row letters. Index 0 is a sentinel for the
// header row, so playable rows start at 1.
const Alphabet = "-ABCDEFGHIJ"

// BoardSize is the playable dimension of the board.
const BoardSize = len(Alphabet) - 1

var tokenPattern = regexp.MustCompile(`^[A-J]([1-9]|10)$`)

// Coord addresses one grid cell. Row and Col are 1-based for playable cells;
// row 0 and column 0 are the header cells.
type Coord struct {
	Row int
	Col int
}

// String encodes c as a location token, e.g. {2, 5} -> "B5".
func (c Coord) String() string {
	return Encode(c.Row, c.Col)
}

// InBounds reports whether c is a playable cell on a size x size board.
func (c Coord) InBounds(size int) bool {
	return c.Row >= 1 && c.Row <= size && c.Col >= 1 && c.Col <= size
}

// Encode returns the token for (row, col). It does not check bounds.
func Encode(row, col int) string {
	if row < 0 || row >= len(Alphabet) {
		return fmt.Sprintf("?%d", col)
	}
	return string(Alphabet[row]) + strconv.Itoa(col)
}

// Decode converts a token such as "a5" or "J10" into a Coord. Only the shape
// of the token is checked; bounds are left to the caller.
func Decode(token string) (Coord, error) {
	if len(token) < 2 {
		return Coord{}, fmt.Errorf("decode %q: token too short", token)
	}
	row := strings.IndexByte(Alphabet, upper(token[0]))
	if row <= 0 {
		return Coord{}, fmt.Errorf("decode %q: unknown row letter", token)
	}
	for i := 1; i < len(token); i++ {
		if token[i] < '0' || token[i] > '9' {
			return Coord{}, fmt.Errorf("decode %q: column must be digits", token)
		}
	}
	col, err := strconv.Atoi(token[1:])
	if err != nil {
		return Coord{}, fmt.Errorf("decode %q: %w", token, err)
	}
	return Coord{Row: row, Col: col}, nil
}

// ParseToken validates token against the shot grammar (one letter A-J and a
// number 1-10, case-insensitive) and decodes it.
func ParseToken(token string) (Coord, bool) {
	token = strings.ToUpper(token)
	if !tokenPattern.MatchString(token) {
		return Coord{}, false
	}
	c, err := Decode(token)
	if err != nil {
		return Coord{}, false
	}
	return c, true
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}
