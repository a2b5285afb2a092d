package lab

import (
	"fmt"
	"strconv"
	"strings"
)

// Coordinate is a (row, column) cell address. Row grows downward.
type Coordinate struct {
	Row, Col int
}

// Translate offsets the coordinate by (dr, dc).
// Returns false if either index would become negative; the far edges are
// checked against map bounds by the caller.
func (c Coordinate) Translate(dr, dc int) (Coordinate, bool) {
	row, col := c.Row+dr, c.Col+dc
	if row < 0 || col < 0 {
		return Coordinate{}, false
	}
	return Coordinate{Row: row, Col: col}, true
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// ParseCoordinate reads the "row,col" form used on the command line
func ParseCoordinate(s string) (Coordinate, error) {
	rowStr, colStr, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return Coordinate{}, fmt.Errorf("coordinate %q: expected row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rowStr))
	if err != nil {
		return Coordinate{}, fmt.Errorf("coordinate %q: row: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(colStr))
	if err != nil {
		return Coordinate{}, fmt.Errorf("coordinate %q: col: %w", s, err)
	}
	if row < 0 || col < 0 {
		return Coordinate{}, fmt.Errorf("coordinate %q: negative index", s)
	}
	return Coordinate{Row: row, Col: col}, nil
}
