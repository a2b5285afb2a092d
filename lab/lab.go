// Package lab holds the guard lab: an immutable tile map and the guard's
// starting cell, parsed once from puzzle text.
package lab

import (
	"fmt"
	"strings"
)

// Lab is a map plus the guard's starting state. Read-only after construction.
type Lab struct {
	Map
	start  Coordinate
	facing Direction
}

// New builds a lab from rows of tiles. All rows must share one width and
// start must be a Ground cell inside the grid.
func New(rows [][]Tile, start Coordinate) (*Lab, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, &ParseError{Reason: "empty map"}
	}

	height, width := len(rows), len(rows[0])
	tiles := make([]Tile, 0, height*width)
	for i, row := range rows {
		if len(row) != width {
			return nil, &ParseError{
				Line:   i + 1,
				Reason: fmt.Sprintf("row has %d tiles, expected %d", len(row), width),
			}
		}
		tiles = append(tiles, row...)
	}

	l := &Lab{
		Map:    Map{height: height, width: width, tiles: tiles},
		start:  start,
		facing: Up,
	}
	if !l.Contains(start) {
		return nil, &ParseError{Reason: fmt.Sprintf("start %s outside %dx%d map", start, height, width)}
	}
	if l.Tile(start) != Ground {
		return nil, &ParseError{Line: start.Row + 1, Column: start.Col + 1, Reason: "start on obstacle"}
	}
	return l, nil
}

// Start returns the guard's starting cell
func (l *Lab) Start() Coordinate { return l.start }

// Facing returns the guard's starting heading, always Up for parsed labs
func (l *Lab) Facing() Direction { return l.facing }

// String renders the lab back into puzzle input form
func (l *Lab) String() string {
	var sb strings.Builder
	sb.Grow((l.width + 1) * l.height)
	for row := 0; row < l.height; row++ {
		for col := 0; col < l.width; col++ {
			c := Coordinate{Row: row, Col: col}
			if c == l.start {
				sb.WriteRune(GlyphGuard)
				continue
			}
			sb.WriteRune(l.tiles[l.Index(c)].Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
