package lab

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrMalformedInput is the root of every parse failure
var ErrMalformedInput = errors.New("malformed lab input")

// ParseError locates a parse failure. Line and Column are 1-based; zero
// means the failure is not tied to a position.
type ParseError struct {
	Line   int
	Column int
	Reason string
}

func (e *ParseError) Error() string {
	switch {
	case e.Line > 0 && e.Column > 0:
		return fmt.Sprintf("%s: line %d, column %d: %s", ErrMalformedInput, e.Line, e.Column, e.Reason)
	case e.Line > 0:
		return fmt.Sprintf("%s: line %d: %s", ErrMalformedInput, e.Line, e.Reason)
	default:
		return fmt.Sprintf("%s: %s", ErrMalformedInput, e.Reason)
	}
}

func (e *ParseError) Unwrap() error { return ErrMalformedInput }

// Parse reads a lab from puzzle text.
// Blank lines around the grid are ignored and every row is trimmed before
// its glyphs are classified. Exactly one guard marker must be present.
// Error positions refer to the untrimmed text.
func Parse(text string) (*Lab, error) {
	lines := strings.Split(text, "\n")
	first, last := 0, len(lines)
	for first < last && strings.TrimSpace(lines[first]) == "" {
		first++
	}
	for last > first && strings.TrimSpace(lines[last-1]) == "" {
		last--
	}
	if first == last {
		return nil, &ParseError{Reason: "empty input"}
	}

	rows := make([][]Tile, 0, last-first)
	start := Coordinate{}
	found := false

	for i := first; i < last; i++ {
		raw := lines[i]
		indent := utf8.RuneCountInString(raw) - utf8.RuneCountInString(strings.TrimLeftFunc(raw, unicode.IsSpace))
		line := strings.TrimSpace(raw)
		row := make([]Tile, 0, len(line))

		for j, r := range []rune(line) {
			switch r {
			case GlyphGround:
				row = append(row, Ground)
			case GlyphObstacle:
				row = append(row, Obstacle)
			case GlyphGuard:
				if found {
					return nil, &ParseError{Line: i + 1, Column: indent + j + 1, Reason: fmt.Sprintf("second guard, first at %s", start)}
				}
				start = Coordinate{Row: i - first, Col: j}
				found = true
				row = append(row, Ground)
			default:
				return nil, &ParseError{Line: i + 1, Column: indent + j + 1, Reason: fmt.Sprintf("unknown glyph %q", r)}
			}
		}

		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, &ParseError{
				Line:   i + 1,
				Reason: fmt.Sprintf("row has %d tiles, expected %d", len(row), len(rows[0])),
			}
		}
		rows = append(rows, row)
	}

	if !found {
		return nil, &ParseError{Reason: "no guard marker"}
	}
	return New(rows, start)
}

// ParseReader reads all of r and parses it as a lab
func ParseReader(r io.Reader) (*Lab, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read lab: %w", err)
	}
	return Parse(string(data))
}
