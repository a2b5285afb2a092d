// Package render draws a lab and its patrol into a cell Frame for the
// terminal viewer, or into plain text.
package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gallivant/lab"
	"github.com/lixenwraith/gallivant/patrol"
)

// Glyphs beyond the lab's own input glyphs
const (
	GlyphTrail = 'X'
	GlyphLoop  = 'O'
)

// Scene is a read-only snapshot of everything drawn for one frame
type Scene struct {
	Lab     *lab.Lab
	Guard   *patrol.Guard // nil once the guard has left
	Visited []bool        // indexed like lab.Map.Index; may be nil
	Loops   []lab.Coordinate
	Probe   *lab.Coordinate // virtual obstacle of the current walk
	Status  string
}

func (s *Scene) visited(c lab.Coordinate) bool {
	idx := s.Lab.Index(c)
	return idx < len(s.Visited) && s.Visited[idx]
}

// glyph resolves the rune and style of one cell, top layer first
func (s *Scene) glyph(c lab.Coordinate, loops map[lab.Coordinate]bool, p Palette) (rune, tcell.Style) {
	switch {
	case s.Guard != nil && s.Guard.Pos == c:
		return s.Guard.Facing.Rune(), p.Guard
	case s.Probe != nil && *s.Probe == c:
		return GlyphLoop, p.Probe
	case loops[c]:
		return GlyphLoop, p.Loop
	case s.Lab.Tile(c) == lab.Obstacle:
		return lab.GlyphObstacle, p.Obstacle
	case s.visited(c):
		return GlyphTrail, p.Trail
	default:
		return lab.GlyphGround, p.Ground
	}
}

func (s *Scene) loopSet() map[lab.Coordinate]bool {
	loops := make(map[lab.Coordinate]bool, len(s.Loops))
	for _, c := range s.Loops {
		loops[c] = true
	}
	return loops
}

// Size returns the frame size needed for the scene: the lab plus one
// status row
func (s *Scene) Size() (width, height int) {
	return max(s.Lab.Width(), len([]rune(s.Status))), s.Lab.Height() + 1
}

// Draw paints the scene into f starting at the top-left corner
func Draw(f *Frame, s *Scene, p Palette) {
	f.Clear()
	loops := s.loopSet()

	for row := 0; row < s.Lab.Height(); row++ {
		for col := 0; col < s.Lab.Width(); col++ {
			c := lab.Coordinate{Row: row, Col: col}
			r, style := s.glyph(c, loops, p)
			f.Set(col, row, r, style)
		}
	}

	statusY := s.Lab.Height()
	width, _ := f.Bounds()
	for x := 0; x < width; x++ {
		f.Set(x, statusY, ' ', p.Status)
	}
	f.Text(0, statusY, s.Status, p.Status)
}

// Text renders the lab rows as plain runes, without the status line
func Text(s *Scene) string {
	loops := s.loopSet()
	p := Palette{}

	var sb strings.Builder
	for row := 0; row < s.Lab.Height(); row++ {
		for col := 0; col < s.Lab.Width(); col++ {
			r, _ := s.glyph(lab.Coordinate{Row: row, Col: col}, loops, p)
			sb.WriteRune(r)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
