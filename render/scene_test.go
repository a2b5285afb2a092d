package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/gallivant/lab"
	"github.com/lixenwraith/gallivant/patrol"
)

const example = `
	....#.....
	.........#
	..........
	..#.......
	.......#..
	..........
	.#..^.....
	........#.
	#.........
	......#...`

// Full route of the example with loop obstacles marked
const exampleDrawn = `....#.....
....XXXXX#
....X...X.
..#.X...X.
..XXXXX#X.
..X.X.X.X.
.#XOXXXXX.
.XXXXXOO#.
#OXOXXXX..
......#O..
`

func mustParse(t *testing.T, text string) *lab.Lab {
	t.Helper()
	l, err := lab.Parse(text)
	require.NoError(t, err)
	return l
}

func walkedScene(t *testing.T, l *lab.Lab) *Scene {
	t.Helper()
	r, err := patrol.Walk(l)
	require.NoError(t, err)

	visited := make([]bool, l.Cells())
	for _, c := range r.Path {
		visited[l.Index(c)] = true
	}
	return &Scene{Lab: l, Visited: visited}
}

func TestTextExample(t *testing.T) {
	l := mustParse(t, example)
	s := walkedScene(t, l)
	s.Loops = []lab.Coordinate{
		{Row: 6, Col: 3}, {Row: 7, Col: 6}, {Row: 7, Col: 7},
		{Row: 8, Col: 1}, {Row: 8, Col: 3}, {Row: 9, Col: 7},
	}

	assert.Equal(t, exampleDrawn, Text(s))
	assert.Equal(t, 41-6, strings.Count(Text(s), "X"))
}

func TestTextGuardAndProbe(t *testing.T) {
	l := mustParse(t, `
		...
		.^.`)
	probe := lab.Coordinate{Row: 0, Col: 1}
	s := &Scene{
		Lab:   l,
		Guard: &patrol.Guard{Pos: l.Start(), Facing: lab.Right},
		Probe: &probe,
	}

	assert.Equal(t, ".O.\n.>.\n", Text(s))
}

func TestDrawStatusLine(t *testing.T) {
	l := mustParse(t, "^.")
	s := &Scene{
		Lab:    l,
		Guard:  &patrol.Guard{Pos: l.Start(), Facing: lab.Up},
		Status: "step 0",
	}
	w, h := s.Size()
	require.Equal(t, 6, w, "status wider than the lab widens the frame")
	require.Equal(t, 2, h)

	f := NewFrame(w, h)
	p := DefaultPalette()
	Draw(f, s, p)

	assert.Equal(t, "^.    ", f.Row(0))
	assert.Equal(t, "step 0", f.Row(1))
	assert.Equal(t, p.Guard, f.Get(0, 0).Style)
	assert.Equal(t, p.Status, f.Get(5, 1).Style)
}

func TestFrameBounds(t *testing.T) {
	f := NewFrame(3, 2)
	f.Set(-1, 0, 'x', tcell.StyleDefault)
	f.Set(3, 0, 'x', tcell.StyleDefault)
	f.Set(0, 2, 'x', tcell.StyleDefault)
	assert.Equal(t, "   ", f.Row(0))
	assert.Equal(t, Cell{}, f.Get(5, 5))

	f.Text(1, 1, "abcdef", tcell.StyleDefault)
	assert.Equal(t, " ab", f.Row(1))

	f.Resize(1, 1)
	w, h := f.Bounds()
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)
	assert.Equal(t, " ", f.Row(0))
}

func TestFlushToSimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(20, 12)

	l := mustParse(t, example)
	s := walkedScene(t, l)
	s.Status = "exited"
	w, h := s.Size()

	f := NewFrame(w, h)
	Draw(f, s, DefaultPalette())
	assert.NotPanics(t, func() { f.Flush(screen) })
}
