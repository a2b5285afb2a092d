package render

import "github.com/gdamore/tcell/v2"

// Cell is one screen position of a Frame
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Frame is an off-screen cell buffer flushed to a tcell.Screen in one pass
type Frame struct {
	cells  []Cell
	width  int
	height int
}

// NewFrame creates a cleared frame of the given size
func NewFrame(width, height int) *Frame {
	f := &Frame{}
	f.Resize(width, height)
	return f
}

// Resize adjusts frame dimensions, reallocating only if capacity is insufficient
func (f *Frame) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(f.cells) < size {
		f.cells = make([]Cell, size)
	} else {
		f.cells = f.cells[:size]
	}
	f.width = width
	f.height = height
	f.Clear()
}

// Clear resets every cell to a blank default-styled space
func (f *Frame) Clear() {
	for i := range f.cells {
		f.cells[i] = Cell{Rune: ' ', Style: tcell.StyleDefault}
	}
}

// Bounds returns frame dimensions
func (f *Frame) Bounds() (width, height int) {
	return f.width, f.height
}

func (f *Frame) inBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// Set writes a cell; writes outside the frame are dropped
func (f *Frame) Set(x, y int, r rune, style tcell.Style) {
	if !f.inBounds(x, y) {
		return
	}
	f.cells[y*f.width+x] = Cell{Rune: r, Style: style}
}

// Get reads a cell; reads outside the frame return a zero Cell
func (f *Frame) Get(x, y int) Cell {
	if !f.inBounds(x, y) {
		return Cell{}
	}
	return f.cells[y*f.width+x]
}

// Text writes s starting at (x, y), clipped to the frame
func (f *Frame) Text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		f.Set(x, y, r, style)
		x++
	}
}

// Row returns the runes of row y as a string
func (f *Frame) Row(y int) string {
	if y < 0 || y >= f.height {
		return ""
	}
	runes := make([]rune, f.width)
	for x := 0; x < f.width; x++ {
		runes[x] = f.cells[y*f.width+x].Rune
	}
	return string(runes)
}

// Flush copies the frame to the top-left of screen and shows it
func (f *Frame) Flush(screen tcell.Screen) {
	screen.Clear()
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			c := f.cells[y*f.width+x]
			screen.SetContent(x, y, c.Rune, nil, c.Style)
		}
	}
	screen.Show()
}
