package lab

// WalkResult classifies a single attempted move
type WalkResult uint8

const (
	Moved WalkResult = iota
	Blocked
	OutOfBounds
)

func (r WalkResult) String() string {
	switch r {
	case Moved:
		return "moved"
	case Blocked:
		return "blocked"
	case OutOfBounds:
		return "out of bounds"
	default:
		return "unknown"
	}
}

// Map is an immutable rectangular tile grid.
// Tiles are stored flat, indexed row*width+col.
type Map struct {
	height int
	width  int
	tiles  []Tile
}

func (m *Map) Height() int { return m.height }
func (m *Map) Width() int  { return m.width }

// Cells returns the number of tiles in the map
func (m *Map) Cells() int { return m.height * m.width }

// Contains reports whether c lies inside the map
func (m *Map) Contains(c Coordinate) bool {
	return c.Row >= 0 && c.Col >= 0 && c.Row < m.height && c.Col < m.width
}

// Index returns the flat index of c. c must be inside the map.
func (m *Map) Index(c Coordinate) int {
	return c.Row*m.width + c.Col
}

// Tile returns the tile at c. Cells outside the map read as Ground: the
// edge is not an obstacle, and leaving the map is reported by WalkFrom as
// OutOfBounds before any tile is read. Use Contains to tell the two apart.
func (m *Map) Tile(c Coordinate) Tile {
	if !m.Contains(c) {
		return Ground
	}
	return m.tiles[m.Index(c)]
}

// WalkFrom attempts one step from pos along dir without side effects.
// The returned coordinate is only meaningful when the result is Moved.
func (m *Map) WalkFrom(pos Coordinate, dir Direction) (Coordinate, WalkResult) {
	dr, dc := dir.Delta()
	next, ok := pos.Translate(dr, dc)
	if !ok {
		return Coordinate{}, OutOfBounds
	}
	if next.Row >= m.height || next.Col >= m.width {
		return Coordinate{}, OutOfBounds
	}
	if m.tiles[m.Index(next)] == Obstacle {
		return Coordinate{}, Blocked
	}
	return next, Moved
}
