package lab

// Tile is the content of one map cell
type Tile uint8

const (
	Ground Tile = iota
	Obstacle
)

// Input glyphs
const (
	GlyphGround   = '.'
	GlyphObstacle = '#'
	GlyphGuard    = '^'
)

// Rune returns the input glyph of the tile
func (t Tile) Rune() rune {
	if t == Obstacle {
		return GlyphObstacle
	}
	return GlyphGround
}
