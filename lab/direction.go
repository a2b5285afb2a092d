package lab

// Direction is one of the four compass headings, indexed in clockwise order
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
	DirCount
)

// Offsets matching Up..Left, as (row, col)
var dirDeltas = [DirCount][2]int{
	{-1, 0}, {0, 1}, {1, 0}, {0, -1},
}

var dirRunes = [DirCount]rune{'^', '>', 'v', '<'}

var dirNames = [DirCount]string{"up", "right", "down", "left"}

// Clockwise returns the heading after a 90° right turn
func (d Direction) Clockwise() Direction {
	return (d + 1) % DirCount
}

// Delta returns the (row, col) offset of one step along d
func (d Direction) Delta() (dr, dc int) {
	v := dirDeltas[d%DirCount]
	return v[0], v[1]
}

// Rune returns the guard glyph for the heading
func (d Direction) Rune() rune {
	return dirRunes[d%DirCount]
}

func (d Direction) String() string {
	if d >= DirCount {
		return "unknown"
	}
	return dirNames[d]
}
