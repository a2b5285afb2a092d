// Package maze generates random labs for demos, benchmarks and property
// tests.
package maze

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/gallivant/lab"
)

// Layout selects the obstacle arrangement
type Layout uint8

const (
	// Scatter places each obstacle independently with probability Density
	Scatter Layout = iota
	// Maze carves a spanning-tree maze, strips its border so the guard can
	// leave and braids dead ends with probability Density
	Maze
)

func (l Layout) String() string {
	if l == Maze {
		return "maze"
	}
	return "scatter"
}

// ParseLayout maps a layout name to its value
func ParseLayout(s string) (Layout, bool) {
	switch s {
	case "scatter", "":
		return Scatter, true
	case "maze":
		return Maze, true
	default:
		return Scatter, false
	}
}

type Config struct {
	Width, Height int
	Layout        Layout

	// Scatter: obstacle probability. Maze: dead-end braiding probability.
	// Clamped to 0.0 - 1.0.
	Density float64

	Start *lab.Coordinate // Optional (nil = centre)
	Seed  int64           // Optional (0 = Random)
}

// Generate builds a lab from cfg. The start cell is always ground.
func Generate(cfg Config) *lab.Lab {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	density := clamp01(cfg.Density)

	var grid [][]lab.Tile
	var start lab.Coordinate

	switch cfg.Layout {
	case Maze:
		rows, cols := ensureOdd(cfg.Height), ensureOdd(cfg.Width)
		grid = filledGrid(rows, cols, lab.Obstacle)
		// Rooms sit on odd cells; start in the central one
		start = resolveStart(rows, cols, cfg.Start, (rows/2)|1, (cols/2)|1)
		carve(grid, oddCell(start, rows, cols), rng)
		stripBorders(grid)
		if density > 0 {
			braid(grid, density, rng)
		}
	default:
		rows, cols := atLeastOne(cfg.Height), atLeastOne(cfg.Width)
		grid = filledGrid(rows, cols, lab.Ground)
		for r := range grid {
			for c := range grid[r] {
				if rng.Float64() < density {
					grid[r][c] = lab.Obstacle
				}
			}
		}
		start = resolveStart(rows, cols, cfg.Start, rows/2, cols/2)
	}

	grid[start.Row][start.Col] = lab.Ground

	l, err := lab.New(grid, start)
	if err != nil {
		// Grid is rectangular and start is in range by construction
		panic("maze: generated invalid lab: " + err.Error())
	}
	return l
}

// carve runs a recursive backtracker over odd cells, producing a uniform
// spanning tree of ground with obstacle walls between rooms
func carve(grid [][]lab.Tile, from lab.Coordinate, rng *rand.Rand) {
	rows, cols := len(grid), len(grid[0])
	stack := []lab.Coordinate{from}
	grid[from.Row][from.Col] = lab.Ground

	jumps := [4][2]int{{-2, 0}, {0, 2}, {2, 0}, {0, -2}}

	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		candidates := make([][2]int, 0, 4)

		for _, j := range jumps {
			nr, nc := curr.Row+j[0], curr.Col+j[1]
			// Leave the border as wall until stripBorders
			if nr > 0 && nr < rows-1 && nc > 0 && nc < cols-1 && grid[nr][nc] == lab.Obstacle {
				candidates = append(candidates, j)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		j := candidates[rng.Intn(len(candidates))]
		grid[curr.Row+j[0]/2][curr.Col+j[1]/2] = lab.Ground
		next := lab.Coordinate{Row: curr.Row + j[0], Col: curr.Col + j[1]}
		grid[next.Row][next.Col] = lab.Ground
		stack = append(stack, next)
	}
}

// braid opens one wall of a dead-end room with the given probability,
// introducing cycles the guard can be trapped in
func braid(grid [][]lab.Tile, probability float64, rng *rand.Rand) {
	rows, cols := len(grid), len(grid[0])
	steps := [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

	for r := 1; r < rows-1; r += 2 {
		for c := 1; c < cols-1; c += 2 {
			if grid[r][c] == lab.Obstacle {
				continue
			}

			exits := 0
			walls := make([]lab.Coordinate, 0, 4)
			for _, s := range steps {
				wr, wc := r+s[0], c+s[1]
				if grid[wr][wc] == lab.Ground {
					exits++
					continue
				}
				// Only walls separating two rooms are worth opening
				nr, nc := r+2*s[0], c+2*s[1]
				if nr > 0 && nr < rows-1 && nc > 0 && nc < cols-1 {
					walls = append(walls, lab.Coordinate{Row: wr, Col: wc})
				}
			}

			if exits == 1 && len(walls) > 0 && rng.Float64() < probability {
				w := walls[rng.Intn(len(walls))]
				grid[w.Row][w.Col] = lab.Ground
			}
		}
	}
}

func stripBorders(grid [][]lab.Tile) {
	rows, cols := len(grid), len(grid[0])
	for c := 0; c < cols; c++ {
		grid[0][c] = lab.Ground
		grid[rows-1][c] = lab.Ground
	}
	for r := 0; r < rows; r++ {
		grid[r][0] = lab.Ground
		grid[r][cols-1] = lab.Ground
	}
}

// --- Helpers ---

func filledGrid(rows, cols int, t lab.Tile) [][]lab.Tile {
	grid := make([][]lab.Tile, rows)
	for r := range grid {
		grid[r] = make([]lab.Tile, cols)
		for c := range grid[r] {
			grid[r][c] = t
		}
	}
	return grid
}

func ensureOdd(n int) int {
	if n < 3 {
		return 3
	}
	if n%2 == 0 {
		return n - 1 // Round down to stay within bounds
	}
	return n
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func resolveStart(rows, cols int, p *lab.Coordinate, defRow, defCol int) lab.Coordinate {
	if p == nil {
		return lab.Coordinate{Row: defRow, Col: defCol}
	}
	return lab.Coordinate{
		Row: min(max(p.Row, 0), rows-1),
		Col: min(max(p.Col, 0), cols-1),
	}
}

// oddCell snaps c to the nearest interior room cell
func oddCell(c lab.Coordinate, rows, cols int) lab.Coordinate {
	snap := func(v, n int) int {
		v |= 1
		if v > n-2 {
			v = n - 2
		}
		return v
	}
	return lab.Coordinate{Row: snap(c.Row, rows), Col: snap(c.Col, cols)}
}
