package patrol

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/gallivant/lab"
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

func mustParse(t *testing.T, text string) *lab.Lab {
	t.Helper()
	l, err := lab.Parse(text)
	require.NoError(t, err)
	return l
}

func TestTraceRouteExample(t *testing.T) {
	l := mustParse(t, example)

	visited, err := TraceRoute(l)
	require.NoError(t, err)
	assert.Equal(t, 41, visited)
}

func TestTraceRouteDeterministic(t *testing.T) {
	l := mustParse(t, example)

	first, err := TraceRoute(l)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := TraceRoute(l)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestSingleCellLabExitsImmediately(t *testing.T) {
	l := mustParse(t, "^")

	visited, err := TraceRoute(l)
	require.NoError(t, err)
	assert.Equal(t, 1, visited, "start cell is always counted")

	r, err := Walk(l)
	require.NoError(t, err)
	assert.Equal(t, Exit, r.Outcome)
	assert.Equal(t, 1, r.Steps)
	assert.Equal(t, []lab.Coordinate{{Row: 0, Col: 0}}, r.Path)
}

func TestStepTurnsClockwiseWhenFacingObstacle(t *testing.T) {
	l := mustParse(t, `
		.#.
		.^.`)
	g := Guard{Pos: l.Start(), Facing: lab.Up}

	move := Step(&l.Map, &g, nil)
	assert.Equal(t, Turned, move)
	assert.Equal(t, l.Start(), g.Pos, "turning never moves")
	assert.Equal(t, lab.Right, g.Facing)
}

func TestStepVirtualObstacleBlocks(t *testing.T) {
	l := mustParse(t, `
		...
		.^.`)
	g := Guard{Pos: l.Start(), Facing: lab.Up}
	block := lab.Coordinate{Row: 0, Col: 1}

	move := Step(&l.Map, &g, &block)
	assert.Equal(t, Turned, move)
	assert.Equal(t, l.Start(), g.Pos)
	assert.Equal(t, lab.Right, g.Facing)
	assert.Equal(t, lab.Ground, l.Tile(block), "virtual obstacle never reaches the map")

	// An obstacle away from the destination changes nothing
	g = Guard{Pos: l.Start(), Facing: lab.Up}
	far := lab.Coordinate{Row: 1, Col: 0}
	assert.Equal(t, Advanced, Step(&l.Map, &g, &far))
	assert.Equal(t, block, g.Pos)
}

func TestStepExits(t *testing.T) {
	l := mustParse(t, "^")
	g := Guard{Pos: l.Start(), Facing: lab.Up}

	for _, facing := range []lab.Direction{lab.Up, lab.Right, lab.Down, lab.Left} {
		g.Facing = facing
		assert.Equal(t, Exited, Step(&l.Map, &g, nil), facing.String())
	}
}

func TestWalkUntilLoopOrExit(t *testing.T) {
	l := mustParse(t, example)

	tests := []struct {
		name     string
		obstacle *lab.Coordinate
		want     Outcome
	}{
		{"Unmodified lab exits", nil, Exit},
		{"Obstacle beside start loops", &lab.Coordinate{Row: 6, Col: 3}, Loop},
		{"Obstacle by the printing press loops", &lab.Coordinate{Row: 7, Col: 6}, Loop},
		{"Obstacle in bottom left loops", &lab.Coordinate{Row: 8, Col: 1}, Loop},
		{"Obstacle off the path exits", &lab.Coordinate{Row: 0, Col: 0}, Exit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts []Option
			if tt.obstacle != nil {
				opts = append(opts, WithObstacle(*tt.obstacle))
			}
			got, err := WalkUntilLoopOrExit(l, opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			// Detection is idempotent
			again, err := WalkUntilLoopOrExit(l, opts...)
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}

func TestVirtualObstacleLeavesLabIntact(t *testing.T) {
	l := mustParse(t, example)
	before := l.String()

	outcome, err := WalkUntilLoopOrExit(l, WithObstacle(lab.Coordinate{Row: 6, Col: 3}))
	require.NoError(t, err)
	require.Equal(t, Loop, outcome)

	assert.Equal(t, before, l.String())
	visited, err := TraceRoute(l)
	require.NoError(t, err)
	assert.Equal(t, 41, visited)

	outcome, err = WalkUntilLoopOrExit(l)
	require.NoError(t, err)
	assert.Equal(t, Exit, outcome)
}

func TestWalkPathMatchesTraceRoute(t *testing.T) {
	l := mustParse(t, example)

	r, err := Walk(l)
	require.NoError(t, err)
	assert.Len(t, r.Path, 41)
	assert.Equal(t, l.Start(), r.Path[0], "path starts on the start cell")

	seen := make(map[lab.Coordinate]bool, len(r.Path))
	for _, c := range r.Path {
		assert.False(t, seen[c], "duplicate %s in path", c)
		seen[c] = true
	}
}

func TestWalkCrossingIsNotLoop(t *testing.T) {
	// Up column 2, right along row 1, down column 3, then left along row 3
	// through (3,2) again before heading up column 1 and off the top edge
	l := mustParse(t, `
		..#..
		....#
		.....
		#....
		..^#.`)
	crossed := lab.Coordinate{Row: 3, Col: 2}

	r, err := Walk(l)
	require.NoError(t, err)
	assert.Equal(t, Exit, r.Outcome)

	want := []lab.Coordinate{
		{Row: 4, Col: 2}, {Row: 3, Col: 2}, {Row: 2, Col: 2}, {Row: 1, Col: 2},
		{Row: 1, Col: 3}, {Row: 2, Col: 3}, {Row: 3, Col: 3},
		{Row: 3, Col: 1}, {Row: 2, Col: 1}, {Row: 1, Col: 1}, {Row: 0, Col: 1},
	}
	if diff := cmp.Diff(want, r.Path); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}

	seen := 0
	for _, c := range r.Path {
		if c == crossed {
			seen++
		}
	}
	assert.Equal(t, 1, seen, "crossed cell listed once")

	n, err := TraceRoute(l)
	require.NoError(t, err)
	assert.Equal(t, len(want), n)
}

func TestBoxedInGuardLoops(t *testing.T) {
	l := mustParse(t, `
		.#.
		#^#
		.#.`)

	outcome, err := WalkUntilLoopOrExit(l)
	require.NoError(t, err)
	assert.Equal(t, Loop, outcome)

	n, err := TraceRoute(l)
	assert.ErrorIs(t, err, ErrStateSpaceExhausted)
	assert.Zero(t, n, "no count alongside an error")
}

func TestStepLimit(t *testing.T) {
	l := mustParse(t, example)

	_, err := Walk(l, WithStepLimit(5))
	assert.ErrorIs(t, err, ErrStateSpaceExhausted)
}

func TestWalkerStopsAfterExit(t *testing.T) {
	l := mustParse(t, "^")
	w := NewWalker(l)

	move, err := w.Next()
	require.NoError(t, err)
	assert.Equal(t, Exited, move)
	assert.True(t, w.Done())

	move, err = w.Next()
	require.NoError(t, err)
	assert.Equal(t, Exited, move)
	assert.Equal(t, 1, w.Steps())
}
