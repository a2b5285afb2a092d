package census

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lixenwraith/gallivant/lab"
	"github.com/lixenwraith/gallivant/maze"
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

func mustParse(t *testing.T, text string) *lab.Lab {
	t.Helper()
	l, err := lab.Parse(text)
	require.NoError(t, err)
	return l
}

func TestCountLoopCausingObstaclesExample(t *testing.T) {
	l := mustParse(t, example)

	count, err := CountLoopCausingObstacles(l)
	require.NoError(t, err)
	assert.Equal(t, 6, count)
}

func TestRunExampleObstacles(t *testing.T) {
	l := mustParse(t, example)

	r, err := New(l).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 40, r.Candidates, "41 visited cells minus the start")

	want := map[lab.Coordinate]bool{
		{Row: 6, Col: 3}: true,
		{Row: 7, Col: 6}: true,
		{Row: 7, Col: 7}: true,
		{Row: 8, Col: 1}: true,
		{Row: 8, Col: 3}: true,
		{Row: 9, Col: 7}: true,
	}
	got := make(map[lab.Coordinate]bool, r.Count())
	for _, c := range r.Obstacles {
		got[c] = true
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("loop obstacles mismatch (-want +got):\n%s", diff)
	}
}

func TestCandidatesExcludeStartAndStayOnPath(t *testing.T) {
	l := mustParse(t, example)

	candidates, err := Candidates(l)
	require.NoError(t, err)

	report, err := patrol.Walk(l)
	require.NoError(t, err)
	onPath := make(map[lab.Coordinate]bool, len(report.Path))
	for _, c := range report.Path {
		onPath[c] = true
	}

	for _, c := range candidates {
		assert.NotEqual(t, l.Start(), c)
		assert.True(t, onPath[c], "%s is not on the unmodified path", c)
	}
}

func TestOffPathCellsNeverCount(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		l := maze.Generate(maze.Config{Width: 24, Height: 24, Density: 0.12, Seed: seed})
		report, err := patrol.Walk(l)
		require.NoError(t, err)
		if report.Outcome == patrol.Loop {
			continue
		}

		onPath := make(map[lab.Coordinate]bool, len(report.Path))
		for _, c := range report.Path {
			onPath[c] = true
		}

		r, err := New(l).Run(context.Background())
		require.NoError(t, err)
		for _, c := range r.Obstacles {
			assert.True(t, onPath[c], "seed %d: %s counted but never visited", seed, c)
		}
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	tested := 0
	for seed := int64(1); seed <= 12; seed++ {
		for _, layout := range []maze.Layout{maze.Scatter, maze.Maze} {
			l := maze.Generate(maze.Config{Width: 30, Height: 20, Layout: layout, Density: 0.2, Seed: seed})

			sequential, err := New(l).Run(context.Background())
			if errors.Is(err, ErrNoExit) {
				continue
			}
			require.NoError(t, err)
			tested++

			for _, workers := range []int{2, 4, 16} {
				parallel, err := New(l, WithWorkers(workers)).Run(context.Background())
				require.NoError(t, err)
				if diff := cmp.Diff(sequential, parallel); diff != "" {
					t.Errorf("seed %d %s workers %d (-seq +par):\n%s", seed, layout, workers, diff)
				}
			}
		}
	}
	assert.Positive(t, tested, "no generated lab had an exiting patrol")
}

func TestSingleCellLabHasNoCandidates(t *testing.T) {
	l := mustParse(t, "^")

	r, err := New(l).Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, r.Candidates)
	assert.Zero(t, r.Count())
}

func TestRunOnLoopingLab(t *testing.T) {
	l := mustParse(t, `
		.#.
		#^#
		.#.`)

	_, err := New(l).Run(context.Background())
	assert.ErrorIs(t, err, ErrNoExit)
}

func TestRunCancelled(t *testing.T) {
	l := mustParse(t, example)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(l).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = New(l, WithWorkers(4)).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunLogsSummary(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := mustParse(t, example)

	_, err := New(l, WithLogger(zap.New(core))).Run(context.Background())
	require.NoError(t, err)

	entries := logs.FilterMessage("census complete").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(6), entries[0].ContextMap()["loop_obstacles"])
}

func TestRunDoesNotMutateLab(t *testing.T) {
	l := mustParse(t, example)
	before := l.String()

	_, err := New(l, WithWorkers(8)).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, before, l.String())
	visited, err := patrol.TraceRoute(l)
	require.NoError(t, err)
	assert.Equal(t, 41, visited)
}
