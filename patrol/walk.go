package patrol

import (
	"fmt"

	"github.com/lixenwraith/gallivant/lab"
)

// Outcome is how a full walk ended
type Outcome uint8

const (
	Exit Outcome = iota // left the grid
	Loop                // repeated a (cell, heading) state
)

func (o Outcome) String() string {
	if o == Loop {
		return "looped"
	}
	return "exited"
}

// Report describes one full walk
type Report struct {
	Outcome Outcome
	Path    []lab.Coordinate // distinct cells in first-visit order
	Steps   int
}

// Walk runs the guard from the start state until it exits or repeats a
// (cell, heading) state. The lab is never modified.
func Walk(l *lab.Lab, opts ...Option) (Report, error) {
	w := NewWalker(l, opts...)
	states := make([]bool, StateCount(l))
	cells := make([]bool, l.Cells())
	path := make([]lab.Coordinate, 0, l.Width()+l.Height())

	for {
		g := w.Guard()
		idx := l.Index(g.Pos)
		state := idx*int(lab.DirCount) + int(g.Facing)
		if states[state] {
			return Report{Outcome: Loop, Path: path, Steps: w.Steps()}, nil
		}
		states[state] = true
		if !cells[idx] {
			cells[idx] = true
			path = append(path, g.Pos)
		}

		move, err := w.Next()
		if err != nil {
			return Report{}, err
		}
		if !move.Continues() {
			return Report{Outcome: Exit, Path: path, Steps: w.Steps()}, nil
		}
	}
}

// WalkUntilLoopOrExit reports only how the walk ended
func WalkUntilLoopOrExit(l *lab.Lab, opts ...Option) (Outcome, error) {
	r, err := Walk(l, opts...)
	if err != nil {
		return Exit, err
	}
	return r.Outcome, nil
}

// TraceRoute counts the distinct cells the guard stands on before leaving
// the unmodified lab. A lab whose patrol never leaves fails with
// ErrStateSpaceExhausted once the step cap is reached, and the count is 0.
func TraceRoute(l *lab.Lab) (int, error) {
	w := NewWalker(l)
	visited := make(map[lab.Coordinate]struct{}, l.Width()+l.Height())

	for {
		visited[w.Guard().Pos] = struct{}{}

		move, err := w.Next()
		if err != nil {
			return 0, fmt.Errorf("trace route: guard never leaves after %d cells: %w", len(visited), err)
		}
		if !move.Continues() {
			return len(visited), nil
		}
	}
}
