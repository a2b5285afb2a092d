package patrol

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/gallivant/lab"
)

// ErrStateSpaceExhausted means a walk took more steps than the lab has
// (cell, heading) states without exiting or being caught repeating.
var ErrStateSpaceExhausted = errors.New("patrol state space exhausted")

// Option configures a walk
type Option func(*walkConfig)

type walkConfig struct {
	obstacle  *lab.Coordinate
	stepLimit int
}

// WithObstacle adds a virtual obstacle at c for the duration of the walk
func WithObstacle(c lab.Coordinate) Option {
	return func(cfg *walkConfig) {
		cfg.obstacle = &c
	}
}

// WithStepLimit overrides the step cap. Values <= 0 keep the default of
// height*width*4.
func WithStepLimit(n int) Option {
	return func(cfg *walkConfig) {
		cfg.stepLimit = n
	}
}

// Walker iterates a single walk from the lab's start state
type Walker struct {
	lab      *lab.Lab
	guard    Guard
	obstacle *lab.Coordinate
	steps    int
	limit    int
	done     bool
}

// NewWalker places a guard on the lab's start cell facing its start heading
func NewWalker(l *lab.Lab, opts ...Option) *Walker {
	cfg := walkConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	limit := cfg.stepLimit
	if limit <= 0 {
		limit = StateCount(l)
	}

	return &Walker{
		lab:      l,
		guard:    Guard{Pos: l.Start(), Facing: l.Facing()},
		obstacle: cfg.obstacle,
		limit:    limit,
	}
}

// StateCount is the number of distinct (cell, heading) states of a lab
func StateCount(l *lab.Lab) int {
	return l.Cells() * int(lab.DirCount)
}

// Guard returns the current guard state
func (w *Walker) Guard() Guard { return w.guard }

// Steps returns the number of moves taken so far
func (w *Walker) Steps() int { return w.steps }

// Obstacle returns the virtual obstacle, if any
func (w *Walker) Obstacle() (lab.Coordinate, bool) {
	if w.obstacle == nil {
		return lab.Coordinate{}, false
	}
	return *w.obstacle, true
}

// Done reports whether the guard has left the map
func (w *Walker) Done() bool { return w.done }

// Next takes one step. After Exited every call returns Exited again.
func (w *Walker) Next() (Move, error) {
	if w.done {
		return Exited, nil
	}
	if w.steps >= w.limit {
		return Exited, fmt.Errorf("%w: %d steps on %dx%d lab", ErrStateSpaceExhausted, w.steps, w.lab.Height(), w.lab.Width())
	}

	w.steps++
	move := Step(&w.lab.Map, &w.guard, w.obstacle)
	if move == Exited {
		w.done = true
	}
	return move, nil
}
