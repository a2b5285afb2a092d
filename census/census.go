// Package census counts the cells where one extra obstacle would trap the
// guard in a loop.
//
// Only cells on the guard's unmodified path are candidates: an obstacle
// anywhere else is never reached and cannot change the outcome. The start
// cell is excluded. Every candidate is tested with a fresh walk from the
// start state, so a candidate first met on one heading may be approached
// from another once blocked.
package census

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/gallivant/lab"
	"github.com/lixenwraith/gallivant/patrol"
)

// ErrNoExit means the unmodified patrol already loops, so there is no path
// to place candidates on
var ErrNoExit = errors.New("census: unmodified patrol never exits")

// Result of a census run
type Result struct {
	Candidates int              // cells tested
	Obstacles  []lab.Coordinate // loop-causing cells in path order
}

// Count returns the number of loop-causing cells
func (r Result) Count() int { return len(r.Obstacles) }

// Option configures a Census
type Option func(*Census)

// WithWorkers bounds the number of concurrent candidate walks; n <= 1 runs
// them sequentially
func WithWorkers(n int) Option {
	return func(c *Census) {
		c.workers = n
	}
}

// WithLogger sets the census logger
func WithLogger(logger *zap.Logger) Option {
	return func(c *Census) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Census tests every candidate obstacle of one lab
type Census struct {
	lab     *lab.Lab
	workers int
	logger  *zap.Logger
}

// New creates a census over l
func New(l *lab.Lab, opts ...Option) *Census {
	c := &Census{
		lab:     l,
		workers: 1,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CountLoopCausingObstacles runs a sequential census and returns the count
func CountLoopCausingObstacles(l *lab.Lab) (int, error) {
	r, err := New(l).Run(context.Background())
	if err != nil {
		return 0, err
	}
	return r.Count(), nil
}

// Candidates returns the cells of the unmodified path, start excluded, in
// first-visit order
func Candidates(l *lab.Lab) ([]lab.Coordinate, error) {
	report, err := patrol.Walk(l)
	if err != nil {
		return nil, fmt.Errorf("census: unmodified walk: %w", err)
	}
	if report.Outcome == patrol.Loop {
		return nil, fmt.Errorf("%w (repeat after %d steps)", ErrNoExit, report.Steps)
	}

	candidates := make([]lab.Coordinate, 0, len(report.Path))
	for _, c := range report.Path {
		if c != l.Start() {
			candidates = append(candidates, c)
		}
	}
	return candidates, nil
}

// Run walks the lab once per candidate and collects the loop-causing cells.
// Results are independent of worker count and scheduling.
func (c *Census) Run(ctx context.Context) (Result, error) {
	start := time.Now()

	candidates, err := Candidates(c.lab)
	if err != nil {
		return Result{}, err
	}
	c.logger.Debug("census candidates collected",
		zap.Int("candidates", len(candidates)),
		zap.Int("workers", c.workers),
	)

	looped := make([]bool, len(candidates))
	if c.workers <= 1 {
		err = c.runSequential(ctx, candidates, looped)
	} else {
		err = c.runParallel(ctx, candidates, looped)
	}
	if err != nil {
		return Result{}, err
	}

	result := Result{Candidates: len(candidates)}
	for i, ok := range looped {
		if ok {
			result.Obstacles = append(result.Obstacles, candidates[i])
		}
	}

	c.logger.Info("census complete",
		zap.Int("candidates", result.Candidates),
		zap.Int("loop_obstacles", result.Count()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return result, nil
}

func (c *Census) runSequential(ctx context.Context, candidates []lab.Coordinate, looped []bool) error {
	for i, cell := range candidates {
		if err := ctx.Err(); err != nil {
			return err
		}
		ok, err := c.probe(cell)
		if err != nil {
			return err
		}
		looped[i] = ok
	}
	return nil
}

// Each goroutine writes only its own slot of looped
func (c *Census) runParallel(ctx context.Context, candidates []lab.Coordinate, looped []bool) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	for i, cell := range candidates {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ok, err := c.probe(cell)
			if err != nil {
				return err
			}
			looped[i] = ok
			return nil
		})
	}
	return g.Wait()
}

func (c *Census) probe(cell lab.Coordinate) (bool, error) {
	outcome, err := patrol.WalkUntilLoopOrExit(c.lab, patrol.WithObstacle(cell))
	if err != nil {
		return false, fmt.Errorf("census: obstacle at %s: %w", cell, err)
	}
	return outcome == patrol.Loop, nil
}
