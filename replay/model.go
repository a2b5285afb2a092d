// Package replay animates a patrol step by step in a terminal, optionally
// re-walking the lab with one of the census obstacles placed.
package replay

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gallivant/config"
	"github.com/lixenwraith/gallivant/lab"
	"github.com/lixenwraith/gallivant/patrol"
	"github.com/lixenwraith/gallivant/render"
)

// Event is what one tick of the replay produced
type Event uint8

const (
	EventNone Event = iota
	EventMove
	EventTurn
	EventExit
	EventLoop
)

// Model is the replay state machine. Not safe for concurrent use; the run
// loop owns it.
type Model struct {
	lab   *lab.Lab
	loops []lab.Coordinate

	probe  int // index into loops, -1 for the unmodified walk
	walker *patrol.Walker
	seen   []bool // (cell, heading) states of the current walk
	trail  []bool // cells of the current walk

	visited int
	ended   bool
	outcome patrol.Outcome
	paused  bool
	tick    time.Duration
}

// NewModel prepares an unmodified walk of l. loops are the census
// obstacles offered as probes.
func NewModel(l *lab.Lab, loops []lab.Coordinate, tick time.Duration) *Model {
	m := &Model{
		lab:   l,
		loops: loops,
		probe: -1,
		tick:  clampTick(tick),
	}
	m.Restart()
	return m
}

// Restart begins a fresh walk with the current probe
func (m *Model) Restart() {
	var opts []patrol.Option
	if c, ok := m.Probe(); ok {
		opts = append(opts, patrol.WithObstacle(c))
	}
	m.walker = patrol.NewWalker(m.lab, opts...)
	m.seen = make([]bool, patrol.StateCount(m.lab))
	m.trail = make([]bool, m.lab.Cells())
	m.visited = 0
	m.ended = false
	m.outcome = patrol.Exit
	m.mark()
}

// mark records the guard's current cell and state
func (m *Model) mark() bool {
	g := m.walker.Guard()
	idx := m.lab.Index(g.Pos)
	if !m.trail[idx] {
		m.trail[idx] = true
		m.visited++
	}
	state := idx*int(lab.DirCount) + int(g.Facing)
	if m.seen[state] {
		return false
	}
	m.seen[state] = true
	return true
}

// Probe returns the obstacle of the current walk, if any
func (m *Model) Probe() (lab.Coordinate, bool) {
	if m.probe < 0 || m.probe >= len(m.loops) {
		return lab.Coordinate{}, false
	}
	return m.loops[m.probe], true
}

func (m *Model) Paused() bool                { return m.paused }
func (m *Model) Ended() bool                 { return m.ended }
func (m *Model) Outcome() patrol.Outcome     { return m.outcome }
func (m *Model) Visited() int                { return m.visited }
func (m *Model) TickInterval() time.Duration { return m.tick }

// Tick advances the walk by one step unless paused or ended
func (m *Model) Tick() (Event, error) {
	if m.paused || m.ended {
		return EventNone, nil
	}

	move, err := m.walker.Next()
	if err != nil {
		m.ended = true
		return EventNone, err
	}

	switch move {
	case patrol.Exited:
		m.ended = true
		m.outcome = patrol.Exit
		return EventExit, nil
	case patrol.Turned:
		if !m.mark() {
			return m.looped(), nil
		}
		return EventTurn, nil
	default:
		if !m.mark() {
			return m.looped(), nil
		}
		return EventMove, nil
	}
}

func (m *Model) looped() Event {
	m.ended = true
	m.outcome = patrol.Loop
	return EventLoop
}

// HandleKey applies a key press. Returns false when the viewer should quit.
//
//	space  pause/resume     + / -  faster/slower
//	n      next probe       p      unmodified walk
//	r      restart          q, Esc, Ctrl-C  quit
func (m *Model) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune() {
	case 'q', 'Q':
		return false
	case ' ':
		m.paused = !m.paused
	case '+', '=':
		m.tick = clampTick(m.tick / 2)
	case '-', '_':
		m.tick = clampTick(m.tick * 2)
	case 'n', 'N':
		if len(m.loops) > 0 {
			m.probe = (m.probe + 1) % len(m.loops)
			m.Restart()
		}
	case 'p', 'P':
		m.probe = -1
		m.Restart()
	case 'r', 'R':
		m.Restart()
	}
	return true
}

// Scene snapshots the model for drawing
func (m *Model) Scene() *render.Scene {
	s := &render.Scene{
		Lab:     m.lab,
		Visited: m.trail,
		Loops:   m.loops,
		Status:  m.status(),
	}
	if !(m.ended && m.outcome == patrol.Exit) {
		g := m.walker.Guard()
		s.Guard = &g
	}
	if c, ok := m.Probe(); ok {
		s.Probe = &c
	}
	return s
}

func (m *Model) status() string {
	state := "walking"
	switch {
	case m.ended:
		state = m.outcome.String()
	case m.paused:
		state = "paused"
	}

	probe := "none"
	if c, ok := m.Probe(); ok {
		probe = fmt.Sprintf("%s %d/%d", c, m.probe+1, len(m.loops))
	}

	return fmt.Sprintf(" %s | step %d | visited %d | facing %s | probe %s ",
		state, m.walker.Steps(), m.visited, m.walker.Guard().Facing, probe)
}

func clampTick(d time.Duration) time.Duration {
	return min(max(d, config.MinTick), config.MaxTick)
}
