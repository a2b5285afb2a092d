// Package patrol simulates the guard walking a lab: forward while the way
// is clear, a clockwise turn when blocked, until it leaves the grid or
// repeats a state.
package patrol

import (
	"github.com/lixenwraith/gallivant/lab"
)

// Guard is the walking cursor. Each walk owns its own.
type Guard struct {
	Pos    lab.Coordinate
	Facing lab.Direction
}

// Move is what a single step did
type Move uint8

const (
	Advanced Move = iota // stepped onto the next cell
	Turned               // blocked, rotated clockwise in place
	Exited               // stepped off the map
)

func (m Move) String() string {
	switch m {
	case Advanced:
		return "advanced"
	case Turned:
		return "turned"
	case Exited:
		return "exited"
	default:
		return "unknown"
	}
}

// Continues reports whether the walk goes on after this move
func (m Move) Continues() bool {
	return m != Exited
}

// Step advances g by one move on m.
// A non-nil obstacle is an extra blocked cell that is never written into
// the map; it is checked against the destination before moving.
func Step(m *lab.Map, g *Guard, obstacle *lab.Coordinate) Move {
	next, result := m.WalkFrom(g.Pos, g.Facing)
	if result == lab.Moved && obstacle != nil && *obstacle == next {
		result = lab.Blocked
	}

	switch result {
	case lab.Blocked:
		g.Facing = g.Facing.Clockwise()
		return Turned
	case lab.OutOfBounds:
		return Exited
	default:
		g.Pos = next
		return Advanced
	}
}
