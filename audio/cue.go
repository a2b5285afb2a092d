// Package audio plays short synthesized cues for guard events in the
// replay viewer
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Cue identifies a guard event with a sound
type Cue uint8

const (
	CueTurn Cue = iota // guard rotated at an obstacle
	CueExit            // guard left the lab
	CueLoop            // walk repeated a state
)

func (c Cue) String() string {
	switch c {
	case CueTurn:
		return "turn"
	case CueExit:
		return "exit"
	case CueLoop:
		return "loop"
	default:
		return "unknown"
	}
}

// DefaultSampleRate matches the common 44.1kHz output
const DefaultSampleRate = beep.SampleRate(44100)

// note is one tone of a cue; freq 0 is a rest
type note struct {
	freq float64
	dur  time.Duration
}

var cueNotes = map[Cue][]note{
	CueTurn: {{660, 30 * time.Millisecond}},
	CueExit: {{440, 80 * time.Millisecond}, {330, 120 * time.Millisecond}},
	CueLoop: {
		{880, 50 * time.Millisecond}, {0, 30 * time.Millisecond},
		{880, 50 * time.Millisecond}, {0, 30 * time.Millisecond},
		{1175, 90 * time.Millisecond},
	},
}

// Duration returns the length of a cue
func Duration(c Cue) time.Duration {
	var d time.Duration
	for _, n := range cueNotes[c] {
		d += n.dur
	}
	return d
}

// Stream builds the streamer for a cue at the given linear volume (0.0 - 1.0)
func Stream(c Cue, sr beep.SampleRate, volume float64) (beep.Streamer, error) {
	notes, ok := cueNotes[c]
	if !ok {
		return nil, fmt.Errorf("audio: unknown cue %d", c)
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		samples := sr.N(n.dur)
		if n.freq == 0 {
			parts = append(parts, beep.Silence(samples))
			continue
		}
		sine, err := generators.SineTone(sr, n.freq)
		if err != nil {
			return nil, fmt.Errorf("audio: %s cue: %w", c, err)
		}
		parts = append(parts, beep.Take(samples, sine))
	}

	return scaled(beep.Seq(parts...), volume), nil
}

// scaled applies a linear volume through a base-2 volume effect
func scaled(s beep.Streamer, volume float64) beep.Streamer {
	if volume >= 1 {
		return s
	}
	if volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(volume)}
}
