package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"
)

// Config for a Player
type Config struct {
	Enabled    bool
	Volume     float64
	SampleRate beep.SampleRate
}

// output abstracts the speaker so tests run without an audio device
type output interface {
	Init(sr beep.SampleRate, bufferSize int) error
	Play(s ...beep.Streamer)
	Close()
}

type speakerOutput struct{}

func (speakerOutput) Init(sr beep.SampleRate, bufferSize int) error {
	return speaker.Init(sr, bufferSize)
}
func (speakerOutput) Play(s ...beep.Streamer) { speaker.Play(s...) }
func (speakerOutput) Close()                  { speaker.Close() }

// Player plays cues on the system speaker.
// A player that is disabled or failed to open the device stays silent.
type Player struct {
	cfg    Config
	out    output
	logger *zap.Logger

	mu      sync.Mutex
	running bool
	silent  bool
}

// NewPlayer creates a player; nothing touches the device until Start
func NewPlayer(cfg Config, logger *zap.Logger) *Player {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultSampleRate
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Player{cfg: cfg, out: speakerOutput{}, logger: logger}
}

// Start opens the speaker. Device failures switch the player to silent
// mode instead of failing the caller.
func (p *Player) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		return
	}
	p.running = true

	if !p.cfg.Enabled {
		p.silent = true
		return
	}
	if err := p.out.Init(p.cfg.SampleRate, p.cfg.SampleRate.N(time.Second/10)); err != nil {
		p.logger.Warn("audio unavailable, continuing silent", zap.Error(err))
		p.silent = true
	}
}

// Silent reports whether cues are being dropped
func (p *Player) Silent() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return !p.running || p.silent
}

// Play queues a cue. It never blocks on playback.
func (p *Player) Play(c Cue) {
	if p.Silent() {
		return
	}
	s, err := Stream(c, p.cfg.SampleRate, p.cfg.Volume)
	if err != nil {
		p.logger.Debug("cue dropped", zap.Stringer("cue", c), zap.Error(err))
		return
	}
	p.out.Play(s)
}

// Close releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running && !p.silent {
		p.out.Close()
	}
	p.running = false
}
