package replay

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/gallivant/audio"
	"github.com/lixenwraith/gallivant/render"
)

// Viewer drives a Model on a tcell screen
type Viewer struct {
	screen  tcell.Screen
	model   *Model
	player  *audio.Player // may be nil
	palette render.Palette
	frame   *render.Frame
	logger  *zap.Logger
}

// NewViewer binds a model to an initialised screen
func NewViewer(screen tcell.Screen, model *Model, player *audio.Player, logger *zap.Logger) *Viewer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Viewer{
		screen:  screen,
		model:   model,
		player:  player,
		palette: render.DefaultPalette(),
		frame:   render.NewFrame(0, 0),
		logger:  logger,
	}
}

// Run polls input and advances the model on a ticker until the user quits,
// ctx is cancelled or the walk fails. The caller owns screen.Fini, which
// also ends the poll goroutine.
func (v *Viewer) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)

	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	tick := v.model.TickInterval()
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !v.model.HandleKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				v.screen.Sync()
			}
			if t := v.model.TickInterval(); t != tick {
				tick = t
				ticker.Reset(tick)
			}
			v.Draw()

		case <-ticker.C:
			event, err := v.model.Tick()
			if err != nil {
				v.Draw()
				return err
			}
			if event == EventNone {
				continue
			}
			v.cue(event)
			v.Draw()
		}
	}
}

// Draw renders the current model state to the screen
func (v *Viewer) Draw() {
	scene := v.model.Scene()
	w, h := scene.Size()
	if fw, fh := v.frame.Bounds(); fw != w || fh != h {
		v.frame.Resize(w, h)
	}
	render.Draw(v.frame, scene, v.palette)
	v.frame.Flush(v.screen)
}

func (v *Viewer) cue(event Event) {
	switch event {
	case EventTurn:
		v.play(audio.CueTurn)
	case EventExit:
		v.play(audio.CueExit)
		v.logger.Debug("walk exited", zap.Int("steps", v.model.walker.Steps()), zap.Int("visited", v.model.Visited()))
	case EventLoop:
		v.play(audio.CueLoop)
		v.logger.Debug("walk looped", zap.Int("steps", v.model.walker.Steps()))
	}
}

func (v *Viewer) play(c audio.Cue) {
	if v.player != nil {
		v.player.Play(c)
	}
}
