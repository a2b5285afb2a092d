package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/gallivant/audio"
	"github.com/lixenwraith/gallivant/census"
	"github.com/lixenwraith/gallivant/replay"
)

func newViewCmd(a *app) *cobra.Command {
	var sound bool

	cmd := &cobra.Command{
		Use:   "view <input>",
		Short: "Replay the patrol in the terminal",
		Long: `Animates the guard's walk. Loop obstacles found by the census are
marked O and can be placed one at a time.

Keys:
  space  pause/resume     + / -  faster/slower
  n      next obstacle    p      no obstacle
  r      restart          q      quit`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.loadLab(cmd, args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("sound") {
				a.cfg.Audio.Enabled = sound
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			result, err := census.New(l,
				census.WithWorkers(a.cfg.Census.Workers),
				census.WithLogger(a.logger),
			).Run(ctx)
			if err != nil {
				return err
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("open terminal: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("init terminal: %w", err)
			}
			defer screen.Fini()

			player := audio.NewPlayer(audio.Config{
				Enabled: a.cfg.Audio.Enabled,
				Volume:  a.cfg.Audio.Volume,
			}, a.logger)
			player.Start()
			defer player.Close()

			model := replay.NewModel(l, result.Obstacles, a.cfg.Replay.Tick)
			err = replay.NewViewer(screen, model, player, a.logger).Run(ctx)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&sound, "sound", false, "Play audio cues on turns, exits and loops.")
	return cmd
}
