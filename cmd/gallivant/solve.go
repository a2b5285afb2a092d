package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/gallivant/census"
	"github.com/lixenwraith/gallivant/patrol"
	"github.com/lixenwraith/gallivant/render"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		workers int
		draw    bool
	)

	cmd := &cobra.Command{
		Use:   "solve <input>",
		Short: "Count visited cells and loop-causing obstacle placements",
		Long: `Parses the lab in <input> ("-" for stdin) and prints:

  Distinct positions  cells the guard stands on before leaving the map
  Loop obstructions   cells where one added obstacle traps the guard`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.loadLab(cmd, args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("workers") {
				a.cfg.Census.Workers = max(workers, 1)
			}

			start := time.Now()
			visited, err := patrol.TraceRoute(l)
			if err != nil {
				return err
			}
			a.logger.Debug("route traced", zap.Int("visited", visited), zap.Duration("elapsed", time.Since(start)))

			result, err := census.New(l,
				census.WithWorkers(a.cfg.Census.Workers),
				census.WithLogger(a.logger),
			).Run(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Distinct positions: %d\n", visited)
			fmt.Fprintf(out, "Loop obstructions: %d\n", result.Count())

			if draw {
				report, err := patrol.Walk(l)
				if err != nil {
					return err
				}
				trail := make([]bool, l.Cells())
				for _, c := range report.Path {
					trail[l.Index(c)] = true
				}
				fmt.Fprintln(out)
				fmt.Fprint(out, render.Text(&render.Scene{
					Lab:     l,
					Guard:   &patrol.Guard{Pos: l.Start(), Facing: l.Facing()},
					Visited: trail,
					Loops:   result.Obstacles,
				}))
			}

			a.logger.Info("solved",
				zap.Int("visited", visited),
				zap.Int("loop_obstructions", result.Count()),
				zap.Duration("elapsed", time.Since(start)),
			)
			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Concurrent census walks (default from config).")
	cmd.Flags().BoolVar(&draw, "draw", false, "Print the lab with the route (X) and loop obstacles (O).")
	return cmd
}
