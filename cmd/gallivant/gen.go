package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/gallivant/maze"
)

func newGenCmd(a *app) *cobra.Command {
	var (
		width, height int
		layout        string
		density       float64
		seed          int64
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Print a randomly generated lab",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			lay, ok := maze.ParseLayout(layout)
			if !ok {
				return usageError("invalid layout %q: must be scatter or maze", layout)
			}
			if width < 1 || height < 1 {
				return usageError("width and height must be positive")
			}

			l := maze.Generate(maze.Config{
				Width:   width,
				Height:  height,
				Layout:  lay,
				Density: density,
				Seed:    seed,
			})
			a.logger.Debug("lab generated",
				zap.Stringer("layout", lay),
				zap.Int64("seed", seed),
				zap.Stringer("start", l.Start()),
			)

			fmt.Fprint(cmd.OutOrStdout(), l.String())
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 40, "Lab width.")
	cmd.Flags().IntVar(&height, "height", 20, "Lab height.")
	cmd.Flags().StringVar(&layout, "layout", "scatter", "Layout: scatter or maze.")
	cmd.Flags().Float64Var(&density, "density", 0.1, "Obstacle (scatter) or braiding (maze) probability, 0.0 - 1.0.")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (0 = time based).")
	return cmd
}
