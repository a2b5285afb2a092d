package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/gallivant/lab"
	"github.com/lixenwraith/gallivant/patrol"
)

func newProbeCmd(a *app) *cobra.Command {
	var obstacle string

	cmd := &cobra.Command{
		Use:   "probe <input> --obstacle row,col",
		Short: "Walk the lab with one added obstacle and report exited or looped",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if obstacle == "" {
				return usageError("required flag \"obstacle\" not set")
			}
			c, err := lab.ParseCoordinate(obstacle)
			if err != nil {
				return usageError("%v", err)
			}

			l, err := a.loadLab(cmd, args[0])
			if err != nil {
				return err
			}
			if !l.Contains(c) {
				return usageError("obstacle %s outside %dx%d lab", c, l.Height(), l.Width())
			}
			if c == l.Start() {
				return usageError("obstacle %s is the guard's start cell", c)
			}

			report, err := patrol.Walk(l, patrol.WithObstacle(c))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s after %d steps, %d cells\n",
				c, report.Outcome, report.Steps, len(report.Path))
			return nil
		},
	}

	cmd.Flags().StringVarP(&obstacle, "obstacle", "o", "", "Obstacle cell as row,col (0-based).")
	return cmd
}
