package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/gallivant/lab"
)

// loadLab parses the lab named by path; "-" reads standard input
func (a *app) loadLab(cmd *cobra.Command, path string) (*lab.Lab, error) {
	var (
		l   *lab.Lab
		err error
	)
	if path == "-" {
		l, err = lab.ParseReader(cmd.InOrStdin())
	} else {
		f, openErr := os.Open(path)
		if openErr != nil {
			return nil, fmt.Errorf("open lab: %w", openErr)
		}
		defer f.Close()
		l, err = lab.ParseReader(f)
	}
	if err != nil {
		return nil, err
	}

	a.logger.Debug("lab loaded",
		zap.String("path", path),
		zap.Int("height", l.Height()),
		zap.Int("width", l.Width()),
		zap.Stringer("start", l.Start()),
	)
	return l, nil
}
