// Command gallivant solves guard-patrol lab puzzles: it counts the cells
// the guard visits and the obstacle placements that trap it in a loop.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/gallivant/config"
	"github.com/lixenwraith/gallivant/logging"
)

// ExitError carries a specific process exit code
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) error {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// app is the state shared by every subcommand of one invocation
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg    *config.Config
	logger *zap.Logger
}

func main() {
	if err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "gallivant:", err)
		os.Exit(exitCode(err))
	}
}

// run executes one CLI invocation; split from main for tests
func run(in io.Reader, out, errOut io.Writer, args []string) error {
	a := &app{logger: zap.NewNop()}
	root := newRootCmd(a)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetArgs(args)

	err := root.Execute()
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	return err
}

func exitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "gallivant",
		Short: "Guard patrol lab solver",
		Long: `gallivant simulates a guard patrolling a lab map.

The guard walks forward from the ^ marker, turns right at every # obstacle
and stops when it leaves the map. gallivant counts the distinct cells the
guard visits and the cells where one added obstacle would trap it in a loop.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a YAML config file.")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error.")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "Log format: text or json.")

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError("%v", err)
	})

	root.AddCommand(
		newSolveCmd(a),
		newProbeCmd(a),
		newGenCmd(a),
		newViewCmd(a),
	)
	return root
}

// setup resolves configuration and builds the logger before any subcommand
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return usageError("%v", err)
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return usageError("%v", err)
	}

	a.cfg = cfg
	a.logger = logger.With(
		zap.String("run_id", uuid.NewString()),
		zap.String("command", cmd.Name()),
	)
	return nil
}

// exactArgs is cobra.ExactArgs reported as a usage error
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return usageError("%v", err)
		}
		return nil
	}
}
