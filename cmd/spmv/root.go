// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsparse/cmd/spmv/config"
	"github.com/katalvlaran/lvsparse/render"
	"github.com/katalvlaran/lvsparse/sparse"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer

	cfgPath string
	flags   config.Config // flag values; applied only when set explicitly

	cfg   config.Config
	log   *slog.Logger
	runID uuid.UUID
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, flags: config.Default()}

	root := &cobra.Command{
		Use:   "spmv",
		Short: "Load sparse matrices and time their operations",
		Long: `spmv reads a Matrix Market coordinate file (optionally gzip, zstd or lz4
compressed) into a sparse matrix and either times its operations or prints it.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "yaml configuration file")
	pf.StringVar(&a.flags.Orientation, "orientation", config.DefaultOrientation, "storage orientation: row|column")
	pf.IntVar(&a.flags.Repeat, "repeat", config.DefaultRepeat, "MulVec repetitions per state")
	pf.StringVar(&a.flags.Log.Level, "log-level", config.DefaultLogLevel, "log level: debug|info|warn|error")
	pf.StringVar(&a.flags.Log.Format, "log-format", config.DefaultLogFormat, "log format: text|json")
	pf.StringVar(&a.flags.MetricsFile, "metrics-file", "", "write Prometheus textfile metrics to this path")
	pf.BoolVar(&a.flags.NoColor, "no-color", false, "disable styled output")

	root.AddCommand(a.runCmd(), a.showCmd(), a.configCmd())

	return root
}

// setup loads the config file, applies explicitly set flags over it and
// builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}

	fs := cmd.Flags()
	if fs.Changed("orientation") {
		cfg.Orientation = a.flags.Orientation
	}
	if fs.Changed("repeat") {
		cfg.Repeat = a.flags.Repeat
	}
	if fs.Changed("log-level") {
		cfg.Log.Level = a.flags.Log.Level
	}
	if fs.Changed("log-format") {
		cfg.Log.Format = a.flags.Log.Format
	}
	if fs.Changed("metrics-file") {
		cfg.MetricsFile = a.flags.MetricsFile
	}
	if fs.Changed("no-color") {
		cfg.NoColor = a.flags.NoColor
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	a.runID = uuid.New()
	if a.log, err = newLogger(a.stderr, cfg.Log, a.runID); err != nil {
		return err
	}
	a.log.Debug("spmv: configured", "config", a.cfgPath, "orientation", cfg.Orientation, "repeat", cfg.Repeat)

	return nil
}

// matrixOptions forwards the driver logger and tuning to sparse.New.
func (a *app) matrixOptions() []sparse.Option {
	return []sparse.Option{
		sparse.WithLogger(a.log),
		sparse.WithBTreeDegree(a.cfg.BTreeDegree),
	}
}

func (a *app) printer() *render.Printer {
	if a.cfg.NoColor {
		return render.NewPrinter(a.stdout, render.WithStyled(false))
	}
	return render.NewPrinter(a.stdout)
}

// dispatch runs the row- or column-major instantiation of a command.
func dispatch(orientation string, row, col func() error) error {
	switch orientation {
	case config.OrientationRow:
		return row()
	case config.OrientationColumn:
		return col()
	default:
		return fmt.Errorf("orientation %q: %w", orientation, config.ErrInvalid)
	}
}

func (a *app) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := a.cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(raw)
			return err
		},
	}
}
