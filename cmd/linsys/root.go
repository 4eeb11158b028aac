// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/linsys/config"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	v          *viper.Viper
	configPath string
	cfg        *config.Config
	logger     *logrus.Logger
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{v: config.New(), stdin: stdin, stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "linsys",
		Short: "Exact rational solver for small linear systems",
		Long: `linsys solves A·x = b with Gauss, Gauss-Jordan, LU, Cholesky, Thomas,
Jacobi or Gauss-Seidel and records every step of the computation.
Direct methods work in exact fractions; iterative methods in float64.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.v, a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = config.NewLogger(cfg.Log.Level, a.stderr)

			return nil
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "configuration file (YAML)")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	_ = a.v.BindPFlag("log.level", pf.Lookup("log-level"))

	root.AddCommand(
		newSolveCmd(a),
		newServeCmd(a),
		newBatchCmd(a),
		newInteractiveCmd(a),
		newConfigCmd(a),
	)

	return root
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cfg.Write(a.stdout)
		},
	}
}

func newInteractiveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Enter a system at the prompt and solve it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConsole(a)
		},
	}
}
