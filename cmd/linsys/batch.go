package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/linsys/batch"
)

func newBatchCmd(a *app) *cobra.Command {
	var full bool
	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Solve every problem of a YAML file concurrently and print a YAML report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			problems, err := batch.LoadFile(args[0])
			if err != nil {
				return err
			}
			out, err := batch.Run(cmd.Context(), problems, a.cfg.Batch.Workers, a.logger, a.cfg.Defaults())
			if err != nil {
				return err
			}
			solved, failed := batch.Summary(out)
			a.logger.WithField("solved", solved).WithField("failed", failed).Info("batch finished")

			return batch.WriteReport(a.stdout, out, full)
		},
	}
	cmd.Flags().Int("workers", 4, "concurrent solves")
	cmd.Flags().BoolVar(&full, "full", false, "include the full response (steps, factors) per problem")
	_ = a.v.BindPFlag("batch.workers", cmd.Flags().Lookup("workers"))

	return cmd
}
