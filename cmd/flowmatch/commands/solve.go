// SPDX-License-Identifier: MIT

package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/flowmatch/matching"
	"github.com/katalvlaran/flowmatch/metrics"
	"github.com/katalvlaran/flowmatch/problem"
	"github.com/katalvlaran/flowmatch/render"
)

var (
	problemFile      string
	label            string
	maxAugmentations int
	showMetrics      bool
	timeout          time.Duration
)

// solve -f <file>: match a problem file and print the report.
func solveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a problem file and print the matching",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := problem.Load(problemFile)
			if err != nil {
				return err
			}
			sources, sinks, costs, err := p.Tables()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			opts := []matching.Option{
				matching.WithLogger(logger),
				matching.WithMaxAugmentations(maxAugmentations),
			}
			var rec *metrics.Recorder
			if showMetrics {
				rec = metrics.NewRecorder()
				opts = append(opts, matching.WithObserver(rec))
			}

			res, err := matching.Solve(ctx, sources, sinks, costs, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", problemFile, err)
			}

			title := label
			if title == "" {
				title = p.Name
			}
			out := cmd.OutOrStdout()
			if err := render.Render(out, res, costs, title); err != nil {
				return err
			}
			if rec != nil {
				fmt.Fprintln(out)
				return rec.WriteText(out)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&problemFile, "file", "f", "", "problem file (YAML)")
	cmd.Flags().StringVar(&label, "label", "", "report title (default: problem name)")
	cmd.Flags().IntVar(&maxAugmentations, "max-augmentations", 0, "abort after this many augmenting paths (0 = unlimited)")
	cmd.Flags().BoolVar(&showMetrics, "metrics", false, "print Prometheus metrics after the report")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "abort the solve after this long (0 = no limit)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
