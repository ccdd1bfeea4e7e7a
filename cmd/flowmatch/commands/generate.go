// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/flowmatch/problem"
)

var (
	genSources int
	genSinks   int
	genSeed    int64
	genName    string
	genOutput  string
)

// generate: write a random complete bipartite problem.
func generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random complete bipartite problem",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := problem.DefaultGenerateConfig()
			cfg.Name = genName
			cfg.Sources = genSources
			cfg.Sinks = genSinks

			p, err := problem.Generate(rand.New(rand.NewSource(genSeed)), cfg)
			if err != nil {
				return err
			}
			logger.V(1).Info("generated problem",
				"sources", cfg.Sources, "sinks", cfg.Sinks, "costs", len(p.Costs), "seed", genSeed)

			if genOutput == "" {
				return p.Encode(cmd.OutOrStdout())
			}
			f, err := os.Create(genOutput)
			if err != nil {
				return err
			}
			if err := p.Encode(f); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", genOutput)
			return nil
		},
	}
	def := problem.DefaultGenerateConfig()
	cmd.Flags().IntVar(&genSources, "sources", def.Sources, "number of sources")
	cmd.Flags().IntVar(&genSinks, "sinks", def.Sinks, "number of sinks")
	cmd.Flags().Int64Var(&genSeed, "seed", 1, "random seed")
	cmd.Flags().StringVar(&genName, "name", def.Name, "problem name")
	cmd.Flags().StringVarP(&genOutput, "output", "o", "", "output file (default: stdout)")
	return cmd
}
