// SPDX-License-Identifier: MIT

package commands

import (
	"log"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/spf13/cobra"
)

var (
	verbosity int
	logger    logr.Logger
)

// Execute runs the flowmatch command line.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "flowmatch",
		Short:        "Minimum-cost matching of supply to demand",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			stdr.SetVerbosity(verbosity)
			logger = stdr.New(log.New(cmd.ErrOrStderr(), "", log.LstdFlags)).WithName("flowmatch")
			return nil
		},
	}

	root.PersistentFlags().IntVarP(&verbosity, "verbosity", "v", 0, "log verbosity (1 logs every augmenting path)")

	root.AddCommand(solveCmd(), generateCmd())
	return root
}
