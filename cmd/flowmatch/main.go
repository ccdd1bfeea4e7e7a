// SPDX-License-Identifier: MIT

// Command flowmatch solves and generates supply/demand matching problems.
package main

import (
	"os"

	"github.com/katalvlaran/flowmatch/cmd/flowmatch/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
