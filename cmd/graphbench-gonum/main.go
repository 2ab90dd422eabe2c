// SPDX-License-Identifier: MIT

// Command graphbench-gonum runs the benchmark workload against a gonum
// directed multigraph.
//
// Usage:
//
//	graphbench-gonum NUM_V NUM_E X [--debug|-d] [--write|-w] [--seed N] [--report FILE]
package main

import (
	"os"

	"github.com/katalvlaran/graphbench/backend"
	"github.com/katalvlaran/graphbench/cli"
)

func main() {
	os.Exit(cli.Main(func(opts ...backend.Option) backend.Backend {
		return backend.NewNumerical(opts...)
	}))
}
