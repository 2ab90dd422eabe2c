// SPDX-License-Identifier: MIT

// Command graphbench-core runs the benchmark workload against the attributed
// core graph.
//
// Usage:
//
//	graphbench-core NUM_V NUM_E X [--debug|-d] [--write|-w] [--seed N] [--legacy-names] [--report FILE]
package main

import (
	"os"

	"github.com/katalvlaran/graphbench/backend"
	"github.com/katalvlaran/graphbench/cli"
)

func main() {
	os.Exit(cli.Main(func(opts ...backend.Option) backend.Backend {
		return backend.NewAttributed(opts...)
	}))
}
