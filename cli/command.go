// SPDX-License-Identifier: MIT
//
// File: command.go
// Role: the cobra command shared by both benchmark binaries.
//
// Exit status is 0 on success and 1 on any usage, backend or export error.
// Usage errors print "error: <msg>" followed by a --help hint; other errors
// print "error: <msg>".

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/graphbench/backend"
	"github.com/katalvlaran/graphbench/workload"
)

// Factory builds an unopened backend with the given options.
type Factory func(opts ...backend.Option) backend.Backend

type flags struct {
	debug       bool
	write       bool
	legacyNames bool
	seed        int64
	report      string
}

// NewCommand returns the root command for prog.
func NewCommand(prog string, factory Factory, stdout, stderr io.Writer) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   prog + " NUM_V NUM_E X",
		Short: "Benchmark a graph backend with a random insert/lookup/delete workload",
		Long: `Builds a directed graph of NUM_V vertices and NUM_E random edges, grows it by
floor(NUM_V*X) vertices and floor(NUM_E*X) edges, then runs floor(NUM_E*X)
random edge lookups and floor(NUM_E*X) random edge deletions.

NUM_V and NUM_E are positive integers; X is a number in [0, 1].`,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := ParseOperands(args)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("seed") {
				f.seed = time.Now().UnixNano()
			}

			return run(prog, factory, ops, f, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usagef(err.Error())
	})

	cmd.Flags().BoolVarP(&f.debug, "debug", "d", false, "log every operation and dump the graph before lookups and after deletions")
	cmd.Flags().BoolVarP(&f.write, "write", "w", false, "write the final graph to <program>.dot and <program>.graphml")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "random seed (default: current time)")
	cmd.Flags().BoolVar(&f.legacyNames, "legacy-names", false, "restart vertex and edge names at 0 on every insertion batch")
	cmd.Flags().StringVar(&f.report, "report", "", "write a run report to `FILE` (YAML for .yaml/.yml, JSON otherwise)")

	return cmd
}

func run(prog string, factory Factory, ops Operands, f flags, stdout, stderr io.Writer) error {
	log := NewLogger(f.debug, stderr)
	defer func() { _ = log.Sync() }()

	cfg := workload.Config{
		Vertices:    ops.Vertices,
		Edges:       ops.Edges,
		Scale:       ops.Scale,
		Debug:       f.debug,
		Write:       f.write,
		Seed:        f.seed,
		LegacyNames: f.legacyNames,
		OutputBase:  prog,
	}
	b := factory(backend.WithLogger(log), backend.WithLegacyNames(f.legacyNames))

	d, err := workload.NewDriver(b, cfg, workload.WithOutput(stdout), workload.WithLogger(log))
	if err != nil {
		return err
	}
	rep, runErr := d.Run()
	if f.report != "" {
		if err = writeReport(f.report, rep); err != nil {
			log.Error("report", zap.String("file", f.report), zap.Error(err))
			if runErr == nil {
				return err
			}
		}
	}

	return runErr
}

func writeReport(path string, rep workload.Report) error {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	if err = rep.Encode(fh, workload.FormatFor(path)); err != nil {
		_ = fh.Close()
		return err
	}

	return fh.Close()
}

// Execute runs the command for args[0] with args[1:] and returns the exit status.
func Execute(args []string, factory Factory, stdout, stderr io.Writer) int {
	prog := "graphbench"
	if len(args) > 0 {
		prog = filepath.Base(args[0])
		args = args[1:]
	}

	cmd := NewCommand(prog, factory, stdout, stderr)
	cmd.SetArgs(append([]string{}, args...))
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		if errors.Is(err, ErrUsage) {
			fmt.Fprintf(stderr, "Try '%s --help' for more information.\n", prog)
		}
		return 1
	}

	return 0
}

// Main is Execute over the process arguments and standard streams.
func Main(factory Factory) int {
	return Execute(os.Args, factory, os.Stdout, os.Stderr)
}
