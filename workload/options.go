// SPDX-License-Identifier: MIT

package workload

import (
	"io"
	"math/rand"
	"os"

	"go.uber.org/zap"
)

// Option customizes a Driver.
type Option func(*Driver)

// WithOutput sets the writer for graph dumps and "Wrote <file>" lines.
// Defaults to os.Stdout. Panics on nil.
func WithOutput(w io.Writer) Option {
	if w == nil {
		panic("workload: WithOutput(nil)")
	}
	return func(d *Driver) { d.out = w }
}

// WithLogger sets the logger for phase records. Defaults to a no-op logger.
// Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("workload: WithLogger(nil)")
	}
	return func(d *Driver) { d.log = l }
}

// WithRand replaces the generator seeded from Config.Seed. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("workload: WithRand(nil)")
	}
	return func(d *Driver) { d.rng = r }
}

func defaultDriver(cfg Config) Driver {
	return Driver{
		cfg: cfg,
		out: os.Stdout,
		log: zap.NewNop(),
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}
}
