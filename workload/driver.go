// SPDX-License-Identifier: MIT
//
// File: driver.go
// Role: runs the benchmark phase sequence against one Backend.
//
// Sequence:
//   open → V vertices → E edges → floor(V·X) vertices → floor(E·X) edges →
//   [dump "Initial graph"] → floor(E·X) lookups → floor(E·X) deletions →
//   [dump "Final graph"] → [export] → close
//
// Random draws for edge endpoints and lookups come from one generator in a
// fixed order, so two backends run with the same Config see the same index
// sequence. Deletion hands the generator to the backend, which samples from
// its own edge-id space.
//
// A Driver is single-use and not safe for concurrent use.

package workload

import (
	"fmt"
	"io"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/graphbench/backend"
)

// Driver owns one Backend for the duration of a run.
type Driver struct {
	b   backend.Backend
	cfg Config

	out io.Writer
	log *zap.Logger
	rng *rand.Rand

	report Report
	opened bool
}

// NewDriver validates cfg and prepares a run against b.
func NewDriver(b backend.Backend, cfg Config, opts ...Option) (*Driver, error) {
	if b == nil {
		return nil, ErrNilBackend
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	d := defaultDriver(cfg)
	d.b = b
	for _, opt := range opts {
		opt(&d)
	}
	d.log = d.log.With(zap.String("backend", b.Name()))
	d.report = Report{
		RunID:             uuid.NewString(),
		Backend:           b.Name(),
		Config:            cfg,
		RequestedVertices: cfg.Vertices + cfg.ScaledVertices(),
	}

	return &d, nil
}

// Run executes the phase sequence. It stops at the first error, closes the
// graph if it was opened, and returns the error wrapped with the phase name
// together with the phases completed so far.
func (d *Driver) Run() (Report, error) {
	start := time.Now()
	d.log.Info("run",
		zap.String("run_id", d.report.RunID),
		zap.Int("vertices", d.cfg.Vertices),
		zap.Int("edges", d.cfg.Edges),
		zap.Float64("scale", d.cfg.Scale),
		zap.Int64("seed", d.cfg.Seed))

	err := d.run()
	if err != nil && d.opened {
		if cerr := d.b.Close(); cerr != nil {
			d.log.Warn("close after failure", zap.Error(cerr))
		}
	}
	d.report.Total = time.Since(start)
	if err != nil {
		return d.report, err
	}
	d.log.Info("done", d.report.Fields()...)

	return d.report, nil
}

// step is one timed phase.
type step struct {
	name string
	fn   func() error
}

func (d *Driver) run() error {
	scaledV, scaledE := d.cfg.ScaledVertices(), d.cfg.ScaledEdges()

	build := []step{
		{PhaseOpen, d.open},
		{PhaseBaseVertices, func() error { return d.addVertices(d.cfg.Vertices) }},
		{PhaseBaseEdges, func() error { return d.addEdges(d.cfg.Edges) }},
		{PhaseScaledVertices, func() error { return d.addVertices(scaledV) }},
		{PhaseScaledEdges, func() error { return d.addEdges(scaledE) }},
	}
	probe := []step{
		{PhaseLookup, func() error { return d.lookup(scaledE) }},
		{PhaseDelete, func() error { return d.deleteEdges(scaledE) }},
	}

	if err := d.steps(build); err != nil {
		return err
	}
	if d.cfg.Debug {
		if err := d.dump("Initial graph"); err != nil {
			return err
		}
	}
	if err := d.steps(probe); err != nil {
		return err
	}
	if d.cfg.Debug {
		if err := d.dump("Final graph"); err != nil {
			return err
		}
	}
	if d.cfg.Write {
		if err := d.phase(PhaseExport, d.export); err != nil {
			return err
		}
	}

	return d.phase(PhaseClose, d.close)
}

func (d *Driver) steps(ss []step) error {
	for _, s := range ss {
		if err := d.phase(s.name, s.fn); err != nil {
			return err
		}
	}

	return nil
}

// phase times fn and records the graph size after it.
func (d *Driver) phase(name string, fn func() error) error {
	t0 := time.Now()
	if err := fn(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	elapsed := time.Since(t0)

	var s backend.Stats
	if d.opened {
		s = d.b.Stats()
	}
	d.report.Phases = append(d.report.Phases, PhaseReport{
		Name: name, Elapsed: elapsed, Vertices: s.Vertices, Edges: s.Edges,
	})
	d.log.Info("phase",
		zap.String("phase", name),
		zap.Duration("elapsed", elapsed),
		zap.Int("vertices", s.Vertices),
		zap.Int("edges", s.Edges))

	return nil
}

func (d *Driver) open() error {
	if err := d.b.Open(); err != nil {
		return err
	}
	d.opened = true

	return nil
}

func (d *Driver) close() error {
	err := d.b.Close()
	d.opened = false

	return err
}

func (d *Driver) addVertices(n int) error {
	created, err := d.b.AddVertices(n)
	d.report.CreatedVertices += created
	if err != nil {
		return err
	}
	if created < n {
		d.log.Debug("vertex shortfall", zap.Int("requested", n), zap.Int("created", created))
	}

	return nil
}

// addEdges draws n endpoint pairs uniformly over the current vertex set.
func (d *Driver) addEdges(n int) error {
	if n == 0 {
		return nil
	}
	vcount := d.b.Stats().Vertices
	pairs := make([]backend.Pair, n)
	for i := range pairs {
		from, err := pick(d.rng, vcount)
		if err != nil {
			return err
		}
		to, err := pick(d.rng, vcount)
		if err != nil {
			return err
		}
		pairs[i] = backend.Pair{From: from, To: to}
	}

	return d.b.AddEdges(pairs)
}

func (d *Driver) lookup(n int) error {
	vcount := d.b.Stats().Vertices
	for i := 0; i < n; i++ {
		from, err := pick(d.rng, vcount)
		if err != nil {
			return err
		}
		to, err := pick(d.rng, vcount)
		if err != nil {
			return err
		}
		ok, err := d.b.HasEdge(from, to)
		if err != nil {
			return err
		}
		d.report.Lookups++
		if ok {
			d.report.Hits++
		} else {
			d.report.Misses++
		}
	}

	return nil
}

func (d *Driver) deleteEdges(n int) error {
	if err := d.b.DeleteRandomEdges(d.rng, n); err != nil {
		return err
	}
	d.report.Deleted += n

	return nil
}

func (d *Driver) dump(title string) error {
	if _, err := fmt.Fprintf(d.out, "%s:\n", title); err != nil {
		return err
	}

	return d.b.Dump(d.out)
}

func (d *Driver) export() error {
	g := d.b.Multigraph()

	dotPath := d.cfg.OutputBase + ".dot"
	if err := backend.WriteDOT(dotPath, g, filepath.Base(d.cfg.OutputBase)); err != nil {
		return err
	}
	d.wrote(dotPath)

	graphmlPath := d.cfg.OutputBase + ".graphml"
	if err := backend.WriteGraphML(graphmlPath, g); err != nil {
		return err
	}
	d.wrote(graphmlPath)

	return nil
}

func (d *Driver) wrote(path string) {
	d.report.Files = append(d.report.Files, path)
	fmt.Fprintf(d.out, "Wrote %s\n", path)
}
