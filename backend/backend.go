// SPDX-License-Identifier: MIT
//
// File: backend.go
// Role: the Backend contract shared by the attributed and numerical adapters,
//       plus the adapter options.
//
// Contract:
//   • Vertices are addressed by dense index [0, VertexCount()-1] on both adapters.
//   • Every method returns an error instead of panicking; callers treat any error as fatal.
//   • Adapters are single-owner values: not safe for concurrent use.

package backend

import (
	"io"
	"math/rand"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/graph"
)

// Pair is one directed edge request between two vertex indices.
type Pair struct {
	From, To int
}

// Stats is a snapshot of the graph size.
type Stats struct {
	Vertices int
	Edges    int
	Loops    int
}

// Backend drives one graph library through the benchmark operations.
type Backend interface {
	// Name identifies the backend in logs and reports.
	Name() string

	// Open creates the empty directed graph. It must be called exactly once.
	Open() error

	// AddVertices inserts n vertices and reports how many were actually created.
	AddVertices(n int) (int, error)

	// AddEdges inserts one edge per pair, in order.
	AddEdges(pairs []Pair) error

	// HasEdge reports whether a directed edge from→to exists.
	HasEdge(from, to int) (bool, error)

	// DeleteRandomEdges removes n distinct live edges chosen with rng.
	DeleteRandomEdges(rng *rand.Rand, n int) error

	// DeleteVertices removes the vertices at the given indices with their edges.
	// The remaining vertices are re-indexed densely, preserving order.
	DeleteVertices(indices []int) error

	// Stats reports the current vertex, edge and self-loop counts.
	Stats() Stats

	// Dump writes a human-readable edge list.
	Dump(w io.Writer) error

	// Multigraph returns a gonum view of the current graph for export.
	Multigraph() graph.Multigraph

	// Close releases the graph handle; the Backend is unusable afterwards.
	Close() error
}

// Option customizes an adapter at construction time.
type Option func(*options)

type options struct {
	log         *zap.Logger
	legacyNames bool
}

func newOptions(opts ...Option) options {
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithLogger attaches a logger for per-operation debug records.
// Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("backend: WithLogger(nil)")
	}
	return func(o *options) { o.log = l }
}

// WithLegacyNames makes the attributed adapter restart vertex and edge names at
// "0" on every insertion call. Vertex insertion is insert-if-absent, so repeated
// names hit existing vertices and the graph ends up with fewer vertices than
// requested. The numerical adapter ignores it.
func WithLegacyNames(on bool) Option {
	return func(o *options) { o.legacyNames = on }
}
