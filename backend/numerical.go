// SPDX-License-Identifier: MIT
//
// File: numerical.go
// Role: Backend adapter over gonum's directed multigraph.
//
// Design:
//   • Vertex IDs are contiguous int64 in [0, V-1]; removing vertices renumbers the rest.
//   • Edge IDs are contiguous positions in lines, [0, E-1]. Bulk deletion compacts the
//     slice in order, so surviving edges are renumbered the same way vertices are.
//   • Deletion draws distinct IDs from the edge-id range; no registry is needed.

package backend

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/multi"
)

// NumericalName is the Name() of the numerical adapter.
const NumericalName = "gonum"

// Numerical drives a gonum multi.DirectedGraph through bulk operations.
type Numerical struct {
	log *zap.Logger

	g      *multi.DirectedGraph
	vcount int
	lines  []graph.Line // edge id → line
}

// NewNumerical returns an unopened numerical adapter.
func NewNumerical(opts ...Option) *Numerical {
	o := newOptions(opts...)

	return &Numerical{log: o.log.With(zap.String("backend", NumericalName))}
}

// Name implements Backend.
func (b *Numerical) Name() string { return NumericalName }

// Open implements Backend.
func (b *Numerical) Open() error {
	if b.g != nil {
		return wrapf(NumericalName, "Open", ErrAlreadyOpen)
	}
	b.g = multi.NewDirectedGraph()

	return nil
}

// AddVertices implements Backend; all n vertices are always created.
func (b *Numerical) AddVertices(n int) (int, error) {
	if b.g == nil {
		return 0, wrapf(NumericalName, "AddVertices", ErrNotOpen)
	}
	if n < 0 {
		return 0, wrapf(NumericalName, "AddVertices", ErrNegativeCount)
	}
	for i := 0; i < n; i++ {
		b.g.AddNode(multi.Node(b.vcount))
		b.vcount++
	}

	return n, nil
}

// AddEdges implements Backend. The whole batch is validated before any edge is
// added, so a bad index leaves the graph untouched.
func (b *Numerical) AddEdges(pairs []Pair) error {
	if b.g == nil {
		return wrapf(NumericalName, "AddEdges", ErrNotOpen)
	}
	for _, p := range pairs {
		if err := b.checkPair(p.From, p.To); err != nil {
			return wrapf(NumericalName, "AddEdges", err)
		}
	}

	for _, p := range pairs {
		l := b.g.NewLine(b.g.Node(int64(p.From)), b.g.Node(int64(p.To)))
		b.g.SetLine(l)
		b.lines = append(b.lines, l)
	}

	return nil
}

// HasEdge implements Backend.
func (b *Numerical) HasEdge(from, to int) (bool, error) {
	if b.g == nil {
		return false, wrapf(NumericalName, "HasEdge", ErrNotOpen)
	}
	if err := b.checkPair(from, to); err != nil {
		return false, wrapf(NumericalName, "HasEdge", err)
	}

	found := b.g.HasEdgeFromTo(int64(from), int64(to))
	if b.log.Core().Enabled(zap.DebugLevel) {
		if found {
			b.log.Debug("found",
				zap.Int("edge", b.edgeID(from, to)), zap.Int("from", from), zap.Int("to", to))
		} else {
			b.log.Debug("not found", zap.Int("from", from), zap.Int("to", to))
		}
	}

	return found, nil
}

// DeleteRandomEdges implements Backend. The n edge IDs are drawn without
// replacement from [0, E-1] and removed as one batch.
func (b *Numerical) DeleteRandomEdges(rng *rand.Rand, n int) error {
	if b.g == nil {
		return wrapf(NumericalName, "DeleteRandomEdges", ErrNotOpen)
	}
	if n < 0 {
		return wrapf(NumericalName, "DeleteRandomEdges", ErrNegativeCount)
	}
	if n > len(b.lines) {
		return fmt.Errorf("%s: DeleteRandomEdges: want %d, have %d: %w",
			NumericalName, n, len(b.lines), ErrNotEnoughEdges)
	}
	if n == 0 {
		return nil
	}

	dead := make([]bool, len(b.lines))
	for _, id := range sampleDistinct(rng, len(b.lines), n) {
		l := b.lines[id]
		b.log.Debug("delete",
			zap.Int("edge", id), zap.Int64("from", l.From().ID()), zap.Int64("to", l.To().ID()))
		dead[id] = true
	}

	kept := b.lines[:0]
	for id, l := range b.lines {
		if dead[id] {
			b.g.RemoveLine(l.From().ID(), l.To().ID(), l.ID())
			continue
		}
		kept = append(kept, l)
	}
	b.lines = kept

	return nil
}

// DeleteVertices implements Backend. The graph is rebuilt with the survivors
// renumbered in order; edge order is preserved.
func (b *Numerical) DeleteVertices(indices []int) error {
	if b.g == nil {
		return wrapf(NumericalName, "DeleteVertices", ErrNotOpen)
	}
	doomed := make(map[int64]bool, len(indices))
	for _, idx := range indices {
		if err := b.checkIndex(idx); err != nil {
			return wrapf(NumericalName, "DeleteVertices", err)
		}
		doomed[int64(idx)] = true
	}

	renum := make(map[int64]int64, b.vcount)
	ng := multi.NewDirectedGraph()
	for id := int64(0); id < int64(b.vcount); id++ {
		if doomed[id] {
			b.log.Debug("delete vertex", zap.Int64("vertex", id))
			continue
		}
		nid := int64(len(renum))
		renum[id] = nid
		ng.AddNode(multi.Node(nid))
	}

	lines := make([]graph.Line, 0, len(b.lines))
	for _, l := range b.lines {
		f, okf := renum[l.From().ID()]
		t, okt := renum[l.To().ID()]
		if !okf || !okt {
			continue
		}
		nl := ng.NewLine(ng.Node(f), ng.Node(t))
		ng.SetLine(nl)
		lines = append(lines, nl)
	}

	b.g, b.lines, b.vcount = ng, lines, len(renum)

	return nil
}

// Stats implements Backend.
func (b *Numerical) Stats() Stats {
	s := Stats{Vertices: b.vcount, Edges: len(b.lines)}
	for _, l := range b.lines {
		if l.From().ID() == l.To().ID() {
			s.Loops++
		}
	}

	return s
}

// Dump implements Backend; edges are listed by edge id.
func (b *Numerical) Dump(w io.Writer) error {
	if b.g == nil {
		return wrapf(NumericalName, "Dump", ErrNotOpen)
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "graph %s: %d vertices, %d edges\n", NumericalName, b.vcount, len(b.lines))
	for _, l := range b.lines {
		fmt.Fprintf(bw, "  (%d,%d)\n", l.From().ID(), l.To().ID())
	}

	return bw.Flush()
}

// Multigraph implements Backend. The live graph is returned; it is valid until
// the next mutation.
func (b *Numerical) Multigraph() graph.Multigraph {
	if b.g == nil {
		return multi.NewDirectedGraph()
	}

	return b.g
}

// Close implements Backend.
func (b *Numerical) Close() error {
	if b.g == nil {
		return wrapf(NumericalName, "Close", ErrNotOpen)
	}
	b.g, b.lines, b.vcount = nil, nil, 0

	return nil
}

// edgeID returns the smallest edge id from→to, or -1.
func (b *Numerical) edgeID(from, to int) int {
	for id, l := range b.lines {
		if l.From().ID() == int64(from) && l.To().ID() == int64(to) {
			return id
		}
	}

	return -1
}

func (b *Numerical) checkIndex(idx int) error {
	if idx < 0 || idx >= b.vcount {
		return fmt.Errorf("index %d of %d: %w", idx, b.vcount, ErrVertexIndex)
	}

	return nil
}

func (b *Numerical) checkPair(from, to int) error {
	if err := b.checkIndex(from); err != nil {
		return err
	}

	return b.checkIndex(to)
}

// sampleDistinct draws n distinct values from [0, m-1] with a partial
// Fisher–Yates shuffle. Requires 0 < n <= m.
func sampleDistinct(rng *rand.Rand, m, n int) []int {
	perm := make([]int, m)
	for i := range perm {
		perm[i] = i
	}
	for i := 0; i < n; i++ {
		j := i + rng.Intn(m-i)
		perm[i], perm[j] = perm[j], perm[i]
	}

	return perm[:n]
}
