// SPDX-License-Identifier: MIT
//
// File: attributed.go
// Role: Backend adapter over the attributed graph in package core.
//
// Design:
//   • Vertices are named by decimal strings; names[i] is the vertex at dense index i,
//     so picking a random vertex is a slice index, never a retry loop over names.
//   • core has no stable integer edge space, so the adapter keeps an edge registry:
//     edge IDs in insertion order, tombstoned ("") on deletion. Deletion samples a
//     registry slot and re-samples tombstones.

package backend

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/multi"

	"github.com/katalvlaran/graphbench/core"
)

// AttributedName is the Name() of the attributed adapter.
const AttributedName = "core"

// Attributed drives a directed core.Graph with loops and parallel edges enabled.
type Attributed struct {
	opts options
	log  *zap.Logger

	g *core.Graph

	names      []string // dense index → vertex name
	nextVertex int      // next vertex name when names are monotonic
	nextEdge   int      // next edge name when names are monotonic

	registry []string       // edge registry; "" marks a deleted slot
	slot     map[string]int // edge ID → registry slot
	live     int            // non-tombstoned registry entries
}

// NewAttributed returns an unopened attributed adapter.
func NewAttributed(opts ...Option) *Attributed {
	o := newOptions(opts...)

	return &Attributed{
		opts: o,
		log:  o.log.With(zap.String("backend", AttributedName)),
	}
}

// Name implements Backend.
func (a *Attributed) Name() string { return AttributedName }

// Open implements Backend.
func (a *Attributed) Open() error {
	if a.g != nil {
		return wrapf(AttributedName, "Open", ErrAlreadyOpen)
	}
	a.g = core.NewGraph(core.WithDirected(true), core.WithLoops(), core.WithMultiEdges())
	a.slot = make(map[string]int)

	return nil
}

// AddVertices implements Backend.
//
// Names continue a monotonic counter, or restart at "0" with WithLegacyNames.
// Insertion is insert-if-absent: a name that already exists is skipped and not counted.
func (a *Attributed) AddVertices(n int) (int, error) {
	if a.g == nil {
		return 0, wrapf(AttributedName, "AddVertices", ErrNotOpen)
	}
	if n < 0 {
		return 0, wrapf(AttributedName, "AddVertices", ErrNegativeCount)
	}

	start := a.nextVertex
	if a.opts.legacyNames {
		start = 0
	}

	created := 0
	for i := 0; i < n; i++ {
		name := strconv.Itoa(start + i)
		if a.g.HasVertex(name) {
			a.log.Debug("vertex exists", zap.String("vertex", name))
			continue
		}
		if err := a.g.AddVertex(name); err != nil {
			return created, wrapf(AttributedName, "AddVertex("+name+")", err)
		}
		a.names = append(a.names, name)
		created++
		a.log.Debug("adding vertex", zap.String("vertex", name))
	}
	if start+n > a.nextVertex {
		a.nextVertex = start + n
	}

	return created, nil
}

// AddEdges implements Backend. Each edge is labelled with its insertion index
// and appended to the edge registry.
func (a *Attributed) AddEdges(pairs []Pair) error {
	if a.g == nil {
		return wrapf(AttributedName, "AddEdges", ErrNotOpen)
	}

	base := a.nextEdge
	if a.opts.legacyNames {
		base = 0
	}
	for i, p := range pairs {
		from, to, err := a.endpoints(p.From, p.To)
		if err != nil {
			return wrapf(AttributedName, "AddEdges", err)
		}
		name := strconv.Itoa(base + i)
		eid, err := a.g.AddEdge(from, to, core.WithEdgeName(name))
		if err != nil {
			return wrapf(AttributedName, fmt.Sprintf("AddEdge(%s,%s)", from, to), err)
		}
		a.slot[eid] = len(a.registry)
		a.registry = append(a.registry, eid)
		a.live++
		a.log.Debug("adding edge",
			zap.String("edge", name), zap.String("from", from), zap.String("to", to))
	}
	if !a.opts.legacyNames {
		a.nextEdge += len(pairs)
	}

	return nil
}

// HasEdge implements Backend.
func (a *Attributed) HasEdge(from, to int) (bool, error) {
	if a.g == nil {
		return false, wrapf(AttributedName, "HasEdge", ErrNotOpen)
	}
	u, v, err := a.endpoints(from, to)
	if err != nil {
		return false, wrapf(AttributedName, "HasEdge", err)
	}

	e, err := a.g.FindEdge(u, v)
	switch {
	case errors.Is(err, core.ErrEdgeNotFound):
		a.log.Debug("not found", zap.String("from", u), zap.String("to", v))
		return false, nil
	case err != nil:
		return false, wrapf(AttributedName, fmt.Sprintf("FindEdge(%s,%s)", u, v), err)
	}
	a.log.Debug("found",
		zap.String("edge", e.Name), zap.String("from", e.From), zap.String("to", e.To))

	return true, nil
}

// DeleteRandomEdges implements Backend by sampling registry slots.
func (a *Attributed) DeleteRandomEdges(rng *rand.Rand, n int) error {
	if a.g == nil {
		return wrapf(AttributedName, "DeleteRandomEdges", ErrNotOpen)
	}
	if n < 0 {
		return wrapf(AttributedName, "DeleteRandomEdges", ErrNegativeCount)
	}
	if n > a.live {
		return fmt.Errorf("%s: DeleteRandomEdges: want %d, have %d: %w",
			AttributedName, n, a.live, ErrNotEnoughEdges)
	}

	for i := 0; i < n; i++ {
		// live > 0 here, so the registry holds at least one non-tombstoned slot.
		idx := rng.Intn(len(a.registry))
		for a.registry[idx] == "" {
			idx = rng.Intn(len(a.registry))
		}
		eid := a.registry[idx]

		e, err := a.g.GetEdge(eid)
		if err != nil {
			return wrapf(AttributedName, "GetEdge("+eid+")", err)
		}
		a.log.Debug("delete",
			zap.String("edge", e.Name), zap.String("from", e.From), zap.String("to", e.To))

		if err = a.g.RemoveEdge(eid); err != nil {
			return wrapf(AttributedName, "RemoveEdge("+eid+")", err)
		}
		a.tombstone(eid)
	}

	return nil
}

// DeleteVertices implements Backend.
func (a *Attributed) DeleteVertices(indices []int) error {
	if a.g == nil {
		return wrapf(AttributedName, "DeleteVertices", ErrNotOpen)
	}

	doomed := make(map[string]bool, len(indices))
	for _, idx := range indices {
		name, err := a.vertexName(idx)
		if err != nil {
			return wrapf(AttributedName, "DeleteVertices", err)
		}
		doomed[name] = true
	}

	kept := a.names[:0]
	for _, name := range a.names {
		if !doomed[name] {
			kept = append(kept, name)
			continue
		}
		incident, err := a.g.IncidentEdges(name)
		if err != nil {
			return wrapf(AttributedName, "IncidentEdges("+name+")", err)
		}
		if err = a.g.RemoveVertex(name); err != nil {
			return wrapf(AttributedName, "RemoveVertex("+name+")", err)
		}
		for _, e := range incident {
			a.tombstone(e.ID)
		}
		a.log.Debug("delete vertex", zap.String("vertex", name))
	}
	a.names = kept

	return nil
}

// Stats implements Backend.
func (a *Attributed) Stats() Stats {
	if a.g == nil {
		return Stats{}
	}
	s := a.g.Stats()

	return Stats{Vertices: s.VertexCount, Edges: s.EdgeCount, Loops: s.LoopCount}
}

// Dump implements Backend. Vertices are listed in index order, each followed by
// its outgoing edges in creation order.
func (a *Attributed) Dump(w io.Writer) error {
	if a.g == nil {
		return wrapf(AttributedName, "Dump", ErrNotOpen)
	}
	bw := bufio.NewWriter(w)
	s := a.Stats()
	fmt.Fprintf(bw, "graph %s: %d vertices, %d edges\n", AttributedName, s.Vertices, s.Edges)
	for _, name := range a.names {
		out, err := a.g.OutEdges(name)
		if err != nil {
			return wrapf(AttributedName, "OutEdges("+name+")", err)
		}
		for _, e := range out {
			fmt.Fprintf(bw, "  (%s,%s)\n", e.From, e.To)
		}
	}

	return bw.Flush()
}

// Multigraph implements Backend with a gonum snapshot. Node IDs are the dense
// vertex indices; nodes carry the vertex names as DOT IDs and lines carry the
// edge names as a DOT attribute.
func (a *Attributed) Multigraph() graph.Multigraph {
	mg := multi.NewDirectedGraph()
	if a.g == nil {
		return mg
	}

	index := make(map[string]int64, len(a.names))
	for i, name := range a.names {
		index[name] = int64(i)
		mg.AddNode(namedNode{id: int64(i), name: name})
	}
	for _, e := range a.g.Edges() {
		f, t := mg.Node(index[e.From]), mg.Node(index[e.To])
		l := mg.NewLine(f, t).(multi.Line)
		mg.SetLine(namedLine{Line: l, name: e.Name})
	}

	return mg
}

// Close implements Backend.
func (a *Attributed) Close() error {
	if a.g == nil {
		return wrapf(AttributedName, "Close", ErrNotOpen)
	}
	a.g = nil
	a.names, a.registry, a.slot = nil, nil, nil
	a.live = 0

	return nil
}

func (a *Attributed) vertexName(idx int) (string, error) {
	if idx < 0 || idx >= len(a.names) {
		return "", fmt.Errorf("index %d of %d: %w", idx, len(a.names), ErrVertexIndex)
	}

	return a.names[idx], nil
}

func (a *Attributed) endpoints(from, to int) (string, string, error) {
	u, err := a.vertexName(from)
	if err != nil {
		return "", "", err
	}
	v, err := a.vertexName(to)
	if err != nil {
		return "", "", err
	}

	return u, v, nil
}

func (a *Attributed) tombstone(eid string) {
	idx, ok := a.slot[eid]
	if !ok {
		return
	}
	a.registry[idx] = ""
	delete(a.slot, eid)
	a.live--
}

// namedNode is a gonum node that renders as its vertex name in DOT.
type namedNode struct {
	id   int64
	name string
}

func (n namedNode) ID() int64      { return n.id }
func (n namedNode) DOTID() string  { return n.name }
func (n namedNode) String() string { return n.name }

// namedLine is a gonum line that carries the core edge name.
type namedLine struct {
	multi.Line
	name string
}

// Attributes implements encoding.Attributer.
func (l namedLine) Attributes() []encoding.Attribute {
	if l.name == "" {
		return nil
	}
	return []encoding.Attribute{{Key: "name", Value: l.name}}
}
