// File: methods_adjacent.go
// Role: adjacency bucket maintenance and ordering helpers.
// Concurrency:
//   - Helpers are called only under muEdgeAdj by the methods that own the lock.

package core

import "sort"

// ensureAdjacency allocates the nested buckets adjacency[from][to].
// Must be called ONLY under muEdgeAdj write lock.
func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[string]map[string]struct{})
	}
	if g.adjacency[from][to] == nil {
		g.adjacency[from][to] = make(map[string]struct{})
	}
}

// removeAdjacency removes e.ID from adjacency buckets and prunes emptied buckets.
//
// Removal policy:
//   - Always remove from e.From -> e.To.
//   - If the edge is undirected and not a self-loop, also remove from e.To -> e.From.
//
// Must be called ONLY under muEdgeAdj write lock.
func removeAdjacency(g *Graph, e *Edge) {
	unlink(g, e.From, e.To, e.ID)
	if !e.Directed && e.From != e.To {
		unlink(g, e.To, e.From, e.ID)
	}
}

func unlink(g *Graph, from, to, eid string) {
	m := g.adjacency[from][to]
	if m == nil {
		return
	}
	delete(m, eid)
	if len(m) == 0 {
		delete(g.adjacency[from], to)
	}
	if len(g.adjacency[from]) == 0 {
		delete(g.adjacency, from)
	}
}

// sortBySeq orders edges by creation sequence.
func sortBySeq(edges []*Edge) {
	sort.Slice(edges, func(i, j int) bool { return edges[i].seq < edges[j].seq })
}
