// Package core provides a thread-safe in-memory attributed Graph with a
// minimal, composable API surface. It is the attributed-graph backend that
// graphbench drives.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Named vertices (the vertex ID is its name) and labelled edges (WithEdgeName)
//   - Constant-time edge operations via nested maps:
//     adjacency[from][to][edgeID] = struct{}{}
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error            // O(1), insert-if-absent
//	HasVertex(id string) bool             // O(1)
//	RemoveVertex(id string) error         // O(E)
//
//	// Edge lifecycle
//	AddEdge(from, to string, opts ...EdgeOption) (edgeID string, err error) // O(1)
//	RemoveEdge(edgeID string) error        // O(1)
//	HasEdge(from, to string) bool          // O(1)
//	FindEdge(from, to string) (*Edge, error)
//
//	// Query
//	OutEdges(id string) ([]*Edge, error)   // creation order
//	IncidentEdges(id string) ([]*Edge, error)
//	Vertices() []string                    // lexicographic
//	Edges() []*Edge                        // creation order
//	VertexCount(), EdgeCount(), Stats()
//
// Errors are sentinels (ErrVertexNotFound, ErrEdgeNotFound, ...); branch with errors.Is.
package core
