// Package graphbench is a micro-benchmark harness that drives two graph
// libraries through the same randomized workload and reports how long each
// phase takes.
//
// 🚀 What does it measure?
//
//	One run builds a directed multigraph and then probes it:
//		• V vertices, then E random edges (self-loops and parallel edges allowed)
//		• floor(V·X) more vertices, then floor(E·X) more edges
//		• floor(E·X) random edge lookups
//		• floor(E·X) random deletions of distinct live edges
//		• optional DOT and GraphML export of the final graph
//
// ✨ Two backends, one workload
//
//   - core  – attributed graph: string-named vertices, edges with generated IDs
//     and a name attribute. The adapter keeps a dense vertex index and an
//     edge registry so random picks are O(1).
//   - gonum – gonum's directed multigraph: dense int64 vertex IDs and
//     contiguous edge IDs, bulk insertion and bulk deletion.
//
// Both see the same endpoint and lookup indices for the same seed, so their
// timings compare like with like.
//
// Layout:
//
//	core/     - attributed graph engine (vertices, edges, loops, multi-edges)
//	backend/  - Backend contract, the two adapters, DOT/GraphML export
//	workload/ - Config, Driver phase sequence, Report
//	cli/      - cobra command, operand validation, zap logger
//	cmd/      - graphbench-core and graphbench-gonum binaries
//
// Quick start:
//
//	go run ./cmd/graphbench-gonum 1000 5000 0.5 --seed 1 --report run.json
//	go run ./cmd/graphbench-core 10 10 1 -d -w
package graphbench
