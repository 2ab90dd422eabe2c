// SPDX-License-Identifier: MIT
// Package backend_test runs one contract suite against both adapters, plus
// adapter-specific checks for naming and batch validation.

package backend_test

import (
	"bytes"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/graphbench/backend"
)

// ContractSuite exercises the Backend contract for one adapter.
type ContractSuite struct {
	suite.Suite
	factory func(opts ...backend.Option) backend.Backend
	b       backend.Backend
}

func (s *ContractSuite) SetupTest() {
	s.b = s.factory()
	require.NoError(s.T(), s.b.Open())
}

func (s *ContractSuite) TearDownTest() {
	// Some tests close explicitly.
	_ = s.b.Close()
}

// chain adds n vertices and the edges 0→1→…→n-1.
func (s *ContractSuite) chain(n int) {
	got, err := s.b.AddVertices(n)
	require.NoError(s.T(), err)
	require.Equal(s.T(), n, got)

	pairs := make([]backend.Pair, 0, n-1)
	for i := 0; i+1 < n; i++ {
		pairs = append(pairs, backend.Pair{From: i, To: i + 1})
	}
	require.NoError(s.T(), s.b.AddEdges(pairs))
}

// TestLifecycle verifies Open/Close bookkeeping errors.
func (s *ContractSuite) TestLifecycle() {
	require.ErrorIs(s.T(), s.b.Open(), backend.ErrAlreadyOpen)
	require.NoError(s.T(), s.b.Close())
	require.ErrorIs(s.T(), s.b.Close(), backend.ErrNotOpen)

	_, err := s.b.AddVertices(1)
	require.ErrorIs(s.T(), err, backend.ErrNotOpen)
	require.ErrorIs(s.T(), s.b.AddEdges(nil), backend.ErrNotOpen)
	_, err = s.b.HasEdge(0, 0)
	require.ErrorIs(s.T(), err, backend.ErrNotOpen)
	require.ErrorIs(s.T(), s.b.Dump(&bytes.Buffer{}), backend.ErrNotOpen)

	fresh := s.factory()
	_, err = fresh.AddVertices(1)
	require.ErrorIs(s.T(), err, backend.ErrNotOpen, "never opened")
}

// TestCounts verifies vertex, edge and loop counters across insertion calls.
func (s *ContractSuite) TestCounts() {
	got, err := s.b.AddVertices(5)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5, got)
	got, err = s.b.AddVertices(3)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, got, "monotonic names never collide")

	require.NoError(s.T(), s.b.AddEdges([]backend.Pair{{0, 1}, {0, 1}, {7, 7}, {3, 2}}))
	require.Equal(s.T(), backend.Stats{Vertices: 8, Edges: 4, Loops: 1}, s.b.Stats())

	_, err = s.b.AddVertices(-1)
	require.ErrorIs(s.T(), err, backend.ErrNegativeCount)
}

// TestHasEdge verifies directed lookups and index validation.
func (s *ContractSuite) TestHasEdge() {
	s.chain(4)

	ok, err := s.b.HasEdge(1, 2)
	require.NoError(s.T(), err)
	require.True(s.T(), ok)

	ok, err = s.b.HasEdge(2, 1)
	require.NoError(s.T(), err)
	require.False(s.T(), ok, "lookups are directed")

	_, err = s.b.HasEdge(0, 4)
	require.ErrorIs(s.T(), err, backend.ErrVertexIndex)
	_, err = s.b.HasEdge(-1, 0)
	require.ErrorIs(s.T(), err, backend.ErrVertexIndex)
	require.ErrorIs(s.T(), s.b.AddEdges([]backend.Pair{{0, 9}}), backend.ErrVertexIndex)
}

// TestDeleteRandomEdges verifies that every deletion removes a distinct live edge.
func (s *ContractSuite) TestDeleteRandomEdges() {
	const n = 20
	s.chain(n + 1)
	rng := rand.New(rand.NewSource(7))

	require.NoError(s.T(), s.b.DeleteRandomEdges(rng, 6))
	require.Equal(s.T(), n-6, s.b.Stats().Edges)
	require.NoError(s.T(), s.b.DeleteRandomEdges(rng, 0))

	live := 0
	for i := 0; i < n; i++ {
		ok, err := s.b.HasEdge(i, i+1)
		require.NoError(s.T(), err)
		if ok {
			live++
		}
	}
	require.Equal(s.T(), n-6, live, "lookups agree with the edge count")

	// Draining the rest must never pick a removed edge twice.
	require.NoError(s.T(), s.b.DeleteRandomEdges(rng, n-6))
	require.Equal(s.T(), 0, s.b.Stats().Edges)

	require.ErrorIs(s.T(), s.b.DeleteRandomEdges(rng, 1), backend.ErrNotEnoughEdges)
	require.ErrorIs(s.T(), s.b.DeleteRandomEdges(rng, -1), backend.ErrNegativeCount)
}

// TestDeleteVertices verifies incident-edge removal and dense re-indexing.
func (s *ContractSuite) TestDeleteVertices() {
	_, err := s.b.AddVertices(4)
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.b.AddEdges([]backend.Pair{{0, 1}, {1, 2}, {2, 3}, {3, 0}}))

	require.NoError(s.T(), s.b.DeleteVertices([]int{1}))
	require.Equal(s.T(), backend.Stats{Vertices: 3, Edges: 2}, s.b.Stats())

	// Old 2→3 and 3→0 are now 1→2 and 2→0.
	for _, p := range []backend.Pair{{1, 2}, {2, 0}} {
		ok, err := s.b.HasEdge(p.From, p.To)
		require.NoError(s.T(), err)
		require.True(s.T(), ok, "edge %v", p)
	}
	ok, err := s.b.HasEdge(0, 1)
	require.NoError(s.T(), err)
	require.False(s.T(), ok)

	require.ErrorIs(s.T(), s.b.DeleteVertices([]int{3}), backend.ErrVertexIndex)

	// Edges of a removed vertex are no longer deletion candidates.
	rng := rand.New(rand.NewSource(1))
	require.NoError(s.T(), s.b.DeleteRandomEdges(rng, 2))
	require.ErrorIs(s.T(), s.b.DeleteRandomEdges(rng, 1), backend.ErrNotEnoughEdges)
}

// TestDump verifies the edge-list format.
func (s *ContractSuite) TestDump() {
	_, err := s.b.AddVertices(2)
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.b.AddEdges([]backend.Pair{{0, 1}, {1, 1}}))

	var buf bytes.Buffer
	require.NoError(s.T(), s.b.Dump(&buf))
	want := fmt.Sprintf("graph %s: 2 vertices, 2 edges\n  (0,1)\n  (1,1)\n", s.b.Name())
	require.Equal(s.T(), want, buf.String())
}

func TestAttributedContract(t *testing.T) {
	suite.Run(t, &ContractSuite{factory: func(opts ...backend.Option) backend.Backend {
		return backend.NewAttributed(opts...)
	}})
}

func TestNumericalContract(t *testing.T) {
	suite.Run(t, &ContractSuite{factory: func(opts ...backend.Option) backend.Backend {
		return backend.NewNumerical(opts...)
	}})
}

// TestAttributed_LegacyNames verifies the vertex shortfall caused by names
// restarting at "0" on every call.
func TestAttributed_LegacyNames(t *testing.T) {
	a := backend.NewAttributed(backend.WithLegacyNames(true))
	require.NoError(t, a.Open())
	defer a.Close()

	got, err := a.AddVertices(5)
	require.NoError(t, err)
	require.Equal(t, 5, got)

	got, err = a.AddVertices(3)
	require.NoError(t, err)
	require.Equal(t, 0, got, "names 0..2 already exist")

	got, err = a.AddVertices(7)
	require.NoError(t, err)
	require.Equal(t, 2, got, "only 5 and 6 are new")
	require.Equal(t, 7, a.Stats().Vertices)
}

// TestNumerical_AddEdgesAtomic verifies that a bad pair rejects the whole batch.
func TestNumerical_AddEdgesAtomic(t *testing.T) {
	b := backend.NewNumerical()
	require.NoError(t, b.Open())
	defer b.Close()

	_, err := b.AddVertices(3)
	require.NoError(t, err)
	err = b.AddEdges([]backend.Pair{{0, 1}, {1, 2}, {2, 3}})
	require.ErrorIs(t, err, backend.ErrVertexIndex)
	require.Equal(t, 0, b.Stats().Edges)
}

func TestWithLogger_NilPanics(t *testing.T) {
	require.Panics(t, func() { backend.WithLogger(nil) })
}

// TestDebugRecords verifies the per-operation trace records of both adapters.
func TestDebugRecords(t *testing.T) {
	for _, mk := range []func(...backend.Option) backend.Backend{
		func(o ...backend.Option) backend.Backend { return backend.NewAttributed(o...) },
		func(o ...backend.Option) backend.Backend { return backend.NewNumerical(o...) },
	} {
		obs, logs := observer.New(zap.DebugLevel)
		b := mk(backend.WithLogger(zap.New(obs)))
		t.Run(b.Name(), func(t *testing.T) {
			require.NoError(t, b.Open())
			defer b.Close()

			_, err := b.AddVertices(2)
			require.NoError(t, err)
			require.NoError(t, b.AddEdges([]backend.Pair{{0, 1}}))
			_, err = b.HasEdge(0, 1)
			require.NoError(t, err)
			_, err = b.HasEdge(1, 0)
			require.NoError(t, err)
			require.NoError(t, b.DeleteRandomEdges(rand.New(rand.NewSource(1)), 1))

			for _, msg := range []string{"found", "not found", "delete"} {
				entries := logs.FilterMessage(msg).All()
				require.Len(t, entries, 1, msg)
				require.Equal(t, b.Name(), entries[0].ContextMap()["backend"])
			}
		})
	}
}
