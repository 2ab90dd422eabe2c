// SPDX-License-Identifier: MIT
//
// errors.go - sentinel errors for the backend package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w: "<backend>: <op>: ...: %w".

package backend

import (
	"errors"
	"fmt"
)

// ErrNotOpen indicates an operation on a backend that was never opened or was closed.
var ErrNotOpen = errors.New("backend: graph is not open")

// ErrAlreadyOpen indicates a second Open on the same backend.
var ErrAlreadyOpen = errors.New("backend: graph already open")

// ErrVertexIndex indicates a vertex index outside [0, VertexCount()-1].
var ErrVertexIndex = errors.New("backend: vertex index out of range")

// ErrNotEnoughEdges indicates a deletion request larger than the live edge count.
var ErrNotEnoughEdges = errors.New("backend: not enough edges")

// ErrNegativeCount indicates a negative vertex or edge count.
var ErrNegativeCount = errors.New("backend: negative count")

// wrapf attaches backend and operation context to err.
func wrapf(backend, op string, err error) error {
	return fmt.Errorf("%s: %s: %w", backend, op, err)
}
