// SPDX-License-Identifier: MIT
//
// errors.go - sentinel errors for the workload package.

package workload

import "errors"

// ErrEmptyRange indicates a random index requested from an empty range.
var ErrEmptyRange = errors.New("workload: empty random range")

// ErrInvalidConfig indicates a Config that failed validation.
var ErrInvalidConfig = errors.New("workload: invalid config")

// ErrNilBackend indicates NewDriver was called without a backend.
var ErrNilBackend = errors.New("workload: nil backend")
