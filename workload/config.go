// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: immutable run parameters and the derived scaled counts.

package workload

import (
	"fmt"
	"math"
)

// Config holds the parameters of one benchmark run. It is a value type; the
// driver keeps its own copy.
type Config struct {
	Vertices int     `json:"vertices" yaml:"vertices"` // base vertex count V
	Edges    int     `json:"edges" yaml:"edges"`       // base edge count E
	Scale    float64 `json:"scale" yaml:"scale"`       // growth factor X in [0, 1]

	Debug bool `json:"debug" yaml:"debug"` // dump the graph before lookups and after deletions
	Write bool `json:"write" yaml:"write"` // export DOT and GraphML at the end

	Seed        int64  `json:"seed" yaml:"seed"`
	LegacyNames bool   `json:"legacy_names" yaml:"legacy_names"`
	OutputBase  string `json:"output_base,omitempty" yaml:"output_base,omitempty"` // export file stem
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Vertices <= 0:
		return fmt.Errorf("%w: vertices must be > 0, got %d", ErrInvalidConfig, c.Vertices)
	case c.Edges <= 0:
		return fmt.Errorf("%w: edges must be > 0, got %d", ErrInvalidConfig, c.Edges)
	case math.IsNaN(c.Scale) || c.Scale < 0 || c.Scale > 1:
		return fmt.Errorf("%w: scale must be in [0,1], got %v", ErrInvalidConfig, c.Scale)
	case c.Write && c.OutputBase == "":
		return fmt.Errorf("%w: write requires an output base name", ErrInvalidConfig)
	}

	return nil
}

// ScaledVertices returns floor(V·X).
func (c Config) ScaledVertices() int {
	return int(math.Floor(float64(c.Vertices) * c.Scale))
}

// ScaledEdges returns floor(E·X), the size of the second edge batch and of the
// lookup and deletion phases.
func (c Config) ScaledEdges() int {
	return int(math.Floor(float64(c.Edges) * c.Scale))
}
