// SPDX-License-Identifier: MIT

package workload_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphbench/workload"
)

func TestConfig_Validate(t *testing.T) {
	ok := workload.Config{Vertices: 1, Edges: 1, Scale: 0}
	require.NoError(t, ok.Validate())

	cases := map[string]workload.Config{
		"zero vertices":     {Vertices: 0, Edges: 1},
		"negative edges":    {Vertices: 1, Edges: -1},
		"scale above one":   {Vertices: 1, Edges: 1, Scale: 1.5},
		"negative scale":    {Vertices: 1, Edges: 1, Scale: -0.1},
		"NaN scale":         {Vertices: 1, Edges: 1, Scale: math.NaN()},
		"write without out": {Vertices: 1, Edges: 1, Write: true},
	}
	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, cfg.Validate(), workload.ErrInvalidConfig)
		})
	}
}

func TestConfig_Scaled(t *testing.T) {
	cases := []struct {
		v, e         int
		x            float64
		wantV, wantE int
	}{
		{10, 10, 0, 0, 0},
		{5, 5, 1, 5, 5},
		{7, 3, 0.5, 3, 1},
		{1, 1, 0.99, 0, 0},
	}
	for _, c := range cases {
		cfg := workload.Config{Vertices: c.v, Edges: c.e, Scale: c.x}
		require.Equal(t, c.wantV, cfg.ScaledVertices(), "V=%d X=%v", c.v, c.x)
		require.Equal(t, c.wantE, cfg.ScaledEdges(), "E=%d X=%v", c.e, c.x)
	}
}
