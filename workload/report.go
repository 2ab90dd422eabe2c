// SPDX-License-Identifier: MIT
//
// File: report.go
// Role: per-run measurements and their JSON/YAML encodings.

package workload

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Phase names, in execution order.
const (
	PhaseOpen           = "open"
	PhaseBaseVertices   = "add-vertices"
	PhaseBaseEdges      = "add-edges"
	PhaseScaledVertices = "add-scaled-vertices"
	PhaseScaledEdges    = "add-scaled-edges"
	PhaseLookup         = "lookup"
	PhaseDelete         = "delete-edges"
	PhaseExport         = "export"
	PhaseClose          = "close"
)

// PhaseReport is the wall time of one phase and the graph size after it.
type PhaseReport struct {
	Name     string        `json:"name" yaml:"name"`
	Elapsed  time.Duration `json:"elapsed_ns" yaml:"elapsed"`
	Vertices int           `json:"vertices" yaml:"vertices"`
	Edges    int           `json:"edges" yaml:"edges"`
}

// Report summarizes one Driver.Run. Phases are recorded only once they
// complete, so a failed run carries the phases before the failure.
type Report struct {
	RunID   string `json:"run_id" yaml:"run_id"`
	Backend string `json:"backend" yaml:"backend"`
	Config  Config `json:"config" yaml:"config"`

	Phases []PhaseReport `json:"phases" yaml:"phases"`
	Total  time.Duration `json:"total_ns" yaml:"total"`

	// RequestedVertices is V + floor(V·X); the backend may create fewer.
	RequestedVertices int `json:"requested_vertices" yaml:"requested_vertices"`
	CreatedVertices   int `json:"created_vertices" yaml:"created_vertices"`

	Lookups int `json:"lookups" yaml:"lookups"`
	Hits    int `json:"hits" yaml:"hits"`
	Misses  int `json:"misses" yaml:"misses"`
	Deleted int `json:"deleted" yaml:"deleted"`

	Files []string `json:"files,omitempty" yaml:"files,omitempty"`
}

// Phase returns the named phase record, if the phase completed.
func (r Report) Phase(name string) (PhaseReport, bool) {
	for _, p := range r.Phases {
		if p.Name == name {
			return p, true
		}
	}

	return PhaseReport{}, false
}

// Format selects a report encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatFor picks YAML for .yaml/.yml paths and JSON otherwise.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Encode writes r to w in the given format.
func (r Report) Encode(w io.Writer, f Format) error {
	var (
		b   []byte
		err error
	)
	switch f {
	case FormatYAML:
		b, err = yaml.Marshal(r)
	default:
		b, err = sonic.ConfigStd.MarshalIndent(r, "", "  ")
		b = append(b, '\n')
	}
	if err != nil {
		return fmt.Errorf("workload: encode report: %w", err)
	}
	if _, err = w.Write(b); err != nil {
		return fmt.Errorf("workload: write report: %w", err)
	}

	return nil
}

// Fields returns the summary as zap fields for a single Info record.
func (r Report) Fields() []zap.Field {
	return []zap.Field{
		zap.String("run_id", r.RunID),
		zap.String("backend", r.Backend),
		zap.Int64("seed", r.Config.Seed),
		zap.Int("requested_vertices", r.RequestedVertices),
		zap.Int("created_vertices", r.CreatedVertices),
		zap.Int("lookups", r.Lookups),
		zap.Int("hits", r.Hits),
		zap.Int("deleted", r.Deleted),
		zap.Duration("total", r.Total),
	}
}
