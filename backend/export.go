// SPDX-License-Identifier: MIT
//
// File: export.go
// Role: one-shot file export of a backend snapshot as DOT and GraphML.
//
// Both writers truncate an existing file. Output is deterministic: nodes are
// emitted by ID, edges by source ID, target ID, then line ID.

package backend

import (
	"encoding/xml"
	"fmt"
	"os"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
)

const graphmlNS = "http://graphml.graphdrawing.org/xmlns"

// WriteDOT writes g to path in Graphviz DOT format under the graph name.
func WriteDOT(path string, g graph.Multigraph, name string) error {
	b, err := dot.MarshalMulti(g, name, "", "\t")
	if err != nil {
		return fmt.Errorf("export: marshal %s: %w", path, err)
	}
	if err = os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	return nil
}

type graphmlDoc struct {
	XMLName xml.Name     `xml:"graphml"`
	XMLNS   string       `xml:"xmlns,attr"`
	Keys    []graphmlKey `xml:"key"`
	Graph   graphmlGraph `xml:"graph"`
}

type graphmlKey struct {
	ID       string `xml:"id,attr"`
	For      string `xml:"for,attr"`
	AttrName string `xml:"attr.name,attr"`
	AttrType string `xml:"attr.type,attr"`
}

type graphmlGraph struct {
	ID          string        `xml:"id,attr"`
	EdgeDefault string        `xml:"edgedefault,attr"`
	Nodes       []graphmlNode `xml:"node"`
	Edges       []graphmlEdge `xml:"edge"`
}

type graphmlNode struct {
	ID   string        `xml:"id,attr"`
	Data []graphmlData `xml:"data"`
}

type graphmlEdge struct {
	ID     string        `xml:"id,attr"`
	Source string        `xml:"source,attr"`
	Target string        `xml:"target,attr"`
	Data   []graphmlData `xml:"data"`
}

type graphmlData struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

// WriteGraphML writes g to path as a GraphML 1.0 document. Node IDs are
// "n<id>"; a node's DOT ID, when it has one, is kept as the "label" datum.
// Edge IDs are "e<k>" in emission order; an edge "name" attribute is kept as
// the "name" datum.
func WriteGraphML(path string, g graph.Multigraph) error {
	doc := graphmlDoc{
		XMLNS: graphmlNS,
		Keys: []graphmlKey{
			{ID: "label", For: "node", AttrName: "label", AttrType: "string"},
			{ID: "name", For: "edge", AttrName: "name", AttrType: "string"},
		},
		Graph: graphmlGraph{ID: "G", EdgeDefault: "undirected"},
	}
	_, directed := g.(graph.Directed)
	if directed {
		doc.Graph.EdgeDefault = "directed"
	}

	nodes := graph.NodesOf(g.Nodes())
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })

	seen := make(map[[3]int64]bool)
	for _, n := range nodes {
		gn := graphmlNode{ID: graphmlNodeID(n.ID())}
		if d, ok := n.(dot.Node); ok {
			gn.Data = append(gn.Data, graphmlData{Key: "label", Value: d.DOTID()})
		}
		doc.Graph.Nodes = append(doc.Graph.Nodes, gn)

		to := graph.NodesOf(g.From(n.ID()))
		sort.Slice(to, func(i, j int) bool { return to[i].ID() < to[j].ID() })
		for _, t := range to {
			lines := graph.LinesOf(g.Lines(n.ID(), t.ID()))
			sort.Slice(lines, func(i, j int) bool { return lines[i].ID() < lines[j].ID() })
			for _, l := range lines {
				// Undirected graphs report each line from both ends.
				key := [3]int64{n.ID(), t.ID(), l.ID()}
				if seen[key] {
					continue
				}
				seen[key] = true
				if !directed {
					seen[[3]int64{t.ID(), n.ID(), l.ID()}] = true
				}

				ge := graphmlEdge{
					ID:     fmt.Sprintf("e%d", len(doc.Graph.Edges)),
					Source: graphmlNodeID(n.ID()),
					Target: graphmlNodeID(t.ID()),
				}
				if name, ok := lineName(l); ok {
					ge.Data = append(ge.Data, graphmlData{Key: "name", Value: name})
				}
				doc.Graph.Edges = append(doc.Graph.Edges, ge)
			}
		}
	}

	b, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("export: marshal %s: %w", path, err)
	}
	out := make([]byte, 0, len(xml.Header)+len(b)+1)
	out = append(out, xml.Header...)
	out = append(out, b...)
	out = append(out, '\n')
	if err = os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	return nil
}

func graphmlNodeID(id int64) string { return fmt.Sprintf("n%d", id) }

func lineName(l graph.Line) (string, bool) {
	a, ok := l.(encoding.Attributer)
	if !ok {
		return "", false
	}
	for _, attr := range a.Attributes() {
		if attr.Key == "name" {
			return attr.Value, true
		}
	}

	return "", false
}
