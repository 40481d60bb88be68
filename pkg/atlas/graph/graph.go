// Package graph builds undirected keyword/location co-occurrence graphs.
package graph

import "github.com/GannaSameh/atlas/pkg/atlas/pmi"

// Edge is an undirected edge stored with its endpoints in canonical
// order (A <= B).
type Edge struct {
	A string `json:"a"`
	B string `json:"b"`
}

// NewEdge returns the canonical edge between two labels.
func NewEdge(x, y string) Edge {
	if x > y {
		x, y = y, x
	}
	return Edge{A: x, B: y}
}

// Graph is an undirected graph without parallel edges. Nodes and edges
// are reported in insertion order.
type Graph struct {
	nodes     map[string]struct{}
	nodeOrder []string
	edges     map[Edge]struct{}
	edgeOrder []Edge
	counts    *pmi.Counter // set by Builder
}

// WeightedEdge is an edge with its association strength.
type WeightedEdge struct {
	Edge
	Sentences int64   `json:"sentences"`
	NPMI      float64 `json:"npmi"`
}

// New creates an empty graph
func New() *Graph {
	return &Graph{
		nodes: make(map[string]struct{}),
		edges: make(map[Edge]struct{}),
	}
}

// AddNode adds a node if it is not already present.
func (g *Graph) AddNode(label string) {
	if _, ok := g.nodes[label]; ok {
		return
	}
	g.nodes[label] = struct{}{}
	g.nodeOrder = append(g.nodeOrder, label)
}

// AddEdge connects x and y, adding missing nodes. Adding an existing edge
// in either direction is a no-op. It reports whether a new edge was added.
func (g *Graph) AddEdge(x, y string) bool {
	g.AddNode(x)
	g.AddNode(y)

	e := NewEdge(x, y)
	if _, ok := g.edges[e]; ok {
		return false
	}
	g.edges[e] = struct{}{}
	g.edgeOrder = append(g.edgeOrder, e)
	return true
}

// HasEdge reports whether x and y are connected.
func (g *Graph) HasEdge(x, y string) bool {
	_, ok := g.edges[NewEdge(x, y)]
	return ok
}

// HasNode reports whether the label is a node of the graph.
func (g *Graph) HasNode(label string) bool {
	_, ok := g.nodes[label]
	return ok
}

// Nodes returns a copy of the node labels.
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.nodeOrder))
	copy(out, g.nodeOrder)
	return out
}

// Edges returns a copy of the edges.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edgeOrder))
	copy(out, g.edgeOrder)
	return out
}

// Neighbors returns the labels adjacent to label, in edge insertion order.
func (g *Graph) Neighbors(label string) []string {
	var out []string
	for _, e := range g.edgeOrder {
		switch label {
		case e.A:
			out = append(out, e.B)
		case e.B:
			out = append(out, e.A)
		}
	}
	return out
}

// NodeCount returns the number of nodes
func (g *Graph) NodeCount() int {
	return len(g.nodeOrder)
}

// EdgeCount returns the number of edges
func (g *Graph) EdgeCount() int {
	return len(g.edgeOrder)
}

// Weights scores every edge by the number of sentences its endpoints share
// and their normalized PMI over all sentences of the text. Graphs not
// produced by a Builder report zero weights.
func (g *Graph) Weights(calc *pmi.Calculator) []WeightedEdge {
	out := make([]WeightedEdge, 0, len(g.edgeOrder))
	for _, e := range g.edgeOrder {
		w := WeightedEdge{Edge: e}
		if g.counts != nil {
			w.Sentences = g.counts.PairCount(e.A, e.B)
			w.NPMI = calc.Score(g.counts, e.A, e.B)
		}
		out = append(out, w)
	}
	return out
}

// Sentences returns the number of sentences scanned by the Builder.
func (g *Graph) Sentences() int64 {
	if g.counts == nil {
		return 0
	}
	return g.counts.TotalSentences()
}
