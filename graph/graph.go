/*
Package graph implements directed graphs with labeled edges.

Vertices are dense integers 0 … n-1. Edges carry a terminal symbol as their
label and are indexed by their source vertex.
*/
package graph

import (
	"errors"
	"fmt"
	"sort"
)

// ErrVertexRange is returned for edges referencing vertices outside of the graph.
var ErrVertexRange = errors.New("vertex out of range")

// Edge is a labeled, directed edge.
type Edge struct {
	From  int
	Label string
	To    int
}

func (e Edge) String() string {
	return fmt.Sprintf("(%d,%s,%d)", e.From, e.Label, e.To)
}

// Graph is a directed graph with labeled edges. Parallel edges with different
// labels are allowed, duplicate edges are collapsed.
type Graph struct {
	adjacency [][]Edge
	edges     map[Edge]bool
}

// New creates a graph with n vertices and no edges.
func New(n int) *Graph {
	if n < 0 {
		n = 0
	}
	return &Graph{
		adjacency: make([][]Edge, n),
		edges:     make(map[Edge]bool),
	}
}

// Size returns the number of vertices.
func (g *Graph) Size() int {
	return len(g.adjacency)
}

// EdgeCount returns the number of distinct edges.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// AddEdge inserts an edge from → to with the given label.
func (g *Graph) AddEdge(from int, label string, to int) error {
	if from < 0 || from >= g.Size() || to < 0 || to >= g.Size() {
		return fmt.Errorf("edge (%d,%s,%d) for graph of size %d: %w", from, label, to,
			g.Size(), ErrVertexRange)
	}
	e := Edge{From: from, Label: label, To: to}
	if g.edges[e] {
		return nil
	}
	g.edges[e] = true
	g.adjacency[from] = append(g.adjacency[from], e)
	return nil
}

// Edges returns a copy of the outgoing edges of vertex u, in order of insertion.
func (g *Graph) Edges(u int) []Edge {
	if u < 0 || u >= g.Size() {
		return nil
	}
	edges := make([]Edge, len(g.adjacency[u]))
	copy(edges, g.adjacency[u])
	return edges
}

// AllEdges returns all edges, sorted by source, label and target.
func (g *Graph) AllEdges() []Edge {
	edges := make([]Edge, 0, len(g.edges))
	for e := range g.edges {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool {
		a, b := edges[i], edges[j]
		if a.From != b.From {
			return a.From < b.From
		}
		if a.Label != b.Label {
			return a.Label < b.Label
		}
		return a.To < b.To
	})
	return edges
}
