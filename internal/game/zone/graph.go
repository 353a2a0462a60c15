// Package zone provides the match map topology: zone adjacency and
// shortest paths between zones.
package zone

import (
	"fmt"
	"maps"
	"slices"

	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/model"
)

// Edge is an undirected connection between two zones.
type Edge struct {
	A, B model.ZoneID
}

// Graph is an immutable undirected zone graph.
// Safe for concurrent use by any number of matches.
type Graph struct {
	adj map[model.ZoneID][]model.ZoneID
}

// NewGraph builds a graph from undirected edges. Neighbor lists are sorted
// so Adjacent and ShortestPath are deterministic.
func NewGraph(edges ...Edge) *Graph {
	adj := make(map[model.ZoneID][]model.ZoneID)
	link := func(a, b model.ZoneID) {
		if !slices.Contains(adj[a], b) {
			adj[a] = append(adj[a], b)
		}
	}
	for _, e := range edges {
		if e.A == e.B {
			if _, ok := adj[e.A]; !ok {
				adj[e.A] = nil
			}
			continue
		}
		link(e.A, e.B)
		link(e.B, e.A)
	}
	for id := range adj {
		slices.Sort(adj[id])
	}
	return &Graph{adj: adj}
}

// Load builds the graph from data.ZoneTable.
func Load() (*Graph, error) {
	if data.ZoneTable == nil {
		return nil, fmt.Errorf("init zone graph: data.ZoneTable is nil, call data.LoadZones first")
	}
	var edges []Edge
	for _, id := range data.ZoneIDs() {
		edges = append(edges, Edge{A: id, B: id})
		for _, n := range data.ZoneNeighbors(id) {
			edges = append(edges, Edge{A: id, B: n})
		}
	}
	return NewGraph(edges...), nil
}

// Zones returns every zone in sorted order.
func (g *Graph) Zones() []model.ZoneID {
	return slices.Sorted(maps.Keys(g.adj))
}

// Contains reports whether the zone is part of the graph.
func (g *Graph) Contains(id model.ZoneID) bool {
	_, ok := g.adj[id]
	return ok
}

// Adjacent returns the neighbors of a zone (sorted copy).
func (g *Graph) Adjacent(id model.ZoneID) []model.ZoneID {
	return slices.Clone(g.adj[id])
}

// IsAdjacent reports whether a and b share an edge. A zone is not adjacent to itself.
func (g *Graph) IsAdjacent(a, b model.ZoneID) bool {
	_, found := slices.BinarySearch(g.adj[a], b)
	return found
}

// ShortestPath returns the zones from a to b inclusive, found by BFS.
// Returns [a] when a == b and nil when b is unreachable or unknown.
func (g *Graph) ShortestPath(a, b model.ZoneID) []model.ZoneID {
	if !g.Contains(a) || !g.Contains(b) {
		return nil
	}
	if a == b {
		return []model.ZoneID{a}
	}

	prev := map[model.ZoneID]model.ZoneID{a: a}
	queue := []model.ZoneID{a}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range g.adj[cur] {
			if _, seen := prev[n]; seen {
				continue
			}
			prev[n] = cur
			if n == b {
				return unwind(prev, a, b)
			}
			queue = append(queue, n)
		}
	}
	return nil
}

// Distance returns the number of edges between a and b, or -1 if unreachable.
func (g *Graph) Distance(a, b model.ZoneID) int {
	path := g.ShortestPath(a, b)
	if path == nil {
		return -1
	}
	return len(path) - 1
}

func unwind(prev map[model.ZoneID]model.ZoneID, a, b model.ZoneID) []model.ZoneID {
	path := []model.ZoneID{b}
	for cur := b; cur != a; {
		cur = prev[cur]
		path = append(path, cur)
	}
	slices.Reverse(path)
	return path
}
