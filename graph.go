package aoc

import (
	"golang.org/x/exp/maps"
)

// Graph is a directed graph. Each node's successors are kept in the order
// they were added, so callers can pick "the i-th way out" of a node.
type Graph[K comparable] struct {
	Nodes map[K]bool
	Edges map[K][]K
}

func (g *Graph[K]) AddNode(a K) {
	InitMap(&g.Nodes)
	g.Nodes[a] = true
}

// AddEdge adds an edge from a to b after any existing edges out of a.
func (g *Graph[K]) AddEdge(a, b K) {
	InitMap(&g.Edges)
	g.AddNode(a)
	g.AddNode(b)
	g.Edges[a] = append(g.Edges[a], b)
}

// Succ returns the i-th successor of a.
func (g *Graph[K]) Succ(a K, i int) (K, bool) {
	e := g.Edges[a]
	if i < 0 || i >= len(e) {
		var zero K
		return zero, false
	}
	return e[i], true
}

// NodesWhere returns the nodes for which match returns true, in no
// particular order.
func (g *Graph[K]) NodesWhere(match func(K) bool) []K {
	var out []K
	for _, k := range maps.Keys(g.Nodes) {
		if match(k) {
			out = append(out, k)
		}
	}
	return out
}

// ReachableNodes returns the nodes reachable from a, including a.
func (g *Graph[K]) ReachableNodes(a K) map[K]bool {
	visited := make(map[K]bool)
	q := NewQueue(a)
	q.While(func(v K) bool {
		if visited[v] {
			return true
		}
		visited[v] = true
		for _, k := range g.Edges[v] {
			q.Push(k)
		}
		return true
	})
	return visited
}

func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}
