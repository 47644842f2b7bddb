package graph

import (
	"time"

	"github.com/teranos/wellgraded/family"
)

// Build constructs the single-element-difference graph over the family.
// Node order follows the family's stable iteration order, so repeated
// builds over the same family produce identical graphs.
func Build(f *family.Family) *Graph {
	sets := f.Sets()
	g := &Graph{
		Nodes: make([]Node, len(sets)),
		index: make(map[string]int, len(sets)),
		adj:   make([][]int, len(sets)),
	}
	for i, s := range sets {
		g.Nodes[i] = Node{ID: s.Key(), Label: s.String(), Size: s.Len(), set: s}
		g.index[s.Key()] = i
	}
	for i := 0; i < len(sets); i++ {
		for j := i + 1; j < len(sets); j++ {
			if sets[i].Distance(sets[j]) != 1 {
				continue
			}
			delta := sets[i].SymmetricDiff(sets[j]).Elements()[0]
			g.Links = append(g.Links, Link{Source: sets[i].Key(), Target: sets[j].Key(), Delta: delta})
			g.adj[i] = append(g.adj[i], j)
			g.adj[j] = append(g.adj[j], i)
		}
	}
	g.Meta = Meta{
		GeneratedAt: time.Now().UTC(),
		Stats:       Stats{TotalNodes: len(g.Nodes), TotalEdges: len(g.Links)},
	}
	return g
}

// Distances returns BFS hop counts from the given set to every node, indexed
// by node position. Unreachable nodes get -1. The second return is false if
// from is not a node of the graph.
func (g *Graph) Distances(from family.Set) ([]int, bool) {
	src, ok := g.index[from.Key()]
	if !ok {
		return nil, false
	}
	dist := make([]int, len(g.Nodes))
	for i := range dist {
		dist[i] = -1
	}
	dist[src] = 0
	queue := []int{src}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range g.adj[u] {
			if dist[v] < 0 {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}
	return dist, true
}

// ShortestPath returns the BFS distance between two sets and one witness
// chain realizing it, from inclusive to inclusive. Distance -1 and a nil
// chain mean the sets are disconnected or absent from the graph.
func (g *Graph) ShortestPath(from, to family.Set) (int, []family.Set) {
	src, okFrom := g.index[from.Key()]
	dst, okTo := g.index[to.Key()]
	if !okFrom || !okTo {
		return -1, nil
	}
	if src == dst {
		return 0, []family.Set{g.Nodes[src].set}
	}
	prev := make([]int, len(g.Nodes))
	dist := make([]int, len(g.Nodes))
	for i := range dist {
		dist[i] = -1
		prev[i] = -1
	}
	dist[src] = 0
	queue := []int{src}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if u == dst {
			break
		}
		for _, v := range g.adj[u] {
			if dist[v] < 0 {
				dist[v] = dist[u] + 1
				prev[v] = u
				queue = append(queue, v)
			}
		}
	}
	if dist[dst] < 0 {
		return -1, nil
	}
	chain := make([]family.Set, 0, dist[dst]+1)
	for at := dst; at != -1; at = prev[at] {
		chain = append(chain, g.Nodes[at].set)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return dist[dst], chain
}

// NodeSet returns the set stored at node position i.
func (g *Graph) NodeSet(i int) family.Set {
	return g.Nodes[i].set
}
