// Package graph builds the single-element-difference graph of a set family:
// nodes are member sets, undirected links connect sets whose symmetric
// difference has exactly one element. Shortest paths in this graph are what
// well-gradedness constrains.
package graph

import (
	"time"

	"github.com/teranos/wellgraded/family"
)

// Graph is the adjacency structure over a family, plus an exportable view.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
	Meta  Meta   `json:"meta"`

	index map[string]int // set key -> position in Nodes
	adj   [][]int        // adjacency lists by node position
}

// Node represents one member set.
type Node struct {
	ID    string `json:"id"`    // canonical set key
	Label string `json:"label"` // brace-notation display form
	Size  int    `json:"size"`  // cardinality

	set family.Set
}

// Link is an undirected edge between two sets differing by one element.
type Link struct {
	Source string         `json:"source"` // node ID
	Target string         `json:"target"` // node ID
	Delta  family.Element `json:"delta"`  // the element toggled along this edge
}

// Meta contains metadata about the graph
type Meta struct {
	GeneratedAt time.Time `json:"generated_at"`
	Stats       Stats     `json:"stats"`
}

// Stats provides graph statistics
type Stats struct {
	TotalNodes int `json:"total_nodes"`
	TotalEdges int `json:"total_edges"`
}
