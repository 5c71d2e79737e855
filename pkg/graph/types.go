package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// Document is the serialization format for a merged graph.
type Document struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Node is a serialized graph node.
type Node struct {
	Value int    `json:"value"`
	Depth int    `json:"depth"`
	Label string `json:"label"`
}

// Label returns the display label for a node value: its decimal form.
func Label(v int) string { return strconv.Itoa(v) }

// Export converts g to its serialization format, preserving node and edge
// order.
func (g *Graph) Export() Document {
	nodes := g.Nodes()
	doc := Document{
		Nodes: make([]Node, len(nodes)),
		Edges: g.Edges(),
	}
	for i, v := range nodes {
		doc.Nodes[i] = Node{Value: v, Depth: g.depth[v], Label: Label(v)}
	}
	return doc
}

// MarshalGraph converts a graph to indented JSON bytes.
func MarshalGraph(g *Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteGraph(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteGraph writes g as indented JSON to w.
func WriteGraph(g *Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(g.Export()); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
