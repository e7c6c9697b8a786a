package parser

import (
	"fmt"
	"path/filepath"

	"github.com/ttpr0/go-multiroute/graph"
	. "github.com/ttpr0/go-multiroute/util"
	"golang.org/x/exp/slog"
)

//*******************************************
// csv provider
//*******************************************

// Reads nodes.csv and edges.csv from dir.
func ParseCSV(dir string, delimiter rune) (*graph.Graph, error) {
	nodes, err := ReadCSVFromFile[NodeRow](filepath.Join(dir, "nodes.csv"), delimiter)
	if err != nil {
		return nil, fmt.Errorf("failed to read nodes: %w", err)
	}
	edges, err := ReadCSVFromFile[EdgeRow](filepath.Join(dir, "edges.csv"), delimiter)
	if err != nil {
		return nil, fmt.Errorf("failed to read edges: %w", err)
	}
	b := graph.NewBuilder()
	invalid := _AddRows(b, nodes, edges)
	g := b.Build()
	if invalid > 0 || b.DroppedEdges() > 0 {
		slog.Warn("csv graph has defects", "invalid_geometries", invalid, "dropped_edges", b.DroppedEdges())
	}
	return g, nil
}
