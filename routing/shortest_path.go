package routing

import (
	"fmt"

	"github.com/ttpr0/go-multiroute/geo"
	"github.com/ttpr0/go-multiroute/graph"
	. "github.com/ttpr0/go-multiroute/util"
)

type IShortestPath interface {
	// Runs the search; returns false if the destination is unreachable.
	CalcShortestPath() bool
	GetShortestPath() Path
}

//*******************************************
// path
//*******************************************

// Node and edge sequence of a shortest path.
type Path struct {
	graph graph.IGraph
	nodes List[int32]
	edges List[int32]
}

func NewPath(g graph.IGraph, nodes List[int32], edges List[int32]) Path {
	return Path{
		graph: g,
		nodes: nodes,
		edges: edges,
	}
}

func (self Path) Nodes() []int32 {
	return self.nodes
}
func (self Path) Edges() []int32 {
	return self.edges
}

// Concatenated edge geometries; empty for single-node paths.
func (self Path) GetGeometry() geo.CoordArray {
	geom := NewList[geo.Coord](len(self.edges) * 2)
	for _, edge := range self.edges {
		geom = _AppendGeometry(geom, self.graph.GetEdgeGeom(edge))
	}
	return geo.CoordArray(geom)
}

// Computes the travel-time shortest path between two node indices.
//
// Returns ErrNoPath if destination cannot be reached from origin.
func ShortestPath(g graph.IGraph, weight graph.IWeighting, origin, destination int32) ([]int32, error) {
	if !g.IsNode(origin) || !g.IsNode(destination) {
		return nil, fmt.Errorf("%w: node index out of range", ErrInvalidInput)
	}
	alg := NewDijkstra(g, weight, origin, destination)
	if !alg.CalcShortestPath() {
		return nil, fmt.Errorf("%w from %d to %d", ErrNoPath, g.GetNodeID(origin), g.GetNodeID(destination))
	}
	return alg.GetShortestPath().Nodes(), nil
}

// Appends segment to geom without repeating the shared vertex.
//
// Used for display of raw paths; routes are assembled by AssembleRoute.
func _AppendGeometry(geom List[geo.Coord], segment geo.CoordArray) List[geo.Coord] {
	for i, c := range segment {
		if i == 0 && geom.Length() > 0 && geom[geom.Length()-1] == c {
			continue
		}
		geom.Add(c)
	}
	return geom
}
