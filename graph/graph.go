package graph

import (
	"github.com/ttpr0/go-multiroute/attr"
	"github.com/ttpr0/go-multiroute/geo"
	. "github.com/ttpr0/go-multiroute/util"
)

//*******************************************
// graph interfaces
//******************************************

// Read-only view of a road network.
//
// Implementations are immutable after construction and safe for concurrent use.
// Only explorers carry per-search state.
type IGraph interface {
	GetGraphExplorer(weight IWeighting) IGraphExplorer
	GetIndex() IGraphIndex
	NodeCount() int
	EdgeCount() int
	IsNode(node int32) bool
	GetNode(node int32) Node
	GetNodeID(node int32) int64
	GetNodeIndex(id int64) (int32, bool)
	GetNodeGeom(node int32) geo.Coord
	GetEdge(edge int32) Edge
	GetEdgeAttribs(edge int32) attr.EdgeAttribs
	GetEdgeGeom(edge int32) geo.CoordArray
	// Returns the primary edge from u to v.
	GetEdgeBetween(u, v int32) (int32, bool)
	GetClosestNode(point geo.Coord) (int32, bool)
	ForAllEdges() func(yield func(int32, Edge) bool)
}

// not thread safe, use only one instance per goroutine
type IGraphExplorer interface {
	// Iterates through the adjacency of a node calling the callback for every edge.
	//
	// direction tells the traversal direction (FORWARD means outgoing edges, BACKWARD ingoing edges)
	//
	// typ selects whether parallel duplicates are visited
	ForAdjacentEdges(node int32, dir Direction, typ Adjacency, callback func(EdgeRef))
	GetEdgeWeight(edge EdgeRef) float64
}

//*******************************************
// graph
//******************************************

var _ IGraph = &Graph{}

type Graph struct {
	nodes        Array[Node]
	edges        Array[Edge]
	edge_attribs Array[attr.EdgeAttribs]
	node_ids     Dict[int64, int32]
	primary      Dict[NodePair, int32]
	fwd          _AdjacencyArray
	bwd          _AdjacencyArray
	index        *SpatialIndex
}

func (self *Graph) GetGraphExplorer(weight IWeighting) IGraphExplorer {
	return &GraphExplorer{
		graph:  self,
		fwd:    self.fwd.GetAccessor(),
		bwd:    self.bwd.GetAccessor(),
		weight: weight,
	}
}
func (self *Graph) GetIndex() IGraphIndex {
	return self.index
}
func (self *Graph) NodeCount() int {
	return len(self.nodes)
}
func (self *Graph) EdgeCount() int {
	return len(self.edges)
}
func (self *Graph) IsNode(node int32) bool {
	return node >= 0 && node < int32(len(self.nodes))
}
func (self *Graph) GetNode(node int32) Node {
	return self.nodes[node]
}
func (self *Graph) GetNodeID(node int32) int64 {
	return self.nodes[node].ID
}
func (self *Graph) GetNodeIndex(id int64) (int32, bool) {
	node, ok := self.node_ids[id]
	return node, ok
}
func (self *Graph) GetNodeGeom(node int32) geo.Coord {
	return self.nodes[node].Loc
}
func (self *Graph) GetEdge(edge int32) Edge {
	return self.edges[edge]
}
func (self *Graph) GetEdgeAttribs(edge int32) attr.EdgeAttribs {
	return self.edge_attribs[edge]
}

// Returns the detailed polyline of the edge or the straight segment between its nodes.
func (self *Graph) GetEdgeGeom(edge int32) geo.CoordArray {
	attribs := self.edge_attribs[edge]
	if attribs.HasGeometry() {
		return attribs.Geometry
	}
	e := self.edges[edge]
	return geo.CoordArray{self.GetNodeGeom(e.NodeA), self.GetNodeGeom(e.NodeB)}
}
func (self *Graph) GetEdgeBetween(u, v int32) (int32, bool) {
	edge, ok := self.primary[NodePair{From: u, To: v}]
	return edge, ok
}
func (self *Graph) GetClosestNode(point geo.Coord) (int32, bool) {
	return self.index.GetClosestNode(point)
}
func (self *Graph) ForAllEdges() func(yield func(int32, Edge) bool) {
	return func(yield func(int32, Edge) bool) {
		for id, edge := range self.edges {
			if !yield(int32(id), edge) {
				return
			}
		}
	}
}

//*******************************************
// graph explorer
//******************************************

type GraphExplorer struct {
	graph  *Graph
	fwd    _AdjArrayAccessor
	bwd    _AdjArrayAccessor
	weight IWeighting
}

func (self *GraphExplorer) ForAdjacentEdges(node int32, direction Direction, typ Adjacency, callback func(EdgeRef)) {
	accessor := &self.fwd
	if direction == BACKWARD {
		accessor = &self.bwd
	}
	accessor.SetBaseNode(node)
	for accessor.Next() {
		ref := accessor.GetEdgeRef()
		if typ == ADJACENT_PRIMARY && !ref.IsPrimary() {
			continue
		}
		callback(ref)
	}
}
func (self *GraphExplorer) GetEdgeWeight(edge EdgeRef) float64 {
	return self.weight.GetEdgeWeight(edge.EdgeID)
}
