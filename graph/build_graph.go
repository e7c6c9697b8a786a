package graph

import (
	"math"

	"github.com/ttpr0/go-multiroute/attr"
	"github.com/ttpr0/go-multiroute/geo"
	. "github.com/ttpr0/go-multiroute/util"
)

//*******************************************
// graph builder
//*******************************************

// Collects nodes and edges by external id and produces an immutable Graph.
//
// Not safe for concurrent use.
type Builder struct {
	nodes        List[Node]
	node_ids     Dict[int64, int32]
	edges        List[Triple[int64, int64, int32]]
	edge_attribs List[attr.EdgeAttribs]

	dropped_edges int
}

func NewBuilder() *Builder {
	return &Builder{
		nodes:        NewList[Node](100),
		node_ids:     NewDict[int64, int32](100),
		edges:        NewList[Triple[int64, int64, int32]](100),
		edge_attribs: NewList[attr.EdgeAttribs](100),
	}
}

// Adds a node; a repeated id keeps the first position.
func (self *Builder) AddNode(id int64, lon, lat float64) {
	if self.node_ids.ContainsKey(id) {
		return
	}
	self.node_ids[id] = int32(self.nodes.Length())
	self.nodes.Add(Node{ID: id, Loc: geo.Coord{lon, lat}})
}

func (self *Builder) HasNode(id int64) bool {
	return self.node_ids.ContainsKey(id)
}

// Adds a directed edge from u to v.
//
// Endpoints may be added after the edge; edges still referencing unknown
// nodes at Build time are dropped.
func (self *Builder) AddEdge(u, v int64, key int32, attribs attr.EdgeAttribs) {
	self.edges.Add(MakeTriple(u, v, key))
	self.edge_attribs.Add(_SanitizeAttribs(attribs))
}

func (self *Builder) NodeCount() int {
	return self.nodes.Length()
}

// Number of edges dropped by the last Build call.
func (self *Builder) DroppedEdges() int {
	return self.dropped_edges
}

func (self *Builder) Build() *Graph {
	edges := NewList[Edge](self.edges.Length())
	attribs := NewList[attr.EdgeAttribs](self.edges.Length())
	self.dropped_edges = 0
	for i, e := range self.edges {
		node_a, ok_a := self.node_ids[e.A]
		node_b, ok_b := self.node_ids[e.B]
		if !ok_a || !ok_b {
			self.dropped_edges += 1
			continue
		}
		edges.Add(Edge{NodeA: node_a, NodeB: node_b, Key: e.C})
		attribs.Add(self.edge_attribs[i])
	}
	nodes := make(Array[Node], self.nodes.Length())
	copy(nodes, self.nodes)
	node_ids := NewDict[int64, int32](len(self.node_ids))
	for id, node := range self.node_ids {
		node_ids[id] = node
	}
	return _BuildGraph(nodes, node_ids, Array[Edge](edges), Array[attr.EdgeAttribs](attribs), nil)
}

//*******************************************
// build graph components
//*******************************************

// Assembles a graph from dense arrays; index is rebuilt when nil.
func _BuildGraph(nodes Array[Node], node_ids Dict[int64, int32], edges Array[Edge], attribs Array[attr.EdgeAttribs], index *SpatialIndex) *Graph {
	primary := NewDict[NodePair, int32](len(edges))
	for id, edge := range edges {
		pair := NodePair{From: edge.NodeA, To: edge.NodeB}
		if primary.ContainsKey(pair) {
			edge.Primary = false
		} else {
			primary[pair] = int32(id)
			edge.Primary = true
		}
		edges[id] = edge
	}
	if index == nil {
		index = NewSpatialIndex(nodes)
	}
	return &Graph{
		nodes:        nodes,
		edges:        edges,
		edge_attribs: attribs,
		node_ids:     node_ids,
		primary:      primary,
		fwd:          _BuildAdjacency(len(nodes), edges, FORWARD),
		bwd:          _BuildAdjacency(len(nodes), edges, BACKWARD),
		index:        index,
	}
}

// Drops negative and non-finite numeric attributes.
func _SanitizeAttribs(attribs attr.EdgeAttribs) attr.EdgeAttribs {
	attribs.Length = _SanitizeValue(attribs.Length)
	attribs.TravelTime = _SanitizeValue(attribs.TravelTime)
	attribs.SpeedKph = _SanitizeValue(attribs.SpeedKph)
	return attribs
}

func _SanitizeValue(value Optional[float64]) Optional[float64] {
	if !value.HasValue() {
		return value
	}
	v := value.Value
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return None[float64]()
	}
	return value
}
