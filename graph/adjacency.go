package graph

import (
	. "github.com/ttpr0/go-multiroute/util"
)

//*******************************************
// adjacency array
//*******************************************

// Compressed adjacency of all nodes in one direction.
//
// refs[offsets[n]:offsets[n+1]] holds the edges of node n in insertion order.
type _AdjacencyArray struct {
	offsets Array[int32]
	refs    Array[EdgeRef]
}

func (self *_AdjacencyArray) GetAccessor() _AdjArrayAccessor {
	return _AdjArrayAccessor{
		topology: self,
	}
}

func _BuildAdjacency(node_count int, edges Array[Edge], dir Direction) _AdjacencyArray {
	offsets := NewArray[int32](node_count + 1)
	for _, edge := range edges {
		node := edge.NodeA
		if dir == BACKWARD {
			node = edge.NodeB
		}
		offsets[node+1] += 1
	}
	for i := 1; i < len(offsets); i++ {
		offsets[i] += offsets[i-1]
	}
	refs := NewArray[EdgeRef](len(edges))
	fill := NewArray[int32](node_count)
	for id, edge := range edges {
		node, other := edge.NodeA, edge.NodeB
		if dir == BACKWARD {
			node, other = edge.NodeB, edge.NodeA
		}
		refs[offsets[node]+fill[node]] = CreateEdgeRef(int32(id), other, edge.Primary)
		fill[node] += 1
	}
	return _AdjacencyArray{
		offsets: offsets,
		refs:    refs,
	}
}

//*******************************************
// adjacency accessor
//*******************************************

type _AdjArrayAccessor struct {
	topology *_AdjacencyArray
	state    int32
	end      int32
	curr     EdgeRef
}

func (self *_AdjArrayAccessor) SetBaseNode(node int32) {
	self.state = self.topology.offsets[node]
	self.end = self.topology.offsets[node+1]
}
func (self *_AdjArrayAccessor) Next() bool {
	if self.state == self.end {
		return false
	}
	self.curr = self.topology.refs[self.state]
	self.state += 1
	return true
}
func (self *_AdjArrayAccessor) GetEdgeRef() EdgeRef {
	return self.curr
}
