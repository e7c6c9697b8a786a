package routing

import (
	"math"

	"github.com/ttpr0/go-multiroute/graph"
	. "github.com/ttpr0/go-multiroute/util"
)

type flag_sp struct {
	path_length float64
	prev_edge   int32
	visited     bool
}

// Point-to-point dijkstra over primary edges.
//
// Nodes with equal distance are settled in insertion order and a node keeps
// the first predecessor reaching its final distance.
type Dijkstra struct {
	heap     PriorityQueue[int32, float64]
	graph    graph.IGraph
	explorer graph.IGraphExplorer
	flags    []flag_sp
	start    int32
	end      int32
	found    bool
}

func NewDijkstra(g graph.IGraph, weight graph.IWeighting, start, end int32) *Dijkstra {
	d := Dijkstra{
		graph:    g,
		explorer: g.GetGraphExplorer(weight),
		start:    start,
		end:      end,
	}

	flags := make([]flag_sp, g.NodeCount())
	for i := 0; i < len(flags); i++ {
		flags[i].path_length = math.Inf(1)
		flags[i].prev_edge = -1
	}
	d.flags = flags

	heap := NewPriorityQueue[int32, float64](100)
	d.heap = heap

	return &d
}

func (self *Dijkstra) CalcShortestPath() bool {
	self.flags[self.start].path_length = 0
	if self.start == self.end {
		self.found = true
		return true
	}
	self.heap.Enqueue(self.start, 0)

	for {
		curr_id, ok := self.heap.Dequeue()
		if !ok {
			return false
		}
		curr_flag := self.flags[curr_id]
		if curr_flag.visited {
			continue
		}
		if curr_id == self.end {
			self.found = true
			return true
		}
		curr_flag.visited = true
		self.flags[curr_id] = curr_flag
		self.explorer.ForAdjacentEdges(curr_id, graph.FORWARD, graph.ADJACENT_PRIMARY, func(ref graph.EdgeRef) {
			other_id := ref.OtherID
			other_flag := self.flags[other_id]
			if other_flag.visited {
				return
			}
			new_length := curr_flag.path_length + self.explorer.GetEdgeWeight(ref)
			if new_length < other_flag.path_length {
				other_flag.prev_edge = ref.EdgeID
				other_flag.path_length = new_length
				self.flags[other_id] = other_flag
				self.heap.Enqueue(other_id, new_length)
			}
		})
	}
}

// Distance of the destination in seconds; +Inf before a successful search.
func (self *Dijkstra) GetPathLength() float64 {
	return self.flags[self.end].path_length
}

func (self *Dijkstra) GetShortestPath() Path {
	if !self.found {
		return NewPath(self.graph, nil, nil)
	}
	nodes := NewList[int32](10)
	edges := NewList[int32](10)
	curr := self.end
	nodes.Add(curr)
	for curr != self.start {
		edge_id := self.flags[curr].prev_edge
		edges.Add(edge_id)
		curr = self.graph.GetEdge(edge_id).NodeA
		nodes.Add(curr)
	}
	_Reverse(nodes)
	_Reverse(edges)
	return NewPath(self.graph, nodes, edges)
}

func _Reverse[T any](list List[T]) {
	for i, j := 0, len(list)-1; i < j; i, j = i+1, j-1 {
		list[i], list[j] = list[j], list[i]
	}
}
