package graph

import (
	"github.com/ttpr0/go-multiroute/attr"
	. "github.com/ttpr0/go-multiroute/util"
)

//*******************************************
// modification methods
//*******************************************

// Returns a copy of the graph without every edge running from pair.From to
// pair.To, together with the number of removed edges.
//
// The input graph is left untouched; node indices stay stable.
func RemoveEdges(g *Graph, pairs []NodePair) (*Graph, int) {
	remove := NewDict[NodePair, bool](len(pairs))
	for _, pair := range pairs {
		remove[pair] = true
	}

	edges := NewList[Edge](g.EdgeCount())
	attribs := NewList[attr.EdgeAttribs](g.EdgeCount())
	removed := 0
	for id, edge := range g.edges {
		if remove[NodePair{From: edge.NodeA, To: edge.NodeB}] {
			removed += 1
			continue
		}
		edges.Add(edge)
		attribs.Add(g.edge_attribs[id])
	}
	if removed == 0 {
		return g, 0
	}
	return _BuildGraph(g.nodes, g.node_ids, Array[Edge](edges), Array[attr.EdgeAttribs](attribs), g.index), removed
}

// Resolves external node ids to directed pairs, adding the reverse direction
// for each pair. Unknown ids are skipped.
func PairsFromIDs(g IGraph, ids [][2]int64) []NodePair {
	pairs := NewList[NodePair](2 * len(ids))
	for _, id := range ids {
		u, ok_u := g.GetNodeIndex(id[0])
		v, ok_v := g.GetNodeIndex(id[1])
		if !ok_u || !ok_v {
			continue
		}
		pairs.Add(NodePair{From: u, To: v})
		pairs.Add(NodePair{From: v, To: u})
	}
	return pairs
}
