package parser

import (
	"github.com/ttpr0/go-multiroute/attr"
	"github.com/ttpr0/go-multiroute/geo"
	"github.com/ttpr0/go-multiroute/graph"
	. "github.com/ttpr0/go-multiroute/util"
)

//*******************************************
// osm ways to graph
//*******************************************

// Counts the references of a way's nodes; both ends count twice so that
// they always become graph nodes.
func _CountWayNodes(way OSMWay, osm_nodes Dict[int64, TempNode]) {
	l := way.Nodes.Length()
	for i, ref := range way.Nodes {
		node := osm_nodes[ref]
		node.Count += 1
		if i == 0 || i == l-1 {
			node.Count += 1
		}
		osm_nodes[ref] = node
	}
}

// Splits ways at junctions and adds one edge per segment and direction.
//
// Nodes without a known position are skipped.
func _BuildOSMGraph(ways List[OSMWay], osm_nodes Dict[int64, TempNode], decoder IOSMDecoder) *graph.Graph {
	b := graph.NewBuilder()
	keys := NewDict[Tuple[int64, int64], int32](ways.Length())
	add_edge := func(u, v int64, attribs attr.EdgeAttribs) {
		key := MakeTuple(u, v)
		b.AddEdge(u, v, keys[key], attribs)
		keys[key] += 1
	}

	for _, way := range ways {
		refs := NewList[int64](way.Nodes.Length())
		for _, ref := range way.Nodes {
			if osm_nodes[ref].Found {
				refs.Add(ref)
			}
		}
		if refs.Length() < 2 {
			continue
		}

		start := refs[0]
		coords := NewList[geo.Coord](4)
		coords.Add(osm_nodes[start].Point)
		for i := 1; i < refs.Length(); i++ {
			curr := refs[i]
			on := osm_nodes[curr]
			coords.Add(on.Point)
			if on.Count <= 1 && i != refs.Length()-1 {
				continue
			}
			if curr != start {
				attribs, oneway := decoder.DecodeEdge(way.Tags)
				geom := geo.CoordArray(coords)
				attribs.Length = Some(geo.LineLength(geom))
				b.AddNode(start, osm_nodes[start].Point.Lon(), osm_nodes[start].Point.Lat())
				b.AddNode(curr, on.Point.Lon(), on.Point.Lat())
				if oneway != ONEWAY_REVERSE {
					fwd := attribs
					fwd.Geometry = geom
					add_edge(start, curr, fwd)
				}
				if oneway != ONEWAY_FORWARD {
					bwd := attribs
					bwd.Geometry = geom.Reversed()
					add_edge(curr, start, bwd)
				}
			}
			start = curr
			coords = NewList[geo.Coord](4)
			coords.Add(on.Point)
		}
	}
	return b.Build()
}
