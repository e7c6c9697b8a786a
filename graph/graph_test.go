package graph

import (
	"math"
	"testing"

	"github.com/ttpr0/go-multiroute/attr"
	"github.com/ttpr0/go-multiroute/geo"
	. "github.com/ttpr0/go-multiroute/util"
)

func _Attribs(length float64) attr.EdgeAttribs {
	return attr.EdgeAttribs{Length: Some(length)}
}

// a small ladder around lausanne with one parallel edge 1 -> 2
func _TestGraph() *Graph {
	b := NewBuilder()
	b.AddNode(1, 6.6300, 46.5200)
	b.AddNode(2, 6.6310, 46.5200)
	b.AddNode(3, 6.6320, 46.5200)
	b.AddNode(4, 6.6300, 46.5210)
	b.AddEdge(1, 2, 0, _Attribs(80))
	b.AddEdge(1, 2, 1, _Attribs(120))
	b.AddEdge(2, 3, 0, _Attribs(80))
	b.AddEdge(3, 2, 0, _Attribs(80))
	b.AddEdge(1, 4, 0, _Attribs(110))
	b.AddEdge(4, 9, 0, _Attribs(10))
	return b.Build()
}

func TestBuildGraph(t *testing.T) {
	b := NewBuilder()
	b.AddNode(1, 0, 0)
	b.AddNode(1, 5, 5)
	b.AddNode(2, 0, 1)
	b.AddEdge(1, 2, 0, _Attribs(10))
	b.AddEdge(1, 3, 0, _Attribs(10))
	g := b.Build()

	if g.NodeCount() != 2 {
		t.Fatalf("NodeCount() = %d; want 2", g.NodeCount())
	}
	if g.EdgeCount() != 1 || b.DroppedEdges() != 1 {
		t.Fatalf("EdgeCount() = %d, DroppedEdges() = %d; want 1, 1", g.EdgeCount(), b.DroppedEdges())
	}
	n, ok := g.GetNodeIndex(1)
	if !ok || g.GetNodeGeom(n) != (geo.Coord{0, 0}) {
		t.Fatalf("repeated node id must keep the first position")
	}
	if g.GetNodeID(n) != 1 {
		t.Fatalf("GetNodeID(%d) = %d; want 1", n, g.GetNodeID(n))
	}
}

func TestSanitizeAttribs(t *testing.T) {
	b := NewBuilder()
	b.AddNode(1, 0, 0)
	b.AddNode(2, 0, 1)
	b.AddEdge(1, 2, 0, attr.EdgeAttribs{
		Length:     Some(-5.0),
		TravelTime: Some(math.NaN()),
		SpeedKph:   Some(math.Inf(1)),
	})
	g := b.Build()
	a := g.GetEdgeAttribs(0)
	if a.Length.HasValue() || a.TravelTime.HasValue() || a.SpeedKph.HasValue() {
		t.Fatalf("invalid attributes must be dropped, got %+v", a)
	}
}

func TestParallelEdges(t *testing.T) {
	g := _TestGraph()
	u, _ := g.GetNodeIndex(1)
	v, _ := g.GetNodeIndex(2)

	edge, ok := g.GetEdgeBetween(u, v)
	if !ok || edge != 0 {
		t.Fatalf("GetEdgeBetween() = %d, %v; want first inserted edge 0", edge, ok)
	}
	if _, ok := g.GetEdgeBetween(v, u); ok {
		t.Fatalf("edges are directed, found edge 2 -> 1")
	}

	explorer := g.GetGraphExplorer(NewTravelTimeWeighting(g, 50))
	cases := []struct {
		typ  Adjacency
		want int
	}{
		{ADJACENT_ALL, 3},
		{ADJACENT_PRIMARY, 2},
	}
	for _, tc := range cases {
		count := 0
		explorer.ForAdjacentEdges(u, FORWARD, tc.typ, func(ref EdgeRef) {
			count += 1
		})
		if count != tc.want {
			t.Errorf("ForAdjacentEdges(%d) visited %d edges; want %d", tc.typ, count, tc.want)
		}
	}

	incoming := List[int32]{}
	explorer.ForAdjacentEdges(v, BACKWARD, ADJACENT_ALL, func(ref EdgeRef) {
		incoming.Add(ref.OtherID)
	})
	if incoming.Length() != 3 {
		t.Fatalf("node 2 has %d incoming edges; want 3", incoming.Length())
	}
}

func TestTravelTimeWeighting(t *testing.T) {
	g := _TestGraph()
	w := NewTravelTimeWeighting(g, 0)
	if w.DefaultSpeed() != attr.DEFAULT_SPEED_KPH {
		t.Fatalf("DefaultSpeed() = %v", w.DefaultSpeed())
	}
	if got := w.GetEdgeWeight(0); math.Abs(got-80/(50/3.6)) > 1e-9 {
		t.Fatalf("GetEdgeWeight(0) = %v", got)
	}
}

func TestGetEdgeGeom(t *testing.T) {
	b := NewBuilder()
	b.AddNode(1, 0, 0)
	b.AddNode(2, 1, 0)
	b.AddEdge(1, 2, 0, _Attribs(10))
	b.AddEdge(2, 1, 0, attr.EdgeAttribs{Geometry: geo.CoordArray{{1, 0}, {0.5, 0.5}, {0, 0}}})
	g := b.Build()

	if geom := g.GetEdgeGeom(0); len(geom) != 2 || geom[1] != (geo.Coord{1, 0}) {
		t.Fatalf("straight edge geometry = %v", geom)
	}
	if geom := g.GetEdgeGeom(1); len(geom) != 3 {
		t.Fatalf("polyline edge geometry = %v", geom)
	}
}

func TestGetNodesWithin(t *testing.T) {
	g := _TestGraph()
	origin := geo.Coord{6.6300, 46.5200}

	// node 2 and 4 are ~77 m and ~111 m away, node 3 ~153 m
	cases := []struct {
		name   string
		radius float64
		k      int
		want   []int64
	}{
		{"all", 800, 10, []int64{1, 2, 4, 3}},
		{"truncated to k", 800, 2, []int64{1, 2}},
		{"radius filter", 100, 10, []int64{1, 2}},
		{"zero k", 800, 0, []int64{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := g.GetIndex().GetNodesWithin(origin, tc.radius, tc.k)
			if len(got) != len(tc.want) {
				t.Fatalf("GetNodesWithin() returned %d candidates; want %d", len(got), len(tc.want))
			}
			for i, c := range got {
				if g.GetNodeID(c.Node) != tc.want[i] {
					t.Errorf("candidate %d = node %d; want %d", i, g.GetNodeID(c.Node), tc.want[i])
				}
				if c.Distance > tc.radius {
					t.Errorf("candidate %d at %.1f m exceeds radius %.0f", i, c.Distance, tc.radius)
				}
				if i > 0 && got[i-1].Distance > c.Distance {
					t.Errorf("candidates not sorted by distance")
				}
			}
		})
	}
}

func TestGetNodesWithinFarAway(t *testing.T) {
	g := _TestGraph()
	// ~2 km south of the network
	far := geo.Coord{6.6300, 46.5020}
	if got := g.GetIndex().GetNodesWithin(far, 800, 5); len(got) != 0 {
		t.Fatalf("GetNodesWithin() = %v; want none", got)
	}
	node, ok := g.GetClosestNode(far)
	if !ok || g.GetNodeID(node) != 1 {
		t.Fatalf("GetClosestNode() = %d, %v; want node 1", node, ok)
	}
}

func TestEmptyGraphIndex(t *testing.T) {
	g := NewBuilder().Build()
	if _, ok := g.GetClosestNode(geo.Coord{0, 0}); ok {
		t.Fatalf("GetClosestNode() on empty graph must fail")
	}
	if got := g.GetIndex().GetNodesWithin(geo.Coord{0, 0}, 800, 5); len(got) != 0 {
		t.Fatalf("GetNodesWithin() on empty graph = %v", got)
	}
}

func TestRemoveEdges(t *testing.T) {
	g := _TestGraph()
	pairs := PairsFromIDs(g, [][2]int64{{1, 2}, {2, 3}, {7, 8}})
	if len(pairs) != 4 {
		t.Fatalf("PairsFromIDs() = %v; want 4 pairs", pairs)
	}

	ng, removed := RemoveEdges(g, pairs)
	if removed != 4 {
		t.Fatalf("RemoveEdges() removed %d; want 4", removed)
	}
	if ng.EdgeCount() != 1 || g.EdgeCount() != 5 {
		t.Fatalf("EdgeCount() new = %d, old = %d; want 1, 5", ng.EdgeCount(), g.EdgeCount())
	}
	u, _ := g.GetNodeIndex(1)
	v, _ := g.GetNodeIndex(2)
	if _, ok := ng.GetEdgeBetween(u, v); ok {
		t.Fatalf("edge 1 -> 2 still present in new graph")
	}
	if _, ok := g.GetEdgeBetween(u, v); !ok {
		t.Fatalf("old graph was modified")
	}

	same, removed := RemoveEdges(g, nil)
	if removed != 0 || same != g {
		t.Fatalf("RemoveEdges() without pairs must return the same graph")
	}
}

func TestForAllEdges(t *testing.T) {
	g := _TestGraph()
	count := 0
	for id, edge := range g.ForAllEdges() {
		if edge != g.GetEdge(id) {
			t.Fatalf("edge %d mismatch", id)
		}
		count += 1
		if count == 3 {
			break
		}
	}
	if count != 3 {
		t.Fatalf("iteration did not stop early")
	}
}
