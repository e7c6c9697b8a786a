package parser

import (
	"context"
	"testing"

	"github.com/ttpr0/go-multiroute/attr"
	"github.com/ttpr0/go-multiroute/geo"
	"github.com/ttpr0/go-multiroute/graph"
)

func TestLoadPostgresTableNames(t *testing.T) {
	cases := []struct {
		nodes, edges string
	}{
		{"nodes; DROP TABLE nodes", "edges"},
		{"nodes", "edges e"},
		{"", "edges"},
		{"public.nodes.x", "edges"},
		{"nodes", "1edges"},
	}
	for _, tc := range cases {
		t.Run(tc.nodes+"/"+tc.edges, func(t *testing.T) {
			// rejected before the connection is used
			if _, err := LoadPostgres(context.Background(), nil, tc.nodes, tc.edges); err == nil {
				t.Fatalf("LoadPostgres(%q, %q) accepted invalid table names", tc.nodes, tc.edges)
			}
		})
	}

	for _, name := range []string{"nodes", "public.edges", "osm_edges_2024"} {
		if !table_name.MatchString(name) {
			t.Errorf("table name %q rejected", name)
		}
	}
}

func _Ptr[T any](v T) *T {
	return &v
}

func TestAddRows(t *testing.T) {
	// rows as scanned from the nodes and edges tables, NULL columns as nil
	nodes := []NodeRow{
		{ID: 101, X: 6.630, Y: 46.520},
		{ID: 102, X: 6.631, Y: 46.520},
		{ID: 103, X: 6.631, Y: 46.521},
	}
	edges := []EdgeRow{
		{U: 101, V: 102, Key: _Ptr[int64](0), Length: _Ptr(76.6), TravelTime: _Ptr(9.2), Highway: _Ptr("residential"), Name: _Ptr("Rue du Midi"),
			Geometry: _Ptr("LINESTRING (6.630 46.520, 6.6305 46.5201, 6.631 46.520)")},
		{U: 101, V: 102, Key: _Ptr[int64](1), Length: _Ptr(80.0)},
		{U: 102, V: 103, Length: _Ptr(111.0), SpeedKph: _Ptr(30.0), Geometry: _Ptr("not wkt")},
		{U: 103, V: 999, Length: _Ptr(10.0)},
	}

	b := graph.NewBuilder()
	invalid := _AddRows(b, _SliceSeq(nodes), _SliceSeq(edges))
	g := b.Build()

	if invalid != 1 {
		t.Errorf("invalid = %d; want 1", invalid)
	}
	if b.DroppedEdges() != 1 {
		t.Errorf("DroppedEdges() = %d; want 1", b.DroppedEdges())
	}
	if g.NodeCount() != 3 || g.EdgeCount() != 3 {
		t.Fatalf("graph has %d nodes, %d edges; want 3, 3", g.NodeCount(), g.EdgeCount())
	}

	first := _EdgeBetween(t, g, 101, 102)
	if first.Length.Value != 76.6 || first.TravelTime.Value != 9.2 || first.Type != attr.RESIDENTIAL || first.Name != "Rue du Midi" {
		t.Errorf("edge 101 -> 102 = %+v", first)
	}
	if len(first.Geometry) != 3 || first.Geometry[1] != (geo.Coord{6.6305, 46.5201}) {
		t.Errorf("Geometry = %v", first.Geometry)
	}

	broken := _EdgeBetween(t, g, 102, 103)
	if broken.Geometry != nil || broken.SpeedKph.Value != 30 || broken.TravelTime.HasValue() {
		t.Errorf("edge with invalid geometry = %+v", broken)
	}
}
