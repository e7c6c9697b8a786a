package parser

import (
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/serjvanilla/go-overpass"
	"github.com/ttpr0/go-multiroute/attr"
	"github.com/ttpr0/go-multiroute/geo"
	"github.com/ttpr0/go-multiroute/graph"
	. "github.com/ttpr0/go-multiroute/util"
)

func _EdgeBetween(t *testing.T, g graph.IGraph, u, v int64) attr.EdgeAttribs {
	t.Helper()
	nu, ok_u := g.GetNodeIndex(u)
	nv, ok_v := g.GetNodeIndex(v)
	if !ok_u || !ok_v {
		t.Fatalf("nodes %d or %d missing", u, v)
	}
	edge, ok := g.GetEdgeBetween(nu, nv)
	if !ok {
		t.Fatalf("edge %d -> %d missing", u, v)
	}
	return g.GetEdgeAttribs(edge)
}

func TestParseGraphML(t *testing.T) {
	g, err := ParseGraphML("testdata/graph.graphml")
	if err != nil {
		t.Fatalf("ParseGraphML() error = %v", err)
	}
	if g.NodeCount() != 3 {
		t.Fatalf("NodeCount() = %d; want 3", g.NodeCount())
	}
	// the edge to the broken node is dropped
	if g.EdgeCount() != 3 {
		t.Fatalf("EdgeCount() = %d; want 3", g.EdgeCount())
	}

	first := _EdgeBetween(t, g, 101, 102)
	if first.Length.Value != 76.6 || first.TravelTime.Value != 9.2 || first.SpeedKph.Value != 30 {
		t.Errorf("parallel edge resolved to %+v; want the first one", first)
	}
	if first.Type != attr.RESIDENTIAL || first.Name != "Rue du Midi" {
		t.Errorf("Type = %v, Name = %q", first.Type, first.Name)
	}

	curved := _EdgeBetween(t, g, 102, 103)
	if len(curved.Geometry) != 3 || curved.Geometry[1] != (geo.Coord{6.6312, 46.5205}) {
		t.Errorf("Geometry = %v", curved.Geometry)
	}
	if curved.TravelTime.HasValue() {
		t.Errorf("missing travel_time parsed as %v", curved.TravelTime.Value)
	}
}

func TestParseGraphMLMissingFile(t *testing.T) {
	if _, err := ParseGraphML("testdata/missing.graphml"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestParseNodeLink(t *testing.T) {
	g, err := ParseNodeLink("testdata/graph.json")
	if err != nil {
		t.Fatalf("ParseNodeLink() error = %v", err)
	}
	if g.NodeCount() != 3 || g.EdgeCount() != 3 {
		t.Fatalf("graph has %d nodes, %d edges; want 3, 3", g.NodeCount(), g.EdgeCount())
	}
	e := _EdgeBetween(t, g, 101, 102)
	if e.Type != attr.RESIDENTIAL || e.TravelTime.Value != 9.2 {
		t.Errorf("edge 101 -> 102 = %+v", e)
	}
	if geom := _EdgeBetween(t, g, 102, 103).Geometry; len(geom) != 3 {
		t.Errorf("wkt geometry = %v", geom)
	}
	if geom := _EdgeBetween(t, g, 103, 101).Geometry; len(geom) != 2 || geom[1] != (geo.Coord{6.63, 46.52}) {
		t.Errorf("coordinate list geometry = %v", geom)
	}
}

func TestParseNodeLinkUnwrapped(t *testing.T) {
	data := []byte(`{"graph": {"crs": "epsg:4326"}, "nodes": [{"id": 1, "x": 0, "y": 0}, {"id": 2, "x": 0, "y": 1}],
		"edges": [{"source": 1, "target": 2, "length": 10}]}`)
	g, err := ParseNodeLinkData(data)
	if err != nil {
		t.Fatalf("ParseNodeLinkData() error = %v", err)
	}
	if g.NodeCount() != 2 || g.EdgeCount() != 1 {
		t.Fatalf("graph has %d nodes, %d edges; want 2, 1", g.NodeCount(), g.EdgeCount())
	}
	if _, err := ParseNodeLinkData([]byte(`{"nodes": [`)); err == nil {
		t.Fatalf("expected error for truncated json")
	}
}

func TestParseCSV(t *testing.T) {
	g, err := ParseCSV("testdata/csv", ',')
	if err != nil {
		t.Fatalf("ParseCSV() error = %v", err)
	}
	if g.NodeCount() != 3 || g.EdgeCount() != 3 {
		t.Fatalf("graph has %d nodes, %d edges; want 3, 3", g.NodeCount(), g.EdgeCount())
	}
	e := _EdgeBetween(t, g, 102, 103)
	if e.SpeedKph.Value != 30 || e.TravelTime.HasValue() || len(e.Geometry) != 3 {
		t.Errorf("edge 102 -> 103 = %+v", e)
	}
	broken := _EdgeBetween(t, g, 103, 101)
	if broken.Geometry != nil || broken.Length.Value != 140 || broken.Type != attr.SERVICE {
		t.Errorf("edge with invalid geometry = %+v", broken)
	}
	if _, err := ParseCSV("testdata/missing", ','); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}

func TestTravelSpeed(t *testing.T) {
	cases := []struct {
		typ                          attr.RoadType
		maxspeed, tracktype, surface string
		want                         int32
	}{
		{attr.RESIDENTIAL, "", "", "", 30},
		{attr.MOTORWAY, "", "", "", 100},
		{attr.PRIMARY, "50", "", "", 45},
		{attr.PRIMARY, "30 mph", "", "", 43},
		{attr.PRIMARY, "", "", "cobblestone", 20},
		{attr.TRACK, "", "grade1", "", 40},
		{attr.SERVICE, "", "", "", 15},
		{attr.SECONDARY, "walk", "", "", 9},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%v_%s_%s", tc.typ, tc.maxspeed, tc.surface), func(t *testing.T) {
			if got := _GetTravelSpeed(tc.typ, tc.maxspeed, tc.tracktype, tc.surface); got != tc.want {
				t.Fatalf("_GetTravelSpeed() = %d; want %d", got, tc.want)
			}
		})
	}
}

func TestOneway(t *testing.T) {
	cases := []struct {
		tag  string
		typ  attr.RoadType
		want Oneway
	}{
		{"", attr.RESIDENTIAL, ONEWAY_NO},
		{"yes", attr.RESIDENTIAL, ONEWAY_FORWARD},
		{"-1", attr.RESIDENTIAL, ONEWAY_REVERSE},
		{"", attr.MOTORWAY, ONEWAY_FORWARD},
		{"no", attr.MOTORWAY_LINK, ONEWAY_NO},
	}
	for _, tc := range cases {
		if got := _GetOneway(tc.tag, tc.typ); got != tc.want {
			t.Errorf("_GetOneway(%q, %v) = %v; want %v", tc.tag, tc.typ, got, tc.want)
		}
	}
}

func _TestWays() (List[OSMWay], Dict[int64, TempNode]) {
	osm_nodes := NewDict[int64, TempNode](10)
	coords := map[int64]geo.Coord{
		1: {6.630, 46.520},
		2: {6.631, 46.520},
		3: {6.632, 46.520},
		4: {6.631, 46.521},
	}
	for id, c := range coords {
		osm_nodes[id] = TempNode{Point: c, Found: true}
	}
	ways := List[OSMWay]{
		{ID: 10, Nodes: List[int64]{1, 2, 3}, Tags: Dict[string, string]{"highway": "residential"}},
		{ID: 11, Nodes: List[int64]{2, 4}, Tags: Dict[string, string]{"highway": "tertiary", "oneway": "yes"}},
	}
	for _, way := range ways {
		_CountWayNodes(way, osm_nodes)
	}
	return ways, osm_nodes
}

func TestBuildOSMGraph(t *testing.T) {
	ways, osm_nodes := _TestWays()
	g := _BuildOSMGraph(ways, osm_nodes, &DrivingDecoder{})

	// way 10 is split at junction 2: 1-2, 2-3 in both directions, plus 2 -> 4
	if g.NodeCount() != 4 || g.EdgeCount() != 5 {
		t.Fatalf("graph has %d nodes, %d edges; want 4, 5", g.NodeCount(), g.EdgeCount())
	}
	e := _EdgeBetween(t, g, 2, 4)
	if e.SpeedKph.Value != 50 || math.Abs(e.Length.Value-111.2) > 0.5 {
		t.Errorf("edge 2 -> 4 = %+v", e)
	}
	back := _EdgeBetween(t, g, 2, 1)
	if back.Geometry[0] != (geo.Coord{6.631, 46.520}) {
		t.Errorf("reverse edge geometry = %v", back.Geometry)
	}
	n4, _ := g.GetNodeIndex(4)
	n2, _ := g.GetNodeIndex(2)
	if _, ok := g.GetEdgeBetween(n4, n2); ok {
		t.Errorf("oneway edge has a reverse direction")
	}
}

func TestConvertOverpassResult(t *testing.T) {
	n1 := &overpass.Node{Meta: overpass.Meta{ID: 1}, Lat: 46.520, Lon: 6.630}
	n2 := &overpass.Node{Meta: overpass.Meta{ID: 2}, Lat: 46.520, Lon: 6.631}
	n3 := &overpass.Node{Meta: overpass.Meta{ID: 3}, Lat: 46.521, Lon: 6.631}
	result := overpass.Result{
		Nodes: map[int64]*overpass.Node{1: n1, 2: n2, 3: n3},
		Ways: map[int64]*overpass.Way{
			10: {Meta: overpass.Meta{ID: 10, Tags: map[string]string{"highway": "primary"}}, Nodes: []*overpass.Node{n1, n2}},
			11: {Meta: overpass.Meta{ID: 11, Tags: map[string]string{"highway": "footway"}}, Nodes: []*overpass.Node{n2, n3}},
		},
	}
	g := _ConvertOverpassResult(&result, &DrivingDecoder{})
	if g.NodeCount() != 2 || g.EdgeCount() != 2 {
		t.Fatalf("graph has %d nodes, %d edges; want 2, 2", g.NodeCount(), g.EdgeCount())
	}
}

func TestFetchPlace(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"elements": [
			{"type": "way", "id": 10, "nodes": [1, 2], "tags": {"highway": "residential"}},
			{"type": "node", "id": 1, "lat": 46.520, "lon": 6.630},
			{"type": "node", "id": 2, "lat": 46.520, "lon": 6.631}
		]}`)
	}))
	defer server.Close()

	client := NewOverpassClient(server.URL, 5*time.Second)
	g, err := client.FetchPlace("Lausanne", &DrivingDecoder{})
	if err != nil {
		t.Fatalf("FetchPlace() error = %v", err)
	}
	if g.NodeCount() != 2 || g.EdgeCount() != 2 {
		t.Fatalf("graph has %d nodes, %d edges; want 2, 2", g.NodeCount(), g.EdgeCount())
	}
	if _, err := client.FetchPlace(" ", &DrivingDecoder{}); err == nil {
		t.Fatalf("expected error for empty place")
	}
}
