package parser

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"os"
	"strconv"
	"strings"

	"github.com/ttpr0/go-multiroute/attr"
	"github.com/ttpr0/go-multiroute/geo"
	"github.com/ttpr0/go-multiroute/graph"
	. "github.com/ttpr0/go-multiroute/util"
)

//*******************************************
// node-link json provider
//*******************************************

type _NodeLinkNode struct {
	ID any     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

type _NodeLinkEdge struct {
	Source     any      `json:"source"`
	Target     any      `json:"target"`
	Key        *int32   `json:"key"`
	Length     *float64 `json:"length"`
	TravelTime *float64 `json:"travel_time"`
	SpeedKph   *float64 `json:"speed_kph"`
	Highway    any      `json:"highway"`
	Name       any      `json:"name"`
	// WKT string or list of [lon, lat]
	Geometry json.RawMessage `json:"geometry"`
}

type _NodeLinkGraph struct {
	Nodes []_NodeLinkNode `json:"nodes"`
	Links []_NodeLinkEdge `json:"links"`
	// newer networkx versions name the edge list "edges"
	Edges []_NodeLinkEdge `json:"edges"`
}

// Reads a networkx node-link json export, optionally wrapped in {"graph": ...}.
func ParseNodeLink(file string) (*graph.Graph, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return ParseNodeLinkData(data)
}

func ParseNodeLinkData(data []byte) (*graph.Graph, error) {
	var wrapped struct {
		Graph *_NodeLinkGraph `json:"graph"`
		_NodeLinkGraph
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("failed to parse graph JSON: %w", err)
	}
	nl := wrapped._NodeLinkGraph
	if wrapped.Graph != nil && len(wrapped.Graph.Nodes) > 0 {
		nl = *wrapped.Graph
	}
	links := nl.Links
	if len(links) == 0 {
		links = nl.Edges
	}

	b := graph.NewBuilder()
	for _, node := range nl.Nodes {
		b.AddNode(_ParseID(node.ID), node.X, node.Y)
	}
	for _, link := range links {
		e := attr.EdgeAttribs{
			Type: attr.RoadTypeFromString(_FirstString(link.Highway)),
			Name: _FirstString(link.Name),
		}
		if link.Length != nil {
			e.Length = Some(*link.Length)
		}
		if link.TravelTime != nil {
			e.TravelTime = Some(*link.TravelTime)
		}
		if link.SpeedKph != nil {
			e.SpeedKph = Some(*link.SpeedKph)
		}
		e.Geometry = _ParseJSONGeometry(link.Geometry)
		var key int32
		if link.Key != nil {
			key = *link.Key
		}
		b.AddEdge(_ParseID(link.Source), _ParseID(link.Target), key, e)
	}
	return b.Build(), nil
}

// Converts numeric or string ids; other strings are hashed.
func _ParseID(id any) int64 {
	switch v := id.(type) {
	case float64:
		return int64(v)
	case string:
		if parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			return parsed
		}
		h := fnv.New64a()
		h.Write([]byte(v))
		return int64(h.Sum64() >> 1)
	}
	return 0
}

// osmnx stores merged attributes as lists; the first entry wins.
func _FirstString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []any:
		if len(v) > 0 {
			return _FirstString(v[0])
		}
	}
	return ""
}

func _ParseJSONGeometry(raw json.RawMessage) geo.CoordArray {
	if len(raw) == 0 {
		return nil
	}
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		geom, err := _ParseWKTLine(text)
		if err != nil {
			return nil
		}
		return geom
	}
	var coords [][2]float64
	if err := json.Unmarshal(raw, &coords); err == nil && len(coords) >= 2 {
		geom := make(geo.CoordArray, len(coords))
		for i, c := range coords {
			geom[i] = geo.Coord(c)
		}
		return geom
	}
	return nil
}
