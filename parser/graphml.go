package parser

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ttpr0/go-multiroute/attr"
	"github.com/ttpr0/go-multiroute/graph"
	. "github.com/ttpr0/go-multiroute/util"
	"golang.org/x/exp/slog"
)

//*******************************************
// graphml provider
//*******************************************

type _GraphMLKey struct {
	ID   string `xml:"id,attr"`
	For  string `xml:"for,attr"`
	Name string `xml:"attr.name,attr"`
}

type _GraphMLData struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

type _GraphMLNode struct {
	ID   string         `xml:"id,attr"`
	Data []_GraphMLData `xml:"data"`
}

type _GraphMLEdge struct {
	ID     string         `xml:"id,attr"`
	Source string         `xml:"source,attr"`
	Target string         `xml:"target,attr"`
	Data   []_GraphMLData `xml:"data"`
}

type _GraphMLDocument struct {
	Keys  []_GraphMLKey `xml:"key"`
	Graph struct {
		Nodes []_GraphMLNode `xml:"node"`
		Edges []_GraphMLEdge `xml:"edge"`
	} `xml:"graph"`
}

// Reads a graphml file as written by osmnx.save_graphml.
func ParseGraphML(file string) (*graph.Graph, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseGraphMLReader(f)
}

func ParseGraphMLReader(r io.Reader) (*graph.Graph, error) {
	var doc _GraphMLDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse graphml: %w", err)
	}

	// key id -> attribute name
	node_keys := NewDict[string, string](len(doc.Keys))
	edge_keys := NewDict[string, string](len(doc.Keys))
	for _, key := range doc.Keys {
		switch key.For {
		case "node":
			node_keys[key.ID] = key.Name
		case "edge":
			edge_keys[key.ID] = key.Name
		}
	}

	b := graph.NewBuilder()
	skipped := 0
	for _, node := range doc.Graph.Nodes {
		data := _DataMap(node.Data, node_keys)
		x, err_x := strconv.ParseFloat(data["x"], 64)
		y, err_y := strconv.ParseFloat(data["y"], 64)
		if err_x != nil || err_y != nil {
			skipped += 1
			continue
		}
		b.AddNode(_ParseID(node.ID), x, y)
	}

	invalid := 0
	for _, edge := range doc.Graph.Edges {
		data := _DataMap(edge.Data, edge_keys)
		e := attr.EdgeAttribs{
			Type: attr.RoadTypeFromString(_FirstListValue(data["highway"])),
			Name: _FirstListValue(data["name"]),
		}
		e.Length = _ParseOptional(data["length"])
		e.TravelTime = _ParseOptional(data["travel_time"])
		e.SpeedKph = _ParseOptional(data["speed_kph"])
		if wkt, ok := data["geometry"]; ok && wkt != "" {
			geom, err := _ParseWKTLine(wkt)
			if err != nil {
				invalid += 1
			} else {
				e.Geometry = geom
			}
		}
		key, _ := strconv.ParseInt(edge.ID, 10, 32)
		b.AddEdge(_ParseID(edge.Source), _ParseID(edge.Target), int32(key), e)
	}

	g := b.Build()
	if skipped > 0 || invalid > 0 || b.DroppedEdges() > 0 {
		slog.Warn("graphml has defects", "skipped_nodes", skipped, "invalid_geometries", invalid, "dropped_edges", b.DroppedEdges())
	}
	return g, nil
}

func _DataMap(data []_GraphMLData, keys Dict[string, string]) Dict[string, string] {
	values := NewDict[string, string](len(data))
	for _, d := range data {
		name, ok := keys[d.Key]
		if !ok {
			name = d.Key
		}
		values[name] = strings.TrimSpace(d.Value)
	}
	return values
}

func _ParseOptional(value string) Optional[float64] {
	if value == "" {
		return None[float64]()
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return None[float64]()
	}
	return Some(v)
}

// osmnx serializes lists like "['primary', 'secondary']".
func _FirstListValue(value string) string {
	if !strings.HasPrefix(value, "[") {
		return value
	}
	value = strings.Trim(value, "[]")
	first, _, _ := strings.Cut(value, ",")
	return strings.Trim(strings.TrimSpace(first), `'"`)
}
