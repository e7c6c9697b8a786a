package parser

import (
	"fmt"
	"strings"

	"github.com/paulmach/orb/encoding/wkt"
	"github.com/ttpr0/go-multiroute/attr"
	"github.com/ttpr0/go-multiroute/geo"
	"github.com/ttpr0/go-multiroute/graph"
	. "github.com/ttpr0/go-multiroute/util"
)

//*******************************************
// tabular graph rows
//*******************************************

// Node row of a tabular export (osmnx column names).
type NodeRow struct {
	ID int64   `csv:"osmid" db:"osmid"`
	X  float64 `csv:"x" db:"x"`
	Y  float64 `csv:"y" db:"y"`
}

// Edge row of a tabular export; geometry is a WKT linestring.
type EdgeRow struct {
	U          int64    `csv:"u" db:"u"`
	V          int64    `csv:"v" db:"v"`
	Key        *int64   `csv:"key" db:"key"`
	Length     *float64 `csv:"length" db:"length"`
	TravelTime *float64 `csv:"travel_time" db:"travel_time"`
	SpeedKph   *float64 `csv:"speed_kph" db:"speed_kph"`
	Highway    *string  `csv:"highway" db:"highway"`
	Name       *string  `csv:"name" db:"name"`
	Geometry   *string  `csv:"geometry" db:"geometry"`
}

func (self EdgeRow) Attribs() (attr.EdgeAttribs, error) {
	e := attr.EdgeAttribs{}
	if self.Length != nil {
		e.Length = Some(*self.Length)
	}
	if self.TravelTime != nil {
		e.TravelTime = Some(*self.TravelTime)
	}
	if self.SpeedKph != nil {
		e.SpeedKph = Some(*self.SpeedKph)
	}
	if self.Highway != nil {
		e.Type = attr.RoadTypeFromString(*self.Highway)
	}
	if self.Name != nil {
		e.Name = *self.Name
	}
	if self.Geometry != nil && strings.TrimSpace(*self.Geometry) != "" {
		geom, err := _ParseWKTLine(*self.Geometry)
		if err != nil {
			return e, err
		}
		e.Geometry = geom
	}
	return e, nil
}

func _ParseWKTLine(s string) (geo.CoordArray, error) {
	ls, err := wkt.UnmarshalLineString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid edge geometry: %w", err)
	}
	return geo.FromLineString(ls), nil
}

// Adds node and edge rows to a builder.
//
// Edges with invalid geometry keep their attributes and fall back to a
// straight segment.
func _AddRows(b *graph.Builder, nodes func(yield func(NodeRow) bool), edges func(yield func(EdgeRow) bool)) int {
	for node := range nodes {
		b.AddNode(node.ID, node.X, node.Y)
	}
	invalid := 0
	for edge := range edges {
		attribs, err := edge.Attribs()
		if err != nil {
			invalid += 1
		}
		var key int32
		if edge.Key != nil {
			key = int32(*edge.Key)
		}
		b.AddEdge(edge.U, edge.V, key, attribs)
	}
	return invalid
}

func _SliceSeq[T any](items []T) func(yield func(T) bool) {
	return func(yield func(T) bool) {
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	}
}
