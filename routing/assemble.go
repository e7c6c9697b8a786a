package routing

import (
	"fmt"
	"math"

	"github.com/ttpr0/go-multiroute/attr"
	"github.com/ttpr0/go-multiroute/geo"
	"github.com/ttpr0/go-multiroute/graph"
	. "github.com/ttpr0/go-multiroute/util"
)

//*******************************************
// route
//*******************************************

// A routed alternative as handed to callers.
//
// Geometry is in display order (lat, lon).
type Route struct {
	Geometry []geo.LatLng
	// meters, at least 1
	LengthM int
	// minutes, one decimal, at least 0.1
	TravelTime float64
	// meters between the requested destination and Destination, one decimal
	SnapDistance float64

	Destination int32
	// unrounded travel time used for ranking
	Seconds float64
}

type AssembleOptions struct {
	DefaultSpeedKph float64
}

// Aggregates length, travel time and geometry along a node path.
//
// Consecutive nodes without an edge between them are skipped. Parallel
// edges resolve to the primary edge. Polylines are appended with all their
// vertices; straight edges add their end node. Paths yielding no length, no time or
// fewer than two coordinates fail with ErrAssemblyFailure.
func AssembleRoute(g graph.IGraph, path []int32, opts AssembleOptions) (Route, error) {
	geom := NewList[geo.Coord](len(path) * 2)
	length := 0.0
	seconds := 0.0
	for i := 0; i+1 < len(path); i++ {
		edge, ok := g.GetEdgeBetween(path[i], path[i+1])
		if !ok {
			continue
		}
		attribs := g.GetEdgeAttribs(edge)
		if attribs.Length.HasValue() {
			length += attribs.Length.Value
		}
		t, _ := attr.TravelTime(attribs, opts.DefaultSpeedKph)
		seconds += t
		if attribs.HasGeometry() {
			for _, c := range attribs.Geometry {
				geom.Add(c)
			}
		} else {
			// start node only opens the route
			if geom.Length() == 0 {
				geom.Add(g.GetNodeGeom(path[i]))
			}
			geom.Add(g.GetNodeGeom(path[i+1]))
		}
	}

	if length <= 0 || seconds <= 0 || geom.Length() < 2 {
		return Route{}, fmt.Errorf("%w: length %.1f m, time %.1f s, %d coordinates", ErrAssemblyFailure, length, seconds, geom.Length())
	}

	destination := int32(-1)
	if len(path) > 0 {
		destination = path[len(path)-1]
	}
	return Route{
		Geometry:    geo.CoordArray(geom).LatLngs(),
		LengthM:     max(int(math.Round(length)), 1),
		TravelTime:  max(_Round(seconds/60, 1), 0.1),
		Destination: destination,
		Seconds:     seconds,
	}, nil
}

func _Round(value float64, digits int) float64 {
	factor := math.Pow(10, float64(digits))
	return math.Round(value*factor) / factor
}
