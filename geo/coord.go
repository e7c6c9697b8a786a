package geo

import (
	"math"

	"github.com/paulmach/orb"
)

//*******************************************
// coordinates
//*******************************************

// WGS84 position in (longitude, latitude) order.
type Coord [2]float64

func (self Coord) Lon() float64 {
	return self[0]
}
func (self Coord) Lat() float64 {
	return self[1]
}

// Checks that both axes are finite and inside the WGS84 range.
func (self Coord) IsValid() bool {
	lon, lat := self[0], self[1]
	if math.IsNaN(lon) || math.IsNaN(lat) || math.IsInf(lon, 0) || math.IsInf(lat, 0) {
		return false
	}
	return lon >= -180 && lon <= 180 && lat >= -90 && lat <= 90
}

// Swaps the axes for display.
func (self Coord) LatLng() LatLng {
	return LatLng{self[1], self[0]}
}

func (self Coord) Point() orb.Point {
	return orb.Point{self[0], self[1]}
}

func FromPoint(p orb.Point) Coord {
	return Coord{p[0], p[1]}
}

// Display position in (latitude, longitude) order.
type LatLng [2]float64

type CoordArray []Coord

func (self CoordArray) LineString() orb.LineString {
	ls := make(orb.LineString, len(self))
	for i, c := range self {
		ls[i] = c.Point()
	}
	return ls
}

func (self CoordArray) LatLngs() []LatLng {
	out := make([]LatLng, len(self))
	for i, c := range self {
		out[i] = c.LatLng()
	}
	return out
}

func FromLineString(ls orb.LineString) CoordArray {
	coords := make(CoordArray, len(ls))
	for i, p := range ls {
		coords[i] = FromPoint(p)
	}
	return coords
}

// Returns a reversed copy.
func (self CoordArray) Reversed() CoordArray {
	out := make(CoordArray, len(self))
	for i, c := range self {
		out[len(self)-1-i] = c
	}
	return out
}
