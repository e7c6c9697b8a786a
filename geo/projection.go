package geo

import (
	"math"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/project"
)

//*******************************************
// planar projection
//*******************************************

// Projects a coordinate to web mercator meters.
func ToMercator(c Coord) orb.Point {
	return project.Point(c.Point(), project.WGS84.ToMercator)
}

// Local scale of the mercator projection at the given latitude.
//
// Multiplying a mercator distance by this factor yields ground meters near lat.
func MercatorScale(lat float64) float64 {
	return math.Cos(lat * math.Pi / 180)
}

// Ground distance in meters between two points, measured in the mercator plane
// and corrected with the scale factor at a.
func PlanarDistance(a, b Coord) float64 {
	pa := ToMercator(a)
	pb := ToMercator(b)
	dx := pa[0] - pb[0]
	dy := pa[1] - pb[1]
	return math.Sqrt(dx*dx+dy*dy) * MercatorScale(a.Lat())
}

// Great circle distance in meters.
func HaversineDistance(a, b Coord) float64 {
	return orbgeo.DistanceHaversine(a.Point(), b.Point())
}

// Great circle length in meters of a polyline.
func LineLength(line CoordArray) float64 {
	return orbgeo.LengthHaversine(line.LineString())
}
