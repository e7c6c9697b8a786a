package geo

import (
	"math"
	"testing"
)

func TestPlanarDistanceMatchesGroundDistance(t *testing.T) {
	cases := []struct {
		name string
		a, b Coord
	}{
		{"equator east", Coord{0, 0}, Coord{0.01, 0}},
		{"lausanne north", Coord{6.63, 46.52}, Coord{6.63, 46.53}},
		{"lausanne east", Coord{6.63, 46.52}, Coord{6.64, 46.52}},
		{"oslo diagonal", Coord{10.75, 59.91}, Coord{10.76, 59.92}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			planar := PlanarDistance(tc.a, tc.b)
			ground := HaversineDistance(tc.a, tc.b)
			if math.Abs(planar-ground)/ground > 0.005 {
				t.Fatalf("PlanarDistance = %.2f; haversine = %.2f", planar, ground)
			}
		})
	}
}

func TestPlanarDistanceIsIsotropic(t *testing.T) {
	// At 60 degrees north a degree of longitude spans about half the ground
	// distance of a degree of latitude; raw degree distance would call them equal.
	origin := Coord{10, 60}
	east := PlanarDistance(origin, Coord{10.01, 60})
	north := PlanarDistance(origin, Coord{10, 60.01})
	ratio := east / north
	if math.Abs(ratio-0.5) > 0.01 {
		t.Fatalf("east/north ratio = %.3f; want ~0.5", ratio)
	}
}

func TestCoordIsValid(t *testing.T) {
	cases := []struct {
		name  string
		coord Coord
		want  bool
	}{
		{"valid", Coord{6.6, 46.5}, true},
		{"nan", Coord{math.NaN(), 46.5}, false},
		{"inf", Coord{6.6, math.Inf(1)}, false},
		{"lat out of range", Coord{6.6, 91}, false},
		{"lon out of range", Coord{-181, 0}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.coord.IsValid(); got != tc.want {
				t.Fatalf("IsValid(%v) = %v; want %v", tc.coord, got, tc.want)
			}
		})
	}
}

func TestLatLngSwapsAxes(t *testing.T) {
	c := Coord{6.6, 46.5}
	ll := c.LatLng()
	if ll[0] != 46.5 || ll[1] != 6.6 {
		t.Fatalf("LatLng() = %v", ll)
	}
	line := CoordArray{{1, 2}, {3, 4}}.LatLngs()
	if line[1] != (LatLng{4, 3}) {
		t.Fatalf("LatLngs() = %v", line)
	}
}
