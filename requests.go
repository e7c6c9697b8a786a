package main

import (
	"github.com/ttpr0/go-multiroute/geo"
)

// Body of /process and /process_single.
type ProcessRequest struct {
	// origin
	Lat1 *float64 `json:"lat1"`
	Lng1 *float64 `json:"lng1"`
	// destination
	Lat2 *float64 `json:"lat2"`
	Lng2 *float64 `json:"lng2"`

	// number of destination candidates, optional
	K *int `json:"k"`
}

// Returns origin and destination, false if a coordinate is missing.
func (self ProcessRequest) Coords() (geo.Coord, geo.Coord, bool) {
	if self.Lat1 == nil || self.Lng1 == nil || self.Lat2 == nil || self.Lng2 == nil {
		return geo.Coord{}, geo.Coord{}, false
	}
	return geo.Coord{*self.Lng1, *self.Lat1}, geo.Coord{*self.Lng2, *self.Lat2}, true
}

type NetworkRequest struct {
	// "edges" (default) or "geojson"
	Format string `form:"format"`
}

type EdgePair struct {
	U *int64 `json:"u"`
	V *int64 `json:"v"`
}

type DeleteEdgesRequest struct {
	Edges []EdgePair `json:"edges"`
}
