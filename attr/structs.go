package attr

import (
	"github.com/ttpr0/go-multiroute/geo"
	. "github.com/ttpr0/go-multiroute/util"
)

//*******************************************
// graph attributes
//*******************************************

// Attributes of a directed edge.
//
// Every numeric attribute is optional; absent values take part in the travel
// time fallback chain. A nil geometry means a straight segment between the
// edge's nodes.
type EdgeAttribs struct {
	Type       RoadType
	Name       string
	Length     Optional[float64]
	TravelTime Optional[float64]
	SpeedKph   Optional[float64]
	Geometry   geo.CoordArray
}

func (self EdgeAttribs) HasGeometry() bool {
	return len(self.Geometry) >= 2
}
