package parser

import (
	"github.com/ttpr0/go-multiroute/attr"
	. "github.com/ttpr0/go-multiroute/util"
)

//*******************************************
// osm decoder
//*******************************************

type IOSMDecoder interface {
	IsValidHighway(tags Dict[string, string]) bool
	DecodeEdge(tags Dict[string, string]) (attr.EdgeAttribs, Oneway)
}

type DrivingDecoder struct {
}

var driving_types = Dict[string, bool]{"motorway": true, "motorway_link": true, "trunk": true, "trunk_link": true,
	"primary": true, "primary_link": true, "secondary": true, "secondary_link": true, "tertiary": true, "tertiary_link": true,
	"residential": true, "living_street": true, "service": true, "track": true, "unclassified": true, "road": true}

func (self *DrivingDecoder) IsValidHighway(tags Dict[string, string]) bool {
	if !tags.ContainsKey("highway") {
		return false
	}
	if !driving_types.ContainsKey(tags.Get("highway")) {
		return false
	}
	switch tags.Get("access") {
	case "no", "private":
		return false
	}
	return tags.Get("area") != "yes"
}

// Decodes road class, name and speed; length and geometry are set by the caller.
func (self *DrivingDecoder) DecodeEdge(tags Dict[string, string]) (attr.EdgeAttribs, Oneway) {
	typ := attr.RoadTypeFromString(tags.Get("highway"))
	speed := _GetTravelSpeed(typ, tags.Get("maxspeed"), tags.Get("tracktype"), tags.Get("surface"))
	e := attr.EdgeAttribs{
		Type:     typ,
		Name:     tags.Get("name"),
		SpeedKph: Some(float64(speed)),
	}
	return e, _GetOneway(tags.Get("oneway"), typ)
}
