package attr

import (
	"encoding/json"
	"errors"
)

//*******************************************
// enums
//*******************************************

type RoadType int8

const (
	MOTORWAY       RoadType = 1
	MOTORWAY_LINK  RoadType = 2
	TRUNK          RoadType = 3
	TRUNK_LINK     RoadType = 4
	PRIMARY        RoadType = 5
	PRIMARY_LINK   RoadType = 6
	SECONDARY      RoadType = 7
	SECONDARY_LINK RoadType = 8
	TERTIARY       RoadType = 9
	TERTIARY_LINK  RoadType = 10
	RESIDENTIAL    RoadType = 11
	LIVING_STREET  RoadType = 12
	UNCLASSIFIED   RoadType = 13
	ROAD           RoadType = 14
	TRACK          RoadType = 15
	SERVICE        RoadType = 16
)

var road_type_names = map[RoadType]string{
	MOTORWAY:       "motorway",
	MOTORWAY_LINK:  "motorway_link",
	TRUNK:          "trunk",
	TRUNK_LINK:     "trunk_link",
	PRIMARY:        "primary",
	PRIMARY_LINK:   "primary_link",
	SECONDARY:      "secondary",
	SECONDARY_LINK: "secondary_link",
	TERTIARY:       "tertiary",
	TERTIARY_LINK:  "tertiary_link",
	RESIDENTIAL:    "residential",
	LIVING_STREET:  "living_street",
	UNCLASSIFIED:   "unclassified",
	ROAD:           "road",
	TRACK:          "track",
	SERVICE:        "service",
}

var road_types_by_name = func() map[string]RoadType {
	m := make(map[string]RoadType, len(road_type_names))
	for typ, name := range road_type_names {
		m[name] = typ
	}
	return m
}()

func (self RoadType) String() string {
	return road_type_names[self]
}

// Returns 0 for unknown highway values.
func RoadTypeFromString(typ string) RoadType {
	return road_types_by_name[typ]
}

func (self RoadType) IsMotorwayLike() bool {
	return self == MOTORWAY || self == MOTORWAY_LINK || self == TRUNK || self == TRUNK_LINK
}

func (self RoadType) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.String())
}
func (self *RoadType) UnmarshalJSON(data []byte) error {
	var typ string
	if err := json.Unmarshal(data, &typ); err != nil {
		return err
	}
	road_typ := RoadTypeFromString(typ)
	if road_typ == 0 {
		return errors.New("invalid road type")
	}
	*self = road_typ
	return nil
}
