package parser

import (
	"strconv"
	"strings"

	"github.com/ttpr0/go-multiroute/attr"
)

//*******************************************
// utility methods
//*******************************************

type Oneway byte

const (
	ONEWAY_NO      Oneway = 0
	ONEWAY_FORWARD Oneway = 1
	// oneway=-1, traffic runs against the way direction
	ONEWAY_REVERSE Oneway = 2
)

func _GetOneway(oneway string, str_type attr.RoadType) Oneway {
	switch oneway {
	case "yes", "true", "1":
		return ONEWAY_FORWARD
	case "-1", "reverse":
		return ONEWAY_REVERSE
	case "no", "false", "0":
		return ONEWAY_NO
	}
	if str_type.IsMotorwayLike() {
		return ONEWAY_FORWARD
	}
	return ONEWAY_NO
}

// Parses osm maxspeed values like "50", "30 mph" or "none"; false if unknown.
func _ParseMaxspeed(maxspeed string) (float64, bool) {
	maxspeed = strings.TrimSpace(maxspeed)
	switch maxspeed {
	case "":
		return 0, false
	case "walk":
		return 10, true
	case "none":
		return 110, true
	}
	factor := 1.0
	if strings.HasSuffix(maxspeed, "mph") {
		factor = 1.609344
		maxspeed = strings.TrimSpace(strings.TrimSuffix(maxspeed, "mph"))
	}
	v, err := strconv.ParseFloat(maxspeed, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v * factor, true
}

// Estimated driving speed in km/h from highway class and tags.
func _GetTravelSpeed(streettype attr.RoadType, maxspeed string, tracktype string, surface string) int32 {
	var speed int32

	limit, has_limit := _ParseMaxspeed(maxspeed)
	if has_limit {
		speed = int32(0.9 * limit)
	} else {
		switch streettype {
		case attr.MOTORWAY:
			speed = 100
		case attr.TRUNK:
			speed = 85
		case attr.MOTORWAY_LINK, attr.TRUNK_LINK:
			speed = 60
		case attr.PRIMARY:
			speed = 65
		case attr.SECONDARY:
			speed = 60
		case attr.TERTIARY:
			speed = 50
		case attr.PRIMARY_LINK, attr.SECONDARY_LINK:
			speed = 50
		case attr.TERTIARY_LINK:
			speed = 40
		case attr.UNCLASSIFIED:
			speed = 30
		case attr.RESIDENTIAL:
			speed = 30
		case attr.LIVING_STREET:
			speed = 10
		case attr.ROAD:
			speed = 20
		case attr.SERVICE:
			speed = 15
		case attr.TRACK:
			if tracktype == "" {
				speed = 15
			} else {
				switch tracktype {
				case "grade1":
					speed = 40
				case "grade2":
					speed = 30
				case "grade3":
					speed = 20
				case "grade4":
					speed = 15
				case "grade5":
					speed = 10
				default:
					speed = 15
				}
			}
		default:
			speed = 20
		}
	}

	// check if surface is set
	if surface != "" {
		switch surface {
		case "cement", "compacted":
			if speed > 80 {
				speed = 80
			}
		case "fine_gravel":
			if speed > 60 {
				speed = 60
			}
		case "paving_stones", "metal", "bricks":
			if speed > 40 {
				speed = 40
			}
		case "grass", "wood", "sett", "grass_paver", "gravel", "unpaved", "ground", "dirt", "pebblestone", "tartan":
			if speed > 30 {
				speed = 30
			}
		case "cobblestone", "clay":
			if speed > 20 {
				speed = 20
			}
		case "earth", "stone", "rocky", "sand":
			if speed > 15 {
				speed = 15
			}
		case "mud":
			if speed > 10 {
				speed = 10
			}
		}
	}

	if speed == 0 {
		speed = 10
	}
	return speed
}
