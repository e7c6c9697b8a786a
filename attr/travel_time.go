package attr

// Fallback speed for edges carrying neither travel_time nor speed_kph.
const DEFAULT_SPEED_KPH = 50.0

type TimeSource byte

const (
	TIME_NONE     TimeSource = 0
	TIME_EDGE     TimeSource = 1
	TIME_SPEED    TimeSource = 2
	TIME_FALLBACK TimeSource = 3
)

func (self TimeSource) String() string {
	switch self {
	case TIME_EDGE:
		return "travel_time"
	case TIME_SPEED:
		return "speed_kph"
	case TIME_FALLBACK:
		return "default_speed"
	}
	return "none"
}

func KphToMps(kph float64) float64 {
	return kph * 1000 / 3600
}

// Computes the traversal time of an edge in seconds.
//
// Priority: the edge's own travel_time, then length / speed_kph when the speed
// is positive, then length at the default speed. Edges without travel_time
// and length take no time.
func TravelTime(edge EdgeAttribs, default_speed float64) (float64, TimeSource) {
	if edge.TravelTime.HasValue() {
		return edge.TravelTime.Value, TIME_EDGE
	}
	if !edge.Length.HasValue() {
		return 0, TIME_NONE
	}
	length := edge.Length.Value
	if edge.SpeedKph.HasValue() && edge.SpeedKph.Value > 0 {
		return length / KphToMps(edge.SpeedKph.Value), TIME_SPEED
	}
	if default_speed <= 0 {
		default_speed = DEFAULT_SPEED_KPH
	}
	return length / KphToMps(default_speed), TIME_FALLBACK
}
