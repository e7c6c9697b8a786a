package graph

import (
	"github.com/ttpr0/go-multiroute/attr"
)

//*******************************************
// weighting interface
//*******************************************

// Edge costs used by shortest path searches; weights must be non-negative.
type IWeighting interface {
	GetEdgeWeight(edge int32) float64
	Type() WeightType
}

type WeightType byte

const (
	TRAVEL_TIME_WEIGHT WeightType = 0
	DYNAMIC_WEIGHT     WeightType = 1
)

//*******************************************
// travel-time weighting
//*******************************************

// Weights edges by their traversal time in seconds.
//
// The time is resolved on every lookup with attr.TravelTime, so edges
// lacking a travel_time are costed by their length and speed.
type TravelTimeWeighting struct {
	graph         IGraph
	default_speed float64
}

func NewTravelTimeWeighting(graph IGraph, default_speed float64) *TravelTimeWeighting {
	if default_speed <= 0 {
		default_speed = attr.DEFAULT_SPEED_KPH
	}
	return &TravelTimeWeighting{
		graph:         graph,
		default_speed: default_speed,
	}
}

func (self *TravelTimeWeighting) GetEdgeWeight(edge int32) float64 {
	w, _ := attr.TravelTime(self.graph.GetEdgeAttribs(edge), self.default_speed)
	return w
}
func (self *TravelTimeWeighting) Type() WeightType {
	return TRAVEL_TIME_WEIGHT
}
func (self *TravelTimeWeighting) DefaultSpeed() float64 {
	return self.default_speed
}

//*******************************************
// dynamic weighting
//*******************************************

type DynamicWeighting struct {
	weight func(edge int32) float64
}

func NewDynamicWeighting(weight func(edge int32) float64) *DynamicWeighting {
	return &DynamicWeighting{
		weight: weight,
	}
}

func (self *DynamicWeighting) GetEdgeWeight(edge int32) float64 {
	return self.weight(edge)
}
func (self *DynamicWeighting) Type() WeightType {
	return DYNAMIC_WEIGHT
}
