package main

import (
	"github.com/ttpr0/go-multiroute/geo"
	"github.com/ttpr0/go-multiroute/routing"
)

type ErrorResponse struct {
	Request   string `json:"request"`
	RequestID string `json:"request_id,omitempty"`
	Error     any    `json:"error"`
}

func NewErrorResponse(request string, request_id string, error any) ErrorResponse {
	return ErrorResponse{
		Request:   request,
		RequestID: request_id,
		Error:     error,
	}
}

//**********************************************************
// routing responses
//**********************************************************

type RouteResponse struct {
	// [lat, lon] pairs
	Geometry []geo.LatLng `json:"geometry"`
	// meters
	Length int `json:"length"`
	// minutes
	TravelTime float64 `json:"travel_time"`
	// meters between the destination and the route end
	DistanceToCoord float64 `json:"distance_to_coord"`
}

func NewRouteResponse(route routing.Route) RouteResponse {
	return RouteResponse{
		Geometry:        route.Geometry,
		Length:          route.LengthM,
		TravelTime:      route.TravelTime,
		DistanceToCoord: route.SnapDistance,
	}
}

type ProcessResponse struct {
	RequestID string          `json:"request_id"`
	Message   string          `json:"message"`
	Success   bool            `json:"success"`
	Status    string          `json:"status"`
	Routes    []RouteResponse `json:"routes"`
}

func NewProcessResponse(request_id string, result routing.RouteResult) ProcessResponse {
	routes := make([]RouteResponse, 0, len(result.Routes))
	for _, route := range result.Routes {
		routes = append(routes, NewRouteResponse(route))
	}
	return ProcessResponse{
		RequestID: request_id,
		Message:   result.Message,
		Success:   len(routes) > 0,
		Status:    result.Status.String(),
		Routes:    routes,
	}
}

// Best route only, in the flat layout older clients expect.
type SingleRouteResponse struct {
	RequestID       string       `json:"request_id"`
	Message         string       `json:"message"`
	Success         bool         `json:"success"`
	RouteGeometry   []geo.LatLng `json:"route_geometry"`
	Distance        int          `json:"distance"`
	TravelTime      float64      `json:"travel_time"`
	DistanceToCoord float64      `json:"distance_to_coord"`
}

func NewSingleRouteResponse(request_id string, result routing.RouteResult) SingleRouteResponse {
	resp := SingleRouteResponse{
		RequestID:     request_id,
		Message:       result.Message,
		RouteGeometry: []geo.LatLng{},
	}
	best, ok := result.Best()
	if !ok {
		return resp
	}
	resp.Success = true
	resp.RouteGeometry = best.Geometry
	resp.Distance = best.LengthM
	resp.TravelTime = best.TravelTime
	resp.DistanceToCoord = best.SnapDistance
	return resp
}

// Error body of the routing endpoints.
type FailureResponse struct {
	RequestID string          `json:"request_id"`
	Message   string          `json:"message"`
	Success   bool            `json:"success"`
	Routes    []RouteResponse `json:"routes"`
}

func NewFailureResponse(request_id string, message string) FailureResponse {
	return FailureResponse{
		RequestID: request_id,
		Message:   message,
		Success:   false,
		Routes:    []RouteResponse{},
	}
}

//**********************************************************
// network responses
//**********************************************************

type NetworkEdge struct {
	// [lat, lon] pairs
	Coords []geo.LatLng `json:"coords"`
	U      int64        `json:"u"`
	V      int64        `json:"v"`
}

type NetworkResponse struct {
	Edges []NetworkEdge `json:"edges"`
}

type DeleteEdgesResponse struct {
	Message string `json:"message"`
	Removed int    `json:"removed"`
}
