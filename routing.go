package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ttpr0/go-multiroute/routing"
)

//**********************************************************
// routing handlers
//**********************************************************

func HandleProcessRequest(manager *GraphManager) func(*gin.Context, ProcessRequest) Result {
	return func(c *gin.Context, req ProcessRequest) Result {
		request_id := GetRequestID(c)
		result, res, ok := _RouteRequest(manager, request_id, req)
		if !ok {
			return res
		}
		return OK(NewProcessResponse(request_id, result))
	}
}

// Same search as /process, answering with the fastest route only.
func HandleProcessSingleRequest(manager *GraphManager) func(*gin.Context, ProcessRequest) Result {
	return func(c *gin.Context, req ProcessRequest) Result {
		request_id := GetRequestID(c)
		result, res, ok := _RouteRequest(manager, request_id, req)
		if !ok {
			return res
		}
		return OK(NewSingleRouteResponse(request_id, result))
	}
}

func _RouteRequest(manager *GraphManager, request_id string, req ProcessRequest) (routing.RouteResult, Result, bool) {
	origin, dest, ok := req.Coords()
	if !ok {
		return routing.RouteResult{}, BadRequest(NewFailureResponse(request_id, "Missing coordinates: lat1, lng1, lat2 and lng2 are required.")), false
	}
	k := manager.Router().Options().DefaultK
	if req.K != nil {
		k = *req.K
	}
	result, err := manager.Route(origin, dest, k)
	if err != nil {
		return result, Status(NewFailureResponse(request_id, err.Error()), ErrorStatus(err)), false
	}
	return result, Result{}, true
}

// Maps routing errors to http status codes.
func ErrorStatus(err error) int {
	switch {
	case errors.Is(err, routing.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, routing.ErrNoValidRoute):
		return http.StatusUnprocessableEntity
	case errors.Is(err, routing.ErrNoNodesAvailable), errors.Is(err, ErrNoGraph):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
