package routing

import "errors"

var (
	// Malformed coordinates or a non-positive candidate count.
	ErrInvalidInput = errors.New("invalid input")
	// The graph has no nodes to snap to.
	ErrNoNodesAvailable = errors.New("no nodes available")
	// Every candidate failed; the points may be inaccessible by road.
	ErrNoValidRoute = errors.New("no valid route")

	// per candidate, absorbed by the router
	ErrNoPath          = errors.New("no path")
	ErrAssemblyFailure = errors.New("route assembly failed")
)
