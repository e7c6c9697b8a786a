package routing

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ttpr0/go-multiroute/attr"
	"github.com/ttpr0/go-multiroute/geo"
	"github.com/ttpr0/go-multiroute/graph"
	. "github.com/ttpr0/go-multiroute/util"
	"golang.org/x/exp/slog"
)

//*******************************************
// router options
//*******************************************

type Options struct {
	// max ground distance between destination and a candidate node
	RadiusMeters float64
	// candidate count used when the caller does not ask for one
	DefaultK int
	// upper bound on candidates per request
	MaxK int
	// speed for edges without travel_time and speed_kph
	DefaultSpeedKph float64
}

func DefaultOptions() Options {
	return Options{
		RadiusMeters:    800,
		DefaultK:        5,
		MaxK:            25,
		DefaultSpeedKph: attr.DEFAULT_SPEED_KPH,
	}
}

// Replaces unset or invalid values with defaults.
func (self Options) withDefaults() Options {
	def := DefaultOptions()
	if self.RadiusMeters <= 0 {
		self.RadiusMeters = def.RadiusMeters
	}
	if self.DefaultK <= 0 {
		self.DefaultK = def.DefaultK
	}
	if self.MaxK <= 0 {
		self.MaxK = def.MaxK
	}
	if self.DefaultK > self.MaxK {
		self.DefaultK = self.MaxK
	}
	if self.DefaultSpeedKph <= 0 {
		self.DefaultSpeedKph = def.DefaultSpeedKph
	}
	return self
}

//*******************************************
// route result
//*******************************************

type ResultStatus byte

const (
	STATUS_OK ResultStatus = 0
	// no node within the radius of the destination
	STATUS_NO_CANDIDATES ResultStatus = 1
)

func (self ResultStatus) String() string {
	if self == STATUS_NO_CANDIDATES {
		return "no_candidates"
	}
	return "ok"
}

type RouteResult struct {
	// ascending by travel time
	Routes  []Route
	Message string
	Status  ResultStatus
	// number of candidates searched
	Attempted int
	Origin    int32
}

// Returns the fastest route.
func (self RouteResult) Best() (Route, bool) {
	if len(self.Routes) == 0 {
		return Route{}, false
	}
	return self.Routes[0], true
}

//*******************************************
// multi-candidate router
//*******************************************

// Routes from a snapped origin to every node close to the destination.
//
// Safe for concurrent use as long as the graph is not mutated.
type Router struct {
	opts Options
}

func NewRouter(opts Options) *Router {
	return &Router{
		opts: opts.withDefaults(),
	}
}

func (self *Router) Options() Options {
	return self.opts
}

// Computes up to k ranked routes from origin to the nodes around dest.
//
// A destination without nearby nodes is not an error: the result carries
// STATUS_NO_CANDIDATES and an advisory message. Errors are ErrInvalidInput,
// ErrNoNodesAvailable and ErrNoValidRoute.
func (self *Router) Route(g graph.IGraph, origin, dest geo.Coord, k int) (RouteResult, error) {
	if !origin.IsValid() || !dest.IsValid() {
		return RouteResult{}, fmt.Errorf("%w: coordinates must be finite lon/lat pairs", ErrInvalidInput)
	}
	if k < 1 {
		return RouteResult{}, fmt.Errorf("%w: k must be at least 1, got %d", ErrInvalidInput, k)
	}
	if k > self.opts.MaxK {
		k = self.opts.MaxK
	}
	if g == nil || g.NodeCount() == 0 {
		return RouteResult{}, ErrNoNodesAvailable
	}

	start, ok := g.GetClosestNode(origin)
	if !ok {
		return RouteResult{}, ErrNoNodesAvailable
	}
	slog.Debug("origin snapped", "node", g.GetNodeID(start))

	candidates := g.GetIndex().GetNodesWithin(dest, self.opts.RadiusMeters, k)
	if len(candidates) == 0 {
		return RouteResult{
			Routes:  []Route{},
			Message: fmt.Sprintf("The coordinates are too far from any road (no node within %.0f m of the destination).", self.opts.RadiusMeters),
			Status:  STATUS_NO_CANDIDATES,
			Origin:  start,
		}, nil
	}

	weight := graph.NewTravelTimeWeighting(g, self.opts.DefaultSpeedKph)
	assemble_opts := AssembleOptions{DefaultSpeedKph: self.opts.DefaultSpeedKph}
	routes := NewList[Route](len(candidates))
	for _, candidate := range candidates {
		route, err := self.routeCandidate(g, weight, assemble_opts, start, candidate)
		if err != nil {
			if IsCandidateError(err) {
				slog.Debug("candidate skipped", "node", g.GetNodeID(candidate.Node), "error", err)
			} else {
				slog.Warn("candidate failed", "node", g.GetNodeID(candidate.Node), "error", err)
			}
			continue
		}
		routes.Add(route)
	}

	if routes.Length() == 0 {
		return RouteResult{}, fmt.Errorf("%w among %d candidates, the points may be inaccessible", ErrNoValidRoute, len(candidates))
	}

	sort.SliceStable(routes, func(i, j int) bool {
		return routes[i].Seconds < routes[j].Seconds
	})
	return RouteResult{
		Routes:    routes,
		Message:   fmt.Sprintf("Found %d route(s), the fastest takes %.1f minutes.", routes.Length(), routes[0].TravelTime),
		Status:    STATUS_OK,
		Attempted: len(candidates),
		Origin:    start,
	}, nil
}

func (self *Router) routeCandidate(g graph.IGraph, weight graph.IWeighting, opts AssembleOptions, start int32, candidate graph.Candidate) (Route, error) {
	path, err := ShortestPath(g, weight, start, candidate.Node)
	if err != nil {
		return Route{}, err
	}
	route, err := AssembleRoute(g, path, opts)
	if err != nil {
		return Route{}, err
	}
	route.SnapDistance = _Round(candidate.Distance, 1)
	return route, nil
}

// Reports whether err is absorbed per candidate rather than surfaced.
func IsCandidateError(err error) bool {
	return errors.Is(err, ErrNoPath) || errors.Is(err, ErrAssemblyFailure)
}
