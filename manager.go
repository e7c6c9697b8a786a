package main

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ttpr0/go-multiroute/geo"
	"github.com/ttpr0/go-multiroute/graph"
	"github.com/ttpr0/go-multiroute/parser"
	"github.com/ttpr0/go-multiroute/routing"
	"golang.org/x/exp/slog"
)

var ErrNoGraph = errors.New("no graph loaded")

// Owns the loaded graph and the router.
//
// Readers take a snapshot with Graph(); edge removal swaps in a new graph so
// that in-flight requests keep routing on the old one.
type GraphManager struct {
	config Config
	router *routing.Router
	graph  atomic.Pointer[graph.Graph]
	// serializes writers
	mu sync.Mutex
}

func NewGraphManager(config Config) *GraphManager {
	return &GraphManager{
		config: config,
		router: routing.NewRouter(config.Routing.RouterOptions()),
	}
}

func (self *GraphManager) Router() *routing.Router {
	return self.router
}

// Returns the current graph snapshot or nil.
func (self *GraphManager) Graph() *graph.Graph {
	return self.graph.Load()
}

func (self *GraphManager) SetGraph(g *graph.Graph) {
	self.mu.Lock()
	defer self.mu.Unlock()
	self.graph.Store(g)
}

// Loads the graph from the configured source.
func (self *GraphManager) LoadGraph(ctx context.Context) error {
	options := self.config.Graph
	start := time.Now()
	slog.Info("loading graph", "source", options.Source.String())

	var g *graph.Graph
	var err error
	switch options.Source {
	case GRAPHML:
		g, err = parser.ParseGraphML(options.Path)
	case NODE_LINK:
		g, err = parser.ParseNodeLink(options.Path)
	case CSV:
		g, err = parser.ParseCSV(options.Path, []rune(options.Delimiter)[0])
	case OSM_PBF:
		g, err = parser.ParsePBF(ctx, options.Path, &parser.DrivingDecoder{})
	case OVERPASS:
		client := parser.NewOverpassClient(options.OverpassURL, 3*time.Minute)
		g, err = client.FetchPlace(options.Place, &parser.DrivingDecoder{})
	case POSTGRES:
		g, err = self.loadPostgres(ctx)
	default:
		err = fmt.Errorf("unknown graph source %v", options.Source)
	}
	if err != nil {
		return fmt.Errorf("failed to load graph from %v: %w", options.Source, err)
	}
	self.SetGraph(g)
	slog.Info("graph loaded", "nodes", g.NodeCount(), "edges", g.EdgeCount(), "took", time.Since(start).String())
	return nil
}

func (self *GraphManager) loadPostgres(ctx context.Context) (*graph.Graph, error) {
	options := self.config.Graph
	db, err := parser.ConnectPostgres(ctx, options.PostgresURL)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return parser.LoadPostgres(ctx, db, options.NodesTable, options.EdgesTable)
}

// Removes every edge between the given external node id pairs in both
// directions and returns the number of removed edges.
func (self *GraphManager) RemoveEdges(ids [][2]int64) (int, error) {
	self.mu.Lock()
	defer self.mu.Unlock()

	g := self.graph.Load()
	if g == nil {
		return 0, ErrNoGraph
	}
	pairs := graph.PairsFromIDs(g, ids)
	updated, removed := graph.RemoveEdges(g, pairs)
	if removed > 0 {
		self.graph.Store(updated)
		slog.Info("edges removed", "count", removed, "edges", updated.EdgeCount())
	}
	return removed, nil
}

// Routes on the current snapshot.
func (self *GraphManager) Route(origin, dest geo.Coord, k int) (routing.RouteResult, error) {
	g := self.graph.Load()
	if g == nil {
		return routing.RouteResult{}, routing.ErrNoNodesAvailable
	}
	return self.router.Route(g, origin, dest, k)
}
