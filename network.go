package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb/geojson"
	"github.com/ttpr0/go-multiroute/geo"
	"github.com/ttpr0/go-multiroute/graph"
)

//**********************************************************
// network handlers
//**********************************************************

// Lists every edge of the loaded graph for display.
func HandleNetworkRequest(manager *GraphManager) func(*gin.Context, NetworkRequest) Result {
	return func(c *gin.Context, req NetworkRequest) Result {
		g := manager.Graph()
		if g == nil {
			return Status(NewFailureResponse(GetRequestID(c), ErrNoGraph.Error()), ErrorStatus(ErrNoGraph))
		}
		switch req.Format {
		case "", "edges":
			return OK(NetworkResponse{Edges: NetworkEdges(g)})
		case "geojson":
			return OK(NetworkFeatures(g))
		}
		return BadRequest(fmt.Sprintf("unknown format %q", req.Format))
	}
}

func NetworkEdges(g graph.IGraph) []NetworkEdge {
	edges := make([]NetworkEdge, 0, g.EdgeCount())
	for id, edge := range g.ForAllEdges() {
		edges = append(edges, NetworkEdge{
			Coords: g.GetEdgeGeom(id).LatLngs(),
			U:      g.GetNodeID(edge.NodeA),
			V:      g.GetNodeID(edge.NodeB),
		})
	}
	return edges
}

func NetworkFeatures(g graph.IGraph) *geojson.FeatureCollection {
	features := make([]*geojson.Feature, 0, g.EdgeCount())
	for id, edge := range g.ForAllEdges() {
		attribs := g.GetEdgeAttribs(id)
		features = append(features, geo.NewLineFeature(g.GetEdgeGeom(id), map[string]any{
			"u":       g.GetNodeID(edge.NodeA),
			"v":       g.GetNodeID(edge.NodeB),
			"key":     edge.Key,
			"highway": attribs.Type.String(),
			"name":    attribs.Name,
		}))
	}
	return geo.NewFeatureCollection(features)
}

// Removes the listed edges in both directions.
//
// Every parallel edge between u and v goes, not a single one per direction,
// so "removed" counts all of them on multigraphs.
func HandleDeleteEdgesRequest(manager *GraphManager) func(*gin.Context, DeleteEdgesRequest) Result {
	return func(c *gin.Context, req DeleteEdgesRequest) Result {
		ids := make([][2]int64, 0, len(req.Edges))
		for i, pair := range req.Edges {
			if pair.U == nil || pair.V == nil {
				return BadRequest(fmt.Sprintf("edge %d needs u and v", i))
			}
			ids = append(ids, [2]int64{*pair.U, *pair.V})
		}
		removed, err := manager.RemoveEdges(ids)
		if err != nil {
			return Status(NewFailureResponse(GetRequestID(c), err.Error()), ErrorStatus(err))
		}
		return OK(DeleteEdgesResponse{
			Message: fmt.Sprintf("%d edges deleted.", removed),
			Removed: removed,
		})
	}
}
