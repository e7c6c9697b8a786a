package parser

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/ttpr0/go-multiroute/geo"
	"github.com/ttpr0/go-multiroute/graph"
	. "github.com/ttpr0/go-multiroute/util"
	"golang.org/x/exp/slog"
)

//*******************************************
// osm pbf provider
//*******************************************

// Builds a routable graph from the highways of an osm pbf extract.
func ParsePBF(ctx context.Context, pbf_file string, decoder IOSMDecoder) (*graph.Graph, error) {
	file, err := os.Open(pbf_file)
	if err != nil {
		return nil, fmt.Errorf("failed to open pbf file: %w", err)
	}
	defer file.Close()

	osm_nodes := NewDict[int64, TempNode](10000)
	ways := NewList[OSMWay](10000)

	scanner := osmpbf.New(ctx, file, runtime.GOMAXPROCS(-1))
	err = _WayHandler(scanner, decoder, &ways, osm_nodes)
	scanner.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to scan ways: %w", err)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	scanner = osmpbf.New(ctx, file, runtime.GOMAXPROCS(-1))
	err = _NodeHandler(scanner, osm_nodes)
	scanner.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to scan nodes: %w", err)
	}

	slog.Info("parsed pbf", "ways", ways.Length(), "nodes", len(osm_nodes))
	g := _BuildOSMGraph(ways, osm_nodes, decoder)
	return g, nil
}

//*******************************************
// osm handler methods
//*******************************************

func _WayHandler(scanner *osmpbf.Scanner, decoder IOSMDecoder, ways *List[OSMWay], osm_nodes Dict[int64, TempNode]) error {
	scanner.SkipNodes = true
	scanner.SkipRelations = true
	for scanner.Scan() {
		switch object := scanner.Object().(type) {
		case *osm.Way:
			tags := Dict[string, string](object.TagMap())
			if !decoder.IsValidHighway(tags) {
				continue
			}
			node_ids := object.Nodes.NodeIDs()
			if len(node_ids) < 2 {
				continue
			}
			way := OSMWay{
				ID:    int64(object.ID),
				Nodes: NewList[int64](len(node_ids)),
				Tags:  tags,
			}
			for _, id := range node_ids {
				way.Nodes.Add(int64(id))
			}
			_CountWayNodes(way, osm_nodes)
			ways.Add(way)
		default:
			continue
		}
	}
	return scanner.Err()
}

func _NodeHandler(scanner *osmpbf.Scanner, osm_nodes Dict[int64, TempNode]) error {
	c := 0
	scanner.SkipWays = true
	scanner.SkipRelations = true
	for scanner.Scan() {
		switch object := scanner.Object().(type) {
		case *osm.Node:
			id := int64(object.ID)
			on, ok := osm_nodes[id]
			if !ok {
				continue
			}
			c += 1
			if c%100000 == 0 {
				slog.Debug("scanning nodes", "count", c)
			}
			on.Point = geo.Coord{object.Lon, object.Lat}
			on.Found = true
			osm_nodes[id] = on
		default:
			continue
		}
	}
	return scanner.Err()
}
