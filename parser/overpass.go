package parser

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/serjvanilla/go-overpass"
	"github.com/ttpr0/go-multiroute/geo"
	"github.com/ttpr0/go-multiroute/graph"
	. "github.com/ttpr0/go-multiroute/util"
	"golang.org/x/exp/slog"
)

//*******************************************
// overpass provider
//*******************************************

const DEFAULT_OVERPASS_URL = "https://overpass-api.de/api/interpreter"

type OverpassClient struct {
	client  overpass.Client
	timeout time.Duration
}

func NewOverpassClient(endpoint string, timeout time.Duration) *OverpassClient {
	if endpoint == "" {
		endpoint = DEFAULT_OVERPASS_URL
	}
	http_client := &http.Client{
		Timeout: timeout,
	}
	return &OverpassClient{
		client:  overpass.NewWithSettings(endpoint, 2, http_client),
		timeout: timeout,
	}
}

// Downloads the drivable network inside the named area, e.g. "Lausanne".
func (self *OverpassClient) FetchPlace(place string, decoder IOSMDecoder) (*graph.Graph, error) {
	if strings.TrimSpace(place) == "" {
		return nil, fmt.Errorf("empty place name")
	}
	query := _PlaceQuery(place, int(self.timeout.Seconds()))
	slog.Info("querying overpass", "place", place)
	result, err := self.client.Query(query)
	if err != nil {
		return nil, fmt.Errorf("overpass query failed: %w", err)
	}
	return _ConvertOverpassResult(&result, decoder), nil
}

func _PlaceQuery(place string, timeout int) string {
	if timeout <= 0 {
		timeout = 180
	}
	name := strings.ReplaceAll(place, `"`, `\"`)
	return fmt.Sprintf(`
		[out:json][timeout:%d];
		area["name"="%s"]["boundary"="administrative"]->.searchArea;
		(
			way["highway"](area.searchArea);
		);
		out body;
		>;
		out skel qt;
	`, timeout, name)
}

func _ConvertOverpassResult(result *overpass.Result, decoder IOSMDecoder) *graph.Graph {
	way_ids := make([]int64, 0, len(result.Ways))
	for id := range result.Ways {
		way_ids = append(way_ids, id)
	}
	sort.Slice(way_ids, func(i, j int) bool { return way_ids[i] < way_ids[j] })

	osm_nodes := NewDict[int64, TempNode](len(result.Nodes))
	ways := NewList[OSMWay](len(way_ids))
	for _, id := range way_ids {
		w := result.Ways[id]
		tags := Dict[string, string](w.Tags)
		if !decoder.IsValidHighway(tags) || len(w.Nodes) < 2 {
			continue
		}
		way := OSMWay{
			ID:    w.ID,
			Nodes: NewList[int64](len(w.Nodes)),
			Tags:  tags,
		}
		for _, n := range w.Nodes {
			if n == nil {
				continue
			}
			way.Nodes.Add(n.ID)
			on := osm_nodes[n.ID]
			on.Point = geo.Coord{n.Lon, n.Lat}
			on.Found = true
			osm_nodes[n.ID] = on
		}
		_CountWayNodes(way, osm_nodes)
		ways.Add(way)
	}
	return _BuildOSMGraph(ways, osm_nodes, decoder)
}
