package graph

import (
	"math"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/quadtree"
	"github.com/ttpr0/go-multiroute/geo"
	. "github.com/ttpr0/go-multiroute/util"
)

// *******************************************
// graph index interface
// *******************************************

type IGraphIndex interface {
	// Returns the node closest to point; false if the graph has no nodes.
	GetClosestNode(point geo.Coord) (int32, bool)
	// Returns at most k nodes within radius meters of point, closest first.
	GetNodesWithin(point geo.Coord, radius float64, k int) []Candidate
}

//*******************************************
// spatial index
//*******************************************

// mercator is undefined at the poles
const _MAX_MERCATOR_LAT = 85.05112878

type _IndexPoint struct {
	node int32
	p    orb.Point
}

func (self _IndexPoint) Point() orb.Point {
	return self.p
}

// Nearest node lookups in web mercator meters.
//
// Distances are converted to ground meters with the scale factor at the
// query latitude, so results are comparable across latitudes.
type SpatialIndex struct {
	tree  *quadtree.Quadtree
	count int
}

func NewSpatialIndex(nodes Array[Node]) *SpatialIndex {
	points := NewList[_IndexPoint](len(nodes))
	bound := orb.Bound{}
	for i, node := range nodes {
		p := _Project(node.Loc)
		if i == 0 {
			bound = p.Bound()
		} else {
			bound = bound.Extend(p)
		}
		points.Add(_IndexPoint{node: int32(i), p: p})
	}
	tree := quadtree.New(bound.Pad(1))
	for _, point := range points {
		// cannot fail, the bound covers all points
		tree.Add(point)
	}
	return &SpatialIndex{
		tree:  tree,
		count: len(points),
	}
}

func (self *SpatialIndex) GetClosestNode(point geo.Coord) (int32, bool) {
	if self.count == 0 {
		return -1, false
	}
	found := self.tree.Find(_Project(point))
	if found == nil {
		return -1, false
	}
	return found.(_IndexPoint).node, true
}

func (self *SpatialIndex) GetNodesWithin(point geo.Coord, radius float64, k int) []Candidate {
	if self.count == 0 || k <= 0 || radius < 0 {
		return []Candidate{}
	}
	center := _Project(point)
	scale := geo.MercatorScale(_ClampLat(point.Lat()))
	merc_radius := radius / scale
	search := orb.Bound{
		Min: orb.Point{center[0] - merc_radius, center[1] - merc_radius},
		Max: orb.Point{center[0] + merc_radius, center[1] + merc_radius},
	}
	found := self.tree.InBound(nil, search)

	candidates := NewList[Candidate](len(found))
	for _, f := range found {
		p := f.(_IndexPoint)
		dx := p.p[0] - center[0]
		dy := p.p[1] - center[1]
		dist := math.Sqrt(dx*dx+dy*dy) * scale
		if dist > radius {
			continue
		}
		candidates.Add(Candidate{Node: p.node, Distance: dist})
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Distance == candidates[j].Distance {
			return candidates[i].Node < candidates[j].Node
		}
		return candidates[i].Distance < candidates[j].Distance
	})
	if len(candidates) > k {
		candidates = candidates[:k]
	}
	return candidates
}

func _ClampLat(lat float64) float64 {
	return math.Max(-_MAX_MERCATOR_LAT, math.Min(_MAX_MERCATOR_LAT, lat))
}

func _Project(c geo.Coord) orb.Point {
	return geo.ToMercator(geo.Coord{c.Lon(), _ClampLat(c.Lat())})
}
