package graph

import (
	"github.com/ttpr0/go-multiroute/geo"
)

//*******************************************
// graph structs
//*******************************************

type Node struct {
	// external id, e.g. the osm node id
	ID  int64
	Loc geo.Coord
}

type Edge struct {
	NodeA int32
	NodeB int32
	// parallel edge key as given by the provider
	Key int32
	// first edge inserted between NodeA and NodeB
	Primary bool
}

//*******************************************
// edgeref struct
//*******************************************

type EdgeRef struct {
	EdgeID  int32
	OtherID int32
	_Type   byte
}

func (self EdgeRef) IsPrimary() bool {
	return self._Type == 0
}

func CreateEdgeRef(edge int32, other int32, primary bool) EdgeRef {
	var typ byte = 1
	if primary {
		typ = 0
	}
	return EdgeRef{
		EdgeID:  edge,
		OtherID: other,
		_Type:   typ,
	}
}

//*******************************************
// candidate struct
//*******************************************

// A node close to a query point together with its ground distance in meters.
type Candidate struct {
	Node     int32
	Distance float64
}

// Directed node pair addressing the edges between two nodes.
type NodePair struct {
	From int32
	To   int32
}
