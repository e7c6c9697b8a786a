package parser

import (
	"github.com/ttpr0/go-multiroute/geo"
	. "github.com/ttpr0/go-multiroute/util"
)

//*******************************************
// parser structs
//*******************************************

type TempNode struct {
	Point geo.Coord
	// number of way references; ends of ways count twice
	Count int32
	Found bool
}

type OSMWay struct {
	ID    int64
	Nodes List[int64]
	Tags  Dict[string, string]
}
