package graph

//*******************************************
// enums
//*******************************************

type Direction byte

const (
	BACKWARD Direction = 0
	FORWARD  Direction = 1
)

type Adjacency byte

const (
	// every edge including parallel duplicates
	ADJACENT_ALL Adjacency = 0
	// only the first edge inserted per (u, v)
	ADJACENT_PRIMARY Adjacency = 1
)
