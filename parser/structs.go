package parser

import (
	. "github.com/breezechen/abstreet/util"
)

//*******************************************
// parser structs
//*******************************************

// TempNode tracks how many ways use an OSM node; nodes used more than once
// become intersections.
type TempNode struct {
	Lon   float64
	Lat   float64
	Count int32
}

// OSMCoord is a raw lon/lat pair before projection.
type OSMCoord struct {
	Lon float64
	Lat float64
}

type OSMWaySegment struct {
	NodeA  int
	NodeB  int
	Attr   WayAttribs
	Points List[OSMCoord]
}

// WayAttribs is what the decoder extracts from a way's tags.
type WayAttribs struct {
	Width  float64
	Oneway bool
	Minor  bool
}
