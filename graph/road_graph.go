package graph

import (
	"github.com/breezechen/abstreet/geo"
	"github.com/breezechen/abstreet/structs"
	. "github.com/breezechen/abstreet/util"
)

//*******************************************
// road-graph interfaces
//*******************************************

// IRoadGraph is the read-only query surface over the road network consumed by
// the block-finding pipeline.
type IRoadGraph interface {
	RoadCount() int
	LaneCount() int
	IntersectionCount() int
	GetRoad(id structs.RoadID) structs.Road
	GetLane(id structs.LaneID) structs.Lane
	GetIntersection(id structs.IntersectionID) structs.Intersection
	// NearestSideOfRoad snaps a lane to the side of its road it runs on.
	NearestSideOfRoad(lane structs.LaneID) structs.RoadSideID
	// RoadSidesSortedByIncomingAngle returns the road-sides incident to an
	// intersection in counter-clockwise order of their incoming angle.
	RoadSidesSortedByIncomingAngle(i structs.IntersectionID) Array[structs.RoadSideID]
	IsBorder(i structs.IntersectionID) bool
	IsDeadend(i structs.IntersectionID) bool
	OtherEndpoint(road structs.RoadID, known structs.IntersectionID) structs.IntersectionID
	// OuterLane returns the outermost lane on the given side of a road.
	OuterLane(side structs.RoadSideID) structs.Lane
	// ShiftedCenterline is the road centerline offset by half the road width
	// to the given side.
	ShiftedCenterline(road structs.RoadID, side structs.SideOfRoad) geo.CoordArray
	IntersectionRing(i structs.IntersectionID) geo.Ring
	Projection() geo.Projection
}

//*******************************************
// road-graph
//*******************************************

type RoadGraph struct {
	roads         Array[structs.Road]
	lanes         Array[structs.Lane]
	intersections Array[structs.Intersection]
	projection    geo.Projection
}

func (self *RoadGraph) RoadCount() int {
	return self.roads.Length()
}
func (self *RoadGraph) LaneCount() int {
	return self.lanes.Length()
}
func (self *RoadGraph) IntersectionCount() int {
	return self.intersections.Length()
}
func (self *RoadGraph) GetRoad(id structs.RoadID) structs.Road {
	return self.roads[id]
}
func (self *RoadGraph) GetLane(id structs.LaneID) structs.Lane {
	return self.lanes[id]
}
func (self *RoadGraph) GetIntersection(id structs.IntersectionID) structs.Intersection {
	return self.intersections[id]
}

// Right-hand traffic: forward lanes run on the right side of the road.
func (self *RoadGraph) NearestSideOfRoad(lane structs.LaneID) structs.RoadSideID {
	l := self.lanes[lane]
	if l.Dir == structs.FORWARD {
		return structs.RoadSideID{Road: l.Road, Side: structs.RIGHT}
	}
	return structs.RoadSideID{Road: l.Road, Side: structs.LEFT}
}

func (self *RoadGraph) RoadSidesSortedByIncomingAngle(i structs.IntersectionID) Array[structs.RoadSideID] {
	return self.intersections[i].SortedSides
}

func (self *RoadGraph) IsBorder(i structs.IntersectionID) bool {
	return self.intersections[i].Border
}
func (self *RoadGraph) IsDeadend(i structs.IntersectionID) bool {
	inter := self.intersections[i]
	return inter.IsDeadend()
}

func (self *RoadGraph) OtherEndpoint(road structs.RoadID, known structs.IntersectionID) structs.IntersectionID {
	r := self.roads[road]
	return r.OtherEndpoint(known)
}

// OuterLane returns the forward lane for the right side and the backward lane
// for the left side. Oneway roads only carry a forward lane, so both sides
// reduce to it.
func (self *RoadGraph) OuterLane(side structs.RoadSideID) structs.Lane {
	road := self.roads[side.Road]
	wanted := structs.FORWARD
	if side.Side == structs.LEFT {
		wanted = structs.BACKWARD
	}
	if road.Lanes.Length() == 0 {
		panic("road without lanes")
	}
	for _, lane_id := range road.Lanes {
		lane := self.lanes[lane_id]
		if lane.Dir == wanted {
			return lane
		}
	}
	return self.lanes[road.Lanes.Get(0)]
}

func (self *RoadGraph) ShiftedCenterline(road structs.RoadID, side structs.SideOfRoad) geo.CoordArray {
	r := self.roads[road]
	if side == structs.LEFT {
		return r.Center.ShiftLeft(r.HalfWidth())
	}
	return r.Center.ShiftRight(r.HalfWidth())
}

func (self *RoadGraph) IntersectionRing(i structs.IntersectionID) geo.Ring {
	return self.intersections[i].Ring
}

func (self *RoadGraph) Projection() geo.Projection {
	return self.projection
}
