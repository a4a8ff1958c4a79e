package structs

import (
	"fmt"

	"github.com/breezechen/abstreet/geo"
	. "github.com/breezechen/abstreet/util"
)

//*******************************************
// identifiers
//*******************************************

type RoadID int32
type IntersectionID int32
type LaneID int32

// RoadSideID names one lateral face of a road, the atomic unit a block
// perimeter is traced from.
type RoadSideID struct {
	Road RoadID
	Side SideOfRoad
}

func (self RoadSideID) String() string {
	return fmt.Sprintf("%v of road %v", self.Side, self.Road)
}

//*******************************************
// road-network items
//*******************************************

type Road struct {
	ID   RoadID
	SrcI IntersectionID
	DstI IntersectionID
	// Center is the centerline trimmed back to the intersection rings.
	Center geo.CoordArray
	Width  float64
	Oneway bool
	// Minor roads (residential, service, ...) are the default merge
	// predicate when fusing blocks into neighborhoods.
	Minor bool
	Lanes List[LaneID]
}

func (self *Road) HalfWidth() float64 {
	return self.Width / 2.0
}
func (self *Road) OtherEndpoint(known IntersectionID) IntersectionID {
	if known == self.SrcI {
		return self.DstI
	}
	return self.SrcI
}

type Lane struct {
	ID   LaneID
	Road RoadID
	Dir  Direction
	// SrcI/DstI follow the direction of travel, not the canonical road
	// direction.
	SrcI IntersectionID
	DstI IntersectionID
}

// CommonEndpoint returns the single intersection both lanes touch. Lanes of
// two parallel roads touch at both endpoints; that case (and no shared
// endpoint at all) yields None.
func (self Lane) CommonEndpoint(other Lane) Optional[IntersectionID] {
	ends := NewSet[IntersectionID](2)
	ends.Add(other.SrcI)
	ends.Add(other.DstI)
	shared := NewList[IntersectionID](2)
	if ends.Contains(self.SrcI) {
		shared.Add(self.SrcI)
	}
	if ends.Contains(self.DstI) && self.DstI != self.SrcI {
		shared.Add(self.DstI)
	}
	if shared.Length() == 1 {
		return Some(shared.Get(0))
	}
	return None[IntersectionID]()
}

type Intersection struct {
	ID     IntersectionID
	Point  geo.Coord
	Roads  List[RoadID]
	Border bool
	// Ring approximates the paved area of the intersection; block polygons
	// splice arcs of it between adjacent road segments.
	Ring geo.Ring
	// SortedSides holds the incident road-sides ordered counter-clockwise by
	// incoming angle.
	SortedSides Array[RoadSideID]
}

func (self *Intersection) IsDeadend() bool {
	return self.Roads.Length() == 1
}
