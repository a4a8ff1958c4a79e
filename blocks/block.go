package blocks

import (
	"fmt"

	"github.com/breezechen/abstreet/geo"
	"github.com/breezechen/abstreet/graph"
	"github.com/breezechen/abstreet/structs"
	. "github.com/breezechen/abstreet/util"
)

//*******************************************
// block
//*******************************************

// A Block is a finalized perimeter plus the simple polygon covering its
// interior. It is built once from a perimeter that won't change anymore.
type Block struct {
	Perimeter Perimeter
	Polygon   geo.Ring
}

// MalformedLoopError means an earlier stage produced an invalid perimeter.
// It is fatal to that single block conversion, not recoverable by retry.
type MalformedLoopError struct {
	Reason string
	Loop   []structs.RoadSideID
}

func (self *MalformedLoopError) Error() string {
	return fmt.Sprintf("malformed loop: %v: %v", self.Reason, self.Loop)
}

//*******************************************
// polygon assembly
//*******************************************

// ToBlock traces the perimeter geometrically and assembles the block
// polygon from the shifted road centerlines, splicing in arcs of the
// intersection rings between consecutive segments.
func ToBlock(g graph.IRoadGraph, perimeter Perimeter) (Block, error) {
	loop := perimeter.ClosedLoop()
	if len(loop) < 3 {
		return Block{}, &MalformedLoopError{Reason: "loop too short", Loop: loop}
	}

	points := make(geo.CoordArray, 0, 64)
	first_i := None[structs.IntersectionID]()
	for k := 0; k+1 < len(loop); k++ {
		side1 := loop[k]
		side2 := loop[k+1]
		lane1 := g.OuterLane(side1)
		lane2 := g.OuterLane(side2)
		if lane1.ID == lane2.ID {
			return Block{}, &MalformedLoopError{
				Reason: fmt.Sprintf("duplicate adjacent roads at lane %v", lane1.ID),
				Loop:   loop,
			}
		}
		pl := g.ShiftedCenterline(side1.Road, side1.Side)
		if lane1.Dir == structs.BACKWARD {
			pl = pl.Reversed()
		}

		keep_lane_orientation := true
		if side1.Road == side2.Road {
			// doubling back at a dead-end, always follow the lane
		} else if endpoint := lane1.CommonEndpoint(lane2); endpoint.HasValue() {
			keep_lane_orientation = endpoint.Value == lane1.DstI
		} else if len(points) > 0 {
			// Two different roads link the same two intersections. The only
			// way to order the points is to see which end is closer to
			// where we stopped.
			last := points.Last()
			keep_lane_orientation = last.DistanceTo(pl.First()) < last.DistanceTo(pl.Last())
		}
		if !keep_lane_orientation {
			pl = pl.Reversed()
		}

		prev_i := lane1.SrcI
		if !keep_lane_orientation {
			prev_i = lane1.DstI
		}
		if !first_i.HasValue() {
			first_i = Some(prev_i)
		}
		if len(points) > 0 {
			// Trace along the intersection boundary before adding this
			// road's points. At dead-ends take the longer way around so the
			// polygon doesn't cut across the stub.
			ring := g.IntersectionRing(prev_i)
			arc := ring.ArcBetween(points.Last(), pl.First(), g.IsDeadend(prev_i))
			points = append(points, arc...)
		}
		points = append(points, pl...)
	}

	// the closing arc at the very first intersection, unknowable on the
	// first pass
	ring := g.IntersectionRing(first_i.Value)
	arc := ring.ArcBetween(points.Last(), points.First(), g.IsDeadend(first_i.Value))
	points = append(points, arc...)
	points = append(points, points.First())

	points = dedupePoints(points)
	polygon, err := geo.NewRing(points)
	if err != nil {
		return Block{}, &MalformedLoopError{Reason: err.Error(), Loop: loop}
	}
	return Block{Perimeter: perimeter, Polygon: polygon}, nil
}

// dedupePoints drops consecutive near-identical points and restores exact
// closure afterwards.
func dedupePoints(points geo.CoordArray) geo.CoordArray {
	result := make(geo.CoordArray, 0, len(points))
	for _, point := range points {
		if len(result) > 0 && result.Last().ApproxEquals(point, 0.01) {
			continue
		}
		result = append(result, point)
	}
	if len(result) >= 2 && result.Last().ApproxEquals(result.First(), 0.01) {
		result[len(result)-1] = result.First()
	} else {
		result = append(result, result.First())
	}
	return result
}
