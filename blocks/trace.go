package blocks

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"

	"github.com/breezechen/abstreet/graph"
	"github.com/breezechen/abstreet/structs"
	. "github.com/breezechen/abstreet/util"
)

// ErrBoundaryReached is returned when a trace runs into a border
// intersection before closing. This is expected near the edge of the
// covered network, not a defect.
var ErrBoundaryReached = errors.New("hit the map boundary")

//*******************************************
// perimeter tracing
//*******************************************

// Trace walks the road network starting from the nearest side of the given
// lane's road and produces a single block perimeter with no interior roads.
// The walk keeps turning onto the neighbor immediately counter-clockwise
// around each intersection, doubling back only at true dead-ends.
func Trace(g graph.IRoadGraph, start structs.LaneID) (Perimeter, error) {
	roads := NewList[structs.RoadSideID](8)
	start_side := g.NearestSideOfRoad(start)
	current_side := start_side
	current_i := g.GetLane(start).DstI
	for {
		if g.IsBorder(current_i) {
			return Perimeter{}, fmt.Errorf("%w at intersection %v", ErrBoundaryReached, current_i)
		}
		sorted := g.RoadSidesSortedByIncomingAngle(current_i)
		idx := slices.Index([]structs.RoadSideID(sorted), current_side)
		if idx < 0 {
			panic(fmt.Sprintf("road-side %v missing from the ordering at intersection %v", current_side, current_i))
		}
		// Unless this is a dead-end, avoid turning onto the other side of
		// the same road.
		next := wraparound(sorted, idx+1)
		if next == current_side {
			panic("intersection ordering contains a road-side twice")
		}
		if next.Road == current_side.Road {
			next = wraparound(sorted, idx-1)
			if next == current_side {
				panic("intersection ordering contains a road-side twice")
			}
			if next.Road == current_side.Road && sorted.Length() != 2 {
				panic(fmt.Sprintf("intersection %v looks like a dead-end but has %v sides", current_i, sorted.Length()))
			}
		}
		roads.Add(current_side)
		current_side = next
		current_i = g.OtherEndpoint(current_side.Road, current_i)

		if current_side == start_side {
			break
		}
	}
	return Perimeter{
		Roads:     roads,
		Interior:  NewSet[structs.RoadID](4),
		clockwise: true,
	}, nil
}

// TraceAll computes the perimeters of every single block in the network.
// Roads near the map boundary aren't covered: their traces fail with
// ErrBoundaryReached and the seed side is marked seen so it isn't retried.
func TraceAll(g graph.IRoadGraph) List[Perimeter] {
	seen := NewSet[structs.RoadSideID](g.LaneCount())
	perimeters := NewList[Perimeter](g.LaneCount() / 4)
	for lane := 0; lane < g.LaneCount(); lane++ {
		lane_id := structs.LaneID(lane)
		side := g.NearestSideOfRoad(lane_id)
		if seen.Contains(side) {
			continue
		}
		perimeter, err := Trace(g, lane_id)
		if err != nil {
			slog.Debug("failed to trace a block", "lane", lane_id, "error", err)
			seen.Add(side)
			continue
		}
		for _, id := range perimeter.Roads {
			seen.Add(id)
		}
		perimeters.Add(perimeter)
	}
	return perimeters
}

func wraparound(items Array[structs.RoadSideID], index int) structs.RoadSideID {
	l := items.Length()
	return items[((index%l)+l)%l]
}
