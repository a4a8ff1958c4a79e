package blocks

import (
	"golang.org/x/exp/slog"

	"github.com/breezechen/abstreet/structs"
	. "github.com/breezechen/abstreet/util"
)

//*******************************************
// perimeter
//*******************************************

// A Perimeter is a closed loop of road-sides bounding a candidate block.
// In the simple case it surrounds a single city block with no interior
// roads; after merging it may cover a neighborhood whose minor roads have
// moved into the interior set.
//
// The loop is stored as a logically-circular sequence without a duplicated
// closing element; ClosedLoop materializes the first=last form for
// consumers.
type Perimeter struct {
	Roads List[structs.RoadSideID]
	// Interior roads lie entirely within the perimeter without being part
	// of the boundary.
	Interior Set[structs.RoadID]
	// Every perimeter produced by the tracer shares one winding convention.
	// Merging two loops checks the tags instead of silently assuming it.
	clockwise bool
}

// ClosedLoop returns the boundary with the first road-side repeated at the
// end.
func (self *Perimeter) ClosedLoop() []structs.RoadSideID {
	loop := make([]structs.RoadSideID, 0, self.Roads.Length()+1)
	loop = append(loop, self.Roads...)
	if len(loop) > 0 {
		loop = append(loop, loop[0])
	}
	return loop
}

// RoadSet returns the distinct roads of the boundary.
func (self *Perimeter) RoadSet() Set[structs.RoadID] {
	roads := NewSet[structs.RoadID](self.Roads.Length())
	for _, id := range self.Roads {
		roads.Add(id.Road)
	}
	return roads
}

//*******************************************
// dead-end collapsing
//*******************************************

// CollapseDeadends folds back-and-forth dead-end excursions into the
// interior set. A perimeter passing along a dead-end road and immediately
// back contains two adjacent entries for the same road; those are removed
// and the road becomes interior.
func (self *Perimeter) CollapseDeadends() {
	if self.Roads.Length() <= 2 {
		// a loop around a lone stub road has nothing to fold the stub into
		return
	}

	// if a dead-end straddles the loop seam, rotate until it doesn't
	rotations := 0
	for self.Roads.Get(0).Road == self.Roads.Last().Road {
		if rotations > self.Roads.Length() {
			slog.Error("dead-end collapse: loop is a single road chain", "roads", self.Roads)
			return
		}
		self.Roads.RotateLeft(1)
		rotations++
	}

	roads := NewList[structs.RoadSideID](self.Roads.Length())
	for _, id := range self.Roads {
		if roads.Length() > 0 && roads.Last().Road == id.Road {
			roads.Pop()
			self.Interior.Add(id.Road)
		} else {
			roads.Add(id)
		}
	}
	self.Roads = roads

	// A chain of dead-end segments folds up through the stack scan above,
	// but it can leave a fresh duplicate across the seam. Report it rather
	// than rescanning forever.
	if self.Roads.Length() >= 2 && self.Roads.Get(0).Road == self.Roads.Last().Road {
		slog.Warn("dead-end collapse left a duplicate road across the loop seam", "roads", self.Roads)
	}
}

func (self *Perimeter) debug() {
	for _, id := range self.Roads {
		slog.Debug("perimeter entry", "side", id.Side, "road", id.Road)
	}
}
