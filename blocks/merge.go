package blocks

import (
	"golang.org/x/exp/slog"

	"github.com/breezechen/abstreet/structs"
	. "github.com/breezechen/abstreet/util"
)

//*******************************************
// merging perimeters
//*******************************************

// TryMerge fuses another perimeter into this one. It succeeds only when the
// two loops are adjacent and the merge wouldn't leave an interior hole. On
// success the other perimeter is consumed; on failure both perimeters stay
// logically unchanged (the road loops may have been cyclically rotated,
// which doesn't alter them).
func (self *Perimeter) TryMerge(other *Perimeter, debug_failures bool) bool {
	if self.clockwise != other.clockwise {
		slog.Error("refusing to merge perimeters with opposite winding")
		return false
	}

	common := self.RoadSet().Intersection(other.RoadSet())
	if common.Length() == 0 {
		if debug_failures {
			slog.Debug("merge failed: no common roads")
		}
		return false
	}

	// Rotate both loops so the shared roads sit at the tail of each
	// sequence. No rotation is needed when one loop is entirely surrounded
	// by the other.
	if !self.rotateCommonToTail(common) || !other.rotateCommonToTail(common) {
		return false
	}

	if debug_failures {
		slog.Debug("merge candidate", "common", common)
		self.debug()
		other.debug()
	}

	// The shared roads must be contiguous at the tail of both loops. If
	// non-shared roads interrupt them, merging would create a hole.
	if !self.commonContiguousAtTail(common) {
		if debug_failures {
			slog.Debug("merge failed: the common roads on the first aren't consecutive")
		}
		return false
	}
	if !other.commonContiguousAtTail(common) {
		if debug_failures {
			slog.Debug("merge failed: the common roads on the second aren't consecutive")
		}
		return false
	}

	// snip the shared tail from both, then concatenate
	for k := 0; k < common.Length(); k++ {
		self.Roads.Pop()
		other.Roads.Pop()
	}
	self.Roads = append(self.Roads, other.Roads...)

	self.Interior.Extend(common)
	self.Interior.Extend(other.Interior)
	other.Roads = nil
	other.Interior = nil

	// merging can create new internal dead-ends
	self.CollapseDeadends()
	return true
}

func (self *Perimeter) rotateCommonToTail(common Set[structs.RoadID]) bool {
	if self.Roads.Length() == common.Length() {
		return true
	}
	rotations := 0
	for common.Contains(self.Roads.Get(0).Road) || !common.Contains(self.Roads.Last().Road) {
		if rotations > self.Roads.Length() {
			slog.Error("no rotation places the common roads at the loop tail", "roads", self.Roads)
			return false
		}
		self.Roads.RotateLeft(1)
		rotations++
	}
	return true
}

func (self *Perimeter) commonContiguousAtTail(common Set[structs.RoadID]) bool {
	for k := 0; k < common.Length(); k++ {
		if !common.Contains(self.Roads.Get(self.Roads.Length() - 1 - k).Road) {
			return false
		}
	}
	return true
}

//*******************************************
// merge all
//*******************************************

// MergeAll fuses as many of the given perimeters as possible. Perimeters
// are never destroyed: every input is accounted for in the results, either
// fused into a neighbor or unchanged. With stepwise_debug the function
// returns after the first successful merge of a pass, for diagnosis.
func MergeAll(input List[Perimeter], stepwise_debug bool) List[Perimeter] {
	// Internal dead-ends break the adjacency test, collapse them first.
	for i := range input {
		input[i].CollapseDeadends()
	}

	for {
		debug := false
		results := NewList[Perimeter](input.Length())
		num_input := input.Length()
	INPUT:
		for _, perimeter := range input {
			if debug {
				results.Add(perimeter)
				continue
			}
			for j := range results {
				if results[j].TryMerge(&perimeter, stepwise_debug) {
					// to debug, stop after any single change
					debug = stepwise_debug
					continue INPUT
				}
			}
			// no match
			results.Add(perimeter)
		}

		// keep passing over the list until nothing fuses anymore
		if results.Length() > 1 && results.Length() < num_input && !stepwise_debug {
			input = results
			continue
		}
		return results
	}
}
