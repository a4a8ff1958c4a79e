package blocks

import (
	"errors"

	"golang.org/x/exp/slices"

	"github.com/breezechen/abstreet/structs"
	. "github.com/breezechen/abstreet/util"
)

// ErrInfeasibleColoring is reported when the greedy coloring runs out of
// palette entries. Callers enlarge the palette or fall back to uncolored
// output.
var ErrInfeasibleColoring = errors.New("too few colors for the block adjacency")

//*******************************************
// shared road adjacency index
//*******************************************

// roadIndex maps a road to the indices of every perimeter whose boundary
// contains it. Both partitioning and coloring are built on it.
type roadIndex Dict[structs.RoadID, List[int]]

func buildRoadIndex(input List[Perimeter]) roadIndex {
	index := roadIndex(NewDict[structs.RoadID, List[int]](input.Length() * 4))
	for idx, perimeter := range input {
		for _, id := range perimeter.Roads {
			members := index[id.Road]
			members.Add(idx)
			index[id.Road] = members
		}
	}
	return index
}

//*******************************************
// partitioning
//*******************************************

// Partition treats the perimeters as a graph, adjacent when they share any
// road passing the predicate, and splits it into connected components. Each
// component can be merged independently; every input perimeter lands in
// exactly one component.
func Partition(input List[Perimeter], predicate func(structs.RoadID) bool) List[List[Perimeter]] {
	index := buildRoadIndex(input)

	floodfill := func(start int) []int {
		visited := NewSet[int](16)
		queue := NewList[int](16)
		queue.Add(start)
		for queue.Length() > 0 {
			current := queue.Pop()
			if visited.Contains(current) {
				continue
			}
			visited.Add(current)
			for _, id := range input[current].Roads {
				if predicate(id.Road) {
					queue = append(queue, index[id.Road]...)
				}
			}
		}
		component := make([]int, 0, visited.Length())
		for idx := range visited {
			component = append(component, idx)
		}
		slices.Sort(component)
		return component
	}

	finished := NewSet[int](input.Length())
	components := NewList[[]int](8)
	for start := range input {
		if finished.Contains(start) {
			continue
		}
		component := floodfill(start)
		for _, idx := range component {
			finished.Add(idx)
		}
		components.Add(component)
	}

	// map indices back to perimeters, each taken exactly once
	taken := NewArray[Optional[Perimeter]](input.Length())
	for idx, perimeter := range input {
		taken[idx] = Some(perimeter)
	}
	results := NewList[List[Perimeter]](components.Length())
	for _, component := range components {
		group := NewList[Perimeter](len(component))
		for _, idx := range component {
			if !taken[idx].HasValue() {
				panic("perimeter assigned to two partitions")
			}
			group.Add(taken[idx].Value)
			taken[idx] = None[Perimeter]()
		}
		results.Add(group)
	}
	for _, leftover := range taken {
		if leftover.HasValue() {
			panic("perimeter missing from every partition")
		}
	}
	return results
}

//*******************************************
// coloring
//*******************************************

// Coloring greedily assigns each perimeter one of num_colors such that no
// two perimeters sharing a road get the same color, or returns None when
// the palette is too small. The assignment is order-dependent and doesn't
// backtrack, so None doesn't prove that no valid coloring exists.
func Coloring(input List[Perimeter], num_colors int) Optional[Array[int]] {
	index := buildRoadIndex(input)

	assigned := NewList[int](input.Length())
	for this_idx, perimeter := range input {
		available := NewArray[bool](num_colors)
		for i := range available {
			available[i] = true
		}
		for _, id := range perimeter.Roads {
			for _, other_idx := range index[id.Road] {
				// colors are assigned in order, every lower index is done
				if other_idx < this_idx {
					available[assigned[other_idx]] = false
				}
			}
		}
		color := -1
		for c, open := range available {
			if open {
				color = c
				break
			}
		}
		if color < 0 {
			return None[Array[int]]()
		}
		assigned.Add(color)
	}
	return Some(Array[int](assigned))
}
