package blocks

import (
	"testing"

	"github.com/breezechen/abstreet/geo"
	"github.com/breezechen/abstreet/graph"
	"github.com/breezechen/abstreet/structs"
	. "github.com/breezechen/abstreet/util"
)

// a square of four two-way roads, 100 meters on a side:
//
//	D(0,100) --r2-- C(100,100)
//	   |               |
//	  r3              r1
//	   |               |
//	A(0,0)   --r0-- B(100,0)
func buildSquare() *graph.RoadGraph {
	nodes := Array[graph.NodeData]{
		{Point: geo.Coord{X: 0, Y: 0}},
		{Point: geo.Coord{X: 100, Y: 0}},
		{Point: geo.Coord{X: 100, Y: 100}},
		{Point: geo.Coord{X: 0, Y: 100}},
	}
	roads := Array[graph.RoadData]{
		{NodeA: 0, NodeB: 1, Center: geo.CoordArray{{X: 0, Y: 0}, {X: 100, Y: 0}}, Width: 4},
		{NodeA: 1, NodeB: 2, Center: geo.CoordArray{{X: 100, Y: 0}, {X: 100, Y: 100}}, Width: 4},
		{NodeA: 2, NodeB: 3, Center: geo.CoordArray{{X: 100, Y: 100}, {X: 0, Y: 100}}, Width: 4},
		{NodeA: 3, NodeB: 0, Center: geo.CoordArray{{X: 0, Y: 100}, {X: 0, Y: 0}}, Width: 4},
	}
	return graph.BuildRoadGraph(nodes, roads, geo.NewProjection(0))
}

// the square plus a stub road r4 poking from B into the interior, ending at
// a dead-end G(50,50)
func buildSquareWithStub(oneway bool) *graph.RoadGraph {
	nodes := Array[graph.NodeData]{
		{Point: geo.Coord{X: 0, Y: 0}},
		{Point: geo.Coord{X: 100, Y: 0}},
		{Point: geo.Coord{X: 100, Y: 100}},
		{Point: geo.Coord{X: 0, Y: 100}},
		{Point: geo.Coord{X: 50, Y: 50}},
	}
	roads := Array[graph.RoadData]{
		{NodeA: 0, NodeB: 1, Center: geo.CoordArray{{X: 0, Y: 0}, {X: 100, Y: 0}}, Width: 4},
		{NodeA: 1, NodeB: 2, Center: geo.CoordArray{{X: 100, Y: 0}, {X: 100, Y: 100}}, Width: 4},
		{NodeA: 2, NodeB: 3, Center: geo.CoordArray{{X: 100, Y: 100}, {X: 0, Y: 100}}, Width: 4},
		{NodeA: 3, NodeB: 0, Center: geo.CoordArray{{X: 0, Y: 100}, {X: 0, Y: 0}}, Width: 4},
		{NodeA: 1, NodeB: 4, Center: geo.CoordArray{{X: 100, Y: 0}, {X: 50, Y: 50}}, Width: 4, Oneway: oneway},
	}
	return graph.BuildRoadGraph(nodes, roads, geo.NewProjection(0))
}

// two squares side by side, sharing the minor road r6:
//
//	F(0,100) --r4-- E(100,100) --r3-- D(200,100)
//	   |               |                 |
//	  r5              r6                r2
//	   |               |                 |
//	A(0,0)   --r0-- B(100,0)   --r1-- C(200,0)
//
// with_border additionally attaches a stub r7 from C to a border node
// G(300,0), so every trace passing C fails.
func buildTwoSquares(with_border bool) *graph.RoadGraph {
	nodes := Array[graph.NodeData]{
		{Point: geo.Coord{X: 0, Y: 0}},
		{Point: geo.Coord{X: 100, Y: 0}},
		{Point: geo.Coord{X: 200, Y: 0}},
		{Point: geo.Coord{X: 200, Y: 100}},
		{Point: geo.Coord{X: 100, Y: 100}},
		{Point: geo.Coord{X: 0, Y: 100}},
	}
	roads := Array[graph.RoadData]{
		{NodeA: 0, NodeB: 1, Center: geo.CoordArray{{X: 0, Y: 0}, {X: 100, Y: 0}}, Width: 4},
		{NodeA: 1, NodeB: 2, Center: geo.CoordArray{{X: 100, Y: 0}, {X: 200, Y: 0}}, Width: 4},
		{NodeA: 2, NodeB: 3, Center: geo.CoordArray{{X: 200, Y: 0}, {X: 200, Y: 100}}, Width: 4},
		{NodeA: 3, NodeB: 4, Center: geo.CoordArray{{X: 200, Y: 100}, {X: 100, Y: 100}}, Width: 4},
		{NodeA: 4, NodeB: 5, Center: geo.CoordArray{{X: 100, Y: 100}, {X: 0, Y: 100}}, Width: 4},
		{NodeA: 5, NodeB: 0, Center: geo.CoordArray{{X: 0, Y: 100}, {X: 0, Y: 0}}, Width: 4},
		{NodeA: 1, NodeB: 4, Center: geo.CoordArray{{X: 100, Y: 0}, {X: 100, Y: 100}}, Width: 4, Minor: true},
	}
	if with_border {
		nodes = append(nodes, graph.NodeData{Point: geo.Coord{X: 300, Y: 0}, Border: true})
		roads = append(roads, graph.RoadData{
			NodeA: 2, NodeB: 6, Center: geo.CoordArray{{X: 200, Y: 0}, {X: 300, Y: 0}}, Width: 4,
		})
	}
	return graph.BuildRoadGraph(nodes, roads, geo.NewProjection(0))
}

func left(road structs.RoadID) structs.RoadSideID {
	return structs.RoadSideID{Road: road, Side: structs.LEFT}
}
func right(road structs.RoadID) structs.RoadSideID {
	return structs.RoadSideID{Road: road, Side: structs.RIGHT}
}

// makePerimeter builds a perimeter directly from road-sides, the way the
// tracer would.
func makePerimeter(sides ...structs.RoadSideID) Perimeter {
	roads := NewList[structs.RoadSideID](len(sides))
	for _, side := range sides {
		roads.Add(side)
	}
	return Perimeter{
		Roads:     roads,
		Interior:  NewSet[structs.RoadID](4),
		clockwise: true,
	}
}

func checkLoop(t *testing.T, perimeter Perimeter, want []structs.RoadSideID) {
	t.Helper()
	if perimeter.Roads.Length() != len(want) {
		t.Fatalf("perimeter.Roads = %v; want %v", perimeter.Roads, want)
	}
	for i, side := range want {
		if perimeter.Roads.Get(i) != side {
			t.Errorf("perimeter.Roads[%v] = %v; want %v", i, perimeter.Roads.Get(i), side)
		}
	}
}
