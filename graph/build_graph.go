package graph

import (
	"math"

	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"

	"github.com/breezechen/abstreet/geo"
	"github.com/breezechen/abstreet/structs"
	. "github.com/breezechen/abstreet/util"
)

//*******************************************
// raw network data
//*******************************************

// NodeData and RoadData are the raw network produced by the parser (or built
// by hand in tests), already projected to planar meters.
type NodeData struct {
	Point  geo.Coord
	Border bool
}

type RoadData struct {
	NodeA  int32
	NodeB  int32
	Center geo.CoordArray
	Width  float64
	Oneway bool
	Minor  bool
}

//*******************************************
// build road-graph
//*******************************************

// BuildRoadGraph derives the full queryable road network: per-intersection
// rings sized to the widest incident road, centerlines trimmed back to those
// rings, lanes, and the counter-clockwise ordering of incident road-sides.
func BuildRoadGraph(nodes Array[NodeData], road_data Array[RoadData], projection geo.Projection) *RoadGraph {
	intersections := NewArray[structs.Intersection](nodes.Length())
	for i, node := range nodes {
		intersections[i] = structs.Intersection{
			ID:     structs.IntersectionID(i),
			Point:  node.Point,
			Roads:  NewList[structs.RoadID](3),
			Border: node.Border,
		}
	}

	roads := NewArray[structs.Road](road_data.Length())
	for i, data := range road_data {
		roads[i] = structs.Road{
			ID:     structs.RoadID(i),
			SrcI:   structs.IntersectionID(data.NodeA),
			DstI:   structs.IntersectionID(data.NodeB),
			Center: data.Center.Copy(),
			Width:  data.Width,
			Oneway: data.Oneway,
			Minor:  data.Minor,
			Lanes:  NewList[structs.LaneID](2),
		}
		intersections[data.NodeA].Roads.Add(structs.RoadID(i))
		intersections[data.NodeB].Roads.Add(structs.RoadID(i))
	}

	// the intersection radius follows the widest incident road
	radii := NewArray[float64](intersections.Length())
	for i := range intersections {
		radius := 1.0
		for _, road_id := range intersections[i].Roads {
			half := roads[road_id].Width / 2.0
			if half+1.0 > radius {
				radius = half + 1.0
			}
		}
		radii[i] = radius
	}

	// pull the centerlines back to the intersection rings
	for i := range roads {
		roads[i].Center = roads[i].Center.TrimEnds(radii[roads[i].SrcI], radii[roads[i].DstI])
	}

	// one lane per direction, just a forward lane on oneways
	lanes := NewList[structs.Lane](roads.Length() * 2)
	for i := range roads {
		forward := structs.Lane{
			ID:   structs.LaneID(lanes.Length()),
			Road: roads[i].ID,
			Dir:  structs.FORWARD,
			SrcI: roads[i].SrcI,
			DstI: roads[i].DstI,
		}
		lanes.Add(forward)
		roads[i].Lanes.Add(forward.ID)
		if !roads[i].Oneway {
			backward := structs.Lane{
				ID:   structs.LaneID(lanes.Length()),
				Road: roads[i].ID,
				Dir:  structs.BACKWARD,
				SrcI: roads[i].DstI,
				DstI: roads[i].SrcI,
			}
			lanes.Add(backward)
			roads[i].Lanes.Add(backward.ID)
		}
	}

	graph := &RoadGraph{
		roads:         roads,
		lanes:         Array[structs.Lane](lanes),
		intersections: intersections,
		projection:    projection,
	}
	for i := range intersections {
		intersections[i].SortedSides = sortSidesByIncomingAngle(graph, &intersections[i])
		intersections[i].Ring = buildIntersectionRing(graph, &intersections[i], radii[i])
	}
	slog.Debug("built road graph",
		"roads", roads.Length(), "lanes", lanes.Length(), "intersections", intersections.Length())
	return graph
}

// buildIntersectionRing approximates the paved area of an intersection. The
// ring connects the near endpoints of every incident shifted centerline in
// angular order, so the boundary between two adjacent road edges is a single
// short hop that block polygons can splice in. Dead-ends get a circular cap
// instead; tracing the longer way around it wraps the stub.
func buildIntersectionRing(graph *RoadGraph, inter *structs.Intersection, radius float64) geo.Ring {
	if inter.Roads.Length() <= 1 {
		return geo.MakeCircle(inter.Point, radius, 32)
	}
	center := inter.Point
	entries := NewList[Tuple[geo.Coord, float64]](inter.Roads.Length() * 2)
	for _, road_id := range inter.Roads {
		at_src := graph.GetRoad(road_id).SrcI == inter.ID
		for _, side := range []structs.SideOfRoad{structs.LEFT, structs.RIGHT} {
			line := graph.ShiftedCenterline(road_id, side)
			corner := line.Last()
			if at_src {
				corner = line.First()
			}
			entries.Add(MakeTuple(corner, corner.Sub(center).Angle()))
		}
	}
	slices.SortFunc([]Tuple[geo.Coord, float64](entries), func(a, b Tuple[geo.Coord, float64]) int {
		if a.B < b.B {
			return -1
		} else if a.B > b.B {
			return 1
		}
		return 0
	})
	corners := make(geo.CoordArray, 0, entries.Length()+1)
	for _, entry := range entries {
		corners = append(corners, entry.A)
	}
	corners = append(corners, corners[0])
	return geo.Ring(corners)
}

type sideAngle struct {
	side    structs.RoadSideID
	angle   float64
	lateral float64
}

// sortSidesByIncomingAngle orders the road-sides around an intersection
// counter-clockwise by the direction they arrive from. The two sides of one
// road arrive parallel, so their lateral offset breaks the tie: the side
// lying to the left of the incoming direction sorts first. That placement
// makes the tracer's wraparound step turn into dead-end stubs instead of
// skipping them.
func sortSidesByIncomingAngle(graph *RoadGraph, inter *structs.Intersection) Array[structs.RoadSideID] {
	entries := NewList[sideAngle](inter.Roads.Length() * 2)
	for _, road_id := range inter.Roads {
		road := graph.GetRoad(road_id)
		at_src := road.SrcI == inter.ID
		center := road.Center
		var incoming geo.Coord
		if at_src {
			incoming = center.First().Sub(center[1]).Normalized()
		} else {
			incoming = center.Last().Sub(center[len(center)-2]).Normalized()
		}
		for _, side := range []structs.SideOfRoad{structs.LEFT, structs.RIGHT} {
			line := graph.ShiftedCenterline(road_id, side)
			endpoint := line.Last()
			if at_src {
				endpoint = line.First()
			}
			entries.Add(sideAngle{
				side:    structs.RoadSideID{Road: road_id, Side: side},
				angle:   incoming.Angle(),
				lateral: incoming.Left().Dot(endpoint.Sub(inter.Point)),
			})
		}
	}
	slices.SortFunc([]sideAngle(entries), func(a, b sideAngle) int {
		if math.Abs(a.angle-b.angle) > 1e-9 {
			if a.angle < b.angle {
				return -1
			}
			return 1
		}
		if a.lateral > b.lateral {
			return -1
		} else if a.lateral < b.lateral {
			return 1
		}
		return 0
	})
	sorted := NewArray[structs.RoadSideID](entries.Length())
	for i, entry := range entries {
		sorted[i] = entry.side
	}
	return sorted
}
