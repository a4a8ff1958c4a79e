package geo

import (
	"errors"
	"fmt"
	"math"
)

//*******************************************
// closed rings
//*******************************************

// Ring is a closed point sequence (first point equals last point) tracing a
// simple polygon boundary.
type Ring CoordArray

// NewRing validates the point sequence and returns it as a Ring. The sequence
// must be closed, contain at least 3 distinct points and must not properly
// self-intersect.
func NewRing(points CoordArray) (Ring, error) {
	if len(points) < 4 {
		return nil, errors.New("ring needs at least 3 distinct points")
	}
	if !points.First().ApproxEquals(points.Last(), 1e-9) {
		return nil, errors.New("ring isn't closed")
	}
	if math.Abs(Ring(points).SignedArea()) < 1e-9 {
		return nil, errors.New("ring has no area")
	}
	n := len(points) - 1
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				// adjacent across the closing point
				continue
			}
			if segmentsCross(points[i], points[i+1], points[j], points[j+1]) {
				return nil, fmt.Errorf("ring self-intersects between segments %v and %v", i, j)
			}
		}
	}
	return Ring(points), nil
}

// segmentsCross reports whether the two segments properly cross. Touching
// endpoints or collinear overlaps don't count.
func segmentsCross(a1, a2, b1, b2 Coord) bool {
	d1 := a2.Sub(a1).Cross(b1.Sub(a1))
	d2 := a2.Sub(a1).Cross(b2.Sub(a1))
	d3 := b2.Sub(b1).Cross(a1.Sub(b1))
	d4 := b2.Sub(b1).Cross(a2.Sub(b1))
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

// SignedArea is positive for counter-clockwise rings.
func (self Ring) SignedArea() float64 {
	area := 0.0
	for i := 0; i < len(self)-1; i++ {
		area += self[i].Cross(self[i+1])
	}
	return area / 2.0
}

func (self Ring) IsClockwise() bool {
	return self.SignedArea() < 0
}

func (self Ring) Points() CoordArray {
	return CoordArray(self)
}

// MakeCircle builds a counter-clockwise circular ring around a center.
func MakeCircle(center Coord, radius float64, segments int) Ring {
	points := make(CoordArray, 0, segments+1)
	for i := 0; i < segments; i++ {
		angle := 2.0 * math.Pi * float64(i) / float64(segments)
		points = append(points, Coord{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		})
	}
	points = append(points, points[0])
	return Ring(points)
}

//*******************************************
// arc slicing
//*******************************************

// closestPosition projects a point onto the ring boundary, returning the edge
// index, the arc-length position along the ring and the projected point.
func (self Ring) closestPosition(point Coord) (int, float64, Coord) {
	best_edge := 0
	best_dist := math.Inf(1)
	best_point := self[0]
	best_s := 0.0

	travelled := 0.0
	for i := 0; i < len(self)-1; i++ {
		segment := self[i+1].Sub(self[i])
		length := segment.Length()
		t := 0.0
		if length > 0 {
			t = point.Sub(self[i]).Dot(segment) / (length * length)
			if t < 0 {
				t = 0
			} else if t > 1 {
				t = 1
			}
		}
		projected := self[i].Add(segment.Scale(t))
		dist := point.DistanceTo(projected)
		if dist < best_dist {
			best_dist = dist
			best_edge = i
			best_point = projected
			best_s = travelled + t*length
		}
		travelled += length
	}
	return best_edge, best_s, best_point
}

// ArcBetween returns the piece of the ring boundary leading from the
// projection of one point to the projection of the other. By default the
// shorter way around is chosen; with prefer_longer the longer way.
func (self Ring) ArcBetween(from, to Coord, prefer_longer bool) CoordArray {
	total := CoordArray(self).TotalLength()
	if total <= 0 {
		return nil
	}
	edge_a, s_a, point_a := self.closestPosition(from)
	edge_b, s_b, point_b := self.closestPosition(to)
	if point_a.ApproxEquals(point_b, 1e-9) {
		return nil
	}

	forward_length := math.Mod(s_b-s_a+total, total)
	use_forward := forward_length <= total-forward_length
	if prefer_longer {
		use_forward = !use_forward
	}

	if use_forward {
		return self.walkForward(edge_a, point_a, edge_b, point_b, s_a, s_b)
	}
	backward := self.walkForward(edge_b, point_b, edge_a, point_a, s_b, s_a)
	return backward.Reversed()
}

func (self Ring) walkForward(edge_a int, point_a Coord, edge_b int, point_b Coord, s_a, s_b float64) CoordArray {
	n := len(self) - 1
	result := make(CoordArray, 0, n)
	result = append(result, point_a)
	if edge_a == edge_b && s_b >= s_a {
		result = append(result, point_b)
		return result
	}
	for idx := edge_a + 1; ; idx++ {
		vertex := idx % n
		result = append(result, self[vertex])
		if vertex == edge_b {
			break
		}
	}
	result = append(result, point_b)
	return result
}
