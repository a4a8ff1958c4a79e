package geo

import (
	"math"
	"testing"
)

func TestShiftLeftStraight(t *testing.T) {
	line := CoordArray{{0, 0}, {10, 0}}

	shifted := line.ShiftLeft(2)
	if !shifted.First().ApproxEquals(Coord{0, 2}, 1e-9) {
		t.Errorf("shifted.First() = %v; want (0, 2)", shifted.First())
	}
	if !shifted.Last().ApproxEquals(Coord{10, 2}, 1e-9) {
		t.Errorf("shifted.Last() = %v; want (10, 2)", shifted.Last())
	}

	shifted = line.ShiftRight(2)
	if !shifted.First().ApproxEquals(Coord{0, -2}, 1e-9) {
		t.Errorf("shifted.First() = %v; want (0, -2)", shifted.First())
	}
}

func TestShiftLeftCorner(t *testing.T) {
	// right-angle corner, the miter joint must land on the diagonal
	line := CoordArray{{0, 0}, {10, 0}, {10, 10}}

	shifted := line.ShiftLeft(2)
	if len(shifted) != 3 {
		t.Fatalf("len(shifted) = %v; want 3", len(shifted))
	}
	if !shifted[1].ApproxEquals(Coord{8, 2}, 1e-9) {
		t.Errorf("shifted[1] = %v; want (8, 2)", shifted[1])
	}
}

func TestReversed(t *testing.T) {
	line := CoordArray{{0, 0}, {5, 0}, {5, 5}}
	reversed := line.Reversed()
	if !reversed.First().ApproxEquals(Coord{5, 5}, 1e-9) || !reversed.Last().ApproxEquals(Coord{0, 0}, 1e-9) {
		t.Errorf("reversed = %v; want endpoints swapped", reversed)
	}
	if !line.First().ApproxEquals(Coord{0, 0}, 1e-9) {
		t.Errorf("input polyline was modified")
	}
}

func TestTrimEnds(t *testing.T) {
	line := CoordArray{{0, 0}, {100, 0}}

	trimmed := line.TrimEnds(10, 20)
	if !trimmed.First().ApproxEquals(Coord{10, 0}, 1e-9) {
		t.Errorf("trimmed.First() = %v; want (10, 0)", trimmed.First())
	}
	if !trimmed.Last().ApproxEquals(Coord{80, 0}, 1e-9) {
		t.Errorf("trimmed.Last() = %v; want (80, 0)", trimmed.Last())
	}

	// over-trimming falls back to the middle fifth
	trimmed = line.TrimEnds(60, 60)
	if !trimmed.First().ApproxEquals(Coord{40, 0}, 1e-9) || !trimmed.Last().ApproxEquals(Coord{60, 0}, 1e-9) {
		t.Errorf("trimmed = %v; want middle fifth (40, 0) to (60, 0)", trimmed)
	}
}

func TestPointAt(t *testing.T) {
	line := CoordArray{{0, 0}, {10, 0}, {10, 10}}
	point := line.PointAt(15)
	if !point.ApproxEquals(Coord{10, 5}, 1e-9) {
		t.Errorf("point = %v; want (10, 5)", point)
	}
	point = line.PointAt(100)
	if !point.ApproxEquals(Coord{10, 10}, 1e-9) {
		t.Errorf("point = %v; want clamped to last point", point)
	}
}

func TestSignedArea(t *testing.T) {
	ccw := Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}
	if math.Abs(ccw.SignedArea()-100) > 1e-9 {
		t.Errorf("ccw.SignedArea() = %v; want 100", ccw.SignedArea())
	}
	if ccw.IsClockwise() {
		t.Errorf("ccw.IsClockwise() = true; want false")
	}

	cw := Ring(CoordArray(ccw).Reversed())
	if math.Abs(cw.SignedArea()+100) > 1e-9 {
		t.Errorf("cw.SignedArea() = %v; want -100", cw.SignedArea())
	}
	if !cw.IsClockwise() {
		t.Errorf("cw.IsClockwise() = false; want true")
	}
}

func TestNewRing(t *testing.T) {
	_, err := NewRing(CoordArray{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}})
	if err != nil {
		t.Errorf("err = %v; want nil for a valid ring", err)
	}

	_, err = NewRing(CoordArray{{0, 0}, {10, 0}, {10, 10}})
	if err == nil {
		t.Errorf("err = nil; want error for an open ring")
	}

	_, err = NewRing(CoordArray{{0, 0}, {10, 0}, {5, 0}, {0, 0}})
	if err == nil {
		t.Errorf("err = nil; want error for a degenerate ring")
	}

	// bowtie
	_, err = NewRing(CoordArray{{0, 0}, {10, 10}, {10, 0}, {0, 10}, {0, 0}})
	if err == nil {
		t.Errorf("err = nil; want error for a self-intersecting ring")
	}
}

func TestMakeCircle(t *testing.T) {
	circle := MakeCircle(Coord{5, 5}, 2, 16)
	if circle.IsClockwise() {
		t.Errorf("circle.IsClockwise() = true; want counter-clockwise")
	}
	for _, point := range circle {
		dist := point.DistanceTo(Coord{5, 5})
		if math.Abs(dist-2) > 1e-9 {
			t.Errorf("point %v at distance %v; want 2", point, dist)
		}
	}
}

func TestArcBetween(t *testing.T) {
	circle := MakeCircle(Coord{0, 0}, 10, 32)

	// quarter turn, the short way leads counter-clockwise through (10, 0)... (0, 10)
	arc := circle.ArcBetween(Coord{12, 0}, Coord{0, 12}, false)
	if len(arc) < 2 {
		t.Fatalf("len(arc) = %v; want at least 2", len(arc))
	}
	if !arc.First().ApproxEquals(Coord{10, 0}, 1e-6) {
		t.Errorf("arc.First() = %v; want (10, 0)", arc.First())
	}
	if !arc.Last().ApproxEquals(Coord{0, 10}, 1e-6) {
		t.Errorf("arc.Last() = %v; want (0, 10)", arc.Last())
	}
	if arc.TotalLength() > 20 {
		t.Errorf("arc.TotalLength() = %v; want the short quarter arc", arc.TotalLength())
	}

	// same endpoints the long way around
	arc = circle.ArcBetween(Coord{12, 0}, Coord{0, 12}, true)
	if arc.TotalLength() < 40 {
		t.Errorf("arc.TotalLength() = %v; want the long three-quarter arc", arc.TotalLength())
	}
	if !arc.First().ApproxEquals(Coord{10, 0}, 1e-6) || !arc.Last().ApproxEquals(Coord{0, 10}, 1e-6) {
		t.Errorf("arc endpoints = %v, %v; want (10, 0) and (0, 10)", arc.First(), arc.Last())
	}
}

func TestProjectionRoundtrip(t *testing.T) {
	projection := NewProjection(52.0)
	point := projection.Project(9.5, 52.1)
	lon, lat := projection.Unproject(point)
	if math.Abs(lon-9.5) > 1e-9 || math.Abs(lat-52.1) > 1e-9 {
		t.Errorf("roundtrip = (%v, %v); want (9.5, 52.1)", lon, lat)
	}
}

func TestProjectionDistance(t *testing.T) {
	projection := NewProjection(0.0)
	a := projection.Project(0.0, 0.0)
	b := projection.Project(0.0, 0.001)
	dist := a.DistanceTo(b)
	// 0.001 degrees of latitude is roughly 111 meters
	if dist < 100 || dist > 120 {
		t.Errorf("dist = %v; want roughly 111", dist)
	}
}
