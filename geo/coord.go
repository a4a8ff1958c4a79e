package geo

import (
	"math"
)

//*******************************************
// planar coordinates
//*******************************************

// Coord is a point in a local planar coordinate system (meters).
type Coord struct {
	X float64
	Y float64
}

func (self Coord) Add(other Coord) Coord {
	return Coord{self.X + other.X, self.Y + other.Y}
}
func (self Coord) Sub(other Coord) Coord {
	return Coord{self.X - other.X, self.Y - other.Y}
}
func (self Coord) Scale(factor float64) Coord {
	return Coord{self.X * factor, self.Y * factor}
}
func (self Coord) Dot(other Coord) float64 {
	return self.X*other.X + self.Y*other.Y
}
func (self Coord) Cross(other Coord) float64 {
	return self.X*other.Y - self.Y*other.X
}
func (self Coord) Length() float64 {
	return math.Sqrt(self.X*self.X + self.Y*self.Y)
}
func (self Coord) DistanceTo(other Coord) float64 {
	return other.Sub(self).Length()
}

// Angle returns the direction of the vector in radians within (-pi, pi].
func (self Coord) Angle() float64 {
	return math.Atan2(self.Y, self.X)
}

func (self Coord) Normalized() Coord {
	l := self.Length()
	if l == 0 {
		return Coord{}
	}
	return Coord{self.X / l, self.Y / l}
}

// Left returns the perpendicular pointing to the left of the vector.
func (self Coord) Left() Coord {
	return Coord{-self.Y, self.X}
}

func (self Coord) ApproxEquals(other Coord, epsilon float64) bool {
	return math.Abs(self.X-other.X) <= epsilon && math.Abs(self.Y-other.Y) <= epsilon
}

//*******************************************
// mercator projection
//*******************************************

const _EARTH_RADIUS = 6378137.0

// Projection maps lon/lat degrees onto a local planar system in meters,
// scaled at a reference latitude so distances are approximately correct.
type Projection struct {
	lat_scale float64
}

func NewProjection(reference_lat float64) Projection {
	return Projection{
		lat_scale: math.Cos(reference_lat * math.Pi / 180.0),
	}
}

func (self Projection) Project(lon, lat float64) Coord {
	return Coord{
		X: _EARTH_RADIUS * lon * math.Pi / 180.0 * self.lat_scale,
		Y: _EARTH_RADIUS * lat * math.Pi / 180.0,
	}
}

// Unproject converts a planar coordinate back to (lon, lat) degrees.
func (self Projection) Unproject(point Coord) (float64, float64) {
	lon := point.X / (_EARTH_RADIUS * math.Pi / 180.0 * self.lat_scale)
	lat := point.Y / (_EARTH_RADIUS * math.Pi / 180.0)
	return lon, lat
}
