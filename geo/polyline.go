package geo

//*******************************************
// polylines
//*******************************************

type CoordArray []Coord

func (self CoordArray) First() Coord {
	return self[0]
}
func (self CoordArray) Last() Coord {
	return self[len(self)-1]
}
func (self CoordArray) Copy() CoordArray {
	result := make(CoordArray, len(self))
	copy(result, self)
	return result
}
func (self CoordArray) Reversed() CoordArray {
	result := make(CoordArray, len(self))
	for i, point := range self {
		result[len(self)-1-i] = point
	}
	return result
}

// TotalLength returns the length of the polyline in meters.
func (self CoordArray) TotalLength() float64 {
	length := 0.0
	for i := 0; i < len(self)-1; i++ {
		length += self[i].DistanceTo(self[i+1])
	}
	return length
}

// ShiftLeft offsets every point of the polyline perpendicularly to the left
// of the direction of travel. Joints between segments use a clamped miter so
// sharp corners don't produce spikes.
func (self CoordArray) ShiftLeft(distance float64) CoordArray {
	if len(self) < 2 {
		return self.Copy()
	}
	normals := make([]Coord, len(self)-1)
	for i := 0; i < len(self)-1; i++ {
		normals[i] = self[i+1].Sub(self[i]).Normalized().Left()
	}
	result := make(CoordArray, len(self))
	result[0] = self[0].Add(normals[0].Scale(distance))
	for i := 1; i < len(self)-1; i++ {
		miter := normals[i-1].Add(normals[i]).Normalized()
		scale := miter.Dot(normals[i])
		if scale < 0.5 {
			scale = 0.5
		}
		result[i] = self[i].Add(miter.Scale(distance / scale))
	}
	result[len(self)-1] = self[len(self)-1].Add(normals[len(normals)-1].Scale(distance))
	return result
}

func (self CoordArray) ShiftRight(distance float64) CoordArray {
	return self.ShiftLeft(-distance)
}

// PointAt returns the point at the given arc-length distance from the start,
// clamped to the endpoints.
func (self CoordArray) PointAt(distance float64) Coord {
	if distance <= 0 {
		return self.First()
	}
	travelled := 0.0
	for i := 0; i < len(self)-1; i++ {
		segment := self[i+1].Sub(self[i])
		length := segment.Length()
		if travelled+length >= distance {
			return self[i].Add(segment.Normalized().Scale(distance - travelled))
		}
		travelled += length
	}
	return self.Last()
}

// TrimEnds cuts the polyline back by the given distances from its start and
// end. If the polyline is too short, a small middle piece is kept so the
// result is never degenerate.
func (self CoordArray) TrimEnds(from_start, from_end float64) CoordArray {
	total := self.TotalLength()
	if total <= 0 {
		return self.Copy()
	}
	if from_start+from_end >= total {
		// keep the middle fifth
		margin := total * 0.4
		from_start = margin
		from_end = margin
	}
	end := total - from_end

	result := make(CoordArray, 0, len(self))
	result = append(result, self.PointAt(from_start))
	travelled := 0.0
	for i := 0; i < len(self)-1; i++ {
		travelled += self[i].DistanceTo(self[i+1])
		if travelled > from_start && travelled < end {
			result = append(result, self[i+1])
		}
	}
	result = append(result, self.PointAt(end))
	return result
}
