package structs

//*******************************************
// enums
//*******************************************

// SideOfRoad is relative to the canonical src->dst direction of a road.
type SideOfRoad byte

const (
	LEFT  SideOfRoad = 0
	RIGHT SideOfRoad = 1
)

func (self SideOfRoad) String() string {
	if self == LEFT {
		return "left"
	}
	return "right"
}

// Direction of a lane relative to the canonical direction of its road.
type Direction byte

const (
	FORWARD  Direction = 0
	BACKWARD Direction = 1
)
