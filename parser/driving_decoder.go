package parser

import (
	. "github.com/breezechen/abstreet/util"
)

//*******************************************
// osm decoder
//*******************************************

type IOSMDecoder interface {
	IsValidHighway(tags Dict[string, string]) bool
	DecodeWay(tags Dict[string, string]) WayAttribs
}

// DrivingDecoder keeps the drivable road network, which is what blocks are
// traced on.
type DrivingDecoder struct {
}

var driving_types = Dict[string, bool]{"motorway": true, "motorway_link": true, "trunk": true, "trunk_link": true,
	"primary": true, "primary_link": true, "secondary": true, "secondary_link": true, "tertiary": true, "tertiary_link": true,
	"residential": true, "living_street": true, "service": true, "track": true, "unclassified": true, "road": true}

var minor_types = Dict[string, bool]{"residential": true, "living_street": true, "service": true,
	"track": true, "unclassified": true, "road": true}

func (self *DrivingDecoder) IsValidHighway(tags Dict[string, string]) bool {
	if !tags.ContainsKey("highway") {
		return false
	}
	if !driving_types.ContainsKey(tags.Get("highway")) {
		return false
	}
	return true
}

func (self *DrivingDecoder) DecodeWay(tags Dict[string, string]) WayAttribs {
	highway := tags.Get("highway")
	return WayAttribs{
		Width:  _GetWidth(highway, tags.Get("lanes")),
		Oneway: _IsOneway(tags.Get("oneway"), highway),
		Minor:  minor_types.ContainsKey(highway),
	}
}
