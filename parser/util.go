package parser

import (
	"strconv"
)

//*******************************************
// utility methods
//*******************************************

const _LANE_WIDTH = 3.5

func _IsOneway(oneway string, highway string) bool {
	if highway == "motorway" || highway == "motorway_link" || highway == "trunk" || highway == "trunk_link" {
		return true
	} else if oneway == "yes" {
		return true
	}
	return false
}

// _GetWidth estimates the full paved width of a road from its highway class
// and an optional lanes tag.
func _GetWidth(highway string, lanes string) float64 {
	lane_count := 0
	if lanes != "" {
		if parsed, err := strconv.Atoi(lanes); err == nil && parsed > 0 {
			lane_count = parsed
		}
	}
	if lane_count == 0 {
		switch highway {
		case "motorway", "trunk":
			lane_count = 4
		case "motorway_link", "trunk_link", "primary", "secondary":
			lane_count = 2
		case "service", "track":
			lane_count = 1
		default:
			lane_count = 2
		}
	}
	return float64(lane_count) * _LANE_WIDTH
}
