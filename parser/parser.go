package parser

import (
	"context"
	"os"
	"runtime"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"golang.org/x/exp/slog"

	"github.com/breezechen/abstreet/geo"
	"github.com/breezechen/abstreet/graph"
	. "github.com/breezechen/abstreet/util"
)

// ParseRoadNetwork extracts the drivable road network from an OSM pbf
// extract: intersection nodes, road segments between them with their full
// tag-derived attributes, projected to planar meters. Nodes on the clip
// boundary of the extract are flagged as borders so tracing knows where the
// network ends.
func ParseRoadNetwork(pbf_file string, decoder IOSMDecoder) (Array[graph.NodeData], Array[graph.RoadData], geo.Projection) {
	osm_nodes := NewDict[int64, TempNode](10000)
	index_mapping := NewDict[int64, int](10000)
	segments := NewList[OSMWaySegment](10000)
	node_coords := NewList[OSMCoord](10000)

	file, err := os.Open(pbf_file)
	if err != nil {
		panic(err)
	}
	defer file.Close()

	scanner := osmpbf.New(context.Background(), file, runtime.GOMAXPROCS(-1))
	_InitWayHandler(scanner, decoder, &osm_nodes)
	scanner.Close()
	file.Seek(0, 0)
	scanner = osmpbf.New(context.Background(), file, runtime.GOMAXPROCS(-1))
	_NodeHandler(scanner, &osm_nodes, &node_coords, &index_mapping)
	scanner.Close()
	file.Seek(0, 0)
	scanner = osmpbf.New(context.Background(), file, runtime.GOMAXPROCS(-1))
	_WayHandler(scanner, decoder, &segments, &osm_nodes, &index_mapping)
	scanner.Close()
	slog.Info("parsed osm extract", "intersections", node_coords.Length(), "segments", segments.Length())

	return _CreateNetworkData(node_coords, segments)
}

// _CreateNetworkData projects the raw lon/lat geometry into planar meters
// and classifies border nodes.
func _CreateNetworkData(node_coords List[OSMCoord], segments List[OSMWaySegment]) (Array[graph.NodeData], Array[graph.RoadData], geo.Projection) {
	min_lon, min_lat := 180.0, 90.0
	max_lon, max_lat := -180.0, -90.0
	mean_lat := 0.0
	for _, coord := range node_coords {
		if coord.Lon < min_lon {
			min_lon = coord.Lon
		}
		if coord.Lon > max_lon {
			max_lon = coord.Lon
		}
		if coord.Lat < min_lat {
			min_lat = coord.Lat
		}
		if coord.Lat > max_lat {
			max_lat = coord.Lat
		}
		mean_lat += coord.Lat
	}
	if node_coords.Length() > 0 {
		mean_lat /= float64(node_coords.Length())
	}
	projection := geo.NewProjection(mean_lat)

	// ways clipped by the extract end directly on the bounding box
	lon_margin := (max_lon - min_lon) * 0.001
	lat_margin := (max_lat - min_lat) * 0.001
	is_border := func(coord OSMCoord) bool {
		return coord.Lon <= min_lon+lon_margin || coord.Lon >= max_lon-lon_margin ||
			coord.Lat <= min_lat+lat_margin || coord.Lat >= max_lat-lat_margin
	}

	nodes := NewArray[graph.NodeData](node_coords.Length())
	for i, coord := range node_coords {
		nodes[i] = graph.NodeData{
			Point:  projection.Project(coord.Lon, coord.Lat),
			Border: is_border(coord),
		}
	}

	roads := NewArray[graph.RoadData](segments.Length())
	for i, segment := range segments {
		center := make(geo.CoordArray, 0, segment.Points.Length())
		for _, point := range segment.Points {
			center = append(center, projection.Project(point.Lon, point.Lat))
		}
		roads[i] = graph.RoadData{
			NodeA:  int32(segment.NodeA),
			NodeB:  int32(segment.NodeB),
			Center: center,
			Width:  segment.Attr.Width,
			Oneway: segment.Attr.Oneway,
			Minor:  segment.Attr.Minor,
		}
	}
	return nodes, roads, projection
}

//*******************************************
// osm handler methods
//*******************************************

func _InitWayHandler(scanner *osmpbf.Scanner, decoder IOSMDecoder, osm_nodes *Dict[int64, TempNode]) {
	scanner.SkipNodes = true
	scanner.SkipRelations = true
	for scanner.Scan() {
		switch object := scanner.Object().(type) {
		case *osm.Way:
			tags := Dict[string, string](object.TagMap())
			if !decoder.IsValidHighway(tags) {
				continue
			}
			nodes := object.Nodes.NodeIDs()
			l := len(nodes)
			for i := 0; i < l; i++ {
				ndref := nodes[i].FeatureID().Ref()
				if !osm_nodes.ContainsKey(ndref) {
					(*osm_nodes)[ndref] = TempNode{Count: 1}
				} else {
					node := (*osm_nodes)[ndref]
					node.Count += 1
					(*osm_nodes)[ndref] = node
				}
			}
			// way endpoints always become intersections
			node_a := (*osm_nodes)[nodes[0].FeatureID().Ref()]
			node_b := (*osm_nodes)[nodes[l-1].FeatureID().Ref()]
			node_a.Count += 1
			node_b.Count += 1
			(*osm_nodes)[nodes[0].FeatureID().Ref()] = node_a
			(*osm_nodes)[nodes[l-1].FeatureID().Ref()] = node_b
		default:
			continue
		}
	}
}

func _NodeHandler(scanner *osmpbf.Scanner, osm_nodes *Dict[int64, TempNode], node_coords *List[OSMCoord], index_mapping *Dict[int64, int]) {
	scanner.SkipWays = true
	scanner.SkipRelations = true
	for scanner.Scan() {
		switch object := scanner.Object().(type) {
		case *osm.Node:
			id := object.FeatureID().Ref()
			if !osm_nodes.ContainsKey(id) {
				continue
			}
			node := osm_nodes.Get(id)
			if node.Count > 1 {
				index_mapping.Set(id, node_coords.Length())
				node_coords.Add(OSMCoord{Lon: object.Lon, Lat: object.Lat})
			}
			node.Lon = object.Lon
			node.Lat = object.Lat
			osm_nodes.Set(id, node)
		default:
			continue
		}
	}
}

func _WayHandler(scanner *osmpbf.Scanner, decoder IOSMDecoder, segments *List[OSMWaySegment], osm_nodes *Dict[int64, TempNode], index_mapping *Dict[int64, int]) {
	scanner.SkipNodes = true
	scanner.SkipRelations = true
	for scanner.Scan() {
		switch object := scanner.Object().(type) {
		case *osm.Way:
			tags := Dict[string, string](object.TagMap())
			if !decoder.IsValidHighway(tags) {
				continue
			}
			attr := decoder.DecodeWay(tags)

			// split the way into segments at every intersection node
			nodes := object.Nodes.NodeIDs()
			start := nodes[0].FeatureID().Ref()
			segment := OSMWaySegment{Attr: attr}
			for i := 0; i < len(nodes); i++ {
				curr := nodes[i].FeatureID().Ref()
				node := osm_nodes.Get(curr)
				segment.Points.Add(OSMCoord{Lon: node.Lon, Lat: node.Lat})
				if node.Count > 1 && curr != start {
					segment.NodeA = index_mapping.Get(start)
					segment.NodeB = index_mapping.Get(curr)
					segments.Add(segment)
					start = curr
					segment = OSMWaySegment{Attr: attr}
					segment.Points.Add(OSMCoord{Lon: node.Lon, Lat: node.Lat})
				}
			}
		default:
			continue
		}
	}
}
