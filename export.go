package main

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/breezechen/abstreet/blocks"
	"github.com/breezechen/abstreet/geo"
	. "github.com/breezechen/abstreet/util"
)

//*******************************************
// geojson export
//*******************************************

// WriteBlocksGeoJSON renders every block polygon back into lon/lat space
// and writes a FeatureCollection to the given file. A color of -1 marks
// uncolored blocks.
func WriteBlocksGeoJSON(result List[blocks.Block], colors List[int], projection geo.Projection, file string) {
	collection := geojson.NewFeatureCollection()
	for i := 0; i < result.Length(); i++ {
		block := result.Get(i)
		ring := make(orb.Ring, 0, len(block.Polygon))
		for _, point := range block.Polygon {
			lon, lat := projection.Unproject(point)
			ring = append(ring, orb.Point{lon, lat})
		}
		feature := geojson.NewFeature(orb.Polygon{ring})
		feature.Properties["color"] = colors.Get(i)
		feature.Properties["boundary_roads"] = block.Perimeter.Roads.Length()
		interior := make([]int32, 0, block.Perimeter.Interior.Length())
		for id := range block.Perimeter.Interior {
			interior = append(interior, int32(id))
		}
		feature.Properties["interior_roads"] = interior
		collection.Append(feature)
	}
	WriteJSONToFile(collection, file)
}
