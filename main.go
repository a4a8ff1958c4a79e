package main

import (
	"os"

	"golang.org/x/exp/slog"

	"github.com/breezechen/abstreet/blocks"
	"github.com/breezechen/abstreet/graph"
	"github.com/breezechen/abstreet/parser"
	"github.com/breezechen/abstreet/structs"
	. "github.com/breezechen/abstreet/util"
)

func main() {
	slog.SetDefault(slog.New(NewLogHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	config := ReadConfig("./config.yaml")

	nodes, roads, projection := parser.ParseRoadNetwork(config.Source.OSM, &parser.DrivingDecoder{})
	g := graph.BuildRoadGraph(nodes, roads, projection)

	perimeters := blocks.TraceAll(g)
	slog.Info("traced single blocks", "count", perimeters.Length())

	if config.Blocks.MergeMinorRoads {
		perimeters = mergeByMinorRoads(g, perimeters, config.Blocks.StepwiseDebug)
		slog.Info("merged into neighborhoods", "count", perimeters.Length())
	}

	colors := None[Array[int]]()
	if config.Blocks.Colors > 0 {
		colors = blocks.Coloring(perimeters, config.Blocks.Colors)
		if !colors.HasValue() {
			slog.Warn("blocks stay uncolored", "palette", config.Blocks.Colors, "error", blocks.ErrInfeasibleColoring)
		}
	}

	result := NewList[blocks.Block](perimeters.Length())
	block_colors := NewList[int](perimeters.Length())
	for i, perimeter := range perimeters {
		block, err := blocks.ToBlock(g, perimeter)
		if err != nil {
			// one bad loop doesn't abort the batch
			slog.Error("failed to build a block polygon", "error", err)
			continue
		}
		result.Add(block)
		if colors.HasValue() {
			block_colors.Add(colors.Value.Get(i))
		} else {
			block_colors.Add(-1)
		}
	}

	WriteBlocksGeoJSON(result, block_colors, projection, config.Output)
	slog.Info("wrote blocks", "count", result.Length(), "file", config.Output)
}

// mergeByMinorRoads partitions the blocks into groups connected through
// minor roads and fuses each group independently.
func mergeByMinorRoads(g graph.IRoadGraph, perimeters List[blocks.Perimeter], stepwise_debug bool) List[blocks.Perimeter] {
	partitions := blocks.Partition(perimeters, func(id structs.RoadID) bool {
		return g.GetRoad(id).Minor
	})
	merged := NewList[blocks.Perimeter](partitions.Length())
	for _, group := range partitions {
		merged = append(merged, blocks.MergeAll(group, stepwise_debug)...)
	}
	return merged
}
