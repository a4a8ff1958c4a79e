package main

import (
	"os"

	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

//**********************************************************
// config
//**********************************************************

func ReadConfig(file string) Config {
	slog.Info("Reading config file")
	data, err := os.ReadFile(file)
	if err != nil {
		slog.Error("failed to read config file: " + err.Error())
		panic(err)
	}
	var config Config
	yaml.Unmarshal(data, &config)
	return config
}

type Config struct {
	Source struct {
		OSM string `yaml:"osm"`
	} `yaml:"source"`
	Output string       `yaml:"output"`
	Blocks BlockOptions `yaml:"blocks"`
}

type BlockOptions struct {
	// Merge single blocks into neighborhoods along minor roads.
	MergeMinorRoads bool `yaml:"merge-minor-roads"`
	// Return after the first successful merge of a pass, for diagnosis.
	StepwiseDebug bool `yaml:"stepwise-debug"`
	// Palette size for coloring adjacent blocks; 0 skips coloring.
	Colors int `yaml:"colors"`
}
