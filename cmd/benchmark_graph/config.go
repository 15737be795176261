package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type benchmarkTestConfig struct {
	Name           string  `yaml:"name"`           // friendly name for the test, should be unique
	Width          int64   `yaml:"width"`          // width of dependency graph to construct
	TotalLayers    int64   `yaml:"totalLayers"`    // depth of dependency graph to construct
	StaticFraction float64 `yaml:"staticFraction"` // fraction of nodes with a fixed argument list
	NSources       int64   `yaml:"nSources"`       // number of sources each node reads
	ReadFraction   float64 `yaml:"readFraction"`   // fraction of the last layer read in each iteration
	Iterations     int64   `yaml:"iterations"`     // number of test iterations
}

type benchmarkFile struct {
	Cases []benchmarkTestConfig `yaml:"cases"`
}

var defaultConfigs = []benchmarkTestConfig{
	{
		Name:           "simple component",
		Width:          10,
		StaticFraction: 1,
		NSources:       2,
		TotalLayers:    5,
		ReadFraction:   0.2,
		Iterations:     600000,
	},
	{
		Name:           "dynamic component",
		Width:          10,
		TotalLayers:    10,
		StaticFraction: 0.75,
		NSources:       6,
		ReadFraction:   0.2,
		Iterations:     15000,
	},
	{
		Name:           "large web app",
		Width:          1000,
		TotalLayers:    12,
		StaticFraction: 0.95,
		NSources:       4,
		ReadFraction:   1,
		Iterations:     7000,
	},
	{
		Name:           "wide dense",
		Width:          1000,
		TotalLayers:    5,
		StaticFraction: 1,
		NSources:       25,
		ReadFraction:   1,
		Iterations:     3000,
	},
	{
		Name:           "deep",
		Width:          5,
		TotalLayers:    500,
		StaticFraction: 1,
		NSources:       3,
		ReadFraction:   1,
		Iterations:     500,
	},
	{
		Name:           "very dynamic",
		Width:          100,
		TotalLayers:    15,
		StaticFraction: 0.5,
		NSources:       6,
		ReadFraction:   1,
		Iterations:     2000,
	},
}

// loadConfigs reads the case table from path, or returns the built-in
// cases when path is empty.
func loadConfigs(path string) ([]benchmarkTestConfig, error) {
	if path == "" {
		return defaultConfigs, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading benchmark config: %w", err)
	}
	var file benchmarkFile
	if err := yaml.Unmarshal(b, &file); err != nil {
		return nil, fmt.Errorf("parsing benchmark config %s: %w", path, err)
	}
	if len(file.Cases) == 0 {
		return nil, fmt.Errorf("benchmark config %s has no cases", path)
	}
	for _, cfg := range file.Cases {
		if err := cfg.validate(); err != nil {
			return nil, err
		}
	}
	return file.Cases, nil
}

func (cfg benchmarkTestConfig) validate() error {
	switch {
	case cfg.Width < 1:
		return fmt.Errorf("case %q: width must be at least 1", cfg.Name)
	case cfg.TotalLayers < 2:
		return fmt.Errorf("case %q: totalLayers must be at least 2", cfg.Name)
	case cfg.NSources < 1:
		return fmt.Errorf("case %q: nSources must be at least 1", cfg.Name)
	case cfg.ReadFraction < 0 || cfg.ReadFraction > 1:
		return fmt.Errorf("case %q: readFraction must be within [0, 1]", cfg.Name)
	case cfg.StaticFraction < 0 || cfg.StaticFraction > 1:
		return fmt.Errorf("case %q: staticFraction must be within [0, 1]", cfg.Name)
	case cfg.Iterations < 1:
		return fmt.Errorf("case %q: iterations must be at least 1", cfg.Name)
	}
	return nil
}
