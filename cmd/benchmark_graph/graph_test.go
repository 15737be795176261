package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticGraph(t *testing.T) {
	counter := new(int64)
	graph, isDynamic := benchmarkMakeGraph(&benchmarkMakeGraphConfig{
		counter:        counter,
		width:          3,
		totalLayers:    3,
		nSources:       2,
		staticFraction: 1,
	})
	require.Len(t, graph.layers, 2)
	for _, row := range isDynamic {
		assert.Equal(t, []bool{false, false, false}, row)
	}

	// sources 0 1 2, layer one sums neighbours: 1 3 2, layer two: 4 5 3
	assert.Equal(t, 12, benchmarkRunGraph(graph, 0, 1))
	assert.Equal(t, int64(6), *counter)

	// writes sources[0] = 0, the two nodes reading it recompute to equal values
	assert.Equal(t, 12, benchmarkRunGraph(graph, 1, 1))
	assert.Equal(t, int64(8), *counter)
}

func TestDynamicGraph(t *testing.T) {
	counter := new(int64)
	graph, isDynamic := benchmarkMakeGraph(&benchmarkMakeGraphConfig{
		counter:        counter,
		width:          4,
		totalLayers:    2,
		nSources:       3,
		staticFraction: 0,
	})
	assert.Equal(t, [][]bool{{true, true, true, true}}, isDynamic)

	for _, src := range graph.sources {
		src.Set(2)
	}
	assert.Equal(t, 24, benchmarkRunGraph(graph, 0, 1))

	// odd first source drops one of the others
	graph.sources[0].Set(1)
	assert.Equal(t, 19, benchmarkRunGraph(graph, 0, 1))
}

func TestLoadConfigs(t *testing.T) {
	cfgs, err := loadConfigs("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfigs, cfgs)

	dir := t.TempDir()
	path := filepath.Join(dir, "cases.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
cases:
  - name: tiny
    width: 2
    totalLayers: 3
    staticFraction: 0.5
    nSources: 2
    readFraction: 1
    iterations: 10
`), 0644))

	cfgs, err = loadConfigs(path)
	require.NoError(t, err)
	assert.Equal(t, []benchmarkTestConfig{{
		Name:           "tiny",
		Width:          2,
		TotalLayers:    3,
		StaticFraction: 0.5,
		NSources:       2,
		ReadFraction:   1,
		Iterations:     10,
	}}, cfgs)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("cases:\n  - name: flat\n    width: 2\n    totalLayers: 1\n    nSources: 1\n    readFraction: 1\n    iterations: 1\n"), 0644))
	_, err = loadConfigs(bad)
	assert.EqualError(t, err, `case "flat": totalLayers must be at least 2`)

	_, err = loadConfigs(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestMakeTitle(t *testing.T) {
	assert.Equal(t, "10x5 2 sources read 20.00%", makeTitle(defaultConfigs[0]))
	assert.Equal(t, "100x15 6 sources dynamic", makeTitle(defaultConfigs[5]))
}
