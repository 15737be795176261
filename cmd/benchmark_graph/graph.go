package main

import (
	"math"
	"math/rand"

	"github.com/delaneyj/signalgraph/observable"
)

type node = observable.Source[int]

type benchmarkGraph struct {
	sources []*observable.Publisher[int]
	layers  [][]node
}

type benchmarkMakeGraphConfig struct {
	counter                      *int64
	width, totalLayers, nSources int64
	staticFraction               float64
}

func benchmarkMakeGraph(cfg *benchmarkMakeGraphConfig) (graph *benchmarkGraph, isDynamic [][]bool) {
	sources := make([]*observable.Publisher[int], cfg.width)
	prevRow := make([]node, cfg.width)
	for i := range sources {
		sources[i] = observable.NewPublisher(i)
		prevRow[i] = sources[i]
	}
	graph = &benchmarkGraph{sources: sources}

	random := rand.New(rand.NewSource(0))
	numRows := cfg.totalLayers - 1
	graph.layers = make([][]node, numRows)
	isDynamic = make([][]bool, numRows)
	for l := int64(0); l < numRows; l++ {
		row, dynamic := makeBenchmarkRow(&benchmarkRowConfig{
			sources:        prevRow,
			counter:        cfg.counter,
			staticFraction: cfg.staticFraction,
			nSources:       cfg.nSources,
			rand:           random,
		})
		graph.layers[l] = row
		isDynamic[l] = dynamic
		prevRow = row
	}

	return graph, isDynamic
}

type benchmarkRowConfig struct {
	sources        []node
	counter        *int64
	staticFraction float64
	nSources       int64
	rand           *rand.Rand
}

func makeBenchmarkRow(cfg *benchmarkRowConfig) (row []node, isDynamic []bool) {
	row = make([]node, len(cfg.sources))
	isDynamic = make([]bool, len(cfg.sources))

	sum := func(args ...any) int {
		*cfg.counter++
		total := 0
		for _, arg := range args {
			total += arg.(int)
		}
		return total
	}

	for myDex := range cfg.sources {
		mySources := make([]any, 0, cfg.nSources)
		for sourceDex := 0; sourceDex < int(cfg.nSources); sourceDex++ {
			x := (myDex + sourceDex) % len(cfg.sources)
			mySources = append(mySources, cfg.sources[x])
		}

		staticNode := cfg.rand.Float64() < cfg.staticFraction
		if staticNode || len(mySources) < 2 {
			// static node, always reference sources
			row[myDex] = observable.NewSubscriber(mySources, sum)
			continue
		}

		// the first source decides which of the others are read
		first := mySources[0].(node)
		tail := mySources[1:]
		members := observable.Map(first, func(v int) []any {
			shouldDrop := v&0x1 > 0
			dropDex := v % len(tail)
			args := make([]any, 0, len(mySources))
			args = append(args, first)
			for i, src := range tail {
				if shouldDrop && i == dropDex {
					continue
				}
				args = append(args, src)
			}
			return args
		})
		row[myDex] = observable.NewDynamicSubscriber(members, sum)
		isDynamic[myDex] = true
	}

	return row, isDynamic
}

// Execute the graph by writing one of the sources and reading some or all of the leaves.
// return the sum of all leaf values
func benchmarkRunGraph(graph *benchmarkGraph, iterations int64, readFraction float64) int {
	random := rand.New(rand.NewSource(0))
	leaves := graph.layers[len(graph.layers)-1]
	skipCount := int(math.Round(float64(len(leaves)) * (1 - readFraction)))
	readLeaves := benchmarkRemoveElems(leaves, skipCount, random)

	for i := 0; i < int(iterations); i++ {
		sourceDex := i % len(graph.sources)
		graph.sources[sourceDex].Set(i + sourceDex)

		for _, leaf := range readLeaves {
			leaf.Get()
		}
	}

	sum := 0
	for _, leaf := range readLeaves {
		sum += leaf.Get()
	}
	return sum
}

func benchmarkRemoveElems[T any](src []T, rmCount int, rand *rand.Rand) []T {
	copyWithRemovals := make([]T, len(src))
	copy(copyWithRemovals, src)
	for i := 0; i < rmCount; i++ {
		rmDex := rand.Intn(len(copyWithRemovals))
		copyWithRemovals[rmDex] = copyWithRemovals[len(copyWithRemovals)-1]
		copyWithRemovals = copyWithRemovals[:len(copyWithRemovals)-1]
	}
	return copyWithRemovals
}
