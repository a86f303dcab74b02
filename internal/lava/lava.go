// Package lava pours lava streams from mountain tiles. Each stream walks
// hop by hop toward the locally lowest neighbor, approximating downhill
// flow without simulating it.
package lava

import (
	"math"

	"badlands/internal/elevation"
	"badlands/internal/world"
	"badlands/pkg/core"
)

// Settings control lava placement.
type Settings struct {
	// SpawnPoints is the number of mountain tiles lava erupts from.
	SpawnPoints int `json:"spawn_points" yaml:"spawn_points"`
	// FlowRange bounds the stream length; each stream flows Len() hops
	// from its source.
	FlowRange world.Range `json:"flow_range" yaml:"flow_range"`
}

// DefaultSettings returns lava parameters proportioned to the world size.
func DefaultSettings(size int) Settings {
	return Settings{
		SpawnPoints: size * size / 500,
		FlowRange:   world.Range{Start: 1, End: size * size / 25},
	}
}

// Spawn picks up to SpawnPoints mountain tiles at random, capped to
// however many exist, and pours one stream from each.
func Spawn(m world.TileMatrix, f *elevation.Field, s Settings, rng *core.RNG) {
	sources := mountainTiles(m)
	rng.Shuffle(len(sources), func(i, j int) { sources[i], sources[j] = sources[j], sources[i] })
	n := s.SpawnPoints
	if len(sources) < n {
		n = len(sources)
	}
	for i := 0; i < n; i++ {
		flowFrom(m, f, sources[i], s.FlowRange.Len())
	}
}

// flowFrom marks the source and then hops tiles as lava. The walk may
// climb: it always takes the locally lowest neighbor, even when every
// neighbor sits above the current cell.
func flowFrom(m world.TileMatrix, f *elevation.Field, at world.Coordinate, hops int) {
	m[at.Row][at.Col].Type = world.Lava
	for ; hops > 0; hops-- {
		at = lowestNeighbour(f, at)
		m[at.Row][at.Col].Type = world.Lava
	}
}

// lowestNeighbour returns the lowest of the existing up/down/left/right
// neighbors. Ties keep the earlier direction in that order.
func lowestNeighbour(f *elevation.Field, at world.Coordinate) world.Coordinate {
	best := at
	bestHeight := math.Inf(1)
	consider := func(row, col int) {
		if h := f.At(row, col); h < bestHeight {
			bestHeight = h
			best = world.Coordinate{Row: row, Col: col}
		}
	}
	if at.Row > 0 {
		consider(at.Row-1, at.Col)
	}
	if at.Row < f.Size()-1 {
		consider(at.Row+1, at.Col)
	}
	if at.Col > 0 {
		consider(at.Row, at.Col-1)
	}
	if at.Col < f.Size()-1 {
		consider(at.Row, at.Col+1)
	}
	return best
}

func mountainTiles(m world.TileMatrix) []world.Coordinate {
	var tiles []world.Coordinate
	for row := range m {
		for col := range m[row] {
			if m[row][col].Type == world.Mountain {
				tiles = append(tiles, world.Coordinate{Row: row, Col: col})
			}
		}
	}
	return tiles
}
