// Package garbage scatters clustered garbage piles. Each pile stamps a
// square probability stencil organized in concentric rings, densest at
// the center, so garbage looks dumped in heaps rather than sprinkled.
package garbage

import (
	"badlands/internal/world"
	"badlands/pkg/core"
)

// Settings control garbage placement.
type Settings struct {
	// TotalQuantity is the cumulative garbage quantity to place across
	// all piles.
	TotalQuantity int `json:"total_quantity" yaml:"total_quantity"`
	// PileSize bounds the stencil diameter; even draws are bumped to the
	// next odd number so every pile has a center cell.
	PileSize world.Range `json:"pile_size" yaml:"pile_size"`
	// PerTile bounds the quantity placed on a single tile.
	PerTile world.Range `json:"per_tile" yaml:"per_tile"`
	// SpawnProbability is the placement probability at the pile center.
	SpawnProbability float64 `json:"spawn_probability" yaml:"spawn_probability"`
	// ProbabilityStep is subtracted once per ring moving outward.
	ProbabilityStep float64 `json:"probability_step" yaml:"probability_step"`
}

// DefaultSettings returns garbage parameters proportioned to the world size.
func DefaultSettings(size int) Settings {
	return Settings{
		TotalQuantity:    size * size / 250,
		PileSize:         world.Range{Start: 3, End: 10},
		PerTile:          world.Range{Start: 1, End: 3},
		SpawnProbability: 0.8,
		ProbabilityStep:  0.1,
	}
}

// Spawn stamps piles until the target quantity is placed. Worlds with too
// few tiles able to take garbage stop after a bounded number of pile
// attempts instead of looping forever.
func Spawn(m world.TileMatrix, s Settings, rng *core.RNG) {
	size := m.Size()
	placed := 0
	for attempts := s.TotalQuantity + 100; placed < s.TotalQuantity && attempts > 0; attempts-- {
		side := rng.IntIn(s.PileSize.Start, s.PileSize.End)
		if side%2 == 0 {
			side++
		}
		if side > size {
			continue
		}
		stencil := ringMatrix(side, s.SpawnProbability, s.ProbabilityStep)
		origin := world.Coordinate{
			Row: rng.IntIn(0, size-side),
			Col: rng.IntIn(0, size-side),
		}
		for r := 0; r < side && placed < s.TotalQuantity; r++ {
			for c := 0; c < side && placed < s.TotalQuantity; c++ {
				if rng.FloatIn(0, 1) <= 1-stencil[r][c] {
					continue
				}
				q := rng.IntIn(s.PerTile.Start, s.PerTile.End)
				at := world.Coordinate{Row: origin.Row + r, Col: origin.Col + c}
				if m.Place(at, world.Garbage(q)) {
					placed += q
				}
			}
		}
	}
}

// ringMatrix builds the side × side pile stencil: the probability starts
// at p in the center cell and falls off by step per Chebyshev ring,
// clamped to [0, 1].
func ringMatrix(side int, p, step float64) [][]float64 {
	center := side / 2
	m := make([][]float64, side)
	for r := range m {
		m[r] = make([]float64, side)
		for c := range m[r] {
			ring := absInt(r - center)
			if d := absInt(c - center); d > ring {
				ring = d
			}
			v := p - float64(ring)*step
			if v < 0 {
				v = 0
			} else if v > 1 {
				v = 1
			}
			m[r][c] = v
		}
	}
	return m
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
