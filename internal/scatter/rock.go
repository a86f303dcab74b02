package scatter

import (
	"badlands/internal/world"
	"badlands/pkg/core"
)

// RockSettings control the Bernoulli rock sweep.
type RockSettings struct {
	// Probabilities holds the spawn probability per terrain kind. Street
	// and lava stay at zero.
	Probabilities [world.TileTypeCount]float64 `json:"probabilities" yaml:"probabilities"`
	// MaxRocks caps how many rocks the sweep may accept.
	MaxRocks int `json:"max_rocks" yaml:"max_rocks"`
}

// DefaultRockSettings returns rock densities per terrain, rising with
// elevation so high ground is the rockiest.
func DefaultRockSettings(size int) RockSettings {
	var s RockSettings
	s.MaxRocks = size * size / 20
	s.Probabilities[world.Sand] = 0.1
	s.Probabilities[world.Grass] = 0.25
	s.Probabilities[world.Hill] = 0.45
	s.Probabilities[world.Mountain] = 0.5
	s.Probabilities[world.Snow] = 0.7
	return s
}

// SpawnRocks sweeps the grid row-major, accepting each empty capable tile
// with its terrain's probability until the budget is spent, then stamps
// the accepted tiles in shuffled order with random quantities.
func SpawnRocks(m world.TileMatrix, s RockSettings, rng *core.RNG) {
	left := s.MaxRocks
	var candidates []world.Coordinate
sweep:
	for row := range m {
		for col := range m[row] {
			if left == 0 {
				break sweep
			}
			tile := m[row][col]
			if !rng.Chance(s.Probabilities[tile.Type]) {
				continue
			}
			if !tile.Type.CanHold(world.ContentRock) || !tile.Content.Empty() {
				continue
			}
			candidates = append(candidates, world.Coordinate{Row: row, Col: col})
			left--
		}
	}

	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	max := world.ContentRock.Max()
	for _, at := range candidates {
		m[at.Row][at.Col].Content = world.Rock(rng.IntIn(1, max+1))
	}
}
