package scatter

import (
	"badlands/internal/world"
	"badlands/pkg/core"
)

// SpawnWater stocks every empty water tile with a random quantity of
// water content, so water tiles are harvestable rather than bare.
func SpawnWater(m world.TileMatrix, rng *core.RNG) {
	max := world.ContentWater.Max()
	for row := range m {
		for col := range m[row] {
			tile := &m[row][col]
			if tile.Type != world.DeepWater && tile.Type != world.ShallowWater {
				continue
			}
			if !tile.Content.Empty() {
				continue
			}
			tile.Content = world.Water(rng.IntIn(0, max))
		}
	}
}
