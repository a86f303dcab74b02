package blob

import (
	"math"

	"badlands/internal/world"
	"badlands/pkg/core"
)

// DefaultTreeSettings returns forest budgets proportioned to the world
// size. The drop chance thins each forest so trees never form a solid
// carpet.
func DefaultTreeSettings(size int) Settings {
	radiusEnd := math.Min(float64(size)/50, 4)
	blobs := world.Range{Start: int(float64(size) * 0.1), End: int(float64(size) * 0.15)}
	return Settings{
		Tiles:      world.Range{Start: 1, End: maxCampaignTiles(radiusEnd, blobs.End)},
		Blobs:      blobs,
		Radius:     world.FloatRange{Start: 1, End: radiusEnd},
		DropChance: 0.1,
	}
}

// SpawnTrees stamps forest regions.
func SpawnTrees(m world.TileMatrix, s Settings, rng *core.RNG) error {
	return Spawn(m, s, world.Tree(0), rng)
}

// maxCampaignTiles bounds a campaign's tile budget by the area of the
// largest blob's bounding square times the blob budget.
func maxCampaignTiles(radiusEnd float64, blobsEnd int) int {
	side := math.Ceil(radiusEnd) * 2
	return int(side*side) * blobsEnd
}
