package blob

import (
	"math"

	"badlands/internal/world"
	"badlands/pkg/core"
)

// DefaultFireSettings returns fire region budgets proportioned to the
// world size. Fire patches are larger and much rarer than forests.
func DefaultFireSettings(size int) Settings {
	radiusEnd := math.Min(float64(size)/40, 6)
	blobs := world.Range{Start: size / 100, End: size / 50}
	return Settings{
		Tiles:  world.Range{Start: 1, End: maxCampaignTiles(radiusEnd, blobs.End)},
		Blobs:  blobs,
		Radius: world.FloatRange{Start: 2, End: radiusEnd},
	}
}

// SpawnFires stamps fire regions.
func SpawnFires(m world.TileMatrix, s Settings, rng *core.RNG) error {
	return Spawn(m, s, world.Fire(), rng)
}
