// Package scatter places point content: banks, bins, crates, coins,
// rocks, and water stock. Counted spawners probe uniform random tiles;
// rocks run a per-terrain Bernoulli sweep instead.
package scatter

import (
	"badlands/internal/world"
	"badlands/pkg/core"
)

// maxProbesPerPoint bounds the random probing for a single placement. A
// saturated or incapable world stops cleanly instead of spinning.
const maxProbesPerPoint = 20

// CountSettings configure spawners that place a fixed number of points.
type CountSettings struct {
	SpawnPoints int `json:"spawn_points" yaml:"spawn_points"`
}

// DefaultBankSettings returns the bank count for the world size.
func DefaultBankSettings(size int) CountSettings { return CountSettings{SpawnPoints: size / 25} }

// DefaultBinSettings returns the bin count for the world size.
func DefaultBinSettings(size int) CountSettings { return CountSettings{SpawnPoints: size / 25} }

// DefaultCrateSettings returns the crate count for the world size.
func DefaultCrateSettings(size int) CountSettings { return CountSettings{SpawnPoints: size / 25} }

// DefaultCoinSettings returns the coin count for the world size.
func DefaultCoinSettings(size int) CountSettings {
	return CountSettings{SpawnPoints: size * size / 25}
}

// SpawnBanks places banks with capacity 1 up to a random upper bound.
func SpawnBanks(m world.TileMatrix, s CountSettings, rng *core.RNG) {
	max := world.ContentBank.Max()
	spawnCounted(m, s.SpawnPoints, world.ContentBank, rng, func() world.Content {
		return world.Bank(1, rng.IntIn(2, max+1))
	})
}

// SpawnBins places bins with capacity 1 up to a random upper bound.
func SpawnBins(m world.TileMatrix, s CountSettings, rng *core.RNG) {
	max := world.ContentBin.Max()
	spawnCounted(m, s.SpawnPoints, world.ContentBin, rng, func() world.Content {
		return world.Bin(1, rng.IntIn(2, max+1))
	})
}

// SpawnCrates places crates with capacity 1 up to a random upper bound.
func SpawnCrates(m world.TileMatrix, s CountSettings, rng *core.RNG) {
	max := world.ContentCrate.Max()
	spawnCounted(m, s.SpawnPoints, world.ContentCrate, rng, func() world.Content {
		return world.Crate(1, rng.IntIn(2, max+1))
	})
}

// SpawnCoins places coin stacks with a random quantity.
func SpawnCoins(m world.TileMatrix, s CountSettings, rng *core.RNG) {
	max := world.ContentCoin.Max()
	spawnCounted(m, s.SpawnPoints, world.ContentCoin, rng, func() world.Content {
		return world.Coin(rng.IntIn(1, max+1))
	})
}

// spawnCounted probes uniform random tiles until count placements land on
// empty tiles able to hold the kind. Each hit stamps the content built by
// next, so next draws only for tiles that actually receive content.
func spawnCounted(m world.TileMatrix, count int, kind world.ContentKind, rng *core.RNG, next func() world.Content) int {
	size := m.Size()
	placed := 0
	for budget := count * maxProbesPerPoint; placed < count && budget > 0; budget-- {
		at := world.Coordinate{Row: rng.IntIn(0, size), Col: rng.IntIn(0, size)}
		tile := m.At(at)
		if !tile.Type.CanHold(kind) || !tile.Content.Empty() {
			continue
		}
		tile.Content = next()
		placed++
	}
	return placed
}
