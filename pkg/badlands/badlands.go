// Package badlands exposes the world generator behind a small stable
// surface, so programs that only need a finished world do not touch the
// internal pipeline packages.
package badlands

import (
	"badlands/internal/config"
	"badlands/internal/generate"
	"badlands/internal/world"
)

// Re-exported world types. The grid, its tiles, and the environment carry
// over unchanged from the generation pipeline.
type (
	Tile        = world.Tile
	TileType    = world.TileType
	Content     = world.Content
	ContentKind = world.ContentKind
	Coordinate  = world.Coordinate
	Environment = world.Environment
	TileMatrix  = world.TileMatrix
)

// Result is a fully generated world.
type Result struct {
	World TileMatrix
	Spawn Coordinate
	Env   Environment
	Seed  int64
}

// Option adjusts one generation setting by configuration key, for example
// {"preset", "volcanic"} or {"lava.spawn_points", "12"}.
type Option struct {
	Key   string
	Value string
}

// Generate builds a size*size world from seed, with options applied in
// order. A fixed (size, seed, options) triple reproduces the world exactly.
func Generate(size int, seed int64, opts ...Option) (*Result, error) {
	cfg := config.Default(size, seed)
	for _, opt := range opts {
		if err := cfg.Set(opt.Key, opt.Value); err != nil {
			return nil, err
		}
	}
	gen, err := cfg.Generator()
	if err != nil {
		return nil, err
	}
	res, err := gen.Generate()
	if err != nil {
		return nil, err
	}
	return &Result{World: res.World, Spawn: res.Spawn, Env: res.Env, Seed: res.Seed}, nil
}

// Keys returns the valid option keys, sorted.
func Keys() []string { return config.Keys() }

// Presets returns the available preset names, sorted.
func Presets() []string { return generate.PresetNames() }

// TerrainShares returns the fraction of tiles per terrain type.
func TerrainShares(m TileMatrix) map[TileType]float64 { return world.TerrainPercentage(m) }

// ContentShares returns the fraction of tiles per content kind.
func ContentShares(m TileMatrix) map[ContentKind]float64 { return world.ContentPercentage(m) }

// Check verifies the content invariants over the whole grid.
func Check(m TileMatrix) error { return world.Check(m) }
