// Package generate orchestrates the terrain pipeline: elevation synthesis,
// classification, then a configurable ordered list of spawn phases over a
// single shared tile matrix.
package generate

import (
	"errors"
	"fmt"
	"time"

	"badlands/internal/blob"
	icore "badlands/internal/core"
	"badlands/internal/elevation"
	"badlands/internal/garbage"
	"badlands/internal/lava"
	"badlands/internal/logger"
	"badlands/internal/scatter"
	"badlands/internal/streets"
	"badlands/internal/terrain"
	"badlands/internal/world"
	"badlands/pkg/core"
)

// MinWorldSize is the smallest side length the pipeline accepts. Smaller
// grids cannot seat a street network or meaningful blob margins.
const MinWorldSize = 100

// ErrWorldTooSmall reports a requested size below MinWorldSize.
var ErrWorldTooSmall = errors.New("generate: world too small")

// Generator carries every setting of one generation run. Zero value is not
// usable; start from Default and adjust.
type Generator struct {
	Size int
	Seed int64

	Noise      elevation.Settings
	Thresholds terrain.Thresholds
	Streets    streets.Settings
	Lava       lava.Settings
	Fire       blob.Settings
	Trees      blob.Settings
	Garbage    garbage.Settings
	Banks      scatter.CountSettings
	Bins       scatter.CountSettings
	Crates     scatter.CountSettings
	Coins      scatter.CountSettings
	Rocks      scatter.RockSettings

	// Order lists the spawn phases to run; repeats collapse to the first
	// occurrence and omitted phases never run.
	Order []Phase

	// Log receives per-phase debug lines when set.
	Log *logger.Logger
	// OnPhase observes each completed pipeline step when set.
	OnPhase func(PhaseTiming)
}

// PhaseTiming is the wall time of one completed pipeline step.
type PhaseTiming struct {
	Name    string        `json:"name"`
	Elapsed time.Duration `json:"elapsed"`
}

// Result is a fully generated world.
type Result struct {
	World     world.TileMatrix
	Spawn     world.Coordinate
	Env       world.Environment
	Seed      int64
	Elevation *elevation.Field
	Timings   []PhaseTiming
}

// Default returns a generator with every setting at its size-proportioned
// default and the standard phase order.
func Default(size int, seed int64) *Generator {
	return &Generator{
		Size:       size,
		Seed:       seed,
		Noise:      elevation.FromSeed(seed),
		Thresholds: terrain.DefaultThresholds(),
		Streets:    streets.DefaultSettings(),
		Lava:       lava.DefaultSettings(size),
		Fire:       blob.DefaultFireSettings(size),
		Trees:      blob.DefaultTreeSettings(size),
		Garbage:    garbage.DefaultSettings(size),
		Banks:      scatter.DefaultBankSettings(size),
		Bins:       scatter.DefaultBinSettings(size),
		Crates:     scatter.DefaultCrateSettings(size),
		Coins:      scatter.DefaultCoinSettings(size),
		Rocks:      scatter.DefaultRockSettings(size),
		Order:      DefaultOrder(),
	}
}

// Generate runs the full pipeline. Configuration problems surface here
// before the grid is touched; a fixed (settings, seed) pair reproduces the
// world exactly.
func (g *Generator) Generate() (*Result, error) {
	if g.Size < MinWorldSize {
		return nil, fmt.Errorf("%w: size %d, minimum is %d", ErrWorldTooSmall, g.Size, MinWorldSize)
	}
	order := Dedup(g.Order)
	for _, p := range order {
		if !validPhase(p) {
			return nil, fmt.Errorf("generate: unknown phase %q, valid phases are %v", p, Phases())
		}
	}
	if err := g.Fire.Validate(); err != nil {
		return nil, fmt.Errorf("fire settings: %w", err)
	}
	if err := g.Trees.Validate(); err != nil {
		return nil, fmt.Errorf("tree settings: %w", err)
	}

	sw := icore.NewStopwatch()
	var timings []PhaseTiming
	lap := func(name string) {
		t := PhaseTiming{Name: name, Elapsed: sw.Lap(name)}
		timings = append(timings, t)
		if g.Log != nil {
			g.Log.Debugf("%s done in %s", t.Name, t.Elapsed)
		}
		if g.OnPhase != nil {
			g.OnPhase(t)
		}
	}

	field := elevation.Generate(g.Size, g.Noise)
	lap("elevation")

	m := world.NewTileMatrix(g.Size)
	terrain.Classify(m, field, g.Thresholds)
	lap("terrain")

	for _, phase := range order {
		if err := g.run(phase, m, field); err != nil {
			return nil, err
		}
		lap(string(phase))
	}

	spawn := SpawnPoint(m)
	lap("spawn")

	if g.Log != nil {
		g.Log.Infof("world %dx%d generated in %s, spawn at (%d,%d)",
			g.Size, g.Size, sw.Total(), spawn.Row, spawn.Col)
	}
	return &Result{
		World:     m,
		Spawn:     spawn,
		Env:       world.DefaultEnvironment(),
		Seed:      g.Seed,
		Elevation: field,
		Timings:   timings,
	}, nil
}

// run executes one phase on its own seed stream, so adding, removing, or
// reordering phases cannot disturb the draws of the others.
func (g *Generator) run(phase Phase, m world.TileMatrix, field *elevation.Field) error {
	rng := core.NewRNG(core.SubSeed(g.Seed, string(phase)))
	switch phase {
	case PhaseStreets:
		return streets.Spawn(m, field, g.Streets)
	case PhaseLava:
		lava.Spawn(m, field, g.Lava, rng)
	case PhaseBanks:
		scatter.SpawnBanks(m, g.Banks, rng)
	case PhaseBins:
		scatter.SpawnBins(m, g.Bins, rng)
	case PhaseCrates:
		scatter.SpawnCrates(m, g.Crates, rng)
	case PhaseGarbage:
		garbage.Spawn(m, g.Garbage, rng)
	case PhaseFire:
		return blob.SpawnFires(m, g.Fire, rng)
	case PhaseTrees:
		return blob.SpawnTrees(m, g.Trees, rng)
	case PhaseRocks:
		scatter.SpawnRocks(m, g.Rocks, rng)
	case PhaseCoins:
		scatter.SpawnCoins(m, g.Coins, rng)
	case PhaseWater:
		scatter.SpawnWater(m, rng)
	}
	return nil
}

// SpawnPoint returns the first tile, scanning row-major, whose terrain is
// walkable, or the origin when nothing is.
func SpawnPoint(m world.TileMatrix) world.Coordinate {
	for row := range m {
		for col := range m[row] {
			if m[row][col].Type.Walkable() {
				return world.Coordinate{Row: row, Col: col}
			}
		}
	}
	return world.Coordinate{}
}
