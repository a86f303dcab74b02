package generate

import (
	"fmt"
	"math"
	"strconv"
	"sync"

	"badlands/internal/world"
	"badlands/pkg/core"
)

// TerrainTarget is the desired share of the grid per terrain kind.
// Kinds absent from the map are unconstrained.
type TerrainTarget map[world.TileType]float64

// DefaultTarget aims for a playable mixed world: mostly walkable land,
// visible water margins, restrained hazards.
func DefaultTarget() TerrainTarget {
	return TerrainTarget{
		world.DeepWater:    0.04,
		world.ShallowWater: 0.06,
		world.Sand:         0.06,
		world.Grass:        0.32,
		world.Hill:         0.20,
		world.Mountain:     0.12,
		world.Snow:         0.08,
		world.Street:       0.07,
		world.Lava:         0.05,
	}
}

// BalanceResult captures terrain telemetry from one deterministic run.
type BalanceResult struct {
	// Score is the L1 distance between the generated terrain distribution
	// and the target. Lower is better.
	Score float64
	// Walkable is the share of the grid a robot can stand on.
	Walkable float64
	// Failed marks runs that returned an error; they rank below every
	// successful run.
	Failed bool
}

// TuneRecord documents a single improvement encountered while exploring
// the parameter space.
type TuneRecord struct {
	Pass      int
	Parameter string
	Value     string
	Result    BalanceResult
	Settings  Generator
}

// FloatSpec is one float-valued dimension of the search space. Setters may
// adjust neighboring settings to keep the generator consistent.
type FloatSpec struct {
	Name   string
	Values []float64
	Get    func(*Generator) float64
	Set    func(*Generator, float64)
}

// IntSpec is one integer-valued dimension of the search space.
type IntSpec struct {
	Name   string
	Values []int
	Get    func(*Generator) int
	Set    func(*Generator, int)
	Skip   func(*Generator, int) bool
}

// ScoreShares returns the L1 distance between a terrain distribution and
// the target. A missing kind counts as share zero.
func ScoreShares(shares map[world.TileType]float64, target TerrainTarget) float64 {
	score := 0.0
	for t, want := range target {
		score += math.Abs(shares[t] - want)
	}
	return score
}

// RunBalance generates a world from g and scores its terrain distribution
// against the target.
func RunBalance(g Generator, target TerrainTarget) BalanceResult {
	g.Log = nil
	g.OnPhase = nil
	res, err := g.Generate()
	if err != nil {
		return BalanceResult{Score: math.Inf(1), Failed: true}
	}
	shares := world.TerrainPercentage(res.World)
	walkable := 0.0
	for t, share := range shares {
		if t.Walkable() {
			walkable += share
		}
	}
	return BalanceResult{Score: ScoreShares(shares, target), Walkable: walkable}
}

// DefaultIntSpecs returns the integer search dimensions: noise octaves,
// lava spout count, and street slicing.
func DefaultIntSpecs() []IntSpec {
	return []IntSpec{
		{
			Name:   "noise.octaves",
			Values: []int{6, 8, 10, 12, 14},
			Get:    func(g *Generator) int { return g.Noise.Octaves },
			Set:    func(g *Generator, v int) { g.Noise.Octaves = v },
		},
		{
			Name:   "lava.spawn_points",
			Values: []int{0, 10, 20, 40, 80},
			Get:    func(g *Generator) int { return g.Lava.SpawnPoints },
			Set:    func(g *Generator, v int) { g.Lava.SpawnPoints = v },
		},
		{
			Name:   "streets.slices",
			Values: []int{6, 8, 10, 12, 16},
			Get:    func(g *Generator) int { return g.Streets.Slices },
			Set:    func(g *Generator, v int) { g.Streets.Slices = v },
		},
	}
}

// DefaultFloatSpecs returns the float search dimensions: noise shape and
// the classifier thresholds. Threshold setters push later thresholds up to
// keep the chain non-decreasing.
func DefaultFloatSpecs() []FloatSpec {
	return []FloatSpec{
		{
			Name:   "noise.frequency",
			Values: []float64{1.5, 2.0, 2.5, 3.0, 3.5},
			Get:    func(g *Generator) float64 { return g.Noise.Frequency },
			Set:    func(g *Generator, v float64) { g.Noise.Frequency = v },
		},
		{
			Name:   "noise.persistence",
			Values: []float64{0.75, 1.0, 1.25, 1.5},
			Get:    func(g *Generator) float64 { return g.Noise.Persistence },
			Set:    func(g *Generator, v float64) { g.Noise.Persistence = v },
		},
		{
			Name:   "noise.attenuation",
			Values: []float64{1.5, 2.0, 2.5, 3.0},
			Get:    func(g *Generator) float64 { return g.Noise.Attenuation },
			Set:    func(g *Generator, v float64) { g.Noise.Attenuation = v },
		},
		{
			Name:   "thresholds.deep_water",
			Values: []float64{2, 4, 8, 15, 25},
			Get:    func(g *Generator) float64 { return g.Thresholds.DeepWater },
			Set: func(g *Generator, v float64) {
				g.Thresholds.DeepWater = v
				g.Thresholds.Raise()
			},
		},
		{
			Name:   "thresholds.grass",
			Values: []float64{30, 38, 45, 55, 65},
			Get:    func(g *Generator) float64 { return g.Thresholds.Grass },
			Set: func(g *Generator, v float64) {
				g.Thresholds.Grass = v
				g.Thresholds.Raise()
			},
		},
		{
			Name:   "thresholds.mountain",
			Values: []float64{60, 70, 77.5, 85, 92},
			Get:    func(g *Generator) float64 { return g.Thresholds.Mountain },
			Set: func(g *Generator, v float64) {
				g.Thresholds.Mountain = v
				g.Thresholds.Raise()
			},
		},
	}
}

// Tune performs a randomized warm-up followed by coarse coordinate descent
// over the specs, evaluating candidates on a bounded worker pool. It
// returns the best settings found, their telemetry, and the improvement
// trace.
func Tune(base Generator, target TerrainTarget, intSpecs []IntSpec, floatSpecs []FloatSpec, passes, workers int) (Generator, BalanceResult, []TuneRecord) {
	if passes <= 0 {
		passes = 1
	}
	if workers <= 0 {
		workers = 1
	}
	base.Log = nil
	base.OnPhase = nil

	current := base
	currentResult := RunBalance(current, target)
	records := []TuneRecord{{
		Pass:      0,
		Parameter: "baseline",
		Result:    currentResult,
		Settings:  current,
	}}

	randomSamples := passes * 8
	if randomSamples < 16 {
		randomSamples = 16
	}
	rng := core.NewRNG(core.SubSeed(base.Seed, "tuner"))
	for i := 0; i < randomSamples; i++ {
		candidate := current
		randomize(&candidate, intSpecs, floatSpecs, rng)
		res := RunBalance(candidate, target)
		if betterBalance(res, currentResult) {
			current = candidate
			currentResult = res
			records = append(records, TuneRecord{
				Pass:      0,
				Parameter: fmt.Sprintf("random#%d", i+1),
				Result:    res,
				Settings:  candidate,
			})
		}
	}

	for pass := 1; pass <= passes; pass++ {
		improved := false

		for _, spec := range intSpecs {
			best, bestResult, changed, rec := evaluateIntSpec(current, currentResult, spec, target, workers, pass)
			if changed {
				current = best
				currentResult = bestResult
				records = append(records, rec...)
				improved = true
			}
		}

		for _, spec := range floatSpecs {
			best, bestResult, changed, rec := evaluateFloatSpec(current, currentResult, spec, target, workers, pass)
			if changed {
				current = best
				currentResult = bestResult
				records = append(records, rec...)
				improved = true
			}
		}

		if !improved {
			break
		}
	}

	return current, currentResult, records
}

func randomize(g *Generator, intSpecs []IntSpec, floatSpecs []FloatSpec, rng *core.RNG) {
	for _, spec := range intSpecs {
		v := spec.Values[rng.IntIn(0, len(spec.Values))]
		if spec.Skip != nil && spec.Skip(g, v) {
			continue
		}
		spec.Set(g, v)
	}
	for _, spec := range floatSpecs {
		spec.Set(g, spec.Values[rng.IntIn(0, len(spec.Values))])
	}
}

func evaluateIntSpec(current Generator, baseline BalanceResult, spec IntSpec, target TerrainTarget, workers, pass int) (Generator, BalanceResult, bool, []TuneRecord) {
	best := current
	bestResult := baseline
	changed := false
	var records []TuneRecord

	type candidate struct {
		result BalanceResult
		valid  bool
	}
	candidates := make([]candidate, len(spec.Values))
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for idx, value := range spec.Values {
		if value == spec.Get(&current) {
			continue
		}
		if spec.Skip != nil && spec.Skip(&current, value) {
			continue
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(i, v int) {
			defer wg.Done()
			g := current
			spec.Set(&g, v)
			candidates[i] = candidate{result: RunBalance(g, target), valid: true}
			<-sem
		}(idx, value)
	}
	wg.Wait()

	for idx, value := range spec.Values {
		cand := candidates[idx]
		if !cand.valid {
			continue
		}
		if betterBalance(cand.result, bestResult) {
			g := current
			spec.Set(&g, value)
			best = g
			bestResult = cand.result
			changed = true
			records = append(records, TuneRecord{
				Pass:      pass,
				Parameter: spec.Name,
				Value:     strconv.Itoa(value),
				Result:    cand.result,
				Settings:  g,
			})
		}
	}
	return best, bestResult, changed, records
}

func evaluateFloatSpec(current Generator, baseline BalanceResult, spec FloatSpec, target TerrainTarget, workers, pass int) (Generator, BalanceResult, bool, []TuneRecord) {
	best := current
	bestResult := baseline
	changed := false
	var records []TuneRecord

	type candidate struct {
		result BalanceResult
		valid  bool
	}
	candidates := make([]candidate, len(spec.Values))
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for idx, value := range spec.Values {
		if almostEqual(value, spec.Get(&current)) {
			continue
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(i int, v float64) {
			defer wg.Done()
			g := current
			spec.Set(&g, v)
			candidates[i] = candidate{result: RunBalance(g, target), valid: true}
			<-sem
		}(idx, value)
	}
	wg.Wait()

	for idx, value := range spec.Values {
		cand := candidates[idx]
		if !cand.valid {
			continue
		}
		if betterBalance(cand.result, bestResult) {
			g := current
			spec.Set(&g, value)
			best = g
			bestResult = cand.result
			changed = true
			records = append(records, TuneRecord{
				Pass:      pass,
				Parameter: spec.Name,
				Value:     fmt.Sprintf("%.3f", value),
				Result:    cand.result,
				Settings:  g,
			})
		}
	}
	return best, bestResult, changed, records
}

// betterBalance prefers successful runs, then lower scores, then more
// walkable ground.
func betterBalance(a, b BalanceResult) bool {
	if a.Failed {
		return false
	}
	if b.Failed {
		return true
	}
	if a.Score != b.Score {
		return a.Score < b.Score
	}
	return a.Walkable > b.Walkable
}

func almostEqual(a, b float64) bool {
	const eps = 1e-6
	return math.Abs(a-b) <= eps
}
