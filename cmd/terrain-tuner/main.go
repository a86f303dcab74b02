package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"badlands/internal/config"
	"badlands/internal/generate"
	"badlands/internal/world"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	size := flag.Int("size", 160, "world side length for tuning runs")
	seed := flag.Int64("seed", 1337, "seed used for deterministic worlds")
	passes := flag.Int("passes", 3, "coordinate-descent passes to execute")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel candidate evaluations")
	manualOnly := flag.Bool("manual", false, "skip tuning and only evaluate provided overrides")
	var overrides kvList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	var targets kvList
	flag.Var(&targets, "target", "terrain share target in type=fraction form (repeatable)")
	flag.Parse()

	cfg := config.Default(*size, *seed)
	if err := cfg.ApplyOverrides(overrides); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	base, err := cfg.Generator()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	target, err := parseTargets(targets)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	baseline := generate.RunBalance(*base, target)
	fmt.Printf("Baseline: score %.4f, walkable %.1f%%\n", baseline.Score, baseline.Walkable*100)

	if *manualOnly {
		fmt.Println("Manual evaluation requested; skipping sweep.")
		printParams(base)
		return
	}

	tuned, result, trace := generate.Tune(*base, target,
		generate.DefaultIntSpecs(), generate.DefaultFloatSpecs(), *passes, *workers)

	fmt.Printf("\nBest found: score %.4f, walkable %.1f%%\n", result.Score, result.Walkable*100)
	printParams(&tuned)

	if len(trace) > 1 {
		fmt.Println("\nImprovements:")
		for _, rec := range trace[1:] {
			fmt.Printf("  pass %d: %s=%s -> score=%.4f walkable=%.1f%%\n",
				rec.Pass, rec.Parameter, rec.Value, rec.Result.Score, rec.Result.Walkable*100)
		}
	}
}

// parseTargets builds the terrain target from type=fraction pairs, starting
// from the default mix.
func parseTargets(pairs kvList) (generate.TerrainTarget, error) {
	target := generate.DefaultTarget()
	for _, kv := range pairs {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("malformed target %q, want type=fraction", kv)
		}
		name := strings.TrimSpace(parts[0])
		tile, ok := tileByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown terrain type %q", name)
		}
		share, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil || share < 0 || share > 1 {
			return nil, fmt.Errorf("target share for %s must be a fraction in [0,1]", name)
		}
		target[tile] = share
	}
	return target, nil
}

func tileByName(name string) (world.TileType, bool) {
	for t := world.TileType(0); t < world.TileTypeCount; t++ {
		if t.String() == name {
			return t, true
		}
	}
	return 0, false
}

func printParams(g *generate.Generator) {
	fmt.Println("Parameters:")
	fmt.Printf("  noise.octaves=%d\n", g.Noise.Octaves)
	fmt.Printf("  noise.frequency=%.3f\n", g.Noise.Frequency)
	fmt.Printf("  noise.persistence=%.3f\n", g.Noise.Persistence)
	fmt.Printf("  noise.attenuation=%.3f\n", g.Noise.Attenuation)
	fmt.Printf("  thresholds.deep_water=%.1f\n", g.Thresholds.DeepWater)
	fmt.Printf("  thresholds.shallow_water=%.1f\n", g.Thresholds.ShallowWater)
	fmt.Printf("  thresholds.sand=%.1f\n", g.Thresholds.Sand)
	fmt.Printf("  thresholds.grass=%.1f\n", g.Thresholds.Grass)
	fmt.Printf("  thresholds.hill=%.1f\n", g.Thresholds.Hill)
	fmt.Printf("  thresholds.mountain=%.1f\n", g.Thresholds.Mountain)
	fmt.Printf("  streets.slices=%d\n", g.Streets.Slices)
	fmt.Printf("  lava.spawn_points=%d\n", g.Lava.SpawnPoints)
}
