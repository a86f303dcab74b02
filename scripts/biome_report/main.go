package main

import (
	"fmt"

	"badlands/internal/config"
	"badlands/internal/generate"
	"badlands/internal/world"
)

type presetReport struct {
	name     string
	shares   map[world.TileType]float64
	contents map[world.ContentKind]float64
	walkable float64
	runs     int
	failed   int
}

func main() {
	const size = 200
	seeds := []int64{1, 1337, 4242, 90210, 777777}

	fmt.Printf("averaging %d seeds per preset on %dx%d worlds\n", len(seeds), size, size)
	for _, name := range generate.PresetNames() {
		rep := evaluate(name, size, seeds)
		fmt.Printf("\n%s (%d runs, %d failed, walkable %.1f%%)\n", rep.name, rep.runs, rep.failed, rep.walkable*100)
		fmt.Printf("  terrain: ")
		for t := world.TileType(0); t < world.TileTypeCount; t++ {
			if share, ok := rep.shares[t]; ok && share > 0 {
				fmt.Printf("%s=%.1f%% ", t, share*100)
			}
		}
		fmt.Printf("\n  content: ")
		for k := world.ContentNone + 1; k < world.ContentKindCount; k++ {
			if share, ok := rep.contents[k]; ok && share > 0 {
				fmt.Printf("%s=%.2f%% ", k, share*100)
			}
		}
		fmt.Println()
	}
}

func evaluate(preset string, size int, seeds []int64) presetReport {
	rep := presetReport{
		name:     preset,
		shares:   map[world.TileType]float64{},
		contents: map[world.ContentKind]float64{},
	}
	for _, seed := range seeds {
		cfg := config.Default(size, seed)
		if err := cfg.Set("preset", preset); err != nil {
			rep.failed++
			continue
		}
		gen, err := cfg.Generator()
		if err != nil {
			rep.failed++
			continue
		}
		res, err := gen.Generate()
		if err != nil {
			rep.failed++
			continue
		}
		if err := world.Check(res.World); err != nil {
			fmt.Printf("  %s seed %d violates invariants: %v\n", preset, seed, err)
		}
		for t, s := range world.TerrainPercentage(res.World) {
			rep.shares[t] += s
			if t.Walkable() {
				rep.walkable += s
			}
		}
		for k, s := range world.ContentPercentage(res.World) {
			rep.contents[k] += s
		}
		rep.runs++
	}
	if rep.runs > 0 {
		for t := range rep.shares {
			rep.shares[t] /= float64(rep.runs)
		}
		for k := range rep.contents {
			rep.contents[k] /= float64(rep.runs)
		}
		rep.walkable /= float64(rep.runs)
	}
	return rep
}
