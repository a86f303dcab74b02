package main

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"badlands/internal/config"
	"badlands/internal/generate"
	"badlands/internal/logger"
	"badlands/internal/render"
	"badlands/internal/world"
	"badlands/internal/worldfile"
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
	size := flag.Int("size", config.DefaultSize, "world side length in tiles")
	seed := flag.Int64("seed", config.DefaultSeed, "master seed (0 picks one from the clock)")
	preset := flag.String("preset", "", "terrain preset ("+strings.Join(generate.PresetNames(), ", ")+")")
	cfgPath := flag.String("config", "", "YAML configuration file")
	pngPath := flag.String("png", "", "write the world as a PNG image")
	scale := flag.Int("scale", 0, "pixels per tile for PNG output (overrides config)")
	worldPath := flag.String("world", "", "write the world as a compressed world file")
	check := flag.Bool("check", false, "verify content invariants after generation")
	quiet := flag.Bool("quiet", false, "suppress the generation report")
	level := flag.String("log", "info", "log level (debug, info, warn, error)")
	var overrides kvList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	log := logger.New(*level)

	cfg, err := buildConfig(*cfgPath, *size, *seed, *preset, overrides)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if *pngPath != "" {
		cfg.Render.PNG = *pngPath
	}
	if *scale > 0 {
		cfg.Render.Scale = *scale
	}
	if cfg.Seed == 0 {
		reseed(cfg, time.Now().UnixNano())
	}

	gen, err := cfg.Generator()
	if err != nil {
		log.Fatalf("%v", err)
	}
	gen.Log = log

	res, err := gen.Generate()
	if err != nil {
		log.Fatalf("generate: %v", err)
	}

	if *check {
		if err := world.Check(res.World); err != nil {
			log.Fatalf("invariant check: %v", err)
		}
		log.Infof("invariant check passed")
	}
	if !*quiet {
		printReport(res)
	}
	if cfg.Render.PNG != "" {
		if err := render.WritePNG(cfg.Render.PNG, res.World, res.Spawn, cfg.Render.Scale); err != nil {
			log.Fatalf("write png: %v", err)
		}
		log.Infof("wrote %s", cfg.Render.PNG)
	}
	if *worldPath != "" {
		if err := worldfile.Save(*worldPath, res); err != nil {
			log.Fatalf("write world: %v", err)
		}
		log.Infof("wrote %s", *worldPath)
	}
}

// buildConfig resolves the precedence chain: defaults, then the config file,
// then explicit -size/-seed flags, then -preset, then -set overrides.
func buildConfig(path string, size int, seed int64, preset string, overrides kvList) (*config.Config, error) {
	var cfg *config.Config
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = config.Default(size, seed)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "size":
			cfg.Size = size
		case "seed":
			reseed(cfg, seed)
		}
	})
	if preset != "" {
		if err := cfg.Set("preset", preset); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyOverrides(overrides); err != nil {
		return nil, err
	}
	return cfg, nil
}

// reseed moves the master seed, dragging the noise seed along unless the
// configuration decoupled it.
func reseed(cfg *config.Config, seed int64) {
	if cfg.Noise.Seed == cfg.Seed {
		cfg.Noise.Seed = seed
	}
	cfg.Seed = seed
}

func printReport(res *generate.Result) {
	size := res.World.Size()
	fmt.Printf("World %dx%d, seed %d, spawn at (%d,%d)\n", size, size, res.Seed, res.Spawn.Row, res.Spawn.Col)

	fmt.Println("\nPhases:")
	var total time.Duration
	for _, t := range res.Timings {
		total += t.Elapsed
		fmt.Printf("  %-12s %10s\n", t.Name, t.Elapsed.Round(time.Microsecond))
	}
	fmt.Printf("  %-12s %10s\n", "total", total.Round(time.Microsecond))

	fmt.Println("\nTerrain:")
	terrainShares := world.TerrainPercentage(res.World)
	for t := world.TileType(0); t < world.TileTypeCount; t++ {
		if share, ok := terrainShares[t]; ok && share > 0 {
			fmt.Printf("  %-13s %6.2f%%\n", t, share*100)
		}
	}

	fmt.Println("\nContents:")
	contentShares := world.ContentPercentage(res.World)
	for k := world.ContentNone + 1; k < world.ContentKindCount; k++ {
		if share, ok := contentShares[k]; ok && share > 0 {
			fmt.Printf("  %-13s %6.2f%%\n", k, share*100)
		}
	}
}
