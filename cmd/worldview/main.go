//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"badlands/internal/app"
	"badlands/internal/config"
	"badlands/internal/generate"
	"badlands/internal/logger"

	"github.com/hajimehoshi/ebiten/v2"
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
	seed := flag.Int64("seed", config.DefaultSeed, "master seed")
	preset := flag.String("preset", "", "terrain preset ("+strings.Join(generate.PresetNames(), ", ")+")")
	cfgPath := flag.String("config", "", "YAML configuration file")
	scale := flag.Int("scale", 0, "pixels per tile (overrides config)")
	level := flag.String("log", "info", "log level (debug, info, warn, error)")
	var overrides kvList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	log := logger.New(*level)

	var cfg *config.Config
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			log.Fatalf("%v", err)
		}
		cfg = loaded
	} else {
		cfg = config.Default(*size, *seed)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "size":
			cfg.Size = *size
		case "seed":
			if cfg.Noise.Seed == cfg.Seed {
				cfg.Noise.Seed = *seed
			}
			cfg.Seed = *seed
		}
	})
	if *preset != "" {
		if err := cfg.Set("preset", *preset); err != nil {
			log.Fatalf("%v", err)
		}
	}
	if err := cfg.ApplyOverrides(overrides); err != nil {
		log.Fatalf("%v", err)
	}
	if *scale > 0 {
		cfg.Render.Scale = *scale
	}
	if cfg.Render.Scale < 1 {
		cfg.Render.Scale = 1
	}

	game, err := app.New(cfg, log)
	if err != nil {
		log.Fatalf("%v", err)
	}

	view := cfg.Size * cfg.Render.Scale
	ebiten.SetWindowTitle(fmt.Sprintf("badlands — %dx%d seed %d", cfg.Size, cfg.Size, cfg.Seed))
	ebiten.SetWindowSize(view+app.HUDWidth, view)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("%v", err)
	}
}
