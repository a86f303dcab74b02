// Package config holds the serializable settings of a generation run and
// the dotted-key override surface shared by the command-line tools.
package config

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"

	"badlands/internal/blob"
	"badlands/internal/elevation"
	"badlands/internal/garbage"
	"badlands/internal/generate"
	"badlands/internal/lava"
	"badlands/internal/scatter"
	"badlands/internal/streets"
	"badlands/internal/terrain"
)

// DefaultSize is the world side length used when nothing else is given.
const DefaultSize = 256

// DefaultSeed is the seed used when nothing else is given.
const DefaultSeed = 1337

// Render controls the optional image export.
type Render struct {
	Scale int    `json:"scale" yaml:"scale"`
	PNG   string `json:"png,omitempty" yaml:"png,omitempty"`
}

// Config is the full configuration of one generation run. Field defaults
// are proportional to Size, so build it through Default or Load rather
// than from the zero value.
type Config struct {
	Size     int      `json:"size" yaml:"size"`
	Seed     int64    `json:"seed" yaml:"seed"`
	Preset   string   `json:"preset,omitempty" yaml:"preset,omitempty"`
	Order    []string `json:"order" yaml:"order"`
	LogLevel string   `json:"log_level" yaml:"log_level"`

	Noise      elevation.Settings    `json:"noise" yaml:"noise"`
	Thresholds terrain.Thresholds    `json:"thresholds" yaml:"thresholds"`
	Streets    streets.Settings      `json:"streets" yaml:"streets"`
	Lava       lava.Settings         `json:"lava" yaml:"lava"`
	Fire       blob.Settings         `json:"fire" yaml:"fire"`
	Trees      blob.Settings         `json:"trees" yaml:"trees"`
	Garbage    garbage.Settings      `json:"garbage" yaml:"garbage"`
	Banks      scatter.CountSettings `json:"banks" yaml:"banks"`
	Bins       scatter.CountSettings `json:"bins" yaml:"bins"`
	Crates     scatter.CountSettings `json:"crates" yaml:"crates"`
	Coins      scatter.CountSettings `json:"coins" yaml:"coins"`
	Rocks      scatter.RockSettings  `json:"rocks" yaml:"rocks"`

	Render Render `json:"render" yaml:"render"`
}

// Default returns the standard configuration for the given world size.
func Default(size int, seed int64) *Config {
	g := generate.Default(size, seed)
	c := &Config{
		Size:     size,
		Seed:     seed,
		Order:    phaseNames(g.Order),
		LogLevel: "info",
		Render:   Render{Scale: 3},
	}
	c.adopt(g)
	return c
}

// Load reads a YAML config file. Values start from the defaults for the
// file's size and seed, a preset named in the file is applied next, and
// explicit file values win over both. Unknown fields are an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var probe struct {
		Size   *int   `yaml:"size"`
		Seed   *int64 `yaml:"seed"`
		Preset string `yaml:"preset"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	size := DefaultSize
	if probe.Size != nil {
		size = *probe.Size
	}
	seed := int64(DefaultSeed)
	if probe.Seed != nil {
		seed = *probe.Seed
	}

	c := Default(size, seed)
	if probe.Preset != "" {
		if err := c.applyPreset(probe.Preset); err != nil {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	if err := yaml.UnmarshalStrict(data, c); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return c, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// Generator builds the generator described by this configuration.
func (c *Config) Generator() (*generate.Generator, error) {
	order, err := generate.ParseOrder(strings.Join(c.Order, ","))
	if err != nil {
		return nil, err
	}
	g := generate.Default(c.Size, c.Seed)
	c.fill(g)
	g.Order = order
	return g, nil
}

// Set applies a single dotted-key override, e.g. "thresholds.grass=50"
// split into its key and value.
func (c *Config) Set(key, value string) error {
	fn, ok := setters[key]
	if !ok {
		return fmt.Errorf("config: unknown key %q, valid keys: %s", key, strings.Join(Keys(), ", "))
	}
	if err := fn(c, value); err != nil {
		return fmt.Errorf("config: key %q: %w", key, err)
	}
	return nil
}

// ApplyOverrides applies key=value pairs in order, later pairs winning.
func (c *Config) ApplyOverrides(pairs []string) error {
	for _, kv := range pairs {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("config: override %q is not key=value", kv)
		}
		if err := c.Set(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])); err != nil {
			return err
		}
	}
	return nil
}

// Keys returns every override key in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(setters))
	for k := range setters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// fill copies the settings fields onto a generator. Size, seed, and order
// are handled by the callers.
func (c *Config) fill(g *generate.Generator) {
	g.Size = c.Size
	g.Seed = c.Seed
	g.Noise = c.Noise
	g.Thresholds = c.Thresholds
	g.Streets = c.Streets
	g.Lava = c.Lava
	g.Fire = c.Fire
	g.Trees = c.Trees
	g.Garbage = c.Garbage
	g.Banks = c.Banks
	g.Bins = c.Bins
	g.Crates = c.Crates
	g.Coins = c.Coins
	g.Rocks = c.Rocks
}

// adopt copies the settings fields back from a generator.
func (c *Config) adopt(g *generate.Generator) {
	c.Noise = g.Noise
	c.Thresholds = g.Thresholds
	c.Streets = g.Streets
	c.Lava = g.Lava
	c.Fire = g.Fire
	c.Trees = g.Trees
	c.Garbage = g.Garbage
	c.Banks = g.Banks
	c.Bins = g.Bins
	c.Crates = g.Crates
	c.Coins = g.Coins
	c.Rocks = g.Rocks
}

func (c *Config) applyPreset(name string) error {
	g := generate.Default(c.Size, c.Seed)
	c.fill(g)
	if err := generate.ApplyPreset(g, name); err != nil {
		return err
	}
	c.adopt(g)
	c.Preset = name
	return nil
}

func phaseNames(order []generate.Phase) []string {
	names := make([]string, len(order))
	for i, p := range order {
		names[i] = string(p)
	}
	return names
}

var setters = map[string]func(*Config, string) error{
	"size":      func(c *Config, v string) error { return setInt(&c.Size, v) },
	"seed":      func(c *Config, v string) error { return setInt64(&c.Seed, v) },
	"log_level": func(c *Config, v string) error { c.LogLevel = v; return nil },
	"preset":    func(c *Config, v string) error { return c.applyPreset(v) },
	"order": func(c *Config, v string) error {
		order, err := generate.ParseOrder(v)
		if err != nil {
			return err
		}
		c.Order = phaseNames(order)
		return nil
	},

	"noise.seed":        func(c *Config, v string) error { return setInt64(&c.Noise.Seed, v) },
	"noise.octaves":     func(c *Config, v string) error { return setInt(&c.Noise.Octaves, v) },
	"noise.frequency":   func(c *Config, v string) error { return setFloat(&c.Noise.Frequency, v) },
	"noise.lacunarity":  func(c *Config, v string) error { return setFloat(&c.Noise.Lacunarity, v) },
	"noise.persistence": func(c *Config, v string) error { return setFloat(&c.Noise.Persistence, v) },
	"noise.attenuation": func(c *Config, v string) error { return setFloat(&c.Noise.Attenuation, v) },

	"thresholds.deep_water":    func(c *Config, v string) error { return setFloat(&c.Thresholds.DeepWater, v) },
	"thresholds.shallow_water": func(c *Config, v string) error { return setFloat(&c.Thresholds.ShallowWater, v) },
	"thresholds.sand":          func(c *Config, v string) error { return setFloat(&c.Thresholds.Sand, v) },
	"thresholds.grass":         func(c *Config, v string) error { return setFloat(&c.Thresholds.Grass, v) },
	"thresholds.hill":          func(c *Config, v string) error { return setFloat(&c.Thresholds.Hill, v) },
	"thresholds.mountain":      func(c *Config, v string) error { return setFloat(&c.Thresholds.Mountain, v) },

	"streets.slices": func(c *Config, v string) error { return setInt(&c.Streets.Slices, v) },
	"streets.cutoff": func(c *Config, v string) error { return setFloat(&c.Streets.Cutoff, v) },

	"lava.spawn_points": func(c *Config, v string) error { return setInt(&c.Lava.SpawnPoints, v) },
	"lava.flow_start":   func(c *Config, v string) error { return setInt(&c.Lava.FlowRange.Start, v) },
	"lava.flow_end":     func(c *Config, v string) error { return setInt(&c.Lava.FlowRange.End, v) },

	"fire.tiles_start":  func(c *Config, v string) error { return setInt(&c.Fire.Tiles.Start, v) },
	"fire.tiles_end":    func(c *Config, v string) error { return setInt(&c.Fire.Tiles.End, v) },
	"fire.blobs_start":  func(c *Config, v string) error { return setInt(&c.Fire.Blobs.Start, v) },
	"fire.blobs_end":    func(c *Config, v string) error { return setInt(&c.Fire.Blobs.End, v) },
	"fire.radius_start": func(c *Config, v string) error { return setFloat(&c.Fire.Radius.Start, v) },
	"fire.radius_end":   func(c *Config, v string) error { return setFloat(&c.Fire.Radius.End, v) },
	"fire.drop_chance":  func(c *Config, v string) error { return setFloat(&c.Fire.DropChance, v) },

	"trees.tiles_start":  func(c *Config, v string) error { return setInt(&c.Trees.Tiles.Start, v) },
	"trees.tiles_end":    func(c *Config, v string) error { return setInt(&c.Trees.Tiles.End, v) },
	"trees.blobs_start":  func(c *Config, v string) error { return setInt(&c.Trees.Blobs.Start, v) },
	"trees.blobs_end":    func(c *Config, v string) error { return setInt(&c.Trees.Blobs.End, v) },
	"trees.radius_start": func(c *Config, v string) error { return setFloat(&c.Trees.Radius.Start, v) },
	"trees.radius_end":   func(c *Config, v string) error { return setFloat(&c.Trees.Radius.End, v) },
	"trees.drop_chance":  func(c *Config, v string) error { return setFloat(&c.Trees.DropChance, v) },

	"garbage.total":          func(c *Config, v string) error { return setInt(&c.Garbage.TotalQuantity, v) },
	"garbage.pile_start":     func(c *Config, v string) error { return setInt(&c.Garbage.PileSize.Start, v) },
	"garbage.pile_end":       func(c *Config, v string) error { return setInt(&c.Garbage.PileSize.End, v) },
	"garbage.per_tile_start": func(c *Config, v string) error { return setInt(&c.Garbage.PerTile.Start, v) },
	"garbage.per_tile_end":   func(c *Config, v string) error { return setInt(&c.Garbage.PerTile.End, v) },
	"garbage.probability":    func(c *Config, v string) error { return setFloat(&c.Garbage.SpawnProbability, v) },
	"garbage.step":           func(c *Config, v string) error { return setFloat(&c.Garbage.ProbabilityStep, v) },

	"banks.count":  func(c *Config, v string) error { return setInt(&c.Banks.SpawnPoints, v) },
	"bins.count":   func(c *Config, v string) error { return setInt(&c.Bins.SpawnPoints, v) },
	"crates.count": func(c *Config, v string) error { return setInt(&c.Crates.SpawnPoints, v) },
	"coins.count":  func(c *Config, v string) error { return setInt(&c.Coins.SpawnPoints, v) },
	"rocks.max":    func(c *Config, v string) error { return setInt(&c.Rocks.MaxRocks, v) },

	"render.scale": func(c *Config, v string) error { return setInt(&c.Render.Scale, v) },
	"render.png":   func(c *Config, v string) error { c.Render.PNG = v; return nil },
}

func setInt(dst *int, v string) error {
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return err
	}
	*dst = parsed
	return nil
}

func setInt64(dst *int64, v string) error {
	parsed, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return err
	}
	*dst = parsed
	return nil
}

func setFloat(dst *float64, v string) error {
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return err
	}
	*dst = parsed
	return nil
}
