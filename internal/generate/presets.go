package generate

import (
	"fmt"
	"sort"

	"badlands/internal/world"
)

// Preset is a named terrain style applied on top of the defaults.
type Preset struct {
	Name        string
	Description string
	apply       func(*Generator)
}

var presets = map[string]Preset{
	"default": {
		Name:        "default",
		Description: "balanced mixed terrain",
		apply:       func(*Generator) {},
	},
	"archipelago": {
		Name:        "archipelago",
		Description: "island chains in deep water, little lava",
		apply: func(g *Generator) {
			g.Thresholds.DeepWater = 25
			g.Thresholds.ShallowWater = 38
			g.Thresholds.Sand = 45
			g.Thresholds.Grass = 60
			g.Thresholds.Hill = 75
			g.Thresholds.Mountain = 85
			g.Lava.SpawnPoints /= 4
			g.Garbage.TotalQuantity /= 2
		},
	},
	"highlands": {
		Name:        "highlands",
		Description: "rocky uplands with broad hill and snow bands",
		apply: func(g *Generator) {
			g.Thresholds.DeepWater = 2
			g.Thresholds.ShallowWater = 5
			g.Thresholds.Sand = 9
			g.Thresholds.Grass = 30
			g.Thresholds.Hill = 55
			g.Thresholds.Mountain = 75
			g.Rocks.Probabilities[world.Hill] = 0.55
			g.Rocks.Probabilities[world.Mountain] = 0.6
			g.Rocks.Probabilities[world.Snow] = 0.8
		},
	},
	"volcanic": {
		Name:        "volcanic",
		Description: "long lava flows and frequent fires",
		apply: func(g *Generator) {
			g.Thresholds.Grass = 35
			g.Thresholds.Hill = 55
			g.Thresholds.Mountain = 70
			g.Lava.SpawnPoints *= 4
			g.Lava.FlowRange.End *= 2
			g.Fire.Blobs.End *= 2
			g.Fire.Tiles.End *= 2
		},
	},
}

// Presets returns the registered presets sorted by name.
func Presets() []Preset {
	out := make([]Preset, 0, len(presets))
	for _, p := range presets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// PresetNames returns the sorted preset names.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyPreset mutates g into the named style.
func ApplyPreset(g *Generator, name string) error {
	p, ok := presets[name]
	if !ok {
		return fmt.Errorf("generate: unknown preset %q, valid presets are %v", name, PresetNames())
	}
	p.apply(g)
	return nil
}
