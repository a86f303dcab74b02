package generate

import (
	"fmt"
	"strconv"
	"strings"

	"badlands/internal/core"
)

// Snapshot renders the generator's settings as labeled parameter groups
// for the viewer HUD and tuner reports.
func (g *Generator) Snapshot() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name:    "world",
			Summary: fmt.Sprintf("%dx%d seed %d", g.Size, g.Size, g.Seed),
			Params: []core.Parameter{
				intParam("size", "Size", g.Size, "world side length"),
				{Key: "seed", Label: "Seed", Type: core.ParamTypeInt,
					Value: strconv.FormatInt(g.Seed, 10), Description: "master seed"},
				{Key: "order", Label: "Order", Type: core.ParamTypeString,
					Value: orderString(g.Order), Description: "spawn phase order"},
			},
		},
		{
			Name:    "noise",
			Summary: fmt.Sprintf("%d octaves @ %.2f", g.Noise.Octaves, g.Noise.Frequency),
			Params: []core.Parameter{
				intParam("noise.octaves", "Octaves", g.Noise.Octaves, "ridged octave count"),
				floatParam("noise.frequency", "Frequency", g.Noise.Frequency, "base sampling frequency"),
				floatParam("noise.lacunarity", "Lacunarity", g.Noise.Lacunarity, "per-octave frequency factor"),
				floatParam("noise.persistence", "Persistence", g.Noise.Persistence, "per-octave amplitude factor"),
				floatParam("noise.attenuation", "Attenuation", g.Noise.Attenuation, "ridge weight falloff"),
			},
		},
		{
			Name:    "thresholds",
			Summary: "terrain band percentages",
			Params: []core.Parameter{
				floatParam("thresholds.deep_water", "Deep water", g.Thresholds.DeepWater, "upper bound percentage"),
				floatParam("thresholds.shallow_water", "Shallow water", g.Thresholds.ShallowWater, "upper bound percentage"),
				floatParam("thresholds.sand", "Sand", g.Thresholds.Sand, "upper bound percentage"),
				floatParam("thresholds.grass", "Grass", g.Thresholds.Grass, "upper bound percentage"),
				floatParam("thresholds.hill", "Hill", g.Thresholds.Hill, "upper bound percentage"),
				floatParam("thresholds.mountain", "Mountain", g.Thresholds.Mountain, "upper bound percentage"),
			},
		},
		{
			Name:    "hazards",
			Summary: fmt.Sprintf("%d lava spouts, %d-%d fires", g.Lava.SpawnPoints, g.Fire.Blobs.Start, g.Fire.Blobs.End),
			Params: []core.Parameter{
				intParam("lava.spawn_points", "Lava spouts", g.Lava.SpawnPoints, "eruption count"),
				intParam("lava.flow_end", "Lava flow", g.Lava.FlowRange.End, "max stream hops"),
				intParam("fire.blobs_end", "Fire blobs", g.Fire.Blobs.End, "max fire patches"),
				floatParam("fire.radius_end", "Fire radius", g.Fire.Radius.End, "max patch radius"),
			},
		},
		{
			Name:    "content",
			Summary: fmt.Sprintf("%d garbage, %d coins", g.Garbage.TotalQuantity, g.Coins.SpawnPoints),
			Params: []core.Parameter{
				intParam("trees.blobs_end", "Forests", g.Trees.Blobs.End, "max forest patches"),
				intParam("garbage.total", "Garbage", g.Garbage.TotalQuantity, "total garbage quantity"),
				intParam("banks.count", "Banks", g.Banks.SpawnPoints, "bank count"),
				intParam("coins.count", "Coins", g.Coins.SpawnPoints, "coin stack count"),
				intParam("rocks.max", "Rocks", g.Rocks.MaxRocks, "rock budget"),
			},
		},
	}}
}

// Controls lists the parameters the viewer HUD may adjust. Keys match the
// configuration keys, so an adjustment can be applied with config.Set and a
// regeneration.
func (g *Generator) Controls() []core.ParameterControl {
	return []core.ParameterControl{
		intControl("noise.octaves", "Octaves", 1, 1, 16),
		floatControl("noise.frequency", "Frequency", 0.1, 0.1, 8),
		floatControl("noise.persistence", "Persistence", 0.05, 0.05, 4),
		floatControl("noise.attenuation", "Attenuation", 0.1, 0.5, 8),
		floatControl("thresholds.deep_water", "Deep water", 1, 0, 100),
		floatControl("thresholds.grass", "Grass", 1, 0, 100),
		floatControl("thresholds.mountain", "Mountain", 1, 0, 100),
		intControl("streets.slices", "Streets", 1, 0, 32),
		intControl("lava.spawn_points", "Lava spouts", 5, 0, 400),
		intControl("fire.blobs_end", "Fire blobs", 1, 0, 64),
		intControl("trees.blobs_end", "Forests", 2, 0, 128),
		intControl("garbage.total", "Garbage", 50, 0, 10000),
		intControl("coins.count", "Coins", 5, 0, 500),
	}
}

func intControl(key, label string, step, min, max float64) core.ParameterControl {
	return core.ParameterControl{Key: key, Label: label, Type: core.ParamTypeInt,
		Step: step, Min: min, Max: max, HasMin: true, HasMax: true}
}

func floatControl(key, label string, step, min, max float64) core.ParameterControl {
	return core.ParameterControl{Key: key, Label: label, Type: core.ParamTypeFloat,
		Step: step, Min: min, Max: max, HasMin: true, HasMax: true}
}

func intParam(key, label string, v int, desc string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt,
		Value: strconv.Itoa(v), Description: desc}
}

func floatParam(key, label string, v float64, desc string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat,
		Value: strconv.FormatFloat(v, 'g', -1, 64), Description: desc}
}

func orderString(order []Phase) string {
	parts := make([]string, len(order))
	for i, p := range order {
		parts[i] = string(p)
	}
	return strings.Join(parts, ",")
}
