package terrain

import (
	"badlands/internal/elevation"
	"badlands/internal/world"
)

// Thresholds are the ascending percentage cut points between terrain types.
// Snow is the implicit remainder above the mountain threshold.
type Thresholds struct {
	DeepWater    float64 `json:"deep_water" yaml:"deep_water"`
	ShallowWater float64 `json:"shallow_water" yaml:"shallow_water"`
	Sand         float64 `json:"sand" yaml:"sand"`
	Grass        float64 `json:"grass" yaml:"grass"`
	Hill         float64 `json:"hill" yaml:"hill"`
	Mountain     float64 `json:"mountain" yaml:"mountain"`
}

// DefaultThresholds returns the standard terrain split.
func DefaultThresholds() Thresholds {
	return Thresholds{
		DeepWater:    4,
		ShallowWater: 10,
		Sand:         15,
		Grass:        45,
		Hill:         65,
		Mountain:     77.5,
	}
}

// Raise pushes each threshold up to at least its predecessor, restoring
// the non-decreasing order Classify expects after a single value changed.
func (t *Thresholds) Raise() {
	if t.ShallowWater < t.DeepWater {
		t.ShallowWater = t.DeepWater
	}
	if t.Sand < t.ShallowWater {
		t.Sand = t.ShallowWater
	}
	if t.Grass < t.Sand {
		t.Grass = t.Sand
	}
	if t.Hill < t.Grass {
		t.Hill = t.Grass
	}
	if t.Mountain < t.Hill {
		t.Mountain = t.Hill
	}
}

// percentage maps a percentage p into the observed [min, max] interval.
func percentage(p, min, max float64) float64 {
	return p/100*(max-min) + min
}

// Classify assigns every tile the terrain for its elevation value: the first
// threshold the value is strictly below wins, snow otherwise. All tiles are
// reset to empty content. Thresholds are expected to be non-decreasing; the
// classification of a decreasing set is unspecified, not an error.
func Classify(m world.TileMatrix, f *elevation.Field, th Thresholds) {
	min, max := f.MinMax()
	deepWater := percentage(th.DeepWater, min, max)
	shallowWater := percentage(th.ShallowWater, min, max)
	sand := percentage(th.Sand, min, max)
	grass := percentage(th.Grass, min, max)
	hill := percentage(th.Hill, min, max)
	mountain := percentage(th.Mountain, min, max)

	for row := 0; row < f.Size(); row++ {
		for col := 0; col < f.Size(); col++ {
			v := f.At(row, col)
			var tt world.TileType
			switch {
			case v < deepWater:
				tt = world.DeepWater
			case v < shallowWater:
				tt = world.ShallowWater
			case v < sand:
				tt = world.Sand
			case v < grass:
				tt = world.Grass
			case v < hill:
				tt = world.Hill
			case v < mountain:
				tt = world.Mountain
			default:
				tt = world.Snow
			}
			m[row][col] = world.Tile{Type: tt}
		}
	}
}
