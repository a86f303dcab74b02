// Package streets lays a road network over classified terrain. Streets
// trace the boundaries of a Voronoi partition seeded by local elevation
// maxima, so roads follow the valleys between high points.
package streets

import (
	"errors"
	"fmt"
	"sort"

	"badlands/internal/elevation"
	"badlands/internal/world"
)

// ErrTooFewPeaks reports that the elevation field produced fewer than the
// three peaks a planar Voronoi diagram needs.
var ErrTooFewPeaks = errors.New("streets: too few peaks")

// Settings control peak selection for the road network.
type Settings struct {
	// Slices is the per-axis count of rectangular slices the field is cut
	// into when hunting for peaks.
	Slices int `json:"slices" yaml:"slices"`
	// Cutoff is the elevation a slice maximum must exceed to count as a
	// peak.
	Cutoff float64 `json:"cutoff" yaml:"cutoff"`
}

// DefaultSettings returns the standard street layout parameters.
func DefaultSettings() Settings {
	return Settings{Slices: 10, Cutoff: 0}
}

// Paths computes the rasterized street paths for the field: slice peaks,
// boundary-band merge, Voronoi cell edges, then 4-connected rasterization.
// Paths are returned in a deterministic order.
func Paths(f *elevation.Field, s Settings) ([][]world.Coordinate, error) {
	peaks := slicePeaks(f, s.Slices, s.Cutoff)
	peaks = mergeNearPeaks(peaks, f.Size(), s.Slices)
	if len(peaks) < 3 {
		return nil, fmt.Errorf("%w: %d peaks above cutoff %v", ErrTooFewPeaks, len(peaks), s.Cutoff)
	}

	edges := cellEdges(peaks, f.Size())
	keys := make([]edgeKey, 0, len(edges))
	for k := range edges {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].a != keys[j].a {
			return keys[i].a.Less(keys[j].a)
		}
		return keys[i].b.Less(keys[j].b)
	})

	paths := make([][]world.Coordinate, 0, len(keys))
	for _, k := range keys {
		paths = append(paths, connectPoints(k.a, k.b))
	}
	return paths, nil
}

// Spawn builds the road network and marks every path tile as street
// terrain. Content is left untouched.
func Spawn(m world.TileMatrix, f *elevation.Field, s Settings) error {
	paths, err := Paths(f, s)
	if err != nil {
		return err
	}
	for _, path := range paths {
		for _, c := range path {
			if m.InBounds(c) {
				m[c.Row][c.Col].Type = world.Street
			}
		}
	}
	return nil
}
