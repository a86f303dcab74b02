// Package blob stamps organically shaped content regions. A blob is a
// noise-perturbed circle: its border is sampled once per degree, the
// interior is flood-filled, and every surviving tile receives the
// content. Fire patches and forests are both placed this way.
package blob

import (
	"errors"
	"fmt"
	"math"

	perlin "github.com/aquilax/go-perlin"

	"badlands/internal/world"
	"badlands/pkg/core"
)

// ErrInfeasible reports budget combinations no blob sequence can satisfy.
var ErrInfeasible = errors.New("blob: infeasible settings")

// Settings bound one blob campaign.
type Settings struct {
	// Tiles is the cumulative tile budget across all blobs of the campaign.
	Tiles world.Range `json:"tiles" yaml:"tiles"`
	// Blobs bounds how many blobs are stamped.
	Blobs world.Range `json:"blobs" yaml:"blobs"`
	// Radius bounds the nominal radius drawn for each blob.
	Radius world.FloatRange `json:"radius" yaml:"radius"`
	// DropChance removes each filled point with this probability, thinning
	// the region into a sparser patch.
	DropChance float64 `json:"drop_chance" yaml:"drop_chance"`
}

// Validate rejects budgets that cannot work out: the smallest possible
// campaign must fit inside the tile budget, and the largest possible
// campaign must be able to reach its minimum.
func (s Settings) Validate() error {
	if minTotal := int(math.Floor(s.Radius.Start)) * s.Blobs.Start; minTotal > s.Tiles.End {
		return fmt.Errorf("%w: %d blobs of radius %v need at least %d tiles, budget is %d",
			ErrInfeasible, s.Blobs.Start, s.Radius.Start, minTotal, s.Tiles.End)
	}
	if maxTotal := int(math.Ceil(s.Radius.End)) * s.Blobs.End; maxTotal < s.Tiles.Start {
		return fmt.Errorf("%w: %d blobs of radius %v yield at most %d tiles, minimum is %d",
			ErrInfeasible, s.Blobs.End, s.Radius.End, maxTotal, s.Tiles.Start)
	}
	return nil
}

// Spawn stamps blobs of content until the tile or blob budget runs out.
// A blob that would overshoot the remaining tile budget is discarded
// whole and ends the campaign; there is no partial placement.
func Spawn(m world.TileMatrix, s Settings, content world.Content, rng *core.RNG) error {
	if err := s.Validate(); err != nil {
		return err
	}
	tilesLeft := s.Tiles.End
	blobsLeft := s.Blobs.End
	for {
		variation := rng.FloatIn(0.075, 0.125)
		radius := rng.FloatIn(s.Radius.Start, s.Radius.End)
		points := build(m, radius, variation, s.DropChance, content.Kind, rng)
		if len(points) > tilesLeft || blobsLeft < 1 {
			return nil
		}
		tilesLeft -= len(points)
		blobsLeft--
		for _, p := range points {
			m[p.Row][p.Col].Content = content
		}
	}
}

// build generates one blob and returns the tiles it may stamp: the border
// and interior of a noise-perturbed circle, thinned by the drop chance,
// restricted to empty tiles whose terrain can hold the content.
func build(m world.TileMatrix, radius, variation, drop float64, kind world.ContentKind, rng *core.RNG) []world.Coordinate {
	size := m.Size()
	// The perturbed radius never exceeds radius + 1, so a center this far
	// from every edge keeps the whole border on the grid.
	margin := int(math.Ceil(radius) + math.Ceil(variation))
	var center world.Coordinate
	center.Col = rng.IntIn(margin, size-margin)
	center.Row = rng.IntIn(margin, size-margin)

	border := borderPoints(center, radius, variation, rng)
	points := fill(center, border)

	if drop > 0 {
		kept := points[:0]
		for _, p := range points {
			if !rng.Chance(drop) {
				kept = append(kept, p)
			}
		}
		points = kept
	}

	// Swap-remove; the stamping order does not matter.
	for i := 0; i < len(points); {
		tile := m[points[i].Row][points[i].Col]
		if !tile.Type.CanHold(kind) || !tile.Content.Empty() {
			points[i] = points[len(points)-1]
			points = points[:len(points)-1]
		} else {
			i++
		}
	}
	return points
}

// borderPoints samples the blob outline once per degree. The nominal
// radius is perturbed by Perlin noise sampled along a unit circle, so the
// outline closes smoothly where 0° meets 360°.
func borderPoints(center world.Coordinate, radius, variation float64, rng *core.RNG) []world.Coordinate {
	noise := perlin.NewPerlin(2, 2, 3, rng.Source().Int64())
	lo := radius * (1 - variation)
	hi := radius * (1 + variation)
	points := make([]world.Coordinate, 0, 361)
	for deg := 0; deg <= 360; deg++ {
		sin, cos := math.Sincos(float64(deg) * math.Pi / 180)
		r := mapRange(noise.Noise2D(cos+1, sin+1), 0, 1, lo, hi)
		points = append(points, world.Coordinate{
			Row: int(float64(center.Row) + sin*r),
			Col: int(float64(center.Col) + cos*r),
		})
	}
	return points
}

// fill flood-fills the border's bounding rectangle from the center with an
// explicit stack. Border cells are pre-visited so the fill cannot leak out,
// and a diagonal step requires both flanking orthogonals to be unvisited,
// so the fill cannot squeeze between two touching border cells. The result
// is every visited cell, border included, in row-major order.
func fill(center world.Coordinate, border []world.Coordinate) []world.Coordinate {
	minRow, maxRow := border[0].Row, border[0].Row
	minCol, maxCol := border[0].Col, border[0].Col
	for _, p := range border[1:] {
		minRow = min(minRow, p.Row)
		maxRow = max(maxRow, p.Row)
		minCol = min(minCol, p.Col)
		maxCol = max(maxCol, p.Col)
	}
	w := maxCol - minCol + 1
	h := maxRow - minRow + 1

	visited := make([][]bool, h)
	for i := range visited {
		visited[i] = make([]bool, w)
	}
	for _, p := range border {
		visited[p.Row-minRow][p.Col-minCol] = true
	}

	start := world.Coordinate{Row: center.Row - minRow, Col: center.Col - minCol}
	visited[start.Row][start.Col] = true
	stack := []world.Coordinate{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		r, c := cur.Row, cur.Col

		if c > 0 && r > 0 && !visited[r-1][c-1] && !visited[r-1][c] && !visited[r][c-1] {
			visited[r-1][c-1] = true
			stack = append(stack, world.Coordinate{Row: r - 1, Col: c - 1})
		}
		if r > 0 && !visited[r-1][c] {
			visited[r-1][c] = true
			stack = append(stack, world.Coordinate{Row: r - 1, Col: c})
		}
		if c < w-1 && r > 0 && !visited[r-1][c+1] && !visited[r-1][c] && !visited[r][c+1] {
			visited[r-1][c+1] = true
			stack = append(stack, world.Coordinate{Row: r - 1, Col: c + 1})
		}
		if c < w-1 && !visited[r][c+1] {
			visited[r][c+1] = true
			stack = append(stack, world.Coordinate{Row: r, Col: c + 1})
		}
		if c < w-1 && r < h-1 && !visited[r+1][c+1] && !visited[r+1][c] && !visited[r][c+1] {
			visited[r+1][c+1] = true
			stack = append(stack, world.Coordinate{Row: r + 1, Col: c + 1})
		}
		if r < h-1 && !visited[r+1][c] {
			visited[r+1][c] = true
			stack = append(stack, world.Coordinate{Row: r + 1, Col: c})
		}
		if c > 0 && r < h-1 && !visited[r+1][c-1] && !visited[r+1][c] && !visited[r][c-1] {
			visited[r+1][c-1] = true
			stack = append(stack, world.Coordinate{Row: r + 1, Col: c - 1})
		}
		if c > 0 && !visited[r][c-1] {
			visited[r][c-1] = true
			stack = append(stack, world.Coordinate{Row: r, Col: c - 1})
		}
	}

	var points []world.Coordinate
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			if visited[r][c] {
				points = append(points, world.Coordinate{Row: r + minRow, Col: c + minCol})
			}
		}
	}
	return points
}

// mapRange maps v from [inLo, inHi] to [outLo, outHi] without clamping.
func mapRange(v, inLo, inHi, outLo, outHi float64) float64 {
	return outLo + (v-inLo)/(inHi-inLo)*(outHi-outLo)
}
