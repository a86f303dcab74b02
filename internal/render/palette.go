// Package render turns generated worlds into pixels: palette lookups,
// RGBA buffer fills for the viewer, and PNG export.
package render

import (
	"image/color"

	"badlands/internal/world"
)

var terrainColors = [world.TileTypeCount]color.RGBA{
	world.DeepWater:    {R: 5, G: 25, B: 90, A: 255},
	world.ShallowWater: {R: 45, G: 100, B: 160, A: 255},
	world.Sand:         {R: 240, G: 230, B: 140, A: 255},
	world.Grass:        {R: 74, G: 111, B: 40, A: 255},
	world.Hill:         {R: 146, G: 104, B: 41, A: 255},
	world.Mountain:     {R: 160, G: 160, B: 160, A: 255},
	world.Snow:         {R: 250, G: 249, B: 246, A: 255},
	world.Street:       {R: 90, G: 90, B: 90, A: 255},
	world.Lava:         {R: 255, G: 129, B: 0, A: 255},
}

// contentColors marks content kinds drawn on top of terrain. Kinds without
// an entry (none, water) draw as their tile.
var contentColors = map[world.ContentKind]color.RGBA{
	world.ContentRock:    {R: 105, G: 97, B: 88, A: 255},
	world.ContentTree:    {R: 25, G: 68, B: 22, A: 255},
	world.ContentGarbage: {R: 255, G: 232, B: 28, A: 255},
	world.ContentFire:    {R: 255, G: 60, B: 20, A: 255},
	world.ContentCoin:    {R: 255, G: 205, B: 60, A: 255},
	world.ContentBin:     {R: 30, G: 30, B: 36, A: 255},
	world.ContentCrate:   {R: 150, G: 111, B: 51, A: 255},
	world.ContentBank:    {R: 120, G: 81, B: 169, A: 255},
}

// SpawnMarker is the color of the spawn point marker.
var SpawnMarker = color.RGBA{R: 213, G: 213, B: 213, A: 255}

// TerrainColor returns the palette color of a terrain type.
func TerrainColor(t world.TileType) color.RGBA { return terrainColors[t] }

// ContentColor returns the marker color of a content kind. ok is false for
// kinds that draw as bare terrain.
func ContentColor(k world.ContentKind) (color.RGBA, bool) {
	c, ok := contentColors[k]
	return c, ok
}

// TerrainPalette returns the terrain colors indexed by TileType, for
// blitting byte grids that hold one terrain value per cell.
func TerrainPalette() []color.RGBA {
	p := make([]color.RGBA, len(terrainColors))
	copy(p, terrainColors[:])
	return p
}
