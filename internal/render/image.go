package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"badlands/internal/world"
)

// Compose renders a world into an RGBA image at an integer scale. Terrain
// fills each cell block, content draws as an inset square, and the spawn
// point is marked.
func Compose(m world.TileMatrix, spawn world.Coordinate, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	size := m.Size()
	img := image.NewRGBA(image.Rect(0, 0, size*scale, size*scale))

	for row, tiles := range m {
		for col, tile := range tiles {
			fillRect(img, col*scale, row*scale, scale, scale, TerrainColor(tile.Type))
			if mark, ok := ContentColor(tile.Content.Kind); ok {
				inset := scale / 4
				fillRect(img, col*scale+inset, row*scale+inset, scale-2*inset, scale-2*inset, mark)
			}
		}
	}

	if m.InBounds(spawn) {
		fillRect(img, spawn.Col*scale, spawn.Row*scale, scale, scale, SpawnMarker)
	}
	return img
}

// WritePNG renders the world and writes it as a PNG file.
func WritePNG(path string, m world.TileMatrix, spawn world.Coordinate, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	if err := png.Encode(f, Compose(m, spawn, scale)); err != nil {
		f.Close()
		return fmt.Errorf("render: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("render: close %s: %w", path, err)
	}
	return nil
}

func fillRect(img *image.RGBA, x, y, w, h int, col color.RGBA) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			img.SetRGBA(x+dx, y+dy, col)
		}
	}
}
