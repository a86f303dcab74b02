package render

import (
	"image/color"

	"badlands/internal/elevation"
	"badlands/internal/world"
)

// FillPaletteRGBA converts cell values into RGBA pixels using a palette.
// Values beyond the palette clamp to its last entry. When the palette is
// empty the buffer is cleared to transparent black.
func FillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// FillMaskRGBA paints tiles matching pred in the on color and the rest in
// off, row-major into buf.
func FillMaskRGBA(buf []byte, m world.TileMatrix, pred func(world.Tile) bool, on, off color.RGBA) {
	i := 0
	for _, row := range m {
		for _, tile := range row {
			col := off
			if pred(tile) {
				col = on
			}
			base := i * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
			i++
		}
	}
}

// FillElevationRGBA paints the heightmap as a grayscale gradient, lowest
// point black and highest white.
func FillElevationRGBA(buf []byte, f *elevation.Field) {
	min, max := f.MinMax()
	span := max - min
	if span == 0 {
		span = 1
	}
	i := 0
	for row := 0; row < f.Size(); row++ {
		for col := 0; col < f.Size(); col++ {
			g := uint8(255 * (f.At(row, col) - min) / span)
			base := i * 4
			buf[base+0] = g
			buf[base+1] = g
			buf[base+2] = g
			buf[base+3] = 255
			i++
		}
	}
}

// ByteGridSetter is the byte-grid surface the renderer writes through.
type ByteGridSetter interface {
	Set(x, y int, v uint8)
}

// TerrainBytes writes one terrain value per cell into a byte grid sized
// like the world, for palette blitting.
func TerrainBytes(g ByteGridSetter, m world.TileMatrix) {
	for row, tiles := range m {
		for col, tile := range tiles {
			g.Set(col, row, uint8(tile.Type))
		}
	}
}
