package world

// TileMatrix is the square world grid, indexed row first.
type TileMatrix [][]Tile

// NewTileMatrix returns a size × size matrix of grass tiles with no content.
func NewTileMatrix(size int) TileMatrix {
	m := make(TileMatrix, size)
	for y := range m {
		row := make([]Tile, size)
		for x := range row {
			row[x] = Tile{Type: Grass}
		}
		m[y] = row
	}
	return m
}

// Size returns the side length of the grid.
func (m TileMatrix) Size() int { return len(m) }

// InBounds reports whether c addresses a tile.
func (m TileMatrix) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < len(m) && c.Col >= 0 && c.Col < len(m)
}

// At returns the tile at c for mutation.
func (m TileMatrix) At(c Coordinate) *Tile { return &m[c.Row][c.Col] }

// Place writes content at c when the terrain can hold it and the slot is
// empty. It reports whether the placement happened.
func (m TileMatrix) Place(c Coordinate, content Content) bool {
	if !m.InBounds(c) {
		return false
	}
	t := &m[c.Row][c.Col]
	if !t.Content.Empty() || !t.Type.CanHold(content.Kind) {
		return false
	}
	t.Content = content
	return true
}
