package world

import "fmt"

// TerrainPercentage returns the fraction of tiles per terrain type.
func TerrainPercentage(m TileMatrix) map[TileType]float64 {
	out := make(map[TileType]float64)
	total := float64(len(m) * len(m))
	if total == 0 {
		return out
	}
	for _, row := range m {
		for _, t := range row {
			out[t.Type]++
		}
	}
	for k := range out {
		out[k] /= total
	}
	return out
}

// ContentPercentage returns the fraction of tiles per content kind.
func ContentPercentage(m TileMatrix) map[ContentKind]float64 {
	out := make(map[ContentKind]float64)
	total := float64(len(m) * len(m))
	if total == 0 {
		return out
	}
	for _, row := range m {
		for _, t := range row {
			out[t.Content.Kind]++
		}
	}
	for k := range out {
		out[k] /= total
	}
	return out
}

// Check verifies the capability invariant and the content quantity bounds
// over the whole grid, returning the first violation found.
func Check(m TileMatrix) error {
	for y, row := range m {
		for x, t := range row {
			if !t.Type.CanHold(t.Content.Kind) {
				return fmt.Errorf("tile (%d,%d): %s cannot hold %s", y, x, t.Type, t.Content.Kind)
			}
			max := t.Content.Kind.Max()
			switch t.Content.Kind {
			case ContentBin, ContentCrate, ContentBank:
				if t.Content.Capacity.End > max {
					return fmt.Errorf("tile (%d,%d): %s capacity %d exceeds max %d",
						y, x, t.Content.Kind, t.Content.Capacity.End, max)
				}
			default:
				if t.Content.Quantity > max {
					return fmt.Errorf("tile (%d,%d): %s quantity %d exceeds max %d",
						y, x, t.Content.Kind, t.Content.Quantity, max)
				}
			}
		}
	}
	return nil
}
