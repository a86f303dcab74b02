package garbage

import (
	"slices"
	"testing"

	"badlands/internal/world"
	"badlands/pkg/core"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings(100)
	if s.TotalQuantity != 40 {
		t.Errorf("TotalQuantity = %d, want 40", s.TotalQuantity)
	}
	if s.PileSize != (world.Range{Start: 3, End: 10}) {
		t.Errorf("PileSize = %v, want {3 10}", s.PileSize)
	}
	if s.PerTile != (world.Range{Start: 1, End: 3}) {
		t.Errorf("PerTile = %v, want {1 3}", s.PerTile)
	}
}

func TestRingMatrix(t *testing.T) {
	got := ringMatrix(5, 0.8, 0.1)
	want := [][]float64{
		{0.6, 0.6, 0.6, 0.6, 0.6},
		{0.6, 0.7, 0.7, 0.7, 0.6},
		{0.6, 0.7, 0.8, 0.7, 0.6},
		{0.6, 0.7, 0.7, 0.7, 0.6},
		{0.6, 0.6, 0.6, 0.6, 0.6},
	}
	for r := range want {
		if !slices.Equal(got[r], want[r]) {
			t.Fatalf("row %d = %v, want %v", r, got[r], want[r])
		}
	}
}

func TestRingMatrixClampsAtZero(t *testing.T) {
	got := ringMatrix(5, 0.1, 0.2)
	for r := range got {
		for c := range got[r] {
			if got[r][c] < 0 {
				t.Fatalf("cell (%d,%d) = %v, want clamped to 0", r, c, got[r][c])
			}
		}
	}
	if got[0][0] != 0 {
		t.Fatalf("outer ring = %v, want 0", got[0][0])
	}
	if got[2][2] != 0.1 {
		t.Fatalf("center = %v, want 0.1", got[2][2])
	}
}

func totalGarbage(m world.TileMatrix) int {
	total := 0
	for row := range m {
		for col := range m[row] {
			if m[row][col].Content.Kind == world.ContentGarbage {
				total += m[row][col].Content.Quantity
			}
		}
	}
	return total
}

func TestSpawnReachesTarget(t *testing.T) {
	m := world.NewTileMatrix(50)
	s := DefaultSettings(50)
	s.TotalQuantity = 30
	Spawn(m, s, core.NewRNG(8))

	total := totalGarbage(m)
	if total < 30 {
		t.Fatalf("placed %d quantity, want at least 30", total)
	}
	// The final placement may overshoot by at most one per-tile draw.
	if total >= 30+s.PerTile.End {
		t.Fatalf("placed %d quantity, overshoots target 30 by too much", total)
	}
}

func TestSpawnZeroTarget(t *testing.T) {
	m := world.NewTileMatrix(50)
	s := DefaultSettings(50)
	s.TotalQuantity = 0
	Spawn(m, s, core.NewRNG(8))

	if total := totalGarbage(m); total != 0 {
		t.Fatalf("zero target placed %d quantity", total)
	}
}

func TestSpawnTerminatesWhenNothingHoldsGarbage(t *testing.T) {
	size := 30
	m := world.NewTileMatrix(size)
	for row := range m {
		for col := range m[row] {
			m[row][col].Type = world.Lava
		}
	}
	s := DefaultSettings(size)
	s.TotalQuantity = 10
	Spawn(m, s, core.NewRNG(8))

	if total := totalGarbage(m); total != 0 {
		t.Fatalf("placed %d quantity on lava", total)
	}
}

func TestSpawnRespectsCapability(t *testing.T) {
	size := 50
	m := world.NewTileMatrix(size)
	for row := 0; row < size/2; row++ {
		for col := 0; col < size; col++ {
			m[row][col].Type = world.DeepWater
		}
	}
	s := DefaultSettings(size)
	s.TotalQuantity = 40
	Spawn(m, s, core.NewRNG(8))

	for row := 0; row < size/2; row++ {
		for col := 0; col < size; col++ {
			if m[row][col].Content.Kind == world.ContentGarbage {
				t.Fatalf("garbage on deep water at (%d,%d)", row, col)
			}
		}
	}
	if totalGarbage(m) < 40 {
		t.Fatalf("placed %d quantity, want at least 40", totalGarbage(m))
	}
}

func TestSpawnDeterministic(t *testing.T) {
	run := func() []world.Coordinate {
		m := world.NewTileMatrix(50)
		s := DefaultSettings(50)
		Spawn(m, s, core.NewRNG(17))
		var tiles []world.Coordinate
		for row := range m {
			for col := range m[row] {
				if m[row][col].Content.Kind == world.ContentGarbage {
					tiles = append(tiles, world.Coordinate{Row: row, Col: col})
				}
			}
		}
		return tiles
	}
	if a, b := run(), run(); !slices.Equal(a, b) {
		t.Fatal("same seed produced different garbage layouts")
	}
}
