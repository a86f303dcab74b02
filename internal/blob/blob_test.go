package blob

import (
	"errors"
	"slices"
	"testing"

	"badlands/internal/world"
	"badlands/pkg/core"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		s    Settings
		ok   bool
	}{
		{
			name: "feasible",
			s:    DefaultTreeSettings(256),
			ok:   true,
		},
		{
			name: "minimum overshoots tile budget",
			s: Settings{
				Tiles:  world.Range{Start: 1, End: 10},
				Blobs:  world.Range{Start: 20, End: 30},
				Radius: world.FloatRange{Start: 2, End: 3},
			},
			ok: false,
		},
		{
			name: "maximum cannot reach tile minimum",
			s: Settings{
				Tiles:  world.Range{Start: 1000, End: 2000},
				Blobs:  world.Range{Start: 1, End: 2},
				Radius: world.FloatRange{Start: 1, End: 2},
			},
			ok: false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.s.Validate()
			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok && !errors.Is(err, ErrInfeasible) {
				t.Fatalf("err = %v, want ErrInfeasible", err)
			}
		})
	}
}

func TestMapRange(t *testing.T) {
	if got := mapRange(0.5, 0, 1, 10, 20); got != 15 {
		t.Errorf("mapRange(0.5) = %v, want 15", got)
	}
	// Inputs outside the source range extrapolate instead of clamping.
	if got := mapRange(-0.5, 0, 1, 10, 20); got != 5 {
		t.Errorf("mapRange(-0.5) = %v, want 5", got)
	}
}

func TestFillCoversClosedBorder(t *testing.T) {
	// Square ring border around (5,5): the fill must cover the full
	// 5x5 rectangle, border included, in row-major order.
	var border []world.Coordinate
	for i := 3; i <= 7; i++ {
		border = append(border,
			world.Coordinate{Row: 3, Col: i},
			world.Coordinate{Row: 7, Col: i},
			world.Coordinate{Row: i, Col: 3},
			world.Coordinate{Row: i, Col: 7},
		)
	}
	points := fill(world.Coordinate{Row: 5, Col: 5}, border)

	var want []world.Coordinate
	for r := 3; r <= 7; r++ {
		for c := 3; c <= 7; c++ {
			want = append(want, world.Coordinate{Row: r, Col: c})
		}
	}
	if !slices.Equal(points, want) {
		t.Fatalf("fill covered %d cells, want the full 25-cell rectangle", len(points))
	}
}

func TestFillCannotSqueezeBetweenDiagonalBorderCells(t *testing.T) {
	// Border cells at (4,5) and (5,4) pinch the corner (4,4): a diagonal
	// step from the center may not pass between them.
	border := []world.Coordinate{{Row: 4, Col: 5}, {Row: 5, Col: 4}}
	points := fill(world.Coordinate{Row: 5, Col: 5}, border)

	want := []world.Coordinate{{Row: 4, Col: 5}, {Row: 5, Col: 4}, {Row: 5, Col: 5}}
	if !slices.Equal(points, want) {
		t.Fatalf("fill = %v, want %v", points, want)
	}
}

func TestSpawnRespectsCapabilityAndOccupancy(t *testing.T) {
	size := 100
	m := world.NewTileMatrix(size)
	for row := 0; row < size/2; row++ {
		for col := 0; col < size; col++ {
			m[row][col].Type = world.DeepWater
		}
	}
	m[75][75].Content = world.Rock(2)

	s := Settings{
		Tiles:  world.Range{Start: 1, End: 2000},
		Blobs:  world.Range{Start: 1, End: 40},
		Radius: world.FloatRange{Start: 1, End: 3},
	}
	if err := SpawnTrees(m, s, core.NewRNG(21)); err != nil {
		t.Fatal(err)
	}

	trees := 0
	for row := range m {
		for col := range m[row] {
			tile := m[row][col]
			if tile.Content.Kind == world.ContentTree {
				trees++
				if tile.Type == world.DeepWater {
					t.Fatalf("tree on deep water at (%d,%d)", row, col)
				}
			}
		}
	}
	if trees == 0 {
		t.Fatal("no trees placed")
	}
	if m[75][75].Content.Kind != world.ContentRock {
		t.Fatal("occupied tile was overwritten")
	}
}

func TestSpawnHonorsTileBudget(t *testing.T) {
	size := 100
	m := world.NewTileMatrix(size)
	s := Settings{
		Tiles:  world.Range{Start: 1, End: 10},
		Blobs:  world.Range{Start: 0, End: 50},
		Radius: world.FloatRange{Start: 1, End: 1.5},
	}
	if err := SpawnTrees(m, s, core.NewRNG(5)); err != nil {
		t.Fatal(err)
	}
	if n := countTrees(m); n == 0 || n > 10 {
		t.Fatalf("placed %d trees, want between 1 and 10", n)
	}
}

func TestSpawnHonorsBlobBudget(t *testing.T) {
	size := 100
	m := world.NewTileMatrix(size)
	s := Settings{
		Tiles:  world.Range{Start: 0, End: 1000},
		Blobs:  world.Range{Start: 0, End: 0},
		Radius: world.FloatRange{Start: 1, End: 2},
	}
	if err := SpawnTrees(m, s, core.NewRNG(5)); err != nil {
		t.Fatal(err)
	}
	if n := countTrees(m); n != 0 {
		t.Fatalf("blob budget 0 placed %d trees", n)
	}
}

func TestSpawnDeterministic(t *testing.T) {
	size := 100
	run := func() []world.Coordinate {
		m := world.NewTileMatrix(size)
		if err := SpawnTrees(m, DefaultTreeSettings(size), core.NewRNG(13)); err != nil {
			t.Fatal(err)
		}
		var tiles []world.Coordinate
		for row := range m {
			for col := range m[row] {
				if m[row][col].Content.Kind == world.ContentTree {
					tiles = append(tiles, world.Coordinate{Row: row, Col: col})
				}
			}
		}
		return tiles
	}
	if a, b := run(), run(); !slices.Equal(a, b) {
		t.Fatal("same seed produced different forests")
	}
}

func TestDefaultSettingsFormulas(t *testing.T) {
	tree := DefaultTreeSettings(256)
	if tree.Radius != (world.FloatRange{Start: 1, End: 4}) {
		t.Errorf("tree radius = %v, want {1 4}", tree.Radius)
	}
	if tree.Blobs != (world.Range{Start: 25, End: 38}) {
		t.Errorf("tree blobs = %v, want {25 38}", tree.Blobs)
	}
	if tree.Tiles != (world.Range{Start: 1, End: 2432}) {
		t.Errorf("tree tiles = %v, want {1 2432}", tree.Tiles)
	}
	if tree.DropChance != 0.1 {
		t.Errorf("tree drop chance = %v, want 0.1", tree.DropChance)
	}

	fire := DefaultFireSettings(256)
	if fire.Radius != (world.FloatRange{Start: 2, End: 6}) {
		t.Errorf("fire radius = %v, want {2 6}", fire.Radius)
	}
	if fire.Blobs != (world.Range{Start: 2, End: 5}) {
		t.Errorf("fire blobs = %v, want {2 5}", fire.Blobs)
	}
	if fire.Tiles != (world.Range{Start: 1, End: 720}) {
		t.Errorf("fire tiles = %v, want {1 720}", fire.Tiles)
	}
}

func countTrees(m world.TileMatrix) int {
	n := 0
	for row := range m {
		for col := range m[row] {
			if m[row][col].Content.Kind == world.ContentTree {
				n++
			}
		}
	}
	return n
}
