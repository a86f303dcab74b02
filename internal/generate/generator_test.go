package generate

import (
	"errors"
	"testing"

	"badlands/internal/blob"
	"badlands/internal/world"
)

func TestGenerateRejectsSmallWorld(t *testing.T) {
	g := Default(MinWorldSize-1, 1)
	if _, err := g.Generate(); !errors.Is(err, ErrWorldTooSmall) {
		t.Fatalf("size %d accepted, err = %v", MinWorldSize-1, err)
	}
}

func TestGenerateRejectsUnknownPhase(t *testing.T) {
	g := Default(120, 1)
	g.Order = []Phase{PhaseLava, Phase("volcano")}
	if _, err := g.Generate(); err == nil {
		t.Fatal("unknown phase accepted")
	}
}

func TestGenerateRejectsInfeasibleBlobs(t *testing.T) {
	g := Default(120, 1)
	g.Trees.Tiles = world.Range{Start: 1 << 20, End: 1 << 21}
	if _, err := g.Generate(); !errors.Is(err, blob.ErrInfeasible) {
		t.Fatalf("infeasible tree settings accepted, err = %v", err)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := Default(120, 42).Generate()
	if err != nil {
		t.Fatal(err)
	}
	b, err := Default(120, 42).Generate()
	if err != nil {
		t.Fatal(err)
	}
	if a.Spawn != b.Spawn {
		t.Fatalf("spawn differs between runs: %v vs %v", a.Spawn, b.Spawn)
	}
	for row := range a.World {
		for col := range a.World[row] {
			if a.World[row][col] != b.World[row][col] {
				t.Fatalf("tile (%d,%d) differs between runs: %+v vs %+v",
					row, col, a.World[row][col], b.World[row][col])
			}
		}
	}
}

func TestGenerateSeedChangesWorld(t *testing.T) {
	a, err := Default(120, 1).Generate()
	if err != nil {
		t.Fatal(err)
	}
	b, err := Default(120, 2).Generate()
	if err != nil {
		t.Fatal(err)
	}
	for row := range a.World {
		for col := range a.World[row] {
			if a.World[row][col] != b.World[row][col] {
				return
			}
		}
	}
	t.Fatal("different seeds produced identical worlds")
}

func TestGenerateContentRespectsCapability(t *testing.T) {
	res, err := Default(150, 7).Generate()
	if err != nil {
		t.Fatal(err)
	}
	if err := world.Check(res.World); err != nil {
		t.Fatal(err)
	}
	if !res.World.InBounds(res.Spawn) {
		t.Fatalf("spawn %v out of bounds", res.Spawn)
	}
	if !res.World[res.Spawn.Row][res.Spawn.Col].Type.Walkable() {
		t.Fatalf("spawn %v is not walkable", res.Spawn)
	}
}

func TestGenerateEmptyOrderLeavesBareTerrain(t *testing.T) {
	g := Default(120, 3)
	g.Order = nil
	res, err := g.Generate()
	if err != nil {
		t.Fatal(err)
	}
	for _, row := range res.World {
		for _, tile := range row {
			if !tile.Content.Empty() {
				t.Fatalf("empty order placed content %v", tile.Content)
			}
			if tile.Type == world.Street || tile.Type == world.Lava {
				t.Fatalf("empty order produced %s terrain", tile.Type)
			}
		}
	}
}

func TestGenerateOmitsUnlistedPhases(t *testing.T) {
	g := Default(120, 3)
	g.Order = []Phase{PhaseLava}
	res, err := g.Generate()
	if err != nil {
		t.Fatal(err)
	}
	for _, row := range res.World {
		for _, tile := range row {
			if !tile.Content.Empty() {
				t.Fatalf("lava-only order placed content %v", tile.Content)
			}
			if tile.Type == world.Street {
				t.Fatal("lava-only order produced streets")
			}
		}
	}
}

func TestGenerateTimings(t *testing.T) {
	g := Default(120, 9)
	var seen []string
	g.OnPhase = func(pt PhaseTiming) { seen = append(seen, pt.Name) }
	res, err := g.Generate()
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"elevation", "terrain"}
	for _, p := range DefaultOrder() {
		want = append(want, string(p))
	}
	want = append(want, "spawn")

	if len(res.Timings) != len(want) {
		t.Fatalf("got %d timings, want %d", len(res.Timings), len(want))
	}
	for i, w := range want {
		if res.Timings[i].Name != w {
			t.Fatalf("timing %d is %q, want %q", i, res.Timings[i].Name, w)
		}
		if seen[i] != w {
			t.Fatalf("callback %d saw %q, want %q", i, seen[i], w)
		}
	}
}

func TestSpawnPointScansRowMajor(t *testing.T) {
	m := world.NewTileMatrix(6)
	for _, row := range m {
		for col := range row {
			row[col].Type = world.DeepWater
		}
	}
	m[2][5].Type = world.Grass
	m[3][0].Type = world.Grass

	if got := SpawnPoint(m); got != (world.Coordinate{Row: 2, Col: 5}) {
		t.Fatalf("spawn point = %v, want (2,5)", got)
	}
}

func TestSpawnPointFallsBackToOrigin(t *testing.T) {
	m := world.NewTileMatrix(4)
	for _, row := range m {
		for col := range row {
			row[col].Type = world.Lava
		}
	}
	if got := SpawnPoint(m); got != (world.Coordinate{}) {
		t.Fatalf("spawn point = %v, want origin", got)
	}
}

func TestApplyPreset(t *testing.T) {
	base := Default(120, 1)
	g := Default(120, 1)
	if err := ApplyPreset(g, "volcanic"); err != nil {
		t.Fatal(err)
	}
	if g.Lava.SpawnPoints != base.Lava.SpawnPoints*4 {
		t.Fatalf("volcanic lava spawn points = %d, want %d",
			g.Lava.SpawnPoints, base.Lava.SpawnPoints*4)
	}
	if g.Fire.Blobs.End != base.Fire.Blobs.End*2 {
		t.Fatalf("volcanic fire blobs = %d, want %d", g.Fire.Blobs.End, base.Fire.Blobs.End*2)
	}

	if err := ApplyPreset(g, "no-such-style"); err == nil {
		t.Fatal("unknown preset accepted")
	}
}

func TestPresetNames(t *testing.T) {
	names := PresetNames()
	if len(names) != len(Presets()) {
		t.Fatalf("got %d names for %d presets", len(names), len(Presets()))
	}
	found := false
	for i, name := range names {
		if i > 0 && names[i-1] >= name {
			t.Fatalf("names not sorted: %q before %q", names[i-1], name)
		}
		if name == "default" {
			found = true
		}
	}
	if !found {
		t.Fatal("default preset missing")
	}
}

func TestPresetWorldsGenerate(t *testing.T) {
	for _, p := range Presets() {
		g := Default(120, 5)
		if err := ApplyPreset(g, p.Name); err != nil {
			t.Fatal(err)
		}
		res, err := g.Generate()
		if err != nil {
			t.Fatalf("preset %q: %v", p.Name, err)
		}
		if err := world.Check(res.World); err != nil {
			t.Fatalf("preset %q: %v", p.Name, err)
		}
	}
}
