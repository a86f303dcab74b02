package world

import "testing"

func TestWalkableTerrain(t *testing.T) {
	walkable := map[TileType]bool{
		DeepWater:    false,
		ShallowWater: true,
		Sand:         true,
		Grass:        true,
		Hill:         true,
		Mountain:     true,
		Snow:         true,
		Street:       true,
		Lava:         false,
	}
	for tt, want := range walkable {
		if got := tt.Walkable(); got != want {
			t.Fatalf("%s.Walkable() = %v, want %v", tt, got, want)
		}
	}
}

func TestCanHoldTables(t *testing.T) {
	cases := []struct {
		terrain TileType
		kind    ContentKind
		want    bool
	}{
		{DeepWater, ContentWater, true},
		{DeepWater, ContentRock, false},
		{DeepWater, ContentCoin, false},
		{ShallowWater, ContentWater, true},
		{ShallowWater, ContentTree, false},
		{Sand, ContentRock, true},
		{Sand, ContentCrate, true},
		{Sand, ContentTree, false},
		{Sand, ContentBank, false},
		{Grass, ContentTree, true},
		{Grass, ContentFire, true},
		{Grass, ContentBank, true},
		{Grass, ContentWater, false},
		{Street, ContentBank, true},
		{Street, ContentBin, true},
		{Street, ContentTree, false},
		{Street, ContentCrate, false},
		{Hill, ContentFire, true},
		{Hill, ContentTree, true},
		{Hill, ContentBank, false},
		{Mountain, ContentRock, true},
		{Mountain, ContentTree, false},
		{Mountain, ContentFire, false},
		{Snow, ContentCrate, true},
		{Snow, ContentBin, false},
		{Lava, ContentRock, false},
		{Lava, ContentWater, false},
	}
	for _, c := range cases {
		if got := c.terrain.CanHold(c.kind); got != c.want {
			t.Fatalf("%s.CanHold(%s) = %v, want %v", c.terrain, c.kind, got, c.want)
		}
	}
}

func TestCanHoldNoneAlways(t *testing.T) {
	for tt := TileType(0); tt < TileTypeCount; tt++ {
		if !tt.CanHold(ContentNone) {
			t.Fatalf("%s cannot hold empty content", tt)
		}
	}
}

func TestTerrainCost(t *testing.T) {
	costs := map[TileType]int{
		DeepWater: 0, ShallowWater: 5, Sand: 3, Grass: 1,
		Hill: 5, Mountain: 10, Snow: 3, Street: 0, Lava: 0,
	}
	for tt, want := range costs {
		if got := tt.Cost(); got != want {
			t.Fatalf("%s.Cost() = %d, want %d", tt, got, want)
		}
	}
}

func TestContentMax(t *testing.T) {
	maxes := map[ContentKind]int{
		ContentRock: 4, ContentTree: 5, ContentGarbage: 3, ContentFire: 0,
		ContentCoin: 10, ContentBin: 10, ContentCrate: 20, ContentBank: 50,
		ContentWater: 20, ContentNone: 0,
	}
	for k, want := range maxes {
		if got := k.Max(); got != want {
			t.Fatalf("%s.Max() = %d, want %d", k, got, want)
		}
	}
}

func TestContentZeroValueIsNone(t *testing.T) {
	var c Content
	if !c.Empty() {
		t.Fatal("zero Content is not empty")
	}
	if c.Kind != ContentNone {
		t.Fatalf("zero Content kind = %s, want none", c.Kind)
	}
}

func TestCoordinateLess(t *testing.T) {
	a := Coordinate{Row: 1, Col: 5}
	b := Coordinate{Row: 2, Col: 0}
	c := Coordinate{Row: 1, Col: 6}
	if !a.Less(b) || b.Less(a) {
		t.Fatal("row ordering broken")
	}
	if !a.Less(c) || c.Less(a) {
		t.Fatal("column ordering broken")
	}
	if a.Less(a) {
		t.Fatal("coordinate is less than itself")
	}
}

func TestRangeLen(t *testing.T) {
	if got := (Range{2, 7}).Len(); got != 5 {
		t.Fatalf("Len = %d, want 5", got)
	}
	if got := (Range{7, 2}).Len(); got != 0 {
		t.Fatalf("inverted Len = %d, want 0", got)
	}
}
