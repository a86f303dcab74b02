package world

// TileType classifies the terrain of a single tile. Declaration order is the
// classification rank: deeper water sorts before higher ground, with street
// and lava outside the elevation ladder.
type TileType uint8

const (
	DeepWater TileType = iota
	ShallowWater
	Sand
	Grass
	Hill
	Mountain
	Snow
	Street
	Lava
)

// TileTypeCount is the number of terrain types.
const TileTypeCount = 9

var tileTypeNames = [TileTypeCount]string{
	"deep_water", "shallow_water", "sand", "grass", "hill", "mountain", "snow", "street", "lava",
}

func (t TileType) String() string {
	if int(t) < len(tileTypeNames) {
		return tileTypeNames[t]
	}
	return "unknown"
}

// holdMask is a bit set of ContentKind values, one bit per kind.
type holdMask uint16

func maskOf(kinds ...ContentKind) holdMask {
	var m holdMask
	for _, k := range kinds {
		m |= 1 << k
	}
	return m
}

type tileProps struct {
	walkable bool
	cost     int
	holds    holdMask
}

var tilePropsTable = [TileTypeCount]tileProps{
	DeepWater:    {false, 0, maskOf(ContentWater)},
	ShallowWater: {true, 5, maskOf(ContentWater)},
	Sand:         {true, 3, maskOf(ContentRock, ContentGarbage, ContentCoin, ContentBin, ContentCrate)},
	Grass:        {true, 1, maskOf(ContentRock, ContentTree, ContentGarbage, ContentFire, ContentCoin, ContentBin, ContentCrate, ContentBank)},
	Hill:         {true, 5, maskOf(ContentRock, ContentTree, ContentGarbage, ContentFire, ContentCoin, ContentBin, ContentCrate)},
	Mountain:     {true, 10, maskOf(ContentRock, ContentGarbage, ContentCoin, ContentBin, ContentCrate)},
	Snow:         {true, 3, maskOf(ContentRock, ContentGarbage, ContentCoin, ContentCrate)},
	Street:       {true, 0, maskOf(ContentRock, ContentGarbage, ContentCoin, ContentBin, ContentBank)},
	Lava:         {false, 0, 0},
}

// Walkable reports whether an agent can stand on this terrain.
func (t TileType) Walkable() bool { return tilePropsTable[t].walkable }

// Cost returns the energy cost of entering this terrain.
func (t TileType) Cost() int { return tilePropsTable[t].cost }

// CanHold reports whether this terrain can hold the given content kind.
// Empty content is always holdable.
func (t TileType) CanHold(k ContentKind) bool {
	if k == ContentNone {
		return true
	}
	return tilePropsTable[t].holds&(1<<k) != 0
}

// Tile is one cell of the world grid.
type Tile struct {
	Type    TileType `json:"type"`
	Content Content  `json:"content"`
}
