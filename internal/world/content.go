package world

// ContentKind tags the content variant held by a tile. The zero value is no
// content.
type ContentKind uint8

const (
	ContentNone ContentKind = iota
	ContentRock
	ContentTree
	ContentGarbage
	ContentFire
	ContentCoin
	ContentBin
	ContentCrate
	ContentBank
	ContentWater
)

// ContentKindCount is the number of content kinds.
const ContentKindCount = 10

var contentKindNames = [ContentKindCount]string{
	"none", "rock", "tree", "garbage", "fire", "coin", "bin", "crate", "bank", "water",
}

func (k ContentKind) String() string {
	if int(k) < len(contentKindNames) {
		return contentKindNames[k]
	}
	return "unknown"
}

type contentProps struct {
	max         int
	destroyable bool
	storable    bool
	cost        int
}

var contentPropsTable = [ContentKindCount]contentProps{
	ContentNone:    {0, false, false, 0},
	ContentRock:    {4, true, false, 1},
	ContentTree:    {5, true, false, 3},
	ContentGarbage: {3, true, false, 4},
	ContentFire:    {0, true, false, 5},
	ContentCoin:    {10, true, true, 0},
	ContentBin:     {10, false, true, 0},
	ContentCrate:   {20, false, true, 0},
	ContentBank:    {50, false, true, 0},
	ContentWater:   {20, true, true, 3},
}

// Max returns the maximum quantity (or capacity bound) of this kind.
func (k ContentKind) Max() int { return contentPropsTable[k].max }

// Destroyable reports whether this kind can be destroyed in place.
func (k ContentKind) Destroyable() bool { return contentPropsTable[k].destroyable }

// Storable reports whether this kind accepts stored items.
func (k ContentKind) Storable() bool { return contentPropsTable[k].storable }

// Cost returns the interaction cost of this kind.
func (k ContentKind) Cost() int { return contentPropsTable[k].cost }

// Content is the tagged content variant of a tile. Quantity applies to
// counted kinds (rock, tree, garbage, coin, water); Capacity applies to
// storage kinds (bin, crate, bank). The zero value is no content.
type Content struct {
	Kind     ContentKind `json:"kind"`
	Quantity int         `json:"quantity"`
	Capacity Range       `json:"capacity"`
}

// None returns empty content.
func None() Content { return Content{} }

// Rock returns rock content with the given quantity.
func Rock(n int) Content { return Content{Kind: ContentRock, Quantity: n} }

// Tree returns tree content with the given quantity.
func Tree(n int) Content { return Content{Kind: ContentTree, Quantity: n} }

// Garbage returns garbage content with the given quantity.
func Garbage(n int) Content { return Content{Kind: ContentGarbage, Quantity: n} }

// Fire returns fire content.
func Fire() Content { return Content{Kind: ContentFire} }

// Coin returns coin content with the given quantity.
func Coin(n int) Content { return Content{Kind: ContentCoin, Quantity: n} }

// Bin returns bin content with the given remaining capacity interval.
func Bin(lo, hi int) Content { return Content{Kind: ContentBin, Capacity: Range{lo, hi}} }

// Crate returns crate content with the given remaining capacity interval.
func Crate(lo, hi int) Content { return Content{Kind: ContentCrate, Capacity: Range{lo, hi}} }

// Bank returns bank content with the given remaining capacity interval.
func Bank(lo, hi int) Content { return Content{Kind: ContentBank, Capacity: Range{lo, hi}} }

// Water returns water content with the given quantity.
func Water(n int) Content { return Content{Kind: ContentWater, Quantity: n} }

// Empty reports whether the content is none.
func (c Content) Empty() bool { return c.Kind == ContentNone }
