package streets

import (
	"github.com/pzsz/voronoi"

	"badlands/internal/world"
)

// edgeKey identifies a cell boundary segment by its unordered endpoints,
// so a segment shared by two adjacent cells is stored once.
type edgeKey struct {
	a, b world.Coordinate
}

func newEdgeKey(a, b world.Coordinate) edgeKey {
	if b.Less(a) {
		a, b = b, a
	}
	return edgeKey{a: a, b: b}
}

// cellEdges computes the Voronoi diagram seeded by the peaks, clipped to
// the field extent, and returns the deduplicated cell boundary segments
// snapped onto the grid.
func cellEdges(peaks []peak, size int) map[edgeKey]struct{} {
	sites := make([]voronoi.Vertex, len(peaks))
	for i, p := range peaks {
		sites[i] = voronoi.Vertex{X: float64(p.coord.Col), Y: float64(p.coord.Row)}
	}
	bbox := voronoi.NewBBox(0, float64(size-1), 0, float64(size-1))
	diagram := voronoi.ComputeDiagram(sites, bbox, true)

	edges := make(map[edgeKey]struct{})
	for _, cell := range diagram.Cells {
		for _, he := range cell.Halfedges {
			a := snapVertex(he.GetStartpoint(), size)
			b := snapVertex(he.GetEndpoint(), size)
			edges[newEdgeKey(a, b)] = struct{}{}
		}
	}
	return edges
}

// snapVertex truncates a diagram vertex onto the grid. Vertices landing
// within two cells of the far boundary are pushed onto it, so streets
// reach the map edge instead of stopping just short of it.
func snapVertex(v voronoi.Vertex, size int) world.Coordinate {
	c := world.Coordinate{
		Row: clampIndex(int(v.Y), size),
		Col: clampIndex(int(v.X), size),
	}
	if c.Row >= size-3 {
		c.Row = size - 1
	}
	if c.Col >= size-3 {
		c.Col = size - 1
	}
	return c
}

func clampIndex(v, size int) int {
	if v < 0 {
		return 0
	}
	if v > size-1 {
		return size - 1
	}
	return v
}
