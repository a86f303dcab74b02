package streets

import (
	"math"

	"badlands/internal/world"
)

// connectPoints rasterizes the segment between two cells with a DDA walk.
// Whenever a step lands diagonally the orthogonal intermediate is emitted
// first, so consecutive path cells always differ by exactly one step on
// one axis. Consecutive duplicates from rounding are skipped.
func connectPoints(a, b world.Coordinate) []world.Coordinate {
	dr := b.Row - a.Row
	dc := b.Col - a.Col
	steps := absInt(dr)
	if s := absInt(dc); s > steps {
		steps = s
	}
	if steps == 0 {
		return []world.Coordinate{a}
	}

	rInc := float64(dr) / float64(steps)
	cInc := float64(dc) / float64(steps)
	path := make([]world.Coordinate, 0, 2*steps+1)
	path = append(path, a)
	r, c := float64(a.Row), float64(a.Col)
	for i := 0; i < steps; i++ {
		r += rInc
		c += cInc
		next := world.Coordinate{Row: int(math.Round(r)), Col: int(math.Round(c))}
		last := path[len(path)-1]
		if next.Row != last.Row && next.Col != last.Col {
			path = append(path, world.Coordinate{Row: next.Row, Col: last.Col})
		}
		path = appendCell(path, next)
	}
	return path
}

func appendCell(path []world.Coordinate, c world.Coordinate) []world.Coordinate {
	if len(path) > 0 && path[len(path)-1] == c {
		return path
	}
	return append(path, c)
}
