package streets

import (
	"sort"

	"badlands/internal/elevation"
	"badlands/internal/world"
)

// peak is a candidate Voronoi seed: the highest cell of one grid slice.
type peak struct {
	coord world.Coordinate
	value float64
}

// slicePeaks partitions the field into n × n rectangular slices and keeps
// each slice's highest cell when it rises above the cutoff. Ties keep the
// later cell in row-major order.
func slicePeaks(f *elevation.Field, n int, cutoff float64) []peak {
	if n <= 0 {
		return nil
	}
	size := f.Size()
	var peaks []peak
	for sr := 0; sr < n; sr++ {
		r0, r1 := sr*size/n, (sr+1)*size/n
		for sc := 0; sc < n; sc++ {
			c0, c1 := sc*size/n, (sc+1)*size/n
			if r0 >= r1 || c0 >= c1 {
				continue
			}
			best := world.Coordinate{Row: r0, Col: c0}
			for row := r0; row < r1; row++ {
				for col := c0; col < c1; col++ {
					if f.At(row, col) >= f.At(best.Row, best.Col) {
						best = world.Coordinate{Row: row, Col: col}
					}
				}
			}
			if v := f.At(best.Row, best.Col); v > cutoff {
				peaks = append(peaks, peak{coord: best, value: v})
			}
		}
	}
	return peaks
}

// mergeNearPeaks thins peaks clustered around interior slice boundaries:
// within each band straddling a boundary, a lower peak sitting within the
// band width of a kept higher peak is dropped. Vertical bands judge
// distance by column, horizontal bands by row.
func mergeNearPeaks(peaks []peak, size, n int) []peak {
	bw := size / 100
	dropped := make(map[world.Coordinate]bool)
	for b := 1; b < n; b++ {
		boundary := b * size / n
		lo, hi := boundary-bw/2, boundary+bw/2
		cullBand(peaks, dropped, lo, hi, bw, func(c world.Coordinate) int { return c.Col })
		cullBand(peaks, dropped, lo, hi, bw, func(c world.Coordinate) int { return c.Row })
	}
	out := make([]peak, 0, len(peaks))
	for _, p := range peaks {
		if !dropped[p.coord] {
			out = append(out, p)
		}
	}
	return out
}

func cullBand(peaks []peak, dropped map[world.Coordinate]bool, lo, hi, bw int, axis func(world.Coordinate) int) {
	var band []peak
	for _, p := range peaks {
		if dropped[p.coord] {
			continue
		}
		if a := axis(p.coord); a >= lo && a <= hi {
			band = append(band, p)
		}
	}
	sort.SliceStable(band, func(i, j int) bool { return band[i].value > band[j].value })

	var kept []peak
	for _, p := range band {
		culled := false
		for _, k := range kept {
			if absInt(axis(p.coord)-axis(k.coord)) <= bw {
				culled = true
				break
			}
		}
		if culled {
			dropped[p.coord] = true
		} else {
			kept = append(kept, p)
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
