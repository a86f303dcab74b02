package elevation

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Field is a square heightmap. It is produced once by Generate and read-only
// afterwards; later phases read it for decisions but never mutate it.
type Field struct {
	size     int
	data     []float64
	min, max float64
}

// FromValues builds a field from row-major values, copying them. The
// worldfile loader and tests use it to reconstruct fields.
func FromValues(size int, values []float64) *Field {
	f := &Field{size: size, data: make([]float64, size*size)}
	copy(f.data, values)
	if len(f.data) > 0 {
		f.min, f.max = f.data[0], f.data[0]
		for _, v := range f.data[1:] {
			if v < f.min {
				f.min = v
			}
			if v > f.max {
				f.max = v
			}
		}
	}
	return f
}

// Size returns the side length.
func (f *Field) Size() int { return f.size }

// Values exposes the row-major backing values. Callers must not modify them.
func (f *Field) Values() []float64 { return f.data }

// At returns the value at (row, col).
func (f *Field) At(row, col int) float64 { return f.data[row*f.size+col] }

// MinMax returns the observed extremes of the field.
func (f *Field) MinMax() (min, max float64) { return f.min, f.max }

// Generate produces a size × size field sampled at (x/size, y/size) per
// cell. Rows are pure functions of their coordinates, so they run on a
// bounded worker pool; the result is identical regardless of scheduling.
func Generate(size int, s Settings) *Field {
	f := &Field{size: size, data: make([]float64, size*size)}
	if size == 0 {
		return f
	}
	r := newRidged(s)
	fs := float64(size)

	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for y := 0; y < size; y++ {
		y := y
		g.Go(func() error {
			row := f.data[y*size : (y+1)*size]
			for x := range row {
				row[x] = r.at(float64(x)/fs, float64(y)/fs)
			}
			return nil
		})
	}
	// Workers never return an error.
	_ = g.Wait()

	f.min, f.max = f.data[0], f.data[0]
	for _, v := range f.data[1:] {
		if v < f.min {
			f.min = v
		}
		if v > f.max {
			f.max = v
		}
	}
	return f
}
