package elevation

import (
	"slices"
	"testing"
)

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(64, FromSeed(7))
	b := Generate(64, FromSeed(7))
	if !slices.Equal(a.data, b.data) {
		t.Fatal("same seed produced different fields")
	}

	c := Generate(64, FromSeed(8))
	if slices.Equal(a.data, c.data) {
		t.Fatal("different seeds produced identical fields")
	}
}

func TestGenerateDimensions(t *testing.T) {
	f := Generate(33, FromSeed(1))
	if f.Size() != 33 {
		t.Fatalf("size = %d, want 33", f.Size())
	}
	if len(f.data) != 33*33 {
		t.Fatalf("data length = %d, want %d", len(f.data), 33*33)
	}
}

func TestMinMaxObserved(t *testing.T) {
	f := Generate(48, FromSeed(3))
	min, max := f.MinMax()
	if min > max {
		t.Fatalf("min %v > max %v", min, max)
	}
	for row := 0; row < f.Size(); row++ {
		for col := 0; col < f.Size(); col++ {
			v := f.At(row, col)
			if v < min || v > max {
				t.Fatalf("value %v at (%d,%d) outside [%v, %v]", v, row, col, min, max)
			}
		}
	}
}

func TestZeroOctavesIsFlat(t *testing.T) {
	s := FromSeed(5)
	s.Octaves = 0
	f := Generate(16, s)
	first := f.At(0, 0)
	for row := 0; row < 16; row++ {
		for col := 0; col < 16; col++ {
			if f.At(row, col) != first {
				t.Fatalf("flat field has differing value at (%d,%d)", row, col)
			}
		}
	}
	min, max := f.MinMax()
	if min != max {
		t.Fatalf("flat field min %v != max %v", min, max)
	}
}

func TestSingleCellField(t *testing.T) {
	f := Generate(1, FromSeed(11))
	min, max := f.MinMax()
	if min != f.At(0, 0) || max != f.At(0, 0) {
		t.Fatal("1x1 field extremes do not match its only value")
	}
}

func TestFromSeedDefaults(t *testing.T) {
	s := FromSeed(42)
	if s.Seed != 42 || s.Octaves != 12 || s.Frequency != 2.5 ||
		s.Lacunarity != 2.0 || s.Persistence != 1.25 || s.Attenuation != 2.5 {
		t.Fatalf("unexpected defaults: %+v", s)
	}
}
