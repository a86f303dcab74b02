package core

import "testing"

func TestByteGridIndexRoundTrip(t *testing.T) {
	g := NewByteGrid(7, 5)
	seen := make(map[int]bool)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			i := g.Index(x, y)
			if i < 0 || i >= len(g.Cells()) {
				t.Fatalf("index(%d,%d) = %d out of range", x, y, i)
			}
			if seen[i] {
				t.Fatalf("index(%d,%d) = %d collides", x, y, i)
			}
			seen[i] = true
		}
	}
}

func TestByteGridGetSet(t *testing.T) {
	g := NewByteGrid(4, 4)
	g.Set(2, 3, 9)
	if got := g.Get(2, 3); got != 9 {
		t.Fatalf("Get(2,3) = %d, want 9", got)
	}
	g.Clear()
	if got := g.Get(2, 3); got != 0 {
		t.Fatalf("after Clear, Get(2,3) = %d, want 0", got)
	}
}

func TestByteGridInBounds(t *testing.T) {
	g := NewByteGrid(3, 2)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true}, {2, 1, true}, {3, 1, false}, {2, 2, false}, {-1, 0, false}, {0, -1, false},
	}
	for _, c := range cases {
		if got := g.InBounds(c.x, c.y); got != c.want {
			t.Fatalf("InBounds(%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestByteGridDegenerateDimensions(t *testing.T) {
	g := NewByteGrid(0, -3)
	if g.W != 1 || g.H != 1 {
		t.Fatalf("degenerate grid got %dx%d, want 1x1", g.W, g.H)
	}
}
