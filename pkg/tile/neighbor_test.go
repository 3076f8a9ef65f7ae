package tile

import "testing"

func TestFindNeighborEligibilityConsistency(t *testing.T) {
	container := NewRect(0, 0, 400, 200)
	rects := []Rect{
		NewRect(0, 0, 200, 100),
		NewRect(200, 0, 200, 100),
		NewRect(0, 100, 200, 100),
		NewRect(200, 100, 200, 100),
	}
	for i := range rects {
		for _, dir := range []Direction{DirNorth, DirEast, DirSouth, DirWest} {
			j := FindNeighbor(rects, i, dir, container)
			if j == -1 {
				for k, r := range rects {
					if k != i && eligible(rects[i], r, dir) {
						t.Errorf("rect %d dir %v: FindNeighbor returned -1 but rect %d is eligible", i, dir, k)
					}
				}
				continue
			}
			if !eligible(rects[i], rects[j], dir) {
				t.Errorf("rect %d dir %v: FindNeighbor returned %d which is not eligible", i, dir, j)
			}
		}
	}
}

// TestFindNeighborQuadrantLayout exercises a 2x2 grid. Eligibility is a
// pure geometric predicate on edges (§4.7), not a "strictly above/below"
// test, so a same-row rectangle can be eligible as a North/South candidate
// too when its x-range overlaps current's; these expectations are computed
// directly from that predicate plus the distance tie-break, not from
// visual intuition about which quadrant "looks" adjacent.
func TestFindNeighborQuadrantLayout(t *testing.T) {
	container := NewRect(0, 0, 400, 200)
	rects := []Rect{
		NewRect(0, 0, 200, 100),     // 0: top-left
		NewRect(200, 0, 200, 100),   // 1: top-right
		NewRect(0, 100, 200, 100),   // 2: bottom-left
		NewRect(200, 100, 200, 100), // 3: bottom-right
	}
	cases := []struct {
		i    int
		dir  Direction
		want int
	}{
		{0, DirEast, 1},
		{0, DirSouth, 2},
		{0, DirNorth, 1},
		{0, DirWest, -1},
		{3, DirWest, 2},
		{3, DirNorth, 0},
		{1, DirSouth, 2},
		{2, DirEast, 3},
	}
	for _, c := range cases {
		if got := FindNeighbor(rects, c.i, c.dir, container); got != c.want {
			t.Errorf("FindNeighbor(rects, %d, %v) = %d, want %d", c.i, c.dir, got, c.want)
		}
	}
}

// TestFindNeighborVerticalStack covers the unambiguous case: rectangles
// stacked with no horizontal overlap, so North/South candidates are
// exactly the ones visually above/below.
func TestFindNeighborVerticalStack(t *testing.T) {
	container := NewRect(0, 0, 100, 300)
	rects := []Rect{
		NewRect(0, 0, 100, 100),
		NewRect(0, 100, 100, 100),
		NewRect(0, 200, 100, 100),
	}
	if got := FindNeighbor(rects, 1, DirNorth, container); got != 0 {
		t.Errorf("North of middle = %d, want 0", got)
	}
	if got := FindNeighbor(rects, 1, DirSouth, container); got != 2 {
		t.Errorf("South of middle = %d, want 2", got)
	}
	if got := FindNeighbor(rects, 0, DirNorth, container); got != -1 {
		t.Errorf("North of top = %d, want -1", got)
	}
	if got := FindNeighbor(rects, 2, DirSouth, container); got != -1 {
		t.Errorf("South of bottom = %d, want -1", got)
	}
}

// TestFindNeighborHorizontalStack is the dual: East/West with no vertical
// overlap ambiguity.
func TestFindNeighborHorizontalStack(t *testing.T) {
	container := NewRect(0, 0, 300, 100)
	rects := []Rect{
		NewRect(0, 0, 100, 100),
		NewRect(100, 0, 100, 100),
		NewRect(200, 0, 100, 100),
	}
	if got := FindNeighbor(rects, 1, DirWest, container); got != 0 {
		t.Errorf("West of middle = %d, want 0", got)
	}
	if got := FindNeighbor(rects, 1, DirEast, container); got != 2 {
		t.Errorf("East of middle = %d, want 2", got)
	}
}

func TestFindNeighborOutOfRangeIndex(t *testing.T) {
	container := NewRect(0, 0, 100, 100)
	rects := []Rect{NewRect(0, 0, 100, 100)}
	if got := FindNeighbor(rects, 5, DirNorth, container); got != -1 {
		t.Errorf("FindNeighbor with out-of-range index = %d, want -1", got)
	}
}

func TestFindNeighborTieBreak(t *testing.T) {
	container := NewRect(0, 0, 300, 200)
	rects := []Rect{
		NewRect(0, 100, 300, 100), // 0: bottom row, full width
		NewRect(0, 0, 100, 100),   // 1: top-left
		NewRect(100, 0, 100, 100), // 2: top-middle
		NewRect(200, 0, 100, 100), // 3: top-right
	}
	// North of rect 0 has three equidistant candidates; leftmost (1) wins.
	if got := FindNeighbor(rects, 0, DirNorth, container); got != 1 {
		t.Errorf("FindNeighbor tie-break = %d, want 1", got)
	}
}
