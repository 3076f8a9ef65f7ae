package tile

import "testing"

func TestFlipHorizontal(t *testing.T) {
	container := NewRect(0, 0, 400, 200)
	rects := []Rect{NewRect(0, 0, 400, 50)}
	FlipRects(rects, FlipHorizontal, container)
	want := NewRect(0, 150, 400, 50)
	if rects[0] != want {
		t.Errorf("FlipHorizontal = %+v, want %+v", rects[0], want)
	}
}

func TestFlipVertical(t *testing.T) {
	container := NewRect(0, 0, 400, 200)
	rects := []Rect{NewRect(0, 0, 100, 200)}
	FlipRects(rects, FlipVertical, container)
	want := NewRect(300, 0, 100, 200)
	if rects[0] != want {
		t.Errorf("FlipVertical = %+v, want %+v", rects[0], want)
	}
}

func TestFlipIsInvolution(t *testing.T) {
	container := NewRect(0, 0, 401, 200)
	original := []Rect{
		NewRect(0, 0, 134, 200),
		NewRect(134, 0, 133, 200),
		NewRect(267, 0, 133, 200),
	}
	for _, f := range []Flip{FlipNone, FlipHorizontal, FlipVertical, FlipBoth} {
		rects := append([]Rect(nil), original...)
		FlipRects(rects, f, container)
		FlipRects(rects, f, container)
		for i := range rects {
			if rects[i] != original[i] {
				t.Errorf("flip %v twice: rect %d = %+v, want %+v", f, i, rects[i], original[i])
			}
		}
	}
}

func TestFlipToggle(t *testing.T) {
	f := FlipNone
	f = f.ToggleHorizontal()
	if f != FlipHorizontal {
		t.Fatalf("ToggleHorizontal from None = %v, want Horizontal", f)
	}
	f = f.ToggleVertical()
	if f != FlipBoth {
		t.Fatalf("ToggleVertical from Horizontal = %v, want Both", f)
	}
	f = f.ToggleHorizontal()
	if f != FlipVertical {
		t.Fatalf("ToggleHorizontal from Both = %v, want Vertical", f)
	}
}
