package tile

// Rotation represents a clockwise rotation in 90-degree steps: North is the
// identity (0 degrees), East is 90, South is 180, West is 270.
type Rotation int

const (
	North Rotation = iota
	East
	South
	West
)

// Clockwise returns the rotation one step further clockwise.
func (r Rotation) Clockwise() Rotation {
	return (r + 1) % 4
}

// CounterClockwise returns the rotation one step further counter-clockwise.
func (r Rotation) CounterClockwise() Rotation {
	return (r + 3) % 4
}

// AspectRatioChanges reports whether rotating container by r swaps its
// width and height (true for East/West, false for North/South). A square
// container's aspect ratio doesn't visibly change, but the swap still
// happens geometrically, so the rule is based purely on the rotation, not
// on the container's dimensions.
func (r Rotation) AspectRatioChanges() bool {
	return r == East || r == West
}

// NextAnchor returns the corner of rect that becomes its new top-left after
// rotating by r. Rect is expected to already be container-relative.
func (r Rotation) NextAnchor(rect Rect) Point {
	switch r {
	case North:
		return Point{rect.X, rect.Y}
	case East:
		return Point{rect.X, rect.Y + rect.H}
	case South:
		return Point{rect.X + rect.W, rect.Y + rect.H}
	case West:
		return Point{rect.X + rect.W, rect.Y}
	default:
		return Point{rect.X, rect.Y}
	}
}

// RotateRects rotates every rectangle in rects within container, in place,
// by rotation, then repairs the 1-pixel seams that non-divisible aspect
// changes can introduce.
func RotateRects(rects []Rect, rotation Rotation, container Rect) {
	for i := range rects {
		rotateSingleRect(&rects[i], rotation, container)
	}
	fillRotationGaps(rects, container)
}

func rotateSingleRect(r *Rect, rotation Rotation, container Rect) {
	r.X -= container.X
	r.Y -= container.Y

	anchor := rotation.NextAnchor(*r)
	switch rotation {
	case North:
		// no-op
	case East:
		r.X = container.H - anchor.Y
		r.Y = anchor.X
		r.W, r.H = r.H, r.W
	case South:
		r.X = container.W - anchor.X
		r.Y = container.H - anchor.Y
	case West:
		r.X = anchor.Y
		r.Y = container.W - anchor.X
		r.W, r.H = r.H, r.W
	}

	if rotation.AspectRatioChanges() && container.H != 0 && container.W != 0 {
		r.X = r.X * container.W / container.H
		r.Y = r.Y * container.H / container.W
		r.W = r.W * container.W / container.H
		r.H = r.H * container.H / container.W
	}

	r.X += container.X
	r.Y += container.Y
}

// fillRotationGaps walks rects and extends any rectangle whose right or
// bottom edge sits exactly one pixel short of its neighbor (or the
// container edge) so the "no gaps" invariant holds after a rotation that
// changed the container's aspect ratio in a way integer math can't
// represent exactly.
func fillRotationGaps(rects []Rect, container Rect) {
	n := len(rects)
	for i := 0; i < n; i++ {
		wideEnough := true
		highEnough := true

		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			other := rects[j]
			if !other.Contains(rects[i].Right(), rects[i].Y+1) && other.Contains(rects[i].Right()+1, rects[i].Y+1) {
				wideEnough = false
			}
			if !other.Contains(rects[i].X+1, rects[i].Bottom()) && other.Contains(rects[i].X+1, rects[i].Bottom()+1) {
				highEnough = false
			}
		}

		if rects[i].Right()+1 == container.Right() {
			wideEnough = false
		}
		if rects[i].Bottom()+1 == container.Bottom() {
			highEnough = false
		}

		if !wideEnough && container.Contains(rects[i].Right()+1, rects[i].Y) {
			rects[i].W++
		}
		if !highEnough && container.Contains(rects[i].X, rects[i].Bottom()+1) {
			rects[i].H++
		}
	}
}
