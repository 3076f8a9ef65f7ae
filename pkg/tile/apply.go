package tile

// Apply is the engine's single entry point: given a layout definition, a
// window count, and a container, it returns an ordered, non-overlapping
// tiling of the container. The result is referentially transparent -
// identical arguments always produce an identical slice.
//
// Output length is min(windowCount, layout.MaxWindows()) when the latter is
// bounded (monocle or main-and-deck layouts), and windowCount otherwise,
// modulo columns left empty under a non-reserving Reserve policy.
func Apply(layout LayoutDefinition, windowCount int, container Rect) []Rect {
	if windowCount <= 0 {
		return []Rect{}
	}

	var tiles []Rect
	switch {
	case layout.Columns.Main == nil:
		tiles = Split(container, windowCount, layout.Columns.Stack.Split)

	case layout.Columns.SecondStack == nil:
		tiles = applyTwoColumn(layout, windowCount, container)

	default:
		tiles = applyThreeColumn(layout, windowCount, container)
	}

	if layout.Flip != FlipNone {
		FlipRects(tiles, layout.Flip, container)
	}
	if layout.Rotate != North {
		RotateRects(tiles, layout.Rotate, container)
	}
	return tiles
}

func applyTwoColumn(layout LayoutDefinition, windowCount int, container Rect) []Rect {
	main := layout.Columns.Main
	mainRect, stackRect := TwoColumn(windowCount, container, main.Count, main.Size, layout.Reserve)

	populated := make([]*Rect, 0, 2)
	if mainRect != nil {
		populated = append(populated, mainRect)
	}
	if stackRect != nil {
		populated = append(populated, stackRect)
	}
	applyColumnsTransform(populated, layout.Columns, container)

	mainCount := minInt(main.Count, windowCount)
	stackCount := windowCount - mainCount

	out := make([]Rect, 0, windowCount)
	if mainRect != nil {
		mainTiles := Split(*mainRect, mainCount, main.Split)
		if main.Flip != FlipNone {
			FlipRects(mainTiles, main.Flip, container)
		}
		if main.Rotate != North {
			RotateRects(mainTiles, main.Rotate, container)
		}
		out = append(out, mainTiles...)
	}
	if stackRect != nil {
		stackTiles := Split(*stackRect, stackCount, layout.Columns.Stack.Split)
		if layout.Columns.Stack.Flip != FlipNone {
			FlipRects(stackTiles, layout.Columns.Stack.Flip, container)
		}
		if layout.Columns.Stack.Rotate != North {
			RotateRects(stackTiles, layout.Columns.Stack.Rotate, container)
		}
		out = append(out, stackTiles...)
	}
	return out
}

func applyThreeColumn(layout LayoutDefinition, windowCount int, container Rect) []Rect {
	main := layout.Columns.Main
	second := layout.Columns.SecondStack
	// The three-column composer balances the two stacks evenly iff the
	// left stack has a split strategy; absent a split, the left stack
	// never holds more than one window, which is exactly the unbalanced
	// distribution's invariant (l = min(1, s)).
	balance := layout.Columns.Stack.Split != nil

	leftRect, mainRect, rightRect := ThreeColumn(windowCount, container, main.Count, main.Size, layout.Reserve, balance)

	populated := make([]*Rect, 0, 3)
	if leftRect != nil {
		populated = append(populated, leftRect)
	}
	if mainRect != nil {
		populated = append(populated, mainRect)
	}
	if rightRect != nil {
		populated = append(populated, rightRect)
	}
	applyColumnsTransform(populated, layout.Columns, container)

	mainCount := minInt(main.Count, windowCount)
	stackTotal := windowCount - mainCount
	var leftCount, rightCount int
	switch {
	case stackTotal == 1:
		leftCount, rightCount = 1, 0
	case stackTotal >= 2 && !balance:
		leftCount, rightCount = 1, stackTotal-1
	case stackTotal >= 2 && balance:
		parts := RemainderlessDivision(stackTotal, 2)
		leftCount, rightCount = parts[0], parts[1]
	default:
		leftCount, rightCount = 0, 0
	}

	out := make([]Rect, 0, windowCount)
	if mainRect != nil {
		mainTiles := Split(*mainRect, mainCount, main.Split)
		if main.Flip != FlipNone {
			FlipRects(mainTiles, main.Flip, container)
		}
		if main.Rotate != North {
			RotateRects(mainTiles, main.Rotate, container)
		}
		out = append(out, mainTiles...)
	}
	if leftRect != nil {
		leftTiles := Split(*leftRect, leftCount, layout.Columns.Stack.Split)
		if layout.Columns.Stack.Flip != FlipNone {
			FlipRects(leftTiles, layout.Columns.Stack.Flip, container)
		}
		if layout.Columns.Stack.Rotate != North {
			RotateRects(leftTiles, layout.Columns.Stack.Rotate, container)
		}
		out = append(out, leftTiles...)
	}
	if rightRect != nil {
		rightAxis := &second.Split
		rightTiles := Split(*rightRect, rightCount, rightAxis)
		if second.Flip != FlipNone {
			FlipRects(rightTiles, second.Flip, container)
		}
		if second.Rotate != North {
			RotateRects(rightTiles, second.Rotate, container)
		}
		out = append(out, rightTiles...)
	}
	return out
}

// applyColumnsTransform applies the columns-level flip/rotate to the
// populated column rectangles as a group, treating them as positioned
// regions rather than their eventual window contents.
func applyColumnsTransform(populated []*Rect, columns Columns, container Rect) {
	if len(populated) == 0 {
		return
	}
	if columns.Flip == FlipNone && columns.Rotate == North {
		return
	}
	tmp := make([]Rect, len(populated))
	for i, r := range populated {
		tmp[i] = *r
	}
	if columns.Flip != FlipNone {
		FlipRects(tmp, columns.Flip, container)
	}
	if columns.Rotate != North {
		RotateRects(tmp, columns.Rotate, container)
	}
	for i, r := range populated {
		*r = tmp[i]
	}
}
