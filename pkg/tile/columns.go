package tile

// TwoColumn derives the main/stack column scaffold. windowCount is the
// total number of windows to place, container is the outer rectangle,
// mainWindowCount is the configured main column capacity, mainSize
// resolves the main column's width, and reserve governs whether empty
// columns keep their space.
//
// The returned rectangles are nil when the corresponding column holds no
// windows.
func TwoColumn(windowCount int, container Rect, mainWindowCount int, mainSize Size, reserve Reserve) (main, stack *Rect) {
	mainWindowCount = minInt(mainWindowCount, windowCount)
	stackWindowCount := saturatingSub(windowCount, mainWindowCount)

	mainHasWindows := mainWindowCount > 0
	stackHasWindows := stackWindowCount > 0

	mainReserve := mainHasWindows || reserve.IsReserved()
	stackReserve := stackHasWindows || reserve.IsReserved()
	mainEmpty := !mainHasWindows && reserve.IsReserved()
	stackEmpty := !stackHasWindows && reserve.IsReserved()

	var mainWidth int
	switch {
	case mainReserve && stackReserve:
		mainWidth = mainSize.IntoAbsolute(container.W)
	case mainReserve && !stackReserve:
		mainWidth = container.W
	default:
		mainWidth = 0
	}
	stackWidth := container.W - mainWidth

	mainOffset := 0
	if reserve == ReserveAndCenter && stackEmpty {
		mainOffset = stackWidth / 2
	}

	stackOffset := mainWidth
	if reserve == ReserveAndCenter && mainEmpty {
		stackOffset = mainWidth / 2
	}

	if mainHasWindows {
		r := Rect{X: container.X + mainOffset, Y: container.Y, W: mainWidth, H: container.H}
		main = &r
	}
	if stackHasWindows {
		r := Rect{X: container.X + stackOffset, Y: container.Y, W: stackWidth, H: container.H}
		stack = &r
	}
	return main, stack
}

// ThreeColumn derives the left-stack/main/right-stack column scaffold.
// balanceStacks controls whether the stack windows are split as evenly as
// possible between the two stacks (remainder-preserving division) or
// whether the left stack takes exactly one window and the right stack
// takes the rest.
func ThreeColumn(windowCount int, container Rect, mainWindowCount int, mainSize Size, reserve Reserve, balanceStacks bool) (left, main, right *Rect) {
	mainWindowCount = minInt(mainWindowCount, windowCount)
	stackWindowCount := saturatingSub(windowCount, mainWindowCount)

	var leftCount, rightCount int
	switch {
	case stackWindowCount == 1:
		leftCount, rightCount = 1, 0
	case stackWindowCount >= 2 && !balanceStacks:
		leftCount, rightCount = 1, stackWindowCount-1
	case stackWindowCount >= 2 && balanceStacks:
		parts := RemainderlessDivision(stackWindowCount, 2)
		leftCount, rightCount = parts[0], parts[1]
	default:
		leftCount, rightCount = 0, 0
	}

	mainHasWindows := mainWindowCount > 0
	leftHasWindows := leftCount > 0
	rightHasWindows := rightCount > 0

	mainReserve := mainHasWindows || reserve.IsReserved()
	leftReserve := leftHasWindows || reserve.IsReserved()
	rightReserve := leftReserve && (rightHasWindows || reserve.IsReserved())

	mainEmpty := !mainHasWindows && reserve.IsReserved()
	leftEmpty := !leftHasWindows && reserve.IsReserved()
	rightEmpty := leftEmpty || (!rightHasWindows && reserve.IsReserved())

	var mainWidth int
	switch {
	case mainReserve && leftReserve:
		mainWidth = mainSize.IntoAbsolute(container.W)
	case mainReserve && !leftReserve:
		mainWidth = container.W
	default:
		mainWidth = 0
	}
	stackWidth := container.W - mainWidth

	var leftWidth int
	switch {
	case leftReserve && !rightReserve:
		leftWidth = stackWidth
	case leftReserve && rightReserve:
		leftWidth = RemainderlessDivision(stackWidth, 2)[0]
	default:
		leftWidth = 0
	}
	rightWidth := 0
	if rightReserve {
		rightWidth = stackWidth - leftWidth
	}

	var mainOffset int
	switch {
	case reserve == ReserveAndCenter && !leftEmpty && rightEmpty:
		mainOffset = leftWidth + rightWidth/2
	case reserve == ReserveAndCenter && leftEmpty:
		mainOffset = stackWidth / 2
	default:
		mainOffset = leftWidth
	}

	var leftOffset int
	switch {
	case reserve == ReserveAndCenter && !mainEmpty && rightEmpty:
		leftOffset = rightWidth / 2
	case reserve == ReserveAndCenter && mainEmpty && !rightEmpty:
		leftOffset = mainWidth / 2
	case reserve == ReserveAndCenter && mainEmpty && rightEmpty:
		leftOffset = (mainWidth + rightWidth) / 2
	default:
		leftOffset = 0
	}

	var rightOffset int
	if reserve == ReserveAndCenter && mainEmpty {
		rightOffset = mainWidth/2 + leftWidth
	} else {
		rightOffset = leftWidth + mainWidth
	}

	if leftHasWindows {
		r := Rect{X: container.X + leftOffset, Y: container.Y, W: leftWidth, H: container.H}
		left = &r
	}
	if mainHasWindows {
		r := Rect{X: container.X + mainOffset, Y: container.Y, W: mainWidth, H: container.H}
		main = &r
	}
	if rightHasWindows {
		r := Rect{X: container.X + rightOffset, Y: container.Y, W: rightWidth, H: container.H}
		right = &r
	}
	return left, main, right
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func saturatingSub(a, b int) int {
	if a < b {
		return 0
	}
	return a - b
}
