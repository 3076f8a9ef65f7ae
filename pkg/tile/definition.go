package tile

import "log/slog"

// Default tuning constants for the size mutators (§4.6).
const (
	defaultMainSizeChangePixel   = 50
	defaultMainSizeChangePercent = 0.05
)

// Main describes the main column: its window capacity, size, contents
// transform, and split strategy. A nil Split means the column holds at
// most one window.
type Main struct {
	Count  int
	Size   Size
	Flip   Flip
	Rotate Rotation
	Split  *SplitAxis
}

// DefaultMain returns the built-in default main column: one window, half
// the container, split vertically if more windows are assigned later.
func DefaultMain() Main {
	return Main{Count: 1, Size: Ratio(0.5), Split: Axis(SplitVertical)}
}

// Stack describes the (mandatory) stack column. A nil Split means the
// column holds at most one window.
type Stack struct {
	Flip   Flip
	Rotate Rotation
	Split  *SplitAxis
}

// DefaultStack returns the built-in default stack column: horizontal
// split.
func DefaultStack() Stack {
	return Stack{Split: Axis(SplitHorizontal)}
}

// SecondStack describes the optional opposite stack column in a
// three-column layout. Its split strategy is mandatory.
type SecondStack struct {
	Flip   Flip
	Rotate Rotation
	Split  SplitAxis
}

// DefaultSecondStack returns the built-in default second stack: horizontal
// split.
func DefaultSecondStack() SecondStack {
	return SecondStack{Split: SplitHorizontal}
}

// Columns is the column-level scaffold of a layout: an optional main
// column, a mandatory stack column, and an optional second (opposite)
// stack column, plus a columns-level flip/rotate applied to the populated
// columns as positioned rectangles (not their contents).
type Columns struct {
	Flip        Flip
	Rotate      Rotation
	Main        *Main
	Stack       Stack
	SecondStack *SecondStack
}

// LayoutDefinition is the full declarative description of a tiling layout:
// a unique name, a global flip/rotate/reserve policy, and the column
// scaffold.
type LayoutDefinition struct {
	Name    string
	Flip    Flip
	Rotate  Rotation
	Reserve Reserve
	Columns Columns
}

// IsMonocle reports whether the layout holds at most one window: no main,
// no second stack, and the stack has no split strategy.
func (l *LayoutDefinition) IsMonocle() bool {
	return l.Columns.Main == nil && l.Columns.SecondStack == nil && l.Columns.Stack.Split == nil
}

// IsMainAndDeck reports whether the layout holds at most two windows: a
// main column present, no second stack, and neither column splits further.
func (l *LayoutDefinition) IsMainAndDeck() bool {
	if l.Columns.Main == nil {
		return false
	}
	return l.Columns.SecondStack == nil && l.Columns.Main.Split == nil && l.Columns.Stack.Split == nil
}

// MaxWindows returns the maximum number of windows this layout can
// represent, or -1 if unbounded.
func (l *LayoutDefinition) MaxWindows() int {
	switch {
	case l.IsMonocle():
		return 1
	case l.IsMainAndDeck():
		return 2
	default:
		return -1
	}
}

// SetMainSize replaces the main column's size. No-op if there is no main
// column.
func (l *LayoutDefinition) SetMainSize(size Size) {
	if l.Columns.Main == nil {
		return
	}
	l.Columns.Main.Size = size
}

// IncreaseMainSize grows the main size by the default step (50px or 5%),
// clamped to upperBound (pixels) or 1.0 (ratio).
func (l *LayoutDefinition) IncreaseMainSize(upperBound int) {
	if l.Columns.Main == nil {
		return
	}
	if l.Columns.Main.Size.IsRatio() {
		l.changeMainSizePercent(defaultMainSizeChangePercent)
	} else {
		l.changeMainSizePixel(defaultMainSizeChangePixel, upperBound)
	}
}

// DecreaseMainSize shrinks the main size by the default step, clamped at
// zero.
func (l *LayoutDefinition) DecreaseMainSize() {
	if l.Columns.Main == nil {
		return
	}
	if l.Columns.Main.Size.IsRatio() {
		l.changeMainSizePercent(-defaultMainSizeChangePercent)
	} else {
		l.changeMainSizePixel(-defaultMainSizeChangePixel, maxIntConst)
	}
}

// maxIntConst stands in for "no effective upper bound" when decreasing,
// mirroring a saturating decrement with an unconstrained ceiling.
const maxIntConst = int(^uint(0) >> 1)

// ChangeMainSize adjusts the main size by delta, interpreted as pixels
// when the size is a Pixel and as percentage-points when it's a Ratio (a
// delta of 5 means +0.05). The result is clamped to [0, upperBound] or
// [0.0, 1.0] respectively.
func (l *LayoutDefinition) ChangeMainSize(delta, upperBound int) {
	if l.Columns.Main == nil {
		return
	}
	if l.Columns.Main.Size.IsRatio() {
		l.changeMainSizePercent(float64(delta) * 0.01)
	} else {
		l.changeMainSizePixel(delta, upperBound)
	}
}

func (l *LayoutDefinition) changeMainSizePixel(delta, upperBound int) {
	p := l.Columns.Main.Size.PixelValue() + delta
	if p < 0 {
		p = 0
	}
	if p > upperBound {
		p = upperBound
	}
	l.Columns.Main.Size = Pixel(p)
}

func (l *LayoutDefinition) changeMainSizePercent(delta float64) {
	r := l.Columns.Main.Size.RatioValue() + delta
	if r < 0 {
		r = 0
	}
	if r > 1 {
		r = 1
	}
	l.Columns.Main.Size = Ratio(r)
}

// SetMainWindowCount sets the main column's window capacity, clamped at
// zero.
func (l *LayoutDefinition) SetMainWindowCount(count int) {
	if l.Columns.Main == nil {
		return
	}
	if count < 0 {
		count = 0
	}
	l.Columns.Main.Count = count
}

// IncreaseMainWindowCount grows the main column's capacity by one.
func (l *LayoutDefinition) IncreaseMainWindowCount() {
	if l.Columns.Main == nil {
		return
	}
	l.Columns.Main.Count++
}

// DecreaseMainWindowCount shrinks the main column's capacity by one,
// saturating at zero.
func (l *LayoutDefinition) DecreaseMainWindowCount() {
	if l.Columns.Main == nil {
		return
	}
	if l.Columns.Main.Count > 0 {
		l.Columns.Main.Count--
	}
}

// RotateGlobal advances the layout's global rotation by one step,
// clockwise or counter-clockwise.
func (l *LayoutDefinition) RotateGlobal(clockwise bool) {
	if clockwise {
		l.Rotate = l.Rotate.Clockwise()
	} else {
		l.Rotate = l.Rotate.CounterClockwise()
	}
}

// Check validates the layout definition and logs a warning (never an
// error) when it's accepted in a degraded shape: a second stack configured
// without a main column has no effect once Apply degrades to a
// single-column layout (see §7), but it's still worth surfacing to a
// caller who enabled logging.
func (l *LayoutDefinition) Check(logger *slog.Logger) {
	if logger == nil {
		return
	}
	if l.Columns.SecondStack != nil && l.Columns.Main == nil {
		logger.Warn("layout has a second stack but no main column; it will be ignored",
			"layout", l.Name)
	}
}
