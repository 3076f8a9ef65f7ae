package tile

import "testing"

func TestApplyZeroWindowsReturnsEmpty(t *testing.T) {
	r := NewRegistry()
	l, _ := r.Get("MainAndVertStack")
	got := Apply(l, 0, NewRect(0, 0, 400, 200))
	if len(got) != 0 {
		t.Errorf("Apply with 0 windows returned %d rects, want 0", len(got))
	}
}

func TestApplyMainAndVertStackScenario(t *testing.T) {
	r := NewRegistry()
	l, _ := r.Get("MainAndVertStack")
	container := NewRect(2560, 1440, 2560, 1440)
	got := Apply(l, 3, container)
	want := []Rect{
		NewRect(2560, 1440, 1280, 1440),
		NewRect(3840, 1440, 1280, 720),
		NewRect(3840, 2160, 1280, 720),
	}
	assertRects(t, got, want)
}

func TestApplyMonocleCapsAtOneWindow(t *testing.T) {
	r := NewRegistry()
	l, _ := r.Get("Monocle")
	container := NewRect(0, 0, 400, 200)
	got := Apply(l, 5, container)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0] != container {
		t.Errorf("Monocle tile = %+v, want the full container %+v", got[0], container)
	}
}

func TestApplyMainAndDeckCapsAtTwoWindows(t *testing.T) {
	r := NewRegistry()
	l, _ := r.Get("MainAndDeck")
	got := Apply(l, 10, NewRect(0, 0, 400, 200))
	if len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
}

func TestApplyRightMainAndVertStackAppliesGlobalRotation(t *testing.T) {
	r := NewRegistry()
	l, _ := r.Get("RightMainAndVertStack")
	if l.Rotate != South {
		t.Fatalf("RightMainAndVertStack.Rotate = %v, want South", l.Rotate)
	}
	container := NewRect(0, 0, 400, 200)
	got := Apply(l, 1, container)
	total := 0
	for _, rect := range got {
		total += rect.Area()
	}
	if total != container.Area() {
		t.Errorf("total area = %d, want %d", total, container.Area())
	}
}

func TestApplyOutputNeverExceedsWindowCount(t *testing.T) {
	r := NewRegistry()
	container := NewRect(0, 0, 731, 487)
	for _, name := range r.Names() {
		l, _ := r.Get(name)
		for n := 0; n <= 25; n++ {
			got := Apply(l, n, container)
			if len(got) > n {
				t.Errorf("layout %s n=%d: len(Apply) = %d > %d", name, n, len(got), n)
			}
		}
	}
}

func TestApplyNoGapsNoOverlapsWhenAllColumnsPopulated(t *testing.T) {
	r := NewRegistry()
	container := NewRect(0, 0, 800, 600)
	for _, name := range r.Names() {
		l, _ := r.Get(name)
		if l.Reserve != ReserveNone {
			continue
		}
		n := 6
		got := Apply(l, n, container)
		total := 0
		for _, rect := range got {
			total += rect.Area()
		}
		if total != container.Area() {
			t.Errorf("layout %s: total area = %d, want %d (tiles=%+v)", name, total, container.Area(), got)
		}
	}
}

func TestApplyDegenerateInputDoesNotOverproduce(t *testing.T) {
	l := LayoutDefinition{
		Columns: Columns{
			Main:  &Main{Count: 50, Size: Ratio(0.5), Split: Axis(SplitVertical)},
			Stack: Stack{Split: Axis(SplitHorizontal)},
		},
	}
	got := Apply(l, 3, NewRect(0, 0, 400, 200))
	if len(got) != 3 {
		t.Errorf("len = %d, want 3 (main.count=50 must be capped by window count)", len(got))
	}
}

func TestApplySecondStackWithoutMainDegradesToSingleColumn(t *testing.T) {
	l := LayoutDefinition{
		Columns: Columns{
			Stack:       Stack{Split: Axis(SplitHorizontal)},
			SecondStack: &SecondStack{Split: SplitHorizontal},
		},
	}
	got := Apply(l, 4, NewRect(0, 0, 400, 200))
	if len(got) != 4 {
		t.Errorf("len = %d, want 4", len(got))
	}
}

func TestApplyCenterMainThreeColumnScenario(t *testing.T) {
	l := LayoutDefinition{
		Name: "CenterMainBalanced",
		Columns: Columns{
			Main:        mainColumn(),
			Stack:       Stack{Split: Axis(SplitHorizontal)},
			SecondStack: &SecondStack{Split: SplitHorizontal},
		},
	}
	l.Columns.Main.Size = Ratio(0.65)
	container := NewRect(0, 0, 5120, 1440)
	got := Apply(l, 4, container)
	if len(got) != 4 {
		t.Fatalf("len = %d, want 4", len(got))
	}
	total := 0
	for _, r := range got {
		total += r.Area()
	}
	if total != container.Area() {
		t.Errorf("total area = %d, want %d", total, container.Area())
	}
}

// TestApplyCenterMainUnbalancedCapsLeftStackAtOne exercises the builtin
// CenterMain layout, whose stack column has no split strategy: the left
// stack can never hold more than one window regardless of how many windows
// would otherwise be assigned to it, which is the same invariant as the
// unbalanced three-column distribution (l = min(1, s)).
func TestApplyCenterMainUnbalancedCapsLeftStackAtOne(t *testing.T) {
	r := NewRegistry()
	l, _ := r.Get("CenterMain")
	container := NewRect(0, 0, 5120, 1440)
	got := Apply(l, 6, container)
	if len(got) != 6 {
		t.Fatalf("len = %d, want 6", len(got))
	}
	total := 0
	for _, rect := range got {
		total += rect.Area()
	}
	if total != container.Area() {
		t.Errorf("total area = %d, want %d", total, container.Area())
	}
}
