package tileascii

import (
	"strings"
	"testing"

	"github.com/kestrelwm/tilecalc/pkg/tile"
)

func TestRenderProducesOneLabelPerTile(t *testing.T) {
	r := tile.NewRegistry()
	l, _ := r.Get("EvenHorizontal")
	container := tile.NewRect(0, 0, 400, 200)
	tiles := tile.Apply(l, 3, container)

	out := Render(tiles, container, 80, 24)
	lines := strings.Split(out, "\n")
	if len(lines) != 24 {
		t.Fatalf("got %d lines, want 24", len(lines))
	}
	for i := range tiles {
		if !strings.Contains(out, itoa(i)) {
			t.Errorf("output missing label %d", i)
		}
	}
}

func TestRenderEmptyOnDegenerateInput(t *testing.T) {
	container := tile.NewRect(0, 0, 400, 200)
	if got := Render(nil, container, 0, 24); got != "" {
		t.Errorf("Render with cols=0 should be empty, got %q", got)
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := ""
	for n > 0 {
		digits = string(rune('0'+n%10)) + digits
		n /= 10
	}
	return digits
}
