// Package tileascii renders a tile.Apply result as plain text, for
// terminals that can't or shouldn't run the bubbletea preview (no TTY, a
// dumb TERM, or an explicit fallback request).
package tileascii

import (
	"strconv"
	"strings"

	"github.com/kestrelwm/tilecalc/pkg/tile"
)

// Render draws tiles scaled into a cols x rows character grid, labelling
// each tile with its decimal index and a dash/pipe border between adjacent
// cells.
func Render(tiles []tile.Rect, container tile.Rect, cols, rows int) string {
	if cols <= 0 || rows <= 0 || container.W <= 0 || container.H <= 0 {
		return ""
	}
	grid := make([][]byte, rows)
	for y := range grid {
		row := make([]byte, cols)
		for x := range row {
			row[x] = ' '
		}
		grid[y] = row
	}

	for i, r := range tiles {
		x0 := (r.X - container.X) * cols / container.W
		y0 := (r.Y - container.Y) * rows / container.H
		x1 := x0 + maxInt(1, r.W*cols/container.W)
		y1 := y0 + maxInt(1, r.H*rows/container.H)
		drawBox(grid, x0, y0, x1, y1, cols, rows, strconv.Itoa(i))
	}

	lines := make([]string, rows)
	for y, row := range grid {
		lines[y] = string(row)
	}
	return strings.Join(lines, "\n")
}

func drawBox(grid [][]byte, x0, y0, x1, y1, cols, rows int, label string) {
	for x := x0; x < x1 && x < cols; x++ {
		setCell(grid, x, y0, rows, cols, '-')
		setCell(grid, x, y1-1, rows, cols, '-')
	}
	for y := y0; y < y1 && y < rows; y++ {
		setCell(grid, x0, y, rows, cols, '|')
		setCell(grid, x1-1, y, rows, cols, '|')
	}
	midY := (y0 + y1) / 2
	for i, ch := range label {
		setCell(grid, x0+1+i, midY, rows, cols, byte(ch))
	}
}

func setCell(grid [][]byte, x, y, rows, cols int, ch byte) {
	if x < 0 || x >= cols || y < 0 || y >= rows {
		return
	}
	grid[y][x] = ch
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
