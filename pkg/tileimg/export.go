// Package tileimg rasterizes a tile.Apply result to a PNG: one filled
// rectangle per tile plus a contrasting border, headless and independent
// of any terminal.
package tileimg

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	"github.com/kestrelwm/tilecalc/pkg/tile"
)

// palette cycles through a small set of fill colors so adjacent tiles are
// visually distinguishable without any per-layout configuration.
var palette = []color.RGBA{
	{R: 0x6D, G: 0x28, B: 0xD9, A: 0xFF},
	{R: 0x0E, G: 0xA5, B: 0xE9, A: 0xFF},
	{R: 0x16, G: 0xA3, B: 0x4A, A: 0xFF},
	{R: 0xEA, G: 0x58, B: 0x0C, A: 0xFF},
	{R: 0xDB, G: 0x27, B: 0x77, A: 0xFF},
	{R: 0xCA, G: 0x8A, B: 0x04, A: 0xFF},
}

const borderWidth = 2

var borderColor = color.RGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xFF}

// Render rasterizes tiles (as produced by tile.Apply against container)
// into an image the size of container.
func Render(tiles []tile.Rect, container tile.Rect) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, container.W, container.H))
	draw.Draw(img, img.Bounds(), image.NewUniform(borderColor), image.Point{}, draw.Src)

	for i, r := range tiles {
		fill := palette[i%len(palette)]
		drawFilledRect(img, r, container, fill)
	}
	return img
}

// drawFilledRect paints r (in container coordinates) into img, inset by
// borderWidth on each side so neighboring tiles remain visually separated.
func drawFilledRect(img *image.RGBA, r, container tile.Rect, fill color.RGBA) {
	x0 := r.X - container.X + borderWidth
	y0 := r.Y - container.Y + borderWidth
	x1 := r.X - container.X + r.W - borderWidth
	y1 := r.Y - container.Y + r.H - borderWidth
	if x1 <= x0 || y1 <= y0 {
		return
	}
	rect := image.Rect(x0, y0, x1, y1)
	draw.Draw(img, rect, image.NewUniform(fill), image.Point{}, draw.Src)
}

// WriteFile renders tiles against container and writes the result to path
// as a PNG, using imaging's encoder for its format-detection convenience
// over the raw image/png package.
func WriteFile(path string, tiles []tile.Rect, container tile.Rect) error {
	return imaging.Save(Render(tiles, container), path)
}
