package core

import (
	"image"

	"golang.org/x/image/draw"
)

// GetPixels transforms a given image into tightly packed RGBA pixels
// by drawing the decoded image onto a controlled canvas with its
// origin at (0, 0). Images that already fit are returned as is.
func GetPixels(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && bounds.Min == (image.Point{}) && rgba.Stride == 4*bounds.Dx() {
		return rgba
	}
	canvas := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(canvas, canvas.Bounds(), img, bounds.Min, draw.Src)
	return canvas
}
