package core_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/devblok/fun/core"
)

var testImage = func() image.Image {
	img := image.NewNRGBA(image.Rect(10, 20, 266, 276))
	for y := img.Rect.Min.Y; y < img.Rect.Max.Y; y++ {
		for x := img.Rect.Min.X; x < img.Rect.Max.X; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 0x80, A: 0xff})
		}
	}
	return img
}()

func TestGetPixelsRebasesOrigin(t *testing.T) {
	rgba := core.GetPixels(testImage)
	if rgba.Bounds() != image.Rect(0, 0, 256, 256) {
		t.Fatalf("unexpected bounds: %v", rgba.Bounds())
	}
	if len(rgba.Pix) != 256*256*4 {
		t.Fatalf("pixels are not tightly packed: %d", len(rgba.Pix))
	}
	got := rgba.RGBAAt(0, 0)
	if got.R != 10 || got.G != 20 || got.B != 0x80 || got.A != 0xff {
		t.Fatalf("unexpected first pixel: %v", got)
	}
}

func TestGetPixelsKeepsPackedRGBA(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if core.GetPixels(src) != src {
		t.Error("packed RGBA image should not be copied")
	}
}

func BenchmarkGetPixelsNRGBA(b *testing.B) {
	for idx := 0; idx < b.N; idx++ {
		core.GetPixels(testImage)
	}
}

func BenchmarkGetPixelsGray(b *testing.B) {
	gray := image.NewGray(image.Rect(0, 0, 512, 512))
	for idx := 0; idx < b.N; idx++ {
		core.GetPixels(gray)
	}
}
