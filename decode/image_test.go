package decode_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/devblok/fun/decode"
)

func encode(t *testing.T, img image.Image, enc func(*bytes.Buffer, image.Image) error) []byte {
	var buf bytes.Buffer
	if err := enc(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestDecodeImage(t *testing.T) {
	src := image.NewPaletted(image.Rect(0, 0, 7, 3), color.Palette{color.Black, color.White})
	src.SetColorIndex(0, 0, 1)

	encoders := map[string]func(*bytes.Buffer, image.Image) error{
		"png": func(b *bytes.Buffer, i image.Image) error { return png.Encode(b, i) },
		"bmp": func(b *bytes.Buffer, i image.Image) error { return bmp.Encode(b, i) },
	}
	for name, enc := range encoders {
		t.Run(name, func(t *testing.T) {
			rgba, err := decode.Images{}.DecodeImage(encode(t, src, enc))
			if err != nil {
				t.Fatal(err)
			}
			if rgba.Bounds().Dx() != 7 || rgba.Bounds().Dy() != 3 {
				t.Fatalf("unexpected size %v", rgba.Bounds())
			}
			if got := rgba.RGBAAt(0, 0); got != (color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
				t.Errorf("unexpected pixel %v", got)
			}
		})
	}
}

func TestDecodeImageCorrupt(t *testing.T) {
	if _, err := (decode.Images{}).DecodeImage([]byte("\x89PNG but not really")); err == nil {
		t.Error("expected an error for a corrupt image")
	}
}
