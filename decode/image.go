// Package decode turns encoded image files into pixel data
// ready for texture upload.
package decode

import (
	"bytes"
	"fmt"
	"image"

	// registered image formats
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/devblok/fun/core"
)

// Images decodes any registered image format into RGBA
type Images struct{}

// DecodeImage implements core.ImageDecoder
func (Images) DecodeImage(data []byte) (*image.RGBA, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("image.Decode(): %w", err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%s image has no pixels", format)
	}
	return core.GetPixels(img), nil
}
