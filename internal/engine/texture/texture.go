// Package texture decodes image files into RGBA pixel data ready for upload.
package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg" // register JPEG
	_ "image/png"  // register PNG
	"path"
	"strings"

	_ "golang.org/x/image/bmp" // register BMP
)

// Decode decodes data by the extension of name. TGA has no magic number, so
// it is picked by extension; everything else goes through image.Decode.
// The result is flipped vertically so row 0 is the bottom of the image, the
// order GL expects for texture coordinates with v pointing up.
func Decode(name string, data []byte) (*image.RGBA, error) {
	var img image.Image
	var err error

	if strings.EqualFold(path.Ext(name), ".tga") {
		img, err = DecodeTGA(data)
	} else {
		img, _, err = image.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	rgba := ToRGBA(img, true)
	if err := Check(rgba); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	return rgba, nil
}

// ErrEmpty is returned for images without pixels.
var ErrEmpty = errors.New("texture has no pixels")

// Check reports whether img can be uploaded: non-nil, non-empty and with
// pixel data covering its bounds.
func Check(img *image.RGBA) error {
	if img == nil {
		return ErrEmpty
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 || len(img.Pix) < b.Dy()*img.Stride {
		return fmt.Errorf("%w: %dx%d", ErrEmpty, b.Dx(), b.Dy())
	}
	return nil
}

// ToRGBA converts img to a tightly packed *image.RGBA with origin (0,0),
// optionally flipping it vertically.
func ToRGBA(img image.Image, flipY bool) *image.RGBA {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	if flipY {
		FlipY(rgba)
	}
	return rgba
}

// FlipY mirrors img top to bottom in place.
func FlipY(img *image.RGBA) {
	h := img.Bounds().Dy()
	row := make([]byte, img.Stride)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : (y+1)*img.Stride]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-y)*img.Stride]
		copy(row, top)
		copy(top, bottom)
		copy(bottom, row)
	}
}

// White returns a 1x1 opaque white image, the texture for untextured models.
func White() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	return img
}
