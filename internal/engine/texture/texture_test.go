package texture

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
)

var (
	red   = color.RGBA{R: 255, A: 255}
	green = color.RGBA{G: 255, A: 255}
	blue  = color.RGBA{B: 255, A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

func tgaHeader(imageType byte, w, h int, bpp, descriptor byte) []byte {
	hdr := make([]byte, 18)
	hdr[2] = imageType
	hdr[12], hdr[13] = byte(w), byte(w>>8)
	hdr[14], hdr[15] = byte(h), byte(h>>8)
	hdr[16] = bpp
	hdr[17] = descriptor
	return hdr
}

func TestDecodeTGAUncompressedBottomUp(t *testing.T) {
	data := tgaHeader(TGATypeUncompressed, 2, 2, 24, 0)
	// File order is bottom row first, BGR.
	data = append(data,
		0, 0, 255, 0, 255, 0, // bottom: red, green
		255, 0, 0, 255, 255, 255, // top: blue, white
	)

	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA() error = %v", err)
	}

	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 1, red},
		{1, 1, green},
		{0, 0, blue},
		{1, 0, white},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDecodeTGARLE(t *testing.T) {
	data := tgaHeader(TGATypeRLE, 2, 2, 32, 0x20)
	data = append(data, 0x83, 0, 0, 255, 128) // run of 4, BGRA

	img, err := DecodeTGA(data)
	if err != nil {
		t.Fatalf("DecodeTGA() error = %v", err)
	}
	want := color.RGBA{R: 255, A: 128}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := img.RGBAAt(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestDecodeTGAErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"short", []byte{1, 2, 3}},
		{"color mapped", func() []byte { h := tgaHeader(1, 1, 1, 24, 0); h[1] = 1; return h }()},
		{"grayscale", tgaHeader(3, 1, 1, 8, 0)},
		{"16 bit", tgaHeader(TGATypeUncompressed, 1, 1, 16, 0)},
		{"truncated raw", append(tgaHeader(TGATypeUncompressed, 2, 2, 24, 0), 1, 2, 3)},
		{"truncated rle", append(tgaHeader(TGATypeRLE, 2, 2, 24, 0), 0x83)},
		{"zero width", tgaHeader(TGATypeUncompressed, 0, 4, 32, 0)},
		{"zero height", tgaHeader(TGATypeUncompressed, 4, 0, 32, 0)},
		{"zero size rle", tgaHeader(TGATypeRLE, 0, 0, 24, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeTGA(tt.data); !errors.Is(err, ErrTGA) {
				t.Errorf("DecodeTGA() error = %v, want ErrTGA", err)
			}
		})
	}
}

func TestDecodeRejectsEmptyTGA(t *testing.T) {
	_, err := Decode("empty.tga", tgaHeader(TGATypeUncompressed, 0, 0, 32, 0))
	if !errors.Is(err, ErrTGA) {
		t.Errorf("Decode() error = %v, want ErrTGA", err)
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name string
		img  *image.RGBA
		ok   bool
	}{
		{"nil", nil, false},
		{"zero size", image.NewRGBA(image.Rect(0, 0, 0, 0)), false},
		{"zero height", image.NewRGBA(image.Rect(0, 0, 3, 0)), false},
		{"missing pixels", &image.RGBA{Rect: image.Rect(0, 0, 2, 2), Stride: 8}, false},
		{"white", White(), true},
		{"column", column(), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(tt.img)
			if tt.ok && err != nil {
				t.Errorf("Check() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrEmpty) {
				t.Errorf("Check() = %v, want ErrEmpty", err)
			}
		})
	}
}

// column returns a 1x2 image: red on top, blue below.
func column() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 1, 2))
	img.SetRGBA(0, 0, red)
	img.SetRGBA(0, 1, blue)
	return img
}

func TestDecodeFlipsForGL(t *testing.T) {
	var pngBuf, bmpBuf bytes.Buffer
	if err := png.Encode(&pngBuf, column()); err != nil {
		t.Fatal(err)
	}
	if err := bmp.Encode(&bmpBuf, column()); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"floor.png", pngBuf.Bytes()},
		{"airship.BMP", bmpBuf.Bytes()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := Decode(tt.name, tt.data)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if got := img.RGBAAt(0, 0); got != blue {
				t.Errorf("row 0 = %v, want bottom row %v", got, blue)
			}
			if got := img.RGBAAt(0, 1); got != red {
				t.Errorf("row 1 = %v, want top row %v", got, red)
			}
		})
	}
}

func TestDecodeUnknownFormat(t *testing.T) {
	if _, err := Decode("tree.gif", []byte("not an image")); err == nil {
		t.Error("Decode() should fail on garbage")
	}
}

func TestToRGBARebasesOrigin(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 7, 6))
	src.SetRGBA(5, 5, green)
	got := ToRGBA(src, false)
	if got.Bounds() != image.Rect(0, 0, 2, 1) {
		t.Fatalf("bounds = %v", got.Bounds())
	}
	if got.RGBAAt(0, 0) != green {
		t.Errorf("pixel = %v, want %v", got.RGBAAt(0, 0), green)
	}
}

func TestWhite(t *testing.T) {
	img := White()
	if img.Bounds().Dx() != 1 || img.Bounds().Dy() != 1 || img.RGBAAt(0, 0) != white {
		t.Errorf("White() = %v %v", img.Bounds(), img.RGBAAt(0, 0))
	}
}
