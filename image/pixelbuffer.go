package image

import (
	"errors"
	"fmt"
	image2 "image"
	color2 "image/color"

	xdraw "golang.org/x/image/draw"
)

var (
	ErrInvalidDimensions = errors.New("invalid dimensions")
	ErrPixelCount        = errors.New("pixel count does not match dimensions")
)

// PixelBuffer is a row-major grid of non-premultiplied 8 bit RGBA pixels.
// Pixel (x,y) lives at Pix[y*Width+x].
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []color2.NRGBA
}

// NewPixelBuffer allocates a zeroed (transparent black) buffer.
func NewPixelBuffer(width int, height int) (*PixelBuffer, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]color2.NRGBA, width*height),
	}, nil
}

// NewPixelBufferFromPixels wraps an existing pixel slice. The slice is not copied.
func NewPixelBufferFromPixels(width int, height int, pix []color2.NRGBA) (*PixelBuffer, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if len(pix) != width*height {
		return nil, fmt.Errorf("%w: have %d, want %d", ErrPixelCount, len(pix), width*height)
	}
	return &PixelBuffer{Width: width, Height: height, Pix: pix}, nil
}

// NewUniformPixelBuffer fills every pixel with c.
func NewUniformPixelBuffer(width int, height int, c color2.NRGBA) (*PixelBuffer, error) {
	pb, err := NewPixelBuffer(width, height)
	if err != nil {
		return nil, err
	}
	for i := range pb.Pix {
		pb.Pix[i] = c
	}
	return pb, nil
}

// NewPixelBufferFromImage converts any image.Image. The result always starts at (0,0)
// regardless of the source bounds.
func NewPixelBufferFromImage(img image2.Image) (*PixelBuffer, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidDimensions)
	}
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pb, err := NewPixelBuffer(width, height)
	if err != nil {
		return nil, err
	}

	var src *image2.NRGBA
	if n, ok := img.(*image2.NRGBA); ok {
		src = n
	} else {
		src = image2.NewNRGBA(image2.Rect(0, 0, width, height))
		xdraw.Draw(src, src.Bounds(), img, bounds.Min, xdraw.Src)
		bounds = src.Bounds()
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pb.Pix[y*width+x] = src.NRGBAAt(bounds.Min.X+x, bounds.Min.Y+y)
		}
	}
	return pb, nil
}

// ToImage copies the buffer into a newly allocated image.NRGBA.
func (pb *PixelBuffer) ToImage() *image2.NRGBA {
	img := image2.NewNRGBA(image2.Rect(0, 0, pb.Width, pb.Height))
	for y := 0; y < pb.Height; y++ {
		for x := 0; x < pb.Width; x++ {
			img.SetNRGBA(x, y, pb.Pix[y*pb.Width+x])
		}
	}
	return img
}

func (pb *PixelBuffer) IsEmpty() bool {
	return pb == nil || pb.Width == 0 || pb.Height == 0
}

func (pb *PixelBuffer) InBounds(x int, y int) bool {
	return x >= 0 && y >= 0 && x < pb.Width && y < pb.Height
}

// At returns the pixel at (x,y). Caller must ensure the coordinate is in bounds.
func (pb *PixelBuffer) At(x int, y int) color2.NRGBA {
	return pb.Pix[y*pb.Width+x]
}

func (pb *PixelBuffer) Set(x int, y int, c color2.NRGBA) {
	pb.Pix[y*pb.Width+x] = c
}

// Row returns the pixels of row y, sharing storage with the buffer.
func (pb *PixelBuffer) Row(y int) []color2.NRGBA {
	return pb.Pix[y*pb.Width : (y+1)*pb.Width]
}

func (pb *PixelBuffer) Clone() *PixelBuffer {
	pix := make([]color2.NRGBA, len(pb.Pix))
	copy(pix, pb.Pix)
	return &PixelBuffer{Width: pb.Width, Height: pb.Height, Pix: pix}
}

// Equals compares dimensions and every pixel.
func (pb *PixelBuffer) Equals(other *PixelBuffer) bool {
	if pb == nil || other == nil {
		return pb == other
	}
	if pb.Width != other.Width || pb.Height != other.Height || len(pb.Pix) != len(other.Pix) {
		return false
	}
	for i := range pb.Pix {
		if pb.Pix[i] != other.Pix[i] {
			return false
		}
	}
	return true
}
