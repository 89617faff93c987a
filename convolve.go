package convolve_go

import (
	"errors"
	image2 "image"

	"github.com/kpfaulkner/convolve-go/filters"
	"github.com/kpfaulkner/convolve-go/image"
)

// ApplyFilter runs f over any image.Image and returns the result as an *image.NRGBA
// anchored at (0,0).
func ApplyFilter(img image2.Image, f filters.ImageFilter) (image2.Image, error) {
	if f == nil {
		return nil, errors.New("filter must not be nil")
	}

	buf, err := image.NewPixelBufferFromImage(img)
	if err != nil {
		return nil, err
	}

	out, err := f.Apply(buf)
	if err != nil {
		return nil, err
	}
	return out.ToImage(), nil
}

// BlurImage applies the 3x3 Gaussian blur.
func BlurImage(img image2.Image) (image2.Image, error) {
	return ApplyFilter(img, filters.NewGaussianBlur())
}
