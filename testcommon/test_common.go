package testcommon

import (
	"bytes"
	image2 "image"
	color2 "image/color"
	"image/png"
	"testing"

	"github.com/kpfaulkner/convolve-go/image"
)

// GenerateUniformBuffer returns a width x height buffer where every pixel is c.
func GenerateUniformBuffer(t testing.TB, width int, height int, c color2.NRGBA) *image.PixelBuffer {
	t.Helper()
	pb, err := image.NewUniformPixelBuffer(width, height, c)
	if err != nil {
		t.Fatalf("error generating uniform buffer : %v", err)
	}
	return pb
}

// GenerateGradientBuffer returns a buffer whose channels vary with position
// and whose alpha differs per pixel, so channel mixups and alpha changes show up.
func GenerateGradientBuffer(t testing.TB, width int, height int) *image.PixelBuffer {
	t.Helper()
	pb, err := image.NewPixelBuffer(width, height)
	if err != nil {
		t.Fatalf("error generating gradient buffer : %v", err)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pb.Set(x, y, color2.NRGBA{
				R: uint8((x * 37) % 256),
				G: uint8((y * 53) % 256),
				B: uint8(((x + y) * 19) % 256),
				A: uint8((x*7 + y*11 + 1) % 256),
			})
		}
	}
	return pb
}

// GeneratePNG encodes a width x height image filled with c.
func GeneratePNG(t testing.TB, width int, height int, c color2.NRGBA) []byte {
	t.Helper()
	img := image2.NewNRGBA(image2.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("error encoding png : %v", err)
	}
	return buf.Bytes()
}
