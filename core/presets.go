package core

import (
	"fmt"
	"math"

	"github.com/kpfaulkner/convolve-go/util"
)

// Preset is a named kernel configuration. Kernel() builds a fresh Kernel each
// call so callers can never modify a shared preset.
type Preset struct {
	Name    string
	Weights [][]float64
	Factor  float64
	Offset  float64
}

var (
	GaussianBlur3x3 = Preset{
		Name: "gaussian",
		Weights: [][]float64{
			{1, 2, 1},
			{2, 4, 2},
			{1, 2, 1},
		},
		Factor: 16,
		Offset: 0,
	}

	Identity = Preset{
		Name:    "identity",
		Weights: [][]float64{{1}},
		Factor:  1,
	}

	BoxBlur3x3 = Preset{
		Name: "box",
		Weights: [][]float64{
			{1, 1, 1},
			{1, 1, 1},
			{1, 1, 1},
		},
		Factor: 9,
	}

	Sharpen = Preset{
		Name: "sharpen",
		Weights: [][]float64{
			{0, -2, 0},
			{-2, 11, -2},
			{0, -2, 0},
		},
		Factor: 3,
	}

	EdgeDetect = Preset{
		Name: "edge",
		Weights: [][]float64{
			{-1, -1, -1},
			{-1, 8, -1},
			{-1, -1, -1},
		},
		Factor: 1,
	}

	Emboss = Preset{
		Name: "emboss",
		Weights: [][]float64{
			{-1, 0, -1},
			{0, 4, 0},
			{-1, 0, -1},
		},
		Factor: 1,
		Offset: 127,
	}

	// Sobel operators, horizontal and vertical gradient.
	SobelX = Preset{
		Name: "sobelx",
		Weights: [][]float64{
			{1, 0, -1},
			{2, 0, -2},
			{1, 0, -1},
		},
		Factor: 1,
	}

	SobelY = Preset{
		Name: "sobely",
		Weights: [][]float64{
			{1, 2, 1},
			{0, 0, 0},
			{-1, -2, -1},
		},
		Factor: 1,
	}
)

// Presets lists every built in preset.
var Presets = []Preset{GaussianBlur3x3, Identity, BoxBlur3x3, Sharpen, EdgeDetect, Emboss, SobelX, SobelY}

func (p Preset) Kernel() (*Kernel, error) {
	k, err := NewKernel(p.Weights, p.Factor, p.Offset)
	if err != nil {
		return nil, fmt.Errorf("preset %s: %w", p.Name, err)
	}
	return k, nil
}

// GaussianKernel generates a normalised size x size Gaussian with
// sigma = size/3. Weights sum to 1 so the factor is 1.
func GaussianKernel(size int) (*Kernel, error) {
	if size < 1 || size%2 == 0 {
		return nil, fmt.Errorf("%w: gaussian size %d must be odd and positive", ErrInvalidConfiguration, size)
	}

	weights := util.MakeMatrix2D[float64](size, size)
	sigma := float64(size) / 3.0
	center := size / 2
	sum := 0.0
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			x := float64(i - center)
			y := float64(j - center)
			weights[i][j] = math.Exp(-(x*x + y*y) / (2 * sigma * sigma))
			sum += weights[i][j]
		}
	}

	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			weights[i][j] /= sum
		}
	}

	return NewKernel(weights, 1, 0)
}
