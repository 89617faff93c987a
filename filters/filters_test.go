package filters

import (
	color2 "image/color"
	"testing"

	"github.com/kpfaulkner/convolve-go/core"
	"github.com/kpfaulkner/convolve-go/image"
	"github.com/kpfaulkner/convolve-go/testcommon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ImageFilter = (*KernelFilter)(nil)

func TestGaussianBlurFilter(t *testing.T) {
	f := NewGaussianBlur()
	assert.Equal(t, "gaussian", f.Name())
	assert.Equal(t, 16.0, f.Kernel().Factor)

	gray := color2.NRGBA{R: 128, G: 128, B: 128, A: 255}
	out, err := f.Apply(testcommon.GenerateUniformBuffer(t, 3, 3, gray))
	require.NoError(t, err)
	assert.Equal(t, gray, out.At(1, 1))
}

func TestFilterMatchesEngine(t *testing.T) {
	input := testcommon.GenerateGradientBuffer(t, 12, 10)
	for _, f := range []*KernelFilter{NewGaussianBlur(), NewBoxBlur(), NewSharpen(), NewEdgeDetect(), NewEmboss()} {
		expected, err := core.Apply(input, f.Kernel())
		require.NoError(t, err)

		out, err := f.Apply(input)
		require.NoError(t, err)
		assert.True(t, expected.Equals(out), f.Name())
	}
}

func TestFilterWithEngine(t *testing.T) {
	engine, err := core.NewEngine(core.WithWorkers(4))
	require.NoError(t, err)

	input := testcommon.GenerateGradientBuffer(t, 20, 20)
	f := NewSharpen()
	expected, err := f.Apply(input)
	require.NoError(t, err)

	out, err := f.WithEngine(engine).Apply(input)
	require.NoError(t, err)
	assert.True(t, expected.Equals(out))
}

func TestFilterApplyError(t *testing.T) {
	empty, err := image.NewPixelBuffer(0, 0)
	require.NoError(t, err)

	out, err := NewGaussianBlur().Apply(empty)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, core.ErrInvalidInput)
	assert.Contains(t, err.Error(), "gaussian")
}

func TestNewKernelFilterInvalid(t *testing.T) {
	_, err := NewKernelFilter("bad", &core.Kernel{}, nil)
	assert.ErrorIs(t, err, core.ErrInvalidConfiguration)
}

func TestCustomKernelFilter(t *testing.T) {
	k, err := core.NewKernel([][]float64{{0, 0, 0}, {0, 0, 1}, {0, 0, 0}}, 1, 0)
	require.NoError(t, err)
	f, err := NewKernelFilter("shift-left", k, nil)
	require.NoError(t, err)

	input, err := image.NewPixelBufferFromPixels(3, 1, []color2.NRGBA{
		{R: 10, A: 255}, {R: 20, A: 255}, {R: 30, A: 255},
	})
	require.NoError(t, err)

	out, err := f.Apply(input)
	require.NoError(t, err)
	assert.Equal(t, uint8(20), out.At(0, 0).R)
	assert.Equal(t, uint8(30), out.At(1, 0).R)
	assert.Equal(t, uint8(0), out.At(2, 0).R)
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		f, err := Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, name, f.Name())
	}

	_, err := Lookup("posterize")
	assert.ErrorIs(t, err, ErrUnknownFilter)
}

func TestNames(t *testing.T) {
	names := Names()
	assert.Len(t, names, len(core.Presets))
	assert.Contains(t, names, "gaussian")
	assert.IsIncreasing(t, names)
}
