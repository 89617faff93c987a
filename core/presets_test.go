package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetsBuild(t *testing.T) {
	names := map[string]bool{}
	for _, p := range Presets {
		k, err := p.Kernel()
		require.NoError(t, err, p.Name)
		assert.Equal(t, 1, k.Size()%2, p.Name)
		assert.False(t, names[p.Name], "duplicate preset name %s", p.Name)
		names[p.Name] = true
	}
}

func TestGaussianBlurPreset(t *testing.T) {
	k, err := GaussianBlur3x3.Kernel()
	require.NoError(t, err)
	assert.Equal(t, 3, k.Size())
	assert.Equal(t, 16.0, k.Factor)
	assert.Equal(t, 0.0, k.Offset)
	assert.Equal(t, [][]float64{{1, 2, 1}, {2, 4, 2}, {1, 2, 1}}, k.Weights.GetAs2DSlice())
	assert.Equal(t, k.Factor, k.Weights.Sum())
}

func TestPresetKernelIsIndependent(t *testing.T) {
	k, err := GaussianBlur3x3.Kernel()
	require.NoError(t, err)
	k.Weights.Set(1, 1, 0)

	again, err := GaussianBlur3x3.Kernel()
	require.NoError(t, err)
	assert.Equal(t, 4.0, again.Weight(1, 1))
}

func TestGaussianKernel(t *testing.T) {
	for _, size := range []int{1, 3, 5, 21} {
		k, err := GaussianKernel(size)
		require.NoError(t, err)
		assert.Equal(t, size, k.Size())
		assert.Equal(t, 1.0, k.Factor)
		assert.InDelta(t, 1.0, k.Weights.Sum(), 1e-9)

		// centre is the heaviest weight and the kernel is symmetric
		c := k.Radius()
		for i := 0; i < size; i++ {
			for j := 0; j < size; j++ {
				assert.LessOrEqual(t, k.Weight(i, j), k.Weight(c, c))
				assert.True(t, math.Abs(k.Weight(i, j)-k.Weight(j, i)) < 1e-12)
				assert.True(t, math.Abs(k.Weight(i, j)-k.Weight(size-1-i, j)) < 1e-12)
			}
		}
	}
}

func TestGaussianKernelInvalid(t *testing.T) {
	for _, size := range []int{0, -3, 2, 4} {
		_, err := GaussianKernel(size)
		assert.ErrorIs(t, err, ErrInvalidConfiguration, "size %d", size)
	}
}
