package main

import (
	color2 "image/color"
	"testing"

	"github.com/kpfaulkner/convolve-go/testcommon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownscale(t *testing.T) {
	c := color2.NRGBA{R: 40, G: 80, B: 120, A: 255}
	buf := testcommon.GenerateUniformBuffer(t, 100, 50, c)

	out, err := downscale(buf, 20)
	require.NoError(t, err)
	assert.Equal(t, 20, out.Width)
	assert.Equal(t, 10, out.Height)
	got := out.At(10, 5)
	assert.InDelta(t, c.R, got.R, 1)
	assert.InDelta(t, c.G, got.G, 1)
	assert.InDelta(t, c.B, got.B, 1)
	assert.InDelta(t, c.A, got.A, 1)
}

func TestDownscaleKeepsOneRow(t *testing.T) {
	buf := testcommon.GenerateUniformBuffer(t, 100, 1, color2.NRGBA{A: 255})

	out, err := downscale(buf, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, out.Width)
	assert.Equal(t, 1, out.Height)
}
