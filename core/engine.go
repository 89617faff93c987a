package core

import (
	"fmt"
	color2 "image/color"
	"sync"

	"github.com/kpfaulkner/convolve-go/image"
	"github.com/kpfaulkner/convolve-go/options"
	"github.com/kpfaulkner/convolve-go/util"
	log "github.com/sirupsen/logrus"
)

type EngineOption func(e *Engine) error

// WithWorkers splits rows across n goroutines. n must be at least 1.
func WithWorkers(n int) EngineOption {
	return func(e *Engine) error {
		if n < 1 {
			return fmt.Errorf("%w: workers must be >= 1, got %d", ErrInvalidConfiguration, n)
		}
		e.opts.Workers = n
		return nil
	}
}

func WithDebug(debug bool) EngineOption {
	return func(e *Engine) error {
		e.opts.Debug = debug
		return nil
	}
}

// WithOptions replaces all settings with a copy of opts.
func WithOptions(opts *options.ConvolutionOptions) EngineOption {
	return func(e *Engine) error {
		e.opts = *options.NewConvolutionOptions(opts)
		return nil
	}
}

// Engine applies kernels to pixel buffers. It holds only immutable settings,
// so one Engine can serve any number of concurrent Apply calls.
type Engine struct {
	opts options.ConvolutionOptions
}

var defaultEngine = &Engine{opts: *options.NewConvolutionOptions(nil)}

func NewEngine(opts ...EngineOption) (*Engine, error) {
	e := &Engine{opts: *options.NewConvolutionOptions(nil)}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Options returns a copy of the engine settings.
func (e *Engine) Options() options.ConvolutionOptions {
	return e.opts
}

// Apply convolves input with kernel using a single goroutine.
func Apply(input *image.PixelBuffer, kernel *Kernel) (*image.PixelBuffer, error) {
	return defaultEngine.Apply(input, kernel)
}

// Apply returns a new buffer the same size as input where each red, green
// and blue value is the kernel weighted sum of its neighbourhood, divided by
// Factor, plus Offset, then clamped to [0,255] and rounded. Neighbours outside
// the buffer contribute nothing. Alpha is copied from the input pixel.
func (e *Engine) Apply(input *image.PixelBuffer, kernel *Kernel) (*image.PixelBuffer, error) {
	if err := kernel.Validate(); err != nil {
		return nil, err
	}
	if input.IsEmpty() {
		if input == nil {
			return nil, fmt.Errorf("%w: nil pixel buffer", ErrInvalidInput)
		}
		return nil, fmt.Errorf("%w: pixel buffer is %dx%d", ErrInvalidInput, input.Width, input.Height)
	}
	if len(input.Pix) != input.Width*input.Height {
		return nil, fmt.Errorf("%w: %d pixels for %dx%d buffer", ErrInvalidInput, len(input.Pix), input.Width, input.Height)
	}

	output, err := image.NewPixelBuffer(input.Width, input.Height)
	if err != nil {
		return nil, err
	}

	workers := util.Min(e.opts.Workers, input.Height)
	if e.opts.Debug {
		log.Debugf("convolving %dx%d buffer with %dx%d kernel factor %v offset %v using %d workers",
			input.Width, input.Height, kernel.Size(), kernel.Size(), kernel.Factor, kernel.Offset, workers)
	}

	if workers <= 1 {
		convolveRows(input, output, kernel, 0, input.Height)
		return output, nil
	}

	rowsPerWorker := (input.Height + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < input.Height; start += rowsPerWorker {
		end := util.Min(start+rowsPerWorker, input.Height)
		wg.Add(1)
		go func(start int, end int) {
			defer wg.Done()
			convolveRows(input, output, kernel, start, end)
		}(start, end)
	}
	wg.Wait()

	return output, nil
}

// convolveRows fills output rows [yStart, yEnd). Each output pixel only
// depends on input, so disjoint row ranges can run concurrently.
func convolveRows(input *image.PixelBuffer, output *image.PixelBuffer, kernel *Kernel, yStart int, yEnd int) {
	n := kernel.Size()
	r := kernel.Radius()
	weights := kernel.Weights.Data
	width := input.Width
	height := input.Height

	for y := yStart; y < yEnd; y++ {
		outRow := output.Row(y)
		inRow := input.Row(y)
		for x := 0; x < width; x++ {
			var sumR, sumG, sumB float64
			for i := 0; i < n; i++ {
				sy := y + i - r
				if sy < 0 || sy >= height {
					continue
				}
				srcRow := input.Row(sy)
				kRow := weights[i*n : (i+1)*n]
				for j := 0; j < n; j++ {
					sx := x + j - r
					if sx < 0 || sx >= width {
						continue
					}
					w := kRow[j]
					p := srcRow[sx]
					sumR += w * float64(p.R)
					sumG += w * float64(p.G)
					sumB += w * float64(p.B)
				}
			}

			outRow[x] = color2.NRGBA{
				R: util.ClampToUint8(sumR/kernel.Factor + kernel.Offset),
				G: util.ClampToUint8(sumG/kernel.Factor + kernel.Offset),
				B: util.ClampToUint8(sumB/kernel.Factor + kernel.Offset),
				A: inRow[x].A,
			}
		}
	}
}
