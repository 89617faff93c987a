package filters

import (
	"errors"
	"fmt"
	"sort"

	"github.com/kpfaulkner/convolve-go/core"
	"github.com/kpfaulkner/convolve-go/image"
)

var ErrUnknownFilter = errors.New("unknown filter")

// ImageFilter transforms a pixel buffer into a new one. A failed Apply
// always returns a non-nil error and a nil buffer.
type ImageFilter interface {
	Name() string
	Apply(src *image.PixelBuffer) (*image.PixelBuffer, error)
}

// KernelFilter is an ImageFilter backed by a single convolution kernel.
type KernelFilter struct {
	name   string
	kernel *core.Kernel
	engine *core.Engine
}

// NewKernelFilter wraps kernel. A nil engine means the default single
// goroutine engine.
func NewKernelFilter(name string, kernel *core.Kernel, engine *core.Engine) (*KernelFilter, error) {
	if err := kernel.Validate(); err != nil {
		return nil, fmt.Errorf("filter %s: %w", name, err)
	}
	return &KernelFilter{name: name, kernel: kernel, engine: engine}, nil
}

func (f *KernelFilter) Name() string {
	return f.name
}

func (f *KernelFilter) Kernel() *core.Kernel {
	return f.kernel
}

func (f *KernelFilter) Apply(src *image.PixelBuffer) (*image.PixelBuffer, error) {
	var out *image.PixelBuffer
	var err error
	if f.engine != nil {
		out, err = f.engine.Apply(src, f.kernel)
	} else {
		out, err = core.Apply(src, f.kernel)
	}
	if err != nil {
		return nil, fmt.Errorf("filter %s: %w", f.name, err)
	}
	return out, nil
}

// WithEngine returns a copy of the filter that runs on engine.
func (f *KernelFilter) WithEngine(engine *core.Engine) *KernelFilter {
	return &KernelFilter{name: f.name, kernel: f.kernel, engine: engine}
}

func fromPreset(p core.Preset) *KernelFilter {
	k, err := p.Kernel()
	if err != nil {
		// presets are fixed at compile time and covered by tests
		panic(err)
	}
	return &KernelFilter{name: p.Name, kernel: k}
}

// NewGaussianBlur is the 3x3 Gaussian blur: 1-2-1 weights, factor 16.
func NewGaussianBlur() *KernelFilter {
	return fromPreset(core.GaussianBlur3x3)
}

func NewBoxBlur() *KernelFilter {
	return fromPreset(core.BoxBlur3x3)
}

func NewSharpen() *KernelFilter {
	return fromPreset(core.Sharpen)
}

func NewEdgeDetect() *KernelFilter {
	return fromPreset(core.EdgeDetect)
}

func NewEmboss() *KernelFilter {
	return fromPreset(core.Emboss)
}

// Lookup returns a filter for any preset name.
func Lookup(name string) (*KernelFilter, error) {
	for _, p := range core.Presets {
		if p.Name == name {
			return fromPreset(p), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
}

// Names lists the names Lookup accepts, sorted.
func Names() []string {
	names := make([]string, 0, len(core.Presets))
	for _, p := range core.Presets {
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names
}
