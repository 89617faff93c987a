package core

import (
	"fmt"

	"github.com/kpfaulkner/convolve-go/util"
)

// Kernel is an NxN weight matrix plus the normalisation applied to each
// weighted sum: value = sum/Factor + Offset.
type Kernel struct {
	Weights *util.Matrix[float64]
	Factor  float64
	Offset  float64
}

// NewKernel copies weights into a new Kernel and validates it.
func NewKernel(weights [][]float64, factor float64, offset float64) (*Kernel, error) {
	if len(weights) == 0 {
		return nil, fmt.Errorf("%w: kernel has no rows", ErrInvalidConfiguration)
	}
	if !util.IsRectangular(weights) {
		return nil, fmt.Errorf("%w: kernel rows differ in length", ErrInvalidConfiguration)
	}

	k := &Kernel{
		Weights: util.New2DMatrixWithContents(len(weights), len(weights[0]), weights),
		Factor:  factor,
		Offset:  offset,
	}
	if err := k.Validate(); err != nil {
		return nil, err
	}
	return k, nil
}

// NewNormalizedKernel uses the sum of the weights as the factor so overall
// brightness is preserved. Weights summing to zero (edge detectors) get a
// factor of 1.
func NewNormalizedKernel(weights [][]float64) (*Kernel, error) {
	var sum float64
	for _, row := range weights {
		for _, w := range row {
			sum += w
		}
	}
	return NewKernel(weights, util.IfThenElse(sum == 0, 1.0, sum), 0)
}

// Validate checks the invariants Apply relies on. Kernels built by hand
// rather than through NewKernel are validated on every Apply.
func (k *Kernel) Validate() error {
	if k == nil || k.Weights == nil {
		return fmt.Errorf("%w: nil kernel", ErrInvalidConfiguration)
	}
	n := k.Weights.Width
	if n == 0 || k.Weights.Height == 0 {
		return fmt.Errorf("%w: empty kernel", ErrInvalidConfiguration)
	}
	if !k.Weights.IsSquare() {
		return fmt.Errorf("%w: kernel is %dx%d, must be square", ErrInvalidConfiguration, k.Weights.Height, n)
	}
	if len(k.Weights.Data) != n*n {
		return fmt.Errorf("%w: kernel holds %d weights, want %d", ErrInvalidConfiguration, len(k.Weights.Data), n*n)
	}
	if n%2 == 0 {
		return fmt.Errorf("%w: kernel side %d must be odd", ErrInvalidConfiguration, n)
	}
	if k.Factor == 0 {
		return fmt.Errorf("%w: factor must be nonzero", ErrInvalidConfiguration)
	}
	if !util.IsFinite(k.Factor) || !util.IsFinite(k.Offset) {
		return fmt.Errorf("%w: factor %v and offset %v must be finite", ErrInvalidConfiguration, k.Factor, k.Offset)
	}
	return nil
}

// Size is the side length N.
func (k *Kernel) Size() int {
	return k.Weights.Width
}

// Radius is (N-1)/2, the distance from the centre cell to an edge.
func (k *Kernel) Radius() int {
	return (k.Weights.Width - 1) / 2
}

// Weight returns the weight at row i, column j.
func (k *Kernel) Weight(i int, j int) float64 {
	return k.Weights.Get(i, j)
}

func (k *Kernel) String() string {
	return fmt.Sprintf("Kernel{%dx%d factor=%v offset=%v %v}", k.Size(), k.Size(), k.Factor, k.Offset, k.Weights.GetAs2DSlice())
}
