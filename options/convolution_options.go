package options

import "runtime"

type ConvolutionOptions struct {
	Debug bool

	// Workers is the number of goroutines rows are split across.
	// Values below 1 are treated as 1.
	Workers int
}

func NewConvolutionOptions(options *ConvolutionOptions) *ConvolutionOptions {

	opt := &ConvolutionOptions{Workers: 1}
	if options != nil {
		opt.Debug = options.Debug
		opt.Workers = options.Workers
	}
	if opt.Workers < 1 {
		opt.Workers = 1
	}
	return opt
}

// NumCPUWorkers sizes Workers to the machine.
func NumCPUWorkers() int {
	return runtime.NumCPU()
}
