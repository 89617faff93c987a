package main

import (
	"flag"
	"fmt"
	color2 "image/color"
	"time"

	"github.com/kpfaulkner/convolve-go/core"
	"github.com/kpfaulkner/convolve-go/image"
	"github.com/kpfaulkner/convolve-go/options"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
)

func main() {
	size := flag.Int("size", 2048, "width and height of the synthetic image")
	kernelSize := flag.Int("k", 21, "gaussian kernel size, must be odd")
	iterations := flag.Int("n", 5, "number of iterations")
	flag.Parse()

	//p := profile.Start(profile.MemProfileHeap, profile.ProfilePath("."))
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."))
	defer p.Stop()

	buf, err := image.NewPixelBuffer(*size, *size)
	if err != nil {
		log.Fatalf("boomage %v", err)
	}
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			buf.Set(x, y, color2.NRGBA{R: uint8(x), G: uint8(y), B: uint8(x ^ y), A: 255})
		}
	}

	kernel, err := core.GaussianKernel(*kernelSize)
	if err != nil {
		log.Fatalf("boomage %v", err)
	}

	for _, workers := range []int{1, options.NumCPUWorkers()} {
		engine, err := core.NewEngine(core.WithWorkers(workers))
		if err != nil {
			log.Fatalf("boomage %v", err)
		}

		start := time.Now()
		for count := 0; count < *iterations; count++ {
			if _, err := engine.Apply(buf, kernel); err != nil {
				log.Errorf("Error applying kernel: %v\n", err)
				return
			}
		}
		total := time.Since(start)
		fmt.Printf("workers %d: total %d ms, %d ms per image\n", workers, total.Milliseconds(), total.Milliseconds()/int64(*iterations))
	}
}
