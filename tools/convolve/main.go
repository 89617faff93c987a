package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	image2 "image"
	"image/png"
	"os"
	"strings"
	"time"

	"github.com/kpfaulkner/convolve-go/core"
	"github.com/kpfaulkner/convolve-go/filters"
	"github.com/kpfaulkner/convolve-go/image"
	"github.com/kpfaulkner/convolve-go/loader"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
	xdraw "golang.org/x/image/draw"
)

func main() {
	infile := flag.String("i", "", "input image file")
	url := flag.String("u", "", "input image URL")
	outfile := flag.String("o", "", "output png file")
	filterName := flag.String("f", core.GaussianBlur3x3.Name, "filter: "+strings.Join(filters.Names(), ", "))
	workers := flag.Int("w", 1, "number of worker goroutines")
	maxWidth := flag.Int("maxwidth", 0, "downscale input to at most this width before filtering (0 = no limit)")
	profileMode := flag.String("profile", "", "write a cpu or mem profile to the current directory")
	timeout := flag.Duration("timeout", 30*time.Second, "timeout when fetching a URL")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	if (*infile == "") == (*url == "") || *outfile == "" {
		fmt.Printf("exactly one of -i or -u, and -o, must be specified\n")
		os.Exit(1)
	}

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	default:
		fmt.Printf("unknown profile mode %q\n", *profileMode)
		os.Exit(1)
	}

	filter, err := filters.Lookup(*filterName)
	if err != nil {
		log.Fatalf("%v", err)
	}

	engine, err := core.NewEngine(core.WithWorkers(*workers), core.WithDebug(*debug))
	if err != nil {
		log.Fatalf("%v", err)
	}

	start := time.Now()
	var buf *image.PixelBuffer
	if *infile != "" {
		buf, err = loader.LoadFile(*infile)
	} else {
		buf, err = fetch(*url, *timeout)
	}
	if err != nil {
		log.Fatalf("loading image: %v", err)
	}
	fmt.Printf("loading took %d ms\n", time.Since(start).Milliseconds())

	if *maxWidth > 0 && buf.Width > *maxWidth {
		buf, err = downscale(buf, *maxWidth)
		if err != nil {
			log.Fatalf("downscaling: %v", err)
		}
	}

	startFilter := time.Now()
	out, err := filter.WithEngine(engine).Apply(buf)
	if err != nil {
		log.Fatalf("applying filter: %v", err)
	}
	fmt.Printf("%s filter on %dx%d took %d ms\n", filter.Name(), out.Width, out.Height, time.Since(startFilter).Milliseconds())

	encoded := new(bytes.Buffer)
	if err := png.Encode(encoded, out.ToImage()); err != nil {
		log.Fatalf("encoding png: %v", err)
	}

	if err = os.WriteFile(*outfile, encoded.Bytes(), 0666); err != nil {
		log.Fatalf("writing %s: %v", *outfile, err)
	}
}

func fetch(url string, timeout time.Duration) (*image.PixelBuffer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	l, err := loader.NewImageLoader()
	if err != nil {
		return nil, err
	}
	res := <-l.FetchAsync(ctx, url)
	return res.Buffer, res.Err
}

// downscale keeps the aspect ratio. Height never drops below 1.
func downscale(buf *image.PixelBuffer, maxWidth int) (*image.PixelBuffer, error) {
	height := buf.Height * maxWidth / buf.Width
	if height < 1 {
		height = 1
	}
	dst := image2.NewNRGBA(image2.Rect(0, 0, maxWidth, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), buf.ToImage(), image2.Rect(0, 0, buf.Width, buf.Height), xdraw.Src, nil)
	log.Debugf("downscaled %dx%d to %dx%d", buf.Width, buf.Height, maxWidth, height)
	return image.NewPixelBufferFromImage(dst)
}
