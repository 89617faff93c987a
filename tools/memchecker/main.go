package main

import (
	"fmt"
	"reflect"

	"github.com/kpfaulkner/convolve-go/core"
	"github.com/kpfaulkner/convolve-go/filters"
	"github.com/kpfaulkner/convolve-go/image"
	"github.com/kpfaulkner/convolve-go/loader"
)

// displays sizes of main structs to determine any padding wasteage
func memStats(input any) {

	rType := reflect.TypeOf(input)
	fmt.Printf("Size of %s : %d bytes\n", rType.Name(), rType.Size())

	if rType.Kind() == reflect.Struct {
		for i := 0; i < rType.NumField(); i++ {
			field := rType.Field(i)
			fmt.Printf("  Name %s\n", field.Name)
			fmt.Printf("    Offset of    : %d bytes\n", field.Offset)
			fmt.Printf("    Size of      : %d bytes\n", field.Type.Size())
			fmt.Printf("    Alignment of : %d bytes\n", field.Type.Align())
			fmt.Println()
		}
	}
}

func main() {
	memStats(image.PixelBuffer{})
	memStats(core.Kernel{})
	memStats(core.Preset{})
	memStats(filters.KernelFilter{})
	memStats(loader.Result{})
}
