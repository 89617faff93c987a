package util

import (
	"golang.org/x/exp/constraints"
)

// Make 1D slice appear as 2D slice and helper functions.
// Used for kernel weights so a kernel is a single allocation.

type Matrix[T constraints.Integer | constraints.Float] struct {
	Width  int
	Height int
	Data   []T
}

// New2DMatrix creates a new 2D matrix with the given dimensions
// Note height is the first dimension, width is the second
func New2DMatrix[T constraints.Integer | constraints.Float](height int, width int) *Matrix[T] {
	matrix := make([]T, width*height)
	return &Matrix[T]{Width: width, Height: height, Data: matrix}
}

// New2DMatrixWithContents copies rows into a new matrix. Every row must be
// width long, callers are expected to have checked that already.
func New2DMatrixWithContents[T constraints.Integer | constraints.Float](height int, width int, initialData [][]T) *Matrix[T] {
	matrix := New2DMatrix[T](height, width)
	for h := 0; h < height; h++ {
		copy(matrix.Data[h*width:(h+1)*width], initialData[h])
	}
	return matrix
}

// Note y is first param...  just for compatibility
func (s *Matrix[T]) Get(y int, x int) T {
	return s.Data[y*s.Width+x]
}

func (s *Matrix[T]) Set(y int, x int, value T) {
	s.Data[y*s.Width+x] = value
}

func (s *Matrix[T]) IncrementBy(y int, x int, value T) {
	s.Data[y*s.Width+x] += value
}

func (s *Matrix[T]) GetRow(y int) []T {
	return s.Data[y*s.Width : (y+1)*s.Width]
}

func (s *Matrix[T]) SetRow(y int, data []T) {
	copy(s.Data[y*s.Width:(y+1)*s.Width], data)
}

func (s *Matrix[T]) IsSquare() bool {
	return s.Width == s.Height
}

// Sum adds every element.
func (s *Matrix[T]) Sum() T {
	var total T
	for _, v := range s.Data {
		total += v
	}
	return total
}

// GetAs2DSlice returns a copy of the contents as a 2D slice.
func (s *Matrix[T]) GetAs2DSlice() [][]T {
	a := MakeMatrix2D[T](s.Height, s.Width)
	for y := 0; y < s.Height; y++ {
		copy(a[y], s.GetRow(y))
	}
	return a
}
