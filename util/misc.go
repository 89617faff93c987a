package util

func IfThenElse[T any](condition bool, a T, b T) T {
	if condition {
		return a
	}
	return b
}

func MakeMatrix2D[T any](a int, b int) [][]T {
	matrix := make([][]T, a)
	for i := range matrix {
		matrix[i] = make([]T, b)
	}
	return matrix
}

// IsRectangular reports whether every row of a 2D slice has the same length.
// An empty slice is considered rectangular.
func IsRectangular[T any](rows [][]T) bool {
	if len(rows) == 0 {
		return true
	}
	width := len(rows[0])
	for _, row := range rows[1:] {
		if len(row) != width {
			return false
		}
	}
	return true
}
