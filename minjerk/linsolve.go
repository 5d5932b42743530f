package minjerk

import "math"

// pivots smaller than this are treated as zero.
const pivotTolerance = 1e-12

// solve6 solves the dense 6x6 system a*x = b by Gaussian elimination with
// partial pivoting. Each pivot row is normalized before eliminating below it,
// so back substitution can assume a unit diagonal.
func solve6(a [6][6]float64, b [6]float64) ([6]float64, error) {
	const n = 6

	var aug [n][n + 1]float64
	for r := 0; r < n; r++ {
		copy(aug[r][:n], a[r][:])
		aug[r][n] = b[r]
	}

	for col := 0; col < n; col++ {
		piv := col
		best := math.Abs(aug[col][col])
		for r := col + 1; r < n; r++ {
			if v := math.Abs(aug[r][col]); v > best {
				best = v
				piv = r
			}
		}
		if best < pivotTolerance {
			return [6]float64{}, newSingularSystemError(col)
		}
		if piv != col {
			aug[piv], aug[col] = aug[col], aug[piv]
		}

		diag := aug[col][col]
		for c := col; c <= n; c++ {
			aug[col][c] /= diag
		}
		for r := col + 1; r < n; r++ {
			f := aug[r][col]
			for c := col; c <= n; c++ {
				aug[r][c] -= f * aug[col][c]
			}
		}
	}

	var x [6]float64
	for r := n - 1; r >= 0; r-- {
		s := aug[r][n]
		for c := r + 1; c < n; c++ {
			s -= aug[r][c] * x[c]
		}
		x[r] = s
	}
	return x, nil
}
