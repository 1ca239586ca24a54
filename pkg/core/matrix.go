package core

import (
	"fmt"
	"strings"
)

// Matrix is a 4x4 homogeneous transform stored row-major
type Matrix [4][4]float64

// Identity returns the multiplicative identity
func Identity() Matrix {
	return Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Multiply returns m * other. When the product transforms a point, other is
// applied first.
func (m Matrix) Multiply(other Matrix) Matrix {
	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[row][col] = m[row][0]*other[0][col] +
				m[row][1]*other[1][col] +
				m[row][2]*other[2][col] +
				m[row][3]*other[3][col]
		}
	}
	return result
}

// MultiplyPoint applies the full affine transform, translation included
func (m Matrix) MultiplyPoint(p Point) Point {
	return Point{
		X: m[0][0]*p.X + m[0][1]*p.Y + m[0][2]*p.Z + m[0][3],
		Y: m[1][0]*p.X + m[1][1]*p.Y + m[1][2]*p.Z + m[1][3],
		Z: m[2][0]*p.X + m[2][1]*p.Y + m[2][2]*p.Z + m[2][3],
	}
}

// MultiplyVector applies the linear part only; vectors ignore translation
func (m Matrix) MultiplyVector(v Vector) Vector {
	return Vector{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Transpose swaps rows and columns
func (m Matrix) Transpose() Matrix {
	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[row][col] = m[col][row]
		}
	}
	return result
}

// Determinant computes the determinant by cofactor expansion along the first row
func (m Matrix) Determinant() float64 {
	return determinant(m.rows())
}

// Minor returns the determinant of the submatrix with row and col removed
func (m Matrix) Minor(row, col int) float64 {
	return determinant(submatrix(m.rows(), row, col))
}

// Cofactor returns the signed minor at (row, col)
func (m Matrix) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

// Invertible reports whether the matrix has a non-zero determinant
func (m Matrix) Invertible() bool {
	return m.Determinant() != 0
}

// Inverse returns the transposed cofactor matrix divided by the determinant.
// A singular matrix yields a *SingularTransformError.
func (m Matrix) Inverse() (Matrix, error) {
	det := m.Determinant()
	if det == 0 {
		return Matrix{}, &SingularTransformError{Matrix: m, Determinant: det}
	}

	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			// Writing to [col][row] performs the transpose
			result[col][row] = m.Cofactor(row, col) / det
		}
	}
	return result, nil
}

// Equal compares two matrices element-wise within Epsilon
func (m Matrix) Equal(other Matrix) bool {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if !FloatEqual(m[row][col], other[row][col]) {
				return false
			}
		}
	}
	return true
}

// String formats the matrix one row per bracket group
func (m Matrix) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for row := 0; row < 4; row++ {
		if row > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "[%g %g %g %g]", m[row][0], m[row][1], m[row][2], m[row][3])
	}
	sb.WriteString("]")
	return sb.String()
}

func (m Matrix) rows() [][]float64 {
	rows := make([][]float64, 4)
	for i := range rows {
		rows[i] = m[i][:]
	}
	return rows
}

// determinant expands recursively until it reaches a 2x2 block
func determinant(a [][]float64) float64 {
	if len(a) == 2 {
		return a[0][0]*a[1][1] - a[0][1]*a[1][0]
	}

	det := 0.0
	for col := range a[0] {
		minor := determinant(submatrix(a, 0, col))
		if col%2 == 1 {
			minor = -minor
		}
		det += a[0][col] * minor
	}
	return det
}

func submatrix(a [][]float64, row, col int) [][]float64 {
	result := make([][]float64, 0, len(a)-1)
	for r := range a {
		if r == row {
			continue
		}
		line := make([]float64, 0, len(a)-1)
		for c := range a[r] {
			if c == col {
				continue
			}
			line = append(line, a[r][c])
		}
		result = append(result, line)
	}
	return result
}
