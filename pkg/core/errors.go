package core

import (
	"errors"
	"fmt"
)

// ErrSingularMatrix is returned (wrapped) whenever a transform cannot be inverted
var ErrSingularMatrix = errors.New("matrix is not invertible")

// SingularTransformError identifies the matrix that could not be inverted
type SingularTransformError struct {
	Matrix      Matrix
	Determinant float64
}

func (e *SingularTransformError) Error() string {
	return fmt.Sprintf("%v (determinant %g): %v", e.Matrix, e.Determinant, ErrSingularMatrix)
}

func (e *SingularTransformError) Unwrap() error {
	return ErrSingularMatrix
}
