// SPDX-License-Identifier: MIT

package vector

import "errors"

var (
	// ErrSizeMismatch indicates operands of different lengths.
	ErrSizeMismatch = errors.New("vector: size mismatch")

	// ErrNotThreeDimensional indicates an operation defined only for length-3 vectors.
	ErrNotThreeDimensional = errors.New("vector: length must be 3")

	// ErrNilVector indicates a nil *Vector operand.
	ErrNilVector = errors.New("vector: nil vector")
)
