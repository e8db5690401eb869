// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/glkit/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateNotNil covers nil operands in any position.
func TestValidateNotNil(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 1, 1)
	require.NoError(t, matrix.ValidateNotNil())
	require.NoError(t, matrix.ValidateNotNil(m, m))
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil(m, nil), matrix.ErrNilMatrix)
}

// TestValidateSameShape covers matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a, b    *matrix.Dense
		wantErr error
	}{
		{"equal 2x3", MustDense(t, 2, 3), MustDense(t, 2, 3), nil},
		{"row mismatch", MustDense(t, 2, 3), MustDense(t, 3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", MustDense(t, 2, 3), MustDense(t, 2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidateSquare covers square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		m    *matrix.Dense
		want error
	}{
		{"1x1", MustDense(t, 1, 1), nil},
		{"3x3", MustDense(t, 3, 3), nil},
		{"2x3", MustDense(t, 2, 3), matrix.ErrNonSquare},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSquare(tc.m)
			if tc.want == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.want)
			}
		})
	}
}

func TestValidateMulCompatible(t *testing.T) {
	t.Parallel()

	a, b := MustDense(t, 2, 3), MustDense(t, 3, 4)
	require.NoError(t, matrix.ValidateMulCompatible(a, b, MustDense(t, 2, 4)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, a, MustDense(t, 2, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, b, MustDense(t, 4, 2)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, b, nil), matrix.ErrNilMatrix)
}

func TestValidateTransformAndBuffers(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateTransform(MustDense(t, 4, 4)))
	require.ErrorIs(t, matrix.ValidateTransform(MustDense(t, 4, 3)), matrix.ErrUnsupported)
	require.NoError(t, matrix.ValidateTransposeShape(MustDense(t, 2, 3), MustDense(t, 3, 2)))
	require.ErrorIs(t, matrix.ValidateTransposeShape(MustDense(t, 2, 3), MustDense(t, 2, 3)), matrix.ErrDimensionMismatch)

	require.NoError(t, matrix.ValidateBufferLen(16, 16))
	require.ErrorIs(t, matrix.ValidateBufferLen(15, 16), matrix.ErrShortBuffer)
}
