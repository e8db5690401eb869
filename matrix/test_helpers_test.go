// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels and transforms.
//   • Keep all data finite and well-conditioned unless a test is about singularity.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/glkit/matrix"
	"github.com/stretchr/testify/require"
)

// tol is the element tolerance for float32 results of short computations.
const tol = 1e-5

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t testing.TB, r, c int, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c, opts...)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustRows builds a *Dense from literal rows or fails the test.
func MustRows(t testing.TB, rows [][]float32, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows, opts...)
	if err != nil {
		t.Fatalf("NewFromRows: %v", err)
	}

	return m
}

// MustIdentity RETURNS an n×n identity or fails the test.
func MustIdentity(t testing.TB, n int, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n, opts...)
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", n, err)
	}

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m *matrix.Dense, i, j int) float32 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// requireClose asserts AllClose(want, got, eps) with a readable dump on failure.
func requireClose(t testing.TB, want, got *matrix.Dense, eps float32) {
	t.Helper()
	ok, err := matrix.AllClose(want, got, eps)
	require.NoError(t, err)
	require.Truef(t, ok, "matrices differ beyond %g\nwant:\n%vgot:\n%v", eps, want, got)
}

// fillDenseRand fills m with deterministic values in [-1, 1).
func fillDenseRand(t testing.TB, m *matrix.Dense, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	require.NoError(t, m.Apply(func(_, _ int, _ float32) float32 {
		return rng.Float32()*2 - 1
	}))
}

// diagonallyDominant returns a well-conditioned n×n matrix: random entries in
// [-1, 1) with n+1 added to the diagonal.
func diagonallyDominant(t testing.TB, n int, seed int64, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m := MustDense(t, n, n, opts...)
	fillDenseRand(t, m, seed)
	require.NoError(t, m.Apply(func(i, j int, v float32) float32 {
		if i == j {
			return v + float32(n+1)
		}
		return v
	}))

	return m
}

// sampleTransform is a rigid 4×4 (rotation + translation) with a nontrivial inverse.
func sampleTransform(t testing.TB, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m := MustIdentity(t, 4, opts...)
	require.NoError(t, m.Translate(1, -2, 3))
	require.NoError(t, m.RotateY(30))
	require.NoError(t, m.RotateX(-45))
	require.NoError(t, m.Scale(2, 0.5, 1.5))

	return m
}

// ExpectPanicMessage FAILS the test unless fn panics with exactly want.
func ExpectPanicMessage(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic %q, got nil", want)
		}
		if got, ok := r.(string); !ok || got != want {
			t.Fatalf("panic mismatch: got %v, want %q", r, want)
		}
	}()
	fn()
}
