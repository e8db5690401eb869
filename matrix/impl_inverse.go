// SPDX-License-Identifier: MIT

// Package matrix - matrix inversion.
//
// Purpose:
//   - Gauss–Jordan elimination with pivot search, valid for every square size.
//   - Closed-form cofactor inverses for 3×3 and 4×4 as a fast path.
//
// Behavior highlights:
//   - Elimination decides every near-singular input. A closed form is accepted
//     only when |det| divided by the product of the row norms exceeds
//     max(tolerance, closedFormFloor); otherwise it hands the matrix to
//     elimination, which either finds usable pivots or reports ErrSingular.
//   - The two paths judge differently on badly scaled input: the closed form
//     looks at the scale-relative determinant, elimination at absolute pivots.
//     diag(1e-7, 1e4, 1e4) inverts on the closed form but is ErrSingular under
//     WithGeneralInverse.
//   - The destination is only written on success. Work happens in dst's scratch
//     matrices and the result is swapped in at the end.
//
// Determinism:
//   - Pivot search takes the first usable row below the diagonal, so the same
//     input always produces the same sequence of row exchanges.

package matrix

import (
	"log/slog"
	"math"
)

// closedFormFloor is the smallest |det| / ∏‖row‖ a cofactor inverse accepts.
// Rank-deficient float32 input leaves rounding residue well below it.
const closedFormFloor = 1e-5

// Inverse writes src⁻¹ into dst (same shape). dst may be src.
//
// Implementation:
//   - Stage 1: validate nil, square (ErrNonSquare), shape (ErrDimensionMismatch).
//   - Stage 2: closed form for 3×3/4×4 when enabled and the determinant is
//     well clear of zero relative to the row norms.
//   - Stage 3: otherwise Gauss–Jordan on a working copy against identity.
//   - Stage 4: swap the computed inverse into dst.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(1) beyond dst's scratch (allocated once).
func Inverse(src, dst *Dense) error {
	if err := ValidateNotNil(src, dst); err != nil {
		return matrixErrorf(opInverse, err)
	}
	if err := ValidateSquare(src); err != nil {
		return matrixErrorf(opInverse, err)
	}
	if err := ValidateSameShape(src, dst); err != nil {
		return matrixErrorf(opInverse, err)
	}

	out := dst.resultScratch()
	if err := invert(src, dst.transformationScratch(), out); err != nil {
		return matrixErrorf(opInverse, err)
	}
	dst.adoptFrom(out)

	return nil
}

// Inverse inverts m in place. On error m is unchanged.
//
// Errors:
//   - ErrNonSquare, ErrSingular.
func (m *Dense) Inverse() error {
	return Inverse(m, m)
}

// invert computes src⁻¹ into out using work as elimination storage.
// work and out are n×n and must not alias src.
func invert(src, work, out *Dense) error {
	n := src.r
	tol := src.opts.tol
	log := src.opts.logger

	if src.opts.closedForm {
		var ok bool
		switch n {
		case 3:
			ok = inverse3(src.data, out.data, tol)
		case 4:
			ok = inverse4(src.data, out.data, tol)
		}
		if ok {
			return nil
		}
		if n == 3 || n == 4 {
			log.Debug("closed-form determinant ill-conditioned, using elimination", "size", n, "tolerance", tol)
		}
	}

	copy(work.data, src.data)
	out.LoadIdentity()

	return gaussJordan(work.data, out.data, n, tol, log)
}

// gaussJordan reduces a to identity while applying the same row operations to
// inv (which starts as identity). Both are n×n row-major.
//
// Implementation:
//   - Forward pass, for each diagonal i:
//     1. if |a[i][i]| < tol, exchange with the first row k > i with |a[k][i]| ≥ tol;
//     ErrSingular if none.
//     2. scale row i by 1/a[i][i] in both matrices.
//     3. eliminate a[k][i] for every k > i.
//   - Backward pass: eliminate a[k][i] for every k < i, from the last column up.
func gaussJordan(a, inv []float32, n int, tol float32, log *slog.Logger) error {
	var i, k int
	for i = 0; i < n; i++ {
		if abs32(a[i*n+i]) < tol {
			pivot := -1
			for k = i + 1; k < n; k++ {
				if abs32(a[k*n+i]) >= tol {
					pivot = k
					break
				}
			}
			if pivot < 0 {
				log.Warn("singular matrix", "size", n, "column", i, "tolerance", tol)
				return ErrSingular
			}
			log.Debug("pivot row exchange", "column", i, "row", pivot)
			swapLines(a, n, i, pivot)
			swapLines(inv, n, i, pivot)
		}

		p := 1 / a[i*n+i]
		scale(a[i*n:(i+1)*n], p)
		scale(inv[i*n:(i+1)*n], p)

		for k = i + 1; k < n; k++ {
			f := a[k*n+i]
			if f == 0 {
				continue
			}
			addScaled(a[k*n:(k+1)*n], a[i*n:(i+1)*n], -f)
			addScaled(inv[k*n:(k+1)*n], inv[i*n:(i+1)*n], -f)
		}
	}

	for i = n - 1; i > 0; i-- {
		for k = 0; k < i; k++ {
			f := a[k*n+i]
			if f == 0 {
				continue
			}
			addScaled(a[k*n:(k+1)*n], a[i*n:(i+1)*n], -f)
			addScaled(inv[k*n:(k+1)*n], inv[i*n:(i+1)*n], -f)
		}
	}

	return nil
}

// inverse3 writes the adjugate/determinant inverse of the 3×3 m into out.
// Returns false (out untouched) when det is not clear of zero.
func inverse3(m, out []float32, tol float32) bool {
	a, b, c := m[0], m[1], m[2]
	d, e, f := m[3], m[4], m[5]
	g, h, i := m[6], m[7], m[8]

	// cofactors
	ca := e*i - f*h
	cb := -(d*i - f*g)
	cc := d*h - e*g

	det := a*ca + b*cb + c*cc
	if !detClear(m, 3, det, tol) {
		return false
	}
	inv := 1 / det

	// adjugate = transposed cofactor matrix
	out[0] = ca * inv
	out[1] = -(b*i - c*h) * inv
	out[2] = (b*f - c*e) * inv
	out[3] = cb * inv
	out[4] = (a*i - c*g) * inv
	out[5] = -(a*f - c*d) * inv
	out[6] = cc * inv
	out[7] = -(a*h - b*g) * inv
	out[8] = (a*e - b*d) * inv

	return true
}

// inverse4 writes the cofactor inverse of the 4×4 m into out using the
// 2×2 sub-determinant expansion of the top two and bottom two rows.
// Returns false (out untouched) when det is not clear of zero.
func inverse4(m, out []float32, tol float32) bool {
	a00, a01, a02, a03 := m[0], m[1], m[2], m[3]
	a10, a11, a12, a13 := m[4], m[5], m[6], m[7]
	a20, a21, a22, a23 := m[8], m[9], m[10], m[11]
	a30, a31, a32, a33 := m[12], m[13], m[14], m[15]

	s0 := a00*a11 - a10*a01
	s1 := a00*a12 - a10*a02
	s2 := a00*a13 - a10*a03
	s3 := a01*a12 - a11*a02
	s4 := a01*a13 - a11*a03
	s5 := a02*a13 - a12*a03

	c5 := a22*a33 - a32*a23
	c4 := a21*a33 - a31*a23
	c3 := a21*a32 - a31*a22
	c2 := a20*a33 - a30*a23
	c1 := a20*a32 - a30*a22
	c0 := a20*a31 - a30*a21

	det := s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
	if !detClear(m, 4, det, tol) {
		return false
	}
	inv := 1 / det

	out[0] = (a11*c5 - a12*c4 + a13*c3) * inv
	out[1] = (-a01*c5 + a02*c4 - a03*c3) * inv
	out[2] = (a31*s5 - a32*s4 + a33*s3) * inv
	out[3] = (-a21*s5 + a22*s4 - a23*s3) * inv

	out[4] = (-a10*c5 + a12*c2 - a13*c1) * inv
	out[5] = (a00*c5 - a02*c2 + a03*c1) * inv
	out[6] = (-a30*s5 + a32*s2 - a33*s1) * inv
	out[7] = (a20*s5 - a22*s2 + a23*s1) * inv

	out[8] = (a10*c4 - a11*c2 + a13*c0) * inv
	out[9] = (-a00*c4 + a01*c2 - a03*c0) * inv
	out[10] = (a30*s4 - a31*s2 + a33*s0) * inv
	out[11] = (-a20*s4 + a21*s2 - a23*s0) * inv

	out[12] = (-a10*c3 + a11*c1 - a12*c0) * inv
	out[13] = (a00*c3 - a01*c1 + a02*c0) * inv
	out[14] = (-a30*s3 + a31*s1 - a32*s0) * inv
	out[15] = (a20*s3 - a21*s1 + a22*s0) * inv

	return true
}

// detClear reports whether |det| exceeds max(tol, closedFormFloor) times the
// product of the row norms of the n×n m (Hadamard's bound on |det|).
// A zero row or a NaN determinant is never clear.
func detClear(m []float32, n int, det, tol float32) bool {
	bound := float64(tol)
	if bound < closedFormFloor {
		bound = closedFormFloor
	}
	h := 1.0
	for i := 0; i < n; i++ {
		var sq float64
		for _, v := range m[i*n : (i+1)*n] {
			sq += float64(v) * float64(v)
		}
		h *= math.Sqrt(sq)
	}

	return math.Abs(float64(det)) > bound*h
}

func abs32(x float32) float32 {
	return float32(math.Abs(float64(x)))
}
