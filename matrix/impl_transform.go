// SPDX-License-Identifier: MIT

// Package matrix - 4×4 transform builders and in-place compound transforms.
//
// Purpose:
//   - Load* builders overwrite a 4×4 receiver with a standard OpenGL-style
//     transform (column vectors, right-handed, angles in degrees).
//   - Instance transforms (Translate, Scale, Rotate*, Perspective, Ortho*) build
//     the transform into the receiver's transformation scratch and right-multiply:
//     this = this × T.
//
// Behavior highlights:
//   - Builders other than LoadIdentity require a 4×4 receiver (ErrUnsupported).
//   - Transform computes into the result scratch and swaps buffers, so no
//     allocation happens after the first compound call on a matrix.
//
// AI-Hints:
//   - Compose model-view chains left to right: view.Translate(...) then
//     view.RotateY(...) applies the rotation first to incoming points.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/glkit/vector"
)

const (
	opLoadTranslation = "LoadTranslation"
	opLoadScale       = "LoadScale"
	opLoadRotation    = "LoadRotation"
	opLoadPerspective = "LoadPerspective"
	opLoadOrtho       = "LoadOrtho"
	opLoadLookAt      = "LoadLookAt"
	opLoadCameraView  = "LoadCameraView"
	opTranslate       = "Translate"
	opScale           = "Scale"
	opRotate          = "Rotate"
	opPerspective     = "Perspective"
	opOrtho           = "Ortho"
)

// LoadIdentity overwrites m with ones on the main diagonal and zeros elsewhere.
// Any shape is accepted.
func (m *Dense) LoadIdentity() {
	clear(m.data)
	for i := 0; i < m.r && i < m.c; i++ {
		m.data[i*m.c+i] = 1
	}
}

// LoadTranslation loads a translation by (dx, dy, dz).
func (m *Dense) LoadTranslation(dx, dy, dz float32) error {
	return m.load(opLoadTranslation, func(t *Dense) { loadTranslation(t, dx, dy, dz) })
}

// LoadScale loads a scale by (sx, sy, sz).
func (m *Dense) LoadScale(sx, sy, sz float32) error {
	return m.load(opLoadScale, func(t *Dense) { loadScale(t, sx, sy, sz) })
}

// LoadRotationX loads a rotation of angle degrees around the X axis.
func (m *Dense) LoadRotationX(angle float32) error {
	return m.load(opLoadRotation+"X", func(t *Dense) { loadRotationX(t, angle) })
}

// LoadRotationY loads a rotation of angle degrees around the Y axis.
func (m *Dense) LoadRotationY(angle float32) error {
	return m.load(opLoadRotation+"Y", func(t *Dense) { loadRotationY(t, angle) })
}

// LoadRotationZ loads a rotation of angle degrees around the Z axis.
func (m *Dense) LoadRotationZ(angle float32) error {
	return m.load(opLoadRotation+"Z", func(t *Dense) { loadRotationZ(t, angle) })
}

// LoadPerspective loads a perspective projection; fov is the vertical field of
// view in degrees and aspect is width/height.
func (m *Dense) LoadPerspective(fov, aspect, near, far float32) error {
	return m.load(opLoadPerspective, func(t *Dense) { loadPerspective(t, fov, aspect, near, far) })
}

// LoadOrtho loads an orthographic projection of the given clip box.
func (m *Dense) LoadOrtho(left, right, bottom, top, near, far float32) error {
	return m.load(opLoadOrtho, func(t *Dense) { loadOrtho(t, left, right, bottom, top, near, far) })
}

// LoadOrtho2D is LoadOrtho with near = -1 and far = 1.
func (m *Dense) LoadOrtho2D(left, right, bottom, top float32) error {
	return m.load(opLoadOrtho+"2D", func(t *Dense) { loadOrtho(t, left, right, bottom, top, -1, 1) })
}

// LoadLookAt loads a view matrix for a camera at eye looking at center, with
// up giving the approximate vertical. All three vectors must have length 3.
//
// Implementation:
//   - f = normalize(center - eye), s = normalize(f × up), u = s × f.
//   - Rows are s, u, -f; the result is then translated by -eye.
//
// Errors:
//   - ErrUnsupported (receiver not 4×4), vector.ErrNilVector,
//     vector.ErrNotThreeDimensional.
func (m *Dense) LoadLookAt(eye, center, up *vector.Vector) error {
	if err := ValidateTransform(m); err != nil {
		return matrixErrorf(opLoadLookAt, err)
	}
	if eye == nil || center == nil || up == nil {
		return matrixErrorf(opLoadLookAt, vector.ErrNilVector)
	}
	if eye.Len() != 3 || center.Len() != 3 {
		return matrixErrorf(opLoadLookAt, vector.ErrNotThreeDimensional)
	}

	f := vector.New(3)
	for i := 0; i < 3; i++ {
		f.Set(i, center.At(i)-eye.At(i))
	}
	f.Normalize()

	s, err := vector.Cross(f, up, nil)
	if err != nil {
		return matrixErrorf(opLoadLookAt, err)
	}
	s.Normalize()
	u, err := vector.Cross(s, f, nil)
	if err != nil {
		return matrixErrorf(opLoadLookAt, err)
	}

	m.LoadIdentity()
	for j := 0; j < 3; j++ {
		m.data[j] = s.At(j)
		m.data[4+j] = u.At(j)
		m.data[8+j] = -f.At(j)
	}
	m.transform(m.build(func(t *Dense) { loadTranslation(t, -eye.At(0), -eye.At(1), -eye.At(2)) }))

	return nil
}

// LoadCameraView loads a first-person camera at (x, y, z) with Euler angles in
// degrees. Composition order is fixed: roll (Z), then pitch (X), then yaw (Y),
// then the translation by -(x, y, z).
func (m *Dense) LoadCameraView(x, y, z, pitch, yaw, roll float32) error {
	if err := ValidateTransform(m); err != nil {
		return matrixErrorf(opLoadCameraView, err)
	}
	m.LoadIdentity()
	m.transform(m.build(func(t *Dense) { loadRotationZ(t, roll) }))
	m.transform(m.build(func(t *Dense) { loadRotationX(t, pitch) }))
	m.transform(m.build(func(t *Dense) { loadRotationY(t, yaw) }))
	m.transform(m.build(func(t *Dense) { loadTranslation(t, -x, -y, -z) }))

	return nil
}

// Transform right-multiplies m by other in place: m = m × other.
// other must be Cols() × Cols(); other may be m itself.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func (m *Dense) Transform(other *Dense) error {
	if err := ValidateNotNil(other); err != nil {
		return matrixErrorf(opTransform, err)
	}
	if other.r != m.c || other.c != m.c {
		return matrixErrorf(opTransform, fmt.Errorf("%dx%d by %dx%d: %w", m.r, m.c, other.r, other.c, ErrDimensionMismatch))
	}
	m.transform(other)

	return nil
}

// Translate applies m = m × T(dx, dy, dz).
func (m *Dense) Translate(dx, dy, dz float32) error {
	return m.compose(opTranslate, func(t *Dense) { loadTranslation(t, dx, dy, dz) })
}

// Scale applies m = m × S(sx, sy, sz).
func (m *Dense) Scale(sx, sy, sz float32) error {
	return m.compose(opScale, func(t *Dense) { loadScale(t, sx, sy, sz) })
}

// RotateX applies m = m × Rx(angle degrees).
func (m *Dense) RotateX(angle float32) error {
	return m.compose(opRotate+"X", func(t *Dense) { loadRotationX(t, angle) })
}

// RotateY applies m = m × Ry(angle degrees).
func (m *Dense) RotateY(angle float32) error {
	return m.compose(opRotate+"Y", func(t *Dense) { loadRotationY(t, angle) })
}

// RotateZ applies m = m × Rz(angle degrees).
func (m *Dense) RotateZ(angle float32) error {
	return m.compose(opRotate+"Z", func(t *Dense) { loadRotationZ(t, angle) })
}

// Perspective applies m = m × P(fov, aspect, near, far).
func (m *Dense) Perspective(fov, aspect, near, far float32) error {
	return m.compose(opPerspective, func(t *Dense) { loadPerspective(t, fov, aspect, near, far) })
}

// Ortho applies m = m × O(left, right, bottom, top, near, far).
func (m *Dense) Ortho(left, right, bottom, top, near, far float32) error {
	return m.compose(opOrtho, func(t *Dense) { loadOrtho(t, left, right, bottom, top, near, far) })
}

// Ortho2D applies m = m × O(left, right, bottom, top, -1, 1).
func (m *Dense) Ortho2D(left, right, bottom, top float32) error {
	return m.compose(opOrtho+"2D", func(t *Dense) { loadOrtho(t, left, right, bottom, top, -1, 1) })
}

// Transpose transposes a square m in place.
//
// Errors:
//   - ErrDimensionMismatch when m is not square (the transpose would not fit).
func (m *Dense) Transpose() error {
	return Transpose(m, m)
}

// ---------- internals ----------

// load validates the 4×4 shape and fills m directly.
func (m *Dense) load(tag string, fill func(t *Dense)) error {
	if err := ValidateTransform(m); err != nil {
		return matrixErrorf(tag, err)
	}
	fill(m)

	return nil
}

// compose validates the 4×4 shape, builds T in the scratch and applies m = m × T.
func (m *Dense) compose(tag string, fill func(t *Dense)) error {
	if err := ValidateTransform(m); err != nil {
		return matrixErrorf(tag, err)
	}
	m.transform(m.build(fill))

	return nil
}

// build fills the transformation scratch and returns it.
func (m *Dense) build(fill func(t *Dense)) *Dense {
	t := m.transformationScratch()
	fill(t)

	return t
}

// transform is the unchecked m = m × other via the result scratch.
func (m *Dense) transform(other *Dense) {
	res := m.resultScratch()
	multiplyInto(m, other, res)
	m.adoptFrom(res)
}

// The loaders below assume a 4×4 row-major target.

func loadTranslation(t *Dense, dx, dy, dz float32) {
	t.LoadIdentity()
	t.data[3] = dx
	t.data[7] = dy
	t.data[11] = dz
}

func loadScale(t *Dense, sx, sy, sz float32) {
	t.LoadIdentity()
	t.data[0] = sx
	t.data[5] = sy
	t.data[10] = sz
}

func loadRotationX(t *Dense, angle float32) {
	sin, cos := sincos(angle)
	t.LoadIdentity()
	t.data[5], t.data[6] = cos, -sin
	t.data[9], t.data[10] = sin, cos
}

func loadRotationY(t *Dense, angle float32) {
	sin, cos := sincos(angle)
	t.LoadIdentity()
	t.data[0], t.data[2] = cos, sin
	t.data[8], t.data[10] = -sin, cos
}

func loadRotationZ(t *Dense, angle float32) {
	sin, cos := sincos(angle)
	t.LoadIdentity()
	t.data[0], t.data[1] = cos, -sin
	t.data[4], t.data[5] = sin, cos
}

func loadPerspective(t *Dense, fov, aspect, near, far float32) {
	focal := float32(1 / math.Tan(0.5*radians(fov)))
	t.LoadIdentity()
	t.data[0] = focal / aspect
	t.data[5] = focal
	t.data[10] = -(far + near) / (far - near)
	t.data[11] = -2 * far * near / (far - near)
	t.data[14] = -1
	t.data[15] = 0
}

func loadOrtho(t *Dense, left, right, bottom, top, near, far float32) {
	t.LoadIdentity()
	t.data[0] = 2 / (right - left)
	t.data[5] = 2 / (top - bottom)
	t.data[10] = -2 / (far - near)
	t.data[3] = -(right + left) / (right - left)
	t.data[7] = -(top + bottom) / (top - bottom)
	t.data[11] = -(far + near) / (far - near)
}

func radians(deg float32) float64 { return float64(deg) * math.Pi / 180 }

func sincos(deg float32) (sin, cos float32) {
	s, c := math.Sincos(radians(deg))

	return float32(s), float32(c)
}
