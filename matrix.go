package collage

import "math"

// Epsilon is the tolerance used for singularity and degenerate-geometry
// checks throughout the package.
const Epsilon = 1e-9

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
//
// The zero value is not the identity; use [Identity].
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotate creates a rotation matrix (angle in radians).
// A positive angle turns +x into +y, which is clockwise on a y-down screen.
func Rotate(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Shear creates a shear matrix.
func Shear(x, y float64) Matrix {
	return Matrix{
		A: 1, B: x, C: 0,
		D: y, E: 1, F: 0,
	}
}

// NewMatrix creates a matrix from its six coefficients.
func NewMatrix(a, b, c, d, e, f float64) Matrix {
	return Matrix{A: a, B: b, C: c, D: d, E: e, F: f}
}

// Multiply multiplies two matrices (m * other).
// The result applies other first and then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// Compose returns a∘b: the transform that applies b and then a.
func Compose(a, b Matrix) Matrix {
	return a.Multiply(b)
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// TransformVector applies the transformation to a vector (no translation).
func (m Matrix) TransformVector(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y,
		Y: m.D*p.X + m.E*p.Y,
	}
}

// Determinant returns the determinant of the linear part of m.
func (m Matrix) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// Invert returns the inverse matrix.
// It fails with [ErrSingularTransform] when |det| < [Epsilon].
func (m Matrix) Invert() (Matrix, error) {
	det := m.Determinant()
	if math.Abs(det) < Epsilon {
		return Matrix{}, ErrSingularTransform
	}

	invDet := 1.0 / det
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}, nil
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}

// IsTranslation returns true if the matrix is only a translation.
func (m Matrix) IsTranslation() bool {
	return m.A == 1 && m.B == 0 && m.D == 0 && m.E == 1
}

// IsAxisAligned reports whether m maps axis-aligned rectangles to
// axis-aligned rectangles (no rotation or shear).
func (m Matrix) IsAxisAligned() bool {
	return m.B == 0 && m.D == 0
}

// Translation returns the translation component of m.
func (m Matrix) Translation() Point {
	return Point{X: m.C, Y: m.F}
}

// ApproxEqual reports whether every coefficient of m and other differs by
// at most eps.
func (m Matrix) ApproxEqual(other Matrix, eps float64) bool {
	return math.Abs(m.A-other.A) <= eps && math.Abs(m.B-other.B) <= eps &&
		math.Abs(m.C-other.C) <= eps && math.Abs(m.D-other.D) <= eps &&
		math.Abs(m.E-other.E) <= eps && math.Abs(m.F-other.F) <= eps
}

// Degrees converts an angle in degrees to radians.
func Degrees(d float64) float64 {
	return d * math.Pi / 180
}

// Turns converts a number of full turns to radians.
func Turns(t float64) float64 {
	return t * 2 * math.Pi
}
