package model

import "math"

// orientEpsilon absorbs floating-point noise when classifying the rotation
// of a transform. Values within this distance of zero are treated as zero.
const orientEpsilon = 1e-6

// Matrix represents a 2D affine transformation as the ordered 6-tuple
// [a b c d e f], using the row-vector convention (see the package
// documentation). The implicit third column is [0 0 1].
type Matrix [6]float64

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{1, 0, 0, 1, 0, 0}
}

// Translate returns a translation matrix.
func Translate(tx, ty float64) Matrix {
	return Matrix{1, 0, 0, 1, tx, ty}
}

// Scale returns a scaling matrix.
func Scale(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, sy, 0, 0}
}

// Rotate returns a rotation matrix for the given angle in radians.
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{cos, sin, -sin, cos, 0, 0}
}

// Multiply composes the receiver with other and returns the transform
// equivalent to applying the receiver first, then other. Composition is
// not commutative; callers depend on this left-to-right order.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		m[0]*other[0] + m[1]*other[2],
		m[0]*other[1] + m[1]*other[3],
		m[2]*other[0] + m[3]*other[2],
		m[2]*other[1] + m[3]*other[3],
		m[4]*other[0] + m[5]*other[2] + other[4],
		m[4]*other[1] + m[5]*other[3] + other[5],
	}
}

// Transform applies the matrix to a point.
func (m Matrix) Transform(p Point) Point {
	return Point{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Orientation classifies the rotation implied by the linear part (a,b,c,d)
// of the matrix into exactly one of 0, 90, 180 or 270 degrees.
//
// Only these four classes are recognized. A sheared or arbitrarily rotated
// transform is assigned to whichever class its sign pattern matches, with
// no finer distinction made. A pure vertical mirror (d negative, a
// non-negative) classifies as 180 like a true point rotation; callers that
// care about the difference must inspect the a component themselves.
func (m Matrix) Orientation() int {
	switch {
	case m[3] > orientEpsilon:
		return 0
	case m[3] < -orientEpsilon:
		return 180
	case m[1] > 0:
		return 90
	default:
		return 270
	}
}

// IsIdentity reports whether the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m[0] == 1 && m[1] == 0 && m[2] == 0 && m[3] == 1 && m[4] == 0 && m[5] == 0
}
