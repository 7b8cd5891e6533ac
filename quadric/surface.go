package quadric

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Surface is the ten-coefficient accumulator described in doc.go.
type Surface struct {
	A2, B2, C2, D2 float64
	AB, AC, AD     float64
	BC, BD         float64
	CD             float64
}

// FromTriangle builds the quadric of the plane through p0, p1, p2.
// Degenerate triangles (zero-area, or nearly so) produce the zero Surface,
// which contributes nothing when merged and has zero error everywhere.
func FromTriangle(p0, p1, p2 mgl64.Vec3) Surface {
	e1 := p1.Sub(p0)
	e2 := p2.Sub(p0)
	n := e1.Cross(e2)
	length := n.Len()
	if length < 1e-20 {
		return Surface{}
	}
	n = n.Mul(1 / length)
	a, b, c := n[0], n[1], n[2]
	d := -n.Dot(p0)

	return Surface{
		A2: a * a, B2: b * b, C2: c * c, D2: d * d,
		AB: a * b, AC: a * c, AD: a * d,
		BC: b * c, BD: b * d,
		CD: c * d,
	}
}

// Merge returns the coefficient-wise sum of s0 and s1, the quadric of the
// union of the two planes' contributions.
func Merge(s0, s1 Surface) Surface {
	return Surface{
		A2: s0.A2 + s1.A2, B2: s0.B2 + s1.B2, C2: s0.C2 + s1.C2, D2: s0.D2 + s1.D2,
		AB: s0.AB + s1.AB, AC: s0.AC + s1.AC, AD: s0.AD + s1.AD,
		BC: s0.BC + s1.BC, BD: s0.BD + s1.BD,
		CD: s0.CD + s1.CD,
	}
}

// Add folds other into s in place.
func (s *Surface) Add(other Surface) {
	*s = Merge(*s, other)
}

// DistanceToSurface evaluates the accumulated quadratic form at p, clamped
// to zero (accumulated floating-point error can otherwise drive the result
// slightly negative for points very near the encoded plane set).
func (s Surface) DistanceToSurface(p mgl64.Vec3) float64 {
	x, y, z := p[0], p[1], p[2]
	e := s.A2*x*x + s.B2*y*y + s.C2*z*z +
		2*s.AB*x*y + 2*s.AC*x*z + 2*s.AD*x +
		2*s.BC*y*z + 2*s.BD*y +
		2*s.CD*z + s.D2
	if e < 0 {
		e = 0
	}
	return e
}

// Minimizer solves for the point minimizing the quadratic form, i.e. the
// root of its gradient:
//
//	[A2 AB AC] [x]   [-AD]
//	[AB B2 BC] [y] = [-BD]
//	[AC BC C2] [z]   [-CD]
//
// It returns ok=false when the system is singular (the common case: three
// coplanar or near-coplanar adjacent triangles), in which case the caller
// falls back to the edge midpoint per the merge-error evaluation rule.
func (s Surface) Minimizer() (p mgl64.Vec3, ok bool) {
	m00, m01, m02 := s.A2, s.AB, s.AC
	m10, m11, m12 := s.AB, s.B2, s.BC
	m20, m21, m22 := s.AC, s.BC, s.C2

	det := m00*(m11*m22-m12*m21) -
		m01*(m10*m22-m12*m20) +
		m02*(m10*m21-m11*m20)
	if math.Abs(det) < 1e-12 {
		return mgl64.Vec3{}, false
	}

	rx, ry, rz := -s.AD, -s.BD, -s.CD
	invDet := 1 / det

	x := (rx*(m11*m22-m12*m21) - m01*(ry*m22-m12*rz) + m02*(ry*m21-m11*rz)) * invDet
	y := (m00*(ry*m22-m12*rz) - rx*(m10*m22-m12*m20) + m02*(m10*rz-ry*m20)) * invDet
	z := (m00*(m11*rz-ry*m21) - m01*(m10*rz-ry*m20) + rx*(m10*m21-m11*m20)) * invDet

	if math.IsNaN(x) || math.IsNaN(y) || math.IsNaN(z) {
		return mgl64.Vec3{}, false
	}

	return mgl64.Vec3{x, y, z}, true
}
