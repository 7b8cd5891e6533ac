package virtualgeometry

import "github.com/go-gl/mathgl/mgl64"

// boundingSphere computes an approximate minimum enclosing sphere via
// Ritter's two-pass heuristic: find a point far from an arbitrary start,
// then a point far from that, seed a sphere on the resulting diameter, and
// grow it to cover every remaining point. Good enough for LOD culling
// bounds; no library in the retrieval pack offers an enclosing-sphere
// solver, so this is a from-scratch standard-technique implementation.
func boundingSphere(points []mgl64.Vec3) Sphere {
	if len(points) == 0 {
		return Sphere{}
	}
	if len(points) == 1 {
		return Sphere{Center: points[0], Radius: 0}
	}

	x := points[0]
	y := farthest(points, x)
	z := farthest(points, y)

	center := y.Add(z).Mul(0.5)
	radius := z.Sub(y).Len() / 2

	for _, p := range points {
		d := p.Sub(center).Len()
		if d > radius {
			newRadius := (radius + d) / 2
			grow := (newRadius - radius) / d
			center = center.Add(p.Sub(center).Mul(grow))
			radius = newRadius
		}
	}

	return Sphere{Center: center, Radius: radius}
}

func farthest(points []mgl64.Vec3, from mgl64.Vec3) mgl64.Vec3 {
	best := points[0]
	bestDist := -1.0
	for _, p := range points {
		if d := p.Sub(from).LenSqr(); d > bestDist {
			best, bestDist = p, d
		}
	}
	return best
}

// mergeSpheres returns a sphere enclosing both a and b.
func mergeSpheres(a, b Sphere) Sphere {
	if a.Radius == 0 && a.Center == (mgl64.Vec3{}) {
		return b
	}
	d := b.Center.Sub(a.Center).Len()
	if d+b.Radius <= a.Radius {
		return a
	}
	if d+a.Radius <= b.Radius {
		return b
	}
	newRadius := (a.Radius + b.Radius + d) / 2
	if d < 1e-12 {
		return Sphere{Center: a.Center, Radius: newRadius}
	}
	center := a.Center.Add(b.Center.Sub(a.Center).Mul((newRadius - a.Radius) / d))
	return Sphere{Center: center, Radius: newRadius}
}
