// Package quadric implements the plane-error accumulator used by
// meshsimplify to score edge collapses.
//
// A Surface holds the ten coefficients of the quadratic form
//
//	Q(x,y,z) = a2*x*x + b2*y*y + c2*z*z + 2*ab*x*y + 2*ac*x*z + 2*ad*x
//	         + 2*bc*y*z + 2*bd*y + 2*cd*z + d2
//
// built from a triangle's plane equation ax+by+cz+d=0. Surfaces merge by
// coefficient-wise addition (FromTriangle, Merge), evaluate the squared
// distance from an arbitrary point to the accumulated plane set
// (DistanceToSurface), and solve for the point minimizing that distance
// (Minimizer).
package quadric
