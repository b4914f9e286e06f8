// Package geometry is the numeric kernel of the avoidance planner: finite
// 2D points, poses, and the segment predicates the obstacle and graph
// packages build on. Coordinates are millimetres, orientation is degrees.
package geometry

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// DefaultEpsilon is the tolerance used by Equal and EpsilonEqual when the
// caller doesn't supply one explicitly.
const DefaultEpsilon = 1e-3

// Coords is a finite 2D point in millimetres. It is an alias of orb.Point
// so the same value can flow straight into orb's planar helpers and into
// orb/geojson when loading obstacle rings, without a conversion layer.
type Coords = orb.Point

// Pose is a Coords extended with an orientation in degrees. The core treats
// O as an opaque angular parameter used only for Rectangle construction.
type Pose struct {
	Coords
	O float64
}

// Distance returns the Euclidean distance between a and b, always >= 0.
func Distance(a, b Coords) float64 {
	return planar.Distance(a, b)
}

// EpsilonEqual reports whether x and y differ by less than eps.
func EpsilonEqual(x, y float64, eps float64) bool {
	d := x - y
	if d < 0 {
		d = -d
	}
	return d < eps
}

// Equal reports whether a and b coincide within eps (default
// DefaultEpsilon when eps <= 0).
func Equal(a, b Coords, eps float64) bool {
	if eps <= 0 {
		eps = DefaultEpsilon
	}
	return Distance(a, b) < eps
}

func sub(a, b Coords) Coords {
	return Coords{a.X() - b.X(), a.Y() - b.Y()}
}

func cross(a, b Coords) float64 {
	return a.X()*b.Y() - a.Y()*b.X()
}

func dot(a, b Coords) float64 {
	return a.X()*b.X() + a.Y()*b.Y()
}
