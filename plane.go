package goslice3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Side is the result of classifying a point against a Plane.
type Side int

const (
	SideOn Side = iota
	SideAbove
	SideBelow
)

func (s Side) String() string {
	switch s {
	case SideAbove:
		return "above"
	case SideBelow:
		return "below"
	}
	return "on"
}

// Points closer to the plane than this count as lying on it, so near-plane
// vertices never spawn zero-area slivers.
const planeThickness = 1e-6

// Plane is the surface dot(Normal, p) = D with a unit normal. It is a value
// type and never mutated after construction.
type Plane struct {
	Normal mgl64.Vec3
	D      float64
}

func NewPlane(normal mgl64.Vec3, distance float64) Plane {
	length := normal.Len()
	if length > 0 && math.Abs(length-1.0) > planeThickness {
		normal = normal.Mul(1.0 / length)
		distance /= length
	}
	return Plane{Normal: normal, D: distance}
}

// NewPlaneFromPoint builds the plane through point with the given normal.
func NewPlaneFromPoint(point, normal mgl64.Vec3) Plane {
	n := normal.Normalize()
	return Plane{Normal: n, D: n.Dot(point)}
}

func (p Plane) Flip() Plane {
	return Plane{Normal: p.Normal.Mul(-1), D: -p.D}
}

// SignedDistance is positive above the plane, negative below.
func (p Plane) SignedDistance(point mgl64.Vec3) float64 {
	return p.Normal.Dot(point) - p.D
}

// ClassifySide reports which side of the plane the point falls on, treating
// anything within planeThickness as on the surface.
func (p Plane) ClassifySide(point mgl64.Vec3) Side {
	dist := p.SignedDistance(point)
	if math.Abs(dist) < planeThickness {
		return SideOn
	}
	if dist > 0 {
		return SideAbove
	}
	return SideBelow
}

// IntersectEdge solves for the parameter t at which the segment a->b crosses
// the plane, so that lerp(a, b, t) has zero signed distance. Returns false
// when the segment is parallel to the plane.
func (p Plane) IntersectEdge(a, b mgl64.Vec3) (float64, bool) {
	denom := p.Normal.Dot(b.Sub(a))
	if denom == 0 {
		return 0, false
	}
	return -p.SignedDistance(a) / denom, true
}
