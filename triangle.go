package goslice3d

import "github.com/go-gl/mathgl/mgl64"

// Triangle is three vertex positions with their texture coordinates, in a
// fixed winding order. Triangles are values; Split never mutates its receiver.
type Triangle struct {
	Points [3]mgl64.Vec3
	UVs    [3]mgl64.Vec2
}

func NewTriangle(p0, p1, p2 mgl64.Vec3, uv0, uv1, uv2 mgl64.Vec2) Triangle {
	return Triangle{
		Points: [3]mgl64.Vec3{p0, p1, p2},
		UVs:    [3]mgl64.Vec2{uv0, uv1, uv2},
	}
}

// Normal is the unit face normal implied by the winding order, or the zero
// vector for a degenerate triangle.
func (t Triangle) Normal() mgl64.Vec3 {
	n := t.Points[1].Sub(t.Points[0]).Cross(t.Points[2].Sub(t.Points[0]))
	length := n.Len()
	if length == 0 {
		return mgl64.Vec3{}
	}
	return n.Mul(1.0 / length)
}

func (t Triangle) Centroid() mgl64.Vec3 {
	return t.Points[0].Add(t.Points[1]).Add(t.Points[2]).Mul(1.0 / 3.0)
}

// Split classifies the triangle against the plane and, if it straddles,
// subdivides it into fragments written to res. It walks the vertex ring once:
// each vertex lands in the buffer for its side (on-plane vertices land in
// both), and each crossing edge contributes one interpolated vertex to both
// buffers. Position and texture coordinate are interpolated with the same
// parameter, and the ring order keeps the original winding on every fragment.
//
// Returns false, leaving res empty, when all vertices are on one side; the
// caller then assigns the whole triangle to a hull itself.
func (t Triangle) Split(plane Plane, res *IntersectionResult) bool {
	res.Reset()

	var sides [3]Side
	above, below := 0, 0
	for i, p := range t.Points {
		sides[i] = plane.ClassifySide(p)
		switch sides[i] {
		case SideAbove:
			above++
		case SideBelow:
			below++
		}
	}
	if above == 0 || below == 0 {
		return false
	}

	var upper, lower splitRing
	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		switch sides[i] {
		case SideOn:
			upper.add(t.Points[i], t.UVs[i])
			lower.add(t.Points[i], t.UVs[i])
		case SideAbove:
			upper.add(t.Points[i], t.UVs[i])
		case SideBelow:
			lower.add(t.Points[i], t.UVs[i])
		}

		crossing := (sides[i] == SideAbove && sides[j] == SideBelow) ||
			(sides[i] == SideBelow && sides[j] == SideAbove)
		if !crossing {
			continue
		}
		s, ok := plane.IntersectEdge(t.Points[i], t.Points[j])
		if !ok {
			continue
		}
		p := lerpVec3(t.Points[i], t.Points[j], s)
		uv := lerpVec2(t.UVs[i], t.UVs[j], s)
		upper.add(p, uv)
		lower.add(p, uv)
		res.addPoint(p)
	}

	upper.emit(res.addUpper)
	lower.emit(res.addLower)
	return true
}

// splitRing collects one side of a cut in winding order. A triangle split by a
// single plane never produces more than four vertices on a side.
type splitRing struct {
	pts [4]mgl64.Vec3
	uvs [4]mgl64.Vec2
	n   int
}

func (r *splitRing) add(p mgl64.Vec3, uv mgl64.Vec2) {
	if r.n < len(r.pts) {
		r.pts[r.n] = p
		r.uvs[r.n] = uv
		r.n++
	}
}

// emit fan-triangulates the ring, preserving its winding.
func (r *splitRing) emit(add func(Triangle)) {
	for i := 2; i < r.n; i++ {
		add(NewTriangle(
			r.pts[0], r.pts[i-1], r.pts[i],
			r.uvs[0], r.uvs[i-1], r.uvs[i],
		))
	}
}

func lerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

func lerpVec2(a, b mgl64.Vec2, t float64) mgl64.Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}
