package goslice3d

import "github.com/go-gl/mathgl/mgl64"

// IntersectionResult is the scratch output buffer for Triangle.Split. A single
// straddling triangle yields at most two fragments per side and two new points
// on the cut, so the arrays are fixed-size and the buffer can be reused across
// an entire mesh pass without allocating.
//
// The contents are overwritten on every Split call; callers must consume the
// result before the next call.
type IntersectionResult struct {
	Upper      [2]Triangle
	Lower      [2]Triangle
	Points     [2]mgl64.Vec3
	UpperCount int
	LowerCount int
	PointCount int
}

// Reset clears the counts. The backing arrays keep their capacity.
func (r *IntersectionResult) Reset() {
	r.UpperCount = 0
	r.LowerCount = 0
	r.PointCount = 0
}

// UpperTriangles returns the fragments above the plane from the last split.
// The slice aliases the scratch buffer and is invalidated by the next Split.
func (r *IntersectionResult) UpperTriangles() []Triangle {
	return r.Upper[:r.UpperCount]
}

// LowerTriangles returns the fragments below the plane from the last split.
func (r *IntersectionResult) LowerTriangles() []Triangle {
	return r.Lower[:r.LowerCount]
}

// IntersectionPoints returns the new points created on the cutting plane.
func (r *IntersectionResult) IntersectionPoints() []mgl64.Vec3 {
	return r.Points[:r.PointCount]
}

func (r *IntersectionResult) addUpper(t Triangle) {
	r.Upper[r.UpperCount] = t
	r.UpperCount++
}

func (r *IntersectionResult) addLower(t Triangle) {
	r.Lower[r.LowerCount] = t
	r.LowerCount++
}

func (r *IntersectionResult) addPoint(p mgl64.Vec3) {
	if r.PointCount < len(r.Points) {
		r.Points[r.PointCount] = p
		r.PointCount++
	}
}
