package goslice3d

import "github.com/go-gl/mathgl/mgl64"

// SliceResult holds the two hulls produced by a slice. A hull that collected
// no triangles is nil, not an empty mesh. CrossSection is the unordered list
// of new points created on the cutting plane, for downstream cap generation.
type SliceResult struct {
	Upper        *TriangleMesh
	Lower        *TriangleMesh
	CrossSection []mgl64.Vec3
}

// Slicer cuts triangle meshes with a plane. It owns the reusable scratch
// buffers for the pass, so a Slicer must not be shared between goroutines;
// independent slices can run in parallel with a Slicer each.
type Slicer struct {
	scratch      IntersectionResult
	upper        *TriangleStore
	lower        *TriangleStore
	crossSection []mgl64.Vec3
	recompute    NormalRecomputer
}

func NewSlicer() *Slicer {
	return &Slicer{
		upper:     NewTriangleStore(),
		lower:     NewTriangleStore(),
		recompute: RecomputeFlatNormals,
	}
}

// SetNormalRecomputer replaces the normal recomputation applied to each
// reconstructed hull. The default is RecomputeFlatNormals.
func (s *Slicer) SetNormalRecomputer(fn NormalRecomputer) {
	if fn != nil {
		s.recompute = fn
	}
}

// Slice cuts the mesh with the plane and reassembles the two hulls. It
// returns nil when the mesh is absent or has no triangles; that is the only
// validation done here, index buffers are trusted.
func (s *Slicer) Slice(mesh *TriangleMesh, plane Plane) *SliceResult {
	if mesh.IsEmpty() {
		return nil
	}

	s.upper.Reset()
	s.lower.Reset()
	s.crossSection = s.crossSection[:0]

	for i := 0; i < mesh.TriangleCount(); i++ {
		tri := mesh.TriangleAt(i)
		if tri.Split(plane, &s.scratch) {
			for _, t := range s.scratch.UpperTriangles() {
				s.upper.Add(t)
			}
			for _, t := range s.scratch.LowerTriangles() {
				s.lower.Add(t)
			}
			s.crossSection = append(s.crossSection, s.scratch.IntersectionPoints()...)
			continue
		}

		// Whole triangle on one side: assign it by the side of its first
		// vertex, counting on-plane as upper so zero-volume geometry is
		// never dropped.
		if plane.ClassifySide(tri.Points[0]) == SideBelow {
			s.lower.Add(tri)
		} else {
			s.upper.Add(tri)
		}
	}

	result := &SliceResult{
		Upper: s.buildMesh(s.upper),
		Lower: s.buildMesh(s.lower),
	}
	if len(s.crossSection) > 0 {
		result.CrossSection = append([]mgl64.Vec3(nil), s.crossSection...)
	}
	return result
}

// buildMesh reconstructs a hull from its triangle list. Every triangle gets
// three fresh vertices; nothing is welded, and indices are sequential, so the
// output arrays are exactly 3x the triangle count.
func (s *Slicer) buildMesh(store *TriangleStore) *TriangleMesh {
	count := store.Count()
	if count == 0 {
		return nil
	}

	mesh := &TriangleMesh{
		Vertices: make([]mgl64.Vec3, 0, count*3),
		UVs:      make([]mgl64.Vec2, 0, count*3),
		Indices:  make([]int, 0, count*3),
	}
	for i := 0; i < count; i++ {
		t := store.At(i)
		for c := 0; c < 3; c++ {
			mesh.Vertices = append(mesh.Vertices, t.Points[c])
			mesh.UVs = append(mesh.UVs, t.UVs[c])
			mesh.Indices = append(mesh.Indices, len(mesh.Indices))
		}
	}

	s.recompute(mesh)
	return mesh
}

// Slice is the one-shot convenience wrapper around a fresh Slicer.
func Slice(mesh *TriangleMesh, plane Plane) *SliceResult {
	return NewSlicer().Slice(mesh, plane)
}
