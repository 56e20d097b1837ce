package goslice3d

import "github.com/go-gl/mathgl/mgl64"

// NormalRecomputer rebuilds a mesh's per-vertex normals from its final
// triangle geometry. Which variant to use is host policy, not part of the
// slicing algorithm, so the Slicer takes it as a pluggable step.
type NormalRecomputer func(*TriangleMesh)

// RecomputeFlatNormals assigns each vertex the face normal of its triangle.
// This matches the slicer's output layout, where every triangle owns three
// unshared vertices.
func RecomputeFlatNormals(m *TriangleMesh) {
	if len(m.Normals) != len(m.Vertices) {
		m.Normals = make([]mgl64.Vec3, len(m.Vertices))
	}
	for i := 0; i < m.TriangleCount(); i++ {
		n := m.TriangleAt(i).Normal()
		for c := 0; c < 3; c++ {
			m.Normals[m.Indices[i*3+c]] = n
		}
	}
}

// RecomputeSmoothNormals averages the face normals of every triangle touching
// the same position. Positions are matched exactly through a map, so it works
// both for welded meshes and for the slicer's unshared output, where it
// re-smooths the seams the reconstruction left unwelded.
func RecomputeSmoothNormals(m *TriangleMesh) {
	if len(m.Normals) != len(m.Vertices) {
		m.Normals = make([]mgl64.Vec3, len(m.Vertices))
	}

	sums := make(map[[3]float64]mgl64.Vec3, len(m.Vertices))
	for i := 0; i < m.TriangleCount(); i++ {
		n := m.TriangleAt(i).Normal()
		for c := 0; c < 3; c++ {
			p := m.Vertices[m.Indices[i*3+c]]
			key := [3]float64{p[0], p[1], p[2]}
			sums[key] = sums[key].Add(n)
		}
	}

	for i, p := range m.Vertices {
		sum := sums[[3]float64{p[0], p[1], p[2]}]
		length := sum.Len()
		if length == 0 {
			m.Normals[i] = mgl64.Vec3{}
			continue
		}
		m.Normals[i] = sum.Mul(1.0 / length)
	}
}
