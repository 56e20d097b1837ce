package goslice3d

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// singleTriangleMesh wraps the canonical unit triangle in mesh form.
func singleTriangleMesh() *TriangleMesh {
	m := &TriangleMesh{
		Vertices: []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		UVs:      []mgl64.Vec2{{0, 0}, {1, 0}, {0, 1}},
		Indices:  []int{0, 1, 2},
	}
	RecomputeFlatNormals(m)
	return m
}

func TestSliceUnitTriangle(t *testing.T) {
	mesh := singleTriangleMesh()
	plane := NewPlane(mgl64.Vec3{1, 0, 0}, 0.5)

	result := Slice(mesh, plane)
	require.NotNil(t, result)
	require.NotNil(t, result.Upper)
	require.NotNil(t, result.Lower)

	// One triangle above the cut, a quad (two triangles) below it.
	assert.Equal(t, 1, result.Upper.TriangleCount())
	assert.Equal(t, 2, result.Lower.TriangleCount())

	// Both new vertices sit at x=0.5 with UVs interpolated at t=0.5.
	require.Len(t, result.CrossSection, 2)
	assert.InDelta(t, 0.5, result.CrossSection[0][0], 1e-12)
	assert.InDelta(t, 0.5, result.CrossSection[1][0], 1e-12)

	foundInterpolated := false
	for i, v := range result.Upper.Vertices {
		if almostEqual(v[0], 0.5) && almostEqual(v[1], 0) {
			foundInterpolated = true
			assert.InDelta(t, 0.5, result.Upper.UVs[i][0], 1e-12)
			assert.InDelta(t, 0.0, result.Upper.UVs[i][1], 1e-12)
		}
	}
	assert.True(t, foundInterpolated, "upper hull has no interpolated vertex at (0.5, 0)")

	// Flat normals from the z=0 source triangle.
	for _, n := range result.Upper.Normals {
		assert.True(t, vecAlmostEqual(n, mgl64.Vec3{0, 0, 1}), "normal %v", n)
	}
}

func TestSliceOutputSharesNoVertices(t *testing.T) {
	mesh := NewUVSphereMesh(10, 12, 8)
	plane := NewPlane(mgl64.Vec3{0, 1, 0}, 1.5)

	result := Slice(mesh, plane)
	require.NotNil(t, result)

	for _, hull := range []*TriangleMesh{result.Upper, result.Lower} {
		require.NotNil(t, hull)
		assert.Equal(t, hull.TriangleCount()*3, len(hull.Vertices))
		assert.Equal(t, hull.TriangleCount()*3, len(hull.UVs))
		assert.Equal(t, hull.TriangleCount()*3, len(hull.Normals))
		for i, idx := range hull.Indices {
			assert.Equal(t, i, idx, "indices must be sequential")
		}
	}
}

func TestSliceMeshFullyAbove(t *testing.T) {
	mesh := singleTriangleMesh()
	plane := NewPlane(mgl64.Vec3{0, 0, 1}, -5)

	result := Slice(mesh, plane)
	require.NotNil(t, result)
	require.NotNil(t, result.Upper)
	assert.Nil(t, result.Lower)
	assert.Empty(t, result.CrossSection)

	// Geometry passes through unchanged, triangle by triangle.
	require.Equal(t, mesh.TriangleCount(), result.Upper.TriangleCount())
	for i := 0; i < mesh.TriangleCount(); i++ {
		want, got := mesh.TriangleAt(i), result.Upper.TriangleAt(i)
		for c := 0; c < 3; c++ {
			assert.True(t, vecAlmostEqual(want.Points[c], got.Points[c]))
			assert.True(t, uvAlmostEqual(want.UVs[c], got.UVs[c]))
		}
	}
}

func TestSliceMeshFullyBelow(t *testing.T) {
	mesh := singleTriangleMesh()
	plane := NewPlane(mgl64.Vec3{0, 0, 1}, 5)

	result := Slice(mesh, plane)
	require.NotNil(t, result)
	assert.Nil(t, result.Upper)
	require.NotNil(t, result.Lower)
	assert.Equal(t, mesh.TriangleCount(), result.Lower.TriangleCount())
}

func TestSliceEmptyMesh(t *testing.T) {
	plane := NewPlane(mgl64.Vec3{1, 0, 0}, 0)

	assert.Nil(t, Slice(nil, plane))
	assert.Nil(t, Slice(&TriangleMesh{}, plane))
}

func TestSliceCoplanarTriangleGoesUpper(t *testing.T) {
	// A triangle lying in the cutting plane is on-surface everywhere; it is
	// assigned to the upper hull by convention rather than dropped.
	mesh := singleTriangleMesh()
	plane := NewPlane(mgl64.Vec3{0, 0, 1}, 0)

	result := Slice(mesh, plane)
	require.NotNil(t, result)
	require.NotNil(t, result.Upper)
	assert.Nil(t, result.Lower)
	assert.Equal(t, 1, result.Upper.TriangleCount())
}

func TestSliceCube(t *testing.T) {
	mesh := NewCubeMesh(2)
	require.Equal(t, 12, mesh.TriangleCount())

	plane := NewPlane(mgl64.Vec3{0, 1, 0}, 0)
	result := Slice(mesh, plane)
	require.NotNil(t, result)
	require.NotNil(t, result.Upper)
	require.NotNil(t, result.Lower)

	// The top and bottom faces pass through whole; each of the eight side
	// triangles splits into three fragments (one plus a quad).
	assert.Equal(t, 14, result.Upper.TriangleCount())
	assert.Equal(t, 14, result.Lower.TriangleCount())
	assert.Len(t, result.CrossSection, 16)

	for _, p := range result.CrossSection {
		assert.InDelta(t, 0, p[1], planeThickness)
	}
}

func TestSliceIsIdempotentForOneSidedMeshes(t *testing.T) {
	mesh := NewCubeMesh(2)
	plane := NewPlane(mgl64.Vec3{0, 1, 0}, -5)

	first := Slice(mesh, plane)
	require.NotNil(t, first)
	require.NotNil(t, first.Upper)
	require.Nil(t, first.Lower)

	second := Slice(first.Upper, plane)
	require.NotNil(t, second)
	require.NotNil(t, second.Upper)
	assert.Nil(t, second.Lower)
	assert.Equal(t, first.Upper.TriangleCount(), second.Upper.TriangleCount())
}

func TestSlicerReuseAcrossCalls(t *testing.T) {
	s := NewSlicer()
	cube := NewCubeMesh(2)

	for i := 0; i < 3; i++ {
		result := s.Slice(cube, NewPlane(mgl64.Vec3{0, 1, 0}, 0))
		require.NotNil(t, result)
		assert.Equal(t, 14, result.Upper.TriangleCount())
		assert.Equal(t, 14, result.Lower.TriangleCount())
		assert.Len(t, result.CrossSection, 16)
	}
}

func TestSlicerCustomNormalRecomputer(t *testing.T) {
	s := NewSlicer()
	s.SetNormalRecomputer(RecomputeSmoothNormals)

	result := s.Slice(NewUVSphereMesh(5, 10, 6), NewPlane(mgl64.Vec3{0, 1, 0}, 0))
	require.NotNil(t, result)
	require.NotNil(t, result.Upper)

	for _, n := range result.Upper.Normals {
		assert.InDelta(t, 1.0, n.Len(), 1e-9, "smooth normals must be unit length")
	}
}
