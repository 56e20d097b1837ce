package goslice3d

import "github.com/go-gl/mathgl/mgl64"

// TriangleMesh is a triangle-list mesh: parallel vertex, UV and normal arrays
// plus a flat index buffer whose length is a multiple of three. Indices are
// trusted to be in range; the slicing kernel does not defend against malformed
// buffers.
type TriangleMesh struct {
	Vertices []mgl64.Vec3
	UVs      []mgl64.Vec2
	Normals  []mgl64.Vec3
	Indices  []int
}

func (m *TriangleMesh) TriangleCount() int {
	return len(m.Indices) / 3
}

func (m *TriangleMesh) IsEmpty() bool {
	return m == nil || len(m.Indices) == 0
}

// TriangleAt reconstructs the i-th triangle from the shared vertex arrays.
func (m *TriangleMesh) TriangleAt(i int) Triangle {
	a, b, c := m.Indices[i*3], m.Indices[i*3+1], m.Indices[i*3+2]
	return NewTriangle(
		m.Vertices[a], m.Vertices[b], m.Vertices[c],
		m.UVs[a], m.UVs[b], m.UVs[c],
	)
}

// Bounds returns the axis-aligned bounding box of the mesh vertices.
func (m *TriangleMesh) Bounds() (min, max mgl64.Vec3) {
	if len(m.Vertices) == 0 {
		return mgl64.Vec3{}, mgl64.Vec3{}
	}
	min, max = m.Vertices[0], m.Vertices[0]
	for _, p := range m.Vertices[1:] {
		for i := 0; i < 3; i++ {
			if p[i] < min[i] {
				min[i] = p[i]
			} else if p[i] > max[i] {
				max[i] = p[i]
			}
		}
	}
	return min, max
}

// Extents returns the bounding-box side lengths.
func (m *TriangleMesh) Extents() (x, y, z float64) {
	min, max := m.Bounds()
	return max[0] - min[0], max[1] - min[1], max[2] - min[2]
}

func (m *TriangleMesh) Center() mgl64.Vec3 {
	min, max := m.Bounds()
	return min.Add(max).Mul(0.5)
}

// builderKey is the comparable welding key: a vertex is shared only when both
// its position and its texture coordinate match exactly.
type builderKey struct {
	px, py, pz float64
	u, v       float64
}

// MeshBuilder assembles a TriangleMesh, welding identical (position, UV)
// vertices through a map for average O(1) lookup.
type MeshBuilder struct {
	mesh       TriangleMesh
	vertexIndex map[builderKey]int
}

func NewMeshBuilder() *MeshBuilder {
	return &MeshBuilder{
		vertexIndex: make(map[builderKey]int),
	}
}

// AddVertex returns the index of the vertex, adding it only if an identical
// one has not been seen before.
func (b *MeshBuilder) AddVertex(p mgl64.Vec3, uv mgl64.Vec2) int {
	key := builderKey{px: p[0], py: p[1], pz: p[2], u: uv[0], v: uv[1]}
	if index, found := b.vertexIndex[key]; found {
		return index
	}
	b.mesh.Vertices = append(b.mesh.Vertices, p)
	b.mesh.UVs = append(b.mesh.UVs, uv)
	newIndex := len(b.mesh.Vertices) - 1
	b.vertexIndex[key] = newIndex
	return newIndex
}

func (b *MeshBuilder) AddTriangle(t Triangle) {
	for i := 0; i < 3; i++ {
		b.mesh.Indices = append(b.mesh.Indices, b.AddVertex(t.Points[i], t.UVs[i]))
	}
}

// Build finalizes the mesh and resets the builder. Welded vertices get
// smooth (face-averaged) normals.
func (b *MeshBuilder) Build() *TriangleMesh {
	m := b.mesh
	b.mesh = TriangleMesh{}
	b.vertexIndex = make(map[builderKey]int)
	RecomputeSmoothNormals(&m)
	return &m
}
