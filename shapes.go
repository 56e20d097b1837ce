package goslice3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// NewCubeMesh builds an axis-aligned cube of the given edge length, centered
// on the origin, with each face UV-mapped to the full [0,1] square. Winding
// is outward on every face. Faces do not share vertices, so each face keeps
// its own flat normal instead of a corner average.
func NewCubeMesh(size float64) *TriangleMesh {
	h := size / 2

	quads := [6][4]mgl64.Vec3{
		{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}},     // +Z
		{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}}, // -Z
		{{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h}},     // +X
		{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}}, // -X
		{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}},     // +Y
		{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}}, // -Y
	}
	uvs := [4]mgl64.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	mesh := &TriangleMesh{
		Vertices: make([]mgl64.Vec3, 0, 24),
		UVs:      make([]mgl64.Vec2, 0, 24),
		Indices:  make([]int, 0, 36),
	}
	for _, q := range quads {
		base := len(mesh.Vertices)
		for c := 0; c < 4; c++ {
			mesh.Vertices = append(mesh.Vertices, q[c])
			mesh.UVs = append(mesh.UVs, uvs[c])
		}
		mesh.Indices = append(mesh.Indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}
	RecomputeFlatNormals(mesh)
	return mesh
}

// NewUVSphereMesh builds a latitude/longitude sphere with spherical UVs.
// segments is the slice count around the equator, rings the stack count from
// pole to pole.
func NewUVSphereMesh(radius float64, segments, rings int) *TriangleMesh {
	if segments < 3 {
		segments = 3
	}
	if rings < 2 {
		rings = 2
	}

	b := NewMeshBuilder()
	at := func(ring, seg int) (mgl64.Vec3, mgl64.Vec2) {
		theta := math.Pi * float64(ring) / float64(rings)
		phi := 2 * math.Pi * float64(seg) / float64(segments)
		p := mgl64.Vec3{
			radius * math.Sin(theta) * math.Cos(phi),
			radius * math.Cos(theta),
			radius * math.Sin(theta) * math.Sin(phi),
		}
		uv := mgl64.Vec2{float64(seg) / float64(segments), float64(ring) / float64(rings)}
		return p, uv
	}

	for r := 0; r < rings; r++ {
		for s := 0; s < segments; s++ {
			pa, ua := at(r, s)
			pb, ub := at(r+1, s)
			pc, uc := at(r+1, s+1)
			pd, ud := at(r, s+1)

			switch {
			case r == 0: // top cap, a and d coincide at the pole
				b.AddTriangle(NewTriangle(pa, pc, pb, ua, uc, ub))
			case r == rings-1: // bottom cap, b and c coincide
				b.AddTriangle(NewTriangle(pa, pd, pc, ua, ud, uc))
			default:
				addQuad(b, [4]mgl64.Vec3{pa, pd, pc, pb}, [4]mgl64.Vec2{ua, ud, uc, ub})
			}
		}
	}
	return b.Build()
}

func addQuad(b *MeshBuilder, p [4]mgl64.Vec3, uv [4]mgl64.Vec2) {
	b.AddTriangle(NewTriangle(p[0], p[1], p[2], uv[0], uv[1], uv[2]))
	b.AddTriangle(NewTriangle(p[0], p[2], p[3], uv[0], uv[2], uv[3]))
}
