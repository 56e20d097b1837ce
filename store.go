package goslice3d

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// TriangleStore is a growable, append-only triangle list. The slicer keeps
// one per hull across a whole mesh pass; Reset keeps the capacity so repeated
// passes do not reallocate.
type TriangleStore struct {
	tris []Triangle
}

func NewTriangleStore() *TriangleStore {
	return &TriangleStore{tris: make([]Triangle, 0, 64)}
}

func (ts *TriangleStore) Add(t Triangle) {
	ts.tris = append(ts.tris, t)
}

func (ts *TriangleStore) Count() int {
	return len(ts.tris)
}

func (ts *TriangleStore) At(i int) Triangle {
	return ts.tris[i]
}

func (ts *TriangleStore) Reset() {
	ts.tris = ts.tris[:0]
}

// SortByDistance orders the triangles so the ones farthest from pos come
// first, for painter's-algorithm rendering.
func (ts *TriangleStore) SortByDistance(pos mgl64.Vec3) {
	sort.Slice(ts.tris, func(i, j int) bool {
		di := ts.tris[i].Centroid().Sub(pos).Len()
		dj := ts.tris[j].Centroid().Sub(pos).Len()
		return di > dj
	})
}
