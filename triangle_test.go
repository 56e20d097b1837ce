package goslice3d

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// unitTriangle is the canonical test triangle in the z=0 plane with UVs
// matching its xy coordinates.
func unitTriangle() Triangle {
	return NewTriangle(
		mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0},
		mgl64.Vec2{0, 0}, mgl64.Vec2{1, 0}, mgl64.Vec2{0, 1},
	)
}

func TestSplitNoSplit(t *testing.T) {
	tri := unitTriangle()

	testCases := []struct {
		name  string
		plane Plane
	}{
		{"Fully above", NewPlaneFromPoint(mgl64.Vec3{0, 0, -1}, mgl64.Vec3{0, 0, 1})},
		{"Fully below", NewPlaneFromPoint(mgl64.Vec3{0, 0, 1}, mgl64.Vec3{0, 0, 1})},
		{"Coplanar", NewPlaneFromPoint(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, 1})},
		{"Touching a vertex", NewPlaneFromPoint(mgl64.Vec3{1, 0, 0}, mgl64.Vec3{1, 0, 0})},
	}

	var res IntersectionResult
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tri.Split(tc.plane, &res) {
				t.Fatalf("Split reported a split for a one-sided triangle")
			}
			if res.UpperCount != 0 || res.LowerCount != 0 || res.PointCount != 0 {
				t.Errorf("no-split left data in result: %d/%d/%d",
					res.UpperCount, res.LowerCount, res.PointCount)
			}
		})
	}
}

func TestSplitOneAboveTwoBelow(t *testing.T) {
	tri := unitTriangle()
	plane := NewPlaneFromPoint(mgl64.Vec3{0.5, 0, 0}, mgl64.Vec3{1, 0, 0})

	var res IntersectionResult
	if !tri.Split(plane, &res) {
		t.Fatal("expected a split")
	}

	if res.UpperCount != 1 || res.LowerCount != 2 {
		t.Fatalf("fragment counts = %d upper / %d lower, want 1/2", res.UpperCount, res.LowerCount)
	}
	if res.PointCount != 2 {
		t.Fatalf("intersection point count = %d, want 2", res.PointCount)
	}

	// Both new points sit at x=0.5 on the crossing edges, with UVs
	// interpolated at t=0.5.
	wantPoints := []mgl64.Vec3{{0.5, 0, 0}, {0.5, 0.5, 0}}
	for i, want := range wantPoints {
		if !vecAlmostEqual(res.Points[i], want) {
			t.Errorf("point %d = %v, want %v", i, res.Points[i], want)
		}
	}

	foundMidUV := false
	for _, tri := range res.UpperTriangles() {
		for c := 0; c < 3; c++ {
			if uvAlmostEqual(tri.UVs[c], mgl64.Vec2{0.5, 0}) {
				foundMidUV = true
			}
		}
	}
	if !foundMidUV {
		t.Errorf("upper fragments carry no interpolated UV (0.5, 0)")
	}
}

func TestSplitTwoAboveOneBelow(t *testing.T) {
	tri := unitTriangle()
	// A diagonal plane isolating the first vertex below it.
	plane := NewPlaneFromPoint(mgl64.Vec3{0.2, 0.2, 0}, mgl64.Vec3{1, 1, 0}.Normalize())

	var res IntersectionResult
	if !tri.Split(plane, &res) {
		t.Fatal("expected a split")
	}
	if res.UpperCount != 2 || res.LowerCount != 1 {
		t.Fatalf("fragment counts = %d upper / %d lower, want 2/1", res.UpperCount, res.LowerCount)
	}
}

func TestSplitTotalFragmentsAlwaysThree(t *testing.T) {
	tri := unitTriangle()

	planes := []Plane{
		NewPlaneFromPoint(mgl64.Vec3{0.5, 0, 0}, mgl64.Vec3{1, 0, 0}),
		NewPlaneFromPoint(mgl64.Vec3{0, 0.5, 0}, mgl64.Vec3{0, 1, 0}),
		NewPlaneFromPoint(mgl64.Vec3{0.3, 0, 0}, mgl64.Vec3{1, 0, 0}),
		NewPlaneFromPoint(mgl64.Vec3{0.3, 0.3, 0}, mgl64.Vec3{1, 1, 0}.Normalize()),
	}

	var res IntersectionResult
	for _, plane := range planes {
		if !tri.Split(plane, &res) {
			t.Fatalf("expected a split for plane %v", plane)
		}
		if total := res.UpperCount + res.LowerCount; total != 3 {
			t.Errorf("plane %v: %d fragments, want 3", plane, total)
		}
		if res.PointCount != 2 {
			t.Errorf("plane %v: %d intersection points, want 2", plane, res.PointCount)
		}
	}
}

func TestSplitOnVertex(t *testing.T) {
	// One vertex exactly on the plane, the other two on opposite sides:
	// the on-plane vertex folds into both halves and only one edge crosses.
	tri := NewTriangle(
		mgl64.Vec3{0.5, 1, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 0, 0},
		mgl64.Vec2{0.5, 1}, mgl64.Vec2{1, 0}, mgl64.Vec2{0, 0},
	)
	plane := NewPlaneFromPoint(mgl64.Vec3{0.5, 0, 0}, mgl64.Vec3{1, 0, 0})

	var res IntersectionResult
	if !tri.Split(plane, &res) {
		t.Fatal("expected a split")
	}
	if res.UpperCount != 1 || res.LowerCount != 1 {
		t.Fatalf("fragment counts = %d/%d, want 1/1", res.UpperCount, res.LowerCount)
	}
	if res.PointCount != 1 {
		t.Fatalf("intersection point count = %d, want 1", res.PointCount)
	}
	if !vecAlmostEqual(res.Points[0], mgl64.Vec3{0.5, 0, 0}) {
		t.Errorf("intersection point = %v, want (0.5, 0, 0)", res.Points[0])
	}
}

func TestSplitPointsLieOnPlane(t *testing.T) {
	tri := NewTriangle(
		mgl64.Vec3{-3, 1, 2}, mgl64.Vec3{4, -2, 0.5}, mgl64.Vec3{1, 5, -4},
		mgl64.Vec2{0, 0}, mgl64.Vec2{1, 0}, mgl64.Vec2{0.5, 1},
	)
	plane := NewPlane(mgl64.Vec3{0.2, -0.6, 0.9}.Normalize(), 0.4)

	var res IntersectionResult
	if !tri.Split(plane, &res) {
		t.Fatal("expected a split")
	}
	for _, p := range res.IntersectionPoints() {
		if dist := plane.SignedDistance(p); math.Abs(dist) >= planeThickness {
			t.Errorf("intersection point %v is %g from the plane", p, dist)
		}
	}
}

func TestSplitPreservesWinding(t *testing.T) {
	tri := unitTriangle()
	original := tri.Normal()
	plane := NewPlaneFromPoint(mgl64.Vec3{0.5, 0, 0}, mgl64.Vec3{1, 0, 0})

	var res IntersectionResult
	if !tri.Split(plane, &res) {
		t.Fatal("expected a split")
	}
	for _, frag := range append(res.UpperTriangles(), res.LowerTriangles()...) {
		if frag.Normal().Dot(original) <= 0 {
			t.Errorf("fragment %v has reversed winding", frag.Points)
		}
	}
}

func TestLerpEndpoints(t *testing.T) {
	a, b := mgl64.Vec2{0.1, 0.9}, mgl64.Vec2{0.7, 0.3}
	if !uvAlmostEqual(lerpVec2(a, b, 0), a) {
		t.Errorf("lerp at t=0 does not reproduce the start UV")
	}
	if !uvAlmostEqual(lerpVec2(a, b, 1), b) {
		t.Errorf("lerp at t=1 does not reproduce the end UV")
	}
}

func TestTriangleNormal(t *testing.T) {
	if got := unitTriangle().Normal(); !vecAlmostEqual(got, mgl64.Vec3{0, 0, 1}) {
		t.Errorf("Normal() = %v, want (0, 0, 1)", got)
	}

	degenerate := NewTriangle(
		mgl64.Vec3{1, 1, 1}, mgl64.Vec3{1, 1, 1}, mgl64.Vec3{2, 2, 2},
		mgl64.Vec2{}, mgl64.Vec2{}, mgl64.Vec2{},
	)
	if got := degenerate.Normal(); !vecAlmostEqual(got, mgl64.Vec3{}) {
		t.Errorf("degenerate Normal() = %v, want zero vector", got)
	}
}
