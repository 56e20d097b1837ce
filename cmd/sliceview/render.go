package main

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/smasonuk/goslice3d"
)

var (
	whiteImage = ebiten.NewImage(3, 3)
	whiteSub   *ebiten.Image
)

func init() {
	whiteImage.Fill(color.White)
	whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// lightDir is the normalized direction towards the light, in camera space.
var lightDir = mgl64.Vec3{0.577, 0.577, -0.577}

// renderStore projects and shades every triangle in the store, batching them
// into a single DrawTriangles call. The store must already be sorted back to
// front; triangles behind the near plane or facing away from the camera are
// skipped.
func renderStore(screen *ebiten.Image, store *goslice3d.TriangleStore, clr color.RGBA) {
	vertices := make([]ebiten.Vertex, 0, store.Count()*3)
	indices := make([]uint16, 0, store.Count()*3)

	baseR := float32(clr.R) / 255.0
	baseG := float32(clr.G) / 255.0
	baseB := float32(clr.B) / 255.0

	for i := 0; i < store.Count(); i++ {
		tri := store.At(i)
		n := tri.Normal()

		// Camera at the origin looking down +Z: a face is visible when its
		// normal points back towards the origin.
		if n.Dot(tri.Points[0]) >= 0 {
			continue
		}

		clipped := false
		var proj [3][2]float32
		for c, p := range tri.Points {
			if p[2] <= nearPlane {
				clipped = true
				break
			}
			proj[c][0] = float32((focalLength*p[0])/p[2]) + screenWidth/2
			proj[c][1] = float32(-(focalLength*p[1])/p[2]) + screenHeight/2
		}
		if clipped {
			continue
		}

		dot := n.Dot(lightDir)
		if dot < 0 {
			dot = 0
		}
		intensity := float32(0.25 + 0.75*dot)

		base := uint16(len(vertices))
		for c := 0; c < 3; c++ {
			vertices = append(vertices, ebiten.Vertex{
				DstX: proj[c][0], DstY: proj[c][1],
				SrcX: 1, SrcY: 1,
				ColorR: baseR * intensity,
				ColorG: baseG * intensity,
				ColorB: baseB * intensity,
				ColorA: 1,
			})
		}
		indices = append(indices, base, base+1, base+2)
	}

	if len(indices) == 0 {
		return
	}
	opts := &ebiten.DrawTrianglesOptions{FillRule: ebiten.FillAll}
	screen.DrawTriangles(vertices, indices, whiteSub, opts)
}

// drawLoop strokes a closed polyline through the projected points.
func drawLoop(screen *ebiten.Image, xp, yp []float32, strokeWidth float32, clr color.RGBA) {
	if len(xp) < 2 {
		return
	}

	var path vector.Path
	path.MoveTo(xp[0], yp[0])
	for i := 1; i < len(xp); i++ {
		path.LineTo(xp[i], yp[i])
	}
	path.Close()

	strokeOp := &vector.StrokeOptions{Width: strokeWidth}
	vertices, indices := path.AppendVerticesAndIndicesForStroke(nil, nil, strokeOp)

	cr := float32(clr.R) / 255.0
	cg := float32(clr.G) / 255.0
	cb := float32(clr.B) / 255.0
	ca := float32(clr.A) / 255.0
	for i := range vertices {
		vertices[i].ColorR = cr
		vertices[i].ColorG = cg
		vertices[i].ColorB = cb
		vertices[i].ColorA = ca
		vertices[i].SrcX = 1
		vertices[i].SrcY = 1
	}

	drawOp := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(vertices, indices, whiteSub, drawOp)
}
