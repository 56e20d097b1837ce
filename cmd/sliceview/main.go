package main

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/smasonuk/goslice3d"
)

const (
	screenWidth  = 800
	screenHeight = 600
	focalLength  = 500.0
	nearPlane    = 0.1
	cameraDist   = 7.0
)

var (
	upperColor   = color.RGBA{R: 230, G: 90, B: 60, A: 255}
	lowerColor   = color.RGBA{R: 70, G: 130, B: 230, A: 255}
	sectionColor = color.RGBA{R: 240, G: 240, B: 240, A: 255}
)

type Game struct {
	upper   *goslice3d.TriangleMesh
	lower   *goslice3d.TriangleMesh
	section []mgl64.Vec3
	normal  mgl64.Vec3

	yaw, pitch float64
	separation float64

	dragging     bool
	lastX, lastY int

	upperStore *goslice3d.TriangleStore
	lowerStore *goslice3d.TriangleStore
}

func NewGame() *Game {
	log.Println("Building sphere...")
	sphere := goslice3d.NewUVSphereMesh(2, 28, 18)

	plane := goslice3d.NewPlane(mgl64.Vec3{0.3, 1, 0.15}.Normalize(), 0.3)
	log.Println("Slicing...")
	result := goslice3d.Slice(sphere, plane)
	if result == nil || result.Upper == nil || result.Lower == nil {
		log.Fatal("slice produced no hulls")
	}
	log.Printf("Upper hull: %d triangles, lower hull: %d triangles, %d cut points",
		result.Upper.TriangleCount(), result.Lower.TriangleCount(), len(result.CrossSection))

	return &Game{
		upper:      result.Upper,
		lower:      result.Lower,
		section:    orderLoop(result.CrossSection, plane.Normal),
		normal:     plane.Normal,
		separation: 0.4,
		upperStore: goslice3d.NewTriangleStore(),
		lowerStore: goslice3d.NewTriangleStore(),
	}
}

// orderLoop sorts the unordered cut points by angle around their centroid so
// they can be stroked as a closed loop. Only valid for a convex cross-section,
// which a sphere cut always is.
func orderLoop(points []mgl64.Vec3, normal mgl64.Vec3) []mgl64.Vec3 {
	if len(points) < 3 {
		return points
	}

	center := mgl64.Vec3{}
	for _, p := range points {
		center = center.Add(p)
	}
	center = center.Mul(1 / float64(len(points)))

	// Build a 2D basis in the cutting plane.
	u := normal.Cross(mgl64.Vec3{0, 0, 1})
	if u.Len() < 1e-9 {
		u = normal.Cross(mgl64.Vec3{1, 0, 0})
	}
	u = u.Normalize()
	v := normal.Cross(u)

	ordered := append([]mgl64.Vec3(nil), points...)
	sort.Slice(ordered, func(i, j int) bool {
		di, dj := ordered[i].Sub(center), ordered[j].Sub(center)
		return math.Atan2(di.Dot(v), di.Dot(u)) < math.Atan2(dj.Dot(v), dj.Dot(u))
	})
	return ordered
}

func (g *Game) Update() error {
	g.yaw += 0.004

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.dragging = true
		g.lastX, g.lastY = ebiten.CursorPosition()
	}
	if g.dragging {
		x, y := ebiten.CursorPosition()
		g.yaw += float64(x-g.lastX) / 200.0
		g.pitch += float64(y-g.lastY) / 200.0
		g.lastX, g.lastY = x, y
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragging = false
	}

	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.separation += 0.02
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.separation -= 0.02
		if g.separation < 0 {
			g.separation = 0
		}
	}
	return nil
}

// modelMatrix is the shared rotation applied to both hulls.
func (g *Game) modelMatrix() mgl64.Mat4 {
	return mgl64.HomogRotate3DX(g.pitch).Mul4(mgl64.HomogRotate3DY(g.yaw))
}

// collect transforms a hull into camera space, offset along the cut normal,
// and fills the store with the transformed triangles.
func (g *Game) collect(mesh *goslice3d.TriangleMesh, store *goslice3d.TriangleStore, offset mgl64.Vec3) {
	rot := g.modelMatrix()
	store.Reset()
	for i := 0; i < mesh.TriangleCount(); i++ {
		tri := mesh.TriangleAt(i)
		for c := 0; c < 3; c++ {
			p := rot.Mul4x1(tri.Points[c].Add(offset).Vec4(1)).Vec3()
			p[2] += cameraDist
			tri.Points[c] = p
		}
		store.Add(tri)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 16, G: 16, B: 24, A: 255})

	half := g.normal.Mul(g.separation / 2)
	g.collect(g.upper, g.upperStore, half)
	g.collect(g.lower, g.lowerStore, half.Mul(-1))

	camera := mgl64.Vec3{}
	g.upperStore.SortByDistance(camera)
	g.lowerStore.SortByDistance(camera)

	// Painter's pass, far hull first. The hulls are separated along the cut
	// normal so sorting them as wholes is enough.
	rot := g.modelMatrix()
	upperDepth := rot.Mul4x1(half.Vec4(1)).Vec3()[2]
	if upperDepth > 0 {
		renderStore(screen, g.upperStore, upperColor)
		renderStore(screen, g.lowerStore, lowerColor)
	} else {
		renderStore(screen, g.lowerStore, lowerColor)
		renderStore(screen, g.upperStore, upperColor)
	}

	g.drawCrossSection(screen, rot)

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS: %0.2f\nDrag to rotate, up/down arrows change separation", ebiten.ActualFPS()))
}

func (g *Game) drawCrossSection(screen *ebiten.Image, rot mgl64.Mat4) {
	if len(g.section) < 3 {
		return
	}

	xp := make([]float32, 0, len(g.section))
	yp := make([]float32, 0, len(g.section))
	for _, p := range g.section {
		t := rot.Mul4x1(p.Vec4(1)).Vec3()
		t[2] += cameraDist
		if t[2] <= nearPlane {
			return
		}
		xp = append(xp, float32((focalLength*t[0])/t[2])+screenWidth/2)
		yp = append(yp, float32(-(focalLength*t[1])/t[2])+screenHeight/2)
	}
	drawLoop(screen, xp, yp, 1.5, sectionColor)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("goslice3d viewer")
	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
