package systems

import (
	"fmt"
	"image/color"

	"github.com/AnubhabL4002/Ignatius-GameDev-scripts/components"
	cfg "github.com/AnubhabL4002/Ignatius-GameDev-scripts/config"
	"github.com/AnubhabL4002/Ignatius-GameDev-scripts/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	fovY     = 60.0
	nearClip = 0.1
	farClip  = 200.0
)

var (
	colorFloor    = color.RGBA{70, 70, 85, 255}
	colorObstacle = color.RGBA{120, 170, 220, 255}
	colorPlatform = color.RGBA{220, 180, 90, 255}
	colorPlayer   = color.RGBA{130, 230, 130, 255}
)

// Edge list of a unit box by corner index. Corners are enumerated with
// bit 0 = +X, bit 1 = +Y, bit 2 = +Z.
var boxEdges = [12][2]int{
	{0, 1}, {2, 3}, {4, 5}, {6, 7},
	{0, 2}, {1, 3}, {4, 6}, {5, 7},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// DrawWorld renders a wireframe view of the collision space through the
// orbit camera.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	camEntry, ok := tags.Camera.First(e.World)
	if !ok {
		return
	}
	cam := components.OrbitCamera.Get(camEntry)

	if cam.Position.Sub(cam.LookTarget).Len() < 1e-6 {
		return // camera not resolved yet
	}

	w := float64(screen.Bounds().Dx())
	h := float64(screen.Bounds().Dy())
	view := mgl64.LookAtV(cam.Position, cam.LookTarget, mgl64.Vec3{0, 1, 0})
	vp := mgl64.Perspective(mgl64.DegToRad(fovY), w/h, nearClip, farClip).Mul4(view)

	components.Body.Each(e.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry)
		col := colorObstacle
		switch {
		case entry.HasComponent(tags.Player):
			col = colorPlayer
		case entry.HasComponent(tags.Platform):
			col = colorPlatform
		case body.Mask == tags.MaskGround:
			col = colorFloor
		}
		drawBox(screen, vp, body.Min(), body.Max(), w, h, col)
	})
}

func drawBox(screen *ebiten.Image, vp mgl64.Mat4, lo, hi mgl64.Vec3, w, h float64, col color.RGBA) {
	var pts [8]mgl64.Vec4
	for i := 0; i < 8; i++ {
		corner := mgl64.Vec3{lo[0], lo[1], lo[2]}
		if i&1 != 0 {
			corner[0] = hi[0]
		}
		if i&2 != 0 {
			corner[1] = hi[1]
		}
		if i&4 != 0 {
			corner[2] = hi[2]
		}
		pts[i] = vp.Mul4x1(corner.Vec4(1))
	}

	for _, edge := range boxEdges {
		a, b := pts[edge[0]], pts[edge[1]]
		// Skip edges crossing the near plane rather than clipping them.
		if a.W() < nearClip || b.W() < nearClip {
			continue
		}
		x1, y1 := toScreen(a, w, h)
		x2, y2 := toScreen(b, w, h)
		vector.StrokeLine(screen, x1, y1, x2, y2, 1, col, true)
	}
}

func toScreen(p mgl64.Vec4, w, h float64) (float32, float32) {
	x := (p.X()/p.W()*0.5 + 0.5) * w
	y := (1 - (p.Y()/p.W()*0.5 + 0.5)) * h
	return float32(x), float32(y)
}

// DrawHUD prints the controller's live state in the corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	camEntry, ok := tags.Camera.First(e.World)
	if !ok {
		return
	}

	body := components.Body.Get(playerEntry)
	loco := components.Locomotion.Get(playerEntry)
	cam := components.OrbitCamera.Get(camEntry)

	msg := fmt.Sprintf(
		"pos %.2f %.2f %.2f\nvel.y %.2f grounded %v\nyaw %.1f pitch %.1f dist %.2f\nsens %.2f  [WASD] move [Space] jump [Esc] menu",
		body.Position[0], body.Position[1], body.Position[2],
		loco.Velocity[1], loco.Grounded,
		cam.Yaw, cam.Pitch, cam.Distance,
		cfg.Camera.MouseSensitivity,
	)
	ebitenutil.DebugPrint(screen, msg)
}
