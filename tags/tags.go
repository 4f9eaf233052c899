package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Camera   = donburi.NewTag().SetName("Camera")
	Obstacle = donburi.NewTag().SetName("Obstacle")
	Platform = donburi.NewTag().SetName("Platform")
)

// Layer masks for physics bodies. Sweeps and raycasts filter on these.
const (
	MaskNone   uint32 = 0
	MaskGround uint32 = 1 << 0
	MaskSolid  uint32 = 1 << 1

	MaskAll = MaskGround | MaskSolid
)
