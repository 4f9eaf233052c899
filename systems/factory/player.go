package factory

import (
	"github.com/AnubhabL4002/Ignatius-GameDev-scripts/archetypes"
	"github.com/AnubhabL4002/Ignatius-GameDev-scripts/components"
	cfg "github.com/AnubhabL4002/Ignatius-GameDev-scripts/config"
	"github.com/AnubhabL4002/Ignatius-GameDev-scripts/physics"
	"github.com/AnubhabL4002/Ignatius-GameDev-scripts/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player capsule standing at (x, z).
// The body belongs to no collision layer so the camera rays pass through it.
func CreatePlayer(e *ecs.ECS, space *physics.Space, x, z float64) *donburi.Entry {
	player := archetypes.Player.Spawn(e)

	body := physics.NewBody(
		mgl64.Vec3{x, cfg.Player.Height / 2, z},
		mgl64.Vec3{cfg.Player.Radius * 2, cfg.Player.Height, cfg.Player.Radius * 2},
		tags.MaskNone,
	)
	body.Data = player
	space.Add(body)

	components.Body.SetValue(player, components.BodyData{Body: body})
	components.Locomotion.SetValue(player, components.LocomotionData{})
	return player
}
