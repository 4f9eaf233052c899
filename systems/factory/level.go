package factory

import (
	"github.com/AnubhabL4002/Ignatius-GameDev-scripts/archetypes"
	"github.com/AnubhabL4002/Ignatius-GameDev-scripts/assets"
	"github.com/AnubhabL4002/Ignatius-GameDev-scripts/components"
	"github.com/AnubhabL4002/Ignatius-GameDev-scripts/physics"
	"github.com/AnubhabL4002/Ignatius-GameDev-scripts/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel populates the space with the level's geometry: floors on
// the ground layer, obstacles on the solid layer, floating platforms on
// both (they occlude the camera and carry the player).
func CreateLevel(e *ecs.ECS, space *physics.Space, level assets.Level) {
	for _, f := range level.Floors {
		CreateObstacle(e, space, f, tags.MaskGround)
	}
	for _, b := range level.Boxes {
		if b.Floating {
			CreateFloatingPlatform(e, space, b)
			continue
		}
		CreateObstacle(e, space, b, tags.MaskSolid)
	}
}

// CreateObstacle spawns a static box on the given collision layer.
func CreateObstacle(e *ecs.ECS, space *physics.Space, spawn assets.BoxSpawn, mask uint32) *donburi.Entry {
	obstacle := archetypes.Obstacle.Spawn(e)

	body := physics.NewBody(boxCenter(spawn), boxSize(spawn), mask)
	body.Data = obstacle
	space.Add(body)

	components.Body.SetValue(obstacle, components.BodyData{Body: body})
	return obstacle
}

func boxCenter(spawn assets.BoxSpawn) mgl64.Vec3 {
	return mgl64.Vec3{spawn.X, spawn.Elevation + spawn.Height/2, spawn.Z}
}

func boxSize(spawn assets.BoxSpawn) mgl64.Vec3 {
	return mgl64.Vec3{spawn.W, spawn.Height, spawn.D}
}
