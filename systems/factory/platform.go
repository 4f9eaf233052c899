package factory

import (
	"github.com/AnubhabL4002/Ignatius-GameDev-scripts/archetypes"
	"github.com/AnubhabL4002/Ignatius-GameDev-scripts/assets"
	"github.com/AnubhabL4002/Ignatius-GameDev-scripts/components"
	"github.com/AnubhabL4002/Ignatius-GameDev-scripts/physics"
	"github.com/AnubhabL4002/Ignatius-GameDev-scripts/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFloatingPlatform spawns a platform that bobs between its rest
// height and rest height plus amplitude on a *gween.Sequence of tweens.
func CreateFloatingPlatform(e *ecs.ECS, space *physics.Space, spawn assets.BoxSpawn) *donburi.Entry {
	platform := archetypes.Platform.Spawn(e)

	body := physics.NewBody(boxCenter(spawn), boxSize(spawn), tags.MaskSolid|tags.MaskGround)
	body.Data = platform
	space.Add(body)
	components.Body.SetValue(platform, components.BodyData{Body: body})

	base := float32(body.Position[1])
	amp := float32(spawn.Amplitude)
	half := float32(spawn.Period) / 2

	tw := gween.NewSequence()
	tw.Add(
		gween.New(base, base+amp, half, ease.InOutSine),
		gween.New(base+amp, base, half, ease.InOutSine),
	)
	components.Tween.Set(platform, tw)

	return platform
}
