package factory

import (
	"github.com/AnubhabL4002/Ignatius-GameDev-scripts/archetypes"
	"github.com/AnubhabL4002/Ignatius-GameDev-scripts/components"
	cfg "github.com/AnubhabL4002/Ignatius-GameDev-scripts/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns the orbit camera with a gentle starting pitch.
func CreateCamera(e *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(e)
	components.OrbitCamera.SetValue(camera, components.OrbitCameraData{
		Yaw:      180,
		Pitch:    20,
		Distance: cfg.Camera.MaxDistance,
	})
	return camera
}
