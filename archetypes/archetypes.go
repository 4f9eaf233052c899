package archetypes

import (
	"github.com/AnubhabL4002/Ignatius-GameDev-scripts/components"
	cfg "github.com/AnubhabL4002/Ignatius-GameDev-scripts/config"
	"github.com/AnubhabL4002/Ignatius-GameDev-scripts/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Body,
		components.Locomotion,
		components.Input,
	)
	Camera = newArchetype(
		tags.Camera,
		components.OrbitCamera,
	)
	Obstacle = newArchetype(
		tags.Obstacle,
		components.Body,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Body,
		components.Tween,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
