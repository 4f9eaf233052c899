package scenes

import (
	"image/color"
	"sync"

	"github.com/AnubhabL4002/Ignatius-GameDev-scripts/archetypes"
	"github.com/AnubhabL4002/Ignatius-GameDev-scripts/assets"
	"github.com/AnubhabL4002/Ignatius-GameDev-scripts/components"
	cfg "github.com/AnubhabL4002/Ignatius-GameDev-scripts/config"
	"github.com/AnubhabL4002/Ignatius-GameDev-scripts/physics"
	"github.com/AnubhabL4002/Ignatius-GameDev-scripts/systems"
	"github.com/AnubhabL4002/Ignatius-GameDev-scripts/systems/factory"
	"github.com/AnubhabL4002/Ignatius-GameDev-scripts/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// WorldScene runs the character controller in the arena level.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewWorldScene creates the playable scene
func NewWorldScene(sc SceneChanger) *WorldScene {
	return &WorldScene{sceneChanger: sc}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	// Escape releases the cursor and returns to the menu.
	if entry, ok := tags.Player.First(ws.ecs.World); ok {
		input := components.Input.Get(entry)
		if input.Action(cfg.ActionMenuBack).JustPressed {
			ws.teardown()
			ebiten.SetCursorMode(ebiten.CursorModeVisible)
			ws.sceneChanger.ChangeScene(NewMenuScene(ws.sceneChanger))
		}
	}
}

// teardown unlinks every body from the collision space before the scene
// is dropped, so entries don't keep the level geometry reachable.
func (ws *WorldScene) teardown() {
	spaceEntry, ok := components.Space.First(ws.ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry).Space
	components.Body.Each(ws.ecs.World, func(entry *donburi.Entry) {
		space.Remove(components.Body.Get(entry).Body)
	})
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	space := physics.NewSpace()
	spaceEntry := archetypes.Space.Spawn(e)
	components.Space.SetValue(spaceEntry, components.SpaceData{Space: space})

	level := assets.MustLoadLevels()[0]
	factory.CreateLevel(e, space, level)
	factory.CreatePlayer(e, space, level.SpawnX, level.SpawnZ)
	factory.CreateCamera(e)

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePlatforms)
	e.AddSystem(systems.UpdateLocomotion)
	e.AddSystem(systems.UpdateCamera)

	e.AddRenderer(cfg.Default, systems.DrawWorld)
	e.AddRenderer(cfg.LayerHUD, systems.DrawHUD)

	// Lock the cursor for mouse look.
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	systems.ResetCursorTracking()

	ws.ecs = e
}
