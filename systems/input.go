package systems

import (
	"github.com/AnubhabL4002/Ignatius-GameDev-scripts/components"
	cfg "github.com/AnubhabL4002/Ignatius-GameDev-scripts/config"
	"github.com/AnubhabL4002/Ignatius-GameDev-scripts/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Previous cursor position for mouse-delta derivation. The first frame
// after a scene switch reports a zero delta.
var (
	lastCursorX, lastCursorY int
	cursorSeen               bool
)

// ResetCursorTracking discards the remembered cursor position so the next
// frame doesn't see a spurious delta. Call when entering the world scene.
func ResetCursorTracking() {
	cursorSeen = false
}

// UpdateInput polls raw input into the player's InputComponent.
// Must run BEFORE UpdateLocomotion in the system order.
func UpdateInput(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	input := components.Input.Get(playerEntry)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}

	input.Horizontal = axisValue(input, cfg.ActionMoveRight, cfg.ActionMoveLeft)
	input.Vertical = axisValue(input, cfg.ActionMoveForward, cfg.ActionMoveBack)

	x, y := ebiten.CursorPosition()
	input.MouseDeltaX, input.MouseDeltaY = 0, 0
	if cursorSeen {
		input.MouseDeltaX = float64(x - lastCursorX)
		input.MouseDeltaY = float64(y - lastCursorY)
		if cfg.Camera.InvertY {
			input.MouseDeltaY = -input.MouseDeltaY
		}
	}
	lastCursorX, lastCursorY = x, y
	cursorSeen = true
}

// axisValue collapses an opposing key pair into a [-1, 1] axis.
func axisValue(in *components.InputData, pos, neg cfg.ActionID) float64 {
	v := 0.0
	if in.Current[pos] {
		v += 1
	}
	if in.Current[neg] {
		v -= 1
	}
	return v
}
