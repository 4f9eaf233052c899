package components

import (
	cfg "github.com/AnubhabL4002/Ignatius-GameDev-scripts/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions plus the analog-style values derived from them.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state

	// Movement axes in [-1, 1], camera-relative. Horizontal is strafe
	// (positive right), Vertical is forward (positive ahead).
	Horizontal float64
	Vertical   float64

	// Mouse movement since last frame, in screen units.
	MouseDeltaX float64
	MouseDeltaY float64
}

var Input = donburi.NewComponentType[InputData]()

// Action returns the temporal state of a single action.
func (in *InputData) Action(id cfg.ActionID) ActionState {
	return ActionState{
		Pressed:      in.Current[id],
		JustPressed:  in.Current[id] && !in.Previous[id],
		JustReleased: !in.Current[id] && in.Previous[id],
	}
}
