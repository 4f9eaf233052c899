package components

import (
	"github.com/AnubhabL4002/Ignatius-GameDev-scripts/physics"
	"github.com/yohamta/donburi"
)

// SpaceData wraps the level's collision space.
type SpaceData struct {
	*physics.Space
}

var Space = donburi.NewComponentType[SpaceData]()
