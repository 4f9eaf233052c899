package components

import (
	"github.com/AnubhabL4002/Ignatius-GameDev-scripts/physics"
	"github.com/yohamta/donburi"
)

// BodyData wraps the entity's collision body in the physics space.
type BodyData struct {
	*physics.Body
}

var Body = donburi.NewComponentType[BodyData]()
