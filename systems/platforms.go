package systems

import (
	"github.com/AnubhabL4002/Ignatius-GameDev-scripts/components"
	"github.com/AnubhabL4002/Ignatius-GameDev-scripts/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlatforms advances floating platform tweens and writes the new
// height into each platform's collision body, carrying a player standing
// on top along with it. Runs before UpdateLocomotion so the player sweeps
// against the platform's current position.
func UpdatePlatforms(e *ecs.ECS) {
	playerEntry, hasPlayer := tags.Player.First(e.World)

	tags.Platform.Each(e.World, func(entry *donburi.Entry) {
		tw := components.Tween.Get(entry)
		body := components.Body.Get(entry)

		y, _, seqDone := tw.Update(float32(Delta))
		if seqDone {
			tw.Reset()
		}

		prev := body.Position[1]
		if hasPlayer {
			player := components.Body.Get(playerEntry)
			if body.Supports(player.Body) {
				player.Position[1] += float64(y) - prev
			}
		}
		body.Position[1] = float64(y)
	})
}
