package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Tween drives floating platform motion as a looping sequence of
// absolute Y positions.
var Tween = donburi.NewComponentType[gween.Sequence]()
