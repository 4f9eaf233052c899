package components

import (
	"testing"

	cfg "github.com/AnubhabL4002/Ignatius-GameDev-scripts/config"
)

func TestInputAction(t *testing.T) {
	tests := []struct {
		name     string
		current  bool
		previous bool
		want     ActionState
	}{
		{name: "held", current: true, previous: true, want: ActionState{Pressed: true}},
		{name: "just pressed", current: true, previous: false, want: ActionState{Pressed: true, JustPressed: true}},
		{name: "just released", current: false, previous: true, want: ActionState{JustReleased: true}},
		{name: "idle", current: false, previous: false, want: ActionState{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := &InputData{}
			in.Current[cfg.ActionJump] = tt.current
			in.Previous[cfg.ActionJump] = tt.previous

			if got := in.Action(cfg.ActionJump); got != tt.want {
				t.Errorf("Action() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
