package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// BackgroundSystem flips background visibility when any input entity
// requested it this tick.
type BackgroundSystem struct{}

func NewBackgroundSystem() *BackgroundSystem {
	return &BackgroundSystem{}
}

func (s *BackgroundSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	toggled := false
	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		toggled = toggled || input.BackgroundToggled
	})
	if !toggled {
		return
	}

	ecs.ForEach(w, component.BackgroundComponent.Kind(), func(e ecs.Entity, bg *component.Background) {
		bg.Visible = !bg.Visible
		if app, ok := ecs.Get(w, e, component.AppearanceComponent.Kind()); ok {
			app.Hidden = !bg.Visible
		}
	})
}
