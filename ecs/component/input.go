package component

import "github.com/milk9111/platformer/controller"

// Input stores the per-tick device state for an entity.
type Input struct {
	Raw controller.RawInput

	BackgroundToggled bool
}

var InputComponent = NewComponent[Input]()
