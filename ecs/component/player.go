package component

import "github.com/milk9111/platformer/controller"

// Player binds an entity to its character controller. The controller owns
// position and velocity; the player system mirrors them into Transform and
// Body every tick.
type Player struct {
	Controller *controller.Controller
}

var PlayerComponent = NewComponent[Player]()
