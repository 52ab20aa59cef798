package component

import "image/color"

// Appearance is how the debug renderer draws an entity's body. Higher layers
// draw on top.
type Appearance struct {
	Color  color.RGBA
	Layer  int
	Hidden bool
}

var AppearanceComponent = NewComponent[Appearance]()
