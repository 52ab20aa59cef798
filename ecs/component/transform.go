package component

import "github.com/jakecoffman/cp"

// Transform is an entity's world position (the centre of its body) in
// y-up world units.
type Transform struct {
	Position cp.Vector
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
