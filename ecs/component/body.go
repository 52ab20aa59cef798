package component

import "github.com/jakecoffman/cp"

// Body is an axis-aligned box centred on the entity's transform.
type Body struct {
	Width    float64
	Height   float64
	Velocity cp.Vector
}

// Bounds returns the body's box at pos.
func (b *Body) Bounds(pos cp.Vector) cp.BB {
	if b == nil {
		return cp.BB{L: pos.X, B: pos.Y, R: pos.X, T: pos.Y}
	}
	return cp.NewBBForExtents(pos, b.Width/2, b.Height/2)
}

var BodyComponent = NewComponent[Body]()
