package ecs

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/controller"
	"github.com/milk9111/platformer/levels"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
)

const (
	// castSkin pulls every ray start back inside the caster so a shallow
	// overlap reports a negative distance instead of a miss.
	castSkin = 0.05
	// boxEdgeInset keeps the outer box-cast rays off the caster's own edges.
	boxEdgeInset = 0.01
)

var _ controller.Prober = (*PhysicsWorld)(nil)

// StaticBox is an axis-aligned obstacle on a named layer.
type StaticBox struct {
	Layer string
	BB    cp.BB
}

// PhysicsWorld owns the Chipmunk space that holds the level's static
// obstacles and answers ray and box casts against it. Coordinates are world
// units with y pointing up.
type PhysicsWorld struct {
	space      *cp.Space
	categories map[string]uint
	boxes      []StaticBox
	bounds     cp.BB
}

// NewPhysicsWorld creates an empty static world.
func NewPhysicsWorld() *PhysicsWorld {
	return &PhysicsWorld{
		space:      cp.NewSpace(),
		categories: make(map[string]uint),
	}
}

// NewPhysicsWorldFromLevel builds the walls layer of lvl and closes the level
// bounds so casts never escape.
func NewPhysicsWorldFromLevel(lvl *levels.Level) *PhysicsWorld {
	pw := NewPhysicsWorld()
	if lvl == nil {
		return pw
	}
	for i, layer := range lvl.Layers {
		if len(layer) != lvl.Width*lvl.Height {
			continue
		}
		if i < len(lvl.LayerMeta) && !lvl.LayerMeta[i].Physics {
			continue
		}
		pw.addTiles(lvl, layer)
	}

	w, h := float64(lvl.Width), float64(lvl.Height)
	if w > 0 && h > 0 {
		pw.AddStaticBox(controller.WallsLayer, cp.BB{L: -1, B: -1, R: w + 1, T: 0})
		pw.AddStaticBox(controller.WallsLayer, cp.BB{L: -1, B: h, R: w + 1, T: h + 1})
		pw.AddStaticBox(controller.WallsLayer, cp.BB{L: -1, B: 0, R: 0, T: h})
		pw.AddStaticBox(controller.WallsLayer, cp.BB{L: w, B: 0, R: w + 1, T: h})
		pw.bounds = cp.BB{L: 0, B: 0, R: w, T: h}
	}
	return pw
}

// Bounds returns the level rectangle, or the zero BB for a hand-built world.
func (pw *PhysicsWorld) Bounds() cp.BB {
	if pw == nil {
		return cp.BB{}
	}
	return pw.bounds
}

// Boxes returns every static obstacle in insertion order.
func (pw *PhysicsWorld) Boxes() []StaticBox {
	if pw == nil {
		return nil
	}
	return pw.boxes
}

func (pw *PhysicsWorld) category(layer string) uint {
	if c, ok := pw.categories[layer]; ok {
		return c
	}
	c := uint(1) << uint(len(pw.categories))
	pw.categories[layer] = c
	return c
}

func (pw *PhysicsWorld) queryFilter(layer string) cp.ShapeFilter {
	return cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, pw.category(layer))
}

// AddStaticBox inserts a solid rectangle on layer.
func (pw *PhysicsWorld) AddStaticBox(layer string, bb cp.BB) {
	if pw == nil || bb.R <= bb.L || bb.T <= bb.B {
		return
	}
	shape := cp.NewBox2(pw.space.StaticBody, bb, 0)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, pw.category(layer), cp.ALL_CATEGORIES))
	shape.SetCollisionType(collisionTypeSolid)
	pw.space.AddShape(shape)
	pw.boxes = append(pw.boxes, StaticBox{Layer: layer, BB: bb})
}

// Raycast returns the distance from origin along dir to the first obstacle
// on layer within maxDist.
func (pw *PhysicsWorld) Raycast(origin, dir cp.Vector, maxDist float64, layer string) (float64, bool) {
	if pw == nil || maxDist <= 0 || dir.LengthSq() == 0 {
		return 0, false
	}
	dir = dir.Normalize()
	start := origin.Sub(dir.Mult(castSkin))
	end := origin.Add(dir.Mult(maxDist))
	info := pw.space.SegmentQueryFirst(start, end, 0, pw.queryFilter(layer))
	if info.Shape == nil {
		return 0, false
	}
	return info.Alpha*(maxDist+castSkin) - castSkin, true
}

// Boxcast sweeps a box of size centred on origin along dir and returns how
// far it travels before touching an obstacle on layer. The sweep is sampled
// with three rays across the box's leading face.
func (pw *PhysicsWorld) Boxcast(origin, size, dir cp.Vector, maxDist float64, layer string) (float64, bool) {
	if pw == nil || maxDist < 0 || dir.LengthSq() == 0 {
		return 0, false
	}
	dir = dir.Normalize()
	perp := dir.Perp()
	halfAcross := math.Max(math.Abs(size.Dot(perp))/2-boxEdgeInset, 0)
	halfAlong := math.Abs(size.Dot(dir)) / 2
	face := origin.Add(dir.Mult(halfAlong))

	best, hit := 0.0, false
	for _, k := range [...]float64{-1, 0, 1} {
		d, ok := pw.Raycast(face.Add(perp.Mult(k*halfAcross)), dir, maxDist, layer)
		if ok && (!hit || d < best) {
			best, hit = d, true
		}
	}
	return best, hit
}

// Overlaps reports whether bb intersects any obstacle on layer.
func (pw *PhysicsWorld) Overlaps(bb cp.BB, layer string) bool {
	if pw == nil {
		return false
	}
	found := false
	pw.space.BBQuery(bb, pw.queryFilter(layer), func(*cp.Shape, interface{}) {
		found = true
	}, nil)
	return found
}

// addTiles merges runs of solid tiles into as few rectangles as possible.
// Tile rows are stored top-down; the world is y-up.
func (pw *PhysicsWorld) addTiles(lvl *levels.Level, layer []int) {
	processed := make([]bool, lvl.Width*lvl.Height)
	solid := func(x, y int) bool {
		idx := y*lvl.Width + x
		return !processed[idx] && layer[idx] != 0
	}

	for y := 0; y < lvl.Height; y++ {
		for x := 0; x < lvl.Width; x++ {
			if !solid(x, y) {
				processed[y*lvl.Width+x] = true
				continue
			}

			w := 1
			for x+w < lvl.Width && solid(x+w, y) {
				w++
			}
			h := 1
		grow:
			for y+h < lvl.Height {
				for xi := x; xi < x+w; xi++ {
					if !solid(xi, y+h) {
						break grow
					}
				}
				h++
			}

			top := float64(lvl.Height - y)
			pw.AddStaticBox(controller.WallsLayer, cp.BB{
				L: float64(x),
				B: top - float64(h),
				R: float64(x + w),
				T: top,
			})

			for yy := y; yy < y+h; yy++ {
				for xx := x; xx < x+w; xx++ {
					processed[yy*lvl.Width+xx] = true
				}
			}
		}
	}
}

// MoveBox moves a box of size centred on pos by delta and stops it at the
// first obstacle on layer. Horizontal motion resolves before vertical. The
// returned flags report which axes were blocked.
func (pw *PhysicsWorld) MoveBox(pos, size, delta cp.Vector, layer string) (next cp.Vector, blockedX, blockedY bool) {
	next = pos
	if delta.X != 0 {
		step := math.Abs(delta.X)
		dir := cp.Vector{X: math.Copysign(1, delta.X)}
		if d, hit := pw.Boxcast(next, size, dir, step, layer); hit && d < step {
			step, blockedX = math.Max(d, 0), true
		}
		next.X += dir.X * step
	}
	if delta.Y != 0 {
		step := math.Abs(delta.Y)
		dir := cp.Vector{Y: math.Copysign(1, delta.Y)}
		if d, hit := pw.Boxcast(next, size, dir, step, layer); hit && d < step {
			step, blockedY = math.Max(d, 0), true
		}
		next.Y += dir.Y * step
	}
	return next, blockedX, blockedY
}
