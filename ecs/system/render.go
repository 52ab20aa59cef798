package system

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"golang.org/x/image/colornames"
)

// RenderSystem draws the world as flat rectangles. The camera follows the
// first player and is clamped to the level bounds.
type RenderSystem struct {
	debug  bool
	camera cp.Vector
}

func NewRenderSystem(debug bool) *RenderSystem {
	return &RenderSystem{debug: debug}
}

// Camera returns the world point at the centre of the screen.
func (r *RenderSystem) Camera() cp.Vector {
	return r.camera
}

func (r *RenderSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	if pe, _, ok := ecs.First(w, component.PlayerComponent.Kind()); ok {
		if t, ok := ecs.Get(w, pe, component.TransformComponent.Kind()); ok {
			r.camera = t.Position
		}
	}

	bounds := w.PhysicsWorld().Bounds()
	halfW := float64(common.BaseWidth) / common.TileSize / 2
	halfH := float64(common.BaseHeight) / common.TileSize / 2
	r.camera.X = clampAxis(r.camera.X, bounds.L, bounds.R, halfW)
	r.camera.Y = clampAxis(r.camera.Y, bounds.B, bounds.T, halfH)
}

// clampAxis keeps a view of half-extent half inside [lo, hi], centring it
// when the range is smaller than the view.
func clampAxis(v, lo, hi, half float64) float64 {
	if hi <= lo {
		return v
	}
	if hi-lo <= 2*half {
		return (lo + hi) / 2
	}
	return common.Clamp(v, lo+half, hi-half)
}

type drawItem struct {
	bb  cp.BB
	app *component.Appearance
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}

	screen.Fill(colornames.Black)
	ecs.ForEach2(w, component.BackgroundComponent.Kind(), component.AppearanceComponent.Kind(), func(_ ecs.Entity, bg *component.Background, app *component.Appearance) {
		if bg.Visible && !app.Hidden {
			screen.Fill(app.Color)
		}
	})

	for _, box := range w.PhysicsWorld().Boxes() {
		r.fillBB(screen, box.BB, colornames.Slategray)
	}

	var items []drawItem
	ecs.ForEach3(w, component.TransformComponent.Kind(), component.BodyComponent.Kind(), component.AppearanceComponent.Kind(), func(_ ecs.Entity, t *component.Transform, body *component.Body, app *component.Appearance) {
		if app.Hidden {
			return
		}
		items = append(items, drawItem{bb: body.Bounds(t.Position), app: app})
	})
	sort.SliceStable(items, func(i, j int) bool { return items[i].app.Layer < items[j].app.Layer })
	for _, item := range items {
		r.fillBB(screen, item.bb, item.app.Color)
	}

	r.drawHUD(w, screen)
}

func (r *RenderSystem) drawHUD(w *ecs.World, screen *ebiten.Image) {
	_, player, ok := ecs.First(w, component.PlayerComponent.Kind())
	if !ok || player.Controller == nil {
		return
	}
	c := player.Controller
	st := c.State()

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("HP %d  dashes %d", st.Health, st.RemainingDashes), 4, 4)
	if !r.debug {
		return
	}

	lines := fmt.Sprintf("pos %.2f,%.2f  vel %.2f,%.2f\ngrounded %v  dashing %v  impact %v\nground %.2f  ceil %.2f  left %.2f  right %.2f\nbuffered %d  zones %d  FPS %.1f",
		st.Position.X, st.Position.Y, st.Velocity.X, st.Velocity.Y,
		st.IsGrounded, st.CurrentlyDashing, st.InImpactFrames,
		st.Probe.Ground, st.Probe.Ceiling, st.Probe.LeftWall, st.Probe.RightWall,
		len(c.BufferedInputs()), c.ActiveHitZones(), ebiten.ActualFPS())
	ebitenutil.DebugPrintAt(screen, lines, 4, 20)

	ecs.ForEach3(w, component.HitZoneComponent.Kind(), component.TransformComponent.Kind(), component.BodyComponent.Kind(), func(_ ecs.Entity, _ *component.HitZone, t *component.Transform, body *component.Body) {
		x, y, bw, bh := r.screenRect(body.Bounds(t.Position))
		vector.StrokeRect(screen, x, y, bw, bh, 1, colornames.Yellow, false)
	})
}

func (r *RenderSystem) fillBB(screen *ebiten.Image, bb cp.BB, clr color.Color) {
	x, y, bw, bh := r.screenRect(bb)
	vector.FillRect(screen, x, y, bw, bh, clr, false)
}

// screenRect converts a y-up world box to a y-down pixel rectangle.
func (r *RenderSystem) screenRect(bb cp.BB) (x, y, w, h float32) {
	left := (bb.L-r.camera.X)*common.TileSize + common.BaseWidth/2
	top := common.BaseHeight/2 - (bb.T-r.camera.Y)*common.TileSize
	return float32(left), float32(top), float32((bb.R - bb.L) * common.TileSize), float32((bb.T - bb.B) * common.TileSize)
}
