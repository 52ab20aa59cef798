package system

import (
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/controller"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/entity"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newFloorWorld returns a world whose walls layer is a floor with its top at
// y=0 spanning [left, right].
func newFloorWorld(left, right float64) *ecs.World {
	w := ecs.NewWorld()
	pw := ecs.NewPhysicsWorld()
	pw.AddStaticBox(controller.WallsLayer, cp.BB{L: left, B: -1, R: right, T: 0})
	w.SetPhysicsWorld(pw)
	return w
}

func mustAdd[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T], v *T) {
	t.Helper()
	if err := ecs.Add(w, e, kind, v); err != nil {
		t.Fatalf("add component: %v", err)
	}
}

func addEnemy(t *testing.T, w *ecs.World, pos cp.Vector, direction float64, health int) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.EnemyComponent.Kind(), &component.Enemy{
		MoveSpeed:     3,
		Gravity:       1,
		MaxFallSpeed:  20,
		ContactDamage: 1,
		Direction:     direction,
		Script:        "patrol.tengo",
	})
	mustAdd(t, w, e, component.HealthComponent.Kind(), component.NewHealth(health))
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{Position: pos})
	mustAdd(t, w, e, component.BodyComponent.Kind(), &component.Body{Width: 0.9, Height: 0.9})
	return e
}

// addPlayer spawns a player and runs its controller past spawn protection.
func addPlayer(t *testing.T, w *ecs.World, pos cp.Vector) (ecs.Entity, *controller.Controller) {
	t.Helper()
	e, err := entity.NewPlayer(w, entity.DefaultCatalog(), pos, quietLogger())
	if err != nil {
		t.Fatalf("new player: %v", err)
	}
	p, _ := ecs.Get(w, e, component.PlayerComponent.Kind())
	for i := 0; i < p.Controller.Config().InvulnerabilityFrames; i++ {
		p.Controller.Advance(controller.RawInput{})
	}
	transform, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	transform.Position = p.Controller.Position()
	return e, p.Controller
}

func TestTTLSystem(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.TTLComponent.Kind(), &component.TTL{Frames: 2})

	s := NewTTLSystem()
	s.Update(w)
	if !ecs.IsAlive(w, e) {
		t.Fatalf("expired one tick early")
	}
	s.Update(w)
	if ecs.IsAlive(w, e) {
		t.Fatalf("expected entity destroyed after 2 ticks")
	}
}

func TestInputSystem(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.InputComponent.Kind(), &component.Input{})

	frame := InputFrame{Raw: controller.RawInput{JumpDown: true, Move: cp.Vector{X: -1}}, BackgroundToggled: true}
	NewInputSystem(func() InputFrame { return frame }).Update(w)

	input, _ := ecs.Get(w, e, component.InputComponent.Kind())
	if input.Raw != frame.Raw || !input.BackgroundToggled {
		t.Fatalf("input not copied: %+v", input)
	}
}

func TestPlayerControllerSystem(t *testing.T) {
	w := newFloorWorld(-10, 10)
	e, c := addPlayer(t, w, cp.Vector{Y: 0.8})
	input, _ := ecs.Get(w, e, component.InputComponent.Kind())
	input.Raw = controller.RawInput{Move: cp.Vector{X: 1}}

	s := NewPlayerControllerSystem()
	for i := 0; i < 10; i++ {
		s.Update(w)
	}

	transform, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	body, _ := ecs.Get(w, e, component.BodyComponent.Kind())
	if transform.Position != c.Position() || body.Velocity != c.Velocity() {
		t.Fatalf("entity out of sync with controller: %v vs %v", transform.Position, c.Position())
	}
	if transform.Position.X <= 0 {
		t.Fatalf("expected player to walk right, x=%v", transform.Position.X)
	}
}

func TestHitZoneSystem(t *testing.T) {
	w := ecs.NewWorld()
	owner := ecs.CreateEntity(w)
	mustAdd(t, w, owner, component.TransformComponent.Kind(), &component.Transform{Position: cp.Vector{X: 5, Y: 2}})

	zone := ecs.CreateEntity(w)
	mustAdd(t, w, zone, component.HitZoneComponent.Kind(), &component.HitZone{Owner: uint64(owner), Facing: -1, Offset: cp.Vector{X: 1, Y: 0.5}})
	mustAdd(t, w, zone, component.TransformComponent.Kind(), &component.Transform{})

	s := NewHitZoneSystem()
	s.Update(w)
	transform, _ := ecs.Get(w, zone, component.TransformComponent.Kind())
	if want := (cp.Vector{X: 4, Y: 2.5}); transform.Position != want {
		t.Fatalf("expected zone at %v, got %v", want, transform.Position)
	}

	ecs.DestroyEntity(w, owner)
	s.Update(w)
	if ecs.IsAlive(w, zone) {
		t.Fatalf("expected orphaned zone destroyed")
	}
}

func TestProjectileStopsAtWall(t *testing.T) {
	w := ecs.NewWorld()
	pw := ecs.NewPhysicsWorld()
	pw.AddStaticBox(controller.WallsLayer, cp.BB{L: 1, B: -5, R: 2, T: 5})
	w.SetPhysicsWorld(pw)

	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.ProjectileComponent.Kind(), &component.Projectile{Direction: 1, Speed: 20, Damage: 1})
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{})
	mustAdd(t, w, e, component.BodyComponent.Kind(), &component.Body{Width: 0.4, Height: 0.2})

	s := NewProjectileSystem()
	s.Update(w)
	s.Update(w)
	if !ecs.IsAlive(w, e) {
		t.Fatalf("projectile destroyed before reaching the wall")
	}
	transform, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	if math.Abs(transform.Position.X-2.0/3) > 1e-9 {
		t.Fatalf("expected x=2/3 after two ticks, got %v", transform.Position.X)
	}
	s.Update(w)
	if ecs.IsAlive(w, e) {
		t.Fatalf("expected projectile destroyed at the wall")
	}
}

func TestBackgroundToggle(t *testing.T) {
	w := ecs.NewWorld()
	input := ecs.CreateEntity(w)
	mustAdd(t, w, input, component.InputComponent.Kind(), &component.Input{})
	bg := ecs.CreateEntity(w)
	mustAdd(t, w, bg, component.BackgroundComponent.Kind(), &component.Background{Visible: true})
	mustAdd(t, w, bg, component.AppearanceComponent.Kind(), &component.Appearance{})

	s := NewBackgroundSystem()
	s.Update(w)
	b, _ := ecs.Get(w, bg, component.BackgroundComponent.Kind())
	if !b.Visible {
		t.Fatalf("toggled without a request")
	}

	in, _ := ecs.Get(w, input, component.InputComponent.Kind())
	in.BackgroundToggled = true
	s.Update(w)
	app, _ := ecs.Get(w, bg, component.AppearanceComponent.Kind())
	if b.Visible || !app.Hidden {
		t.Fatalf("expected background hidden, visible=%v hidden=%v", b.Visible, app.Hidden)
	}
}

func TestClampAxis(t *testing.T) {
	cases := []struct {
		name          string
		v, lo, hi, hw float64
		want          float64
	}{
		{"inside", 10, 0, 40, 5, 10},
		{"left_edge", 1, 0, 40, 5, 5},
		{"right_edge", 39, 0, 40, 5, 35},
		{"narrow_level_centres", 3, 0, 8, 5, 4},
		{"no_bounds", 7, 0, 0, 5, 7},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := clampAxis(c.v, c.lo, c.hi, c.hw); got != c.want {
				t.Fatalf("clampAxis = %v, want %v", got, c.want)
			}
		})
	}
}

var controllerIdle = controller.RawInput{}
