package system

import (
	"errors"
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

func TestPatrolScriptMatchesBuiltinRule(t *testing.T) {
	src, err := prefabs.LoadScript("patrol.tengo")
	if err != nil {
		t.Fatalf("load script: %v", err)
	}
	script, err := compilePatrolScript("patrol.tengo", src)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	base := patrolInput{
		Direction:  1,
		Grounded:   true,
		FloorLeft:  0,
		FloorRight: 0,
		WallLeft:   10,
		WallRight:  10,
		LedgeDepth: 0.5,
		WallMargin: 0.05,
	}
	cases := []struct {
		name   string
		mutate func(*patrolInput)
		want   float64
	}{
		{"open_floor", func(*patrolInput) {}, 1},
		{"ledge_ahead", func(in *patrolInput) { in.FloorRight = 3 }, -1},
		{"ledge_behind", func(in *patrolInput) { in.FloorLeft = 3 }, 1},
		{"wall_ahead", func(in *patrolInput) { in.WallRight = 0.01 }, -1},
		{"left_heading_wall", func(in *patrolInput) { in.Direction = -1; in.WallLeft = 0 }, 1},
		{"airborne_keeps_heading", func(in *patrolInput) { in.Grounded = false; in.FloorRight = 3 }, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := base
			c.mutate(&in)
			got, err := script.run(in)
			if err != nil {
				t.Fatalf("run: %v", err)
			}
			if got != c.want {
				t.Fatalf("script direction = %v, want %v", got, c.want)
			}
			if builtin := defaultPatrol(in); builtin != c.want {
				t.Fatalf("builtin direction = %v, want %v", builtin, c.want)
			}
		})
	}
}

func TestEnemyPatrolsPlatform(t *testing.T) {
	cases := []struct {
		name string
		load ScriptLoader
	}{
		{"script", nil},
		{"broken_script_falls_back", func(string) ([]byte, error) { return []byte("direction = ("), nil }},
		{"missing_script_falls_back", func(string) ([]byte, error) { return nil, errors.New("missing") }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newFloorWorld(-2, 2)
			e := addEnemy(t, w, cp.Vector{Y: 0.45}, 1, 3)
			s := NewEnemySystem(c.load, quietLogger())

			turned := false
			for i := 0; i < 300; i++ {
				s.Update(w)
				enemy, _ := ecs.Get(w, e, component.EnemyComponent.Kind())
				transform, _ := ecs.Get(w, e, component.TransformComponent.Kind())
				if transform.Position.X < -2 || transform.Position.X > 2 {
					t.Fatalf("tick %d: enemy left the platform at x=%v", i, transform.Position.X)
				}
				if math.Abs(transform.Position.Y-0.45) > 1e-6 {
					t.Fatalf("tick %d: enemy left the floor, y=%v", i, transform.Position.Y)
				}
				turned = turned || enemy.Direction < 0
			}
			if !turned {
				t.Fatalf("expected the enemy to turn at the ledge")
			}
		})
	}
}

func TestEnemyFallsOntoFloor(t *testing.T) {
	w := newFloorWorld(-10, 10)
	e := addEnemy(t, w, cp.Vector{Y: 3}, 1, 3)
	s := NewEnemySystem(nil, quietLogger())

	for i := 0; i < 120; i++ {
		s.Update(w)
	}
	enemy, _ := ecs.Get(w, e, component.EnemyComponent.Kind())
	transform, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	if !enemy.Grounded || math.Abs(transform.Position.Y-0.45) > 1e-6 {
		t.Fatalf("expected enemy resting on the floor, y=%v grounded=%v", transform.Position.Y, enemy.Grounded)
	}
}

func TestEnemiesFreezeDuringImpactFrames(t *testing.T) {
	w := newFloorWorld(-20, 20)
	_, c := addPlayer(t, w, cp.Vector{X: -15, Y: 0.8})
	e := addEnemy(t, w, cp.Vector{X: 5, Y: 0.45}, 1, 3)
	s := NewEnemySystem(nil, quietLogger())

	s.Update(w)
	body, _ := ecs.Get(w, e, component.BodyComponent.Kind())
	moving := body.Velocity

	c.TakeDamage(1)
	if !c.InImpactFrames() {
		t.Fatalf("expected the player in impact frames")
	}
	transform, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	frozenAt := transform.Position
	for c.InImpactFrames() {
		s.Update(w)
		if transform.Position != frozenAt || body.Velocity != (cp.Vector{}) {
			t.Fatalf("enemy moved during impact frames: %v", transform.Position)
		}
		c.Advance(controllerIdle)
	}

	enemy, _ := ecs.Get(w, e, component.EnemyComponent.Kind())
	if !enemy.Frozen || enemy.HeldVelocity != moving {
		t.Fatalf("expected held velocity %v, got %+v", moving, enemy)
	}
	s.Update(w)
	if enemy.Frozen || transform.Position.X <= frozenAt.X {
		t.Fatalf("expected enemy to resume, x=%v", transform.Position.X)
	}
}
