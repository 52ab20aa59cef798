package ecs

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/controller"
	"github.com/milk9111/platformer/levels"
)

const physicsTestLevel = `{
	"width": 5,
	"height": 4,
	"layers": [
		[0,0,0,0,0,
		 0,0,0,0,0,
		 0,0,0,0,1,
		 1,1,1,1,1],
		[1,1,1,1,1,
		 1,1,1,1,1,
		 1,1,1,1,1,
		 1,1,1,1,1]
	],
	"layer_meta": [{"physics": true}, {"physics": false}]
}`

func newTestPhysicsWorld(t *testing.T) *PhysicsWorld {
	t.Helper()
	lvl, err := levels.Parse([]byte(physicsTestLevel))
	if err != nil {
		t.Fatalf("parse level: %v", err)
	}
	return NewPhysicsWorldFromLevel(lvl)
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPhysicsWorldMergesTiles(t *testing.T) {
	pw := newTestPhysicsWorld(t)

	// Two merged tile runs plus four bound walls; the decorative layer adds
	// nothing.
	if got := len(pw.Boxes()); got != 6 {
		t.Fatalf("expected 6 boxes, got %d: %v", got, pw.Boxes())
	}
	want := []cp.BB{
		{L: 4, B: 0, R: 5, T: 2},
		{L: 0, B: 0, R: 4, T: 1},
	}
	for i, bb := range want {
		if pw.Boxes()[i].BB != bb {
			t.Fatalf("box %d: expected %v, got %v", i, bb, pw.Boxes()[i].BB)
		}
	}
	if b := pw.Bounds(); b != (cp.BB{L: 0, B: 0, R: 5, T: 4}) {
		t.Fatalf("unexpected bounds %v", b)
	}
}

func TestPhysicsWorldCasts(t *testing.T) {
	pw := newTestPhysicsWorld(t)
	walls := controller.WallsLayer

	cases := []struct {
		name    string
		cast    func() (float64, bool)
		wantHit bool
		want    float64
	}{
		{"ray_down_to_floor", func() (float64, bool) {
			return pw.Raycast(cp.Vector{X: 1.5, Y: 3}, cp.Vector{Y: -1}, 100, walls)
		}, true, 2},
		{"ray_up_to_bound", func() (float64, bool) {
			return pw.Raycast(cp.Vector{X: 1.5, Y: 3}, cp.Vector{Y: 1}, 100, walls)
		}, true, 1},
		{"ray_right_to_step", func() (float64, bool) {
			return pw.Raycast(cp.Vector{X: 2, Y: 1.5}, cp.Vector{X: 1}, 100, walls)
		}, true, 2},
		{"ray_out_of_range", func() (float64, bool) {
			return pw.Raycast(cp.Vector{X: 1.5, Y: 3}, cp.Vector{Y: -1}, 1, walls)
		}, false, 0},
		{"ray_other_layer", func() (float64, bool) {
			return pw.Raycast(cp.Vector{X: 1.5, Y: 3}, cp.Vector{Y: -1}, 100, "hazards")
		}, false, 0},
		{"box_down_from_face", func() (float64, bool) {
			return pw.Boxcast(cp.Vector{X: 1.5, Y: 2}, cp.Vector{X: 0.8, Y: 0.1}, cp.Vector{Y: -1}, 100, walls)
		}, true, 0.95},
		{"box_edge_catches_step", func() (float64, bool) {
			return pw.Boxcast(cp.Vector{X: 3.2, Y: 3}, cp.Vector{X: 2, Y: 1}, cp.Vector{Y: -1}, 100, walls)
		}, true, 0.5},
		{"box_resting_on_floor", func() (float64, bool) {
			return pw.Boxcast(cp.Vector{X: 1.5, Y: 1.5}, cp.Vector{X: 1, Y: 1}, cp.Vector{Y: -1}, 0.1, walls)
		}, true, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, hit := c.cast()
			if hit != c.wantHit {
				t.Fatalf("hit = %v, want %v", hit, c.wantHit)
			}
			if hit && !near(got, c.want) {
				t.Fatalf("distance = %v, want %v", got, c.want)
			}
		})
	}
}

func TestPhysicsWorldMoveBox(t *testing.T) {
	pw := newTestPhysicsWorld(t)
	size := cp.Vector{X: 1, Y: 1}

	next, bx, by := pw.MoveBox(cp.Vector{X: 1.5, Y: 1.5}, size, cp.Vector{Y: -0.5}, controller.WallsLayer)
	if !by || bx || !near(next.Y, 1.5) {
		t.Fatalf("expected to stay on the floor, got %v blocked=%v,%v", next, bx, by)
	}

	next, bx, _ = pw.MoveBox(cp.Vector{X: 2.5, Y: 1.6}, size, cp.Vector{X: 3}, controller.WallsLayer)
	if !bx || !near(next.X, 3.5) {
		t.Fatalf("expected to stop against the step at x=3.5, got %v", next)
	}

	next, bx, by = pw.MoveBox(cp.Vector{X: 1.5, Y: 2.5}, size, cp.Vector{X: 0.25, Y: 0.25}, controller.WallsLayer)
	if bx || by || !near(next.X, 1.75) || !near(next.Y, 2.75) {
		t.Fatalf("expected free move, got %v", next)
	}
}

func TestPhysicsWorldOverlaps(t *testing.T) {
	pw := newTestPhysicsWorld(t)
	if !pw.Overlaps(cp.BB{L: 1, B: 0.5, R: 2, T: 1.5}, controller.WallsLayer) {
		t.Fatalf("expected overlap with the floor")
	}
	if pw.Overlaps(cp.BB{L: 1, B: 1.5, R: 2, T: 2.5}, controller.WallsLayer) {
		t.Fatalf("expected open air")
	}
	if pw.Overlaps(cp.BB{L: 1, B: 0.5, R: 2, T: 1.5}, "decor") {
		t.Fatalf("other layers must not report the walls")
	}

	var nilWorld *PhysicsWorld
	if _, hit := nilWorld.Raycast(cp.Vector{}, cp.Vector{Y: -1}, 10, controller.WallsLayer); hit {
		t.Fatalf("nil world must not report hits")
	}
}
