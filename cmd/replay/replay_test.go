package main

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/levels"
)

const flatLevel = `{
	"width": 20,
	"height": 6,
	"layers": [[
		0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,
		0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,
		0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,
		0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,
		0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,
		1,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1
	]],
	"entities": [{"type": "player", "x": 2, "y": 4}]
}`

func runScript(t *testing.T, doc string) Result {
	t.Helper()
	script, err := ParseScript([]byte(doc))
	if err != nil {
		t.Fatalf("parse script: %v", err)
	}
	lvl, err := levels.Parse([]byte(flatLevel))
	if err != nil {
		t.Fatalf("parse level: %v", err)
	}
	res, err := Run(script.Frames(), lvl, entity.DefaultCatalog(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	return res
}

func TestParseScript(t *testing.T) {
	cases := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{"valid", "steps:\n  - ticks: 2\n    move_x: 1\n", ""},
		{"no_steps", "level: level1\n", "no steps"},
		{"zero_ticks", "steps:\n  - ticks: 0\n", "step 0"},
		{"bad_yaml", "steps: [", "unmarshal"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseScript([]byte(c.doc))
			if c.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), c.wantErr) {
				t.Fatalf("expected error containing %q, got %v", c.wantErr, err)
			}
		})
	}
}

func TestFramesPressOnFirstTick(t *testing.T) {
	s := Script{Steps: []Step{
		{Ticks: 3, Jump: true, Dash: true, MoveX: -1},
		{Ticks: 2, HoldJump: true},
	}}
	frames := s.Frames()
	if len(frames) != 5 {
		t.Fatalf("expected 5 frames, got %d", len(frames))
	}
	if !frames[0].Raw.JumpDown || !frames[0].Raw.JumpHeld || !frames[0].Raw.DashPressed {
		t.Fatalf("expected presses on the first tick: %+v", frames[0].Raw)
	}
	for i := 1; i < 3; i++ {
		if frames[i].Raw.JumpDown || frames[i].Raw.JumpHeld || frames[i].Raw.DashPressed || frames[i].Raw.Move.X != -1 {
			t.Fatalf("frame %d: unexpected input %+v", i, frames[i].Raw)
		}
	}
	if !frames[4].Raw.JumpHeld || frames[4].Raw.JumpDown {
		t.Fatalf("expected jump held without a press: %+v", frames[4].Raw)
	}
}

func TestLoadExampleScript(t *testing.T) {
	s, err := LoadScript("testdata/walk_jump.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Level != "level1" || len(s.Frames()) != 124 {
		t.Fatalf("unexpected script: level=%q frames=%d", s.Level, len(s.Frames()))
	}
}

func TestRunWalksRight(t *testing.T) {
	res := runScript(t, "steps:\n  - ticks: 60\n    move_x: 1\n")
	if res.Ticks != 60 || res.Dead {
		t.Fatalf("unexpected result %+v", res)
	}
	if res.Position.X <= 3 {
		t.Fatalf("expected the player to walk right from x=2.5, got %v", res.Position.X)
	}
	// The ground probe keeps the collider half a probe height above the tiles.
	if res.Position.Y < 1.84 || res.Position.Y > 1.86 {
		t.Fatalf("expected the player resting on the floor, y=%v", res.Position.Y)
	}
}

func TestRunJumpRises(t *testing.T) {
	res := runScript(t, "steps:\n  - ticks: 5\n  - ticks: 1\n    jump: true\n  - ticks: 8\n    hold_jump: true\n")
	if res.Position.Y <= 2 {
		t.Fatalf("expected the player in the air, y=%v", res.Position.Y)
	}
}
