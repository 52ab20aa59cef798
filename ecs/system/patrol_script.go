package system

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/platformer/common"
)

// patrolInput is the sensor snapshot handed to a patrol script.
type patrolInput struct {
	Direction  float64
	Grounded   bool
	FloorLeft  float64
	FloorRight float64
	WallLeft   float64
	WallRight  float64
	LedgeDepth float64
	WallMargin float64
}

type patrolScript struct {
	name     string
	compiled *tengo.Compiled
}

func compilePatrolScript(name string, src []byte) (*patrolScript, error) {
	script := tengo.NewScript(src)
	_ = script.Add("direction", 0.0)
	_ = script.Add("grounded", false)
	_ = script.Add("floor_left", 0.0)
	_ = script.Add("floor_right", 0.0)
	_ = script.Add("wall_left", 0.0)
	_ = script.Add("wall_right", 0.0)
	_ = script.Add("ledge_depth", 0.0)
	_ = script.Add("wall_margin", 0.0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("patrol: compile %s: %w", name, err)
	}
	return &patrolScript{name: name, compiled: compiled}, nil
}

// run executes the script once and returns the heading it leaves behind.
func (p *patrolScript) run(in patrolInput) (float64, error) {
	vars := []struct {
		name  string
		value any
	}{
		{"direction", in.Direction},
		{"grounded", in.Grounded},
		{"floor_left", in.FloorLeft},
		{"floor_right", in.FloorRight},
		{"wall_left", in.WallLeft},
		{"wall_right", in.WallRight},
		{"ledge_depth", in.LedgeDepth},
		{"wall_margin", in.WallMargin},
	}
	for _, v := range vars {
		if err := p.compiled.Set(v.name, v.value); err != nil {
			return in.Direction, fmt.Errorf("patrol: %s: set %s: %w", p.name, v.name, err)
		}
	}
	if err := p.compiled.Run(); err != nil {
		return in.Direction, fmt.Errorf("patrol: %s: run: %w", p.name, err)
	}

	if dir := common.Sign(p.compiled.Get("direction").Float()); dir != 0 {
		return dir, nil
	}
	return in.Direction, nil
}

// defaultPatrol is the built-in turn-around rule used when no script is
// available.
func defaultPatrol(in patrolInput) float64 {
	floor, wall := in.FloorLeft, in.WallLeft
	if in.Direction > 0 {
		floor, wall = in.FloorRight, in.WallRight
	}
	if in.Grounded && (floor > in.LedgeDepth || wall < in.WallMargin) {
		return -in.Direction
	}
	return in.Direction
}
