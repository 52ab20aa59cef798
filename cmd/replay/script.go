package main

import (
	"fmt"
	"os"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/controller"
	"github.com/milk9111/platformer/ecs/system"
	"gopkg.in/yaml.v3"
)

// Script is a recorded input sequence. Each step holds its input for Ticks
// ticks; button presses fire on the step's first tick only.
type Script struct {
	Level string `yaml:"level"`
	Steps []Step `yaml:"steps"`
}

type Step struct {
	Ticks    int     `yaml:"ticks"`
	MoveX    float64 `yaml:"move_x"`
	MoveY    float64 `yaml:"move_y"`
	Jump     bool    `yaml:"jump"`
	HoldJump bool    `yaml:"hold_jump"`
	Attack   bool    `yaml:"attack"`
	Ranged   bool    `yaml:"ranged"`
	Dash     bool    `yaml:"dash"`
	ToggleBG bool    `yaml:"toggle_background"`
}

func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("replay: read %s: %w", path, err)
	}
	return ParseScript(data)
}

func ParseScript(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("replay: unmarshal: %w", err)
	}
	if len(s.Steps) == 0 {
		return Script{}, fmt.Errorf("replay: script has no steps")
	}
	for i, step := range s.Steps {
		if step.Ticks <= 0 {
			return Script{}, fmt.Errorf("replay: step %d: ticks must be positive, got %d", i, step.Ticks)
		}
	}
	return s, nil
}

// Frames expands the steps into one input frame per tick.
func (s Script) Frames() []system.InputFrame {
	var frames []system.InputFrame
	for _, step := range s.Steps {
		for t := 0; t < step.Ticks; t++ {
			first := t == 0
			frames = append(frames, system.InputFrame{
				Raw: controller.RawInput{
					JumpDown:      step.Jump && first,
					JumpHeld:      step.HoldJump || (step.Jump && first),
					Move:          cp.Vector{X: step.MoveX, Y: step.MoveY},
					AttackPressed: step.Attack && first,
					RangedPressed: step.Ranged && first,
					DashPressed:   step.Dash && first,
				},
				BackgroundToggled: step.ToggleBG && first,
			})
		}
	}
	return frames
}
