package controller

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/common"
)

// RawInput is the per-tick signal set resolved by the input device layer.
// Move carries the unquantized stick/keyboard axes.
type RawInput struct {
	JumpDown      bool
	JumpHeld      bool
	Move          cp.Vector
	AttackPressed bool
	RangedPressed bool
	DashPressed   bool
}

// FrameInput is the snapshot the subsystems read during one tick. Move is
// quantized to {-1,0,1} on each axis.
type FrameInput struct {
	JumpDown      bool
	JumpHeld      bool
	Move          cp.Vector
	AttackPressed bool
	RangedPressed bool
	DashPressed   bool
}

// NewFrameInput quantizes raw axes with the given dead zone.
func NewFrameInput(raw RawInput, deadZone float64) FrameInput {
	return FrameInput{
		JumpDown: raw.JumpDown,
		JumpHeld: raw.JumpHeld,
		Move: cp.Vector{
			X: common.Quantize(raw.Move.X, deadZone),
			Y: common.Quantize(raw.Move.Y, deadZone),
		},
		AttackPressed: raw.AttackPressed,
		RangedPressed: raw.RangedPressed,
		DashPressed:   raw.DashPressed,
	}
}
