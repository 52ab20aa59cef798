package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/controller"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// InputFrame is one tick of device state.
type InputFrame struct {
	Raw               controller.RawInput
	BackgroundToggled bool
}

// InputSource produces the device state for the current tick.
type InputSource func() InputFrame

type InputSystem struct {
	source InputSource
}

// NewInputSystem reads from source, or from keyboard and gamepad when source
// is nil.
func NewInputSystem(source InputSource) *InputSystem {
	if source == nil {
		source = ReadDevices
	}
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	frame := i.source()
	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		input.Raw = frame.Raw
		input.BackgroundToggled = frame.BackgroundToggled
	})
}

// ReadDevices polls the keyboard and the first standard gamepad.
func ReadDevices() InputFrame {
	const stickDeadzone = 0.2

	var move cp.Vector
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		move.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		move.X++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		move.Y++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		move.Y--
	}

	raw := controller.RawInput{
		JumpDown:      inpututil.IsKeyJustPressed(ebiten.KeySpace),
		JumpHeld:      ebiten.IsKeyPressed(ebiten.KeySpace),
		AttackPressed: inpututil.IsKeyJustPressed(ebiten.KeyJ) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		RangedPressed: inpututil.IsKeyJustPressed(ebiten.KeyK) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
		DashPressed:   inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft) || inpututil.IsKeyJustPressed(ebiten.KeyL),
	}
	toggled := inpututil.IsKeyJustPressed(ebiten.KeyH)

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(lx, ly) > stickDeadzone {
			// Gamepad vertical axes grow downward.
			move = cp.Vector{X: lx, Y: -ly}
		}

		raw.JumpDown = raw.JumpDown || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		raw.JumpHeld = raw.JumpHeld || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		raw.AttackPressed = raw.AttackPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft)
		raw.RangedPressed = raw.RangedPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightTop)
		raw.DashPressed = raw.DashPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonFrontTopRight)
		toggled = toggled || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterLeft)
	}
	raw.Move = move

	return InputFrame{Raw: raw, BackgroundToggled: toggled}
}
