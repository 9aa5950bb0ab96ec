package scenes

import (
	"github.com/automoto/digdug/components"
	"github.com/hajimehoshi/ebiten/v2"
)

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionPump
	ActionPause
	ActionRestart
	ActionDebug
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings maps actions to keys and gamepad buttons.
var Bindings = map[ActionID]InputBinding{
	ActionMoveLeft: {
		Keys:                   []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	ActionMoveRight: {
		Keys:                   []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	ActionMoveUp: {
		Keys:                   []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
	},
	ActionMoveDown: {
		Keys:                   []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
	},
	ActionPump: {
		Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyZ},
		// A / Cross button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	ActionPause: {
		Keys:                   []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
	ActionRestart: {
		Keys:                   []ebiten.Key{ebiten.KeyEnter, ebiten.KeyR},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterLeft},
	},
	ActionDebug: {
		Keys: []ebiten.Key{ebiten.KeyF1},
	},
}

// AnalogDeadzone for the left stick (0.0 to 1.0)
var AnalogDeadzone = 0.25

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// InputState double-buffers action presses so edges can be detected.
type InputState struct {
	Current  [ActionCount]bool
	Previous [ActionCount]bool
}

// Poll swaps buffers and reads keyboard, gamepad buttons and the left stick.
func (in *InputState) Poll() {
	in.Previous = in.Current
	in.Current = [ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	for actionID, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				in.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					in.Current[actionID] = true
				}
			}
		}
	}

	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		in.Current[ActionMoveLeft] = in.Current[ActionMoveLeft] || h < -AnalogDeadzone
		in.Current[ActionMoveRight] = in.Current[ActionMoveRight] || h > AnalogDeadzone
		in.Current[ActionMoveUp] = in.Current[ActionMoveUp] || v < -AnalogDeadzone
		in.Current[ActionMoveDown] = in.Current[ActionMoveDown] || v > AnalogDeadzone
	}
}

func (in *InputState) Pressed(id ActionID) bool {
	return in.Current[id]
}

func (in *InputState) JustPressed(id ActionID) bool {
	return in.Current[id] && !in.Previous[id]
}

// Intent folds the held directions into one, checked left, right, up, down,
// and takes the pump action on its press edge only.
func (in *InputState) Intent() components.Intent {
	intent := components.Intent{Action: in.JustPressed(ActionPump)}
	switch {
	case in.Pressed(ActionMoveLeft):
		intent.Direction = components.DirLeft
	case in.Pressed(ActionMoveRight):
		intent.Direction = components.DirRight
	case in.Pressed(ActionMoveUp):
		intent.Direction = components.DirUp
	case in.Pressed(ActionMoveDown):
		intent.Direction = components.DirDown
	}
	return intent
}
