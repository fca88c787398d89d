package config

import (
	"github.com/automoto/streetbrawl/shared/control"
	"github.com/hajimehoshi/ebiten/v2"
)

// InputBinding represents a single key or button binding for a control
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	// Players is indexed by player slot. Gamepad n drives slot n.
	Players [2]map[control.Control]InputBinding

	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64

	ToggleDebug      ebiten.Key
	ToggleFullscreen ebiten.Key
	ToggleMute       ebiten.Key
	Rematch          ebiten.Key
}

// Input is the global input configuration
var Input InputConfig

// gamepadBindings is the standard layout shared by both slots.
var gamepadBindings = map[control.Control][]ebiten.StandardGamepadButton{
	control.Left:        {ebiten.StandardGamepadButtonLeftLeft},
	control.Right:       {ebiten.StandardGamepadButtonLeftRight},
	control.Up:          {ebiten.StandardGamepadButtonLeftTop},
	control.Down:        {ebiten.StandardGamepadButtonLeftBottom},
	control.LightPunch:  {ebiten.StandardGamepadButtonRightBottom},
	control.MediumPunch: {ebiten.StandardGamepadButtonRightRight},
	control.HeavyPunch:  {ebiten.StandardGamepadButtonFrontTopRight},
	control.LightKick:   {ebiten.StandardGamepadButtonRightLeft},
	control.MediumKick:  {ebiten.StandardGamepadButtonRightTop},
	control.HeavyKick:   {ebiten.StandardGamepadButtonFrontTopLeft},
}

func playerBindings(keys map[control.Control][]ebiten.Key) map[control.Control]InputBinding {
	b := make(map[control.Control]InputBinding, control.ControlCount)
	for c := control.Control(0); c < control.ControlCount; c++ {
		b[c] = InputBinding{
			Keys:                   keys[c],
			StandardGamepadButtons: gamepadBindings[c],
		}
	}
	return b
}

func init() {
	Input = InputConfig{
		AnalogDeadzone:   0.5,
		ToggleDebug:      ebiten.KeyF1,
		ToggleFullscreen: ebiten.KeyF11,
		ToggleMute:       ebiten.KeyF2,
		Rematch:          ebiten.KeyEnter,
		Players: [2]map[control.Control]InputBinding{
			// Arrows + numpad
			playerBindings(map[control.Control][]ebiten.Key{
				control.Left:        {ebiten.KeyArrowLeft},
				control.Right:       {ebiten.KeyArrowRight},
				control.Up:          {ebiten.KeyArrowUp},
				control.Down:        {ebiten.KeyArrowDown},
				control.LightPunch:  {ebiten.KeyNumpad4},
				control.MediumPunch: {ebiten.KeyNumpad5},
				control.HeavyPunch:  {ebiten.KeyNumpad6},
				control.LightKick:   {ebiten.KeyNumpad1},
				control.MediumKick:  {ebiten.KeyNumpad2},
				control.HeavyKick:   {ebiten.KeyNumpad3},
			}),
			// WASD + UIO/JKL
			playerBindings(map[control.Control][]ebiten.Key{
				control.Left:        {ebiten.KeyA},
				control.Right:       {ebiten.KeyD},
				control.Up:          {ebiten.KeyW},
				control.Down:        {ebiten.KeyS},
				control.LightPunch:  {ebiten.KeyU},
				control.MediumPunch: {ebiten.KeyI},
				control.HeavyPunch:  {ebiten.KeyO},
				control.LightKick:   {ebiten.KeyJ},
				control.MediumKick:  {ebiten.KeyK},
				control.HeavyKick:   {ebiten.KeyL},
			}),
		},
	}
}
