package systems

import (
	"github.com/automoto/streetbrawl/components"
	cfg "github.com/automoto/streetbrawl/config"
	"github.com/automoto/streetbrawl/shared/control"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input into each player's snapshot.
// Must run BEFORE UpdateFighters in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for slot := range input.Players {
		input.Players[slot].Reset()
		input.Methods[slot] = components.InputNone
		if !input.Enabled[slot] {
			continue
		}

		pollKeyboardForPlayer(input, slot)

		// Gamepad n drives slot n
		if slot < len(gamepadIDs) {
			pollGamepadForPlayer(input, slot, gamepadIDs[slot])
		}
	}
}

// pollKeyboardForPlayer reads a slot's key bindings.
func pollKeyboardForPlayer(input *components.InputData, slot int) {
	snap := &input.Players[slot]
	for c, binding := range cfg.Input.Players[slot] {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				snap.Press(c)
				input.Methods[slot] = components.InputKeyboard
			}
		}
	}
}

// pollGamepadForPlayer reads buttons and the left stick of a gamepad into a
// slot's snapshot.
func pollGamepadForPlayer(input *components.InputData, slot int, gpID ebiten.GamepadID) {
	if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
		return
	}
	snap := &input.Players[slot]

	for c, binding := range cfg.Input.Players[slot] {
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				snap.Press(c)
				input.Methods[slot] = components.InputGamepad
			}
		}
	}

	deadzone := cfg.Input.AnalogDeadzone
	horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
	vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

	stick := [...]struct {
		held bool
		c    control.Control
	}{
		{horizontal < -deadzone, control.Left},
		{horizontal > deadzone, control.Right},
		{vertical < -deadzone, control.Up},
		{vertical > deadzone, control.Down},
	}
	for _, s := range stick {
		if s.held {
			snap.Press(s.c)
			input.Methods[slot] = components.InputGamepad
		}
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		components.Input.SetValue(entry, components.InputData{
			Enabled: [2]bool{true, cfg.Debug.HumanP2},
		})
	}
	return components.Input.Get(entry)
}
