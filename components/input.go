package components

import (
	"github.com/automoto/streetbrawl/shared/control"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputNone InputMethod = iota
	InputKeyboard
	InputGamepad
)

func (m InputMethod) String() string {
	switch m {
	case InputKeyboard:
		return "keyboard"
	case InputGamepad:
		return "gamepad"
	default:
		return "-"
	}
}

// InputData stores each player's held controls for the current frame.
type InputData struct {
	Players [2]control.Snapshot

	// Enabled is false for a slot nobody is playing; its snapshot stays idle.
	Enabled [2]bool
	Methods [2]InputMethod
}

var Input = donburi.NewComponentType[InputData]()
