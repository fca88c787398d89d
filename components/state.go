package components

import (
	"github.com/automoto/streetbrawl/config"
	"github.com/yohamta/donburi"
)

// StateData mirrors a fighter's state machine for overlays: the current and
// previous state plus ticks spent in the current one.
type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    int
}

var State = donburi.NewComponentType[StateData]()
