package components

import (
	"github.com/automoto/streetbrawl/fighter"
	"github.com/automoto/streetbrawl/shared/battle"
	"github.com/automoto/streetbrawl/shared/frametime"
	"github.com/yohamta/donburi"
)

// BattleData is the singleton holding the fighter pair and the battle clock.
type BattleData struct {
	Pair  *fighter.Pair
	Clock *frametime.Clock
	Time  frametime.FrameTime
	Score *battle.State

	// PendingHits collects attacks landed during the current frame.
	PendingHits []fighter.AttackEvent
}

var Battle = donburi.NewComponentType[BattleData]()
