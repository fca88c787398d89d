package components

import (
	"github.com/automoto/streetbrawl/fighter"
	"github.com/yohamta/donburi"
)

type FighterData struct {
	*fighter.Fighter
}

var Fighter = donburi.NewComponentType[FighterData]()
