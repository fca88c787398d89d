package components

import (
	"github.com/automoto/streetbrawl/shared/stagedata"
	"github.com/yohamta/donburi"
)

type StageData struct {
	*stagedata.Stage
}

var Stage = donburi.NewComponentType[StageData]()
