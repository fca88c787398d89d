package config

import "github.com/automoto/streetbrawl/shared/fighterdata"

// Type aliases so ebiten-side code can refer to fighter content through config.
type StateID = fighterdata.StateID
type AttackStrength = fighterdata.AttackStrength

// Re-export stage geometry.
const (
	StageWidth    = fighterdata.StageWidth
	StagePadding  = fighterdata.StagePadding
	StageMidPoint = fighterdata.StageMidPoint
	StageFloor    = fighterdata.StageFloor
)

// Re-export attack strengths.
const (
	StrengthLight  = fighterdata.StrengthLight
	StrengthMedium = fighterdata.StrengthMedium
	StrengthHeavy  = fighterdata.StrengthHeavy
)
