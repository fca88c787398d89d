package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HealthBarData is the displayed health of a fighter. Displayed trails the
// real hit points while Drain runs.
type HealthBarData struct {
	Displayed float64
	Target    int
	Drain     *gween.Tween
}

var HealthBar = donburi.NewComponentType[HealthBarData]()
