package components

import "github.com/yohamta/donburi"

// SettingsData holds the toggles persisted between runs (singleton component)
type SettingsData struct {
	Debug      bool
	Muted      bool
	Fullscreen bool
}

var Settings = donburi.NewComponentType[SettingsData]()
