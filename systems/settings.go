package systems

import (
	"github.com/automoto/streetbrawl/components"
	cfg "github.com/automoto/streetbrawl/config"
	"github.com/automoto/streetbrawl/fighter"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the hotkeys for the debug overlay, fullscreen and
// mute, saving the settings whenever one changes.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	changed := false

	if inpututil.IsKeyJustPressed(cfg.Input.ToggleDebug) {
		settings.Debug = !settings.Debug
		fighter.SetVerbose(settings.Debug)
		changed = true
	}
	if inpututil.IsKeyJustPressed(cfg.Input.ToggleFullscreen) {
		settings.Fullscreen = !settings.Fullscreen
		ebiten.SetFullscreen(settings.Fullscreen)
		changed = true
	}
	if inpututil.IsKeyJustPressed(cfg.Input.ToggleMute) {
		settings.Muted = !settings.Muted
		SetMuted(settings.Muted)
		changed = true
	}

	if changed {
		SaveCurrentSettings(settings)
	}
}

// GetOrCreateSettings returns the singleton Settings component, seeded from
// the globals main applied at startup.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			Debug:      cfg.Debug.Enabled,
			Muted:      IsMuted(),
			Fullscreen: ebiten.IsFullscreen(),
		})
	}
	return components.Settings.Get(entry)
}
