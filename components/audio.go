package components

import (
	cfg "github.com/automoto/streetbrawl/config"
	"github.com/yohamta/donburi"
)

// AudioData stores the sound effects queued this frame (singleton component)
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
