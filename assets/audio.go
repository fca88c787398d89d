package assets

import (
	"fmt"
	"math/rand/v2"

	cfg "github.com/automoto/streetbrawl/config"
	"github.com/automoto/streetbrawl/shared/sfx"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader handles synthesis and caching of audio assets
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte // Cache rendered PCM for SFX
	context  *audio.Context
	rng      *rand.Rand
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
		rng:      rand.New(rand.NewPCG(0x5f3759df, uint64(cfg.Audio.SampleRate))),
	}
}

// PreloadSFX renders a sound effect and caches it without creating a player.
// Call this at startup to avoid synthesis lag on first play.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) error {
	if _, ok := l.sfxCache[id]; ok {
		return nil
	}

	tone, ok := cfg.Sound.Tones[id]
	if !ok {
		return fmt.Errorf("no tone configured for sound %d", id)
	}

	l.sfxCache[id] = sfx.Synthesize(l.context.SampleRate(), tone, l.rng)
	return nil
}

// LoadSFX returns a new player for a sound effect each time.
// SFX are cached as rendered bytes for instant playback.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	if err := l.PreloadSFX(id); err != nil {
		return nil, err
	}
	return l.context.NewPlayerFromBytes(l.sfxCache[id]), nil
}
