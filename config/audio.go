package config

import "github.com/automoto/streetbrawl/shared/sfx"

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundHitLight
	SoundHitMedium
	SoundHitHeavy
	SoundCount
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to their synthesis parameters
type SoundConfig struct {
	Tones map[SoundID]sfx.Tone
}

var Audio AudioConfig
var Sound SoundConfig

// HitSound returns the sound for a landed attack of the given strength.
func HitSound(strength AttackStrength) SoundID {
	switch strength {
	case StrengthMedium:
		return SoundHitMedium
	case StrengthHeavy:
		return SoundHitHeavy
	default:
		return SoundHitLight
	}
}

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.6,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]sfx.Tone{
			SoundHitLight:  {StartHz: 420, EndHz: 180, Duration: 0.08, Noise: 0.5, Volume: 0.6},
			SoundHitMedium: {StartHz: 320, EndHz: 120, Duration: 0.12, Noise: 0.6, Volume: 0.8},
			SoundHitHeavy:  {StartHz: 220, EndHz: 60, Duration: 0.2, Noise: 0.7, Volume: 1.0},
		},
	}
}
