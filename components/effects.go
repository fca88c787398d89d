package components

import (
	"github.com/automoto/streetbrawl/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	Decay   *gween.Tween // intensity in pixels, falling to zero
	Current float64      // intensity of the last frame
	Elapsed int          // frames elapsed (for oscillation)
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// FlashData tracks the tint of a struck fighter
type FlashData struct {
	Duration int     // frames remaining
	R, G, B  float32 // color multipliers (1,1,1 = white, 1,0.5,0.5 = red tint)
}

var Flash = donburi.NewComponentType[FlashData]()

// AutoDestroyData marks entities that should be destroyed after a duration
type AutoDestroyData struct {
	FramesRemaining int
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()

// HitSplashData is a short burst drawn where an attack landed.
type HitSplashData struct {
	Position math.Vec2
	Strength config.AttackStrength
	Frame    int
	Ticks    int
}

var HitSplash = donburi.NewComponentType[HitSplashData]()

// ShadowData is the ground shadow of a fighter entity.
type ShadowData struct {
	Owner *donburi.Entry
	X, Y  float64
	Scale float64
}

var Shadow = donburi.NewComponentType[ShadowData]()
