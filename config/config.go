package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer; renderers draw in registration order.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int

	// WindowScale multiplies the logical resolution for the window size.
	WindowScale int
}

// StageConfig names the stage a battle is fought on.
type StageConfig struct {
	Path string

	// CellSize is the resolv space cell size.
	CellSize int
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	StartX, StartY float64

	// ScrollBoundary is how close a fighter may get to a screen edge before
	// the camera scrolls.
	ScrollBoundary float64
	MaxY           float64
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	HeavyIntensity float64 // pixels
	Duration       float32 // seconds
}

// ShadowConfig contains fighter shadow configuration
type ShadowConfig struct {
	Width  float64
	Height float64
	Color  color.RGBA

	// Shrink is how much the shadow narrows per unit of jump height.
	Shrink   float64
	MinScale float64
}

// HitSplashConfig contains hit splash effect configuration
type HitSplashConfig struct {
	FrameTicks int
	Frames     int
	Radius     [3]float64 // indexed by attack strength
	Colors     [3]color.RGBA
}

// FlashConfig contains the hurt flash applied to a struck fighter
type FlashConfig struct {
	Frames  int
	R, G, B float32
}

// StatusBarConfig contains the health bar and score overlay configuration
type StatusBarConfig struct {
	BarY        float64
	BarWidth    float64
	BarHeight   float64
	BarMargin   float64
	NameY       int
	ScoreY      int
	DrainTime   float32 // seconds for the damage bar to catch up
	Background  color.RGBA
	Health      color.RGBA
	Damage      color.RGBA
	Border      color.RGBA
	TextColor   color.RGBA
	ScoreColor  color.RGBA
	KOColor     color.RGBA
	KOTextColor color.RGBA
}

// FighterRenderConfig contains how fighters are drawn without sprite sheets
type FighterRenderConfig struct {
	// HurtAlpha is the opacity of the hurt box silhouette.
	HurtAlpha uint8
	Outline   color.RGBA
	Limb      color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Enabled bool

	// HumanP2 puts player two on keyboard and gamepad input instead of
	// leaving them standing idle.
	HumanP2 bool
	Seed    uint64

	PushColor  color.RGBA
	HurtColor  color.RGBA
	HitColor   color.RGBA
	OriginSize float32
	TextColor  color.RGBA
}

// Global configuration instances
var C *Config
var Stage StageConfig
var Camera CameraConfig
var ScreenShake ScreenShakeConfig
var Shadow ShadowConfig
var HitSplash HitSplashConfig
var Flash FlashConfig
var StatusBar StatusBarConfig
var FighterRender FighterRenderConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:       384,
		Height:      224,
		TPS:         60,
		WindowScale: 3,
	}

	Stage = StageConfig{
		Path:     "stages/ken.tmx",
		CellSize: 16,
	}

	Camera = CameraConfig{
		StartX:         StageMidPoint + StagePadding - 192,
		StartY:         16,
		ScrollBoundary: 100,
		MaxY:           16,
	}

	ScreenShake = ScreenShakeConfig{
		HeavyIntensity: 3,
		Duration:       0.2,
	}

	Shadow = ShadowConfig{
		Width:    52,
		Height:   7,
		Color:    color.RGBA{R: 0, G: 0, B: 0, A: 96},
		Shrink:   0.004,
		MinScale: 0.5,
	}

	HitSplash = HitSplashConfig{
		FrameTicks: 4,
		Frames:     4,
		Radius:     [3]float64{5, 8, 11},
		Colors: [3]color.RGBA{
			{R: 255, G: 255, B: 200, A: 255},
			{R: 255, G: 200, B: 60, A: 255},
			{R: 255, G: 90, B: 40, A: 255},
		},
	}

	Flash = FlashConfig{
		Frames: 6,
		R:      1, G: 0.5, B: 0.5,
	}

	StatusBar = StatusBarConfig{
		BarY:        20,
		BarWidth:    145,
		BarHeight:   9,
		BarMargin:   32,
		NameY:       40,
		ScoreY:      12,
		DrainTime:   0.5,
		Background:  color.RGBA{R: 40, G: 40, B: 40, A: 255},
		Health:      color.RGBA{R: 255, G: 222, B: 0, A: 255},
		Damage:      color.RGBA{R: 208, G: 0, B: 0, A: 255},
		Border:      White,
		TextColor:   White,
		ScoreColor:  color.RGBA{R: 255, G: 255, B: 255, A: 230},
		KOColor:     color.RGBA{R: 208, G: 0, B: 0, A: 255},
		KOTextColor: White,
	}

	FighterRender = FighterRenderConfig{
		HurtAlpha: 255,
		Outline:   color.RGBA{R: 24, G: 16, B: 16, A: 255},
		Limb:      color.RGBA{R: 240, G: 200, B: 160, A: 255},
	}

	Debug = DebugConfig{
		Enabled: false,
		HumanP2: true,
		Seed:    0,

		PushColor:  color.RGBA{R: 85, G: 255, B: 85, A: 255},
		HurtColor:  color.RGBA{R: 85, G: 85, B: 255, A: 255},
		HitColor:   color.RGBA{R: 255, G: 0, B: 0, A: 255},
		OriginSize: 4,
		TextColor:  White,
	}
}
