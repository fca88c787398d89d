package systems

import (
	"math"

	"github.com/automoto/streetbrawl/components"
	cfg "github.com/automoto/streetbrawl/config"
	"github.com/automoto/streetbrawl/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateCamera keeps both fighters inside the scroll boundary, clamped to the
// stage's camera limits.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	// Process screen shake
	updateScreenShake(cameraEntry, camera)

	b, ok := getBattle(e)
	if !ok {
		return
	}
	stage, ok := getStage(e)
	if !ok {
		return
	}

	var xs, ys [2]float64
	for i, f := range b.Pair {
		p := f.Position()
		xs[i], ys[i] = p.X, p.Y
	}

	left, right := stage.CameraLimits(float64(cfg.C.Width))
	x, y := gamemath.FollowFighters(camera.Position.X, xs, ys, gamemath.StageView{
		Left:           left,
		Right:          right,
		ViewportWidth:  float64(cfg.C.Width),
		ScrollBoundary: cfg.Camera.ScrollBoundary,
		MaxY:           cfg.Camera.MaxY,
	})
	camera.Position = dmath.NewVec2(x, y)
}

// updateScreenShake computes the draw offset of the camera and removes the
// shake once its intensity has decayed.
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		camera.Shake = dmath.Vec2{}
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	intensity, done := shake.Decay.Update(1 / float32(cfg.C.TPS))
	shake.Current = float64(intensity)

	// Apply oscillating offset using sine/cosine for smooth shake
	camera.Shake = dmath.NewVec2(
		math.Sin(float64(shake.Elapsed)*1.1)*shake.Current,
		math.Cos(float64(shake.Elapsed)*1.3)*shake.Current,
	)

	if done {
		camera.Shake = dmath.Vec2{}
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake effect decaying over duration
// seconds.
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration float32) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}

	decay := gween.New(float32(intensity), 0, duration, ease.OutQuad)

	// Add or update screen shake component
	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is stronger
		if intensity > shake.Current {
			shake.Decay = decay
			shake.Current = intensity
			shake.Elapsed = 0
		}
		return
	}

	cameraEntry.AddComponent(components.ScreenShake)
	components.ScreenShake.SetValue(cameraEntry, components.ScreenShakeData{
		Decay:   decay,
		Current: intensity,
	})
}
