package fighter

import (
	"math"

	"github.com/automoto/streetbrawl/shared/fighterdata"
	"github.com/automoto/streetbrawl/shared/frametime"
	"github.com/automoto/streetbrawl/shared/gamemath"
)

// separation keeps resolved push boxes from sharing an edge after float
// rounding.
const separation = 1e-6

// stageLimits returns the range of x positions that keep the push box
// inside the camera.
func (f *Fighter) stageLimits(camera gamemath.Rect) (minX, maxX float64) {
	push := f.PushBox()
	left := f.position.X - push.X
	right := push.Right() - f.position.X
	return camera.X + left, camera.Right() - right
}

func (f *Fighter) moveWithin(dx float64, camera gamemath.Rect) {
	minX, maxX := f.stageLimits(camera)
	f.position.X = gamemath.Clamp(f.position.X+dx, minX, maxX)
}

// updateStageConstraints keeps the fighter on screen and out of the
// opponent's push box. It is the only place a fighter moves its opponent.
func (f *Fighter) updateStageConstraints(t frametime.FrameTime, camera gamemath.Rect) {
	minX, maxX := f.stageLimits(camera)
	f.position.X = gamemath.Clamp(f.position.X, minX, maxX)

	opp := f.Opponent()
	if opp == nil {
		return
	}
	push, oppPush := f.PushBox(), opp.PushBox()
	if !gamemath.RectsOverlap(push, oppPush) {
		return
	}

	left := f.position.X - push.X
	right := push.Right() - f.position.X
	shove := 0.0
	if fighterdata.IsPassive(opp.state) {
		shove = fighterdata.PushFriction * t.SecondsPassed
	}

	onLeft := f.position.X <= opp.position.X
	if onLeft {
		f.position.X = math.Max(oppPush.X-right-separation, minX)
		opp.moveWithin(shove, camera)
	} else {
		f.position.X = math.Min(oppPush.Right()+left+separation, maxX)
		opp.moveWithin(-shove, camera)
	}

	// Pinned against the edge of the screen: the opponent has to give way.
	push, oppPush = f.PushBox(), opp.PushBox()
	if !gamemath.RectsOverlap(push, oppPush) {
		return
	}
	if onLeft {
		opp.moveWithin(push.Right()-oppPush.X+separation, camera)
	} else {
		opp.moveWithin(push.X-oppPush.Right()-separation, camera)
	}
}
