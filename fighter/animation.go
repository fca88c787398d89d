package fighter

import (
	"github.com/automoto/streetbrawl/shared/fighterdata"
	"github.com/automoto/streetbrawl/shared/frametime"
)

// timeEpsilon absorbs float error when elapsed time lands exactly on a hold
// boundary, so a hold of n always shows the entry for n+1 ticks.
const timeEpsilon = 1e-6

func (f *Fighter) animation() fighterdata.Animation {
	return f.character.Animation(f.state)
}

// setFrame moves the animation cursor, restarts its hold and refreshes the
// active boxes.
func (f *Fighter) setFrame(index int) {
	f.animationFrame = index
	f.animationTimer = f.now
	f.boxes = f.character.FrameBoxes(f.animation()[index].Key)
}

// animationCompleted reports whether the cursor sits on the transition
// marker of a one-shot animation.
func (f *Fighter) animationCompleted() bool {
	return f.animation().Completed(f.animationFrame)
}

func (f *Fighter) updateAnimation(t frametime.FrameTime) {
	anim := f.animation()
	hold := anim[f.animationFrame].Hold

	if t.Previous-f.animationTimer <= float64(hold)*fighterdata.FrameTimeMs+timeEpsilon {
		return
	}
	f.animationTimer = t.Previous

	if hold <= fighterdata.HoldFreeze {
		return
	}

	next := f.animationFrame + 1
	if next >= len(anim) {
		next = 0
	}
	f.animationFrame = next
	f.boxes = f.character.FrameBoxes(anim[next].Key)
}
