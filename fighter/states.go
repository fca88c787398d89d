package fighter

import (
	"github.com/automoto/streetbrawl/shared/fighterdata"
	"github.com/automoto/streetbrawl/shared/frametime"
)

type stateHandler struct {
	init   func(f *Fighter)
	update func(f *Fighter, t frametime.FrameTime)
}

// handlers is the dispatch table of the state machine. It is filled in
// init because the handlers themselves change state through it.
var handlers [fighterdata.StateCount]stateHandler

func init() {
	handlers = [fighterdata.StateCount]stateHandler{
		fighterdata.Idle:         {init: initIdle, update: updateIdle},
		fighterdata.WalkForward:  {init: initMove, update: updateWalkForward},
		fighterdata.WalkBackward: {init: initMove, update: updateWalkBackward},
		fighterdata.JumpStart:    {init: initStill, update: updateJumpStart},
		fighterdata.JumpUp:       {init: initJump, update: updateJump},
		fighterdata.JumpForward:  {init: initJump, update: updateJump},
		fighterdata.JumpBackward: {init: initJump, update: updateJump},
		fighterdata.JumpLand:     {init: initStill, update: updateJumpLand},
		fighterdata.Crouch:       {update: updateCrouch},
		fighterdata.CrouchDown:   {init: initStill, update: updateCrouchDown},
		fighterdata.CrouchUp:     {update: updateCrouchUp},
		fighterdata.IdleTurn:     {init: initStill, update: updateIdleTurn},
		fighterdata.CrouchTurn:   {update: updateCrouchTurn},
		fighterdata.LightPunch:   {init: initAttack, update: updateAttack},
		fighterdata.MediumPunch:  {init: initAttack, update: updateAttack},
		fighterdata.HeavyPunch:   {init: initAttack, update: updateAttack},
		fighterdata.LightKick:    {init: initAttack, update: updateAttack},
		fighterdata.MediumKick:   {init: initAttack, update: updateAttack},
		fighterdata.HeavyKick:    {init: initAttack, update: updateAttack},
	}
}

// ChangeState moves the fighter to next if the transition is legal and
// reports whether it happened. A transition to the current state, or from a
// state next does not list in its ValidFrom, is rejected and logged and
// leaves the fighter untouched. The first rejection of a run of identical
// attempts is a warning; the repeats go to the verbose log.
func (f *Fighter) ChangeState(next fighterdata.StateID) bool {
	rule, ok := fighterdata.StateRules[next]
	if next == f.state || !ok || !rule.Allows(f.state) {
		f.rejectTransition(next)
		return false
	}

	f.state = next
	f.lastRejected = noRejection
	f.setFrame(0)

	if h := handlers[next].init; h != nil {
		h(f)
	}
	return true
}

var noRejection = [2]fighterdata.StateID{fighterdata.StateNone - 1, fighterdata.StateNone - 1}

// rejectTransition logs an illegal transition. A held button repeats the
// same attempt every frame, so only the first of a run is a warning.
func (f *Fighter) rejectTransition(next fighterdata.StateID) {
	attempt := [2]fighterdata.StateID{f.state, next}
	if attempt == f.lastRejected {
		debugf("fighter %d: illegal transition from %q to %q (repeated)", f.slot, f.state, next)
		return
	}
	f.lastRejected = attempt
	warnf("Warning: fighter %d: illegal transition from %q to %q", f.slot, f.state, next)
}

func (f *Fighter) rule() fighterdata.StateRule {
	return fighterdata.StateRules[f.state]
}
