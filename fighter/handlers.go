package fighter

import (
	"github.com/automoto/streetbrawl/shared/fighterdata"
	"github.com/automoto/streetbrawl/shared/frametime"
)

func initIdle(f *Fighter) {
	f.resetVelocities()
	f.attackStruck = false
}

func initStill(f *Fighter) {
	f.resetVelocities()
}

func initMove(f *Fighter) {
	f.velocity.X = f.character.InitialVelocityX[f.state]
}

func initJump(f *Fighter) {
	f.velocity.Y = f.character.JumpVelocity
	initMove(f)
}

func initAttack(f *Fighter) {
	f.resetVelocities()
	f.attackStruck = false
}

// startAttack enters the first held attack, lightest punch first.
func (f *Fighter) startAttack() {
	c := f.controls
	switch {
	case c.IsLightPunch():
		f.ChangeState(fighterdata.LightPunch)
	case c.IsMediumPunch():
		f.ChangeState(fighterdata.MediumPunch)
	case c.IsHeavyPunch():
		f.ChangeState(fighterdata.HeavyPunch)
	case c.IsLightKick():
		f.ChangeState(fighterdata.LightKick)
	case c.IsMediumKick():
		f.ChangeState(fighterdata.MediumKick)
	case c.IsHeavyKick():
		f.ChangeState(fighterdata.HeavyKick)
	}
}

func (f *Fighter) attackHeld(rule fighterdata.StateRule) bool {
	c := f.controls
	switch {
	case rule.AttackType == fighterdata.AttackPunch && rule.AttackStrength == fighterdata.StrengthLight:
		return c.IsLightPunch()
	case rule.AttackType == fighterdata.AttackPunch && rule.AttackStrength == fighterdata.StrengthMedium:
		return c.IsMediumPunch()
	case rule.AttackType == fighterdata.AttackPunch && rule.AttackStrength == fighterdata.StrengthHeavy:
		return c.IsHeavyPunch()
	case rule.AttackType == fighterdata.AttackKick && rule.AttackStrength == fighterdata.StrengthLight:
		return c.IsLightKick()
	case rule.AttackType == fighterdata.AttackKick && rule.AttackStrength == fighterdata.StrengthMedium:
		return c.IsMediumKick()
	case rule.AttackType == fighterdata.AttackKick && rule.AttackStrength == fighterdata.StrengthHeavy:
		return c.IsHeavyKick()
	}
	return false
}

// facingToOpponent returns the direction the fighter should face. It only
// changes once the push boxes have fully crossed.
func (f *Fighter) facingToOpponent() fighterdata.Direction {
	opp := f.Opponent()
	if opp == nil {
		return f.direction
	}
	push, oppPush := f.PushBox(), opp.PushBox()
	switch {
	case push.Right() <= oppPush.X:
		return fighterdata.Right
	case push.X >= oppPush.Right():
		return fighterdata.Left
	}
	return f.direction
}

func updateIdle(f *Fighter, _ frametime.FrameTime) {
	c := f.controls
	switch {
	case c.IsUp():
		f.ChangeState(fighterdata.JumpStart)
	case c.IsDown():
		f.ChangeState(fighterdata.CrouchDown)
	case c.IsBackward(f.direction):
		f.ChangeState(fighterdata.WalkBackward)
	case c.IsForward(f.direction):
		f.ChangeState(fighterdata.WalkForward)
	default:
		f.startAttack()
	}

	if dir := f.facingToOpponent(); dir != f.direction {
		f.direction = dir
		f.ChangeState(fighterdata.IdleTurn)
	}
}

func updateWalk(f *Fighter, held bool) {
	c := f.controls
	switch {
	case !held:
		f.ChangeState(fighterdata.Idle)
	case c.IsUp():
		f.ChangeState(fighterdata.JumpStart)
	case c.IsDown():
		f.ChangeState(fighterdata.CrouchDown)
	default:
		f.startAttack()
	}

	f.direction = f.facingToOpponent()
}

func updateWalkForward(f *Fighter, _ frametime.FrameTime) {
	updateWalk(f, f.controls.IsForward(f.direction))
}

func updateWalkBackward(f *Fighter, _ frametime.FrameTime) {
	updateWalk(f, f.controls.IsBackward(f.direction))
}

func updateJumpStart(f *Fighter, _ frametime.FrameTime) {
	if !f.animationCompleted() {
		return
	}
	c := f.controls
	switch {
	case c.IsBackward(f.direction):
		f.ChangeState(fighterdata.JumpBackward)
	case c.IsForward(f.direction):
		f.ChangeState(fighterdata.JumpForward)
	default:
		f.ChangeState(fighterdata.JumpUp)
	}
}

func updateJump(f *Fighter, t frametime.FrameTime) {
	f.velocity.Y += f.character.Gravity * t.SecondsPassed

	if f.position.Y >= f.floor {
		f.position.Y = f.floor
		f.ChangeState(fighterdata.JumpLand)
	}
}

func updateJumpLand(f *Fighter, _ frametime.FrameTime) {
	if f.animationFrame < 1 {
		return
	}

	if !f.controls.IsIdle() {
		// Held input cuts the landing short. Walking and attacks are not
		// legal straight from a landing, so they start from idle next frame.
		f.direction = f.facingToOpponent()
		if f.controls.IsUp() {
			f.ChangeState(fighterdata.JumpStart)
			return
		}
		f.ChangeState(fighterdata.Idle)
		return
	}

	if dir := f.facingToOpponent(); dir != f.direction {
		f.direction = dir
		f.ChangeState(fighterdata.IdleTurn)
		return
	}
	if f.animationCompleted() {
		f.ChangeState(fighterdata.Idle)
	}
}

func updateCrouch(f *Fighter, _ frametime.FrameTime) {
	if !f.controls.IsDown() {
		f.ChangeState(fighterdata.CrouchUp)
	}

	if dir := f.facingToOpponent(); dir != f.direction {
		f.direction = dir
		f.ChangeState(fighterdata.CrouchTurn)
	}
}

func updateCrouchDown(f *Fighter, _ frametime.FrameTime) {
	if f.animationCompleted() {
		f.ChangeState(fighterdata.Crouch)
		return
	}

	if !f.controls.IsDown() {
		// Stand back up from the mirrored point of the recovery animation
		// instead of replaying it from the start.
		up := f.character.Animation(fighterdata.CrouchUp)
		frame := len(up) - f.animationFrame
		frame = min(max(frame, 0), len(up)-1)
		f.state = fighterdata.CrouchUp
		f.setFrame(frame)
	}
}

func updateCrouchUp(f *Fighter, _ frametime.FrameTime) {
	if f.animationCompleted() {
		f.ChangeState(fighterdata.Idle)
	}
}

func updateIdleTurn(f *Fighter, t frametime.FrameTime) {
	updateIdle(f, t)
	if f.state != fighterdata.IdleTurn || !f.animationCompleted() {
		return
	}
	f.ChangeState(fighterdata.Idle)
}

func updateCrouchTurn(f *Fighter, t frametime.FrameTime) {
	updateCrouch(f, t)
	if f.state != fighterdata.CrouchTurn || !f.animationCompleted() {
		return
	}
	f.ChangeState(fighterdata.Crouch)
}

// updateAttack runs every attack state. Attacks with a cancel frame restart
// while their button stays held past that frame.
func updateAttack(f *Fighter, _ frametime.FrameTime) {
	rule := f.rule()
	if rule.CancelFrame > 0 {
		if f.animationFrame < rule.CancelFrame {
			return
		}
		if f.attackHeld(rule) {
			f.setFrame(0)
		}
	}

	if !f.animationCompleted() {
		return
	}
	f.ChangeState(fighterdata.Idle)
}
