// Package fighter implements a combatant: its state machine, animation
// timing, stage and opponent constraints, and attack hit detection.
//
// A fighter is updated once per frame in a fixed order: velocity
// integration, state update, animation advance, constraint resolution and
// finally attack resolution. The package has no dependency on ebiten.
package fighter

import (
	"log"
	"math/rand/v2"

	"github.com/automoto/streetbrawl/shared/fighterdata"
	"github.com/automoto/streetbrawl/shared/frametime"
	"github.com/automoto/streetbrawl/shared/gamemath"
	"github.com/yohamta/donburi/features/math"
)

// warnf reports non-fatal problems such as rejected transitions.
var warnf = log.Printf

// debugf reports repeats of a problem already warned about. It is silent
// unless SetVerbose(true) was called.
var debugf = func(string, ...any) {}

// SetVerbose makes the package log every repeated rejection, not only the
// first of a run.
func SetVerbose(verbose bool) {
	if verbose {
		debugf = log.Printf
		return
	}
	debugf = func(string, ...any) {}
}

// Controls is the input a fighter reads during its state update. Every
// query must return the same answer for the whole frame.
type Controls interface {
	IsUp() bool
	IsDown() bool
	IsForward(dir fighterdata.Direction) bool
	IsBackward(dir fighterdata.Direction) bool
	IsLightPunch() bool
	IsMediumPunch() bool
	IsHeavyPunch() bool
	IsLightKick() bool
	IsMediumKick() bool
	IsHeavyKick() bool
	IsIdle() bool
}

// AttackEvent describes a landed attack.
type AttackEvent struct {
	AttackerSlot int
	TargetSlot   int
	Position     math.Vec2
	Type         fighterdata.AttackType
	Strength     fighterdata.AttackStrength
	Location     fighterdata.HurtLocation
}

// HitHandler is called when an attack lands. Damage and score are the
// handler's business.
type HitHandler func(AttackEvent)

// Fighter is one combatant.
type Fighter struct {
	slot      int
	character *fighterdata.Character
	pair      *Pair
	onHit     HitHandler
	rng       *rand.Rand
	floor     float64

	position  math.Vec2
	velocity  math.Vec2
	direction fighterdata.Direction

	state          fighterdata.StateID
	animationFrame int
	animationTimer float64
	boxes          fighterdata.FrameBoxes
	attackStruck   bool

	// now is the animation clock of the frame being updated.
	now      float64
	controls Controls

	lastRejected [2]fighterdata.StateID
}

// New creates the fighter of a player slot at its start position, already
// in the idle state.
func New(slot int, character *fighterdata.Character, onHit HitHandler) *Fighter {
	x, dir := fighterdata.StartPosition(slot)
	f := &Fighter{
		slot:         slot,
		character:    character,
		onHit:        onHit,
		rng:          rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		floor:        fighterdata.StageFloor,
		position:     math.NewVec2(x, fighterdata.StageFloor),
		direction:    dir,
		state:        fighterdata.StateNone,
		controls:     noControls{},
		lastRejected: noRejection,
	}
	f.ChangeState(fighterdata.Idle)
	return f
}

// SetRand replaces the source of the hit point jitter.
func (f *Fighter) SetRand(r *rand.Rand) { f.rng = r }

// SetFloor moves the landing height, for stages with a different floor.
func (f *Fighter) SetFloor(y float64) { f.floor = y }

// SetPosition places the fighter, e.g. at a stage spawn point.
func (f *Fighter) SetPosition(x, y float64) {
	f.position = math.NewVec2(x, y)
}

// SetDirection changes the facing without a turn animation.
func (f *Fighter) SetDirection(d fighterdata.Direction) { f.direction = d }

// Slot is the player slot, 0 or 1.
func (f *Fighter) Slot() int { return f.slot }

// Character is the content the fighter was built from.
func (f *Fighter) Character() *fighterdata.Character { return f.character }

// Position is the fighter's origin in stage units, at the feet.
func (f *Fighter) Position() math.Vec2 { return f.position }

// Velocity is in stage units per second.
func (f *Fighter) Velocity() math.Vec2 { return f.velocity }

// Direction is the current facing.
func (f *Fighter) Direction() fighterdata.Direction { return f.direction }

// State is the current state of the state machine.
func (f *Fighter) State() fighterdata.StateID { return f.state }

// AnimationFrame is the cursor into the current state's animation.
func (f *Fighter) AnimationFrame() int { return f.animationFrame }

// Boxes are the fighter-local boxes of the current frame.
func (f *Fighter) Boxes() fighterdata.FrameBoxes { return f.boxes }

// AttackStruck reports whether the current attack already landed.
func (f *Fighter) AttackStruck() bool { return f.attackStruck }

// Floor is the y position the fighter lands on.
func (f *Fighter) Floor() float64 { return f.floor }

// FrameKey names the current animation frame.
func (f *Fighter) FrameKey() string { return f.animation()[f.animationFrame].Key }

// Opponent returns the other fighter of the pair, or nil before the fighter
// joined a pair.
func (f *Fighter) Opponent() *Fighter {
	if f.pair == nil {
		return nil
	}
	return f.pair[1-f.slot]
}

func (f *Fighter) worldBox(b gamemath.Rect) gamemath.Rect {
	return gamemath.WorldBox(f.position, f.direction.Sign(), b)
}

// PushBox returns the push box in world space.
func (f *Fighter) PushBox() gamemath.Rect {
	return f.worldBox(f.boxes.Push)
}

// HurtBoxes returns the head, body and feet boxes in world space.
func (f *Fighter) HurtBoxes() [fighterdata.HurtCount]gamemath.Rect {
	var out [fighterdata.HurtCount]gamemath.Rect
	for i, b := range f.boxes.Hurt {
		out[i] = f.worldBox(b)
	}
	return out
}

// HitBox returns the hit box in world space. ok is false when the current
// frame does not strike.
func (f *Fighter) HitBox() (box gamemath.Rect, ok bool) {
	if f.boxes.Hit.Empty() {
		return gamemath.Rect{}, false
	}
	return f.worldBox(f.boxes.Hit), true
}

// Update advances the fighter by one frame. camera is the visible part of
// the stage in world coordinates; the fighter is kept inside it.
func (f *Fighter) Update(t frametime.FrameTime, controls Controls, camera gamemath.Rect) {
	f.now = t.Previous
	f.controls = controls
	if f.controls == nil {
		f.controls = noControls{}
	}

	f.position.X += f.velocity.X * f.direction.Sign() * t.SecondsPassed
	f.position.Y += f.velocity.Y * t.SecondsPassed

	if h := handlers[f.state].update; h != nil {
		h(f, t)
	}

	f.updateAnimation(t)
	f.updateStageConstraints(t, camera)
	f.updateAttackBoxCollided()
}

func (f *Fighter) resetVelocities() {
	f.velocity = math.Vec2{}
}

// noControls is used when a fighter is updated without input.
type noControls struct{}

func (noControls) IsUp() bool                           { return false }
func (noControls) IsDown() bool                         { return false }
func (noControls) IsForward(fighterdata.Direction) bool  { return false }
func (noControls) IsBackward(fighterdata.Direction) bool { return false }
func (noControls) IsLightPunch() bool                   { return false }
func (noControls) IsMediumPunch() bool                  { return false }
func (noControls) IsHeavyPunch() bool                   { return false }
func (noControls) IsLightKick() bool                    { return false }
func (noControls) IsMediumKick() bool                   { return false }
func (noControls) IsHeavyKick() bool                    { return false }
func (noControls) IsIdle() bool                         { return true }
