package fighterdata

import "slices"

// StateRule is the static, character independent descriptor of a state.
type StateRule struct {
	// ValidFrom lists the states a fighter may enter this state from.
	ValidFrom []StateID

	AttackType     AttackType
	AttackStrength AttackStrength

	// CancelFrame is the animation index from which a still held attack
	// button restarts the animation at frame 0. Zero disables rapid fire.
	CancelFrame int
}

// IsAttack reports whether the state owns a hit box.
func (r StateRule) IsAttack() bool {
	return r.AttackType != AttackNone
}

// Allows reports whether a transition from the given state is legal.
func (r StateRule) Allows(from StateID) bool {
	return slices.Contains(r.ValidFrom, from)
}

var neutralGround = []StateID{Idle, WalkForward, WalkBackward}

// StateRules maps every state to its descriptor.
var StateRules = map[StateID]StateRule{
	Idle: {
		ValidFrom: []StateID{
			StateNone, Idle, WalkForward, WalkBackward,
			JumpUp, JumpForward, JumpBackward,
			CrouchUp, JumpLand, IdleTurn,
			LightPunch, MediumPunch, HeavyPunch,
			LightKick, MediumKick, HeavyKick,
		},
	},
	WalkForward:  {ValidFrom: []StateID{Idle, WalkBackward}},
	WalkBackward: {ValidFrom: []StateID{Idle, WalkForward}},
	JumpStart:    {ValidFrom: []StateID{Idle, JumpLand, WalkForward, WalkBackward}},
	JumpUp:       {ValidFrom: []StateID{JumpStart}},
	JumpForward:  {ValidFrom: []StateID{JumpStart}},
	JumpBackward: {ValidFrom: []StateID{JumpStart}},
	JumpLand:     {ValidFrom: []StateID{JumpUp, JumpForward, JumpBackward}},
	Crouch:       {ValidFrom: []StateID{CrouchDown, CrouchTurn}},
	CrouchDown:   {ValidFrom: []StateID{Idle, WalkForward, WalkBackward}},
	CrouchUp:     {ValidFrom: []StateID{Crouch}},
	IdleTurn:     {ValidFrom: []StateID{Idle, JumpLand, WalkForward, WalkBackward}},
	CrouchTurn:   {ValidFrom: []StateID{Crouch}},

	LightPunch: {
		ValidFrom:      neutralGround,
		AttackType:     AttackPunch,
		AttackStrength: StrengthLight,
		CancelFrame:    2,
	},
	MediumPunch: {
		ValidFrom:      neutralGround,
		AttackType:     AttackPunch,
		AttackStrength: StrengthMedium,
	},
	HeavyPunch: {
		ValidFrom:      neutralGround,
		AttackType:     AttackPunch,
		AttackStrength: StrengthHeavy,
	},
	LightKick: {
		ValidFrom:      neutralGround,
		AttackType:     AttackKick,
		AttackStrength: StrengthLight,
		CancelFrame:    2,
	},
	MediumKick: {
		ValidFrom:      neutralGround,
		AttackType:     AttackKick,
		AttackStrength: StrengthMedium,
	},
	HeavyKick: {
		ValidFrom:      neutralGround,
		AttackType:     AttackKick,
		AttackStrength: StrengthHeavy,
	},
}

// PassiveStates are the states in which a fighter gets shoved by an
// overlapping opponent.
var PassiveStates = []StateID{Idle, Crouch, JumpUp, JumpForward, JumpBackward}

// IsPassive reports whether s is one of PassiveStates.
func IsPassive(s StateID) bool {
	return slices.Contains(PassiveStates, s)
}
