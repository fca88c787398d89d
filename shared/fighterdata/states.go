// Package fighterdata holds the static content tables of the fighting game:
// fighter states and their transition rules, animation sequences, per-frame
// collision boxes and character definitions. It has no dependency on ebiten
// so the fighter logic can be exercised in plain unit tests.
package fighterdata

// StateID identifies a fighter state for animation and logic.
type StateID int

// StateNone is the state of a fighter before its first transition.
const StateNone StateID = -1

const (
	Idle StateID = iota
	WalkForward
	WalkBackward
	JumpStart
	JumpUp
	JumpForward
	JumpBackward
	JumpLand
	Crouch
	CrouchDown
	CrouchUp
	IdleTurn
	CrouchTurn
	LightPunch
	MediumPunch
	HeavyPunch
	LightKick
	MediumKick
	HeavyKick
	StateCount // Must be last - used for array sizing
)

var stateNames = [StateCount]string{
	Idle:         "idle",
	WalkForward:  "walkForwards",
	WalkBackward: "walkBackwards",
	JumpStart:    "jumpStart",
	JumpUp:       "jumpUp",
	JumpForward:  "jumpForwards",
	JumpBackward: "jumpBackwards",
	JumpLand:     "jumpLand",
	Crouch:       "crouch",
	CrouchDown:   "crouchDown",
	CrouchUp:     "crouchUp",
	IdleTurn:     "idleTurn",
	CrouchTurn:   "crouchTurn",
	LightPunch:   "lightPunch",
	MediumPunch:  "mediumPunch",
	HeavyPunch:   "heavyPunch",
	LightKick:    "lightKick",
	MediumKick:   "mediumKick",
	HeavyKick:    "heavyKick",
}

func (s StateID) String() string {
	if s == StateNone {
		return "none"
	}
	if s < 0 || s >= StateCount {
		return "unknown"
	}
	return stateNames[s]
}

// AllStates lists every real state in declaration order.
func AllStates() []StateID {
	states := make([]StateID, 0, StateCount)
	for s := Idle; s < StateCount; s++ {
		states = append(states, s)
	}
	return states
}

// Direction is the facing of a fighter. It is used as a multiplicative sign
// for fighter-local x coordinates and velocities.
type Direction int

const (
	Left  Direction = -1
	Right Direction = 1
)

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// Sign returns the direction as a float multiplier.
func (d Direction) Sign() float64 {
	return float64(d)
}

// AttackType is the limb an attack state uses.
type AttackType int

const (
	AttackNone AttackType = iota
	AttackPunch
	AttackKick
)

func (a AttackType) String() string {
	switch a {
	case AttackPunch:
		return "punch"
	case AttackKick:
		return "kick"
	default:
		return "none"
	}
}

// AttackStrength grades an attack for damage and score.
type AttackStrength int

const (
	StrengthLight AttackStrength = iota
	StrengthMedium
	StrengthHeavy
	StrengthCount
)

func (s AttackStrength) String() string {
	switch s {
	case StrengthLight:
		return "light"
	case StrengthMedium:
		return "medium"
	case StrengthHeavy:
		return "heavy"
	default:
		return "unknown"
	}
}

// HurtLocation indexes the three hurt boxes of a frame.
type HurtLocation int

const (
	HurtHead HurtLocation = iota
	HurtBody
	HurtFeet
	HurtCount
)

func (l HurtLocation) String() string {
	switch l {
	case HurtHead:
		return "head"
	case HurtBody:
		return "body"
	case HurtFeet:
		return "feet"
	default:
		return "unknown"
	}
}

// Hold values with special meaning in an animation entry. Any positive hold
// is the number of frames to show the entry before advancing.
const (
	// HoldFreeze never advances on its own.
	HoldFreeze = 0
	// HoldTransition marks the end of a one-shot animation.
	HoldTransition = -2
)
