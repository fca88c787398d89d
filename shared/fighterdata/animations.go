package fighterdata

// AnimationFrame is one entry of an animation: the frame to show and how
// long to hold it. Hold is a tick count, HoldFreeze or HoldTransition.
type AnimationFrame struct {
	Key  string
	Hold int
}

// Animation is the ordered frame sequence of a state.
type Animation []AnimationFrame

// Completed reports whether the entry at index marks the end of a one-shot
// animation.
func (a Animation) Completed(index int) bool {
	return a[index].Hold == HoldTransition
}

var shotoAnimations = map[StateID]Animation{
	Idle: {
		{"idle-1", 4}, {"idle-2", 4}, {"idle-3", 4},
		{"idle-4", 4}, {"idle-3", 4}, {"idle-2", 4},
	},
	WalkForward: {
		{"forwards-1", 3}, {"forwards-2", 6}, {"forwards-3", 4},
		{"forwards-4", 4}, {"forwards-5", 4}, {"forwards-6", 6},
	},
	WalkBackward: {
		{"backwards-1", 3}, {"backwards-2", 6}, {"backwards-3", 4},
		{"backwards-4", 4}, {"backwards-5", 4}, {"backwards-6", 6},
	},
	JumpStart: {
		{"jump-land", 3}, {"jump-land", HoldTransition},
	},
	JumpUp: {
		{"jump-up-1", 8}, {"jump-up-2", 8}, {"jump-up-3", 8},
		{"jump-up-4", 8}, {"jump-up-5", 8}, {"jump-up-6", HoldFreeze},
	},
	JumpForward: {
		{"jump-roll-1", 13}, {"jump-roll-2", 5}, {"jump-roll-3", 3},
		{"jump-roll-4", 3}, {"jump-roll-5", 3}, {"jump-roll-6", 5},
		{"jump-up-6", HoldFreeze},
	},
	JumpBackward: {
		{"jump-roll-6", 15}, {"jump-roll-5", 3}, {"jump-roll-4", 3},
		{"jump-roll-3", 3}, {"jump-roll-2", 3}, {"jump-roll-1", 3},
		{"jump-up-6", HoldFreeze},
	},
	JumpLand: {
		{"jump-land", 2}, {"jump-land", 10}, {"jump-land", HoldTransition},
	},
	Crouch: {
		{"crouch-3", HoldFreeze},
	},
	CrouchDown: {
		{"crouch-1", 2}, {"crouch-2", 2}, {"crouch-3", 2}, {"crouch-3", HoldTransition},
	},
	CrouchUp: {
		{"crouch-3", 2}, {"crouch-2", 2}, {"crouch-1", 2}, {"crouch-1", HoldTransition},
	},
	IdleTurn: {
		{"idle-turn-3", 2}, {"idle-turn-2", 2}, {"idle-turn-1", 2}, {"idle-turn-1", HoldTransition},
	},
	CrouchTurn: {
		{"crouch-turn-3", 2}, {"crouch-turn-2", 2}, {"crouch-turn-1", 2}, {"crouch-turn-1", HoldTransition},
	},
	LightPunch: {
		{"light-punch-1", 2}, {"light-punch-2", 4}, {"light-punch-1", 4}, {"light-punch-1", HoldTransition},
	},
	MediumPunch: {
		{"med-punch-1", 1}, {"med-punch-2", 2}, {"med-punch-3", 4},
		{"med-punch-2", 3}, {"med-punch-1", 3}, {"med-punch-1", HoldTransition},
	},
	HeavyPunch: {
		{"heavy-punch-1", 3}, {"heavy-punch-2", 2}, {"heavy-punch-3", 6},
		{"heavy-punch-2", 10}, {"heavy-punch-1", 12}, {"heavy-punch-1", HoldTransition},
	},
	LightKick: {
		{"light-kick-1", 3}, {"light-kick-2", 8}, {"light-kick-1", 4}, {"light-kick-1", HoldTransition},
	},
	MediumKick: {
		{"med-kick-2", 5}, {"light-kick-1", 6}, {"med-kick-1", 12},
		{"light-kick-1", 7}, {"med-kick-2", HoldTransition},
	},
	HeavyKick: {
		{"heavy-kick-1", 2}, {"heavy-kick-2", 4}, {"heavy-kick-3", 8},
		{"heavy-kick-4", 10}, {"heavy-kick-5", 7}, {"heavy-kick-5", HoldTransition},
	},
}
