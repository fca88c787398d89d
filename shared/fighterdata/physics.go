package fighterdata

// FrameTimeMs is the length of one animation tick in milliseconds.
const FrameTimeMs = 1000.0 / 60.0

// Stage geometry in world units.
const (
	StageWidth    = 768.0
	StagePadding  = 100.0
	StageMidPoint = StageWidth / 2
	StageFloor    = 176.0

	// FighterStartDistance is the distance of each fighter from the stage
	// middle at the start of a battle.
	FighterStartDistance = 88.0

	// PushFriction is how fast a passive fighter is shoved, in units per second.
	PushFriction = 66.0
)

// StartPosition returns the spawn x and facing for a player slot.
func StartPosition(slot int) (x float64, dir Direction) {
	if slot == 0 {
		return StageMidPoint + StagePadding - FighterStartDistance, Right
	}
	return StageMidPoint + StagePadding + FighterStartDistance, Left
}
