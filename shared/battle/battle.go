// Package battle keeps the per-fighter bookkeeping of a battle: hit points
// and score. Landed attacks are applied to it by the scene.
package battle

import "github.com/automoto/streetbrawl/shared/fighterdata"

// MaxHitPoints is the health of a fighter at the start of a battle.
const MaxHitPoints = 144

// Reward is what a landed attack costs the target and earns the attacker.
type Reward struct {
	Damage int
	Score  int
}

// Rewards is indexed by attack strength.
var Rewards = [fighterdata.StrengthCount]Reward{
	fighterdata.StrengthLight:  {Damage: 12, Score: 100},
	fighterdata.StrengthMedium: {Damage: 20, Score: 300},
	fighterdata.StrengthHeavy:  {Damage: 28, Score: 500},
}

// FighterStatus is the bookkeeping of one player slot.
type FighterStatus struct {
	Character fighterdata.CharacterID
	Name      string
	Score     int
	HitPoints int
	Hits      int
}

// KnockedOut reports whether the fighter has no hit points left.
func (s FighterStatus) KnockedOut() bool {
	return s.HitPoints <= 0
}

// State is the bookkeeping of both player slots.
type State struct {
	Fighters [2]FighterStatus
}

// New starts a battle between two characters.
func New(p1, p2 *fighterdata.Character) *State {
	s := &State{}
	for i, c := range [2]*fighterdata.Character{p1, p2} {
		s.Fighters[i] = FighterStatus{
			Character: c.ID,
			Name:      c.Name,
			HitPoints: MaxHitPoints,
		}
	}
	return s
}

// ApplyHit charges a landed attack and returns the damage dealt. Hit points
// never drop below zero.
func (s *State) ApplyHit(attacker, target int, strength fighterdata.AttackStrength) int {
	reward := Rewards[strength]
	t := &s.Fighters[target]
	damage := min(reward.Damage, t.HitPoints)
	t.HitPoints -= damage

	a := &s.Fighters[attacker]
	a.Score += reward.Score
	a.Hits++
	return damage
}

// Leader returns the slot with the higher score, or -1 on a tie.
func (s *State) Leader() int {
	switch {
	case s.Fighters[0].Score > s.Fighters[1].Score:
		return 0
	case s.Fighters[1].Score > s.Fighters[0].Score:
		return 1
	}
	return -1
}
