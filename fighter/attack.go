package fighter

import (
	"github.com/automoto/streetbrawl/shared/fighterdata"
	"github.com/automoto/streetbrawl/shared/gamemath"
)

// hitJitter is the maximum random offset of a hit point on each axis.
const hitJitter = 4.0

// updateAttackBoxCollided checks the hit box of an attack state against the
// opponent's hurt boxes, head first. At most one hit is reported per attack.
func (f *Fighter) updateAttackBoxCollided() {
	rule := f.rule()
	if !rule.IsAttack() || f.attackStruck {
		return
	}
	opp := f.Opponent()
	if opp == nil {
		return
	}
	hit, ok := f.HitBox()
	if !ok {
		return
	}

	for loc, hurt := range opp.HurtBoxes() {
		if hurt.Empty() || !gamemath.RectsOverlap(hit, hurt) {
			continue
		}

		point := gamemath.Midpoint(hit, hurt)
		point.X -= hitJitter - f.rng.Float64()*hitJitter*2
		point.Y -= hitJitter - f.rng.Float64()*hitJitter*2

		f.attackStruck = true
		if f.onHit != nil {
			f.onHit(AttackEvent{
				AttackerSlot: f.slot,
				TargetSlot:   opp.slot,
				Position:     point,
				Type:         rule.AttackType,
				Strength:     rule.AttackStrength,
				Location:     fighterdata.HurtLocation(loc),
			})
		}
		return
	}
}
