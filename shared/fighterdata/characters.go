package fighterdata

import (
	"errors"
	"fmt"
	"image/color"
)

// CharacterID identifies a playable character.
type CharacterID int

const (
	Ryu CharacterID = iota
	Ken
)

// Character is the per-character content a fighter is built from.
type Character struct {
	ID   CharacterID
	Name string

	// Tint is used by renderers that have no sprite sheet for the character.
	Tint color.RGBA

	Gravity      float64
	JumpVelocity float64
	// InitialVelocityX holds the facing-relative horizontal speed set when
	// a state is entered. States without an entry start at zero.
	InitialVelocityX map[StateID]float64

	Animations map[StateID]Animation
	Frames     map[string]FrameBoxes
}

// Animation returns the animation of a state. It panics on a state the
// character has no animation for; ValidateCharacter rules that out at load.
func (c *Character) Animation(s StateID) Animation {
	anim, ok := c.Animations[s]
	if !ok {
		panic(fmt.Sprintf("character %s has no animation for state %s", c.Name, s))
	}
	return anim
}

// FrameBoxes returns the boxes of a frame key, panicking on unknown keys.
func (c *Character) FrameBoxes(key string) FrameBoxes {
	boxes, ok := c.Frames[key]
	if !ok {
		panic(fmt.Sprintf("character %s has no frame %q", c.Name, key))
	}
	return boxes
}

// Characters is the roster, indexed by CharacterID.
var Characters = map[CharacterID]*Character{
	Ryu: {
		ID:           Ryu,
		Name:         "RYU",
		Tint:         color.RGBA{232, 232, 224, 255},
		Gravity:      1000,
		JumpVelocity: -420,
		InitialVelocityX: map[StateID]float64{
			WalkForward:  3 * 60,
			WalkBackward: -(2 * 60),
			JumpForward:  (48 * 3) + (12 * 2),
			JumpBackward: -((45 * 4) + (15 * 3)),
		},
		Animations: shotoAnimations,
		Frames:     shotoFrames,
	},
	Ken: {
		ID:           Ken,
		Name:         "KEN",
		Tint:         color.RGBA{214, 58, 46, 255},
		Gravity:      1000,
		JumpVelocity: -420,
		InitialVelocityX: map[StateID]float64{
			WalkForward:  3 * 60,
			WalkBackward: -(2 * 60),
			JumpForward:  (48 * 3) + (12 * 2),
			JumpBackward: -((45 * 4) + (15 * 3)),
		},
		Animations: shotoAnimations,
		Frames:     shotoFrames,
	},
}

// CharacterByName looks a character up by its display name, case sensitive.
func CharacterByName(name string) (*Character, bool) {
	for _, c := range Characters {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// ValidateCharacter checks that every state has a rule and a non-empty
// animation, that every animation frame key resolves to boxes, and that
// one-shot and rapid-fire attacks are well formed.
func ValidateCharacter(c *Character) error {
	var errs []error
	for _, s := range AllStates() {
		rule, ok := StateRules[s]
		if !ok {
			errs = append(errs, fmt.Errorf("state %s: no transition rule", s))
		}
		anim, ok := c.Animations[s]
		if !ok || len(anim) == 0 {
			errs = append(errs, fmt.Errorf("state %s: no animation", s))
			continue
		}
		hasHit := false
		for i, f := range anim {
			boxes, ok := c.Frames[f.Key]
			if !ok {
				errs = append(errs, fmt.Errorf("state %s frame %d: unknown frame key %q", s, i, f.Key))
				continue
			}
			if !boxes.Hit.Empty() {
				hasHit = true
			}
			if f.Hold < HoldTransition {
				errs = append(errs, fmt.Errorf("state %s frame %d: invalid hold %d", s, i, f.Hold))
			}
		}
		if rule.IsAttack() {
			if !hasHit {
				errs = append(errs, fmt.Errorf("state %s: attack without a hit box", s))
			}
			if !anim.Completed(len(anim) - 1) {
				errs = append(errs, fmt.Errorf("state %s: attack animation never completes", s))
			}
		}
		if rule.CancelFrame >= len(anim) {
			errs = append(errs, fmt.Errorf("state %s: cancel frame %d out of range", s, rule.CancelFrame))
		}
	}
	if len(c.Animations[JumpLand]) < 2 {
		errs = append(errs, errors.New("state jumpLand: needs at least two frames"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("character %s: %w", c.Name, err)
	}
	return nil
}

// ValidateAll validates the whole roster.
func ValidateAll() error {
	var errs []error
	for id := Ryu; id <= Ken; id++ {
		c, ok := Characters[id]
		if !ok {
			errs = append(errs, fmt.Errorf("character %d missing from roster", id))
			continue
		}
		errs = append(errs, ValidateCharacter(c))
	}
	return errors.Join(errs...)
}
