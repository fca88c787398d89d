// Package control is the per-player input snapshot the fighters query. The
// snapshot is filled once per frame by the input system and is read only
// afterwards, so every query returns the same answer within a frame.
package control

import "github.com/automoto/streetbrawl/shared/fighterdata"

// Control is a logical button of a player.
type Control int

const (
	Left Control = iota
	Right
	Up
	Down
	LightPunch
	MediumPunch
	HeavyPunch
	LightKick
	MediumKick
	HeavyKick
	ControlCount // Must be last - used for array sizing
)

var controlNames = [ControlCount]string{
	Left:        "left",
	Right:       "right",
	Up:          "up",
	Down:        "down",
	LightPunch:  "lightPunch",
	MediumPunch: "mediumPunch",
	HeavyPunch:  "heavyPunch",
	LightKick:   "lightKick",
	MediumKick:  "mediumKick",
	HeavyKick:   "heavyKick",
}

func (c Control) String() string {
	if c < 0 || c >= ControlCount {
		return "unknown"
	}
	return controlNames[c]
}

// Snapshot holds which controls of one player are held this frame.
type Snapshot struct {
	Held [ControlCount]bool
}

// Press marks controls as held. It is a convenience for tests and replays.
func (s *Snapshot) Press(cs ...Control) {
	for _, c := range cs {
		s.Held[c] = true
	}
}

// Release marks controls as not held.
func (s *Snapshot) Release(cs ...Control) {
	for _, c := range cs {
		s.Held[c] = false
	}
}

// Reset releases every control.
func (s *Snapshot) Reset() {
	s.Held = [ControlCount]bool{}
}

func (s *Snapshot) IsUp() bool   { return s.Held[Up] }
func (s *Snapshot) IsDown() bool { return s.Held[Down] }

// IsForward reports whether the player holds toward the way they face.
func (s *Snapshot) IsForward(dir fighterdata.Direction) bool {
	if dir == fighterdata.Right {
		return s.Held[Right]
	}
	return s.Held[Left]
}

// IsBackward reports whether the player holds away from the way they face.
func (s *Snapshot) IsBackward(dir fighterdata.Direction) bool {
	if dir == fighterdata.Left {
		return s.Held[Right]
	}
	return s.Held[Left]
}

func (s *Snapshot) IsLightPunch() bool  { return s.Held[LightPunch] }
func (s *Snapshot) IsMediumPunch() bool { return s.Held[MediumPunch] }
func (s *Snapshot) IsHeavyPunch() bool  { return s.Held[HeavyPunch] }
func (s *Snapshot) IsLightKick() bool   { return s.Held[LightKick] }
func (s *Snapshot) IsMediumKick() bool  { return s.Held[MediumKick] }
func (s *Snapshot) IsHeavyKick() bool   { return s.Held[HeavyKick] }

// IsIdle reports whether no control is held.
func (s *Snapshot) IsIdle() bool {
	for _, held := range s.Held {
		if held {
			return false
		}
	}
	return true
}
