package fighterdata

import (
	"strings"
	"testing"
)

func TestRosterIsValid(t *testing.T) {
	if err := ValidateAll(); err != nil {
		t.Fatalf("roster failed validation: %v", err)
	}
}

func TestValidateCharacterReportsMissingFrame(t *testing.T) {
	c := *Characters[Ryu]
	c.Frames = map[string]FrameBoxes{}
	for k, v := range shotoFrames {
		if k != "crouch-2" {
			c.Frames[k] = v
		}
	}

	err := ValidateCharacter(&c)
	if err == nil {
		t.Fatal("expected an error for a missing frame key")
	}
	if !strings.Contains(err.Error(), `"crouch-2"`) {
		t.Errorf("error does not name the missing key: %v", err)
	}
}

func TestValidateCharacterReportsMissingAnimation(t *testing.T) {
	c := *Characters[Ken]
	c.Animations = map[StateID]Animation{}
	for s, a := range shotoAnimations {
		if s != HeavyKick {
			c.Animations[s] = a
		}
	}

	err := ValidateCharacter(&c)
	if err == nil || !strings.Contains(err.Error(), "heavyKick") {
		t.Fatalf("expected missing heavyKick animation, got %v", err)
	}
}

func TestEveryStateHasARule(t *testing.T) {
	for _, s := range AllStates() {
		if _, ok := StateRules[s]; !ok {
			t.Errorf("state %s has no rule", s)
		}
	}
	if len(AllStates()) != int(StateCount) {
		t.Fatalf("AllStates returned %d states, want %d", len(AllStates()), StateCount)
	}
}

func TestAttackRules(t *testing.T) {
	tests := []struct {
		state    StateID
		typ      AttackType
		strength AttackStrength
		cancel   int
	}{
		{LightPunch, AttackPunch, StrengthLight, 2},
		{MediumPunch, AttackPunch, StrengthMedium, 0},
		{HeavyPunch, AttackPunch, StrengthHeavy, 0},
		{LightKick, AttackKick, StrengthLight, 2},
		{MediumKick, AttackKick, StrengthMedium, 0},
		{HeavyKick, AttackKick, StrengthHeavy, 0},
	}
	for _, tt := range tests {
		rule := StateRules[tt.state]
		if rule.AttackType != tt.typ || rule.AttackStrength != tt.strength || rule.CancelFrame != tt.cancel {
			t.Errorf("%s: got %s/%s cancel %d", tt.state, rule.AttackType, rule.AttackStrength, rule.CancelFrame)
		}
		for _, from := range []StateID{Idle, WalkForward, WalkBackward} {
			if !rule.Allows(from) {
				t.Errorf("%s should be reachable from %s", tt.state, from)
			}
		}
		if rule.Allows(Crouch) || rule.Allows(JumpUp) {
			t.Errorf("%s should only start from neutral ground states", tt.state)
		}
	}
}

func TestOnlyIdleIsReachableFromNone(t *testing.T) {
	for _, s := range AllStates() {
		if got := StateRules[s].Allows(StateNone); got != (s == Idle) {
			t.Errorf("%s allows none = %v", s, got)
		}
	}
}

func TestPassiveStates(t *testing.T) {
	for _, s := range AllStates() {
		want := s == Idle || s == Crouch || s == JumpUp || s == JumpForward || s == JumpBackward
		if IsPassive(s) != want {
			t.Errorf("IsPassive(%s) = %v, want %v", s, !want, want)
		}
	}
}

func TestStartPositions(t *testing.T) {
	x0, d0 := StartPosition(0)
	x1, d1 := StartPosition(1)
	if d0 != Right || d1 != Left {
		t.Fatalf("directions = %s, %s", d0, d1)
	}
	if x1-x0 != 2*FighterStartDistance {
		t.Errorf("start distance = %v, want %v", x1-x0, 2*FighterStartDistance)
	}
	if mid := (x0 + x1) / 2; mid != StageMidPoint+StagePadding {
		t.Errorf("fighters centered on %v, want %v", mid, StageMidPoint+StagePadding)
	}
}

func TestStateNames(t *testing.T) {
	if StateNone.String() != "none" || JumpLand.String() != "jumpLand" || StateID(99).String() != "unknown" {
		t.Errorf("unexpected names: %s %s %s", StateNone, JumpLand, StateID(99))
	}
}
