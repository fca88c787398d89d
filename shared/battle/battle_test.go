package battle

import (
	"testing"

	"github.com/automoto/streetbrawl/shared/fighterdata"
)

func newBattle() *State {
	return New(fighterdata.Characters[fighterdata.Ryu], fighterdata.Characters[fighterdata.Ken])
}

func TestNewBattle(t *testing.T) {
	s := newBattle()
	for i, f := range s.Fighters {
		if f.HitPoints != MaxHitPoints || f.Score != 0 {
			t.Errorf("fighter %d starts with %+v", i, f)
		}
	}
	if s.Fighters[0].Name != "RYU" || s.Fighters[1].Name != "KEN" {
		t.Errorf("names = %q, %q", s.Fighters[0].Name, s.Fighters[1].Name)
	}
}

func TestApplyHit(t *testing.T) {
	tests := []struct {
		strength fighterdata.AttackStrength
		damage   int
		score    int
	}{
		{fighterdata.StrengthLight, 12, 100},
		{fighterdata.StrengthMedium, 20, 300},
		{fighterdata.StrengthHeavy, 28, 500},
	}
	for _, tt := range tests {
		s := newBattle()
		if got := s.ApplyHit(1, 0, tt.strength); got != tt.damage {
			t.Errorf("%s: damage = %d, want %d", tt.strength, got, tt.damage)
		}
		if s.Fighters[0].HitPoints != MaxHitPoints-tt.damage {
			t.Errorf("%s: target hit points = %d", tt.strength, s.Fighters[0].HitPoints)
		}
		if s.Fighters[1].Score != tt.score || s.Fighters[1].Hits != 1 {
			t.Errorf("%s: attacker = %+v", tt.strength, s.Fighters[1])
		}
		if s.Fighters[0].Score != 0 || s.Fighters[1].HitPoints != MaxHitPoints {
			t.Errorf("%s: hit changed the wrong fighter", tt.strength)
		}
	}
}

func TestHitPointsStopAtZero(t *testing.T) {
	s := newBattle()
	for i := 0; i < 10; i++ {
		s.ApplyHit(0, 1, fighterdata.StrengthHeavy)
	}
	if s.Fighters[1].HitPoints != 0 || !s.Fighters[1].KnockedOut() {
		t.Fatalf("hit points = %d", s.Fighters[1].HitPoints)
	}
	if got := s.ApplyHit(0, 1, fighterdata.StrengthLight); got != 0 {
		t.Errorf("damage on a knocked out fighter = %d", got)
	}
	if s.Leader() != 0 {
		t.Errorf("leader = %d", s.Leader())
	}
}
