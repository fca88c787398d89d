package fighter

import (
	"math"
	"testing"

	"github.com/automoto/streetbrawl/shared/control"
	"github.com/automoto/streetbrawl/shared/fighterdata"
	"github.com/automoto/streetbrawl/shared/gamemath"
)

// closeRange puts Ken just outside Ryu's push box, inside light punch reach.
func closeRange(h *harness) {
	h.p(1).SetPosition(h.p(0).Position().X+50, fighterdata.StageFloor)
}

func TestLightPunchLandsOncePerAttack(t *testing.T) {
	h := newHarness(t)
	closeRange(h)

	h.controls[0].Press(control.LightPunch)
	h.step(1)
	h.controls[0].Reset()
	h.stepUntil(60, "first punch recovery", func() bool { return h.p(0).State() == fighterdata.Idle })

	if len(h.hits) != 1 {
		t.Fatalf("hits after one punch = %d, want 1", len(h.hits))
	}
	e := h.hits[0]
	if e.AttackerSlot != 0 || e.TargetSlot != 1 || e.Strength != fighterdata.StrengthLight || e.Type != fighterdata.AttackPunch {
		t.Errorf("unexpected event %+v", e)
	}
	if e.Location != fighterdata.HurtHead {
		t.Errorf("location = %s, want head", e.Location)
	}

	h.controls[0].Press(control.LightPunch)
	h.step(1)
	h.controls[0].Reset()
	h.stepUntil(60, "second punch recovery", func() bool { return h.p(0).State() == fighterdata.Idle })
	if len(h.hits) != 2 {
		t.Fatalf("hits after two punches = %d, want 2", len(h.hits))
	}
}

func TestRapidFireDoesNotRearmHit(t *testing.T) {
	h := newHarness(t)
	closeRange(h)

	h.controls[0].Press(control.LightPunch)
	h.step(120)
	if h.p(0).State() != fighterdata.LightPunch {
		t.Fatalf("state = %s", h.p(0).State())
	}
	if len(h.hits) != 1 {
		t.Errorf("hits while holding = %d, want 1", len(h.hits))
	}
}

func TestMissDoesNotLatch(t *testing.T) {
	h := newHarness(t)
	h.controls[0].Press(control.HeavyKick)
	h.step(1)
	h.controls[0].Reset()
	for h.p(0).State() == fighterdata.HeavyKick {
		h.step(1)
		if h.p(0).AttackStruck() {
			t.Fatal("struck flag set without contact")
		}
	}
	if len(h.hits) != 0 {
		t.Fatalf("hits = %d for a whiff", len(h.hits))
	}
}

// strikeAt gives Ryu an attack state with a custom hit box, in world units
// relative to Ken's position.
func strikeAt(h *harness, box gamemath.Rect) *Fighter {
	ryu, ken := h.p(0), h.p(1)
	forceState(ryu, fighterdata.MediumKick)
	local := box
	local.X = ken.Position().X + box.X - ryu.Position().X
	ryu.boxes.Hit = local
	return ryu
}

func TestFeetOnlyOverlapReportsFeet(t *testing.T) {
	h := newHarness(t)
	ryu := strikeAt(h, gamemath.Rect{X: -10, Y: -20, W: 30, H: 10})

	ryu.updateAttackBoxCollided()

	if len(h.hits) != 1 {
		t.Fatalf("hits = %d, want 1", len(h.hits))
	}
	if h.hits[0].Location != fighterdata.HurtFeet || int(h.hits[0].Location) != 2 {
		t.Errorf("location = %s (%d), want feet (2)", h.hits[0].Location, h.hits[0].Location)
	}
	if h.hits[0].Strength != fighterdata.StrengthMedium || h.hits[0].Type != fighterdata.AttackKick {
		t.Errorf("event = %+v", h.hits[0])
	}
}

func TestHeadIsCheckedBeforeBody(t *testing.T) {
	h := newHarness(t)
	// Tall enough to cover head, body and feet.
	ryu := strikeAt(h, gamemath.Rect{X: -10, Y: -100, W: 20, H: 100})

	ryu.updateAttackBoxCollided()
	if len(h.hits) != 1 || h.hits[0].Location != fighterdata.HurtHead {
		t.Fatalf("hits = %+v, want a single head hit", h.hits)
	}

	ryu.updateAttackBoxCollided()
	if len(h.hits) != 1 {
		t.Errorf("latched attack hit again: %d hits", len(h.hits))
	}
}

func TestBodyBeforeFeet(t *testing.T) {
	h := newHarness(t)
	ryu := strikeAt(h, gamemath.Rect{X: -10, Y: -50, W: 20, H: 40})
	ryu.updateAttackBoxCollided()
	if len(h.hits) != 1 || h.hits[0].Location != fighterdata.HurtBody {
		t.Fatalf("hits = %+v, want a single body hit", h.hits)
	}
}

func TestHitPointIsJitteredMidpoint(t *testing.T) {
	h := newHarness(t)
	ryu, ken := strikeAt(h, gamemath.Rect{X: -10, Y: -20, W: 30, H: 10}), h.p(1)
	hit, _ := ryu.HitBox()
	want := gamemath.Midpoint(hit, ken.HurtBoxes()[fighterdata.HurtFeet])

	ryu.updateAttackBoxCollided()
	got := h.hits[0].Position
	if math.Abs(got.X-want.X) > hitJitter || math.Abs(got.Y-want.Y) > hitJitter {
		t.Errorf("hit point %+v is more than %v from %+v", got, hitJitter, want)
	}
}

func TestNonAttackStateNeverHits(t *testing.T) {
	h := newHarness(t)
	ryu := h.p(0)
	ryu.boxes.Hit = gamemath.Rect{X: 0, Y: -200, W: 500, H: 400}
	ryu.updateAttackBoxCollided()
	if len(h.hits) != 0 {
		t.Fatal("idle fighter reported a hit")
	}
}
