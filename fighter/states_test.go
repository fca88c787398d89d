package fighter

import (
	"testing"

	"github.com/automoto/streetbrawl/shared/control"
	"github.com/automoto/streetbrawl/shared/fighterdata"
	"github.com/automoto/streetbrawl/shared/frametime"
)

// forceState puts a fighter into a state without running any handler.
func forceState(f *Fighter, s fighterdata.StateID) {
	f.state = s
	if s != fighterdata.StateNone {
		f.setFrame(0)
	}
}

func TestSameStateTransitionIsRejected(t *testing.T) {
	warnings := countWarnings(t)
	for _, s := range fighterdata.AllStates() {
		h := newHarness(t)
		f := h.p(0)
		forceState(f, s)
		f.animationFrame = len(f.animation()) - 1
		f.velocity.X = 42
		before := *f

		if f.ChangeState(s) {
			t.Errorf("%s -> %s was accepted", s, s)
		}
		if f.state != before.state || f.animationFrame != before.animationFrame || f.velocity != before.velocity {
			t.Errorf("%s: rejected transition mutated the fighter", s)
		}
	}
	if *warnings != len(fighterdata.AllStates()) {
		t.Errorf("warnings = %d, want one per state", *warnings)
	}
}

func TestTransitionLegalityMatchesRules(t *testing.T) {
	countWarnings(t)
	orig := handlers
	t.Cleanup(func() { handlers = orig })

	var inits [fighterdata.StateCount]int
	for s := range handlers {
		init := orig[s].init
		handlers[s].init = func(f *Fighter) {
			inits[s]++
			if init != nil {
				init(f)
			}
		}
	}

	from := append([]fighterdata.StateID{fighterdata.StateNone}, fighterdata.AllStates()...)
	for _, a := range from {
		for _, b := range fighterdata.AllStates() {
			if a == b {
				continue
			}
			f := New(0, fighterdata.Characters[fighterdata.Ryu], nil)
			forceState(f, a)
			if a != fighterdata.StateNone {
				f.animationFrame = len(f.animation()) - 1
			}
			inits = [fighterdata.StateCount]int{}

			want := fighterdata.StateRules[b].Allows(a)
			got := f.ChangeState(b)
			if got != want {
				t.Errorf("%s -> %s: accepted = %v, want %v", a, b, got, want)
				continue
			}
			if !got {
				if f.State() != a || inits[b] != 0 {
					t.Errorf("%s -> %s: rejected transition changed the fighter", a, b)
				}
				continue
			}
			if f.State() != b || f.AnimationFrame() != 0 {
				t.Errorf("%s -> %s: state %s frame %d", a, b, f.State(), f.AnimationFrame())
			}
			if inits[b] != 1 {
				t.Errorf("%s -> %s: init ran %d times", a, b, inits[b])
			}
		}
	}
}

func TestRepeatedRejectionWarnsOnce(t *testing.T) {
	warnings := countWarnings(t)
	f := New(0, fighterdata.Characters[fighterdata.Ryu], nil)

	for i := 0; i < 5; i++ {
		f.ChangeState(fighterdata.JumpLand)
	}
	if *warnings != 1 {
		t.Fatalf("warnings = %d, want 1", *warnings)
	}
	f.ChangeState(fighterdata.Crouch)
	if *warnings != 2 {
		t.Fatalf("a different rejection should warn again, got %d", *warnings)
	}
	f.ChangeState(fighterdata.WalkForward)
	f.ChangeState(fighterdata.Crouch)
	if *warnings != 3 {
		t.Fatalf("a successful transition should re-arm the warning, got %d", *warnings)
	}
}

func TestEveryRejectionIsLogged(t *testing.T) {
	warnings := countWarnings(t)
	var repeats int
	orig := debugf
	debugf = func(string, ...any) { repeats++ }
	t.Cleanup(func() { debugf = orig })

	f := New(0, fighterdata.Characters[fighterdata.Ryu], nil)
	for i := 0; i < 5; i++ {
		if f.ChangeState(fighterdata.Idle) {
			t.Fatal("same-state transition accepted")
		}
	}
	if *warnings != 1 || repeats != 4 {
		t.Fatalf("warnings = %d, repeats = %d, want 1 and 4", *warnings, repeats)
	}
}

func TestOneStateUpdatePerFrame(t *testing.T) {
	countWarnings(t)
	orig := handlers
	t.Cleanup(func() { handlers = orig })

	calls := 0
	for s := range handlers {
		update := orig[s].update
		handlers[s].update = func(f *Fighter, ft frametime.FrameTime) {
			calls++
			update(f, ft)
		}
	}

	h := newHarness(t)
	script := []struct {
		frames   int
		controls []control.Control
	}{
		{40, []control.Control{control.Up}},
		{20, []control.Control{control.Down}},
		{5, nil},
		{30, []control.Control{control.Right, control.LightPunch}},
		{30, []control.Control{control.HeavyKick}},
		{30, []control.Control{control.Up, control.Right}},
		{30, nil},
	}
	for _, part := range script {
		h.controls[0].Reset()
		h.controls[0].Press(part.controls...)
		for i := 0; i < part.frames; i++ {
			calls = 0
			h.step(1)
			if calls != 2 {
				t.Fatalf("frame with %v: %d state updates for two fighters", part.controls, calls)
			}
		}
	}
}

func TestInputPriority(t *testing.T) {
	tests := []struct {
		held []control.Control
		want fighterdata.StateID
	}{
		{[]control.Control{control.Up, control.Down, control.LightPunch}, fighterdata.JumpStart},
		{[]control.Control{control.Down, control.Left, control.Right}, fighterdata.CrouchDown},
		{[]control.Control{control.Left, control.Right}, fighterdata.WalkBackward},
		{[]control.Control{control.Right, control.HeavyKick}, fighterdata.WalkForward},
		{[]control.Control{control.LightPunch, control.MediumPunch}, fighterdata.LightPunch},
		{[]control.Control{control.MediumPunch, control.HeavyPunch}, fighterdata.MediumPunch},
		{[]control.Control{control.HeavyPunch, control.LightKick}, fighterdata.HeavyPunch},
		{[]control.Control{control.LightKick, control.MediumKick}, fighterdata.LightKick},
		{[]control.Control{control.MediumKick, control.HeavyKick}, fighterdata.MediumKick},
		{[]control.Control{control.HeavyKick}, fighterdata.HeavyKick},
	}
	for _, tt := range tests {
		h := newHarness(t)
		h.controls[0].Press(tt.held...)
		h.step(1)
		if got := h.p(0).State(); got != tt.want {
			t.Errorf("holding %v: state %s, want %s", tt.held, got, tt.want)
		}
	}
}

func TestAttacksResetVelocityAndReturnToIdle(t *testing.T) {
	h := newHarness(t)
	h.controls[0].Press(control.Right)
	h.step(3)
	if h.p(0).Velocity().X == 0 {
		t.Fatal("walking fighter has no velocity")
	}

	h.controls[0].Press(control.HeavyPunch)
	h.step(1)
	if h.p(0).State() != fighterdata.HeavyPunch {
		t.Fatalf("state = %s", h.p(0).State())
	}
	if h.p(0).Velocity().X != 0 {
		t.Error("attack did not reset velocity")
	}

	h.controls[0].Reset()
	h.stepUntil(120, "heavy punch recovery", func() bool { return h.p(0).State() == fighterdata.Idle })
}

func TestJumpStartPicksVariant(t *testing.T) {
	tests := []struct {
		held []control.Control
		want fighterdata.StateID
	}{
		{[]control.Control{control.Up}, fighterdata.JumpUp},
		{[]control.Control{control.Up, control.Right}, fighterdata.JumpForward},
		{[]control.Control{control.Up, control.Left}, fighterdata.JumpBackward},
	}
	for _, tt := range tests {
		h := newHarness(t)
		h.controls[0].Press(control.Up)
		h.step(1)
		if h.p(0).State() != fighterdata.JumpStart {
			t.Fatalf("state = %s, want jumpStart", h.p(0).State())
		}
		h.controls[0].Reset()
		h.controls[0].Press(tt.held...)
		h.stepUntil(30, "take off", func() bool { return h.p(0).State() != fighterdata.JumpStart })
		if got := h.p(0).State(); got != tt.want {
			t.Errorf("holding %v: %s, want %s", tt.held, got, tt.want)
		}
		if h.p(0).Velocity().Y >= 0 {
			t.Errorf("%s: no upward impulse", tt.want)
		}
	}
}

func TestCrouchCycle(t *testing.T) {
	h := newHarness(t)
	h.controls[0].Press(control.Down)
	h.step(1)
	if h.p(0).State() != fighterdata.CrouchDown {
		t.Fatalf("state = %s", h.p(0).State())
	}
	h.stepUntil(30, "crouch", func() bool { return h.p(0).State() == fighterdata.Crouch })

	h.step(20)
	if h.p(0).State() != fighterdata.Crouch || h.p(0).AnimationFrame() != 0 {
		t.Fatalf("held crouch should freeze: %s frame %d", h.p(0).State(), h.p(0).AnimationFrame())
	}

	h.controls[0].Release(control.Down)
	h.step(1)
	if h.p(0).State() != fighterdata.CrouchUp {
		t.Fatalf("state after release = %s", h.p(0).State())
	}
	h.stepUntil(30, "stand up", func() bool { return h.p(0).State() == fighterdata.Idle })
}

func TestCrouchDownReleaseMirrorsIntoCrouchUp(t *testing.T) {
	h := newHarness(t)
	h.controls[0].Press(control.Down)
	h.step(1)
	h.stepUntil(10, "second crouch frame", func() bool { return h.p(0).AnimationFrame() == 1 })

	h.controls[0].Release(control.Down)
	h.step(1)

	f := h.p(0)
	up := f.Character().Animation(fighterdata.CrouchUp)
	if f.State() != fighterdata.CrouchUp {
		t.Fatalf("state = %s, want crouchUp", f.State())
	}
	if want := len(up) - 1; f.AnimationFrame() != want {
		t.Errorf("frame = %d, want %d", f.AnimationFrame(), want)
	}
	if f.Boxes() != f.Character().FrameBoxes(up[f.AnimationFrame()].Key) {
		t.Error("boxes not refreshed for the mirrored frame")
	}
	h.stepUntil(10, "stand up", func() bool { return f.State() == fighterdata.Idle })
}

func TestCrouchDownReleaseClampsFrame(t *testing.T) {
	h := newHarness(t)
	f := h.p(0)
	forceState(f, fighterdata.CrouchDown)

	updateCrouchDown(f, frametime.FrameTime{})
	if f.State() != fighterdata.CrouchUp {
		t.Fatalf("state = %s", f.State())
	}
	if last := len(f.Character().Animation(fighterdata.CrouchUp)) - 1; f.AnimationFrame() != last {
		t.Errorf("frame = %d, want clamp to %d", f.AnimationFrame(), last)
	}
}

func TestFightersTurnWhenCrossed(t *testing.T) {
	h := newHarness(t)
	h.p(1).SetPosition(300, fighterdata.StageFloor)
	h.step(1)

	if h.p(0).Direction() != fighterdata.Left || h.p(0).State() != fighterdata.IdleTurn {
		t.Errorf("ryu: %s %s", h.p(0).Direction(), h.p(0).State())
	}
	if h.p(1).Direction() != fighterdata.Right || h.p(1).State() != fighterdata.IdleTurn {
		t.Errorf("ken: %s %s", h.p(1).Direction(), h.p(1).State())
	}
	h.stepUntil(30, "turn end", func() bool {
		return h.p(0).State() == fighterdata.Idle && h.p(1).State() == fighterdata.Idle
	})
}

func TestCrouchingFighterTurns(t *testing.T) {
	h := newHarness(t)
	h.controls[0].Press(control.Down)
	h.stepUntil(30, "crouch", func() bool { return h.p(0).State() == fighterdata.Crouch })

	h.p(1).SetPosition(300, fighterdata.StageFloor)
	h.step(1)
	if h.p(0).State() != fighterdata.CrouchTurn || h.p(0).Direction() != fighterdata.Left {
		t.Fatalf("ryu: %s %s", h.p(0).State(), h.p(0).Direction())
	}
	h.stepUntil(30, "crouch turn end", func() bool { return h.p(0).State() == fighterdata.Crouch })
}
