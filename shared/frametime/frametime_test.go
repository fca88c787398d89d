package frametime

import (
	"math"
	"testing"
)

func TestFirstTickIsTheStart(t *testing.T) {
	c := NewClock(60)
	if c.Started() {
		t.Fatal("new clock should not be started")
	}
	ft := c.Tick()
	if ft != (FrameTime{}) {
		t.Fatalf("first tick = %+v, want zero", ft)
	}
	if !c.Started() {
		t.Fatal("clock should be started after the first tick")
	}
}

func TestTicksAdvanceAtFixedRate(t *testing.T) {
	c := NewClock(60)
	c.Tick()
	var ft FrameTime
	for i := 0; i < 60; i++ {
		ft = c.Tick()
	}
	if math.Abs(ft.SecondsPassed-1.0/60) > 1e-12 {
		t.Errorf("SecondsPassed = %v", ft.SecondsPassed)
	}
	if math.Abs(ft.Previous-1000) > 1e-9 {
		t.Errorf("Previous after 60 ticks = %v, want 1000", ft.Previous)
	}
	if c.Ticks() != 60 {
		t.Errorf("Ticks = %d", c.Ticks())
	}
}

func TestZeroClockDefaultsToSixtyHertz(t *testing.T) {
	var c Clock
	c.Tick()
	if ft := c.Tick(); math.Abs(ft.SecondsPassed-1.0/60) > 1e-12 {
		t.Errorf("SecondsPassed = %v", ft.SecondsPassed)
	}
}
