package core

import (
	"testing"
	"time"
)

func TestFixedStepFirstAdvanceTicksOnce(t *testing.T) {
	fs := NewFixedStep(60)
	if got := fs.Advance(time.Unix(100, 0)); got != 1 {
		t.Fatalf("first advance should tick once, got %d", got)
	}
}

func TestFixedStepAccumulates(t *testing.T) {
	fs := NewFixedStep(10)
	start := time.Unix(100, 0)
	fs.Advance(start)

	if got := fs.Advance(start.Add(50 * time.Millisecond)); got != 0 {
		t.Fatalf("half a tick should not step, got %d", got)
	}
	if got := fs.Advance(start.Add(100 * time.Millisecond)); got != 1 {
		t.Fatalf("expected one tick after 100ms, got %d", got)
	}
	if got := fs.Advance(start.Add(320 * time.Millisecond)); got != 2 {
		t.Fatalf("expected two ticks after a further 220ms, got %d", got)
	}
}

func TestFixedStepClampsAfterStall(t *testing.T) {
	fs := NewFixedStep(60)
	start := time.Unix(100, 0)
	fs.Advance(start)
	if got := fs.Advance(start.Add(10 * time.Second)); got != fs.maxTicks {
		t.Fatalf("expected stall to clamp to %d ticks, got %d", fs.maxTicks, got)
	}
	if got := fs.Advance(start.Add(10*time.Second + time.Millisecond)); got != 0 {
		t.Fatalf("accumulator should be drained after clamp, got %d ticks", got)
	}
}

func TestFixedStepDefaultsInvalidTPS(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Step() != time.Second/60 {
		t.Fatalf("expected default 60 TPS step, got %v", fs.Step())
	}
}
