package core

import "time"

// FixedStep helps drive HUD updates at a steady ticks-per-second rate from a
// loop that wakes up at irregular intervals.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	maxTicks    int
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{maxTicks: 4}
	fs.SetTPS(tps)
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Step returns the duration of a single tick.
func (f *FixedStep) Step() time.Duration { return f.step }

// Advance records the wall clock and returns how many ticks are due. At most a
// handful of ticks are reported after a long stall so a suspended process does
// not replay seconds of animation at once.
func (f *FixedStep) Advance(now time.Time) int {
	if f.last.IsZero() {
		f.last = now
		return 1
	}
	delta := now.Sub(f.last)
	f.last = now
	if delta < 0 {
		return 0
	}
	f.accumulator += delta
	ticks := 0
	for f.accumulator >= f.step {
		f.accumulator -= f.step
		ticks++
	}
	if ticks > f.maxTicks {
		ticks = f.maxTicks
		f.accumulator = 0
	}
	return ticks
}
