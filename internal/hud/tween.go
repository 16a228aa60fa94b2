package hud

import "time"

// Ease maps linear progress in [0,1] onto eased progress.
type Ease func(t float64) float64

// Linear is the identity ease.
func Linear(t float64) float64 { return t }

// BackOut overshoots the target slightly before settling.
func BackOut(t float64) float64 {
	const s = 1.70158
	t--
	return t*t*((s+1)*t+s) + 1
}

// Tween moves a single float value from From to To over Duration. With Yoyo
// set it holds for Hold and then plays back to From.
type Tween struct {
	From, To   float64
	Duration   time.Duration
	Hold       time.Duration
	Yoyo       bool
	Ease       Ease
	Apply      func(v float64)
	OnComplete func()

	elapsed time.Duration
	done    bool
}

func (tw *Tween) total() time.Duration {
	if !tw.Yoyo {
		return tw.Duration
	}
	return 2*tw.Duration + tw.Hold
}

// Done reports whether the tween has finished.
func (tw *Tween) Done() bool { return tw.done }

// Value returns the tweened value at the current elapsed time.
func (tw *Tween) Value() float64 {
	ease := tw.Ease
	if ease == nil {
		ease = Linear
	}
	if tw.Duration <= 0 {
		if tw.Yoyo {
			return tw.From
		}
		return tw.To
	}
	e := tw.elapsed
	var progress float64
	switch {
	case e <= tw.Duration:
		progress = float64(e) / float64(tw.Duration)
	case !tw.Yoyo:
		progress = 1
	case e <= tw.Duration+tw.Hold:
		progress = 1
	default:
		back := e - tw.Duration - tw.Hold
		if back > tw.Duration {
			back = tw.Duration
		}
		progress = 1 - float64(back)/float64(tw.Duration)
	}
	return tw.From + (tw.To-tw.From)*ease(progress)
}

// Update advances the tween by dt, applies the new value and fires
// OnComplete once when the tween ends.
func (tw *Tween) Update(dt time.Duration) {
	if tw.done {
		return
	}
	tw.elapsed += dt
	if tw.elapsed >= tw.total() {
		tw.elapsed = tw.total()
		tw.done = true
	}
	if tw.Apply != nil {
		tw.Apply(tw.Value())
	}
	if tw.done && tw.OnComplete != nil {
		tw.OnComplete()
	}
}
