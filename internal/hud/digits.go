package hud

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"tappy/internal/core"
)

var (
	// ErrNegativeScore is returned for scores below zero.
	ErrNegativeScore = errors.New("hud: negative score")
	// ErrCapacityExceeded is returned by OverflowFail when a score has more
	// digits than there are slots.
	ErrCapacityExceeded = errors.New("hud: score exceeds digit capacity")
	// ErrUnknownOverflow is returned when parsing an unknown policy name.
	ErrUnknownOverflow = errors.New("hud: unknown overflow policy")
)

// OverflowPolicy decides what happens to digits that do not fit in the slots.
type OverflowPolicy int

const (
	// OverflowDrop shows the leading digits and drops the rest.
	OverflowDrop OverflowPolicy = iota
	// OverflowFail rejects the update and leaves every slot untouched.
	OverflowFail
	// OverflowGrow allocates extra slots further along the row.
	OverflowGrow
)

func (p OverflowPolicy) String() string {
	switch p {
	case OverflowDrop:
		return "drop"
	case OverflowFail:
		return "fail"
	case OverflowGrow:
		return "grow"
	default:
		return fmt.Sprintf("OverflowPolicy(%d)", int(p))
	}
}

// ParseOverflowPolicy maps "drop", "fail" or "grow" onto a policy.
func ParseOverflowPolicy(s string) (OverflowPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "drop":
		return OverflowDrop, nil
	case "fail":
		return OverflowFail, nil
	case "grow":
		return OverflowGrow, nil
	}
	return OverflowDrop, fmt.Errorf("%w: %q", ErrUnknownOverflow, s)
}

// DigitConfig controls slot layout and projection policies. Zero fields take
// the arcade defaults, so DigitConfig{} is the arcade layout.
type DigitConfig struct {
	Capacity int
	Origin   core.Vec
	Spacing  float64

	Threshold int
	// NoThresholdSignal turns the threshold callback off.
	NoThresholdSignal bool

	// Shrink hides slots beyond the current digit count on every change. By
	// default they are left as they were, so a score that loses digits keeps
	// stale digits visible until the next Reset.
	Shrink   bool
	Overflow OverflowPolicy
}

// DefaultDigitConfig returns the arcade layout: six digits from (30, 40),
// 35px apart, environment change at five points.
func DefaultDigitConfig() DigitConfig {
	return DigitConfig{
		Capacity:  6,
		Origin:    core.Vec{X: 30, Y: 40},
		Spacing:   35,
		Threshold: 5,
		Overflow:  OverflowDrop,
	}
}

func (c DigitConfig) withDefaults() DigitConfig {
	d := DefaultDigitConfig()
	if c.Capacity <= 0 {
		c.Capacity = d.Capacity
	}
	if c.Origin == (core.Vec{}) {
		c.Origin = d.Origin
	}
	if c.Spacing <= 0 {
		c.Spacing = d.Spacing
	}
	if c.Threshold <= 0 {
		c.Threshold = d.Threshold
	}
	return c
}

// DigitProjector projects an externally owned score onto a row of digit
// slots. It keeps no copy of the score.
type DigitProjector struct {
	cfg         DigitConfig
	factory     core.SlotFactory
	slots       []core.Slot
	onThreshold func()
}

// NewDigitProjector allocates cfg.Capacity slots from factory, all showing 0
// and hidden, then reveals slot 0 so a fresh display reads "0". Zero fields of
// cfg take their DefaultDigitConfig values. onThreshold may be nil.
func NewDigitProjector(factory core.SlotFactory, cfg DigitConfig, onThreshold func()) *DigitProjector {
	cfg = cfg.withDefaults()
	p := &DigitProjector{cfg: cfg, factory: factory, onThreshold: onThreshold}
	p.slots = make([]core.Slot, 0, cfg.Capacity)
	for i := 0; i < cfg.Capacity; i++ {
		p.allocate()
	}
	p.showZero()
	return p
}

func (p *DigitProjector) allocate() {
	i := len(p.slots)
	var s core.Slot
	if p.factory != nil {
		s = p.factory(i, p.slotPosition(i))
	}
	if s != nil {
		s.SetGlyph(0)
		s.SetVisible(false)
	}
	p.slots = append(p.slots, s)
}

func (p *DigitProjector) slotPosition(i int) core.Vec {
	return core.Vec{X: p.cfg.Origin.X + float64(i)*p.cfg.Spacing, Y: p.cfg.Origin.Y}
}

// ScoreChanged projects v onto the slots. When v equals the threshold the
// threshold callback runs, every time, before the digits are updated.
func (p *DigitProjector) ScoreChanged(v int) error {
	if v < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeScore, v)
	}
	digits := strconv.Itoa(v)
	if len(digits) > len(p.slots) {
		switch p.cfg.Overflow {
		case OverflowFail:
			return fmt.Errorf("%w: %d has %d digits, capacity %d", ErrCapacityExceeded, v, len(digits), len(p.slots))
		case OverflowGrow:
			for len(p.slots) < len(digits) {
				p.allocate()
			}
		}
	}

	if !p.cfg.NoThresholdSignal && v == p.cfg.Threshold && p.onThreshold != nil {
		p.onThreshold()
	}

	for i := 0; i < len(digits); i++ {
		s := p.slot(i)
		if s == nil {
			continue
		}
		s.SetGlyph(int(digits[i] - '0'))
		if !s.Visible() {
			s.SetVisible(true)
		}
	}
	if p.cfg.Shrink {
		for i := len(digits); i < len(p.slots); i++ {
			if s := p.slot(i); s != nil {
				s.SetVisible(false)
			}
		}
	}
	return nil
}

// Reset shows "0" in slot 0 and hides every other slot. Glyphs of hidden
// slots are left as they are.
func (p *DigitProjector) Reset() {
	for i := 1; i < len(p.slots); i++ {
		if s := p.slot(i); s != nil {
			s.SetVisible(false)
		}
	}
	p.showZero()
}

func (p *DigitProjector) showZero() {
	if s := p.slot(0); s != nil {
		s.SetGlyph(0)
		s.SetVisible(true)
	}
}

// slot returns nil for indices beyond the allocated slots.
func (p *DigitProjector) slot(i int) core.Slot {
	if i < 0 || i >= len(p.slots) {
		return nil
	}
	return p.slots[i]
}

// Slots returns the slot handles in display order.
func (p *DigitProjector) Slots() []core.Slot { return p.slots }

// Len returns the number of allocated slots.
func (p *DigitProjector) Len() int { return len(p.slots) }

// Digits returns the glyphs of the visible slots, left to right.
func (p *DigitProjector) Digits() string {
	var b strings.Builder
	for _, s := range p.slots {
		if s == nil || !s.Visible() {
			continue
		}
		b.WriteByte(byte('0' + s.Glyph()))
	}
	return b.String()
}
