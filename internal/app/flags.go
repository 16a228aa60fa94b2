package app

import (
	"flag"
	"fmt"

	"tappy/internal/core"
	"tappy/internal/hud"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width     int
	Height    int
	TPS       int
	Digits    int
	Threshold int
	Overflow  string
	GrowOnly  bool
	Music     bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:     840,
		Height:    480,
		TPS:       60,
		Digits:    6,
		Threshold: 5,
		Overflow:  "drop",
		GrowOnly:  true,
		Music:     true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "logical screen width")
	fs.IntVar(&c.Height, "height", c.Height, "logical screen height")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Digits, "digits", c.Digits, "number of score digit slots")
	fs.IntVar(&c.Threshold, "threshold", c.Threshold, "score that triggers the environment change")
	fs.StringVar(&c.Overflow, "overflow", c.Overflow, "what to do with digits beyond capacity: drop, fail or grow")
	fs.BoolVar(&c.GrowOnly, "grow-only", c.GrowOnly, "never hide score digits until reset")
}

// BindAudio attaches the audio flags. Only front ends with a speaker bind them.
func (c *Config) BindAudio(fs *flag.FlagSet) {
	fs.BoolVar(&c.Music, "music", c.Music, "play background music")
}

// Size returns the logical screen size.
func (c *Config) Size() core.Size {
	return core.Size{W: c.Width, H: c.Height}
}

// DigitConfig translates the flags into the score projector configuration.
func (c *Config) DigitConfig() (hud.DigitConfig, error) {
	cfg := hud.DefaultDigitConfig()
	if c.Digits <= 0 {
		return cfg, fmt.Errorf("digits must be positive, got %d", c.Digits)
	}
	if c.Threshold <= 0 {
		return cfg, fmt.Errorf("threshold must be positive, got %d", c.Threshold)
	}
	policy, err := hud.ParseOverflowPolicy(c.Overflow)
	if err != nil {
		return cfg, err
	}
	cfg.Capacity = c.Digits
	cfg.Threshold = c.Threshold
	cfg.Shrink = !c.GrowOnly
	cfg.Overflow = policy
	return cfg, nil
}
