package app

import (
	"errors"
	"flag"
	"io"
	"testing"

	"tappy/internal/hud"
)

func TestConfigBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("tappy", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	cfg.BindAudio(fs)
	args := []string{"-width", "1024", "-digits", "8", "-threshold", "10", "-overflow", "grow", "-grow-only=false", "-music=false"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Width != 1024 || cfg.Height != 480 || cfg.Music {
		t.Fatalf("unexpected config %+v", cfg)
	}

	dc, err := cfg.DigitConfig()
	if err != nil {
		t.Fatalf("DigitConfig: %v", err)
	}
	if dc.Capacity != 8 || dc.Threshold != 10 || !dc.Shrink || dc.Overflow != hud.OverflowGrow {
		t.Fatalf("unexpected digit config %+v", dc)
	}
	if size := cfg.Size(); size.W != 1024 || size.H != 480 {
		t.Fatalf("unexpected size %+v", size)
	}
}

func TestConfigBindLeavesAudioOut(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("tappy-term", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	if fs.Lookup("music") != nil {
		t.Fatal("Bind should not register -music")
	}
	if err := fs.Parse([]string{"-music=false"}); err == nil {
		t.Fatal("expected -music to be rejected without BindAudio")
	}
	cfg.BindAudio(fs)
	if fs.Lookup("music") == nil {
		t.Fatal("BindAudio should register -music")
	}
}

func TestConfigDefaultsMatchArcadeLayout(t *testing.T) {
	dc, err := NewConfig().DigitConfig()
	if err != nil {
		t.Fatal(err)
	}
	if dc != hud.DefaultDigitConfig() {
		t.Fatalf("default flags should produce the default digit config, got %+v", dc)
	}
}

func TestConfigRejectsBadValues(t *testing.T) {
	cfg := NewConfig()
	cfg.Overflow = "wrap"
	if _, err := cfg.DigitConfig(); !errors.Is(err, hud.ErrUnknownOverflow) {
		t.Fatalf("expected ErrUnknownOverflow, got %v", err)
	}
	cfg = NewConfig()
	cfg.Digits = 0
	if _, err := cfg.DigitConfig(); err == nil {
		t.Fatal("expected error for zero digits")
	}
	cfg = NewConfig()
	cfg.Threshold = 0
	if _, err := cfg.DigitConfig(); err == nil {
		t.Fatal("expected error for zero threshold")
	}
}
