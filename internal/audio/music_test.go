package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func peak(samples [][2]float64) float64 {
	top := 0.0
	for _, s := range samples {
		top = math.Max(top, math.Max(math.Abs(s[0]), math.Abs(s[1])))
	}
	return top
}

func TestToneStaysInRange(t *testing.T) {
	tone := Tone(SampleRate, 440, 0.5)
	buf := make([][2]float64, 512)
	n, ok := tone.Stream(buf)
	if !ok || n != len(buf) {
		t.Fatalf("tone should fill the buffer, n=%d ok=%v", n, ok)
	}
	if p := peak(buf); p > 0.5+1e-9 || p < 0.4 {
		t.Fatalf("unexpected tone peak %f", p)
	}
}

func TestMusicMuteSilencesStream(t *testing.T) {
	m := NewMusic(Tone(SampleRate, 440, 0.5))
	buf := make([][2]float64, 256)

	if _, ok := m.Stream(buf); !ok {
		t.Fatal("music stream ended unexpectedly")
	}
	if peak(buf) == 0 {
		t.Fatal("unmuted music should be audible")
	}

	m.SetMuted(true)
	if !m.Muted() {
		t.Fatal("Muted should report true")
	}
	n, ok := m.Stream(buf)
	if !ok || n != len(buf) {
		t.Fatalf("muted music should keep streaming, n=%d ok=%v", n, ok)
	}
	if p := peak(buf[:n]); p != 0 {
		t.Fatalf("muted music produced peak %f", p)
	}

	m.SetMuted(false)
	m.Stream(buf)
	if peak(buf) == 0 {
		t.Fatal("unmuting should restore sound")
	}
	if m.Err() != nil {
		t.Fatalf("unexpected error %v", m.Err())
	}
}

func TestMusicVolume(t *testing.T) {
	m := NewMusic(Tone(SampleRate, 440, 0.5))
	m.SetVolume(-1)
	buf := make([][2]float64, 256)
	m.Stream(buf)
	if p := peak(buf); p > 0.26 {
		t.Fatalf("volume -1 with base 2 should halve the peak, got %f", p)
	}
}

func TestMelodyLoops(t *testing.T) {
	mel := Melody(SampleRate, 10*time.Millisecond, 262, 330, 392)
	buf := make([][2]float64, SampleRate.N(100*time.Millisecond))
	n, ok := mel.Stream(buf)
	if !ok || n != len(buf) {
		t.Fatalf("melody should loop past its length, n=%d ok=%v", n, ok)
	}
	if _, ok := Melody(SampleRate, time.Second).(beep.Streamer); !ok {
		t.Fatal("empty melody should still be a streamer")
	}
}

func TestNewMusicNilSource(t *testing.T) {
	m := NewMusic(nil)
	buf := make([][2]float64, 64)
	n, ok := m.Stream(buf)
	if !ok || n != len(buf) || peak(buf) != 0 {
		t.Fatalf("nil source should stream silence, n=%d ok=%v", n, ok)
	}
}
