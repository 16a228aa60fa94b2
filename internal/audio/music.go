// Package audio owns the background music stream and its mute switch.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate is the rate the music streams are generated at.
const SampleRate = beep.SampleRate(44100)

// BufferDuration is the speaker buffer length used by the front ends.
const BufferDuration = 100 * time.Millisecond

// Music wraps a streamer with a volume stage whose silent flag is the mute
// switch. It is itself a beep.Streamer and is safe to mute from the game loop
// while the speaker goroutine streams it.
type Music struct {
	mu     sync.Mutex
	volume *effects.Volume
}

// NewMusic wraps src. A nil src plays silence.
func NewMusic(src beep.Streamer) *Music {
	if src == nil {
		src = beep.Silence(-1)
	}
	return &Music{volume: &effects.Volume{Streamer: src, Base: 2}}
}

// Stream implements beep.Streamer.
func (m *Music) Stream(samples [][2]float64) (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.volume.Stream(samples)
}

// Err implements beep.Streamer.
func (m *Music) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.volume.Err()
}

// SetMuted silences or restores the music.
func (m *Music) SetMuted(muted bool) {
	m.mu.Lock()
	m.volume.Silent = muted
	m.mu.Unlock()
}

// Muted reports whether the music is silenced.
func (m *Music) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.volume.Silent
}

// SetVolume sets the gain in beep's exponential units (0 is unchanged,
// negative is quieter).
func (m *Music) SetVolume(v float64) {
	m.mu.Lock()
	m.volume.Volume = v
	m.mu.Unlock()
}

// Tone returns an endless sine wave at freq Hz with the given amplitude.
func Tone(sr beep.SampleRate, freq, amplitude float64) beep.Streamer {
	var phase float64
	step := freq / float64(sr)
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := amplitude * math.Sin(2*math.Pi*phase)
			samples[i][0] = v
			samples[i][1] = v
			phase += step
			if phase >= 1 {
				phase--
			}
		}
		return len(samples), true
	})
}

// Melody loops a short arpeggio, each note lasting noteLen.
func Melody(sr beep.SampleRate, noteLen time.Duration, freqs ...float64) beep.Streamer {
	if len(freqs) == 0 {
		return beep.Silence(-1)
	}
	per := sr.N(noteLen)
	if per <= 0 {
		per = 1
	}
	idx, left := 0, per
	tone := Tone(sr, freqs[0], 0.2)
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		filled := 0
		for filled < len(samples) {
			chunk := min(left, len(samples)-filled)
			tone.Stream(samples[filled : filled+chunk])
			filled += chunk
			left -= chunk
			if left == 0 {
				idx = (idx + 1) % len(freqs)
				tone = Tone(sr, freqs[idx], 0.2)
				left = per
			}
		}
		return filled, true
	})
}
