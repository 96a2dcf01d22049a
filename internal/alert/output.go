// Package alert drives the audible alarm in lockstep with the SOS signal.
package alert

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
)

// Alarm clip parameters: two alternating sine tones, the pair repeated
// twice, low-high-low-high.
const (
	clipSampleRate = beep.SampleRate(22050)
	toneLow        = 800.0
	toneHigh       = 1000.0
	toneDuration   = 300 * time.Millisecond
	clipRepeats    = 2
)

// ErrOutputClosed is returned when playing through a closed output.
var ErrOutputClosed = errors.New("audio output is closed")

// Output is the audio-output collaborator. It owns a pre-rendered alarm
// clip and two operations: play it once without blocking, and cut all
// playback immediately.
type Output interface {
	// PlayOnce starts a single pass of the clip and returns without
	// waiting for it to finish.
	PlayOnce() error

	// StopAll halts anything currently sounding.
	StopAll()

	// ClipDuration reports the length of one clip pass.
	ClipDuration() time.Duration

	// Close tears down the audio device. Safe to call more than once.
	Close() error
}

// SpeakerOutput plays the alarm clip through the system speaker.
type SpeakerOutput struct {
	buf    *beep.Buffer
	mu     sync.Mutex
	closed bool
}

// NewSpeakerOutput renders the alarm clip and initializes the speaker. On
// failure the caller should fall back to NopOutput so alert state keeps
// transitioning silently.
func NewSpeakerOutput() (*SpeakerOutput, error) {
	buf, err := renderClip()
	if err != nil {
		return nil, err
	}

	if err := speaker.Init(clipSampleRate, clipSampleRate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}

	return &SpeakerOutput{buf: buf}, nil
}

// renderClip synthesizes the two-tone alarm clip into a memory buffer.
func renderClip() (*beep.Buffer, error) {
	format := beep.Format{
		SampleRate:  clipSampleRate,
		NumChannels: 2,
		Precision:   2,
	}

	buf := beep.NewBuffer(format)
	for i := 0; i < clipRepeats; i++ {
		for _, freq := range []float64{toneLow, toneHigh} {
			tone, err := generators.SineTone(clipSampleRate, freq)
			if err != nil {
				return nil, fmt.Errorf("render %.0f Hz tone: %w", freq, err)
			}
			buf.Append(beep.Take(clipSampleRate.N(toneDuration), tone))
		}
	}

	return buf, nil
}

// PlayOnce queues one pass of the clip on the speaker mixer and returns
// immediately.
func (o *SpeakerOutput) PlayOnce() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return ErrOutputClosed
	}

	speaker.Play(o.buf.Streamer(0, o.buf.Len()))
	return nil
}

// StopAll drops every queued streamer, silencing the speaker at once.
func (o *SpeakerOutput) StopAll() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return
	}

	speaker.Clear()
}

// ClipDuration reports the length of one clip pass.
func (o *SpeakerOutput) ClipDuration() time.Duration {
	return clipRepeats * 2 * toneDuration
}

// Close silences and shuts down the speaker. Safe to call more than once.
func (o *SpeakerOutput) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return nil
	}
	o.closed = true

	speaker.Clear()
	speaker.Close()
	return nil
}

// NopOutput is the silent fallback used when the audio subsystem is
// unavailable: alarm state still transitions, nothing sounds.
type NopOutput struct{}

// PlayOnce does nothing.
func (NopOutput) PlayOnce() error { return nil }

// StopAll does nothing.
func (NopOutput) StopAll() {}

// ClipDuration matches the real clip so the playback loop paces the same.
func (NopOutput) ClipDuration() time.Duration { return clipRepeats * 2 * toneDuration }

// Close does nothing.
func (NopOutput) Close() error { return nil }
