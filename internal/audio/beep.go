// Package audio implements chip8.AudioSink on top of faiface/beep,
// adapted from the original chippy emulator's one-shot mp3 playback
// into a continuously looped tone gated by beep.Ctrl.Paused, so
// Resume/Pause map directly onto the sound-timer's on/off state instead
// of re-triggering playback on every timer tick.
package audio

import (
	"fmt"
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
)

// Sink plays a looped tone while the CHIP-8 sound timer is active.
type Sink struct {
	streamer beep.StreamSeekCloser
	ctrl     *beep.Ctrl
}

// NewSink opens the mp3 file at path, initializes the speaker, and
// starts (paused) playback of the file looped indefinitely.
func NewSink(path string) (*Sink, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: opening %s: %w", path, err)
	}

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("audio: decoding %s: %w", path, err)
	}

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		streamer.Close()
		return nil, fmt.Errorf("audio: initializing speaker: %w", err)
	}

	ctrl := &beep.Ctrl{
		Streamer: beep.Loop(-1, streamer),
		Paused:   true,
	}
	speaker.Play(ctrl)

	return &Sink{streamer: streamer, ctrl: ctrl}, nil
}

// Resume implements chip8.AudioSink. It is idempotent: calling it while
// already unpaused is a no-op.
func (s *Sink) Resume() {
	speaker.Lock()
	s.ctrl.Paused = false
	speaker.Unlock()
}

// Pause implements chip8.AudioSink. It is idempotent: calling it while
// already paused is a no-op.
func (s *Sink) Pause() {
	speaker.Lock()
	s.ctrl.Paused = true
	speaker.Unlock()
}

// Close releases the underlying audio stream.
func (s *Sink) Close() error {
	return s.streamer.Close()
}
