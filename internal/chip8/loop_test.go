package chip8

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeDisplay struct {
	refreshes int32
}

func (d *fakeDisplay) Refresh(_ [ScreenHeight][ScreenWidth]bool) {
	atomic.AddInt32(&d.refreshes, 1)
}

type fakeAudio struct {
	resumed int32
	paused  int32
}

func (a *fakeAudio) Resume() { atomic.AddInt32(&a.resumed, 1) }
func (a *fakeAudio) Pause()  { atomic.AddInt32(&a.paused, 1) }

type fakeKeypad struct {
	events []Event
}

func (k *fakeKeypad) Poll() Event {
	if len(k.events) == 0 {
		return Event{Kind: EventNone}
	}
	ev := k.events[0]
	k.events = k.events[1:]
	return ev
}

func TestRun_StopsOnQuitEvent(t *testing.T) {
	m := NewMachine(DefaultQuirks())
	require.NoError(t, m.LoadROM([]byte{0x00, 0x00})) // nop-equivalent (0NNN, unknown, no-op)

	display := &fakeDisplay{}
	audio := &fakeAudio{}
	keypad := &fakeKeypad{events: []Event{{Kind: EventQuit}}}

	err := Run(m, display, audio, keypad, DefaultStepsPerSecond)

	require.NoError(t, err)
}

func TestRun_PropagatesStepErrors(t *testing.T) {
	m := NewMachine(DefaultQuirks())
	require.NoError(t, m.LoadROM([]byte{0x00, 0xEE})) // RET with empty stack

	display := &fakeDisplay{}
	audio := &fakeAudio{}
	keypad := &fakeKeypad{}

	err := Run(m, display, audio, keypad, DefaultStepsPerSecond)

	require.ErrorIs(t, err, ErrStackUnderflow)
}
