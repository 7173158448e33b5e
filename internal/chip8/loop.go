package chip8

import "time"

// DefaultStepsPerSecond is the instruction throughput the scheduling
// loop targets absent an explicit override, within the 500-1000
// steps/second band this package is designed around.
const DefaultStepsPerSecond = 700

const (
	timerInterval = time.Second / 60
	idleInterval  = 500 * time.Microsecond
)

// Run drives m at roughly stepsPerSecond instructions/second while
// decrementing timers and refreshing the display at 60 Hz. It polls
// keypad for input once per iteration (draining every event currently
// queued), executes one fetch/decode/execute step, and yields the CPU
// briefly between iterations. It returns when keypad delivers
// EventQuit, or when Step returns a fatal error.
func Run(m *Machine, display DisplaySink, audio AudioSink, keypad KeypadSource, stepsPerSecond int) error {
	if stepsPerSecond <= 0 {
		stepsPerSecond = DefaultStepsPerSecond
	}
	stepInterval := time.Second / time.Duration(stepsPerSecond)

	lastTimerTick := time.Now()
	lastStep := time.Now()

	for {
		for {
			ev := keypad.Poll()
			switch ev.Kind {
			case EventNone:
				goto polled
			case EventKeyDown:
				m.SetKeyDown(ev.Code)
			case EventKeyUp:
				m.SetKeyUp(ev.Code)
			case EventQuit:
				return nil
			}
		}
	polled:

		now := time.Now()
		if now.Sub(lastTimerTick) >= timerInterval {
			m.TickTimers()
			if m.ShouldBeep() {
				audio.Resume()
			} else {
				audio.Pause()
			}
			display.Refresh(m.Framebuffer())
			lastTimerTick = now
		}

		if now.Sub(lastStep) >= stepInterval {
			if err := m.Step(); err != nil {
				return err
			}
			lastStep = now
		}

		time.Sleep(idleInterval)
	}
}
