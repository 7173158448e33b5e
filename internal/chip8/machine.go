// Package chip8 is a CHIP-8 virtual machine: the fetch/decode/execute
// core, its memory model, and the real-time scheduling loop that drives
// it. The host windowing, audio, and input surfaces are abstracted
// behind DisplaySink, AudioSink, and KeypadSource so this package can be
// exercised headlessly in tests.
package chip8

import (
	"errors"
	"fmt"
)

const (
	// MemorySize is the total addressable memory, in bytes.
	MemorySize = 4096

	// FontOffset is where the built-in hex font is stored.
	FontOffset = 0x050

	// EntryPoint is the address programs are loaded at and PC starts from.
	EntryPoint = 0x200

	// RomMaxSize is the largest ROM that fits in [EntryPoint, MemorySize).
	RomMaxSize = MemorySize - EntryPoint

	// NumRegisters is the number of general purpose V registers.
	NumRegisters = 16

	// StackSize is the call stack's fixed capacity.
	StackSize = 32

	// ScreenWidth and ScreenHeight describe the framebuffer dimensions.
	ScreenWidth  = 64
	ScreenHeight = 32

	// NumKeys is the size of the hex keypad.
	NumKeys = 16

	glyphHeight = 5
)

// Font is the built-in hexadecimal font set: 16 glyphs of 5 bytes each,
// MSB-left, loaded into memory at FontOffset.
var Font = [NumRegisters * glyphHeight]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// ErrStackOverflow is returned by Step when CALL is executed with a full
// call stack.
var ErrStackOverflow = errors.New("chip8: call stack overflow")

// ErrStackUnderflow is returned by Step when RET is executed with an
// empty call stack.
var ErrStackUnderflow = errors.New("chip8: call stack underflow")

// Quirks toggles CHIP-8 variant semantics that differ between
// implementations. The zero value shifts V[X] in place; DefaultQuirks
// returns the configuration this package targets.
type Quirks struct {
	// ShiftFromVY controls whether 8XY6/8XYE copy V[Y] into V[X] before
	// shifting (true, the original COSMAC VIP behavior this spec
	// targets) or shift V[X] in place (false).
	ShiftFromVY bool
}

// DefaultQuirks returns the canonical CHIP-8 quirk configuration this
// package targets.
func DefaultQuirks() Quirks {
	return Quirks{ShiftFromVY: true}
}

// Machine is the CHIP-8 virtual machine. All of its state is owned
// exclusively by whatever goroutine calls Step; it performs no internal
// synchronization.
type Machine struct {
	memory [MemorySize]byte
	v      [NumRegisters]uint8
	i      uint16
	pc     uint16

	stack [StackSize]uint16
	sp    uint8

	delayTimer uint8
	soundTimer uint8

	framebuffer [ScreenHeight][ScreenWidth]bool

	keypad [NumKeys]bool

	quirks Quirks

	rand randSource
}

// NewMachine returns a freshly reset Machine with the given quirk
// configuration.
func NewMachine(quirks Quirks) *Machine {
	m := &Machine{quirks: quirks, rand: defaultRandSource{}}
	m.Reset()
	return m
}

// Reset clears all machine state back to power-on defaults and reloads
// the font set. It does not reload any ROM.
func (m *Machine) Reset() {
	m.memory = [MemorySize]byte{}
	m.v = [NumRegisters]uint8{}
	m.i = 0
	m.pc = EntryPoint
	m.stack = [StackSize]uint16{}
	m.sp = 0
	m.delayTimer = 0
	m.soundTimer = 0
	m.framebuffer = [ScreenHeight][ScreenWidth]bool{}
	m.keypad = [NumKeys]bool{}
	copy(m.memory[FontOffset:], Font[:])
}

// LoadROM copies program bytes into memory starting at EntryPoint. It
// returns an error if the ROM does not fit in [EntryPoint, MemorySize).
func (m *Machine) LoadROM(data []byte) error {
	if len(data) > RomMaxSize {
		return fmt.Errorf("chip8: rom too large: %d bytes (max %d)", len(data), RomMaxSize)
	}
	copy(m.memory[EntryPoint:], data)
	return nil
}

// Framebuffer returns a copy of the current 64x32 display grid.
func (m *Machine) Framebuffer() [ScreenHeight][ScreenWidth]bool {
	return m.framebuffer
}

// ShouldBeep reports whether the sound timer is currently active.
func (m *Machine) ShouldBeep() bool {
	return m.soundTimer > 0
}

// SetKeyDown marks key code (0x0-0xF) as pressed. Codes outside that
// range are ignored.
func (m *Machine) SetKeyDown(code byte) {
	if code >= NumKeys {
		return
	}
	m.keypad[code] = true
}

// SetKeyUp marks key code (0x0-0xF) as released. Codes outside that
// range are ignored.
func (m *Machine) SetKeyUp(code byte) {
	if code >= NumKeys {
		return
	}
	m.keypad[code] = false
}

// PC returns the current program counter, mostly useful for tests and
// diagnostics.
func (m *Machine) PC() uint16 { return m.pc }

// TickTimers decrements DT and ST by one, saturating at zero. The
// scheduling loop calls this at 60 Hz, independent of instruction
// throughput.
func (m *Machine) TickTimers() {
	if m.delayTimer > 0 {
		m.delayTimer--
	}
	if m.soundTimer > 0 {
		m.soundTimer--
	}
}

type randSource interface {
	byte() byte
}
