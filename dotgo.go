// Package dotgo is a frame-driven frontend for cycle-stepped gameboy
// emulation cores. It owns the machine's external i/o surface: the
// cartridge image and battery-backed save RAM, the scanline-to-framebuffer
// path, joypad line state, frame pacing, and the shutdown paths for both
// graceful close and unrecoverable core faults. The instruction-level
// emulation itself lives behind the Core interface and is supplied by the
// linked engine.
package dotgo

import "fmt"

// Logical resolution of the emulated display.
const (
	LCDWidth  = 160
	LCDHeight = 144
)

// HeaderSize is how much of a cart image the header occupies. Images
// shorter than this cannot be parsed at all.
const HeaderSize = 0x150

// Joypad is the eight input lines as the core sees them. The hardware
// protocol is active-low: false means pressed, true means released.
type Joypad struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
	A     bool
	B     bool
	Sel   bool
	Start bool
}

// ReleasedJoypad returns a joypad with every line at logical 1.
func ReleasedJoypad() Joypad {
	return Joypad{
		Up: true, Down: true, Left: true, Right: true,
		A: true, B: true, Sel: true, Start: true,
	}
}

// FatalKind classifies the unrecoverable conditions a core can report.
type FatalKind int

const (
	FatalUnknown FatalKind = iota
	FatalInvalidOpcode
	FatalInvalidRead
	FatalInvalidWrite
	FatalHaltForever
)

func (k FatalKind) String() string {
	switch k {
	case FatalInvalidOpcode:
		return "INVALID OPCODE"
	case FatalInvalidRead:
		return "INVALID READ"
	case FatalInvalidWrite:
		return "INVALID WRITE"
	case FatalHaltForever:
		return "HALT FOREVER"
	}
	return "UNKNOWN"
}

// FatalError is an unrecoverable core fault surfaced to the loop's caller.
// There is no continuation after one: the faulting frame is never
// presented and the loop does not run again.
type FatalError struct {
	Kind  FatalKind
	Value uint16
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("error %d occurred: %s at %04X", int(e.Kind), e.Kind, e.Value)
}

// Callbacks binds a device context into a core. RomRead, RamRead, RamWrite
// and Fatal are required; Scanline may be nil, which disables video output.
// All callbacks run synchronously inside RunFrame on the caller's
// goroutine.
type Callbacks struct {
	RomRead  func(addr uint32) byte
	RamRead  func(addr uint32) byte
	RamWrite func(addr uint32, val byte)
	Fatal    func(kind FatalKind, value uint16)
	Scanline func(pixels []byte, line int)
}

// Core is the execution context contract an emulation engine must satisfy.
//
// Init binds the callbacks and validates the loaded image, SaveSize reports
// the save-RAM size the image's header declares, RunFrame blocks until one
// displayable frame's worth of cycles has run (invoking Scanline zero or
// more times, in increasing line order, and Fatal at most once), and Reset
// reinitializes machine state without touching the image or save RAM.
//
// The remaining methods are the control state the frontend mutates
// directly: the joypad lines and the interlace/frame-skip runtime flags.
type Core interface {
	Init(cb Callbacks) error
	SaveSize() int
	RunFrame()
	Reset()

	SetJoypad(jp Joypad)
	SetInterlace(on bool)
	Interlace() bool
	SetFrameSkip(on bool)
	FrameSkip() bool
}
