package dotgo

// Keymap fixes the eight physical joypad bindings plus the three runtime
// hotkeys. A zero Key leaves a line permanently released.
type Keymap struct {
	Up    Key
	Down  Key
	Left  Key
	Right Key
	A     Key
	B     Key
	Sel   Key
	Start Key

	// one-shot hotkeys, edge-triggered on the press event
	Reset     Key
	Interlace Key
	FrameSkip Key
}

// DefaultKeymap is the classic layout: Z/X for A/B, Enter and Backspace
// for Start/Select, arrows for the pad, and R/I/O for reset, interlace
// and frame-skip.
func DefaultKeymap() Keymap {
	return Keymap{
		Up:    KeyUp,
		Down:  KeyDown,
		Left:  KeyLeft,
		Right: KeyRight,
		A:     KeyZ,
		B:     KeyX,
		Sel:   KeyBackspace,
		Start: KeyReturn,

		Reset:     KeyR,
		Interlace: KeyI,
		FrameSkip: KeyO,
	}
}

// Translate samples the current key state and recomputes the whole joypad.
// Lines are active-low, so each is the logical negation of "is pressed".
// All eight lines are recomputed on every call; a partial update would
// leave a stale line behind from an earlier event.
func (km *Keymap) Translate(keyDown func(Key) bool) Joypad {
	return Joypad{
		Up:    !keyDown(km.Up),
		Down:  !keyDown(km.Down),
		Left:  !keyDown(km.Left),
		Right: !keyDown(km.Right),
		A:     !keyDown(km.A),
		B:     !keyDown(km.B),
		Sel:   !keyDown(km.Sel),
		Start: !keyDown(km.Start),
	}
}

// Hotkey identifies the one-shot actions issued straight to the core
// rather than to the input lines.
type Hotkey int

const (
	HotkeyNone Hotkey = iota
	HotkeyReset
	HotkeyInterlace
	HotkeyFrameSkip
)

// Hotkey returns the action bound to k, or HotkeyNone.
func (km *Keymap) Hotkey(k Key) Hotkey {
	if k == KeyNone {
		return HotkeyNone
	}
	switch k {
	case km.Reset:
		return HotkeyReset
	case km.Interlace:
		return HotkeyInterlace
	case km.FrameSkip:
		return HotkeyFrameSkip
	}
	return HotkeyNone
}
