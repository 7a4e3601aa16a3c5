package dotgo

import "fmt"

// TargetFrameRate is the frame cap handed to the surface. The cap is
// advisory pacing on the loop's operating rate, not a deadline on any
// callback.
const TargetFrameRate = 60

// Loop drives a core one displayable frame at a time: drain host events,
// translate input, run the core (which draws scanlines through the device
// context), present, repeat. Everything runs on the calling goroutine.
type Loop struct {
	core   Core
	dev    *DeviceContext
	keymap Keymap

	fatal *FatalError
}

// NewLoop binds dev into core, lets the core validate the image, and sizes
// the save RAM from the core's save-size query. On init failure the owned
// buffers are released before returning.
func NewLoop(core Core, dev *DeviceContext, keymap Keymap) (*Loop, error) {
	l := &Loop{
		core:   core,
		dev:    dev,
		keymap: keymap,
	}

	if err := core.Init(dev.Callbacks(l.recordFatal)); err != nil {
		dev.Close()
		return nil, fmt.Errorf("core init: %w", err)
	}
	dev.AllocSaveRAM(core.SaveSize())
	l.core.SetJoypad(ReleasedJoypad())

	return l, nil
}

// recordFatal is the core's fatal-error callback. It runs reentrantly
// inside RunFrame; the loop notices the recorded fault as soon as the
// frame call returns and stops for good.
func (l *Loop) recordFatal(kind FatalKind, value uint16) {
	if l.fatal == nil {
		l.fatal = &FatalError{Kind: kind, Value: value}
	}
}

// Run executes frames until the surface reports a close request or the
// core raises a fatal fault.
//
// A close request is only honored at the top of an iteration, so an
// in-progress frame always completes first. On graceful close the release
// order is surface, then save RAM, then image, and the returned error is
// nil. On a fatal the faulting frame is not presented, the owned buffers
// are released, and the surface is deliberately left alone: that path is a
// fail-fast abort, not a shutdown.
func (l *Loop) Run() error {
	surface := l.dev.surface
	surface.SetTargetRate(TargetFrameRate)

	for {
		if surface.CloseRequested() {
			err := surface.Close()
			l.dev.Close()
			return err
		}

		for ev, ok := surface.PollEvent(); ok; ev, ok = surface.PollEvent() {
			l.handleEvent(ev)
		}

		l.core.RunFrame()
		if l.fatal != nil {
			l.dev.Close()
			return l.fatal
		}

		if err := surface.Present(); err != nil {
			surface.Close()
			l.dev.Close()
			return fmt.Errorf("present: %w", err)
		}
	}
}

func (l *Loop) handleEvent(ev Event) {
	if ev.Kind != EventKeyDown && ev.Kind != EventKeyUp {
		return
	}

	surface := l.dev.surface
	l.core.SetJoypad(l.keymap.Translate(surface.KeyDown))

	// hotkeys fire on the press edge only, never on repeat or release
	if ev.Kind != EventKeyDown || ev.Repeat {
		return
	}
	switch l.keymap.Hotkey(ev.Key) {
	case HotkeyReset:
		l.core.Reset()
	case HotkeyInterlace:
		l.core.SetInterlace(!l.core.Interlace())
	case HotkeyFrameSkip:
		l.core.SetFrameSkip(!l.core.FrameSkip())
	}
}
