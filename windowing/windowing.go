// Package windowing is the SDL implementation of the frontend's display
// surface: a window, an accelerated renderer and one streaming ARGB8888
// texture fed from a caller-visible []uint32 framebuffer.
package windowing

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/theinternetftw/dotgo"
)

// Options configures the window.
type Options struct {
	Title string

	// logical framebuffer size in pixels
	Width  int
	Height int

	// integer window scale, 1 if zero
	Scale int
}

// Window is an SDL-backed dotgo.Surface.
type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	width  int
	height int
	pix    []uint32

	// live SDL key state slice, indexed by scancode
	keys []uint8

	closeRequested bool
	limiter        frameLimiter
	closed         bool
}

var _ dotgo.Surface = (*Window)(nil)

// New creates the window and its render pipeline. Any partial setup is
// torn down again on failure.
//
// The calling goroutine is pinned to its OS thread and every later call on
// the Window must come from that same goroutine: SDL's video and event
// functions only work on the thread that ran sdl.Init.
func New(opts Options) (*Window, error) {
	runtime.LockOSThread()

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("sdl init: %w", err)
	}

	scale := opts.Scale
	if scale < 1 {
		scale = 1
	}

	window, err := sdl.CreateWindow(opts.Title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(opts.Width*scale), int32(opts.Height*scale), sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1,
		sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	if err := renderer.SetLogicalSize(int32(opts.Width), int32(opts.Height)); err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("set logical size: %w", err)
	}

	// nearest-neighbour scaling keeps the pixels square
	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "0")

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ARGB8888,
		sdl.TEXTUREACCESS_STREAMING, int32(opts.Width), int32(opts.Height))
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("create texture: %w", err)
	}

	return &Window{
		window:   window,
		renderer: renderer,
		texture:  texture,
		width:    opts.Width,
		height:   opts.Height,
		pix:      make([]uint32, opts.Width*opts.Height),
		keys:     sdl.GetKeyboardState(),
	}, nil
}

// Pix is the raw framebuffer, rows of 32-bit pixels with a stride equal
// to the window's logical width.
func (w *Window) Pix() []uint32 { return w.pix }

// Size returns the logical pixel dimensions of the framebuffer.
func (w *Window) Size() (int, int) { return w.width, w.height }

// PollEvent returns the next queued key event, false once the queue is
// drained for this iteration. Quit events are absorbed here and reported
// through CloseRequested.
func (w *Window) PollEvent() (dotgo.Event, bool) {
	for {
		ev := sdl.PollEvent()
		if ev == nil {
			return dotgo.Event{}, false
		}
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			w.closeRequested = true
		case *sdl.KeyboardEvent:
			kind := dotgo.EventKeyDown
			if ev.Type == sdl.KEYUP {
				kind = dotgo.EventKeyUp
			}
			return dotgo.Event{
				Kind:   kind,
				Key:    keyFromScancode(ev.Keysym.Scancode),
				Repeat: ev.Repeat != 0,
			}, true
		}
		// anything else (mouse, focus, ...) is drained and dropped
	}
}

// CloseRequested reports whether the user asked for the window to close.
func (w *Window) CloseRequested() bool { return w.closeRequested }

// KeyDown samples the current pressed state of k.
func (w *Window) KeyDown(k dotgo.Key) bool {
	sc, ok := scancodeFromKey(k)
	if !ok {
		return false
	}
	return w.keys[sc] != 0
}

// SetTargetRate caps the present rate at hz frames per second. Vsync does
// the pacing when the display itself runs at hz; the limiter covers the
// displays that don't.
func (w *Window) SetTargetRate(hz int) {
	w.limiter.setRate(hz)
}

// Present uploads the framebuffer to the texture and flips it to the
// window, then yields to the frame-rate cap.
func (w *Window) Present() error {
	pitch := w.width * 4
	if err := w.texture.Update(nil, unsafe.Pointer(&w.pix[0]), pitch); err != nil {
		return fmt.Errorf("texture update: %w", err)
	}
	if err := w.renderer.Clear(); err != nil {
		return fmt.Errorf("renderer clear: %w", err)
	}
	if err := w.renderer.Copy(w.texture, nil, nil); err != nil {
		return fmt.Errorf("renderer copy: %w", err)
	}
	w.renderer.Present()
	w.limiter.wait()
	return nil
}

// Close destroys the texture, renderer and window and shuts SDL down.
// Safe to call more than once.
func (w *Window) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	if w.texture != nil {
		w.texture.Destroy()
		w.texture = nil
	}
	if w.renderer != nil {
		w.renderer.Destroy()
		w.renderer = nil
	}
	if w.window != nil {
		w.window.Destroy()
		w.window = nil
	}
	sdl.Quit()
	return nil
}
