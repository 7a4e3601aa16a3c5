package windowing

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/theinternetftw/dotgo"
)

// the keys the frontend can bind, by SDL scancode
var keyToScancode = map[dotgo.Key]sdl.Scancode{
	dotgo.KeyUp:        sdl.SCANCODE_UP,
	dotgo.KeyDown:      sdl.SCANCODE_DOWN,
	dotgo.KeyLeft:      sdl.SCANCODE_LEFT,
	dotgo.KeyRight:     sdl.SCANCODE_RIGHT,
	dotgo.KeyZ:         sdl.SCANCODE_Z,
	dotgo.KeyX:         sdl.SCANCODE_X,
	dotgo.KeyReturn:    sdl.SCANCODE_RETURN,
	dotgo.KeyBackspace: sdl.SCANCODE_BACKSPACE,
	dotgo.KeyR:         sdl.SCANCODE_R,
	dotgo.KeyI:         sdl.SCANCODE_I,
	dotgo.KeyO:         sdl.SCANCODE_O,
}

var scancodeToKey = func() map[sdl.Scancode]dotgo.Key {
	m := make(map[sdl.Scancode]dotgo.Key, len(keyToScancode))
	for k, sc := range keyToScancode {
		m[sc] = k
	}
	return m
}()

func scancodeFromKey(k dotgo.Key) (sdl.Scancode, bool) {
	sc, ok := keyToScancode[k]
	return sc, ok
}

// keyFromScancode maps unbound scancodes to KeyNone. The event still
// reaches the loop so the joypad gets resampled.
func keyFromScancode(sc sdl.Scancode) dotgo.Key {
	if k, ok := scancodeToKey[sc]; ok {
		return k
	}
	return dotgo.KeyNone
}
