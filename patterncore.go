package dotgo

import "fmt"

// PatternCore is a stand-in core for wiring and frontend development when
// no emulation engine is linked in. It honors the whole Core contract --
// header validation at init, save-size query, scanlines in increasing line
// order, save-RAM traffic, reset and the runtime flags -- but renders a
// rolling test pattern seeded from the image bytes instead of executing
// instructions.
type PatternCore struct {
	cb Callbacks

	info     *CartInfo
	saveSize int

	frame     int
	joypad    Joypad
	interlace bool
	frameSkip bool

	pendingFault *FatalError
}

var _ Core = (*PatternCore)(nil)

// NewPatternCore returns an uninitialized pattern core.
func NewPatternCore() *PatternCore {
	return &PatternCore{joypad: ReleasedJoypad()}
}

// Init reads the cart header through the bound rom callback, the same way
// a real core would, and rejects images with a bad header checksum or an
// undeclarable save-RAM size.
func (c *PatternCore) Init(cb Callbacks) error {
	c.cb = cb

	header := make([]byte, HeaderSize)
	for i := range header {
		header[i] = cb.RomRead(uint32(i))
	}

	info, err := ParseCartInfo(header)
	if err != nil {
		return err
	}
	if sum := headerChecksum(header); sum != info.HeaderChecksum {
		return fmt.Errorf("header checksum mismatch: computed 0x%02x, cart says 0x%02x",
			sum, info.HeaderChecksum)
	}
	size, err := info.RAMSize()
	if err != nil {
		return err
	}

	c.info = info
	c.saveSize = size
	c.frame = 0
	c.joypad = ReleasedJoypad()
	return nil
}

// headerChecksum computes the dmg header checksum over 0x134..0x14c.
func headerChecksum(header []byte) byte {
	var x byte
	for i := 0x134; i <= 0x14c; i++ {
		x = x - header[i] - 1
	}
	return x
}

// CartInfo returns the parsed header, nil before Init.
func (c *PatternCore) CartInfo() *CartInfo { return c.info }

// SaveSize reports the save-RAM size the image header declares.
func (c *PatternCore) SaveSize() int { return c.saveSize }

// RunFrame produces one frame of test pattern. Scanlines go out in
// increasing line order, all before RunFrame returns. The scroll offset
// lives in save RAM (when the header declares any) so the ram callbacks
// see real traffic every frame.
func (c *PatternCore) RunFrame() {
	c.frame++

	if c.pendingFault != nil {
		f := c.pendingFault
		c.pendingFault = nil
		c.cb.Fatal(f.Kind, f.Value)
		return
	}

	scroll := c.frame
	if c.saveSize > 0 {
		c.cb.RamWrite(0, byte(c.frame))
		scroll = int(c.cb.RamRead(0))
	}

	if c.cb.Scanline == nil {
		return
	}
	if c.frameSkip && c.frame&1 == 1 {
		return
	}

	// holding A inverts the pattern, which makes input visible without
	// any emulation behind it
	aDown := !c.joypad.A

	var row [LCDWidth]byte
	for line := 0; line < LCDHeight; line++ {
		if c.interlace && line&1 != c.frame&1 {
			continue
		}
		for x := range row {
			// stay inside the header region Init already proved readable
			src := c.cb.RomRead(uint32((line*LCDWidth + x + scroll) % HeaderSize))
			if aDown {
				src = ^src
			}
			row[x] = src
		}
		c.cb.Scanline(row[:], line)
	}
}

// Reset drops the frame counter back to zero without touching the image
// or save RAM. Resetting twice is the same as resetting once.
func (c *PatternCore) Reset() {
	c.frame = 0
	c.joypad = ReleasedJoypad()
}

// InjectFault queues an artificial fault that the next RunFrame raises
// through the bound fatal callback. It exists so the frontend's abort
// path can be exercised end to end without a faulting engine.
func (c *PatternCore) InjectFault(kind FatalKind, value uint16) {
	c.pendingFault = &FatalError{Kind: kind, Value: value}
}

// Frame returns the number of frames run since init or the last reset.
func (c *PatternCore) Frame() int { return c.frame }

func (c *PatternCore) SetJoypad(jp Joypad) { c.joypad = jp }

// Joypad returns the current line state as last written by the frontend.
func (c *PatternCore) Joypad() Joypad { return c.joypad }

func (c *PatternCore) SetInterlace(on bool) { c.interlace = on }
func (c *PatternCore) Interlace() bool      { return c.interlace }

func (c *PatternCore) SetFrameSkip(on bool) { c.frameSkip = on }
func (c *PatternCore) FrameSkip() bool      { return c.frameSkip }
