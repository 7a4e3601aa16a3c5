package dotgo

import "testing"

// testSurface is an in-memory Surface for exercising the loop and the
// renderer without a window.
type testSurface struct {
	w, h int
	pix  []uint32

	events []Event
	down   map[Key]bool

	// request close once this many frames have been presented (0: never)
	closeAfter int

	presents int
	rate     int
	closed   bool
}

func newTestSurface(w, h int) *testSurface {
	return &testSurface{
		w: w, h: h,
		pix:  make([]uint32, w*h),
		down: map[Key]bool{},
	}
}

func (s *testSurface) Pix() []uint32      { return s.pix }
func (s *testSurface) Size() (int, int)   { return s.w, s.h }
func (s *testSurface) KeyDown(k Key) bool { return s.down[k] }
func (s *testSurface) SetTargetRate(hz int) {
	s.rate = hz
}

func (s *testSurface) PollEvent() (Event, bool) {
	if len(s.events) == 0 {
		return Event{}, false
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev, true
}

func (s *testSurface) CloseRequested() bool {
	return s.closeAfter > 0 && s.presents >= s.closeAfter
}

func (s *testSurface) Present() error {
	s.presents++
	return nil
}

func (s *testSurface) Close() error {
	s.closed = true
	return nil
}

// stubCore is a minimal scripted Core for loop tests.
type stubCore struct {
	cb Callbacks

	initErr  error
	saveSize int

	frames int
	resets int

	joypad Joypad
	// joypad state observed at the start of each frame
	joypadLog []Joypad

	interlace bool
	frameSkip bool

	// raise a fault during this frame (0: never)
	faultOnFrame int
	faultKind    FatalKind
	faultValue   uint16
}

func (c *stubCore) Init(cb Callbacks) error {
	c.cb = cb
	return c.initErr
}

func (c *stubCore) SaveSize() int { return c.saveSize }

func (c *stubCore) RunFrame() {
	c.frames++
	c.joypadLog = append(c.joypadLog, c.joypad)
	if c.faultOnFrame != 0 && c.frames == c.faultOnFrame {
		c.cb.Fatal(c.faultKind, c.faultValue)
	}
}

func (c *stubCore) Reset() { c.resets++ }

func (c *stubCore) SetJoypad(jp Joypad)  { c.joypad = jp }
func (c *stubCore) SetInterlace(on bool) { c.interlace = on }
func (c *stubCore) Interlace() bool      { return c.interlace }
func (c *stubCore) SetFrameSkip(on bool) { c.frameSkip = on }
func (c *stubCore) FrameSkip() bool      { return c.frameSkip }

// makeTestImage builds a minimal valid cart image: plausible title, the
// given RAM size code, and a correct header checksum. Bytes outside the
// header hold a ramp so pattern reads are deterministic.
func makeTestImage(t *testing.T, ramCode byte) []byte {
	t.Helper()
	rom := make([]byte, HeaderSize)
	for i := range rom {
		rom[i] = byte(i)
	}
	copy(rom[0x134:0x144], "TESTPATTERN\x00\x00\x00\x00\x00")
	rom[0x143] = 0x00 // dmg
	rom[0x147] = 0x03 // mbc1+ram+battery
	rom[0x148] = 0x00 // 32k rom
	rom[0x149] = ramCode
	rom[0x14d] = headerChecksum(rom)
	return rom
}
