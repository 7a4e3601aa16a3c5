package dotgo

// DeviceContext is the memory and display linkage the frontend owns and
// lends to a core: the cart image, the battery-backed save RAM, and a
// non-owned reference to the surface it renders into. Ownership is
// single-owner and single-threaded, so there is no locking discipline;
// the core touches this state only through the bound callbacks, and only
// from inside RunFrame.
type DeviceContext struct {
	rom     []byte
	saveRAM []byte

	surface Surface

	// stride of the physical surface, distinct from the logical
	// emulated width
	displayWidth int

	closed bool
}

// NewDeviceContext takes ownership of rom and links the device to surface.
// The surface's physical width is cached here and used as the framebuffer
// row stride for the life of the device.
func NewDeviceContext(rom []byte, surface Surface) *DeviceContext {
	w, _ := surface.Size()
	return &DeviceContext{
		rom:          rom,
		surface:      surface,
		displayWidth: w,
	}
}

// AllocSaveRAM sizes the save-RAM buffer. size comes from the core's
// save-size query after init, so it always matches what the loaded image
// declares.
func (d *DeviceContext) AllocSaveRAM(size int) {
	d.saveRAM = make([]byte, size)
}

// RomRead returns a byte from the cart image at the given address.
func (d *DeviceContext) RomRead(addr uint32) byte {
	return d.rom[addr]
}

// RamRead returns a byte from the save RAM at the given address. Addresses
// are pre-validated by the core against the declared save-RAM size, so no
// bounds check happens here.
func (d *DeviceContext) RamRead(addr uint32) byte {
	return d.saveRAM[addr]
}

// RamWrite writes a byte to the save RAM at the given address.
func (d *DeviceContext) RamWrite(addr uint32, val byte) {
	d.saveRAM[addr] = val
}

// ROM returns the owned cart image.
func (d *DeviceContext) ROM() []byte { return d.rom }

// SaveRAM returns the owned save-RAM buffer, nil before AllocSaveRAM.
func (d *DeviceContext) SaveRAM() []byte { return d.saveRAM }

// Callbacks returns the callback set binding this device into a core.
// fatal is the frontend's fatal-error handler; it runs with the device
// still intact so diagnostics can be emitted before release.
func (d *DeviceContext) Callbacks(fatal func(kind FatalKind, value uint16)) Callbacks {
	return Callbacks{
		RomRead:  d.RomRead,
		RamRead:  d.RamRead,
		RamWrite: d.RamWrite,
		Fatal:    fatal,
		Scanline: d.DrawScanline,
	}
}

// Close releases the save RAM and then the image. Every exit path ends up
// here exactly once; a second call is a no-op.
func (d *DeviceContext) Close() {
	if d.closed {
		return
	}
	d.closed = true
	d.saveRAM = nil
	d.rom = nil
}

// Closed reports whether the owned buffers have been released.
func (d *DeviceContext) Closed() bool { return d.closed }
