package dotgo

// The classic dmg grey ramp, lightest to darkest, as opaque 32-bit pixels.
// Pure data, so it lives at package scope instead of being rebuilt per
// scanline.
var palette = [4]uint32{0xffffffff, 0xffa5a5a5, 0xff525252, 0xff000000}

// DrawScanline maps one row of 2-bit pixel values through the palette into
// the surface framebuffer at row line. Only the low 2 bits of each source
// value matter. The write iterates the physical display width but never
// past the logical row, so a surface wider than the emulated screen leaves
// the excess columns untouched and a narrower one truncates the row.
//
// The core invokes this up to LCDHeight times per frame, in increasing
// line order, all before the frame is presented. No allocation happens
// here.
func (d *DeviceContext) DrawScanline(pixels []byte, line int) {
	fb := d.surface.Pix()
	w := d.displayWidth
	if w > len(pixels) {
		w = len(pixels)
	}
	row := d.displayWidth * line
	for x := 0; x < w; x++ {
		fb[row+x] = palette[pixels[x]&3]
	}
}
