package dotgo

import "fmt"

// CartInfo is the part of a dmg cart header the frontend cares about.
// The RAM size code is the interesting field: it declares the size of the
// battery-backed save RAM that backs the core's save-size query.
type CartInfo struct {
	// Title is the game title (11 or 16 chars)
	Title string
	// CGBFlag describes if it's CGB, DMG, or both-supported
	CGBFlag byte
	// CartridgeType indicates MBC-type, accessories, etc
	CartridgeType byte
	// ROMSizeCode indicates the size of the ROM
	ROMSizeCode byte
	// RAMSizeCode indicates the size of the RAM
	RAMSizeCode byte
	// HeaderChecksum is a checksum of the header which must be correct for the game to run
	HeaderChecksum byte
}

// RAMSize decodes the ram size code into an actual byte count.
func (ci *CartInfo) RAMSize() (int, error) {
	sizes := map[byte]int{
		0x00: 0,
		0x01: 2 * 1024,
		0x02: 8 * 1024,
		0x03: 32 * 1024,
		0x04: 128 * 1024,
		0x05: 64 * 1024,
	}
	size, ok := sizes[ci.RAMSizeCode]
	if !ok {
		return 0, fmt.Errorf("unknown RAM size code 0x%02x", ci.RAMSizeCode)
	}
	return size, nil
}

// ROMSize decodes the ROM size code into an actual byte count.
func (ci *CartInfo) ROMSize() (int, error) {
	sizes := map[byte]int{
		0x00: 32 * 1024,   // no banking
		0x01: 64 * 1024,   // 4 banks
		0x02: 128 * 1024,  // 8 banks
		0x03: 256 * 1024,  // 16 banks
		0x04: 512 * 1024,  // 32 banks
		0x05: 1024 * 1024, // 64 banks
		0x06: 2048 * 1024, // 128 banks
		0x07: 4096 * 1024, // 256 banks
		0x08: 8192 * 1024, // 512 banks
	}
	size, ok := sizes[ci.ROMSizeCode]
	if !ok {
		return 0, fmt.Errorf("unknown ROM size code 0x%02x", ci.ROMSizeCode)
	}
	return size, nil
}

// ParseCartInfo parses a dmg cart header. header must hold at least the
// first HeaderSize bytes of the image.
func ParseCartInfo(header []byte) (*CartInfo, error) {
	if len(header) < HeaderSize {
		return nil, fmt.Errorf("cart header truncated: %d bytes", len(header))
	}

	cart := CartInfo{}
	cart.CGBFlag = header[0x143]
	if cart.CGBFlag >= 0x80 {
		cart.Title = string(header[0x134:0x13f])
	} else {
		cart.Title = string(header[0x134:0x144])
	}
	cart.Title = stripZeroes(cart.Title)
	cart.CartridgeType = header[0x147]
	cart.ROMSizeCode = header[0x148]
	cart.RAMSizeCode = header[0x149]
	cart.HeaderChecksum = header[0x14d]

	return &cart, nil
}

func stripZeroes(s string) string {
	cursor := len(s)
	for cursor > 0 && s[cursor-1] == '\x00' {
		cursor--
	}
	return s[:cursor]
}
