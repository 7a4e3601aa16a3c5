package dotgo

import "testing"

func TestParseCartInfo(t *testing.T) {
	rom := makeTestImage(t, 0x02)

	info, err := ParseCartInfo(rom)
	if err != nil {
		t.Fatalf("ParseCartInfo: %v", err)
	}
	if info.Title != "TESTPATTERN" {
		t.Errorf("title = %q, want %q", info.Title, "TESTPATTERN")
	}
	if info.CartridgeType != 0x03 {
		t.Errorf("cart type = 0x%02x, want 0x03", info.CartridgeType)
	}
	if info.RAMSizeCode != 0x02 {
		t.Errorf("ram size code = 0x%02x, want 0x02", info.RAMSizeCode)
	}
}

func TestParseCartInfoTruncated(t *testing.T) {
	if _, err := ParseCartInfo(make([]byte, HeaderSize-1)); err == nil {
		t.Error("expected error for truncated header")
	}
}

func TestRAMSize(t *testing.T) {
	tests := []struct {
		code byte
		size int
	}{
		{0x00, 0},
		{0x01, 2 * 1024},
		{0x02, 8 * 1024},
		{0x03, 32 * 1024},
		{0x04, 128 * 1024},
		{0x05, 64 * 1024},
	}
	for _, tt := range tests {
		info := &CartInfo{RAMSizeCode: tt.code}
		size, err := info.RAMSize()
		if err != nil {
			t.Errorf("code 0x%02x: %v", tt.code, err)
			continue
		}
		if size != tt.size {
			t.Errorf("code 0x%02x: size = %d, want %d", tt.code, size, tt.size)
		}
	}

	info := &CartInfo{RAMSizeCode: 0x42}
	if _, err := info.RAMSize(); err == nil {
		t.Error("expected error for unknown ram size code")
	}
}

func TestROMSize(t *testing.T) {
	info := &CartInfo{ROMSizeCode: 0x05}
	size, err := info.ROMSize()
	if err != nil {
		t.Fatalf("ROMSize: %v", err)
	}
	if size != 1024*1024 {
		t.Errorf("size = %d, want %d", size, 1024*1024)
	}

	info.ROMSizeCode = 0x99
	if _, err := info.ROMSize(); err == nil {
		t.Error("expected error for unknown rom size code")
	}
}

func TestHeaderChecksum(t *testing.T) {
	rom := makeTestImage(t, 0x00)
	if got := headerChecksum(rom); got != rom[0x14d] {
		t.Errorf("checksum = 0x%02x, header says 0x%02x", got, rom[0x14d])
	}

	// any header byte flip must change the sum
	rom[0x140]++
	if got := headerChecksum(rom); got == rom[0x14d] {
		t.Error("checksum unchanged after header edit")
	}
}
