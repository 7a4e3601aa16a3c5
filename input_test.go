package dotgo

import "testing"

func TestTranslateActiveLow(t *testing.T) {
	km := DefaultKeymap()

	// nothing pressed: every line at logical 1
	jp := km.Translate(func(Key) bool { return false })
	if jp != ReleasedJoypad() {
		t.Errorf("idle joypad = %+v, want all released", jp)
	}

	// each binding alone pulls exactly its own line low
	tests := []struct {
		key  Key
		line func(Joypad) bool
	}{
		{km.Up, func(jp Joypad) bool { return jp.Up }},
		{km.Down, func(jp Joypad) bool { return jp.Down }},
		{km.Left, func(jp Joypad) bool { return jp.Left }},
		{km.Right, func(jp Joypad) bool { return jp.Right }},
		{km.A, func(jp Joypad) bool { return jp.A }},
		{km.B, func(jp Joypad) bool { return jp.B }},
		{km.Sel, func(jp Joypad) bool { return jp.Sel }},
		{km.Start, func(jp Joypad) bool { return jp.Start }},
	}
	for _, tt := range tests {
		pressed := tt.key
		jp := km.Translate(func(k Key) bool { return k == pressed })
		if tt.line(jp) {
			t.Errorf("key %d pressed but line still at 1", pressed)
		}
		low := 0
		for _, line := range []bool{jp.Up, jp.Down, jp.Left, jp.Right, jp.A, jp.B, jp.Sel, jp.Start} {
			if !line {
				low++
			}
		}
		if low != 1 {
			t.Errorf("key %d pressed: %d lines low, want 1", pressed, low)
		}
	}
}

func TestTranslateRecomputesEveryLine(t *testing.T) {
	km := DefaultKeymap()

	jp := km.Translate(func(k Key) bool { return k == km.A })
	if jp.A {
		t.Fatal("A line should be low")
	}

	// after release, a fresh sample must not retain the old line
	jp = km.Translate(func(Key) bool { return false })
	if !jp.A {
		t.Error("A line stale after release")
	}
}

func TestHotkeys(t *testing.T) {
	km := DefaultKeymap()

	tests := []struct {
		key  Key
		want Hotkey
	}{
		{km.Reset, HotkeyReset},
		{km.Interlace, HotkeyInterlace},
		{km.FrameSkip, HotkeyFrameSkip},
		{km.A, HotkeyNone},
		{KeyNone, HotkeyNone},
	}
	for _, tt := range tests {
		if got := km.Hotkey(tt.key); got != tt.want {
			t.Errorf("Hotkey(%d) = %d, want %d", tt.key, got, tt.want)
		}
	}
}
