package console

import "testing"

// newColorConsole returns the standard EGA-mono test console, which is
// not color-capable; tests that need the color path set
// adapter.CanColor themselves.
func newColorConsole(t *testing.T) *Console {
	t.Helper()
	c, _ := newTestConsole(t)
	return c
}

func TestSGRResetRestoresDefault(t *testing.T) {
	c := newColorConsole(t)
	tty := newFakeTTY(0, "\x1b[1m\x1b[0m")
	c.Write(tty)
	vc := c.VC(0)
	if vc.Attr != vc.DefAttr {
		t.Errorf("expected SGR 0 to restore default attribute, got %#x want %#x", vc.Attr, vc.DefAttr)
	}
}

func TestSGRBoldSetsBit3(t *testing.T) {
	c := newColorConsole(t)
	tty := newFakeTTY(0, "\x1b[1m")
	c.Write(tty)
	vc := c.VC(0)
	if vc.Attr&0x08 == 0 {
		t.Errorf("expected SGR 1 to set bit 3, got %#x", vc.Attr)
	}
}

func TestSGRBlinkSetsBit7(t *testing.T) {
	c := newColorConsole(t)
	tty := newFakeTTY(0, "\x1b[5m")
	c.Write(tty)
	vc := c.VC(0)
	if vc.Attr&0x80 == 0 {
		t.Errorf("expected SGR 5 to set bit 7, got %#x", vc.Attr)
	}
}

func TestSGRForegroundColor(t *testing.T) {
	c := newColorConsole(t) // EGAMono: not color-capable, so this should have no effect
	tty := newFakeTTY(0, "\x1b[32m")
	c.Write(tty)
	vc := c.VC(0)
	if vc.Attr&0x0f != vc.DefAttr&0x0f {
		t.Errorf("expected color SGR to be a no-op on a monochrome adapter, got %#x", vc.Attr)
	}
}

func TestSGRUnderlineMonochrome(t *testing.T) {
	c := newColorConsole(t)
	tty := newFakeTTY(0, "\x1b[4m")
	c.Write(tty)
	vc := c.VC(0)
	if vc.Attr&0x01 == 0 {
		t.Errorf("expected SGR 4 to set the underline bit on a monochrome adapter, got %#x", vc.Attr)
	}
}

func TestSGRBoldOverrideUsedByUnderline(t *testing.T) {
	c := newColorConsole(t)
	c.adapter.CanColor = true // force the color-capable underline path
	tty := newFakeTTY(0, "\x1b[5;18;22b\x1b[4m")
	c.Write(tty)
	vc := c.VC(0)
	if vc.Attr&0x0f != 5 {
		t.Errorf("expected underline to use the bold override foreground 5, got %#x", vc.Attr&0x0f)
	}
}

func TestSGRReverseSwapsNibbles(t *testing.T) {
	c := newColorConsole(t)
	tty := newFakeTTY(0, "\x1b[7m")
	c.Write(tty)
	vc := c.VC(0)
	want := vc.DefAttr<<4 | vc.DefAttr>>4
	if vc.Attr != want {
		t.Errorf("expected SGR 7 to swap nibbles, got %#x want %#x", vc.Attr, want)
	}
}
