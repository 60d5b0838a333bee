package console

import "testing"

func TestScreenDumpCopiesOriginByteByByte(t *testing.T) {
	c, _ := newTestConsole(t)
	tty := newFakeTTY(0, "AB")
	c.Write(tty)

	count := int(c.Adapter().Cols * c.Adapter().Rows)
	buf := make([]byte, 1+count)
	buf[0] = 1 // console 1 (1-based)

	if err := c.ScreenDump(buf); err != nil {
		t.Fatalf("ScreenDump failed: %v", err)
	}
	// Byte-by-byte stride means buf[1]='A' (glyph) and buf[2]=its attribute
	// byte, not buf[2]='B' as a cell-at-a-time copy would produce.
	if buf[1] != 'A' {
		t.Errorf("expected first captured byte to be the glyph 'A', got %q", buf[1])
	}
	if buf[2] != c.VC(0).Attr {
		t.Errorf("expected second captured byte to be the attribute, got %#x", buf[2])
	}
}

func TestScreenDumpRejectsOutOfRangeConsole(t *testing.T) {
	c, _ := newTestConsole(t)
	buf := make([]byte, 1+int(c.Adapter().Cols*c.Adapter().Rows))
	buf[0] = byte(c.NumConsoles() + 1)
	if err := c.ScreenDump(buf); err == nil {
		t.Errorf("expected error for out-of-range console index")
	}
}

func TestScreenDumpRejectsShortBuffer(t *testing.T) {
	c, _ := newTestConsole(t)
	buf := []byte{1}
	if err := c.ScreenDump(buf); err == nil {
		t.Errorf("expected error for undersized buffer")
	}
}
