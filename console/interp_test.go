package console

import "testing"

func TestWritePrintableAdvancesCursor(t *testing.T) {
	c, _ := newTestConsole(t)
	tty := newFakeTTY(0, "AB")
	c.Write(tty)

	vc := c.VC(0)
	if vc.X != 2 {
		t.Fatalf("expected cursor at column 2, got %d", vc.X)
	}
	g0, _ := c.mem.GetCell(vc.Origin)
	g1, _ := c.mem.GetCell(vc.Origin + 2)
	if g0 != 'A' || g1 != 'B' {
		t.Errorf("expected 'A','B' deposited, got %q,%q", g0, g1)
	}
}

func TestWriteWrapsAtLastColumn(t *testing.T) {
	c, _ := newTestConsole(t)
	tty := newFakeTTY(0, "0123456789X") // cols=10, the 11th char should wrap
	c.Write(tty)

	vc := c.VC(0)
	if vc.Y != 1 {
		t.Fatalf("expected wrap to row 1, got row %d", vc.Y)
	}
	if vc.X != 1 {
		t.Fatalf("expected cursor at column 1 on the new row, got %d", vc.X)
	}
}

func TestWriteCRLF(t *testing.T) {
	c, _ := newTestConsole(t)
	tty := newFakeTTY(0, "AB\r\nC")
	c.Write(tty)

	vc := c.VC(0)
	if vc.Y != 1 || vc.X != 1 {
		t.Fatalf("expected cursor at (1,1) after CRLF+C, got (%d,%d)", vc.X, vc.Y)
	}
}

func TestWriteScrollsAtBottomMargin(t *testing.T) {
	c, _ := newTestConsole(t)
	tty := newFakeTTY(0, "\r\n\r\n\r\n\r\nX") // 4 rows (0..3): four LFs should scroll once
	c.Write(tty)

	vc := c.VC(0)
	if vc.Y != 3 {
		t.Fatalf("expected cursor pinned at bottom row 3, got %d", vc.Y)
	}
}

func TestWriteStopsWhenTTYStopped(t *testing.T) {
	c, _ := newTestConsole(t)
	tty := newFakeTTY(0, "AB")
	tty.stopped = true
	c.Write(tty)

	vc := c.VC(0)
	if vc.X != 0 {
		t.Errorf("expected no characters consumed while stopped, X=%d", vc.X)
	}
	if tty.wq.Len() != 2 {
		t.Errorf("expected both bytes left in the write queue, got %d left", tty.wq.Len())
	}
}

func TestEscZRespondsWithIdentify(t *testing.T) {
	c, _ := newTestConsole(t)
	tty := newFakeTTY(0, "\x1bZ")
	c.Write(tty)

	if tty.rq.Len() != len(response) {
		t.Fatalf("expected %d response bytes queued, got %d", len(response), tty.rq.Len())
	}
	if tty.cooked != 1 {
		t.Errorf("expected CopyToCooked called once, got %d", tty.cooked)
	}
}

func TestEscCFullReset(t *testing.T) {
	c, _ := newTestConsole(t)
	tty := newFakeTTY(0, "\x1b[2;3r\x1bc")
	c.Write(tty)

	vc := c.VC(0)
	if vc.Top != 0 || vc.Bottom != int(c.Adapter().Rows) {
		t.Errorf("expected scroll region reset to full screen, got top=%d bottom=%d", vc.Top, vc.Bottom)
	}
	if tty.resets != 1 {
		t.Errorf("expected ResetTermios called once, got %d", tty.resets)
	}
}

func TestDestructiveBackspaceUsesEraseChar(t *testing.T) {
	c, _ := newTestConsole(t)
	tty := newFakeTTY(0, "AB")
	tty.erase = 2 // not 8, so it's distinguishable from plain backspace
	c.Write(tty)

	tty2 := newFakeTTY(0, "\x02")
	tty2.erase = 2
	c.Write(tty2)

	vc := c.VC(0)
	if vc.X != 1 {
		t.Fatalf("expected cursor to move left to column 1, got %d", vc.X)
	}
	g, _ := c.mem.GetCell(vc.Pos)
	if g != ' ' {
		t.Errorf("expected erase cell glyph ' ' after destructive backspace, got %q", g)
	}
}

func TestDestructiveBackspaceUsesEraseCharWhenEraseCharIsByteEight(t *testing.T) {
	c, _ := newTestConsole(t)
	tty := newFakeTTY(0, "AB\x08") // newFakeTTY defaults erase to 8
	c.Write(tty)

	vc := c.VC(0)
	if vc.X != 1 {
		t.Fatalf("expected cursor to move left to column 1, got %d", vc.X)
	}
	g, _ := c.mem.GetCell(vc.Pos)
	if g != ' ' {
		t.Errorf("expected destructive backspace to erase the cell when EraseChar()==8, got %q", g)
	}
}

func TestGraphicsShiftTranslatesGlyphs(t *testing.T) {
	c, _ := newTestConsole(t)
	tty := newFakeTTY(0, "\x0ej\x0f")
	c.Write(tty)

	vc := c.VC(0)
	g, _ := c.mem.GetCell(vc.Origin)
	if g != GrafTrans['j'-32] {
		t.Errorf("expected 'j' translated to box glyph %#x, got %#x", GrafTrans['j'-32], g)
	}
	if vc.Translate[0] != NormTrans[0] {
		t.Errorf("expected SI to restore normal translation table")
	}
}
