package console

import "testing"

func TestGotoxyAcceptsPreWrapColumn(t *testing.T) {
	c, _ := newTestConsole(t)
	c.gotoxy(0, int(c.adapter.Cols), 1)
	vc := c.VC(0)
	if vc.X != int(c.adapter.Cols) || vc.Y != 1 {
		t.Fatalf("expected x=cols to be accepted as a legal pre-wrap position, got (%d,%d)", vc.X, vc.Y)
	}
}

func TestGotoxyRejectsColumnPastWrap(t *testing.T) {
	c, _ := newTestConsole(t)
	c.gotoxy(0, 1, 1)
	c.gotoxy(0, int(c.adapter.Cols)+1, 2)
	vc := c.VC(0)
	if vc.X != 1 || vc.Y != 1 {
		t.Fatalf("expected out-of-range x to be rejected, got (%d,%d)", vc.X, vc.Y)
	}
}

func TestGotoxyRejectsRowAtRowCount(t *testing.T) {
	c, _ := newTestConsole(t)
	c.gotoxy(0, 1, 1)
	c.gotoxy(0, 2, int(c.adapter.Rows))
	vc := c.VC(0)
	if vc.X != 1 || vc.Y != 1 {
		t.Fatalf("expected y=rows to be rejected, got (%d,%d)", vc.X, vc.Y)
	}
}

func TestGotoxyComputesAbsolutePosition(t *testing.T) {
	c, _ := newTestConsole(t)
	c.gotoxy(0, 2, 1)
	vc := c.VC(0)
	want := vc.Origin + c.adapter.RowBytes + 2*2
	if vc.Pos != want {
		t.Fatalf("expected pos %d, got %d", want, vc.Pos)
	}
}
