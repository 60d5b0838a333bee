package console

import "testing"

func TestBeepProgramsPITAndGatesSpeaker(t *testing.T) {
	c, bus := newTestConsole(t)
	c.Beep()

	if bus.Last(0x43) != 0xb6 {
		t.Errorf("expected PIT command 0xb6, got %#x", bus.Last(0x43))
	}
	if v := bus.Last(0x61); v&3 != 3 {
		t.Errorf("expected PPI speaker-gate bits set, got %#x", v)
	}
}

func TestBeepStopsAfterTimerFires(t *testing.T) {
	c, bus := newTestConsole(t)
	c.Beep()
	for i := 0; i < c.hz/8; i++ {
		c.Tick()
	}
	if v := bus.Last(0x61); v&3 != 0 {
		t.Errorf("expected speaker-gate bits cleared after the beep timer fires, got %#x", v)
	}
}

func TestBeepViaControlCodeInStream(t *testing.T) {
	c, bus := newTestConsole(t)
	tty := newFakeTTY(0, "\a")
	before := len(bus.Writes())
	c.Write(tty)
	if len(bus.Writes()) == before {
		t.Errorf("expected BEL to trigger port writes via Beep")
	}
}
