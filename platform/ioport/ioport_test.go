package ioport

import "testing"

func TestFakeBusRecordsWrites(t *testing.T) {
	bus := NewFakeBus()
	bus.Outb(0x3d4, 12)
	bus.OutbP(0x3d5, 0x07)

	writes := bus.Writes()
	if len(writes) != 2 {
		t.Fatalf("expected 2 writes, got %d", len(writes))
	}
	if writes[0] != (Write{Port: 0x3d4, Value: 12}) {
		t.Errorf("unexpected first write: %+v", writes[0])
	}
	if bus.Last(0x3d5) != 0x07 {
		t.Errorf("expected Last to return 0x07, got %#x", bus.Last(0x3d5))
	}
}

func TestUnmaskKeyboardIRQClearsBit(t *testing.T) {
	bus := NewFakeBus()
	bus.Outb(PortPIC1, 0xff) // all IRQs masked
	bus.Outb(PortPPI, 0x30)

	UnmaskKeyboardIRQ(bus)

	if bus.Last(PortPIC1) != 0xfd {
		t.Errorf("expected PIC mask 0xfd, got %#x", bus.Last(PortPIC1))
	}
	if bus.Last(PortPPI) != 0x30 {
		t.Errorf("expected PPI restored to 0x30, got %#x", bus.Last(PortPPI))
	}
	// Last two writes to PPI should be |0x80 then restore.
	writes := bus.Writes()
	var ppiWrites []uint8
	for _, w := range writes {
		if w.Port == PortPPI {
			ppiWrites = append(ppiWrites, w.Value)
		}
	}
	if len(ppiWrites) != 3 {
		t.Fatalf("expected 3 PPI writes (initial + toggle), got %d", len(ppiWrites))
	}
	if ppiWrites[1] != 0xb0 {
		t.Errorf("expected toggle write 0xb0, got %#x", ppiWrites[1])
	}
}
