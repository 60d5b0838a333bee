package swap

import "testing"

func TestNewDemoBackingPassesInitSwapping(t *testing.T) {
	backing := NewDemoBacking(100)
	bm := NewBitmap()
	frames := newFakeFrames(0x100000, 1)
	dir := newFakeDir(1)
	s := NewSwapper(bm, backing, frames, dir, Bounds{}, nil)

	free, err := s.InitSwapping()
	if err != nil {
		t.Fatalf("InitSwapping on a freshly built demo device: %v", err)
	}
	if free != 99 {
		t.Fatalf("expected 99 free slots (1..99), got %d", free)
	}
}

func TestMemBlockDeviceRoundTrip(t *testing.T) {
	d := NewMemBlockDevice(4)
	buf := make([]byte, PageSize)
	buf[0] = 9
	if err := d.WritePage(2, buf); err != nil {
		t.Fatalf("WritePage: %v", err)
	}
	got := make([]byte, PageSize)
	if err := d.ReadPage(2, got); err != nil {
		t.Fatalf("ReadPage: %v", err)
	}
	if got[0] != 9 {
		t.Fatalf("expected round-tripped byte, got %d", got[0])
	}
	if err := d.ReadPage(99, got); err == nil {
		t.Fatalf("expected an out-of-range read to error")
	}
}
