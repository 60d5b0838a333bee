package swap

import "testing"

func newReadySwapper(t *testing.T, nFrames int) (*Swapper, *fakeFrames, *fakeDir) {
	t.Helper()
	dev := newFakeBlockDevice(SwapBits)
	bm := NewBitmap()
	for nr := 1; nr < 100; nr++ {
		bm.set(nr)
	}
	frames := newFakeFrames(0x100000, nFrames)
	dir := newFakeDir(4)
	s := NewSwapper(bm, DeviceBacking{Dev: dev}, frames, dir, Bounds{LowMemFrame: 0x100000, HighMemFrame: 0x100000 + uint32(nFrames)*PageSize}, nil)
	return s, frames, dir
}

func TestTryToSwapOutCleanPageIsFreedWithoutWrite(t *testing.T) {
	s, frames, dir := newReadySwapper(t, 4)
	frame, _ := frames.AllocHighToLow()
	table := &fakeTable{}
	dir.tables[0] = table
	table.SetEntry(5, EncodePresent(frame, Writable|User))

	if !s.TryToSwapOut(table, 5) {
		t.Fatalf("expected a clean present page to be evictable")
	}
	if table.Entry(5) != 0 {
		t.Fatalf("expected entry cleared, got %#x", table.Entry(5))
	}
	if frames.RefCount(frame) != 0 {
		t.Fatalf("expected frame freed")
	}
}

func TestTryToSwapOutDirtyPageWritesSlotAndEncodesPTE(t *testing.T) {
	s, frames, dir := newReadySwapper(t, 4)
	frame, _ := frames.AllocHighToLow()
	content := make([]byte, PageSize)
	content[0] = 0xAB
	frames.Write(frame, content)
	table := &fakeTable{}
	dir.tables[0] = table
	table.SetEntry(9, EncodePresent(frame, Dirty|Writable|User))

	if !s.TryToSwapOut(table, 9) {
		t.Fatalf("expected a dirty present page to be evictable")
	}
	pte := table.Entry(9)
	if pte.IsPresent() {
		t.Fatalf("expected entry to become not-present")
	}
	slot := pte.SwapSlot()
	if slot == 0 {
		t.Fatalf("expected a nonzero swap slot encoded")
	}
	if frames.RefCount(frame) != 0 {
		t.Fatalf("expected frame freed")
	}

	buf := make([]byte, PageSize)
	dev := s.Backing.(DeviceBacking).Dev.(*fakeBlockDevice)
	dev.ReadPage(slot, buf)
	if buf[0] != 0xAB {
		t.Fatalf("expected page contents written to the allocated slot")
	}
}

func TestTryToSwapOutRejectsNotPresent(t *testing.T) {
	s, _, dir := newReadySwapper(t, 4)
	table := &fakeTable{}
	dir.tables[0] = table
	if s.TryToSwapOut(table, 0) {
		t.Fatalf("expected an absent entry to not be an eviction candidate")
	}
}

func TestTryToSwapOutRejectsFrameOutsideBounds(t *testing.T) {
	s, _, dir := newReadySwapper(t, 4)
	table := &fakeTable{}
	dir.tables[0] = table
	table.SetEntry(0, EncodePresent(0x1000, Writable))
	if s.TryToSwapOut(table, 0) {
		t.Fatalf("expected a frame below LowMemFrame to be rejected")
	}
}

func TestTryToSwapOutLeavesSharedDirtyPageMapped(t *testing.T) {
	s, frames, dir := newReadySwapper(t, 4)
	frame, _ := frames.AllocHighToLow()
	frames.set(frame, 2, make([]byte, PageSize)) // shared, refcount 2
	table := &fakeTable{}
	dir.tables[0] = table
	table.SetEntry(3, EncodePresent(frame, Dirty|Writable|User))

	if s.TryToSwapOut(table, 3) {
		t.Fatalf("expected a shared dirty page to be left mapped")
	}
	if !table.Entry(3).IsPresent() {
		t.Fatalf("expected entry to remain present")
	}
}

func TestSwapOutFindsFirstEvictableAcrossDirectories(t *testing.T) {
	s, frames, dir := newReadySwapper(t, 4)
	table0 := &fakeTable{}
	dir.tables[0] = nil // not present, must be skipped
	table1 := &fakeTable{}
	dir.tables[1] = table1
	frame, _ := frames.AllocHighToLow()
	table1.SetEntry(7, EncodePresent(frame, Writable|User))
	_ = table0

	if !s.SwapOut() {
		t.Fatalf("expected SwapOut to find the evictable entry in directory 1")
	}
	if table1.Entry(7) != 0 {
		t.Fatalf("expected entry 7 cleared")
	}
}

func TestSwapOutReturnsFalseWhenNothingEvictable(t *testing.T) {
	s, _, _ := newReadySwapper(t, 4)
	if s.SwapOut() {
		t.Fatalf("expected no eviction candidates in an all-empty address space")
	}
}
