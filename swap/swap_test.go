package swap

import "testing"

// TestRoundTripSwapOutThenSwapInRestoresExactPageAndBitmap exercises
// the full page-out/page-in round trip end to end: a dirty page is
// evicted, the PTE is checked against the slot<<1 encoding, and
// swapping it back in must reproduce the page byte for byte while
// returning the bitmap to its pre-eviction state.
func TestRoundTripSwapOutThenSwapInRestoresExactPageAndBitmap(t *testing.T) {
	s, frames, dir := newReadySwapper(t, 4)
	frame, _ := frames.AllocHighToLow()

	original := make([]byte, PageSize)
	for i := range original {
		original[i] = byte((i*31 + 7) & 0xff)
	}
	frames.Write(frame, original)

	table := &fakeTable{}
	dir.tables[0] = table
	table.SetEntry(11, EncodePresent(frame, Dirty|Writable|User))

	if !s.TryToSwapOut(table, 11) {
		t.Fatalf("expected page-out to succeed on a dirty page")
	}
	pte := table.Entry(11)
	if pte.IsPresent() {
		t.Fatalf("expected entry not-present after page-out")
	}
	slot := pte.SwapSlot()
	if slot == 0 {
		t.Fatalf("expected a real swap slot")
	}
	if int(pte) != slot<<1 {
		t.Fatalf("expected PTE encoded as slot<<1, got %#x for slot %d", pte, slot)
	}
	if s.Bitmap.Bit(slot) {
		t.Fatalf("expected the allocated slot's bitmap bit clear while in use")
	}

	if err := s.SwapIn(table, 11); err != nil {
		t.Fatalf("SwapIn: %v", err)
	}
	restoredPTE := table.Entry(11)
	if !restoredPTE.IsPresent() {
		t.Fatalf("expected entry present after page-in")
	}

	got := make([]byte, PageSize)
	frames.Read(restoredPTE.Frame(), got)
	for i := range original {
		if got[i] != original[i] {
			t.Fatalf("byte %d mismatch: want %d got %d", i, original[i], got[i])
		}
	}
	if !s.Bitmap.Bit(slot) {
		t.Fatalf("expected the bitmap bit restored to free after page-in")
	}
}

func TestGetFreePageReportsOutOfMemoryWhenNothingEvictable(t *testing.T) {
	s, _, _ := newReadySwapper(t, 0)
	if _, ok := s.GetFreePage(); ok {
		t.Fatalf("expected failure with zero frames and nothing to evict")
	}
}
