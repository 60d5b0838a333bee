package swap

import "testing"

func TestPTEEncodeSwappedRoundTrip(t *testing.T) {
	p := EncodeSwapped(42)
	if p.IsPresent() {
		t.Fatalf("expected a swapped entry to not be present")
	}
	if p.SwapSlot() != 42 {
		t.Fatalf("expected slot 42, got %d", p.SwapSlot())
	}
}

func TestPTEEncodePresentRoundTrip(t *testing.T) {
	p := EncodePresent(0x12345000, Dirty|Writable|User)
	if !p.IsPresent() {
		t.Fatalf("expected present entry to report present")
	}
	if !p.IsDirty() {
		t.Fatalf("expected dirty bit to be set")
	}
	if p.Frame() != 0x12345000 {
		t.Fatalf("expected frame 0x12345000, got %#x", p.Frame())
	}
}

func TestPTEEncodePresentMasksFrameToPageBoundary(t *testing.T) {
	p := EncodePresent(0x12345fff, 0)
	if p.Frame() != 0x12345000 {
		t.Fatalf("expected frame masked down to page boundary, got %#x", p.Frame())
	}
}

func TestPTEZeroValueIsEmpty(t *testing.T) {
	var p PTE
	if p.IsPresent() {
		t.Fatalf("zero PTE must not be present")
	}
	if p.SwapSlot() != 0 {
		t.Fatalf("zero PTE must decode to swap slot 0 (the sentinel for empty)")
	}
}
