package swap

import "testing"

func TestBitmapAllocSkipsSlotZero(t *testing.T) {
	b := NewBitmap()
	b.set(0) // slot 0 marked free, every other slot in use
	if _, ok := b.Alloc(); ok {
		t.Fatalf("expected Alloc to refuse to hand out slot 0")
	}
}

func TestBitmapAllocReturnsLowestFreeSlot(t *testing.T) {
	b := NewBitmap()
	b.set(1)
	b.set(5)
	slot, ok := b.Alloc()
	if !ok || slot != 1 {
		t.Fatalf("expected slot 1, got %d ok=%v", slot, ok)
	}
	slot2, ok := b.Alloc()
	if !ok || slot2 != 5 {
		t.Fatalf("expected slot 5, got %d ok=%v", slot2, ok)
	}
	if _, ok := b.Alloc(); ok {
		t.Fatalf("expected exhaustion")
	}
}

func TestBitmapFreeRoundTrip(t *testing.T) {
	b := NewBitmap()
	b.set(7)
	slot, _ := b.Alloc()
	if slot != 7 {
		t.Fatalf("expected slot 7, got %d", slot)
	}
	if b.Bit(7) {
		t.Fatalf("expected bit 7 clear after alloc")
	}
	if already := b.Free(7); already {
		t.Fatalf("did not expect a double-free on first free")
	}
	if !b.Bit(7) {
		t.Fatalf("expected bit 7 set after free")
	}
}

func TestBitmapFreeDetectsDoubleFree(t *testing.T) {
	b := NewBitmap() // every slot starts in use, slot 3 included
	if already := b.Free(3); already {
		t.Fatalf("slot 3 was in use, so its first free is not a double-free")
	}
	if already := b.Free(3); !already {
		t.Fatalf("expected second free of slot 3 to report already-free")
	}
}

func TestBitmapFreeIgnoresSlotZeroAndOutOfRange(t *testing.T) {
	b := NewBitmap()
	if already := b.Free(0); already {
		t.Errorf("freeing slot 0 must be a silent no-op")
	}
	if already := b.Free(SwapBits); already {
		t.Errorf("freeing an out-of-range slot must be a silent no-op")
	}
	if already := b.Free(SwapBits + 100); already {
		t.Errorf("freeing a wildly out-of-range slot must be a silent no-op")
	}
}

func TestBitmapVerifySignature(t *testing.T) {
	b := NewBitmap()
	copy(b.buf[sigOffset:], signature)
	if !b.verifySignature() {
		t.Fatalf("expected signature to verify")
	}
	for i := sigOffset; i < sigOffset+sigLen; i++ {
		if b.buf[i] != 0 {
			t.Fatalf("expected signature bytes zeroed after verification")
		}
	}
}

func TestBitmapVerifySignatureRejectsGarbage(t *testing.T) {
	b := NewBitmap()
	copy(b.buf[sigOffset:], "not-a-signature")
	if b.verifySignature() {
		t.Fatalf("expected verification to fail on garbage")
	}
}
