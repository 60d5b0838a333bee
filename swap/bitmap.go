/*
 * Swap-slot bitmap.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package swap is a demand-paging swap manager: a bitmap slot
// allocator over a swap block device or swap file, a page-out engine
// that walks the page tables looking for eviction candidates, and a
// page-in engine that services a fault against a swapped PTE.
package swap

import "sync"

// PageSize is the granularity of everything this package moves: one
// slot, one frame, one bitmap bit.
const PageSize = 4096

// SwapBits is the number of slots tracked by one bitmap page (one bit
// per byte-aligned slot across a 4096-byte bitmap).
const SwapBits = PageSize << 3

// sigOffset/sigLen locate the on-disk "SWAP-SPACE" signature within
// the bitmap page.
const (
	sigOffset = 4086
	sigLen    = 10
)

const signature = "SWAP-SPACE"

// Bitmap is the one-page, test-and-set/test-and-clear free-slot map:
// bit set means the slot is free, bit clear means in use. Slot 0 is
// reserved (on disk it is the page holding the bitmap and its
// signature) and is never handed out by Alloc.
type Bitmap struct {
	mu  sync.Mutex
	buf [PageSize]byte
}

// NewBitmap returns a bitmap with every bit clear (all slots in use),
// matching the state right after the signature bytes are zeroed.
func NewBitmap() *Bitmap {
	return &Bitmap{}
}

func (b *Bitmap) bit(nr int) bool {
	return b.buf[nr>>3]&(1<<uint(nr&7)) != 0
}

func (b *Bitmap) set(nr int) {
	b.buf[nr>>3] |= 1 << uint(nr&7)
}

func (b *Bitmap) clear(nr int) {
	b.buf[nr>>3] &^= 1 << uint(nr&7)
}

// Bit reports whether slot nr is currently marked free.
func (b *Bitmap) Bit(nr int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bit(nr)
}

// testAndClear atomically reads bit nr and clears it, returning the
// value it held before the clear.
func (b *Bitmap) testAndClear(nr int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	old := b.bit(nr)
	b.clear(nr)
	return old
}

// testAndSet atomically reads bit nr and sets it, returning the value
// it held before the set.
func (b *Bitmap) testAndSet(nr int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	old := b.bit(nr)
	b.set(nr)
	return old
}

// Alloc scans from bit 1 upward and returns the first slot it
// atomically clears. Slot 0 is never considered. Returns ok=false on
// exhaustion.
func (b *Bitmap) Alloc() (slot int, ok bool) {
	for nr := 1; nr < SwapBits; nr++ {
		if b.testAndClear(nr) {
			return nr, true
		}
	}
	return 0, false
}

// Free returns slot to the free pool. Freeing slot 0, or a slot
// outside the bitmap's range, is a no-op. Freeing an already-free slot
// is a double-free: the bit is left set and the caller is told so it
// can log a consistency alarm.
func (b *Bitmap) Free(slot int) (alreadyFree bool) {
	if slot == 0 || slot >= SwapBits {
		return false
	}
	return b.testAndSet(slot)
}

// Bytes exposes the raw page for I/O (loading/saving to slot 0 of the
// backing store) and for the signature check in init_swapping.
func (b *Bitmap) Bytes() []byte { return b.buf[:] }

// verifySignature checks and then erases the on-disk "SWAP-SPACE"
// marker, per the on-disk layout in spec.md §6.
func (b *Bitmap) verifySignature() bool {
	if string(b.buf[sigOffset:sigOffset+sigLen]) != signature {
		return false
	}
	for i := sigOffset; i < sigOffset+sigLen; i++ {
		b.buf[i] = 0
	}
	return true
}
