/*
 * Page-table entry encoding.
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

package swap

// PTE is a page-table entry: either present, with a physical frame in
// its upper 20 bits and status flags in its low 12, or not present,
// with a swap-slot number occupying every bit above bit 0.
type PTE uint32

// Status bits, matching the x86 page-table entry layout the original
// kernel used directly.
const (
	Present  PTE = 1 << 0
	Writable PTE = 1 << 1
	User     PTE = 1 << 2
	Dirty    PTE = 1 << 6
)

const frameMask = ^PTE(0xfff)

// IsPresent reports whether the entry's present bit is set.
func (p PTE) IsPresent() bool { return p&Present != 0 }

// IsDirty reports whether the entry's dirty bit is set. Only
// meaningful when IsPresent is true.
func (p PTE) IsDirty() bool { return p&Dirty != 0 }

// Frame returns the physical frame address a present entry encodes.
func (p PTE) Frame() uint32 { return uint32(p & frameMask) }

// SwapSlot returns the swap-slot number a not-present, nonzero entry
// encodes.
func (p PTE) SwapSlot() int { return int(p >> 1) }

// EncodeSwapped builds the not-present PTE value recording slot.
func EncodeSwapped(slot int) PTE { return PTE(slot) << 1 }

// EncodePresent builds a present PTE for frame with the given status
// flags folded in (Present is added automatically).
func EncodePresent(frame uint32, flags PTE) PTE {
	return PTE(frame)&frameMask | flags | Present
}
