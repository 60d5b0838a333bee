/*
 * Swap device initialization and signature verification.
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

import "fmt"

// InitSwapping reads slot 0 of the backing store, verifies its
// "SWAP-SPACE" signature, checks that the bitmap agrees with the
// device's advertised size (slot 0 reserved, everything past the
// device's last page marked never-free), and counts the free slots
// available. It returns the number of free slots found, or an error
// describing which check failed — every failure here is the
// equivalent of the original logging a complaint and refusing to use
// the device, never a panic.
//
// When SizeBlocks was populated from a SWAPDEV size= directive, the
// device size is taken from there in 1 KiB blocks, converted to pages
// (>>2) the same way init_swapping shifts blk_size[]'s block count,
// and a device under 100 blocks is rejected outright as too small to
// bother with.
func (s *Swapper) InitSwapping() (free int, err error) {
	size := s.Backing.SizePages()
	if s.SizeBlocks > 0 {
		if s.SizeBlocks < 100 {
			return 0, fmt.Errorf("swap: swap device too small (%d blocks)", s.SizeBlocks)
		}
		size = s.SizeBlocks >> 2
	}
	if size > SwapBits {
		size = SwapBits
	}

	buf := make([]byte, PageSize)
	if err := s.Backing.ReadPage(0, buf); err != nil {
		return 0, fmt.Errorf("swap: reading bitmap page: %w", err)
	}
	copy(s.Bitmap.Bytes(), buf)

	if !s.Bitmap.verifySignature() {
		return 0, fmt.Errorf("swap: unable to find swap-space signature")
	}

	if s.Bitmap.Bit(0) {
		return 0, fmt.Errorf("swap: bit 0 of bitmap is set, device is corrupted")
	}
	for nr := size; nr < SwapBits; nr++ {
		if s.Bitmap.Bit(nr) {
			return 0, fmt.Errorf("swap: swap-space size %d does not match bitmap", size)
		}
	}

	for nr := 1; nr < size; nr++ {
		if s.Bitmap.Bit(nr) {
			free++
		}
	}
	if free == 0 {
		return 0, fmt.Errorf("swap: swap-space has no free slots")
	}
	return free, nil
}
