/*
 * In-memory backing device for the demo harness.
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

// MemBlockDevice is a RAM-backed BlockDevice: the demo harness's
// stand-in for a dedicated swap partition, since opening a real block
// device isn't appropriate for an unattended demo run.
type MemBlockDevice struct {
	pages [][]byte
}

// NewMemBlockDevice allocates nPages zero-filled pages.
func NewMemBlockDevice(nPages int) *MemBlockDevice {
	d := &MemBlockDevice{pages: make([][]byte, nPages)}
	for i := range d.pages {
		d.pages[i] = make([]byte, PageSize)
	}
	return d
}

func (d *MemBlockDevice) ReadPage(nr int, buf []byte) error {
	if nr < 0 || nr >= len(d.pages) {
		return fmt.Errorf("swap: page %d out of range", nr)
	}
	copy(buf, d.pages[nr])
	return nil
}

func (d *MemBlockDevice) WritePage(nr int, buf []byte) error {
	if nr < 0 || nr >= len(d.pages) {
		return fmt.Errorf("swap: page %d out of range", nr)
	}
	copy(d.pages[nr], buf)
	return nil
}

func (d *MemBlockDevice) SizePages() int { return len(d.pages) }

// NewDemoBacking returns a DeviceBacking over a freshly signed,
// all-free in-memory device of nPages pages, ready for InitSwapping
// to accept without a real swap partition behind it.
func NewDemoBacking(nPages int) DeviceBacking {
	dev := NewMemBlockDevice(nPages)

	bitmap := make([]byte, PageSize)
	copy(bitmap[sigOffset:], signature)
	for nr := 1; nr < nPages && nr < SwapBits; nr++ {
		bitmap[nr>>3] |= 1 << uint(nr&7)
	}
	dev.pages[0] = bitmap

	return DeviceBacking{Dev: dev}
}
