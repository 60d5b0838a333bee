/*
 * Page-in engine.
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

// SwapIn services a page fault against a not-present PTE that encodes
// a swap slot: allocate a frame (swapping something else out if
// necessary), read the slot's contents into it, return the slot to
// the free pool, and rewrite the PTE as present, dirty (it must be
// written back somewhere when it's evicted again, since the slot it
// came from is already gone), writable and user-accessible.
func (s *Swapper) SwapIn(table PageTable, i int) error {
	pte := table.Entry(i)
	if pte.IsPresent() {
		return fmt.Errorf("swap: swap_in called on a present entry")
	}
	slot := pte.SwapSlot()
	if slot == 0 {
		return fmt.Errorf("swap: swap_in called on an empty entry")
	}

	frame, ok := s.GetFreePage()
	if !ok {
		s.OOM() // does not return under the default handler
		return nil
	}

	buf := make([]byte, PageSize)
	if err := s.Backing.ReadPage(slot, buf); err != nil {
		return fmt.Errorf("swap: read from backing store failed: %w", err)
	}
	s.Frames.Write(frame, buf)

	s.mu.Lock()
	if s.Bitmap.Free(slot) {
		s.Log.Warn("swap: swapping in multiply swapped page", "slot", slot)
	}
	s.mu.Unlock()

	table.SetEntry(i, EncodePresent(frame, Dirty|Writable|User))
	return nil
}
