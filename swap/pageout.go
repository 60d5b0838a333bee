/*
 * Page-out engine.
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

// TryToSwapOut considers a single present PTE for eviction. It refuses
// entries that are absent, or whose frame falls outside the
// paged-memory bounds (kernel-reserved low memory, or above the
// configured high-memory limit). A clean page is simply unmapped: its
// frame can be reclaimed for free since the backing store (the
// executable it came from, or nothing at all) already has its
// contents. A dirty page is written to a freshly allocated swap slot
// before being unmapped. Either way the frame's reference count is
// dropped to free it. Returns false, leaving the entry unchanged, when
// the entry is absent or out of bounds, when a dirty page's frame is
// shared, when no swap slot is free, or when the backing-store write
// fails; true means the frame is now free.
func (s *Swapper) TryToSwapOut(table PageTable, i int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tryToSwapOut(table, i)
}

func (s *Swapper) tryToSwapOut(table PageTable, i int) bool {
	pte := table.Entry(i)
	if !pte.IsPresent() {
		return false
	}
	frame := pte.Frame()
	if frame < s.Bounds.LowMemFrame || frame >= s.Bounds.HighMemFrame {
		return false
	}

	if !pte.IsDirty() {
		table.SetEntry(i, 0)
		s.Frames.Free(frame)
		return true
	}

	if s.Frames.RefCount(frame) != 1 {
		// Shared and dirty: leave it mapped, another reference will
		// eventually page it out once it's the sole owner.
		return false
	}

	slot, ok := s.Bitmap.Alloc()
	if !ok {
		s.Log.Warn("swap: out of swap space")
		return false
	}

	buf := make([]byte, PageSize)
	s.Frames.Read(frame, buf)
	if err := s.Backing.WritePage(slot, buf); err != nil {
		s.Log.Error("swap: write to backing store failed", "error", err)
		s.Bitmap.Free(slot)
		return false
	}

	table.SetEntry(i, EncodeSwapped(slot))
	s.Frames.Free(frame)
	return true
}

// swapOut resumes the persistent directory/page-table cursor and
// tries every present entry it finds until one pages out successfully
// or the whole address space has been scanned once, matching the
// original swap_out's single full sweep per call.
func (s *Swapper) swapOut() bool {
	s.mu.Lock()
	dir := s.Dir
	n := dir.NumEntries()
	if n == 0 {
		s.mu.Unlock()
		return false
	}

	startDir, startTable := s.dirIdx, s.tableIdx
	dirIdx, tableIdx := startDir, startTable
	s.mu.Unlock()

	for scanned := 0; scanned < n; scanned++ {
		table, present := dir.Table(dirIdx)
		if present {
			for tableIdx < 1024 {
				if s.TryToSwapOut(table, tableIdx) {
					s.mu.Lock()
					s.dirIdx, s.tableIdx = dirIdx, tableIdx
					s.mu.Unlock()
					return true
				}
				tableIdx++
			}
		}
		dirIdx = (dirIdx + 1) % n
		tableIdx = 0
	}

	s.mu.Lock()
	s.dirIdx, s.tableIdx = startDir, startTable
	s.mu.Unlock()
	s.Log.Warn("swap: out of swap-memory")
	return false
}

// SwapOut runs one full scan of the address space looking for a page
// to evict, returning whether it found one.
func (s *Swapper) SwapOut() bool {
	return s.swapOut()
}
