/*
 * Memory-management and block-I/O collaborator interfaces.
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

// PageTable is one page table's 1024 page-table entries, addressed by
// index (0..1023).
type PageTable interface {
	Entry(i int) PTE
	SetEntry(i int, p PTE)
}

// Directory is the page directory swap_out's cursor walks: a fixed
// number of slots, each either absent or pointing at a PageTable.
type Directory interface {
	NumEntries() int
	Table(i int) (table PageTable, present bool)
}

// FrameTable is the physical-frame reference-count map (mem_map) plus
// the high-to-low free-frame scan get_free_page performs directly
// against it.
type FrameTable interface {
	// RefCount returns how many PTEs currently reference frame.
	RefCount(frame uint32) int
	// Free drops a frame's reference count to zero, returning it to
	// the free pool.
	Free(frame uint32)
	// AllocHighToLow finds the highest-addressed free frame, marks it
	// used (ref count 1), zero-fills it, and returns its address. ok
	// is false when no frame under the low/high memory bound is free.
	AllocHighToLow() (frame uint32, ok bool)
	// Read and Write move a whole page's bytes at frame, standing in
	// for the original's direct pointer dereference of physical
	// memory.
	Read(frame uint32, buf []byte)
	Write(frame uint32, buf []byte)
}
