/*
 * In-process physical memory and page tables for the demo harness.
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

import "sync"

// FlatMemory is a bounds-checked, page-addressed physical memory
// array: the hosted stand-in for dereferencing a physical frame
// address directly the way get_free_page and swap_in did.
type FlatMemory struct {
	mu    sync.Mutex
	base  uint32
	pages [][]byte
	refs  []int
}

// NewFlatMemory allocates nPages zero-filled frames starting at base.
func NewFlatMemory(base uint32, nPages int) *FlatMemory {
	m := &FlatMemory{base: base, pages: make([][]byte, nPages), refs: make([]int, nPages)}
	for i := range m.pages {
		m.pages[i] = make([]byte, PageSize)
	}
	return m
}

func (m *FlatMemory) index(frame uint32) int { return int((frame - m.base) / PageSize) }

func (m *FlatMemory) RefCount(frame uint32) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.refs[m.index(frame)]
}

func (m *FlatMemory) Free(frame uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refs[m.index(frame)] = 0
}

func (m *FlatMemory) AllocHighToLow() (uint32, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.pages) - 1; i >= 0; i-- {
		if m.refs[i] == 0 {
			m.refs[i] = 1
			for j := range m.pages[i] {
				m.pages[i][j] = 0
			}
			return m.base + uint32(i)*PageSize, true
		}
	}
	return 0, false
}

func (m *FlatMemory) Read(frame uint32, buf []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	copy(buf, m.pages[m.index(frame)])
}

func (m *FlatMemory) Write(frame uint32, buf []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	copy(m.pages[m.index(frame)], buf)
}

// Mark sets frame's reference count directly, used to seed a demo
// workload with already-resident, possibly-shared pages.
func (m *FlatMemory) Mark(frame uint32, refs int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refs[m.index(frame)] = refs
}

// FlatTable is a 1024-entry PageTable backed by a plain slice.
type FlatTable struct {
	Entries [1024]PTE
}

func (t *FlatTable) Entry(i int) PTE       { return t.Entries[i] }
func (t *FlatTable) SetEntry(i int, p PTE) { t.Entries[i] = p }

// FlatDirectory is a Directory over a fixed set of optional
// FlatTables, the demo harness's stand-in for a process's page
// directory.
type FlatDirectory struct {
	Tables []*FlatTable
}

// NewFlatDirectory returns a directory with n absent entries.
func NewFlatDirectory(n int) *FlatDirectory {
	return &FlatDirectory{Tables: make([]*FlatTable, n)}
}

func (d *FlatDirectory) NumEntries() int { return len(d.Tables) }

func (d *FlatDirectory) Table(i int) (PageTable, bool) {
	t := d.Tables[i]
	if t == nil {
		return nil, false
	}
	return t, true
}
