package swap

import "fmt"

// fakeFrames is an in-memory FrameTable over a small fixed set of
// frames, addressed as multiples of PageSize starting at base.
type fakeFrames struct {
	base   uint32
	n      int
	pages  map[uint32][]byte
	refs   map[uint32]int
}

func newFakeFrames(base uint32, n int) *fakeFrames {
	return &fakeFrames{base: base, n: n, pages: map[uint32][]byte{}, refs: map[uint32]int{}}
}

func (f *fakeFrames) RefCount(frame uint32) int { return f.refs[frame] }

func (f *fakeFrames) Free(frame uint32) {
	delete(f.refs, frame)
	delete(f.pages, frame)
}

func (f *fakeFrames) AllocHighToLow() (uint32, bool) {
	for i := f.n - 1; i >= 0; i-- {
		frame := f.base + uint32(i)*PageSize
		if f.refs[frame] == 0 {
			f.refs[frame] = 1
			f.pages[frame] = make([]byte, PageSize)
			return frame, true
		}
	}
	return 0, false
}

func (f *fakeFrames) Read(frame uint32, buf []byte) {
	copy(buf, f.pages[frame])
}

func (f *fakeFrames) Write(frame uint32, buf []byte) {
	page := make([]byte, PageSize)
	copy(page, buf)
	f.pages[frame] = page
	if f.refs[frame] == 0 {
		f.refs[frame] = 1
	}
}

// set lets a test manually install a page at an already-allocated
// frame with a chosen reference count, bypassing AllocHighToLow.
func (f *fakeFrames) set(frame uint32, refs int, buf []byte) {
	page := make([]byte, PageSize)
	copy(page, buf)
	f.pages[frame] = page
	f.refs[frame] = refs
}

// fakeTable is a 1024-entry PageTable.
type fakeTable struct {
	entries [1024]PTE
}

func (t *fakeTable) Entry(i int) PTE     { return t.entries[i] }
func (t *fakeTable) SetEntry(i int, p PTE) { t.entries[i] = p }

// fakeDir is a fixed-size Directory over a slice of optional tables.
type fakeDir struct {
	tables []*fakeTable // nil entry means "not present"
}

func newFakeDir(n int) *fakeDir {
	return &fakeDir{tables: make([]*fakeTable, n)}
}

func (d *fakeDir) NumEntries() int { return len(d.tables) }

func (d *fakeDir) Table(i int) (PageTable, bool) {
	t := d.tables[i]
	if t == nil {
		return nil, false
	}
	return t, true
}

// fakeBlockDevice is an in-memory BlockDevice.
type fakeBlockDevice struct {
	pages [][]byte
}

func newFakeBlockDevice(n int) *fakeBlockDevice {
	bd := &fakeBlockDevice{pages: make([][]byte, n)}
	for i := range bd.pages {
		bd.pages[i] = make([]byte, PageSize)
	}
	return bd
}

func (d *fakeBlockDevice) ReadPage(nr int, buf []byte) error {
	if nr < 0 || nr >= len(d.pages) {
		return fmt.Errorf("fakeBlockDevice: page %d out of range", nr)
	}
	copy(buf, d.pages[nr])
	return nil
}

func (d *fakeBlockDevice) WritePage(nr int, buf []byte) error {
	if nr < 0 || nr >= len(d.pages) {
		return fmt.Errorf("fakeBlockDevice: page %d out of range", nr)
	}
	copy(d.pages[nr], buf)
	return nil
}

func (d *fakeBlockDevice) SizePages() int { return len(d.pages) }

// fakeZones is an in-memory ZoneDevice.
type fakeZones struct {
	zones [][]byte
}

func newFakeZones(n int) *fakeZones {
	z := &fakeZones{zones: make([][]byte, n)}
	for i := range z.zones {
		z.zones[i] = make([]byte, zoneSize)
	}
	return z
}

func (z *fakeZones) ReadZone(zone int, buf []byte) error {
	if zone < 0 || zone >= len(z.zones) {
		return fmt.Errorf("fakeZones: zone %d out of range", zone)
	}
	copy(buf, z.zones[zone])
	return nil
}

func (z *fakeZones) WriteZone(zone int, buf []byte) error {
	if zone < 0 || zone >= len(z.zones) {
		return fmt.Errorf("fakeZones: zone %d out of range", zone)
	}
	copy(z.zones[zone], buf)
	return nil
}

// fakeInode maps logical zones 1:1 onto physical zones, i.e. a
// contiguous, hole-free swap file.
type fakeInode struct {
	n int
}

func (f fakeInode) Bmap(lblock int) (int, bool) {
	if lblock < 0 || lblock >= f.n {
		return 0, false
	}
	return lblock, true
}
