/*
 * Swap backing store: raw device or swap file.
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

// zoneSize is the block size a ZoneDevice moves per zone; a swap page
// always spans exactly 4 of them.
const zoneSize = 1024
const zonesPerPage = PageSize / zoneSize

// BlockDevice is a raw partition or disk dedicated entirely to swap:
// addressable directly in page-sized units starting at page 0.
type BlockDevice interface {
	ReadPage(nr int, buf []byte) error
	WritePage(nr int, buf []byte) error
	// SizePages reports the device's capacity in PageSize units.
	SizePages() int
}

// ZoneDevice is the block device underlying a swap file's filesystem,
// addressable in zoneSize units.
type ZoneDevice interface {
	ReadZone(zone int, buf []byte) error
	WriteZone(zone int, buf []byte) error
}

// Inode maps a swap file's logical page number to the 4 physical zones
// backing it, the way bmap resolves a file offset to a disk block.
type Inode interface {
	// Bmap returns the physical zone number backing logical zone
	// lblock of the file, or ok=false for a hole (unallocated, never
	// legal in a fully preallocated swap file).
	Bmap(lblock int) (zone int, ok bool)
}

// Backing is the swap manager's view of wherever slots actually live:
// read or write one whole page addressed by slot number.
type Backing interface {
	ReadPage(slot int, buf []byte) error
	WritePage(slot int, buf []byte) error
	SizePages() int
}

// DeviceBacking backs swap directly with a dedicated block device, one
// page per device page — the simple, fast path rw_swap_page took when
// SWAP_DEV named a raw partition.
type DeviceBacking struct {
	Dev BlockDevice
}

func (d DeviceBacking) ReadPage(slot int, buf []byte) error  { return d.Dev.ReadPage(slot, buf) }
func (d DeviceBacking) WritePage(slot int, buf []byte) error { return d.Dev.WritePage(slot, buf) }
func (d DeviceBacking) SizePages() int                       { return d.Dev.SizePages() }

// FileBacking backs swap with an ordinary file: each swap page is 4
// consecutive zones resolved through the inode's indirect blocks, read
// or written one zone at a time against the underlying zone device.
// This mirrors rw_swap_page's swap-file branch, which issues
// ll_rw_swap_file across four bmap lookups per page instead of the
// single ll_rw_page a raw device gets.
type FileBacking struct {
	File  Inode
	Zones ZoneDevice
	// Pages is the file's capacity in PageSize units, fixed at
	// creation (swap files are not grown on demand).
	Pages int
}

func (f FileBacking) SizePages() int { return f.Pages }

func (f FileBacking) ReadPage(slot int, buf []byte) error {
	return f.eachZone(slot, buf, f.Zones.ReadZone)
}

func (f FileBacking) WritePage(slot int, buf []byte) error {
	return f.eachZone(slot, buf, f.Zones.WriteZone)
}

func (f FileBacking) eachZone(slot int, buf []byte, op func(zone int, buf []byte) error) error {
	if len(buf) != PageSize {
		return fmt.Errorf("swap: page buffer must be %d bytes, got %d", PageSize, len(buf))
	}
	base := slot * zonesPerPage
	for i := 0; i < zonesPerPage; i++ {
		zone, ok := f.File.Bmap(base + i)
		if !ok {
			return fmt.Errorf("swap: swap file has a hole at logical zone %d", base+i)
		}
		if err := op(zone, buf[i*zoneSize:(i+1)*zoneSize]); err != nil {
			return err
		}
	}
	return nil
}
