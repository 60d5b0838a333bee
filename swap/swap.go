/*
 * Swapper: the wiring that ties the bitmap, backing store, frame
 * table and page tables together into a working demand-paging
 * manager.
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

import (
	"log/slog"
	"sync"
)

// LowMemFrame and HighMemFrame bound the range of physical frames this
// manager is willing to page out of; frames below LowMemFrame are
// kernel-reserved and never candidates for eviction.
type Bounds struct {
	LowMemFrame  uint32
	HighMemFrame uint32
}

// Swapper is the demand-paging swap manager: bitmap slot allocator,
// backing store, frame table and the round-robin page-table cursor
// swap_out walks, all under one lock standing in for cli()/sti().
type Swapper struct {
	mu sync.Mutex

	Bitmap  *Bitmap
	Backing Backing
	Frames  FrameTable
	Dir     Directory
	Bounds  Bounds
	Log     *slog.Logger

	// SizeBlocks is the device size in 1 KiB blocks as reported by a
	// SWAPDEV directive's size= option, the stand-in for the block
	// layer's blk_size[] table init_swapping consults. Zero means no
	// directive supplied one; InitSwapping then falls back to asking
	// Backing directly, already page-granular.
	SizeBlocks int

	// OOM is invoked by SwapIn when frame allocation fails; like the
	// original's oom(), it does not return to its caller. Defaults to
	// a panic naming the condition. Tests may replace it to observe
	// the OOM path without tearing down the process.
	OOM func()

	// dirIdx/tableIdx are swap_out's persistent cursor: successive
	// calls resume scanning where the last one left off instead of
	// restarting at page-table 0 every time.
	dirIdx   int
	tableIdx int
}

// NewSwapper wires the given collaborators into a Swapper ready to
// service page-in and page-out once InitSwapping has verified the backing
// store.
func NewSwapper(bm *Bitmap, backing Backing, frames FrameTable, dir Directory, bounds Bounds, log *slog.Logger) *Swapper {
	if log == nil {
		log = slog.Default()
	}
	return &Swapper{
		Bitmap:  bm,
		Backing: backing,
		Frames:  frames,
		Dir:     dir,
		Bounds:  bounds,
		Log:     log,
		OOM: func() {
			panic("swap: out of memory servicing page-in")
		},
	}
}
