/*
 * Scrolling and cursor-motion primitives.
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

package console

// scrup scrolls rows [top,bottom) up by one row, discarding row top and
// filling the vacated row bottom-1 with the erase cell. On an EGA-class
// adapter scrolling the full screen, it takes a fast path: just advance
// origin/pos/scr_end by one row, fill the newly exposed bottom row with
// the erase cell and reprogram the CRTC, copying rows only when the
// window runs out and a rewind is needed.
func (c *Console) scrup(idx int, top, bottom int) {
	if bottom <= top {
		return
	}
	vc := &c.vcs[idx]
	rowBytes := c.adapter.RowBytes
	cols := c.adapter.Cols

	if c.adapter.IsEGA() && top == 0 && bottom == int(c.adapter.Rows) {
		vc.Origin += rowBytes
		vc.Pos += rowBytes
		vc.ScrEnd += rowBytes
		if vc.ScrEnd > vc.MemEnd {
			c.rewind(idx)
		} else {
			c.mem.FillCellsPacked(vc.ScrEnd-rowBytes, cols, vc.EraseCell)
		}
		c.setOrigin(idx)
		return
	}

	count := uint32(bottom-top-1) * cols
	c.mem.CopyCells(vc.Origin+rowBytes*uint32(top), vc.Origin+rowBytes*uint32(top+1), count)
	c.mem.FillCellsPacked(vc.Origin+rowBytes*uint32(bottom-1), cols, vc.EraseCell)
}

// rewind copies the rows-1 rows from the current (just-advanced) origin
// back down to the start of the window, fills the final row with the
// erase cell, and resets origin to the window start. The visible screen
// is unchanged by this except that its last row now holds erase cells.
func (c *Console) rewind(idx int) {
	vc := &c.vcs[idx]
	delta := vc.Origin - vc.MemStart
	copyCount := (c.adapter.Rows - 1) * c.adapter.Cols
	c.mem.CopyCells(vc.MemStart, vc.Origin, copyCount)
	c.mem.FillCellsPacked(vc.MemStart+copyCount*2, c.adapter.Cols, vc.EraseCell)
	vc.ScrEnd -= delta
	vc.Pos -= delta
	vc.Origin = vc.MemStart
}

// scrdown scrolls rows [top,bottom) down by one row, discarding row
// bottom-1 and filling the vacated row top with the erase cell.
func (c *Console) scrdown(idx int, top, bottom int) {
	if bottom <= top {
		return
	}
	vc := &c.vcs[idx]
	rowBytes := c.adapter.RowBytes
	cols := c.adapter.Cols
	count := uint32(bottom-top-1) * cols
	c.mem.CopyCells(vc.Origin+rowBytes*uint32(top+1), vc.Origin+rowBytes*uint32(top), count)
	c.mem.FillCellsPacked(vc.Origin+rowBytes*uint32(top), cols, vc.EraseCell)
}

// lf advances the cursor one row, scrolling the region up if it's
// already on the bottom margin.
func (c *Console) lf(idx int) {
	vc := &c.vcs[idx]
	if vc.Y+1 < vc.Bottom {
		vc.Y++
		vc.Pos += c.adapter.RowBytes
		return
	}
	c.scrup(idx, vc.Top, vc.Bottom)
}

// ri (reverse index) moves the cursor one row up, scrolling the region
// down if it's already on the top margin.
func (c *Console) ri(idx int) {
	vc := &c.vcs[idx]
	if vc.Y > vc.Top {
		vc.Y--
		vc.Pos -= c.adapter.RowBytes
		return
	}
	c.scrdown(idx, vc.Top, vc.Bottom)
}

// cr returns the cursor to column 0 of its current row.
func (c *Console) cr(idx int) {
	vc := &c.vcs[idx]
	vc.Pos -= uint32(vc.X) * 2
	vc.X = 0
}

// tab advances the cursor to the next multiple-of-8 column, wrapping
// to the next line (via lf) if that would run past the last column.
func (c *Console) tab(idx int) {
	vc := &c.vcs[idx]
	delta := 8 - (vc.X & 7)
	vc.X += delta
	vc.Pos += uint32(delta) * 2
	if vc.X > int(c.adapter.Cols) {
		vc.X -= int(c.adapter.Cols)
		vc.Pos -= c.adapter.RowBytes
		c.lf(idx)
	}
}

// del implements the destructive-backspace erase character: move left
// one column and overwrite with the erase cell.
func (c *Console) del(idx int) {
	vc := &c.vcs[idx]
	if vc.X > 0 {
		vc.Pos -= 2
		vc.X--
		c.mem.SetCellPacked(vc.Pos, vc.EraseCell)
	}
}
