/*
 * CSI dispatch table.
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

// csiDispatch runs the CSI final byte against the accumulated
// parameters in vc.Par[0:NPar+1].
func (c *Console) csiDispatch(idx int, ch byte) {
	vc := &c.vcs[idx]
	p0 := vc.Par[0]

	switch ch {
	case 'G', '`':
		if p0 > 0 {
			p0--
		}
		c.gotoxy(idx, p0, vc.Y)
	case 'A':
		if p0 == 0 {
			p0 = 1
		}
		c.gotoxy(idx, vc.X, vc.Y-p0)
	case 'B', 'e':
		if p0 == 0 {
			p0 = 1
		}
		c.gotoxy(idx, vc.X, vc.Y+p0)
	case 'C', 'a':
		if p0 == 0 {
			p0 = 1
		}
		c.gotoxy(idx, vc.X+p0, vc.Y)
	case 'D':
		if p0 == 0 {
			p0 = 1
		}
		c.gotoxy(idx, vc.X-p0, vc.Y)
	case 'E':
		if p0 == 0 {
			p0 = 1
		}
		c.gotoxy(idx, 0, vc.Y+p0)
	case 'F':
		if p0 == 0 {
			p0 = 1
		}
		c.gotoxy(idx, 0, vc.Y-p0)
	case 'd':
		if p0 > 0 {
			p0--
		}
		c.gotoxy(idx, vc.X, p0)
	case 'H', 'f':
		p1 := vc.Par[1]
		if p0 > 0 {
			p0--
		}
		if p1 > 0 {
			p1--
		}
		c.gotoxy(idx, p1, p0)
	case 'J':
		c.csiJ(idx, p0)
	case 'K':
		c.csiK(idx, p0)
	case 'L':
		c.csiInsertLines(idx, p0)
	case 'M':
		c.csiDeleteLines(idx, p0)
	case 'P':
		c.csiDeleteChars(idx, p0)
	case '@':
		c.csiInsertChars(idx, p0)
	case 'm':
		c.applySGR(idx)
	case 'r':
		c.csiR(idx)
	case 's':
		c.saveCur(idx)
	case 'u':
		c.restoreCur(idx)
	case 'l', 'b':
		c.csiPrivate(idx, ch)
	}
}

// csiJ implements erase-in-display: 0 from cursor to end, 1 from start
// to cursor, 2 the whole screen.
func (c *Console) csiJ(idx int, par int) {
	vc := &c.vcs[idx]
	var start, count uint32
	switch par {
	case 0:
		start, count = vc.Pos, (vc.ScrEnd-vc.Pos)/2
	case 1:
		start, count = vc.Origin, (vc.Pos-vc.Origin)/2
	case 2:
		start, count = vc.Origin, c.adapter.Cols*c.adapter.Rows
	default:
		return
	}
	c.mem.FillCellsPacked(start, count, vc.EraseCell)
}

// csiK implements erase-in-line: 0 from cursor to end of line, 1 from
// start of line to cursor, 2 the whole line.
func (c *Console) csiK(idx int, par int) {
	vc := &c.vcs[idx]
	cols := c.adapter.Cols
	var start, count uint32
	switch par {
	case 0:
		if vc.X >= int(cols) {
			return
		}
		start, count = vc.Pos, cols-uint32(vc.X)
	case 1:
		n := uint32(vc.X)
		if n > cols {
			n = cols
		}
		start, count = vc.Pos-uint32(vc.X)*2, n
	case 2:
		start, count = vc.Pos-uint32(vc.X)*2, cols
	default:
		return
	}
	c.mem.FillCellsPacked(start, count, vc.EraseCell)
}

func (c *Console) csiInsertChars(idx int, nr int) {
	cols := int(c.adapter.Cols)
	if nr == 0 {
		nr = 1
	}
	if nr > cols {
		nr = cols
	}
	for i := 0; i < nr; i++ {
		c.insertChar(idx)
	}
}

func (c *Console) csiDeleteChars(idx int, nr int) {
	cols := int(c.adapter.Cols)
	if nr == 0 {
		nr = 1
	}
	if nr > cols {
		nr = cols
	}
	for i := 0; i < nr; i++ {
		c.deleteChar(idx)
	}
}

func (c *Console) csiInsertLines(idx int, nr int) {
	rows := int(c.adapter.Rows)
	if nr == 0 {
		nr = 1
	}
	if nr > rows {
		nr = rows
	}
	for i := 0; i < nr; i++ {
		c.insertLine(idx)
	}
}

func (c *Console) csiDeleteLines(idx int, nr int) {
	rows := int(c.adapter.Rows)
	if nr == 0 {
		nr = 1
	}
	if nr > rows {
		nr = rows
	}
	for i := 0; i < nr; i++ {
		c.deleteLine(idx)
	}
}

// insertChar shifts cells [x,cols) right by one within the current
// row, dropping the last cell, and deposits the erase cell at x.
func (c *Console) insertChar(idx int) {
	vc := &c.vcs[idx]
	cols := int(c.adapter.Cols)
	old := vc.EraseCell
	pos := vc.Pos
	for i := vc.X; i < cols; i++ {
		tmp := c.mem.GetCellPacked(pos)
		c.mem.SetCellPacked(pos, old)
		old = tmp
		pos += 2
	}
}

// deleteChar shifts cells (x,cols) left by one within the current row
// and deposits the erase cell at the vacated last column.
func (c *Console) deleteChar(idx int) {
	vc := &c.vcs[idx]
	cols := int(c.adapter.Cols)
	if vc.X >= cols {
		return
	}
	pos := vc.Pos
	for i := vc.X; i+1 < cols; i++ {
		next := c.mem.GetCellPacked(pos + 2)
		c.mem.SetCellPacked(pos, next)
		pos += 2
	}
	c.mem.SetCellPacked(pos, vc.EraseCell)
}

// insertLine scrolls [y,bottom) down by one, always down to the last
// row of the physical screen regardless of any active scroll region,
// matching insert_line's VC_BOTTOM = video_num_lines override.
func (c *Console) insertLine(idx int) {
	vc := &c.vcs[idx]
	oldTop, oldBottom := vc.Top, vc.Bottom
	vc.Top = vc.Y
	vc.Bottom = int(c.adapter.Rows)
	c.scrdown(idx, vc.Top, vc.Bottom)
	vc.Top, vc.Bottom = oldTop, oldBottom
}

// deleteLine scrolls [y,bottom) up by one, always up to the last row
// of the physical screen regardless of any active scroll region,
// matching delete_line's VC_BOTTOM = video_num_lines override.
func (c *Console) deleteLine(idx int) {
	vc := &c.vcs[idx]
	oldTop, oldBottom := vc.Top, vc.Bottom
	vc.Top = vc.Y
	vc.Bottom = int(c.adapter.Rows)
	c.scrup(idx, vc.Top, vc.Bottom)
	vc.Top, vc.Bottom = oldTop, oldBottom
}

// csiR (DECSTBM) sets the scroll region, accepting it only if it
// describes a non-empty region within the screen.
func (c *Console) csiR(idx int) {
	vc := &c.vcs[idx]
	top, bottom := vc.Par[0], vc.Par[1]
	if top > 0 {
		top--
	}
	if bottom == 0 {
		bottom = int(c.adapter.Rows)
	}
	if top < bottom && bottom <= int(c.adapter.Rows) {
		vc.Top, vc.Bottom = top, bottom
	}
}

func (c *Console) saveCur(idx int) {
	vc := &c.vcs[idx]
	vc.SavedX, vc.SavedY = vc.X, vc.Y
}

func (c *Console) restoreCur(idx int) {
	vc := &c.vcs[idx]
	c.gotoxy(idx, vc.SavedX, vc.SavedY)
}
