/*
 * Screen capture ioctl.
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

import "fmt"

// ScreenDump implements do_screendump: buf[0] names a console
// (1-based), and the remaining cols*rows bytes are filled by walking
// the console's origin forward one byte at a time. That single-byte
// stride interleaves glyph and attribute bytes rather than copying
// whole cells, so the capture only covers the first half of the
// on-screen window — a quirk of the original implementation preserved
// here rather than "fixed", since a screendump reader built against
// this format expects exactly that layout.
func (c *Console) ScreenDump(buf []byte) error {
	if len(buf) == 0 {
		return fmt.Errorf("screendump: empty buffer")
	}
	idx := int(buf[0])
	if idx < 1 || idx > len(c.vcs) {
		return fmt.Errorf("screendump: console %d out of range", idx)
	}
	idx--

	count := int(c.adapter.Cols * c.adapter.Rows)
	if len(buf) < 1+count {
		return fmt.Errorf("screendump: buffer too small for %dx%d screen", c.adapter.Cols, c.adapter.Rows)
	}

	origin := c.vcs[idx].Origin
	for i := 0; i < count; i++ {
		buf[1+i] = c.mem.RawByte(origin + uint32(i))
	}
	return nil
}
