/*
 * CRTC register programming.
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

// setOrigin reprograms CRTC registers 12/13 (start address high/low)
// to vc's origin, but only on EGA-class adapters (MDA/CGA have no
// working start-address register) and only when idx is the visible
// console. The split into a >>9 high byte and a >>1 low byte is not
// symmetric: the CRTC start address register counts in 16-bit words,
// so the low byte is (byte-offset>>1)&0xff while the high byte, which
// must carry the next 8 bits of that same word address, works out to
// (byte-offset>>9)&0xff.
func (c *Console) setOrigin(idx int) {
	if !c.adapter.IsEGA() || idx != c.fg {
		return
	}
	off := c.vcs[idx].Origin
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bus.OutbP(c.adapter.PortReg, 12)
	c.bus.OutbP(c.adapter.PortVal, byte(off>>9))
	c.bus.OutbP(c.adapter.PortReg, 13)
	c.bus.OutbP(c.adapter.PortVal, byte(off>>1))
}

// setCursor reprograms CRTC registers 14/15 (cursor address high/low)
// to vc's cursor position, resets the blank countdown (any cursor
// motion counts as activity), and is a no-op on the hardware when idx
// isn't the visible console.
func (c *Console) setCursor(idx int) {
	c.blankCount = c.blankInterval
	if idx != c.fg {
		return
	}
	off := c.vcs[idx].Pos
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bus.OutbP(c.adapter.PortReg, 14)
	c.bus.OutbP(c.adapter.PortVal, byte(off>>9))
	c.bus.OutbP(c.adapter.PortReg, 15)
	c.bus.OutbP(c.adapter.PortVal, byte(off>>1))
}

// hideCursor moves the hardware cursor to the end of the visible
// screen, a real (if unused in the original) op recovered from the
// original source and wired into the blank-screen path here (see
// SPEC_FULL.md §C.4).
func (c *Console) hideCursor(idx int) {
	off := c.vcs[idx].ScrEnd
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bus.OutbP(c.adapter.PortReg, 14)
	c.bus.OutbP(c.adapter.PortVal, byte(off>>9))
	c.bus.OutbP(c.adapter.PortReg, 15)
	c.bus.OutbP(c.adapter.PortVal, byte(off>>1))
}
