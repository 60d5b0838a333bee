/*
 * SGR attribute handling.
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

// applySGR walks every accumulated parameter (0..NPar inclusive) and
// folds it into vc.Attr.
func (c *Console) applySGR(idx int) {
	vc := &c.vcs[idx]
	for i := 0; i <= vc.NPar; i++ {
		c.applyOneSGR(vc, vc.Par[i])
	}
}

func (c *Console) applyOneSGR(vc *VC, p int) {
	switch {
	case p == 0:
		vc.Attr = vc.DefAttr
	case p == 1:
		vc.Attr |= 0x08
	case p == 4:
		c.applyUnderline(vc)
	case p == 5:
		vc.Attr |= 0x80
	case p == 7:
		vc.Attr = vc.Attr<<4 | vc.Attr>>4
	case p == 22:
		vc.Attr &^= 0x08
	case p == 24:
		vc.Attr &^= 0x01
	case p == 25:
		vc.Attr &^= 0x80
	case p == 27:
		vc.Attr = vc.DefAttr
	case p == 39:
		vc.Attr = vc.Attr&0xf0 | vc.DefAttr&0x0f
	case p == 49:
		vc.Attr = vc.Attr&0x0f | vc.DefAttr&0xf0
	case p >= 30 && p <= 38:
		if c.adapter.CanColor {
			vc.Attr = vc.Attr&0xf0 | byte(p-30)
			vc.IsColor = true
		}
	case p >= 40 && p <= 48:
		if c.adapter.CanColor {
			vc.Attr = vc.Attr&0x0f | byte(p-40)<<4
			vc.IsColor = true
		}
	}
}

// applyUnderline implements SGR 4. On a monochrome adapter it's a
// plain attribute bit. On a color-capable one there is no underline
// bit, so it's faked by recoloring the foreground: to an explicit
// override set with the private "set bold attribute" sequence if one
// is in effect, or else to the bitwise complement of the current
// attribute byte's low nibble — or, on the rare case that complement
// collides with the background, to the current foreground plus one
// (mod 15), so underlined
// text never becomes invisible against its own background.
func (c *Console) applyUnderline(vc *VC) {
	if !c.adapter.CanColor {
		vc.Attr |= 0x01
		return
	}
	if vc.BoldAttr != BoldUnset {
		vc.Attr = byte(vc.BoldAttr)&0x0f | vc.Attr&0xf0
		return
	}
	fg := ^vc.Attr & 0x0f
	bg := (vc.Attr >> 4) & 0x0f
	if fg == bg {
		fg = (vc.Attr&0x0f + 1) % 15
	}
	vc.Attr = vc.Attr&0xf0 | fg
}
