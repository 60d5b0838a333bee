/*
 * Private CSI extensions: blank interval and bold-attribute override.
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

// csiPrivate recognizes the "ESC [ n ; n+13 ; n+17 {l,b}" sequences:
// the redundant encoding (three parameters derived from the same n)
// guards against a stray host sending an ordinary CSI sequence that
// happens to end in 'l' or 'b'. 'l' sets the cursor-blank interval in
// minutes (0 disables blanking); 'b' sets an explicit foreground
// override SGR 4 uses in place of its complement-the-foreground
// fallback.
func (c *Console) csiPrivate(idx int, ch byte) {
	vc := &c.vcs[idx]
	if vc.NPar < 2 {
		return
	}
	n := vc.Par[0]
	if vc.Par[1]-13 != n || vc.Par[2]-17 != n {
		return
	}
	switch ch {
	case 'l':
		if n >= 0 && n <= 60 {
			c.blankInterval = c.hz * 60 * n
			c.blankCount = c.blankInterval
		}
	case 'b':
		vc.BoldAttr = n
	}
}
