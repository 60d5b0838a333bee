/*
 * Cursor-blank bookkeeping.
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

// BlankInterval reports the current cursor-blank interval in ticks (0
// means blanking is disabled).
func (c *Console) BlankInterval() int { return c.blankInterval }

// BlankScreen is invoked when the blank countdown reaches zero. The
// real adapter-dependent blanking sequence was never recovered from
// the original source, so this implementation settles for parking the
// hardware cursor past the end of the visible screen on EGA-class
// adapters, which is visually indistinguishable from a blanked cursor.
func (c *Console) BlankScreen() {
	if !c.adapter.IsEGA() {
		return
	}
	c.hideCursor(c.fg)
}

// UnblankScreen restores the cursor to its normal position and resets
// the blank countdown, as if the console had just seen activity.
func (c *Console) UnblankScreen() {
	c.blankCount = c.blankInterval
	if !c.adapter.IsEGA() {
		return
	}
	c.setCursor(c.fg)
}
