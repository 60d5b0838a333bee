/*
 * Glyph translation tables.
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

// NormTrans is the identity mapping SI selects: printable bytes are
// deposited into video RAM unchanged.
var NormTrans = identityTable()

// GrafTrans is the mapping SO selects: lower-case letters in the
// line-drawing range are remapped onto the IBM box-drawing glyphs the
// adapter's character generator provides, everything else passes
// through unchanged.
var GrafTrans = grafTable()

func identityTable() []byte {
	t := make([]byte, 224)
	for i := range t {
		t[i] = byte(i + 32)
	}
	return t
}

func grafTable() []byte {
	t := identityTable()
	// 'j'..'x' cover the VT100 line-drawing set; everything outside
	// that range keeps its identity mapping.
	box := map[byte]byte{
		'j': 0xd9, 'k': 0xbf, 'l': 0xda, 'm': 0xc0,
		'n': 0xc5, 'q': 0xc4, 't': 0xc3, 'u': 0xb4,
		'v': 0xc1, 'w': 0xc2, 'x': 0xb3,
	}
	for c, glyph := range box {
		t[c-32] = glyph
	}
	return t
}
