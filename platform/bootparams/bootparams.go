/*
 * Boot hand-off parameter block.
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

// Package bootparams decodes the boot-time hand-off bytes the real-mode
// setup code deposited at absolute physical addresses 0x90000..0x9000e
// (spec.md §4.1, §6). That hand-off itself is out of this module's scope;
// this package only knows how to decode the fixed 16-byte window into the
// fields con_init reads.
package bootparams

// Params mirrors the six boot-time words con_init reads out of the
// 0x90000..0x9000e window.
type Params struct {
	OrigX      uint8  // cursor column at hand-off
	OrigY      uint8  // cursor row at hand-off
	VideoPage  uint16 // initial video page
	VideoMode  uint8  // low byte of word at 0x90006
	VideoCols  uint8  // high byte of word at 0x90006
	VideoLines uint8  // low byte of word at 0x9000e
	EGAAX      uint16 // word at 0x90008
	EGABX      uint16 // word at 0x9000a, low byte distinguishes MDA/EGA-mono and CGA/EGA-color
	EGACX      uint16 // word at 0x9000c
}

// Window is the byte length of the hand-off block this package decodes
// (0x90000..0x9000f inclusive of the trailing word).
const Window = 0x10

// Decode extracts a Params from a 16-byte window captured at physical
// address 0x90000, in the field layout the original ORIG_* macros used.
func Decode(b [Window]byte) Params {
	word := func(off int) uint16 {
		return uint16(b[off]) | uint16(b[off+1])<<8
	}
	mode6 := word(0x06)
	return Params{
		OrigX:      b[0x00],
		OrigY:      b[0x01],
		VideoPage:  word(0x04),
		VideoMode:  uint8(mode6 & 0xff),
		VideoCols:  uint8((mode6 & 0xff00) >> 8),
		VideoLines: b[0x0e],
		EGAAX:      word(0x08),
		EGABX:      word(0x0a),
		EGACX:      word(0x0c),
	}
}
