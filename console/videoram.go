/*
 * Windowed video RAM.
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

// VideoRAM is a bounded, addressable window standing in for the real
// adapter's memory-mapped character cells (spec.md §9 Design Notes).
// Every address is a byte offset from the window base; a cell occupies
// two bytes, glyph then attribute, matching how the real adapter lays
// a 16-bit word in little-endian memory.
type VideoRAM struct {
	buf []byte
}

// NewVideoRAM allocates a zeroed window of size bytes.
func NewVideoRAM(size uint32) *VideoRAM {
	return &VideoRAM{buf: make([]byte, size)}
}

// Len returns the window size in bytes.
func (v *VideoRAM) Len() uint32 { return uint32(len(v.buf)) }

// GetCell returns the glyph/attribute pair at addr.
func (v *VideoRAM) GetCell(addr uint32) (glyph, attr byte) {
	return v.buf[addr], v.buf[addr+1]
}

// SetCell writes the glyph/attribute pair at addr.
func (v *VideoRAM) SetCell(addr uint32, glyph, attr byte) {
	v.buf[addr] = glyph
	v.buf[addr+1] = attr
}

// GetCellPacked returns the cell at addr as a single attr<<8|glyph word.
func (v *VideoRAM) GetCellPacked(addr uint32) uint16 {
	return uint16(v.buf[addr]) | uint16(v.buf[addr+1])<<8
}

// SetCellPacked writes a packed attr<<8|glyph word at addr.
func (v *VideoRAM) SetCellPacked(addr uint32, cell uint16) {
	v.buf[addr] = byte(cell)
	v.buf[addr+1] = byte(cell >> 8)
}

// FillCellsPacked writes count copies of cell starting at addr.
func (v *VideoRAM) FillCellsPacked(addr uint32, count uint32, cell uint16) {
	for i := uint32(0); i < count; i++ {
		v.SetCellPacked(addr+i*2, cell)
	}
}

// CopyCells copies count cells from src to dst. Go's copy is defined
// over overlapping slices (like memmove), so this is safe for both the
// up-scroll and down-scroll directions without a separate reverse path.
func (v *VideoRAM) CopyCells(dst, src, count uint32) {
	n := count * 2
	copy(v.buf[dst:dst+n], v.buf[src:src+n])
}

// RawByte reads a single raw byte, used by the screendump capture which
// advances one byte at a time rather than one cell at a time.
func (v *VideoRAM) RawByte(addr uint32) byte { return v.buf[addr] }

// WriteGlyphString deposits s into the glyph slot of consecutive cells
// starting at addr, leaving the attribute byte of each cell untouched
// (matching the stride-2 pointer walk con_init uses to stamp the
// adapter name into the top-right corner of the screen).
func (v *VideoRAM) WriteGlyphString(addr uint32, s string) {
	for i := 0; i < len(s); i++ {
		v.buf[addr+uint32(i)*2] = s[i]
	}
}
