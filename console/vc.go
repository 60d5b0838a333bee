/*
 * Per-console record.
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

// NPAR is the maximum number of CSI parameters tracked per escape
// sequence; digits of any parameters past this keep accumulating into
// the last slot.
const NPAR = 16

// BoldUnset marks vc_bold_attr as never having been set by a private
// "set bold attribute" escape, so SGR 4 falls back to the
// complement-the-foreground rule.
const BoldUnset = -1

type state int

const (
	stateNormal state = iota
	stateEsc
	stateCSIEnter
	stateCSIParams
	stateFuncKey
	stateSetTerm
	stateSetGraph
	stateConsumeOne
)

// VC is one virtual console's complete state: its slice of the shared
// video window, its cursor and scroll-region bookkeeping, its escape
// sequence parser state, and its current rendering attribute.
type VC struct {
	MemStart uint32
	MemEnd   uint32
	Origin   uint32
	ScrEnd   uint32
	Pos      uint32

	X, Y         int
	Top, Bottom  int
	SavedX, SavedY int

	Attr      byte
	DefAttr   byte
	EraseCell uint16
	BoldAttr  int
	IsColor   bool

	Translate []byte

	State state
	Quest bool
	NPar  int
	Par   [NPAR]int
}

// gotoxy implements the shared cursor-motion primitive: reject any
// position outside [0,cols] x [0,rows), silently leaving the cursor
// where it was. x = cols is accepted as the legal pre-wrap position a
// print just past the last column leaves the cursor in.
func (c *Console) gotoxy(idx int, newX, newY int) {
	if newX < 0 || newX > int(c.adapter.Cols) || newY < 0 || newY >= int(c.adapter.Rows) {
		return
	}
	vc := &c.vcs[idx]
	vc.X = newX
	vc.Y = newY
	vc.Pos = vc.Origin + uint32(newY)*c.adapter.RowBytes + uint32(newX)*2
}
