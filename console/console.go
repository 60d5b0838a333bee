/*
 * Console: the virtual-console array and its wiring.
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

// Package console is a VT102-compatible virtual-console terminal
// engine driving an MDA, CGA, EGA or VGA adapter: an escape-sequence
// interpreter, a shared scrollback-free video window sliced into N
// independent screens, and the CRTC/PIT register sequencing that makes
// the active one visible.
package console

import (
	"sync"

	"github.com/xenw/oldlinux/event"
	"github.com/xenw/oldlinux/platform/bootparams"
	"github.com/xenw/oldlinux/platform/ioport"
)

// DefaultMaxConsoles is the compile-time cap on how many virtual
// consoles con_init will carve out of the probed memory window.
const DefaultMaxConsoles = 8

// DefaultHZ is the timer tick rate used for the cursor-blank and beep
// countdowns when the caller doesn't override it.
const DefaultHZ = 100

const defaultEraseCell = 0x0720 // attr 0x07 (grey on black), glyph ' '

// Console owns the shared video window, the per-console records sliced
// out of it, and the hardware ports that make one of them visible.
type Console struct {
	mu sync.Mutex

	adapter Adapter
	mem     *VideoRAM
	vcs     []VC
	fg      int

	bus ioport.Bus
	hz  int

	blankInterval int
	blankCount    int

	timers event.Queue
}

// NewConsole probes the adapter, carves up its memory window into as
// many virtual consoles as fit (capped at maxConsoles), seeds console 0
// from the boot-time cursor position and clones it into the rest, and
// unmasks the keyboard IRQ — con_init's job end to end.
func NewConsole(bus ioport.Bus, params bootparams.Params, maxConsoles, hz int) *Console {
	if maxConsoles <= 0 {
		maxConsoles = DefaultMaxConsoles
	}
	if hz <= 0 {
		hz = DefaultHZ
	}

	a := ProbeAdapter(params)
	n := a.numConsoles(maxConsoles)
	windowBytes := a.MemEnd - a.MemBase
	perConsole := windowBytes / uint32(n)

	c := &Console{
		adapter: a,
		mem:     NewVideoRAM(windowBytes),
		bus:     bus,
		hz:      hz,
		vcs:     make([]VC, n),
	}

	vc0 := &c.vcs[0]
	vc0.MemStart = 0
	vc0.MemEnd = perConsole
	vc0.Origin = 0
	vc0.ScrEnd = a.Rows * a.RowBytes
	vc0.Top = 0
	vc0.Bottom = int(a.Rows)
	vc0.Attr = 0x07
	vc0.DefAttr = 0x07
	vc0.EraseCell = defaultEraseCell
	vc0.BoldAttr = BoldUnset
	vc0.Translate = NormTrans
	vc0.State = stateNormal
	c.gotoxy(0, int(params.OrigX), int(params.OrigY))

	base := perConsole
	for i := 1; i < n; i++ {
		c.vcs[i] = *vc0
		c.vcs[i].MemStart = base
		c.vcs[i].MemEnd = base + perConsole
		c.vcs[i].Origin = base
		c.vcs[i].ScrEnd = base + a.Rows*a.RowBytes
		c.gotoxy(i, 0, 0)
		base += perConsole
	}

	c.mem.WriteGlyphString(a.RowBytes-8, displayName(a.Kind))

	c.setOrigin(c.fg)
	c.setCursor(c.fg)

	ioport.UnmaskKeyboardIRQ(bus)

	return c
}

// NumConsoles reports how many virtual consoles were carved out.
func (c *Console) NumConsoles() int { return len(c.vcs) }

// Adapter returns the probed adapter geometry.
func (c *Console) Adapter() Adapter { return c.adapter }

// Foreground returns the currently visible console's index.
func (c *Console) Foreground() int { return c.fg }

// VC returns a copy of console idx's current state, mainly for tests
// and introspection; callers never get a pointer into live state.
func (c *Console) VC(idx int) VC { return c.vcs[idx] }

// SetForeground switches the visible console and reprograms the CRTC
// to match, the Go analogue of update_screen being driven by a VT
// switch.
func (c *Console) SetForeground(idx int) {
	if idx < 0 || idx >= len(c.vcs) {
		return
	}
	c.fg = idx
	c.setOrigin(idx)
	c.setCursor(idx)
}

// Tick advances the cursor-blank countdown and any pending beep timer
// by one timer tick.
func (c *Console) Tick() {
	c.timers.Advance(1)
	if c.blankInterval == 0 {
		return
	}
	if c.blankCount > 0 {
		c.blankCount--
		if c.blankCount == 0 {
			c.BlankScreen()
		}
	}
}
