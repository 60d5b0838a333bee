/*
 * Adapter probe and geometry.
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

import "github.com/xenw/oldlinux/platform/bootparams"

// AdapterKind identifies which of the four adapter/mode combinations
// con_init's probe recognizes.
type AdapterKind int

const (
	MDA AdapterKind = iota
	CGA
	EGAMono
	EGAColor
)

func (k AdapterKind) String() string {
	switch k {
	case MDA:
		return "MDA"
	case CGA:
		return "CGA"
	case EGAMono:
		return "EGAMono"
	case EGAColor:
		return "EGAColor"
	default:
		return "unknown"
	}
}

// displayName is the four-character tag con_init stamps into the
// top-right corner of the screen.
func displayName(k AdapterKind) string {
	switch k {
	case EGAMono:
		return "EGAm"
	case MDA:
		return "*MDA"
	case EGAColor:
		return "EGAc"
	case CGA:
		return "*CGA"
	default:
		return "????"
	}
}

// Adapter is the outcome of the boot-time probe: which kind of board is
// attached, where its memory window sits in the address space, which
// CRTC index/data port pair programs it, and the character-cell
// geometry the BIOS negotiated.
type Adapter struct {
	Kind     AdapterKind
	MemBase  uint32
	MemEnd   uint32
	PortReg  uint16
	PortVal  uint16
	Cols     uint32
	Rows     uint32
	RowBytes uint32
	CanColor bool
}

// IsEGA reports whether the adapter is one of the two EGA/VGA variants,
// the only ones with a working CRTC an origin-relative scroll can
// reprogram.
func (a Adapter) IsEGA() bool { return a.Kind == EGAMono || a.Kind == EGAColor }

// ProbeAdapter runs con_init's adapter decision table against the
// boot-time parameter block: mode 7 means a monochrome board (plain MDA
// unless the EGA_BX low byte says otherwise), anything else means a
// color board (plain CGA unless EGA_BX says otherwise).
func ProbeAdapter(p bootparams.Params) Adapter {
	var a Adapter
	a.Cols = uint32(p.VideoCols)
	a.Rows = uint32(p.VideoLines)
	a.RowBytes = a.Cols * 2

	if p.VideoMode == 7 {
		a.PortReg, a.PortVal = 0x3b4, 0x3b5
		if p.EGABX&0xff != 0x10 {
			a.Kind = EGAMono
			a.MemBase, a.MemEnd = 0xb0000, 0xb8000
		} else {
			a.Kind = MDA
			a.MemBase, a.MemEnd = 0xb0000, 0xb2000
		}
		return a
	}

	a.CanColor = true
	a.PortReg, a.PortVal = 0x3d4, 0x3d5
	if p.EGABX&0xff != 0x10 {
		a.Kind = EGAColor
		a.MemBase, a.MemEnd = 0xb8000, 0xc0000
	} else {
		a.Kind = CGA
		a.MemBase, a.MemEnd = 0xb8000, 0xba000
	}
	return a
}

// numConsoles returns how many independent screens fit in the probed
// memory window, capped at max.
func (a Adapter) numConsoles(max int) int {
	screenBytes := a.Rows * a.RowBytes
	if screenBytes == 0 || a.MemEnd <= a.MemBase {
		return 1
	}
	n := int((a.MemEnd - a.MemBase) / screenBytes)
	if n < 1 {
		n = 1
	}
	if n > max {
		n = max
	}
	return n
}
