/*
 * Port I/O and interrupt-mask abstraction.
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

// Package ioport abstracts the 8-bit indexed port I/O (outb/outb_p/inb_p),
// the maskable-interrupt control (cli/sti) and the PIC/IDT setup the
// original console driver did with inline assembly and direct port
// access. A real kernel build would bind Bus to the processor's actual
// I/O space; tests and the demo harness bind it to an in-memory fake so
// the CRTC and PIT sequencing can be exercised and asserted on without
// real hardware.
package ioport

import "sync"

// Bus is everything the console and boot-time IRQ setup need from the
// platform. Modeled as an interface, the idiomatic Go substitute for the
// original's inline asm string operations and direct port access (see
// SPEC_FULL.md Design Notes).
type Bus interface {
	Outb(port uint16, value uint8)
	OutbP(port uint16, value uint8) // slow variant: same effect, different timing on real hardware
	Inb(port uint16) uint8
	InbP(port uint16) uint8
}

// CriticalSection runs fn with interrupts logically masked, mirroring the
// cli()/sti() bracket the original used around CRTC register pairs and
// TTY read-queue pushes (spec.md §5). The bounded critical sections in
// this module (≤4 port writes) make a plain mutex an exact substitute for
// the single-CPU interrupt-disable discipline.
func CriticalSection(bus Bus, fn func(Bus)) {
	criticalMu.Lock()
	defer criticalMu.Unlock()
	fn(bus)
}

var criticalMu sync.Mutex

// FakeBus is an in-memory Bus used by tests and the demo harness: port
// writes are recorded, port reads return whatever was last written (or
// zero).
type FakeBus struct {
	writes []Write
	ports  map[uint16]uint8
}

// Write records one observed port write, in program order.
type Write struct {
	Port  uint16
	Value uint8
}

// NewFakeBus returns a ready-to-use FakeBus.
func NewFakeBus() *FakeBus {
	return &FakeBus{ports: make(map[uint16]uint8)}
}

func (b *FakeBus) Outb(port uint16, value uint8)  { b.record(port, value) }
func (b *FakeBus) OutbP(port uint16, value uint8) { b.record(port, value) }
func (b *FakeBus) Inb(port uint16) uint8          { return b.ports[port] }
func (b *FakeBus) InbP(port uint16) uint8         { return b.ports[port] }

func (b *FakeBus) record(port uint16, value uint8) {
	b.writes = append(b.writes, Write{Port: port, Value: value})
	b.ports[port] = value
}

// Writes returns every write observed so far, in order.
func (b *FakeBus) Writes() []Write { return b.writes }

// Last returns the most recent value written to port.
func (b *FakeBus) Last(port uint16) uint8 { return b.ports[port] }

// PIC/PPI/PIT port numbers used by console init and the beep primitive.
const (
	PortPIC1        uint16 = 0x21 // 8259 PIC interrupt mask register
	PortPPI         uint16 = 0x61 // 8255 PPI, PC speaker gate bits
	PortPITCommand  uint16 = 0x43 // 8253 PIT mode/command register
	PortPITCounter2 uint16 = 0x42 // 8253 PIT counter 2 (speaker tone)
)

// UnmaskKeyboardIRQ clears IRQ1's mask bit at the 8259 PIC, matching the
// original con_init's `outb_p(inb_p(0x21)&0xfd,0x21)`, and then toggles
// the keyboard controller's enable line the same way con_init did
// immediately afterward (read PPI port 0x61, set bit 0x80, then restore
// the original value) — a quirk of the original kernel's boot sequence
// kept here for fidelity (see SPEC_FULL.md §C.2).
func UnmaskKeyboardIRQ(bus Bus) {
	mask := bus.InbP(PortPIC1)
	bus.OutbP(PortPIC1, mask&0xfd)

	a := bus.InbP(PortPPI)
	bus.OutbP(PortPPI, a|0x80)
	bus.OutbP(PortPPI, a)
}
