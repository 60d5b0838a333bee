/*
 * PC-speaker beep.
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

import "github.com/xenw/oldlinux/platform/ioport"

const beepKey = "beep"

// Beep programs PIT counter 2 for a fixed 750 Hz tone, gates it onto
// the PC speaker through the PPI, and schedules sysbeepstop HZ/8 ticks
// later so the tone is self-terminating.
func (c *Console) Beep() {
	v := c.bus.InbP(ioport.PortPPI)
	c.bus.OutbP(ioport.PortPPI, v|3)
	c.bus.OutbP(ioport.PortPITCommand, 0xb6)
	c.bus.OutbP(ioport.PortPITCounter2, 0x37)
	c.bus.Outb(ioport.PortPITCounter2, 0x06)

	c.timers.Cancel(beepKey, 0)
	c.timers.Add(beepKey, func(int) { c.sysbeepstop() }, c.hz/8, 0)
}

func (c *Console) sysbeepstop() {
	v := c.bus.InbP(ioport.PortPPI)
	c.bus.Outb(ioport.PortPPI, v&0xfc)
}
