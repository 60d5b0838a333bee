/*
 * TTY collaborator interfaces.
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

// WriteQueue is the line discipline's outgoing byte ring, the bytes a
// process wrote that con_write hasn't consumed yet.
type WriteQueue interface {
	Len() int
	Get() byte
}

// ReadQueue is the line discipline's incoming byte ring: bytes the
// console pushes back at the tty, such as an ESC Z identify response.
type ReadQueue interface {
	Put(byte)
}

// TTY is everything con_write needs from the line discipline it's
// draining, modeled as an interface so the interpreter never reaches
// into kernel tty_struct fields directly.
type TTY interface {
	Index() int
	WriteQueue() WriteQueue
	ReadQueue() ReadQueue
	Stopped() bool
	EraseChar() byte
	ResetTermios()
	CopyToCooked()
}
