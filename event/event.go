/*
 * Tick-relative event scheduler.
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

// Package event implements a minimal relative-delta timer queue, the Go
// stand-in for the timer-tick bookkeeping the original kernel drove from
// its HZ clock interrupt (here only beepcount; the console keeps its
// blank countdown as a plain counter). Callers Advance(1) once
// per simulated clock tick; a queued callback fires once its relative
// delay reaches zero.
package event

// Callback runs when a scheduled event's delay reaches zero.
type Callback func(arg int)

// Key identifies the owner of a scheduled event, for Cancel lookups.
// Any comparable value works; the console's beep timer uses the string
// "beep".
type Key any

type timer struct {
	delay int
	key   Key
	cb    Callback
	arg   int
	prev  *timer
	next  *timer
}

// Queue is an independent relative-delta timer list. Each console owns
// one, used for the beep-stop countdown; the swapper has none.
type Queue struct {
	head *timer
	tail *timer
}

// Add schedules cb to run after delay ticks. delay<=0 runs cb immediately.
func (q *Queue) Add(key Key, cb Callback, delay int, arg int) {
	if delay <= 0 {
		cb(arg)
		return
	}

	ev := &timer{key: key, cb: cb, delay: delay, arg: arg}

	cur := q.head
	if cur == nil {
		q.head = ev
		q.tail = ev
		return
	}

	for cur != nil {
		if ev.delay <= cur.delay {
			cur.delay -= ev.delay
			ev.prev = cur.prev
			ev.next = cur
			cur.prev = ev
			if ev.prev != nil {
				ev.prev.next = ev
			} else {
				q.head = ev
			}
			return
		}
		ev.delay -= cur.delay
		cur = cur.next
	}

	ev.prev = q.tail
	q.tail.next = ev
	q.tail = ev
}

// Cancel removes the first pending event owned by key with argument arg,
// if any, folding its remaining delay into the following event so total
// elapsed time for the rest of the queue is unaffected.
func (q *Queue) Cancel(key Key, arg int) {
	for cur := q.head; cur != nil; cur = cur.next {
		if cur.key != key || cur.arg != arg {
			continue
		}
		if cur.next != nil {
			cur.next.delay += cur.delay
			cur.next.prev = cur.prev
		} else {
			q.tail = cur.prev
		}
		if cur.prev != nil {
			cur.prev.next = cur.next
		} else {
			q.head = cur.next
		}
		return
	}
}

// Advance moves the queue forward by t ticks, firing (and dequeuing) every
// event whose delay has reached zero, in order.
func (q *Queue) Advance(t int) {
	cur := q.head
	if cur == nil {
		return
	}
	cur.delay -= t
	for cur != nil && cur.delay <= 0 {
		cb, arg := cur.cb, cur.arg
		q.head = cur.next
		if q.head != nil {
			q.head.prev = nil
		} else {
			q.tail = nil
		}
		cb(arg)
		cur = q.head
	}
}
