/*
 * rp2040pio - Bounded word FIFO shared by every state machine's TX/RX path.
 *
 * Copyright 2026, The rp2040pio Authors
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
 */
package pio

// fifo is a bounded FIFO of 32-bit words. Default capacity is 4; FJOIN can
// resize it to 0 or 8. Overflow on push is a silent drop and underflow on
// pop returns zero -- both are hardware-faithful RP2040 behaviours, not
// error conditions.
type fifo struct {
	data     []uint32
	capacity int
}

func newFIFO(capacity int) fifo {
	return fifo{capacity: capacity}
}

func (f *fifo) push(v uint32) {
	if len(f.data) >= f.capacity {
		return
	}
	f.data = append(f.data, v)
}

func (f *fifo) pop() uint32 {
	if len(f.data) == 0 {
		return 0
	}
	v := f.data[0]
	f.data = f.data[1:]
	return v
}

func (f *fifo) resize(capacity int) {
	f.data = nil
	f.capacity = capacity
}

func (f *fifo) full() bool {
	return len(f.data) >= f.capacity
}

func (f *fifo) empty() bool {
	return len(f.data) == 0
}

func (f *fifo) size() int {
	return len(f.data)
}
