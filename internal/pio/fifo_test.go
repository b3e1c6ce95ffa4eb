/*
 * rp2040pio - FIFO unit tests.
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

import "testing"

func TestFIFOOrdering(t *testing.T) {
	f := newFIFO(4)
	f.push(1)
	f.push(2)
	f.push(3)
	if got := f.pop(); got != 1 {
		t.Errorf("pop() = %d, want 1", got)
	}
	if got := f.pop(); got != 2 {
		t.Errorf("pop() = %d, want 2", got)
	}
}

func TestFIFOOverflowIsSilentDrop(t *testing.T) {
	f := newFIFO(2)
	f.push(1)
	f.push(2)
	f.push(3) // dropped
	if f.size() != 2 {
		t.Fatalf("size() = %d, want 2", f.size())
	}
	if got := f.pop(); got != 1 {
		t.Errorf("pop() = %d, want 1", got)
	}
}

func TestFIFOUnderflowReturnsZero(t *testing.T) {
	f := newFIFO(4)
	if got := f.pop(); got != 0 {
		t.Errorf("pop() on empty = %d, want 0", got)
	}
}

func TestFIFOResize(t *testing.T) {
	f := newFIFO(4)
	f.push(1)
	f.resize(8)
	if !f.empty() {
		t.Errorf("resize did not discard contents")
	}
	for i := 0; i < 8; i++ {
		f.push(uint32(i))
	}
	if !f.full() {
		t.Errorf("fifo resized to 8 should be full after 8 pushes")
	}
}
