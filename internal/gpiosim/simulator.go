/*
 * rp2040pio - In-memory GPIO simulator: the standalone stand-in for a real
 * host's pin electrics.
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

// Package gpiosim implements pio.GPIO over a plain 32-bit pin-state and
// pin-direction word, for running the core without a real host emulator
// attached.
package gpiosim

// Simulator is a 32-pin GPIO stand-in. It is single-threaded, matching the
// core it's attached to: nothing here is safe for concurrent use.
type Simulator struct {
	state uint32
	dir   uint32
}

// New returns a simulator with every pin low and every direction input.
func New() *Simulator {
	return &Simulator{}
}

func (s *Simulator) SetPinBitset(bitset, bitmap uint32) {
	s.state = (s.state &^ bitmap) | (bitset & bitmap)
}

func (s *Simulator) SetPindirBitset(bitset, bitmap uint32) {
	s.dir = (s.dir &^ bitmap) | (bitset & bitmap)
}

func (s *Simulator) GetPinState(pin uint32) int {
	return int((s.state >> (pin & 31)) & 1)
}

func (s *Simulator) GetPinBitmap() uint32 {
	return s.state
}

// Snapshot returns the current pin-state and pin-direction words, for
// observers outside the core's own read path (tests, the console's `pins`
// command). The core itself never calls this.
func (s *Simulator) Snapshot() (state, dir uint32) {
	return s.state, s.dir
}
